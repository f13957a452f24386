package snapdomain

// Os campos ponteiro distinguem "ausente" de "vazio" na validação do formato.
type CampaignsResponse struct {
	RequestStatus string            `json:"request_status"`
	RequestID     string            `json:"request_id"`
	Campaigns     []CampaignWrapper `json:"campaigns"`
}

type CampaignWrapper struct {
	SubRequestStatus string    `json:"sub_request_status"`
	Campaign         *Campaign `json:"campaign"`
}

type Campaign struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Status      string `json:"status"`
	AdAccountID string `json:"ad_account_id"`
}
