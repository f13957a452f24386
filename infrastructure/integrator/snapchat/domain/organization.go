package snapdomain

type OrganizationsResponse struct {
	RequestStatus string                `json:"request_status"`
	Organizations []OrganizationWrapper `json:"organizations"`
}

type OrganizationWrapper struct {
	Organization Organization `json:"organization"`
}

type Organization struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}
