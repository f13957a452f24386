package domain

// AccessToken é o bearer de curta duração obtido a partir do refresh token.
// A expiração não é controlada: um token por execução.
type AccessToken string

type Campaign struct {
	ID string `json:"id"`
}
