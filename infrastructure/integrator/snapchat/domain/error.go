package snapdomain

import "net/http"

// ErrorResponse representa a estrutura de erro da API do Snap
type ErrorResponse struct {
	RequestStatus  string `json:"request_status"`
	RequestID      string `json:"request_id"`
	DebugMessage   string `json:"debug_message"`
	DisplayMessage string `json:"display_message"`
	ErrorCode      string `json:"error_code"`

	// endpoint de token (padrão OAuth2)
	OAuthError       string `json:"error"`
	OAuthDescription string `json:"error_description"`
}

// Message devolve a mensagem mais útil disponível no corpo de erro.
func (e *ErrorResponse) Message() string {
	switch {
	case e.DebugMessage != "":
		return e.DebugMessage
	case e.DisplayMessage != "":
		return e.DisplayMessage
	case e.OAuthDescription != "":
		return e.OAuthDescription
	default:
		return e.OAuthError
	}
}

// IsUnauthorized indica token inválido, expirado ou sem permissão.
func IsUnauthorized(statusCode int) bool {
	return statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden
}
