package authorizing

import (
	"errors"
	"fmt"

	"github.com/vfg2006/snapchat-ads-report/internal/domain"
)

var (
	ErrStateMismatch    = errors.New("oauth state mismatch")
	ErrMissingCode      = errors.New("callback has no authorization code")
	ErrAccessDenied     = errors.New("authorization denied by user")
	ErrInvalidCallback  = errors.New("invalid callback URL")
	ErrNoRefreshToken   = errors.New("token response has no refresh_token")
	ErrPersistFailed    = errors.New("could not persist credentials")
	ErrTokenNotVerified = errors.New("token could not be verified")
)

// AuthorizeError é um erro com contexto adicional para o fluxo de autorização
type AuthorizeError struct {
	Err     error  // Erro base
	Code    string // Código de erro para a resposta do callback
	Details string
}

func (e *AuthorizeError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap devolve também ErrAuthFailed, exceto quando a falha foi ao gravar as credenciais.
func (e *AuthorizeError) Unwrap() []error {
	if errors.Is(e.Err, ErrPersistFailed) {
		return []error{e.Err}
	}
	return []error{e.Err, domain.ErrAuthFailed}
}

func NewAuthorizeError(err error, code string, details string) *AuthorizeError {
	return &AuthorizeError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

// IsCallbackError verifica se o erro veio da URL de callback e não da troca do código
func IsCallbackError(err error) bool {
	return errors.Is(err, ErrStateMismatch) ||
		errors.Is(err, ErrMissingCode) ||
		errors.Is(err, ErrAccessDenied) ||
		errors.Is(err, ErrInvalidCallback)
}
