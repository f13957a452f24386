package reporting

import (
	"errors"
	"fmt"

	"github.com/vfg2006/snapchat-ads-report/internal/domain"
)

// Stage é o estado do pipeline de uma execução.
type Stage string

const (
	StageInit            Stage = "init"
	StageTokenAcquired   Stage = "token_acquired"
	StageCampaignsListed Stage = "campaigns_listed"
	StageFetching        Stage = "fetching"
	StageDone            Stage = "done"
	StageAborted         Stage = "aborted"
)

// Operações em que uma execução pode falhar
const (
	OpValidateCredentials = "validate_credentials"
	OpValidateWindow      = "validate_window"
	OpExchangeToken       = "exchange_token"
	OpListCampaigns       = "list_campaigns"
	OpFetchStats          = "fetch_stats"
)

// ReportError é um erro com contexto adicional sobre onde a execução parou
type ReportError struct {
	Err        error  // Erro base
	Stage      Stage  // Último estágio alcançado antes da falha
	Op         string // Operação que falhou
	CampaignID string // Campanha envolvida (quando aplicável)
	Details    string
}

func (e *ReportError) Error() string {
	msg := fmt.Sprintf("report aborted at %s (%s)", e.Op, e.Stage)
	if e.CampaignID != "" {
		msg += fmt.Sprintf(" campaign %s", e.CampaignID)
	}
	if e.Details != "" {
		msg += ": " + e.Details
	}
	return msg + ": " + e.Err.Error()
}

func (e *ReportError) Unwrap() error {
	return e.Err
}

// Code devolve a categoria do erro como aparece nos logs e na saída do CLI.
func (e *ReportError) Code() string {
	return ErrorCode(e.Err)
}

func ErrorCode(err error) string {
	switch {
	case errors.Is(err, domain.ErrConfig):
		return "CONFIG_ERROR"
	case errors.Is(err, domain.ErrWindowTooLarge):
		return "WINDOW_TOO_LARGE"
	case errors.Is(err, domain.ErrInvalidWindow):
		return "INVALID_WINDOW"
	case errors.Is(err, domain.ErrAuthFailed):
		return "AUTH_ERROR"
	case errors.Is(err, domain.ErrUpstreamFormat):
		return "UPSTREAM_FORMAT_ERROR"
	case errors.Is(err, domain.ErrUpstreamStatus):
		return "UPSTREAM_STATUS_ERROR"
	case errors.Is(err, domain.ErrNetwork):
		return "NETWORK_ERROR"
	default:
		return "UNKNOWN_ERROR"
	}
}

// IsInputError verifica se a falha aconteceu antes de qualquer chamada de rede
func IsInputError(err error) bool {
	return errors.Is(err, domain.ErrConfig) ||
		errors.Is(err, domain.ErrInvalidWindow) ||
		errors.Is(err, domain.ErrWindowTooLarge)
}

// IsAuthError verifica se o erro está relacionado a credenciais ou token recusados
func IsAuthError(err error) bool {
	return errors.Is(err, domain.ErrAuthFailed)
}

// IsUpstreamError verifica se a API respondeu algo que o relatório não aceita
func IsUpstreamError(err error) bool {
	return errors.Is(err, domain.ErrUpstreamFormat) ||
		errors.Is(err, domain.ErrUpstreamStatus) ||
		errors.Is(err, domain.ErrNetwork)
}

func newReportError(err error, stage Stage, op string) *ReportError {
	return &ReportError{
		Err:   err,
		Stage: stage,
		Op:    op,
	}
}
