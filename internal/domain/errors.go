package domain

import "errors"

// Erros base do pipeline de relatório. Todo erro retornado por um estágio
// carrega um destes sentinelas para que o chamador use errors.Is.
var (
	ErrConfig         = errors.New("invalid or missing configuration")
	ErrInvalidWindow  = errors.New("invalid date window")
	ErrWindowTooLarge = errors.New("the difference between start and end date must be less than 31 days")
	ErrAuthFailed     = errors.New("authentication failed")
	ErrUpstreamFormat = errors.New("unexpected upstream response format")
	ErrUpstreamStatus = errors.New("unexpected upstream response status")
	ErrNetwork        = errors.New("network failure")
)
