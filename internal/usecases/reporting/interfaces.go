package reporting

import (
	"context"

	"github.com/vfg2006/snapchat-ads-report/internal/config"
	"github.com/vfg2006/snapchat-ads-report/internal/domain"
)

// SnapchatService define as três chamadas que o relatório faz à API do Snap
//
//go:generate mockgen -source=interfaces.go -destination=mocks/mock_interfaces.go -package=mocks
type SnapchatService interface {
	// Authenticate troca o refresh token por um access token válido para a execução
	Authenticate(ctx context.Context, creds config.Snapchat) (domain.AccessToken, error)

	// ListCampaigns lista as campanhas da conta de anúncios na ordem da API
	ListCampaigns(ctx context.Context, token domain.AccessToken, adAccountID string) ([]domain.Campaign, error)

	// FetchDailyStats busca as estatísticas diárias de uma campanha na janela
	FetchDailyStats(ctx context.Context, token domain.AccessToken, campaignID string, window domain.DateWindow) ([]domain.DailyStat, error)
}
