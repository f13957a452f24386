package snapchat

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	snapdomain "github.com/vfg2006/snapchat-ads-report/infrastructure/integrator/snapchat/domain"
	"github.com/vfg2006/snapchat-ads-report/infrastructure/integrator/snapchat/snapclient"
	"github.com/vfg2006/snapchat-ads-report/internal/config"
	"github.com/vfg2006/snapchat-ads-report/internal/domain"
	"github.com/vfg2006/snapchat-ads-report/pkg/log"
	"github.com/vfg2006/snapchat-ads-report/pkg/utils"
)

type SnapchatIntegrator struct {
	location *time.Location
	Client   snapclient.Client
}

// New recebe o fuso do relatório já resolvido; todas as janelas da execução usam o mesmo.
func New(location *time.Location, client snapclient.Client) *SnapchatIntegrator {
	return &SnapchatIntegrator{
		location: location,
		Client:   client,
	}
}

func (s *SnapchatIntegrator) Authenticate(ctx context.Context, creds config.Snapchat) (domain.AccessToken, error) {
	resp, err := s.Client.ExchangeToken(ctx, snapclient.TokenRequest{
		ClientID:     creds.ClientID,
		ClientSecret: creds.ClientSecret,
		RefreshToken: creds.RefreshToken,
	})
	if err != nil {
		log.ForContext(ctx).WithFields(log.Fields{
			"client_id": log.Redact(creds.ClientID),
			"error":     err.Error(),
		}).Error("snapchat: failed to exchange refresh token")
		return "", err
	}

	log.ForContext(ctx).WithField("expires_in", resp.ExpiresIn).Debug("snapchat: access token acquired")

	return domain.AccessToken(resp.AccessToken), nil
}

func (s *SnapchatIntegrator) ListCampaigns(ctx context.Context, token domain.AccessToken, adAccountID string) ([]domain.Campaign, error) {
	resp, err := s.Client.GetCampaignsByAdAccountID(ctx, token, adAccountID)
	if err != nil {
		log.ForContext(ctx).WithFields(log.Fields{
			"ad_account_id": adAccountID,
			"error":         err.Error(),
		}).Error("snapchat: failed to list campaigns")
		return nil, err
	}

	campaigns := make([]domain.Campaign, 0, len(resp))
	for _, c := range resp {
		campaigns = append(campaigns, domain.Campaign{ID: c.ID})
	}

	return campaigns, nil
}

// FetchDailyStats devolve uma linha por dia da campanha, com o gasto já convertido de micro-moeda.
func (s *SnapchatIntegrator) FetchDailyStats(ctx context.Context, token domain.AccessToken, campaignID string, window domain.DateWindow) ([]domain.DailyStat, error) {
	start, end := window.Bounds(s.location)

	stat, err := s.Client.GetCampaignStatsByID(ctx, token, campaignID, start, end)
	if err != nil {
		log.ForContext(ctx).WithFields(log.Fields{
			"campaign_id": campaignID,
			"start_date":  window.StartDate(),
			"end_date":    window.EndDate(),
			"error":       err.Error(),
		}).Error("snapchat: failed to fetch campaign stats")
		return nil, err
	}

	rows, err := FactoryDailyStats(campaignID, stat)
	if err != nil {
		log.ForContext(ctx).WithFields(log.Fields{
			"campaign_id": campaignID,
			"error":       err.Error(),
		}).Error("snapchat: malformed campaign stats")
		return nil, err
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"campaign_id": campaignID,
		"rows":        len(rows),
	}).Debug("snapchat: campaign stats fetched")

	return rows, nil
}

func FactoryDailyStats(campaignID string, stat *snapdomain.TimeseriesStat) ([]domain.DailyStat, error) {
	if stat == nil {
		return nil, fmt.Errorf("%w: campaign %s has no timeseries_stat", domain.ErrUpstreamFormat, campaignID)
	}

	rows := make([]domain.DailyStat, 0, len(stat.Timeseries))
	for i, entry := range stat.Timeseries {
		row, err := factoryDailyStat(campaignID, entry)
		if err != nil {
			return nil, fmt.Errorf("%w: campaign %s timeseries[%d]: %v", domain.ErrUpstreamFormat, campaignID, i, err)
		}
		rows = append(rows, row)
	}

	return rows, nil
}

func factoryDailyStat(campaignID string, entry snapdomain.TimeseriesEntry) (domain.DailyStat, error) {
	periodStart, err := utils.ParseTimestamp(entry.StartTime)
	if err != nil {
		return domain.DailyStat{}, fmt.Errorf("invalid start_time %q", entry.StartTime)
	}

	periodEnd, err := utils.ParseTimestamp(entry.EndTime)
	if err != nil {
		return domain.DailyStat{}, fmt.Errorf("invalid end_time %q", entry.EndTime)
	}

	if entry.Stats == nil {
		return domain.DailyStat{}, fmt.Errorf("missing stats")
	}
	if entry.Stats.Impressions == nil {
		return domain.DailyStat{}, fmt.Errorf("missing stats.impressions")
	}
	if entry.Stats.Spend == nil {
		return domain.DailyStat{}, fmt.Errorf("missing stats.spend")
	}
	if *entry.Stats.Impressions < 0 || *entry.Stats.Spend < 0 {
		logrus.WithFields(logrus.Fields{
			"campaign_id": campaignID,
			"impressions": *entry.Stats.Impressions,
			"spend":       *entry.Stats.Spend,
		}).Warn("snapchat: negative stats value")
		return domain.DailyStat{}, fmt.Errorf("negative stats value")
	}

	return domain.DailyStat{
		CampaignID:  campaignID,
		PeriodStart: periodStart,
		PeriodEnd:   periodEnd,
		Impressions: *entry.Stats.Impressions,
		Spend:       domain.MicroToCurrency(*entry.Stats.Spend),
	}, nil
}
