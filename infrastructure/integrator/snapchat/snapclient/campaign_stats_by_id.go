package snapclient

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/pkg/errors"
	snapdomain "github.com/vfg2006/snapchat-ads-report/infrastructure/integrator/snapchat/domain"
	"github.com/vfg2006/snapchat-ads-report/internal/domain"
)

const (
	GranularityDay = "DAY"
	statsFields    = "impressions,spend"
)

// GetCampaignStatsByID busca a série diária da campanha. start e end já devem
// estar no fuso do relatório; são enviados com o offset.
func (c *SnapchatClient) GetCampaignStatsByID(ctx context.Context, token domain.AccessToken, campaignID string, start, end time.Time) (*snapdomain.TimeseriesStat, error) {
	baseURL := fmt.Sprintf("%s/v1/campaigns/%s/stats", c.apiURL, url.PathEscape(campaignID))

	params := url.Values{}
	params.Set("start_time", start.Format(time.RFC3339))
	params.Set("end_time", end.Format(time.RFC3339))
	params.Set("granularity", GranularityDay)
	params.Set("fields", statsFields)

	req, err := c.newAPIRequest(ctx, token, baseURL+"?"+params.Encode())
	if err != nil {
		return nil, errors.Wrap(err, "building stats request")
	}

	body, err := c.do(req)
	if err != nil {
		return nil, errors.WithMessagef(err, "fetching stats for campaign %s", campaignID)
	}

	var response snapdomain.StatsResponse
	if err := decode(body, &response, "stats response"); err != nil {
		return nil, err
	}

	if len(response.TimeseriesStats) == 0 {
		return nil, formatError("stats response for campaign %s has no timeseries_stats", campaignID)
	}

	stat := response.TimeseriesStats[0].TimeseriesStat
	if stat == nil {
		return nil, formatError("timeseries_stats[0] for campaign %s has no timeseries_stat", campaignID)
	}

	if stat.Timeseries == nil {
		return nil, formatError("timeseries_stat for campaign %s has no timeseries", campaignID)
	}

	return stat, nil
}
