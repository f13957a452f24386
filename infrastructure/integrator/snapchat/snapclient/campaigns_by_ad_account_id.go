package snapclient

import (
	"context"
	"fmt"
	"net/url"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	snapdomain "github.com/vfg2006/snapchat-ads-report/infrastructure/integrator/snapchat/domain"
	"github.com/vfg2006/snapchat-ads-report/internal/domain"
)

// GetCampaignsByAdAccountID lista as campanhas da conta na ordem da resposta.
// A API devolve todas as campanhas de uma vez para contas do tamanho das nossas.
func (c *SnapchatClient) GetCampaignsByAdAccountID(ctx context.Context, token domain.AccessToken, adAccountID string) ([]snapdomain.Campaign, error) {
	endpoint := fmt.Sprintf("%s/v1/adaccounts/%s/campaigns", c.apiURL, url.PathEscape(adAccountID))

	req, err := c.newAPIRequest(ctx, token, endpoint)
	if err != nil {
		return nil, errors.Wrap(err, "building campaigns request")
	}

	body, err := c.do(req)
	if err != nil {
		return nil, errors.WithMessage(err, "listing campaigns")
	}

	var response snapdomain.CampaignsResponse
	if err := decode(body, &response, "campaigns response"); err != nil {
		return nil, err
	}

	if response.Campaigns == nil {
		return nil, formatError("campaigns response has no campaigns field")
	}

	campaigns := make([]snapdomain.Campaign, 0, len(response.Campaigns))
	for i, wrapper := range response.Campaigns {
		if wrapper.Campaign == nil {
			return nil, formatError("campaigns[%d] has no campaign object", i)
		}
		if wrapper.Campaign.ID == "" {
			return nil, formatError("campaigns[%d] has no id", i)
		}
		campaigns = append(campaigns, *wrapper.Campaign)
	}

	logrus.WithFields(logrus.Fields{
		"ad_account_id": adAccountID,
		"campaigns":     len(campaigns),
	}).Debug("snapclient: campaigns listed")

	return campaigns, nil
}
