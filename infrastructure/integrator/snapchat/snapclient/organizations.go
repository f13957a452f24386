package snapclient

import (
	"context"

	"github.com/pkg/errors"
	snapdomain "github.com/vfg2006/snapchat-ads-report/infrastructure/integrator/snapchat/domain"
	"github.com/vfg2006/snapchat-ads-report/internal/domain"
)

// GetOrganizations consulta /v1/me/organizations; usado para conferir um token recém-emitido.
func (c *SnapchatClient) GetOrganizations(ctx context.Context, token domain.AccessToken) ([]snapdomain.Organization, error) {
	req, err := c.newAPIRequest(ctx, token, c.apiURL+"/v1/me/organizations")
	if err != nil {
		return nil, errors.Wrap(err, "building organizations request")
	}

	body, err := c.do(req)
	if err != nil {
		return nil, errors.WithMessage(err, "listing organizations")
	}

	var response snapdomain.OrganizationsResponse
	if err := decode(body, &response, "organizations response"); err != nil {
		return nil, err
	}

	organizations := make([]snapdomain.Organization, 0, len(response.Organizations))
	for _, wrapper := range response.Organizations {
		organizations = append(organizations, wrapper.Organization)
	}

	return organizations, nil
}
