package snapclient

import (
	"context"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"
	snapdomain "github.com/vfg2006/snapchat-ads-report/infrastructure/integrator/snapchat/domain"
	"github.com/vfg2006/snapchat-ads-report/internal/config"
	"github.com/vfg2006/snapchat-ads-report/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	AuthorizePath     = "/login/oauth2/authorize"
	TokenPath         = "/login/oauth2/access_token"
	MarketingAPIScope = "snapchat-marketing-api"
)

//go:generate mockgen -source=client.go -destination=../mocks/mock_client.go -package=mocks
type Client interface {
	ExchangeToken(ctx context.Context, request TokenRequest) (*snapdomain.TokenResponse, error)
	GetCampaignsByAdAccountID(ctx context.Context, token domain.AccessToken, adAccountID string) ([]snapdomain.Campaign, error)
	GetCampaignStatsByID(ctx context.Context, token domain.AccessToken, campaignID string, start, end time.Time) (*snapdomain.TimeseriesStat, error)
	GetOrganizations(ctx context.Context, token domain.AccessToken) ([]snapdomain.Organization, error)
}

type SnapchatClient struct {
	httpClient *http.Client
	authURL    string
	apiURL     string
}

func NewClient(cfg *config.Config) Client {
	return &SnapchatClient{
		httpClient: &http.Client{
			Timeout: cfg.Snapchat.HTTPTimeout,
		},
		authURL: cfg.Snapchat.AuthURL,
		apiURL:  cfg.Snapchat.APIURL,
	}
}

// TokenURL é o endpoint usado tanto na troca do refresh token quanto no fluxo de autorização.
func TokenURL(authURL string) string {
	return authURL + TokenPath
}

func AuthorizeURL(authURL string) string {
	return authURL + AuthorizePath
}

func (c *SnapchatClient) newAPIRequest(ctx context.Context, token domain.AccessToken, endpoint string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Authorization", "Bearer "+string(token))
	req.Header.Set("Accept", "application/json")

	return req, nil
}
