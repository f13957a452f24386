package snapclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/sirupsen/logrus"
	snapdomain "github.com/vfg2006/snapchat-ads-report/infrastructure/integrator/snapchat/domain"
	"github.com/vfg2006/snapchat-ads-report/internal/domain"
)

type TokenRequest struct {
	ClientID     string
	ClientSecret string
	RefreshToken string
}

// ExchangeToken troca o refresh token por um access token novo. Qualquer falha
// aqui é uma falha de autenticação; falhas de transporte também carregam ErrNetwork.
func (c *SnapchatClient) ExchangeToken(ctx context.Context, request TokenRequest) (*snapdomain.TokenResponse, error) {
	params := url.Values{}
	params.Set("client_id", request.ClientID)
	params.Set("client_secret", request.ClientSecret)
	params.Set("code", request.RefreshToken)
	params.Set("grant_type", "refresh_token")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, TokenURL(c.authURL), strings.NewReader(params.Encode()))
	if err != nil {
		return nil, fmt.Errorf("%w: building token request: %v", domain.ErrAuthFailed, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	body, err := c.do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: token exchange: %w", domain.ErrAuthFailed, err)
	}

	var tokenResp snapdomain.TokenResponse
	if err := json.Unmarshal(body, &tokenResp); err != nil {
		return nil, fmt.Errorf("%w: decoding token response: %v", domain.ErrAuthFailed, err)
	}

	if strings.TrimSpace(tokenResp.AccessToken) == "" {
		return nil, fmt.Errorf("%w: token response has no access_token", domain.ErrAuthFailed)
	}

	logrus.WithFields(logrus.Fields{
		"token_type": tokenResp.TokenType,
		"expires_in": tokenResp.ExpiresIn,
	}).Debug("snapclient: access token obtained")

	return &tokenResp, nil
}
