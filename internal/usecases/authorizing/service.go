package authorizing

import (
	"context"
	"net/http"
	"net/url"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	snapdomain "github.com/vfg2006/snapchat-ads-report/infrastructure/integrator/snapchat/domain"
	"github.com/vfg2006/snapchat-ads-report/infrastructure/integrator/snapchat/snapclient"
	"github.com/vfg2006/snapchat-ads-report/internal/config"
	"github.com/vfg2006/snapchat-ads-report/internal/domain"
	"github.com/vfg2006/snapchat-ads-report/pkg/apiErrors"
	"github.com/vfg2006/snapchat-ads-report/pkg/log"
	"golang.org/x/oauth2"
)

// OrganizationLister confere um token recém-emitido consultando as organizações do usuário.
type OrganizationLister interface {
	GetOrganizations(ctx context.Context, token domain.AccessToken) ([]snapdomain.Organization, error)
}

type Authorizer interface {
	AuthorizationURL() string
	CodeFromCallbackURL(raw string) (string, error)
	CodeFromQuery(query url.Values) (string, error)
	Complete(ctx context.Context, code string) (*Result, error)
}

type Result struct {
	AccessToken   string
	RefreshToken  string
	Organizations []snapdomain.Organization
	SavedKeys     []string
}

type Service struct {
	oauth      *oauth2.Config
	creds      config.BootstrapCredentials
	state      string
	verifier   OrganizationLister
	storage    config.SecretStorage
	httpClient *http.Client
}

func NewService(creds config.BootstrapCredentials, authURL string, verifier OrganizationLister, storage config.SecretStorage, httpClient *http.Client) *Service {
	return &Service{
		oauth: &oauth2.Config{
			ClientID:     creds.ClientID,
			ClientSecret: creds.ClientSecret,
			RedirectURL:  creds.RedirectURL,
			Scopes:       []string{snapclient.MarketingAPIScope},
			Endpoint: oauth2.Endpoint{
				AuthURL:   snapclient.AuthorizeURL(authURL),
				TokenURL:  snapclient.TokenURL(authURL),
				AuthStyle: oauth2.AuthStyleInParams,
			},
		},
		creds:      creds,
		state:      uuid.New().String(),
		verifier:   verifier,
		storage:    storage,
		httpClient: httpClient,
	}
}

func (s *Service) State() string {
	return s.state
}

func (s *Service) AuthorizationURL() string {
	return s.oauth.AuthCodeURL(s.state)
}

// CodeFromCallbackURL aceita a URL completa colada pelo usuário depois de autorizar.
func (s *Service) CodeFromCallbackURL(raw string) (string, error) {
	callback, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || callback.RawQuery == "" {
		return "", NewAuthorizeError(ErrInvalidCallback, apiErrors.ErrInvalidRequest, "expected the full redirect URL with its query string")
	}

	return s.CodeFromQuery(callback.Query())
}

func (s *Service) CodeFromQuery(query url.Values) (string, error) {
	if denied := query.Get("error"); denied != "" {
		return "", NewAuthorizeError(ErrAccessDenied, apiErrors.ErrInsufficientPrivilege, denied+" "+query.Get("error_description"))
	}

	if query.Get("state") != s.state {
		logrus.Warn("authorizing: callback state does not match")
		return "", NewAuthorizeError(ErrStateMismatch, apiErrors.ErrInvalidState, "")
	}

	code := query.Get("code")
	if code == "" {
		return "", NewAuthorizeError(ErrMissingCode, apiErrors.ErrMissingRequiredData, "")
	}

	return code, nil
}

// Complete troca o código pelo par de tokens, confere o token e grava as credenciais.
func (s *Service) Complete(ctx context.Context, code string) (*Result, error) {
	if s.httpClient != nil {
		ctx = context.WithValue(ctx, oauth2.HTTPClient, s.httpClient)
	}

	token, err := s.oauth.Exchange(ctx, code)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("authorizing: code exchange failed")
		return nil, NewAuthorizeError(domain.ErrAuthFailed, apiErrors.ErrInvalidCredentials, err.Error())
	}

	if token.RefreshToken == "" {
		return nil, NewAuthorizeError(ErrNoRefreshToken, apiErrors.ErrInvalidToken, "")
	}

	organizations, err := s.verifier.GetOrganizations(ctx, domain.AccessToken(token.AccessToken))
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("authorizing: token verification failed")
		return nil, NewAuthorizeError(ErrTokenNotVerified, apiErrors.ErrExternalService, err.Error())
	}

	secrets := map[string]string{
		"SNAPCHAT_CLIENT_ID":     s.creds.ClientID,
		"SNAPCHAT_CLIENT_SECRET": s.creds.ClientSecret,
		"SNAPCHAT_ACCESS_TOKEN":  token.AccessToken,
		"SNAPCHAT_REFRESH_TOKEN": token.RefreshToken,
	}
	if len(organizations) == 1 {
		secrets["SNAPCHAT_ORGANIZATION_ID"] = organizations[0].ID
	}

	if err := s.storage.AddOrUpdateSecrets(secrets); err != nil {
		return nil, NewAuthorizeError(ErrPersistFailed, apiErrors.ErrInternalServer, err.Error())
	}

	saved := make([]string, 0, len(secrets))
	for key := range secrets {
		saved = append(saved, key)
	}
	sort.Strings(saved)

	log.ForContext(ctx).WithFields(log.Fields{
		"refresh_token": log.Redact(token.RefreshToken),
		"organizations": len(organizations),
	}).Info("authorizing: credentials saved")

	return &Result{
		AccessToken:   token.AccessToken,
		RefreshToken:  token.RefreshToken,
		Organizations: organizations,
		SavedKeys:     saved,
	}, nil
}
