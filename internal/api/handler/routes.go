package handler

import (
	"net/http"

	"github.com/vfg2006/snapchat-ads-report/internal/api/handler/router"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

// Authorization expõe o redirect do app Snap. path é o caminho da redirect_url cadastrada.
func Authorization(path string, verifier CallbackVerifier, codes chan<- string) []router.Route {
	if path == "" {
		path = "/"
	}

	return []router.Route{
		{
			Path:    path,
			Method:  http.MethodGet,
			Handler: OAuthCallback(verifier, codes),
		},
	}
}
