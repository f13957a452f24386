package handler

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/snapchat-ads-report/internal/usecases/authorizing"
	"github.com/vfg2006/snapchat-ads-report/pkg/apiErrors"
)

type CallbackVerifier interface {
	CodeFromQuery(query url.Values) (string, error)
}

const callbackPage = `<!DOCTYPE html>
<html><body><p>Authorization received. You can close this window and return to the terminal.</p></body></html>
`

// OAuthCallback entrega o código de autorização ao CLI. Só o primeiro código é aceito.
func OAuthCallback(verifier CallbackVerifier, codes chan<- string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		code, err := verifier.CodeFromQuery(r.URL.Query())
		if err != nil {
			logrus.WithError(err).Warn("api: rejected authorization callback")

			var authorizeErr *authorizing.AuthorizeError
			if errors.As(err, &authorizeErr) {
				apiErrors.WriteError(w, authorizeErr.Code, authorizeErr.Error(), nil)
				return
			}

			apiErr := apiErrors.FromError(err, apiErrors.ErrInvalidRequest)
			apiErrors.WriteError(w, apiErr.Code, apiErr.Message, nil)
			return
		}

		select {
		case codes <- code:
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "authorization code already received", nil)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if _, err := w.Write([]byte(callbackPage)); err != nil {
			logrus.WithError(err).Warn("api: error writing callback page")
		}
	})
}
