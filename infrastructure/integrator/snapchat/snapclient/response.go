package snapclient

import (
	"fmt"
	"io"
	"net/http"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	snapdomain "github.com/vfg2006/snapchat-ads-report/infrastructure/integrator/snapchat/domain"
	"github.com/vfg2006/snapchat-ads-report/internal/domain"
)

// APIError carrega o status e a mensagem de uma resposta não-2xx.
type APIError struct {
	StatusCode int
	RequestID  string
	Message    string
	Err        error
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: status %d: %s", e.Err.Error(), e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s: status %d", e.Err.Error(), e.StatusCode)
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// do envia a requisição e devolve o corpo de uma resposta 2xx.
func (c *SnapchatClient) do(req *http.Request) ([]byte, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"method": req.Method,
			"path":   req.URL.Path,
		}).WithError(err).Error("snapclient: request failed")
		return nil, fmt.Errorf("%w: %s %s: %v", domain.ErrNetwork, req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	return HandleResponse(resp)
}

// HandleResponse lê o corpo e traduz status de erro para os sentinelas do domínio.
func HandleResponse(resp *http.Response) ([]byte, error) {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading response body: %v", domain.ErrNetwork, err)
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return body, nil
	}

	apiErr := &APIError{StatusCode: resp.StatusCode, Err: domain.ErrUpstreamStatus}
	if snapdomain.IsUnauthorized(resp.StatusCode) {
		apiErr.Err = domain.ErrAuthFailed
	}

	var errorResponse snapdomain.ErrorResponse
	if err := json.Unmarshal(body, &errorResponse); err == nil {
		apiErr.RequestID = errorResponse.RequestID
		apiErr.Message = errorResponse.Message()
	}

	logrus.WithFields(logrus.Fields{
		"status":     resp.StatusCode,
		"request_id": apiErr.RequestID,
		"message":    apiErr.Message,
	}).Error("snapclient: upstream returned an error status")

	return nil, apiErr
}

func decode(body []byte, target interface{}, what string) error {
	if err := json.Unmarshal(body, target); err != nil {
		return errors.WithMessagef(fmt.Errorf("%w: %v", domain.ErrUpstreamFormat, err), "decoding %s", what)
	}
	return nil
}

func formatError(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", domain.ErrUpstreamFormat, fmt.Sprintf(format, args...))
}
