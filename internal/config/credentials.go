package config

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/vfg2006/snapchat-ads-report/internal/domain"
)

// ConfigError indica credencial ausente ou inválida. Nenhuma chamada de rede
// é feita enquanto houver um ConfigError.
type ConfigError struct {
	Missing []string
	Details string
}

func (e *ConfigError) Error() string {
	if len(e.Missing) > 0 {
		return fmt.Sprintf("%s: missing %s", domain.ErrConfig.Error(), strings.Join(e.Missing, ", "))
	}
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", domain.ErrConfig.Error(), e.Details)
	}
	return domain.ErrConfig.Error()
}

func (e *ConfigError) Unwrap() error {
	return domain.ErrConfig
}

func NewConfigError(details string) *ConfigError {
	return &ConfigError{Details: details}
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Os erros citam o nome da variável de ambiente, não o campo Go.
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("mapstructure"), ",", 2)[0]
		if name == "" || name == "-" {
			return field.Name
		}
		return strings.ToUpper(name)
	})

	return v
}

// ValidateCredentials garante que as cinco credenciais estão preenchidas.
func (s Snapchat) ValidateCredentials() error {
	trimmed := s
	trimmed.ClientID = strings.TrimSpace(s.ClientID)
	trimmed.ClientSecret = strings.TrimSpace(s.ClientSecret)
	trimmed.RefreshToken = strings.TrimSpace(s.RefreshToken)
	trimmed.OrganizationID = strings.TrimSpace(s.OrganizationID)
	trimmed.AdAccountID = strings.TrimSpace(s.AdAccountID)

	err := validate.Struct(trimmed)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return NewConfigError(err.Error())
	}

	missing := make([]string, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		missing = append(missing, fieldErr.Field())
	}
	sort.Strings(missing)

	return &ConfigError{Missing: missing}
}
