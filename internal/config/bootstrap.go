package config

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const DefaultCredentialsFile = "snapchat_credentials.json"

// BootstrapCredentials são os dados do app Snap usados para obter o primeiro refresh token.
type BootstrapCredentials struct {
	ClientID     string `mapstructure:"client_id" validate:"required"`
	ClientSecret string `mapstructure:"client_secret" validate:"required"`
	RedirectURL  string `mapstructure:"redirect_url" validate:"required,url"`
}

// LoadBootstrapCredentials lê o arquivo JSON de credenciais. Campos ausentes no
// arquivo caem para SNAPCHAT_CLIENT_ID, SNAPCHAT_CLIENT_SECRET e SNAPCHAT_REDIRECT_URL.
func LoadBootstrapCredentials(path string) (*BootstrapCredentials, error) {
	loadEnvFile()

	v := viper.New()
	v.SetConfigType("json")
	_ = v.BindEnv("client_id", "SNAPCHAT_CLIENT_ID")
	_ = v.BindEnv("client_secret", "SNAPCHAT_CLIENT_SECRET")
	_ = v.BindEnv("redirect_url", "SNAPCHAT_REDIRECT_URL")

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			v.SetConfigFile(path)
			if err := v.ReadInConfig(); err != nil {
				return nil, NewConfigError(fmt.Sprintf("reading %s: %v", path, err))
			}
			logrus.WithField("path", path).Debug("config: credentials file loaded")
		} else if !os.IsNotExist(err) {
			return nil, NewConfigError(fmt.Sprintf("reading %s: %v", path, err))
		} else {
			logrus.WithField("path", path).Debug("config: credentials file not found, using environment")
		}
	}

	creds := &BootstrapCredentials{}
	if err := v.Unmarshal(creds); err != nil {
		return nil, NewConfigError(fmt.Sprintf("decoding %s: %v", path, err))
	}

	creds.ClientID = strings.TrimSpace(creds.ClientID)
	creds.ClientSecret = strings.TrimSpace(creds.ClientSecret)
	creds.RedirectURL = strings.TrimSpace(creds.RedirectURL)

	if err := validate.Struct(creds); err != nil {
		var validationErrors validator.ValidationErrors
		if !errors.As(err, &validationErrors) {
			return nil, NewConfigError(err.Error())
		}

		missing := make([]string, 0, len(validationErrors))
		for _, fieldErr := range validationErrors {
			if fieldErr.Tag() == "url" {
				return nil, NewConfigError(fmt.Sprintf("%s is not a valid URL", fieldErr.Field()))
			}
			missing = append(missing, strings.ToLower(fieldErr.Field()))
		}
		sort.Strings(missing)

		return nil, &ConfigError{Missing: missing}
	}

	return creds, nil
}
