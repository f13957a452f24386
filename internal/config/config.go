package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App      App      `mapstructure:",squash"`
	Snapchat Snapchat `mapstructure:",squash"`
	Export   Export   `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
	LogFile  string `mapstructure:"log_file"`
}

// Snapchat reúne as credenciais produzidas pelo fluxo de autorização e os
// endpoints da API. As credenciais são somente leitura para o relatório.
type Snapchat struct {
	ClientID       string        `mapstructure:"snapchat_client_id" validate:"required"`
	ClientSecret   string        `mapstructure:"snapchat_client_secret" validate:"required"`
	RefreshToken   string        `mapstructure:"snapchat_refresh_token" validate:"required"`
	OrganizationID string        `mapstructure:"snapchat_organization_id" validate:"required"`
	AdAccountID    string        `mapstructure:"snapchat_ad_accounts_id" validate:"required"`
	AccessToken    string        `mapstructure:"snapchat_access_token"`
	RedirectURL    string        `mapstructure:"snapchat_redirect_url"`
	AuthURL        string        `mapstructure:"snapchat_auth_url"`
	APIURL         string        `mapstructure:"snapchat_api_url"`
	Timezone       string        `mapstructure:"snapchat_report_timezone"`
	HTTPTimeout    time.Duration `mapstructure:"snapchat_http_timeout"`
}

type Export struct {
	Format    string `mapstructure:"export_format"`
	OutputDir string `mapstructure:"export_output_dir"`
}

func SetDefaults(v *viper.Viper) {
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FILE", "")

	v.SetDefault("SNAPCHAT_CLIENT_ID", "")
	v.SetDefault("SNAPCHAT_CLIENT_SECRET", "")
	v.SetDefault("SNAPCHAT_REFRESH_TOKEN", "")
	v.SetDefault("SNAPCHAT_ORGANIZATION_ID", "")
	v.SetDefault("SNAPCHAT_AD_ACCOUNTS_ID", "")
	v.SetDefault("SNAPCHAT_ACCESS_TOKEN", "")
	v.SetDefault("SNAPCHAT_REDIRECT_URL", "")

	v.SetDefault("SNAPCHAT_AUTH_URL", "https://accounts.snapchat.com")
	v.SetDefault("SNAPCHAT_API_URL", "https://adsapi.snapchat.com")
	v.SetDefault("SNAPCHAT_REPORT_TIMEZONE", "Europe/Paris")
	v.SetDefault("SNAPCHAT_HTTP_TIMEOUT", "0s") // sem timeout além do padrão do transporte

	v.SetDefault("EXPORT_FORMAT", "csv")
	v.SetDefault("EXPORT_OUTPUT_DIR", ".")
}

// NewConfig carrega .env (godotenv), aplica os padrões e lê as variáveis de ambiente.
func NewConfig() (*Config, error) {
	return Load(viper.New())
}

// Load é o NewConfig com uma instância de viper fornecida pelo chamador,
// usada pelos CLIs para associar flags às mesmas chaves.
func Load(v *viper.Viper) (*Config, error) {
	loadEnvFile()

	config := &Config{}

	SetDefaults(v)
	v.AutomaticEnv()

	err := v.Unmarshal(config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}

	config.Snapchat.AuthURL = strings.TrimSuffix(config.Snapchat.AuthURL, "/")
	config.Snapchat.APIURL = strings.TrimSuffix(config.Snapchat.APIURL, "/")
	config.Export.Format = strings.ToLower(strings.TrimSpace(config.Export.Format))

	return config, nil
}

// Location resolve o fuso único usado em todas as conversões de data da execução.
func (s Snapchat) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(s.Timezone)
	if err != nil {
		return nil, NewConfigError(fmt.Sprintf("invalid SNAPCHAT_REPORT_TIMEZONE %q: %v", s.Timezone, err))
	}
	return loc, nil
}

// EnvFilePath retorna o primeiro .env encontrado, ou ".env" no diretório atual.
func EnvFilePath() string {
	for _, location := range envFileLocations() {
		if _, err := os.Stat(location); err == nil {
			return location
		}
	}
	return ".env"
}

func envFileLocations() []string {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("config: could not resolve working directory: ", err)
		return []string{".env"}
	}

	return []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
	}
}

// loadEnvFile carrega o .env sem sobrescrever variáveis já definidas no ambiente.
func loadEnvFile() {
	for _, location := range envFileLocations() {
		if err := godotenv.Load(location); err == nil {
			logrus.Debug("config: loaded env file from ", location)
			return
		}
	}

	logrus.Debug("config: no .env file found, using process environment only")
}
