package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/snapchat-ads-report/internal/domain"
)

func TestLoad(t *testing.T) {
	t.Run("aplica os padrões", func(t *testing.T) {
		cfg, err := Load(viper.New())
		require.NoError(t, err)

		assert.Equal(t, "https://accounts.snapchat.com", cfg.Snapchat.AuthURL)
		assert.Equal(t, "https://adsapi.snapchat.com", cfg.Snapchat.APIURL)
		assert.Equal(t, "Europe/Paris", cfg.Snapchat.Timezone)
		assert.Equal(t, time.Duration(0), cfg.Snapchat.HTTPTimeout)
		assert.Equal(t, "csv", cfg.Export.Format)
		assert.Equal(t, ".", cfg.Export.OutputDir)
		assert.Equal(t, "info", cfg.App.LogLevel)
	})

	t.Run("lê as variáveis de ambiente", func(t *testing.T) {
		t.Setenv("SNAPCHAT_CLIENT_ID", "client")
		t.Setenv("SNAPCHAT_CLIENT_SECRET", "secret")
		t.Setenv("SNAPCHAT_REFRESH_TOKEN", "refresh")
		t.Setenv("SNAPCHAT_ORGANIZATION_ID", "org")
		t.Setenv("SNAPCHAT_AD_ACCOUNTS_ID", "acc")
		t.Setenv("SNAPCHAT_API_URL", "http://localhost:9000/")
		t.Setenv("SNAPCHAT_HTTP_TIMEOUT", "15s")
		t.Setenv("EXPORT_FORMAT", " XLSX ")

		cfg, err := Load(viper.New())
		require.NoError(t, err)

		assert.Equal(t, "client", cfg.Snapchat.ClientID)
		assert.Equal(t, "secret", cfg.Snapchat.ClientSecret)
		assert.Equal(t, "refresh", cfg.Snapchat.RefreshToken)
		assert.Equal(t, "org", cfg.Snapchat.OrganizationID)
		assert.Equal(t, "acc", cfg.Snapchat.AdAccountID)
		assert.Equal(t, "http://localhost:9000", cfg.Snapchat.APIURL)
		assert.Equal(t, 15*time.Second, cfg.Snapchat.HTTPTimeout)
		assert.Equal(t, "xlsx", cfg.Export.Format)
		assert.NoError(t, cfg.Snapchat.ValidateCredentials())
	})
}

func TestValidateCredentials(t *testing.T) {
	complete := Snapchat{
		ClientID:       "client",
		ClientSecret:   "secret",
		RefreshToken:   "refresh",
		OrganizationID: "org",
		AdAccountID:    "acc",
	}

	tests := []struct {
		name        string
		mutate      func(s *Snapchat)
		wantMissing []string
	}{
		{
			name:   "credenciais completas",
			mutate: func(s *Snapchat) {},
		},
		{
			name:        "sem refresh token",
			mutate:      func(s *Snapchat) { s.RefreshToken = "" },
			wantMissing: []string{"SNAPCHAT_REFRESH_TOKEN"},
		},
		{
			name: "só espaços conta como ausente",
			mutate: func(s *Snapchat) {
				s.ClientID = "   "
				s.AdAccountID = ""
			},
			wantMissing: []string{"SNAPCHAT_AD_ACCOUNTS_ID", "SNAPCHAT_CLIENT_ID"},
		},
		{
			name:   "tudo vazio",
			mutate: func(s *Snapchat) { *s = Snapchat{} },
			wantMissing: []string{
				"SNAPCHAT_AD_ACCOUNTS_ID",
				"SNAPCHAT_CLIENT_ID",
				"SNAPCHAT_CLIENT_SECRET",
				"SNAPCHAT_ORGANIZATION_ID",
				"SNAPCHAT_REFRESH_TOKEN",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			creds := complete
			tt.mutate(&creds)

			err := creds.ValidateCredentials()
			if tt.wantMissing == nil {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrConfig))

			var cfgErr *ConfigError
			require.ErrorAs(t, err, &cfgErr)
			assert.Equal(t, tt.wantMissing, cfgErr.Missing)
			for _, name := range tt.wantMissing {
				assert.Contains(t, err.Error(), name)
			}
		})
	}
}

func TestLocation(t *testing.T) {
	loc, err := Snapchat{Timezone: "Europe/Paris"}.Location()
	require.NoError(t, err)
	assert.Equal(t, "Europe/Paris", loc.String())

	_, err = Snapchat{Timezone: "Mars/Olympus"}.Location()
	assert.ErrorIs(t, err, domain.ErrConfig)
}

func TestEnvFileStorage(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	storage := NewEnvFileStorage(path)

	secrets, err := storage.ListSecrets()
	require.NoError(t, err)
	assert.Empty(t, secrets)

	require.NoError(t, os.WriteFile(path, []byte("LOG_LEVEL=debug\nSNAPCHAT_REFRESH_TOKEN=old\n"), 0o600))

	err = storage.AddOrUpdateSecrets(map[string]string{
		"SNAPCHAT_REFRESH_TOKEN":   "new",
		"SNAPCHAT_CLIENT_ID":       "client",
		"SNAPCHAT_ORGANIZATION_ID": "",
	})
	require.NoError(t, err)

	secrets, err = storage.ListSecrets()
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"LOG_LEVEL":              "debug",
		"SNAPCHAT_REFRESH_TOKEN": "new",
		"SNAPCHAT_CLIENT_ID":     "client",
	}, secrets)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}
