package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/snapchat-ads-report/internal/domain"
)

func TestLoadBootstrapCredentials(t *testing.T) {
	t.Run("lê o arquivo json", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "snapchat_credentials.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"client_id":"id","client_secret":"secret","redirect_url":"https://localhost:8080/callback"}`), 0o600))

		creds, err := LoadBootstrapCredentials(path)
		require.NoError(t, err)
		assert.Equal(t, "id", creds.ClientID)
		assert.Equal(t, "secret", creds.ClientSecret)
		assert.Equal(t, "https://localhost:8080/callback", creds.RedirectURL)
	})

	t.Run("usa o ambiente quando o arquivo não existe", func(t *testing.T) {
		t.Setenv("SNAPCHAT_CLIENT_ID", "env-id")
		t.Setenv("SNAPCHAT_CLIENT_SECRET", "env-secret")
		t.Setenv("SNAPCHAT_REDIRECT_URL", "http://127.0.0.1:8080/callback")

		creds, err := LoadBootstrapCredentials(filepath.Join(t.TempDir(), "missing.json"))
		require.NoError(t, err)
		assert.Equal(t, "env-id", creds.ClientID)
	})

	t.Run("campos ausentes", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "creds.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"client_id":"id"}`), 0o600))

		_, err := LoadBootstrapCredentials(path)
		assert.ErrorIs(t, err, domain.ErrConfig)

		var cfgErr *ConfigError
		require.ErrorAs(t, err, &cfgErr)
		assert.Equal(t, []string{"client_secret", "redirect_url"}, cfgErr.Missing)
	})

	t.Run("redirect inválido", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "creds.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"client_id":"id","client_secret":"s","redirect_url":"not a url"}`), 0o600))

		_, err := LoadBootstrapCredentials(path)
		assert.ErrorIs(t, err, domain.ErrConfig)
	})

	t.Run("json inválido", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "creds.json")
		require.NoError(t, os.WriteFile(path, []byte(`{`), 0o600))

		_, err := LoadBootstrapCredentials(path)
		assert.ErrorIs(t, err, domain.ErrConfig)
	})
}
