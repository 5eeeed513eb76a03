package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zalando/go-keyring"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"PORT", "ADZUNA_APP_ID", "ADZUNA_APP_KEY", "REED_API_KEY", "USAJOBS_API_KEY"} {
		t.Setenv(k, "")
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	keyring.MockInit()
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	require.NoError(t, err)

	assert.Equal(t, 3001, cfg.App.Port)
	assert.Equal(t, ":3001", cfg.Addr())
	assert.Equal(t, 10, cfg.RateLimit.Requests)
	assert.Equal(t, 60, cfg.RateLimit.WindowSeconds)
	assert.Equal(t, "", cfg.Providers.Reed.APIKey)
}

func TestLoad_FileThenEnvOverlay(t *testing.T) {
	keyring.MockInit()
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(`
app:
  port: 4000
providers:
  reed:
    api_key: from-file
  adzuna:
    app_id: file-id
`), 0o644))

	t.Setenv("PORT", "5000")
	t.Setenv("REED_API_KEY", "from-env")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 5000, cfg.App.Port, "env PORT wins over file")
	assert.Equal(t, "from-env", cfg.Providers.Reed.APIKey, "env credential wins over file")
	assert.Equal(t, "file-id", cfg.Providers.Adzuna.AppID, "file value kept when env unset")
	assert.Equal(t, 10, cfg.RateLimit.Requests, "defaults survive partial files")
}

func TestLoad_KeyringFillsUnsetCredential(t *testing.T) {
	keyring.MockInit()
	clearEnv(t)
	require.NoError(t, keyring.Set("jobboard", "usajobs:api_key", "ring-key"))

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	require.NoError(t, err)

	assert.Equal(t, "ring-key", cfg.Providers.USAJobs.APIKey)
}

func TestLoad_BadYAMLFails(t *testing.T) {
	keyring.MockInit()
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("app: ["), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	res := Validate(cfg)
	assert.True(t, res.OK())
	assert.Len(t, res.Warnings, 3, "all providers unconfigured")

	cfg.Providers.Adzuna.AppID = "id"
	cfg.Providers.Adzuna.AppKey = "key"
	cfg.Providers.Reed.APIKey = "key"
	cfg.Providers.USAJobs.APIKey = "key"
	res = Validate(cfg)
	assert.Empty(t, res.Warnings)

	cfg.App.Port = 0
	cfg.RateLimit.Requests = 0
	res = Validate(cfg)
	assert.False(t, res.OK())
	assert.Len(t, res.Errors, 2)
}
