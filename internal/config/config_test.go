package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) {
	t.Helper()
	t.Chdir(t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load(New(), "")
	require.NoError(t, err)

	assert.Equal(t, ":5000", cfg.Server.Addr)
	assert.Equal(t, "release", cfg.Server.Mode)
	assert.Equal(t, DevSecret, cfg.Session.Secret)
	assert.Equal(t, "fractiz_session", cfg.Session.CookieName)
	assert.False(t, cfg.Session.Secure)
	assert.Empty(t, cfg.KnowledgeBase.Path)
	assert.True(t, cfg.Store.Enabled)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, 120, cfg.RateLimit.PerMinute)
	assert.True(t, cfg.Metrics.Enabled)
}

func TestLoad_File(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  addr: ":8080"
  mode: debug
knowledge_base:
  path: /srv/kb/fractions.yaml
store:
  enabled: false
rate_limit:
  per_minute: 10
`), 0o644))

	cfg, err := Load(New(), path)
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, "debug", cfg.Server.Mode)
	assert.Equal(t, "/srv/kb/fractions.yaml", cfg.KnowledgeBase.Path)
	assert.False(t, cfg.Store.Enabled)
	assert.Equal(t, 10, cfg.RateLimit.PerMinute)
	assert.Equal(t, "fractiz_session", cfg.Session.CookieName, "unset keys keep defaults")
}

func TestLoad_DiscoversWorkingDirectoryFile(t *testing.T) {
	isolate(t)
	require.NoError(t, os.WriteFile("fractiz.yaml", []byte("log:\n  level: debug\n"), 0o644))

	cfg, err := Load(New(), "")
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	isolate(t)
	_, err := Load(New(), filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_Env(t *testing.T) {
	isolate(t)
	t.Setenv("FRACTIZ_SERVER_ADDR", "127.0.0.1:9000")
	t.Setenv("FRACTIZ_SESSION_SECRET", "from-env")
	t.Setenv("FRACTIZ_STORE_ENABLED", "false")

	cfg, err := Load(New(), "")
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9000", cfg.Server.Addr)
	assert.Equal(t, "from-env", cfg.Session.Secret)
	assert.False(t, cfg.Store.Enabled)
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		cfg, err := Load(New(), "")
		require.NoError(t, err)
		return cfg
	}
	isolate(t)

	cfg := base()
	warnings, err := cfg.Validate()
	require.NoError(t, err)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "development default")

	cfg = base()
	cfg.Session.Secret = "short"
	warnings, err = cfg.Validate()
	require.NoError(t, err)
	assert.Len(t, warnings, 1)

	cfg = base()
	cfg.Session.Secret = "0123456789abcdef0123456789abcdef"
	warnings, err = cfg.Validate()
	require.NoError(t, err)
	assert.Empty(t, warnings)

	cfg = base()
	cfg.Server.Mode = "debug"
	warnings, err = cfg.Validate()
	require.NoError(t, err)
	assert.Empty(t, warnings)

	cfg = base()
	cfg.Session.Secret = ""
	_, err = cfg.Validate()
	assert.Error(t, err)

	cfg = base()
	cfg.Server.Mode = "turbo"
	_, err = cfg.Validate()
	assert.Error(t, err)

	cfg = base()
	cfg.RateLimit.PerMinute = -1
	_, err = cfg.Validate()
	assert.Error(t, err)
}
