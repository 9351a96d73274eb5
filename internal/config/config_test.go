package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("PORTFOLIO_PORT", "")

	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, "release", cfg.Mode)
	assert.Empty(t, cfg.Content)
	assert.Empty(t, cfg.AssetsDir)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, slog.LevelInfo, cfg.Level())
	assert.Empty(t, cfg.TrustedProxies)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "portfolio.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
port: 9000
mode: debug
content: site.yaml
log_format: json
shutdown_timeout: 3s
`), 0644))

	cfg, err := Load(viper.New(), path)
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Port)
	assert.Equal(t, "debug", cfg.Mode)
	assert.Equal(t, "site.yaml", cfg.Content)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 3*time.Second, cfg.ShutdownTimeout)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(viper.New(), filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "portfolio.yaml")
	require.NoError(t, os.WriteFile(path, []byte("port: 9000\nlog_level: info\n"), 0644))

	t.Setenv("PORTFOLIO_PORT", "9100")
	t.Setenv("PORTFOLIO_LOG_LEVEL", "debug")

	cfg, err := Load(viper.New(), path)
	require.NoError(t, err)
	assert.Equal(t, 9100, cfg.Port)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestPlainPortEnv(t *testing.T) {
	t.Setenv("PORT", "3000")

	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)
	assert.Equal(t, 3000, cfg.Port)
}

func TestPrefixedPortWinsOverPlainPort(t *testing.T) {
	t.Setenv("PORT", "3000")
	t.Setenv("PORTFOLIO_PORT", "4000")

	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)
	assert.Equal(t, 4000, cfg.Port)
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := map[string]string{
		"PORTFOLIO_MODE":       "turbo",
		"PORTFOLIO_LOG_FORMAT": "xml",
		"PORTFOLIO_LOG_LEVEL":  "verbos",
		"PORTFOLIO_PORT":       "70000",
	}
	for key, val := range tests {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, val)
			_, err := Load(viper.New(), "")
			assert.Error(t, err)
		})
	}
}

func TestLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"INFO":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	}
	for in, want := range tests {
		t.Run(in, func(t *testing.T) {
			t.Setenv("PORTFOLIO_LOG_LEVEL", in)
			cfg, err := Load(viper.New(), "")
			require.NoError(t, err)
			assert.Equal(t, want, cfg.Level())
		})
	}
}

func TestTrustedProxies(t *testing.T) {
	path := filepath.Join(t.TempDir(), "portfolio.yaml")
	require.NoError(t, os.WriteFile(path, []byte("trusted_proxies:\n  - 10.0.0.0/8\n  - 127.0.0.1\n"), 0644))

	cfg, err := Load(viper.New(), path)
	require.NoError(t, err)
	assert.Equal(t, []string{"10.0.0.0/8", "127.0.0.1"}, cfg.TrustedProxies)
}
