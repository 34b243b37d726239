package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.True(t, cfg.Words.Warm)
	assert.Equal(t, 100, cfg.Words.MaxCount)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
server:
  port: 9000
  shutdownTimeout: 3s
words:
  warm: false
  vocabularies: [simple, nerd]
  maxCount: 5
logging:
  level: debug
  format: json
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, 3*time.Second, cfg.Server.ShutdownTimeout)
	assert.False(t, cfg.Words.Warm)
	assert.Equal(t, []string{"simple", "nerd"}, cfg.Words.Vocabularies)
	assert.Equal(t, 5, cfg.Words.MaxCount)
	assert.Equal(t, "json", cfg.Logging.Format)
	// untouched sections keep defaults
	assert.Equal(t, 10*time.Second, cfg.Server.WriteTimeout)
	assert.True(t, cfg.Metrics.Enabled)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("RW_SERVER_PORT", "7070")
	t.Setenv("RW_WORDS_WARM", "false")
	t.Setenv("RW_WORDS_VOCABULARIES", "full")
	t.Setenv("RW_WORDS_MAX_COUNT", "7")
	t.Setenv("RW_LOGGING_LEVEL", "warn")
	t.Setenv("RW_LOGGING_FORMAT", "json")
	t.Setenv("RW_METRICS_ENABLED", "false")
	t.Setenv("RW_SERVER_SHUTDOWN_TIMEOUT", "1s")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.Server.Port)
	assert.False(t, cfg.Words.Warm)
	assert.Equal(t, []string{"full"}, cfg.Words.Vocabularies)
	assert.Equal(t, 7, cfg.Words.MaxCount)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.False(t, cfg.Metrics.Enabled)
	assert.Equal(t, time.Second, cfg.Server.ShutdownTimeout)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("server: [unclosed"), 0644))
		_, err := Load(path)
		assert.Error(t, err)
	})

	t.Run("invalid values", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "invalid.yaml")
		require.NoError(t, os.WriteFile(path, []byte("server:\n  port: 0\nlogging:\n  format: xml\n"), 0644))
		_, err := Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "server.port")
		assert.Contains(t, err.Error(), "logging.format")
	})
}

func TestValidate(t *testing.T) {
	cfg := defaultConfig()
	require.NoError(t, cfg.Validate())

	cfg.Words.MaxCount = 0
	assert.ErrorContains(t, cfg.Validate(), "words.maxCount")

	cfg = defaultConfig()
	cfg.Metrics.Path = "metrics"
	assert.ErrorContains(t, cfg.Validate(), "metrics.path")
}
