package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 8000, cfg.Server.Port)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, 15, cfg.Providers.TimeoutSeconds)
	assert.Equal(t, 5, cfg.Providers.NewsPageSize)
	assert.False(t, cfg.Providers.NewsScraper)
	assert.Equal(t, "GEMINI", cfg.LLM.Provider)
	assert.Equal(t, "gemini-1.5-flash", cfg.LLM.Model)
	assert.Equal(t, 100, cfg.Cache.Capacity)
	assert.Equal(t, 600, cfg.Cache.TTLSeconds)
}

func TestLoadConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte(`
server:
  port: 9090
llm:
  provider: OPENAI
cache:
  ttl_seconds: 120
`)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "OPENAI", cfg.LLM.Provider)
	assert.Equal(t, "gpt-4o-mini", cfg.LLM.Model, "model default should follow the provider")
	assert.Equal(t, 120, cfg.Cache.TTLSeconds)
	assert.Equal(t, 100, cfg.Cache.Capacity)
}

func TestLoadConfigInvalidProvider(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("llm:\n  provider: BARD\n"), 0o644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestLoadConfigEnvOverride(t *testing.T) {
	t.Setenv("PULSE_LLM_PROVIDER", "CLAUDE")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "CLAUDE", cfg.LLM.Provider)
	assert.Equal(t, "claude-3-5-haiku-latest", cfg.LLM.Model)
}

func TestValidateBounds(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	cfg.Cache.Capacity = -1
	assert.Error(t, cfg.Validate())

	cfg.Cache.Capacity = 100
	cfg.Providers.NewsPageSize = 0
	assert.Error(t, cfg.Validate())
}
