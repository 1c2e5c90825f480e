package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/candleworks/storefront/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMustLoad(t *testing.T) {
	t.Run("Success - Config File", func(t *testing.T) {
		// Arrange
		dir := t.TempDir()
		path := filepath.Join(dir, "config.yaml")
		content := []byte(`
env: development
backend:
  base_url: "http://10.0.0.5:8080/CandleSystem"
  request_timeout: 5s
ops:
  address: ":9191"
`)
		require.NoError(t, os.WriteFile(path, content, 0o600))
		t.Setenv("CONFIG_PATH", path)

		// Act
		cfg := config.MustLoad()

		// Assert
		assert.Equal(t, "development", cfg.Env)
		assert.Equal(t, "http://10.0.0.5:8080/CandleSystem", cfg.Backend.BaseURL)
		assert.Equal(t, 5*time.Second, cfg.Backend.RequestTimeout)
		assert.Equal(t, ":9191", cfg.Ops.Addr)
	})

	t.Run("Success - Environment Overrides", func(t *testing.T) {
		// Arrange
		dir := t.TempDir()
		path := filepath.Join(dir, "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("env: production\n"), 0o600))
		t.Setenv("CONFIG_PATH", path)
		t.Setenv("BACKEND_BASE_URL", "http://override:8080/CandleSystem")

		// Act
		cfg := config.MustLoad()

		// Assert
		assert.Equal(t, "http://override:8080/CandleSystem", cfg.Backend.BaseURL)
		assert.Equal(t, 10*time.Second, cfg.Backend.RequestTimeout)
	})
}
