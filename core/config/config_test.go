package config_test

import (
	"testing"

	"localserve/core/config"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := config.LoadConfig(t.TempDir())
	assert.NoError(t, err)

	assert.Equal(t, 8000, cfg.Server.Port)
	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, ".", cfg.Server.Root)
	assert.Equal(t, "index.html", cfg.Server.Homepage)
	assert.False(t, cfg.Server.Browse)
	assert.True(t, cfg.Server.OpenBrowser)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)

	assert.False(t, cfg.Livereload.Enabled)
	assert.Equal(t, 200, cfg.Livereload.DebounceMs)
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	t.Setenv("SERVER_PORT", "9123")
	t.Setenv("SERVER_OPEN_BROWSER", "false")
	t.Setenv("LIVERELOAD_ENABLED", "true")

	cfg, err := config.LoadConfig(t.TempDir())
	assert.NoError(t, err)

	assert.Equal(t, 9123, cfg.Server.Port)
	assert.False(t, cfg.Server.OpenBrowser)
	assert.True(t, cfg.Livereload.Enabled)
}
