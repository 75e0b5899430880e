package config

import (
	"os"
	"testing"

	"github.com/dmitrijs2005/animalspotter/internal/client/client"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, client.DefaultBaseURL, c.ServerBaseURL)
	assert.Empty(t, c.ImageDir)
	assert.Equal(t, "warn", c.LogLevel)
}

func TestLoadConfig_UsesDefaultsWithoutArgs(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin"}

	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, client.DefaultBaseURL, cfg.ServerBaseURL)
}

func TestLoadConfig_FlagsOverrideJSON(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	path := writeTempJSON(t, "", "", map[string]any{
		"server_base_url": "http://json.example/api",
		"image_dir":       "from-json",
	})
	os.Args = []string{"testbin", "-c", path, "-a", "http://flag.example/api"}

	cfg := LoadConfig()
	assert.Equal(t, "http://flag.example/api", cfg.ServerBaseURL)
	assert.Equal(t, "from-json", cfg.ImageDir)
	assert.Equal(t, "warn", cfg.LogLevel)
}
