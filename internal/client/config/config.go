package config

import "github.com/dmitrijs2005/animalspotter/internal/client/client"

// Config holds runtime settings for the sighting CLI.
//
// Fields:
//   - ServerBaseURL: absolute URL the API paths are appended to.
//   - ImageDir: where fetched photos are saved; empty disables saving.
//   - LogLevel: debug, info, warn or error.
type Config struct {
	ServerBaseURL string
	ImageDir      string
	LogLevel      string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = client.DefaultBaseURL
	c.ImageDir = ""
	c.LogLevel = "warn"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
