package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/animalspotter/internal/flagx"
)

// JsonConfig is the on-disk form of Config. Empty fields leave the current
// value alone.
type JsonConfig struct {
	ServerBaseURL string `json:"server_base_url"`
	ImageDir      string `json:"image_dir"`
	LogLevel      string `json:"log_level"`
}

// parseJson overlays Config with values from the file named by -c/-config.
// Without that flag it does nothing. Read or unmarshal errors panic.
func parseJson(cfg *Config) {
	path := flagx.ConfigFilePath(os.Args[1:])
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.ServerBaseURL != "" {
		cfg.ServerBaseURL = jc.ServerBaseURL
	}
	if jc.ImageDir != "" {
		cfg.ImageDir = jc.ImageDir
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
}
