package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/animalspotter/internal/flagx"
	"github.com/dmitrijs2005/animalspotter/internal/timex"
)

// JsonConfig defines a configuration structure tailored for JSON unmarshalling.
// It uses timex.Duration for the validity field, which allows parsing both
// string values such as "15m" and integer nanoseconds.
//
// This struct is only used for reading JSON configuration files. After
// unmarshalling, non-empty fields are copied into the runtime Config.
type JsonConfig struct {
	EndpointAddr          string         `json:"endpoint_addr"`
	DatabaseDSN           string         `json:"database_dsn"`
	SecretKey             string         `json:"secret_key"`
	TokenValidityDuration timex.Duration `json:"token_validity_duration"`
	PhotoBaseURL          string         `json:"photo_base_url"`
	PhotoDir              string         `json:"photo_dir"`
	S3Bucket              string         `json:"s3_bucket"`
	S3Region              string         `json:"s3_region"`
	S3BaseEndpoint        string         `json:"s3_base_endpoint"`
	S3RootUser            string         `json:"s3_root_user"`
	S3RootPassword        string         `json:"s3_root_password"`
	LogLevel              string         `json:"log_level"`
}

// parseJson loads configuration values from the JSON file named by the -c or
// -config flag. Without that flag nothing is loaded. If the file cannot be
// read or contains invalid JSON, the function panics.
func parseJson(config *Config) {
	jsonConfigFile := flagx.ConfigFilePath(os.Args[1:])

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	overlay := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}

	overlay(&config.EndpointAddr, c.EndpointAddr)
	overlay(&config.DatabaseDSN, c.DatabaseDSN)
	overlay(&config.SecretKey, c.SecretKey)
	overlay(&config.PhotoBaseURL, c.PhotoBaseURL)
	overlay(&config.PhotoDir, c.PhotoDir)
	overlay(&config.S3Bucket, c.S3Bucket)
	overlay(&config.S3Region, c.S3Region)
	overlay(&config.S3BaseEndpoint, c.S3BaseEndpoint)
	overlay(&config.S3RootUser, c.S3RootUser)
	overlay(&config.S3RootPassword, c.S3RootPassword)
	overlay(&config.LogLevel, c.LogLevel)

	if c.TokenValidityDuration.Duration > 0 {
		config.TokenValidityDuration = c.TokenValidityDuration.Duration
	}
}
