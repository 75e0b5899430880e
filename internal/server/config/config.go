// Package config handles configuration for the reference server,
// including defaults, JSON overlay, and command-line flags.
package config

import "time"

// Config holds runtime settings for the reference sighting server.
//
// Fields:
//   - EndpointAddr: bind address for the HTTP API.
//   - DatabaseDSN: PostgreSQL DSN (pgx). Empty keeps everything in memory.
//   - SecretKey: HMAC secret for signing session tokens (HS256). Do not use test defaults in prod.
//   - TokenValidityDuration: session token lifetime.
//   - PhotoBaseURL: public URL photo keys are appended to when S3 is off.
//   - PhotoDir: local directory served under /photos/; empty disables it.
//   - S3Bucket / S3Region / S3BaseEndpoint: object storage settings. An empty
//     bucket disables S3.
//   - S3RootUser / S3RootPassword: credentials for the S3-compatible backend.
//   - LogLevel: debug, info, warn or error.
type Config struct {
	EndpointAddr          string
	DatabaseDSN           string
	SecretKey             string
	TokenValidityDuration time.Duration
	PhotoBaseURL          string
	PhotoDir              string
	S3Bucket              string
	S3Region              string
	S3BaseEndpoint        string
	S3RootUser            string
	S3RootPassword        string
	LogLevel              string
}

// LoadDefaults populates Config with sensible development defaults.
// NOTE: These values are insecure for production and should be overridden.
func (c *Config) LoadDefaults() {
	c.EndpointAddr = ":8080"
	c.DatabaseDSN = ""
	c.SecretKey = "secretKey"
	c.TokenValidityDuration = 24 * time.Hour
	c.PhotoBaseURL = "http://localhost:8080/photos"
	c.PhotoDir = ""
	c.S3Bucket = ""
	c.S3Region = "us-east-1"
	c.S3BaseEndpoint = "http://127.0.0.1:9000/"
	c.S3RootUser = "admin"
	c.S3RootPassword = "secretpassword"
	c.LogLevel = "info"
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file and finally from command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
