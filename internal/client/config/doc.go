// Package config loads runtime configuration for the sighting CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c or -config.
//  3. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the sighting API
//	-d string   directory to save fetched photos into
//	-l string   log level
//
// # JSON schema
//
//	{
//	  "server_base_url": "https://lambdaanimalspotter.vapor.cloud/api",
//	  "image_dir": "photos",
//	  "log_level": "info"
//	}
//
// Environment variables are not read.
package config
