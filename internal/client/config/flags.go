package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/animalspotter/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   base URL of the sighting API
//	-d string   directory to save fetched photos into
//	-l string   log level
//
// Only these flags are looked at; os.Args is filtered with flagx.FilterArgs
// first so the -c config flag does not trip the parser.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerBaseURL, "a", cfg.ServerBaseURL, "base URL of the sighting API")
	fs.StringVar(&cfg.ImageDir, "d", cfg.ImageDir, "directory to save fetched photos into")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
