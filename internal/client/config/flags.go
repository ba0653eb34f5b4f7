package config

import (
	"flag"

	"github.com/dayadevraha/devraha/internal/flagx"
)

// parseFlags overrides cfg from the command line:
//
//	-a string   API base URL
//	-l string   locale (en, hi)
//	-v string   log level
//
// Other flags are filtered out first so they do not trip the parser.
func parseFlags(cfg *Config, args []string) {
	fs := flag.NewFlagSet("devraha", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "API base URL")
	fs.StringVar(&cfg.Locale, "l", cfg.Locale, "locale")
	fs.StringVar(&cfg.LogLevel, "v", cfg.LogLevel, "log level (debug, info, warn, error)")

	if err := fs.Parse(flagx.FilterArgs(args, []string{"-a", "-l", "-v"})); err != nil {
		panic(err)
	}
}
