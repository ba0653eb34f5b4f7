package config

import (
	"os"

	"github.com/sethvargo/go-envconfig"

	"github.com/dayadevraha/devraha/internal/client/client"
)

// Config holds runtime settings for the Devraha CLI.
type Config struct {
	APIBaseURL string
	Locale     string
	LogLevel   string
	LogBackend string
	LogPretty  bool
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = client.DefaultBaseURL
	c.Locale = "en"
	c.LogLevel = "warn"
	c.LogBackend = "zerolog"
	c.LogPretty = true
}

// LoadConfig applies defaults, then the JSON file, the environment and the
// command-line flags. Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	args := os.Args[1:]

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg, args)
	parseEnv(cfg, envconfig.OsLookuper())
	parseFlags(cfg, args)
	return cfg
}
