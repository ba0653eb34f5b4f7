package config

import (
	"context"

	"github.com/sethvargo/go-envconfig"
)

// envConfig lists the variables the CLI reads. NEXT_PUBLIC_API_BASE_URL is
// honoured for deployments that already export it for the website.
type envConfig struct {
	APIBaseURL       string `env:"DEVRAHA_API_BASE_URL"`
	LegacyAPIBaseURL string `env:"NEXT_PUBLIC_API_BASE_URL"`
	Locale           string `env:"DEVRAHA_LOCALE"`
	LogLevel         string `env:"DEVRAHA_LOG_LEVEL"`
	LogBackend       string `env:"DEVRAHA_LOG_BACKEND"`
}

func parseEnv(cfg *Config, lookuper envconfig.Lookuper) {
	var ec envConfig
	if err := envconfig.ProcessWith(context.Background(), &envconfig.Config{
		Target:   &ec,
		Lookuper: lookuper,
	}); err != nil {
		panic(err)
	}

	switch {
	case ec.APIBaseURL != "":
		cfg.APIBaseURL = ec.APIBaseURL
	case ec.LegacyAPIBaseURL != "":
		cfg.APIBaseURL = ec.LegacyAPIBaseURL
	}
	if ec.Locale != "" {
		cfg.Locale = ec.Locale
	}
	if ec.LogLevel != "" {
		cfg.LogLevel = ec.LogLevel
	}
	if ec.LogBackend != "" {
		cfg.LogBackend = ec.LogBackend
	}
}
