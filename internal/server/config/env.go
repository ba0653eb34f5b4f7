package config

import (
	"context"
	"strconv"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type envConfig struct {
	EndpointAddr  string        `env:"ADDR"`
	SecretKey     string        `env:"SECRET_KEY"`
	SessionTTL    time.Duration `env:"SESSION_TTL"`
	TokenTTL      time.Duration `env:"TOKEN_TTL"`
	ResendAPIKey  string        `env:"RESEND_API_KEY"`
	MailFrom      string        `env:"MAIL_FROM"`
	AppBaseURL    string        `env:"APP_BASE_URL"`
	SecureCookies string        `env:"SECURE_COOKIES"`
	LogLevel      string        `env:"LOG_LEVEL"`
	LogBackend    string        `env:"LOG_BACKEND"`
}

// envPrefix namespaces every variable, e.g. DEVRAHA_SANDBOX_ADDR.
const envPrefix = "DEVRAHA_SANDBOX_"

func parseEnv(config *Config, lookuper envconfig.Lookuper) {
	var ec envConfig
	if err := envconfig.ProcessWith(context.Background(), &envconfig.Config{
		Target:   &ec,
		Lookuper: envconfig.PrefixLookuper(envPrefix, lookuper),
	}); err != nil {
		panic(err)
	}

	setString(&config.EndpointAddr, ec.EndpointAddr)
	setString(&config.SecretKey, ec.SecretKey)
	setString(&config.ResendAPIKey, ec.ResendAPIKey)
	setString(&config.MailFrom, ec.MailFrom)
	setString(&config.AppBaseURL, ec.AppBaseURL)
	setString(&config.LogLevel, ec.LogLevel)
	setString(&config.LogBackend, ec.LogBackend)
	if ec.SessionTTL > 0 {
		config.SessionTTL = ec.SessionTTL
	}
	if ec.TokenTTL > 0 {
		config.TokenTTL = ec.TokenTTL
	}
	if ec.SecureCookies != "" {
		secure, err := strconv.ParseBool(ec.SecureCookies)
		if err != nil {
			panic(err)
		}
		config.SecureCookies = secure
	}
}
