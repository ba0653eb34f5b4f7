// Package config handles configuration for the sandbox API server,
// including defaults, a JSON overlay, environment variables and
// command-line flags.
package config

import (
	"os"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Config holds runtime settings for the sandbox API.
//
// Fields:
//   - EndpointAddr: bind address of the HTTP listener.
//   - SecretKey: HMAC secret for signing session JWTs (HS256). Do not use the default outside development.
//   - SessionTTL: lifetime of a session cookie.
//   - TokenTTL: lifetime of email verification and password reset tokens.
//   - ResendAPIKey / MailFrom: Resend credentials; without a key mail is only logged.
//   - AppBaseURL: site address used to build the links in outgoing mail.
//   - SecureCookies: set the Secure attribute on session cookies.
type Config struct {
	EndpointAddr  string
	SecretKey     string
	SessionTTL    time.Duration
	TokenTTL      time.Duration
	ResendAPIKey  string
	MailFrom      string
	AppBaseURL    string
	SecureCookies bool
	LogLevel      string
	LogBackend    string
	LogPretty     bool
}

// LoadDefaults populates Config with development defaults.
// NOTE: These values are insecure for production and should be overridden.
func (c *Config) LoadDefaults() {
	c.EndpointAddr = ":6000"
	c.SecretKey = "secretKey"
	c.SessionTTL = 24 * time.Hour
	c.TokenTTL = time.Hour
	c.MailFrom = "DAYA Devraha <no-reply@dayadevraha.com>"
	c.AppBaseURL = "http://localhost:3000"
	c.LogLevel = "info"
	c.LogBackend = "zerolog"
}

// LoadConfig builds a Config by applying defaults, then the optional JSON
// file, the environment and finally the command-line flags.
func LoadConfig() *Config {
	args := os.Args[1:]

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg, args)
	parseEnv(cfg, envconfig.OsLookuper())
	parseFlags(cfg, args)
	return cfg
}
