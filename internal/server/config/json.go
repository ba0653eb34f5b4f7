package config

import (
	"encoding/json"
	"os"

	"github.com/dayadevraha/devraha/internal/flagx"
	"github.com/dayadevraha/devraha/internal/timex"
)

// JsonConfig is the on-disk shape of the server config file. Durations
// accept both strings such as "30m" and integer nanoseconds.
type JsonConfig struct {
	EndpointAddr  string          `json:"endpoint_addr"`
	SecretKey     string          `json:"secret_key"`
	SessionTTL    *timex.Duration `json:"session_ttl"`
	TokenTTL      *timex.Duration `json:"token_ttl"`
	ResendAPIKey  string          `json:"resend_api_key"`
	MailFrom      string          `json:"mail_from"`
	AppBaseURL    string          `json:"app_base_url"`
	SecureCookies *bool           `json:"secure_cookies"`
	LogLevel      string          `json:"log_level"`
	LogBackend    string          `json:"log_backend"`
	LogPretty     *bool           `json:"log_pretty"`
}

// parseJson overlays config with the file named by -c/-config. Absent keys
// keep their current value. Read and decode errors panic.
func parseJson(config *Config, args []string) {
	path := flagx.ConfigPath(args)
	if path == "" {
		return
	}

	file, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}
	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	setString(&config.EndpointAddr, c.EndpointAddr)
	setString(&config.SecretKey, c.SecretKey)
	setString(&config.ResendAPIKey, c.ResendAPIKey)
	setString(&config.MailFrom, c.MailFrom)
	setString(&config.AppBaseURL, c.AppBaseURL)
	setString(&config.LogLevel, c.LogLevel)
	setString(&config.LogBackend, c.LogBackend)
	if c.SessionTTL != nil {
		config.SessionTTL = c.SessionTTL.Duration
	}
	if c.TokenTTL != nil {
		config.TokenTTL = c.TokenTTL.Duration
	}
	if c.SecureCookies != nil {
		config.SecureCookies = *c.SecureCookies
	}
	if c.LogPretty != nil {
		config.LogPretty = *c.LogPretty
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
