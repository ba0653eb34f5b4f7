package config

import (
	"encoding/json"
	"os"

	"github.com/dayadevraha/devraha/internal/flagx"
)

// JsonConfig is the on-disk shape of the CLI config file.
type JsonConfig struct {
	APIBaseURL string `json:"api_base_url"`
	Locale     string `json:"locale"`
	LogLevel   string `json:"log_level"`
	LogBackend string `json:"log_backend"`
	LogPretty  *bool  `json:"log_pretty"`
}

// parseJson overlays cfg with the file named by -c/-config. Absent keys keep
// their current value. Read and decode errors panic.
func parseJson(cfg *Config, args []string) {
	path := flagx.ConfigPath(args)
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}
	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.Locale != "" {
		cfg.Locale = jc.Locale
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
	if jc.LogBackend != "" {
		cfg.LogBackend = jc.LogBackend
	}
	if jc.LogPretty != nil {
		cfg.LogPretty = *jc.LogPretty
	}
}
