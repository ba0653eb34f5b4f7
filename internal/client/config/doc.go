// Package config loads runtime configuration for the Devraha CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c or -config.
//  3. Environment: DEVRAHA_API_BASE_URL (or NEXT_PUBLIC_API_BASE_URL),
//     DEVRAHA_LOCALE, DEVRAHA_LOG_LEVEL, DEVRAHA_LOG_BACKEND.
//  4. Command-line flags, which override everything else.
//
// Supported flags
//
//	-a string   API base URL
//	-l string   locale
//	-v string   log level
//
// # JSON schema
//
//	{
//	  "api_base_url": "http://localhost:6000/api/v1",
//	  "locale": "hi",
//	  "log_level": "debug",
//	  "log_backend": "slog",
//	  "log_pretty": false
//	}
package config
