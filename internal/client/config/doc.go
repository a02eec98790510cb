// Package config loads runtime configuration for the credit-transfer CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c or -config.
//  3. Environment variables (CT_*), read with cleanenv.
//  4. Command-line flags, which override everything else.
//
// Supported flags
//
//	-a string   base URL of the REST API (e.g. http://127.0.0.1:8000/api)
//	-i int      notification poll interval (seconds)
//	-s string   path of the local session database
//	-l string   log level: debug, info, warn, error
//
// # JSON schema
//
// Intervals use timex.Duration, so they can be strings like "30s" or
// integer nanoseconds:
//
//	{
//	  "server_base_url": "http://127.0.0.1:8000/api",
//	  "request_timeout": "10s",
//	  "poll_interval": "30s",
//	  "online_check_interval": "5s",
//	  "storage_path": "session.db",
//	  "download_dir": "download",
//	  "log_level": "info",
//	  "log_format": "text",
//	  "enforce_roles": false
//	}
package config
