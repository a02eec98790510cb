package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/credittransfer/internal/flagx"
	"github.com/dmitrijs2005/credittransfer/internal/timex"
)

// JsonConfig is the on-disk form of Config. Pointer fields distinguish
// "absent" from "zero", so a file only overrides what it mentions.
type JsonConfig struct {
	ServerBaseURL       *string         `json:"server_base_url"`
	RequestTimeout      *timex.Duration `json:"request_timeout"`
	PollInterval        *timex.Duration `json:"poll_interval"`
	OnlineCheckInterval *timex.Duration `json:"online_check_interval"`
	StoragePath         *string         `json:"storage_path"`
	DownloadDir         *string         `json:"download_dir"`
	LogLevel            *string         `json:"log_level"`
	LogFormat           *string         `json:"log_format"`
	EnforceRoles        *bool           `json:"enforce_roles"`
}

// parseJson overlays cfg with the file named by -c / -config, if any.
func parseJson(cfg *Config, args []string) error {
	path := flagx.ConfigFileFlag(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: read %s: %w", path, err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}

	if jc.ServerBaseURL != nil {
		cfg.ServerBaseURL = *jc.ServerBaseURL
	}
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.PollInterval != nil {
		cfg.PollInterval = jc.PollInterval.Duration
	}
	if jc.OnlineCheckInterval != nil {
		cfg.OnlineCheckInterval = jc.OnlineCheckInterval.Duration
	}
	if jc.StoragePath != nil {
		cfg.StoragePath = *jc.StoragePath
	}
	if jc.DownloadDir != nil {
		cfg.DownloadDir = *jc.DownloadDir
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
	if jc.LogFormat != nil {
		cfg.LogFormat = *jc.LogFormat
	}
	if jc.EnforceRoles != nil {
		cfg.EnforceRoles = *jc.EnforceRoles
	}
	return nil
}
