package config

import (
	"fmt"
	"os"
	"time"
)

// Config holds runtime settings for the CLI.
//
// EnforceRoles turns on the per-view role check of the session gate. It is
// off by default: protected views then only require a credential.
type Config struct {
	ServerBaseURL       string        `env:"CT_SERVER_URL"`
	RequestTimeout      time.Duration `env:"CT_REQUEST_TIMEOUT"`
	PollInterval        time.Duration `env:"CT_POLL_INTERVAL"`
	OnlineCheckInterval time.Duration `env:"CT_ONLINE_CHECK_INTERVAL"`
	StoragePath         string        `env:"CT_STORAGE_PATH"`
	DownloadDir         string        `env:"CT_DOWNLOAD_DIR"`
	LogLevel            string        `env:"CT_LOG_LEVEL"`
	LogFormat           string        `env:"CT_LOG_FORMAT"`
	EnforceRoles        bool          `env:"CT_ENFORCE_ROLES"`
}

func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://127.0.0.1:8000/api"
	c.RequestTimeout = 10 * time.Second
	c.PollInterval = 30 * time.Second
	c.OnlineCheckInterval = 5 * time.Second
	c.StoragePath = "session.db"
	c.DownloadDir = "download"
	c.LogLevel = "info"
	c.LogFormat = "text"
	c.EnforceRoles = false
}

// Validate rejects settings the client cannot run with.
func (c *Config) Validate() error {
	if c.ServerBaseURL == "" {
		return fmt.Errorf("server base url is required")
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("request timeout must be positive, got %s", c.RequestTimeout)
	}
	if c.PollInterval <= 0 {
		return fmt.Errorf("poll interval must be positive, got %s", c.PollInterval)
	}
	if c.OnlineCheckInterval <= 0 {
		return fmt.Errorf("online check interval must be positive, got %s", c.OnlineCheckInterval)
	}
	if c.StoragePath == "" {
		return fmt.Errorf("storage path is required")
	}
	return nil
}

// LoadConfig builds a Config from defaults, the JSON file, the environment
// and the process command line, in that order.
func LoadConfig() (*Config, error) {
	return load(os.Args[1:])
}

func load(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseJson(cfg, args); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}
