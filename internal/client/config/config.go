// Package config loads dashctl's configuration with viper from
// $XDG_CONFIG_HOME/dashctl/config.yaml and DASHCTL_ environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Domain names used as keys under sync.
const (
	DomainMaintenance    = "maintenance"
	DomainQA             = "qa"
	DomainReport         = "report"
	DomainServiceClients = "service_clients"
)

// Config holds all dashctl configuration.
type Config struct {
	Gateway GatewayConfig `mapstructure:"gateway"`
	Session SessionConfig `mapstructure:"session"`
	Log     LogConfig     `mapstructure:"log"`
	Sync    SyncConfig    `mapstructure:"sync"`
}

// GatewayConfig locates the gateway.
type GatewayConfig struct {
	URL     string        `mapstructure:"url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// SessionConfig locates the persisted credential store.
type SessionConfig struct {
	Path string `mapstructure:"path"`
}

// LogConfig holds logging configuration. An empty File discards logs,
// since the TUI owns the terminal.
type LogConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// SyncConfig holds client-level retry settings and per-domain refresh windows.
type SyncConfig struct {
	RetryDelay     time.Duration `mapstructure:"retry_delay"`
	MaxRetries     int           `mapstructure:"max_retries"`
	Maintenance    DomainSync    `mapstructure:"maintenance"`
	QA             DomainSync    `mapstructure:"qa"`
	Report         DomainSync    `mapstructure:"report"`
	ServiceClients DomainSync    `mapstructure:"service_clients"`
}

// DomainSync sets how long a domain's data stays fresh and how often it is
// refreshed in the background.
type DomainSync struct {
	StaleAfter      time.Duration `mapstructure:"stale_after"`
	RefreshInterval time.Duration `mapstructure:"refresh_interval"`
}

// Domain returns the sync settings for a domain name.
func (s SyncConfig) Domain(name string) (DomainSync, bool) {
	switch name {
	case DomainMaintenance:
		return s.Maintenance, true
	case DomainQA:
		return s.QA, true
	case DomainReport:
		return s.Report, true
	case DomainServiceClients:
		return s.ServiceClients, true
	default:
		return DomainSync{}, false
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("gateway.url", "http://localhost:8080")
	v.SetDefault("gateway.timeout", "20s")
	v.SetDefault("session.path", filepath.Join(dataDir(), "session.db"))
	v.SetDefault("log.file", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("sync.retry_delay", "3s")
	v.SetDefault("sync.max_retries", 2)

	windows := map[string][2]string{
		DomainMaintenance:    {"2m", "60s"},
		DomainQA:             {"5m", "120s"},
		DomainReport:         {"5m", "120s"},
		DomainServiceClients: {"2m", "60s"},
	}
	for name, w := range windows {
		v.SetDefault("sync."+name+".stale_after", w[0])
		v.SetDefault("sync."+name+".refresh_interval", w[1])
	}
}

// Load reads configuration. When path is empty the default locations are
// searched and a missing file is not an error.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("DASHCTL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(configDir())
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Validate checks the loaded configuration.
func (c *Config) Validate() error {
	var errs []error
	if c.Gateway.URL == "" {
		errs = append(errs, errors.New("gateway.url is required"))
	}
	if c.Gateway.Timeout <= 0 {
		errs = append(errs, errors.New("gateway.timeout must be positive"))
	}
	if c.Session.Path == "" {
		errs = append(errs, errors.New("session.path is required"))
	}
	if c.Sync.RetryDelay < 0 {
		errs = append(errs, errors.New("sync.retry_delay must not be negative"))
	}
	if c.Sync.MaxRetries < 0 {
		errs = append(errs, fmt.Errorf("sync.max_retries must be >= 0, got %d", c.Sync.MaxRetries))
	}
	for _, name := range []string{DomainMaintenance, DomainQA, DomainReport, DomainServiceClients} {
		d, _ := c.Sync.Domain(name)
		if d.StaleAfter <= 0 {
			errs = append(errs, fmt.Errorf("sync.%s.stale_after must be positive", name))
		}
		if d.RefreshInterval <= 0 {
			errs = append(errs, fmt.Errorf("sync.%s.refresh_interval must be positive", name))
		}
	}
	return errors.Join(errs...)
}

func configDir() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "dashctl")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "dashctl")
}

func dataDir() string {
	if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
		return filepath.Join(dir, "dashctl")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "dashctl")
}
