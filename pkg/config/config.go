// Package config holds the tool configuration: defaults, the YAML file
// layered on top, and environment overrides layered on top of that.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

// Default configuration values, exported for documentation and help text.
const (
	DefaultPort           = 9515
	DefaultBinary         = "safaridriver"
	DefaultStartupTimeout = 30 * time.Second
	DefaultPollInterval   = 250 * time.Millisecond
	DefaultRequestTimeout = 30 * time.Second
	DefaultLogLevel       = "warn"
	DefaultLogFormat      = "text"
	DefaultScreenshotTool = "sips"
)

// Environment variables recognized on top of the config file.
const (
	EnvPort         = "SAFARI_CLI_PORT"
	EnvDriverBinary = "SAFARI_CLI_DRIVER_BINARY"
	EnvLogLevel     = "SAFARI_CLI_LOG_LEVEL"
	EnvLogFormat    = "SAFARI_CLI_LOG_FORMAT"
	EnvJSON         = "SAFARI_CLI_JSON"
	EnvNoColor      = "SAFARI_CLI_NO_COLOR"
)

// Config is the complete tool configuration.
type Config struct {
	Driver      DriverConfig      `yaml:"driver"`
	Request     RequestConfig     `yaml:"request"`
	Screenshots ScreenshotsConfig `yaml:"screenshots"`
	Log         LogConfig         `yaml:"log"`
	Output      OutputConfig      `yaml:"output"`
}

// DriverConfig controls how the driver process is launched and awaited.
type DriverConfig struct {
	Port           int           `yaml:"port"`
	Binary         string        `yaml:"binary"`
	StartupTimeout time.Duration `yaml:"startup_timeout"`
	PollInterval   time.Duration `yaml:"poll_interval"`
}

// RequestConfig controls the HTTP side of driver commands.
type RequestConfig struct {
	Timeout time.Duration `yaml:"timeout"`
}

// ScreenshotsConfig controls where captures land and which external tool
// post-processes them.
type ScreenshotsConfig struct {
	Dir  string `yaml:"dir"`
	Tool string `yaml:"tool"`
}

// LogConfig controls diagnostic logging.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// OutputConfig controls result printing.
type OutputConfig struct {
	JSON    bool `yaml:"json"`
	NoColor bool `yaml:"no_color"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		Driver: DriverConfig{
			Port:           DefaultPort,
			Binary:         DefaultBinary,
			StartupTimeout: DefaultStartupTimeout,
			PollInterval:   DefaultPollInterval,
		},
		Request: RequestConfig{
			Timeout: DefaultRequestTimeout,
		},
		Screenshots: ScreenshotsConfig{
			Tool: DefaultScreenshotTool,
		},
		Log: LogConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}

// Load builds the effective configuration: defaults, then the YAML file
// at path when it exists, then environment overrides. A missing file is
// not an error; an unreadable or invalid one is.
func Load(fs afero.Fs, path string) (*Config, error) {
	cfg := DefaultConfig()
	if strings.TrimSpace(path) != "" {
		if err := loadAndMerge(fs, cfg, path); err != nil && !os.IsNotExist(err) {
			return nil, err
		}
	}
	applyEnvOverrides(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects configurations that cannot work.
func (c *Config) Validate() error {
	if c.Driver.Port < 1 || c.Driver.Port > 65535 {
		return fmt.Errorf("config: driver.port %d out of range", c.Driver.Port)
	}
	if strings.TrimSpace(c.Driver.Binary) == "" {
		return fmt.Errorf("config: driver.binary is empty")
	}
	if c.Driver.StartupTimeout <= 0 {
		return fmt.Errorf("config: driver.startup_timeout must be positive")
	}
	if c.Driver.PollInterval <= 0 {
		return fmt.Errorf("config: driver.poll_interval must be positive")
	}
	if c.Driver.PollInterval >= c.Driver.StartupTimeout {
		return fmt.Errorf("config: driver.poll_interval must be shorter than driver.startup_timeout")
	}
	if c.Request.Timeout <= 0 {
		return fmt.Errorf("config: request.timeout must be positive")
	}
	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("config: log.level: %w", err)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("config: log.format %q not recognized (want text or json)", c.Log.Format)
	}
	return nil
}
