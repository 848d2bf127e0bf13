package main

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/theta-osc/osc-go/pkg/theta"
)

// Config holds the osc-cli settings. Values come from an optional YAML
// file and are overridden by command-line flags.
type Config struct {
	Endpoint     string        `yaml:"endpoint"`
	Username     string        `yaml:"username"`
	Password     string        `yaml:"password"`
	PollInterval time.Duration `yaml:"poll_interval"`
	LogLevel     string        `yaml:"log_level"`
	ProtocolLog  string        `yaml:"protocol_log"`
	MetricsAddr  string        `yaml:"metrics_addr"`
}

// DefaultConfig returns the settings for a camera in access point mode.
func DefaultConfig() Config {
	return Config{
		Endpoint: theta.DefaultEndpoint,
		LogLevel: "info",
	}
}

// LoadConfig reads path over the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

// Validate checks values the flags and the file can both get wrong.
func (c Config) Validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q (use: debug, info, warn, error)", c.LogLevel)
	}
	if c.PollInterval < 0 {
		return fmt.Errorf("invalid poll interval %s", c.PollInterval)
	}
	if (c.Username == "") != (c.Password == "") {
		return fmt.Errorf("username and password must be set together")
	}
	return nil
}

// CameraConfig converts the settings for theta.New.
func (c Config) CameraConfig() theta.Config {
	cfg := theta.DefaultConfig()
	cfg.Endpoint = c.Endpoint
	cfg.Username = c.Username
	cfg.Password = c.Password
	if c.PollInterval > 0 {
		cfg.PollInterval = c.PollInterval
	}
	return cfg
}
