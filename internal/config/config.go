package config

import (
	"fmt"
	"net"

	"go.uber.org/zap/zapcore"

	"github.com/jbweber/homelab/nettree/internal/logger"
)

// Config holds all configuration for the nettree commands
type Config struct {
	Addr     string // Listen address for the HTTP service
	LogLevel string // Log level name: debug, info, warn, error
}

// NewConfig creates a new Config with default values
func NewConfig() *Config {
	return &Config{
		Addr:     ":8080",
		LogLevel: "info",
	}
}

// Validate checks that every field holds a usable value
func (c *Config) Validate() error {
	if _, err := c.Level(); err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}

	if _, _, err := net.SplitHostPort(c.Addr); err != nil {
		return fmt.Errorf("invalid listen address %q: %w", c.Addr, err)
	}

	return nil
}

// Level returns the parsed log level
func (c *Config) Level() (zapcore.Level, error) {
	return logger.ParseLevel(c.LogLevel)
}

// ApplyLogging sets the shared logger level from the configuration
func (c *Config) ApplyLogging() error {
	lvl, err := c.Level()
	if err != nil {
		return err
	}
	logger.SetLevel(lvl)
	return nil
}
