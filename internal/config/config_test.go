package config

import (
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"

	"github.com/jbweber/homelab/nettree/internal/logger"
)

func TestNewConfig(t *testing.T) {
	config := NewConfig()

	if config == nil {
		t.Fatal("Expected non-nil config")
	}

	if config.Addr != ":8080" {
		t.Errorf("Expected Addr ':8080', got '%s'", config.Addr)
	}

	if config.LogLevel != "info" {
		t.Errorf("Expected LogLevel 'info', got '%s'", config.LogLevel)
	}
}

func TestConfig_Validate_Defaults(t *testing.T) {
	if err := NewConfig().Validate(); err != nil {
		t.Errorf("Expected default config to be valid, got %v", err)
	}
}

func TestConfig_Validate_InvalidLogLevel(t *testing.T) {
	config := NewConfig()
	config.LogLevel = "chatty"

	err := config.Validate()
	if err == nil {
		t.Fatal("Expected error for invalid log level")
	}

	if !strings.Contains(err.Error(), "invalid log level") {
		t.Errorf("Expected log level error, got: %v", err)
	}
}

func TestConfig_Validate_InvalidAddr(t *testing.T) {
	config := NewConfig()
	config.Addr = "8080"

	err := config.Validate()
	if err == nil {
		t.Fatal("Expected error for address without port separator")
	}

	if !strings.Contains(err.Error(), "invalid listen address") {
		t.Errorf("Expected listen address error, got: %v", err)
	}
}

func TestConfig_Validate_HostAndPort(t *testing.T) {
	config := NewConfig()
	config.Addr = "127.0.0.1:9090"

	if err := config.Validate(); err != nil {
		t.Errorf("Expected no error, got %v", err)
	}
}

func TestConfig_ApplyLogging(t *testing.T) {
	previous := logger.Level()
	defer logger.SetLevel(previous)

	config := NewConfig()
	config.LogLevel = "debug"

	if err := config.ApplyLogging(); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if logger.Level() != zapcore.DebugLevel {
		t.Errorf("Expected debug level, got %s", logger.Level())
	}
}

func TestConfig_ApplyLogging_Invalid(t *testing.T) {
	config := NewConfig()
	config.LogLevel = "nope"

	if err := config.ApplyLogging(); err == nil {
		t.Fatal("Expected error for invalid log level")
	}
}
