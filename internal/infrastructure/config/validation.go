package config

import (
	"fmt"
	"net"
	"strings"

	"github.com/rs/zerolog"
)

// validateConfig performs validation of configuration values
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateLogging(config)...)
	validationErrors = append(validationErrors, validateServer(config)...)
	validationErrors = append(validationErrors, validateSettings(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}

	return nil
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	if config.Logging.Level != "" {
		if _, err := zerolog.ParseLevel(config.Logging.Level); err != nil {
			validationErrors = append(validationErrors, fmt.Sprintf("logging.level %q is not a valid level", config.Logging.Level))
		}
	}
	switch config.Logging.Format {
	case "", "console", "json":
	default:
		validationErrors = append(validationErrors, "logging.format must be one of: console, json")
	}
	if config.Logging.MaxSizeMB < 0 {
		validationErrors = append(validationErrors, "logging.max_size_mb must be non-negative")
	}
	if config.Logging.MaxBackups < 0 {
		validationErrors = append(validationErrors, "logging.max_backups must be non-negative")
	}
	return validationErrors
}

func validateServer(config *Config) []string {
	var validationErrors []string
	if _, _, err := net.SplitHostPort(config.Server.Address); err != nil {
		validationErrors = append(validationErrors, fmt.Sprintf("server.address %q must be host:port", config.Server.Address))
	}
	if config.Server.ShutdownTimeoutSec < 0 {
		validationErrors = append(validationErrors, "server.shutdown_timeout_sec must be non-negative")
	}
	return validationErrors
}

func validateSettings(config *Config) []string {
	switch config.Settings.Backend {
	case SettingsBackendSQLite, SettingsBackendFile:
		return nil
	default:
		return []string{"settings.backend must be one of: sqlite, file"}
	}
}
