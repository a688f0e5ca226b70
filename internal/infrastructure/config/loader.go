package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config    *Config
	viper     *viper.Viper
	mu        sync.RWMutex
	callbacks []func(*Config)
	watching  bool
}

// NewManager creates a new configuration manager.
func NewManager() (*Manager, error) {
	v := viper.New()

	// Configure Viper for TOML as default format
	v.SetConfigName("config")
	v.SetConfigType("toml")

	configDir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
	}
	v.AddConfigPath(configDir)

	// HOSTD_SERVER_ADDRESS, HOSTD_SETTINGS_BACKEND, ...
	v.SetEnvPrefix("HOSTD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Short names shared with logging.NewFromEnv
	if err := v.BindEnv("logging.level", "HOSTD_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind HOSTD_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "HOSTD_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind HOSTD_LOG_FORMAT: %w", err)
	}

	return &Manager{
		viper:     v,
		callbacks: make([]func(*Config), 0),
	}, nil
}

// Load loads the configuration from file and environment variables.
// A default config.toml is written on first run.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := EnsureDirectories(); err != nil {
		return fmt.Errorf("failed to ensure directories: %w", err)
	}

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	return m.apply()
}

// apply unmarshals, fills derived paths, normalizes and validates. Caller holds m.mu.
func (m *Manager) apply() error {
	config, err := m.unmarshalConfig()
	if err != nil {
		return err
	}
	if err := ensurePaths(config); err != nil {
		return err
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = config
	return nil
}

func (m *Manager) readConfigFile() error {
	if err := m.viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			configFile := m.viper.ConfigFileUsed()
			if configFile == "" {
				configFile, _ = GetConfigFile()
			}
			return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", configFile, err)
		}

		if createErr := m.createDefaultConfig(); createErr != nil {
			configDir, _ := GetConfigDir()
			return fmt.Errorf(
				"failed to create default config at %s: %w\nTry creating the directory manually or check permissions",
				configDir,
				createErr,
			)
		}
		if rereadErr := m.viper.ReadInConfig(); rereadErr != nil {
			return fmt.Errorf("failed to read newly created config file: %w", rereadErr)
		}
	}
	return nil
}

func (m *Manager) unmarshalConfig() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.viper.ConfigFileUsed(),
			err,
		)
	}
	return config, nil
}

// ensurePaths fills paths left empty with their XDG defaults.
func ensurePaths(config *Config) error {
	if config.Settings.Path == "" {
		var (
			path string
			err  error
		)
		if config.Settings.Backend == SettingsBackendFile {
			path, err = GetSettingsFile()
		} else {
			path, err = GetDatabaseFile()
		}
		if err != nil {
			return fmt.Errorf("failed to get settings path: %w", err)
		}
		config.Settings.Path = path
	}

	if config.Logging.LogDir == "" {
		logDir, err := GetLogDir()
		if err != nil {
			return fmt.Errorf("failed to get log directory: %w", err)
		}
		config.Logging.LogDir = logDir
	}
	return nil
}

func normalizeConfig(config *Config) {
	switch SettingsBackend(strings.ToLower(string(config.Settings.Backend))) {
	case SettingsBackendFile:
		config.Settings.Backend = SettingsBackendFile
	default:
		config.Settings.Backend = SettingsBackendSQLite
	}

	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	config.Logging.Format = strings.ToLower(strings.TrimSpace(config.Logging.Format))
	config.Windows.LaunchCommand = strings.TrimSpace(config.Windows.LaunchCommand)
	config.App.Name = strings.TrimSpace(config.App.Name)
	if config.App.Name == "" {
		config.App.Name = defaultAppName
	}
}

// Get returns a copy of the current configuration.
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	configCopy := *m.config
	configCopy.Server.AllowedOrigins = append([]string(nil), m.config.Server.AllowedOrigins...)
	return &configCopy
}

// GetConfigFile returns the path to the configuration file being used.
func (m *Manager) GetConfigFile() string {
	return m.viper.ConfigFileUsed()
}

// createDefaultConfig writes config.toml from DefaultConfig.
func (m *Manager) createDefaultConfig() error {
	configFile, err := GetConfigFile()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configFile), dirPerm); err != nil {
		return err
	}

	if err := WriteConfigOrdered(DefaultConfig(), configFile); err != nil {
		return err
	}

	m.viper.SetConfigFile(configFile)
	return nil
}

// setDefaults sets default configuration values in Viper.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.viper.SetDefault("app.name", defaults.App.Name)

	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
	m.viper.SetDefault("logging.enable_file_log", defaults.Logging.EnableFileLog)
	m.viper.SetDefault("logging.log_dir", defaults.Logging.LogDir)
	m.viper.SetDefault("logging.max_size_mb", defaults.Logging.MaxSizeMB)
	m.viper.SetDefault("logging.max_backups", defaults.Logging.MaxBackups)

	m.viper.SetDefault("server.address", defaults.Server.Address)
	m.viper.SetDefault("server.allowed_origins", defaults.Server.AllowedOrigins)
	m.viper.SetDefault("server.shutdown_timeout_sec", defaults.Server.ShutdownTimeoutSec)

	m.viper.SetDefault("settings.backend", string(defaults.Settings.Backend))
	m.viper.SetDefault("settings.path", defaults.Settings.Path)

	m.viper.SetDefault("windows.launch_command", defaults.Windows.LaunchCommand)
	m.viper.SetDefault("windows.open_on_start", defaults.Windows.OpenOnStart)
}
