package config

// Default configuration constants
const (
	defaultAppName = "hostd"

	// Logging defaults
	defaultLogLevel        = "info"
	defaultLogFormat       = "console"
	defaultLogMaxSizeMB    = 10 // megabytes
	defaultLogMaxBackups   = 5  // files
	defaultServerAddress   = "127.0.0.1:7391"
	defaultShutdownTimeout = 5 // seconds
)

// DefaultConfig returns the configuration used when no file or env override is present.
func DefaultConfig() *Config {
	return &Config{
		App: AppConfig{
			Name: defaultAppName,
		},
		Logging: LoggingConfig{
			Level:         defaultLogLevel,
			Format:        defaultLogFormat,
			EnableFileLog: false,
			MaxSizeMB:     defaultLogMaxSizeMB,
			MaxBackups:    defaultLogMaxBackups,
		},
		Server: ServerConfig{
			Address:            defaultServerAddress,
			AllowedOrigins:     []string{},
			ShutdownTimeoutSec: defaultShutdownTimeout,
		},
		Settings: SettingsConfig{
			Backend: SettingsBackendSQLite,
		},
		Windows: WindowsConfig{
			OpenOnStart: true,
		},
	}
}
