package config

// Config is the host's configuration, loaded from config.toml and HOSTD_ environment variables.
type Config struct {
	App      AppConfig      `mapstructure:"app" yaml:"app" toml:"app"`
	Logging  LoggingConfig  `mapstructure:"logging" yaml:"logging" toml:"logging"`
	Server   ServerConfig   `mapstructure:"server" yaml:"server" toml:"server"`
	Settings SettingsConfig `mapstructure:"settings" yaml:"settings" toml:"settings"`
	Windows  WindowsConfig  `mapstructure:"windows" yaml:"windows" toml:"windows"`
}

// AppConfig names the application whose directories the host resolves.
type AppConfig struct {
	// Name is used for userData, logs and plugin directories.
	Name string `mapstructure:"name" yaml:"name" toml:"name"`
}

// LoggingConfig controls log level, format and the optional rotating log file.
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level" toml:"level"`
	Format string `mapstructure:"format" yaml:"format" toml:"format"`

	// File output configuration
	EnableFileLog bool   `mapstructure:"enable_file_log" yaml:"enable_file_log" toml:"enable_file_log"`
	LogDir        string `mapstructure:"log_dir" yaml:"log_dir" toml:"log_dir"`
	MaxSizeMB     int    `mapstructure:"max_size_mb" yaml:"max_size_mb" toml:"max_size_mb"`
	MaxBackups    int    `mapstructure:"max_backups" yaml:"max_backups" toml:"max_backups"`
}

// ServerConfig is the local front-end transport.
type ServerConfig struct {
	// Address is the loopback listen address.
	Address string `mapstructure:"address" yaml:"address" toml:"address"`
	// AllowedOrigins restricts WebSocket upgrades. Empty allows any origin.
	AllowedOrigins []string `mapstructure:"allowed_origins" yaml:"allowed_origins" toml:"allowed_origins"`
	// ShutdownTimeoutSec bounds graceful shutdown of the HTTP server.
	ShutdownTimeoutSec int `mapstructure:"shutdown_timeout_sec" yaml:"shutdown_timeout_sec" toml:"shutdown_timeout_sec"`
}

// SettingsBackend selects the settings store implementation.
type SettingsBackend string

const (
	SettingsBackendSQLite SettingsBackend = "sqlite"
	SettingsBackendFile   SettingsBackend = "file"
)

// SettingsConfig selects where front-end settings are persisted.
type SettingsConfig struct {
	Backend SettingsBackend `mapstructure:"backend" yaml:"backend" toml:"backend"`
	// Path overrides the default database or YAML file location.
	Path string `mapstructure:"path" yaml:"path" toml:"path"`
}

// WindowsConfig controls the window manager.
type WindowsConfig struct {
	// LaunchCommand spawns a front-end for each new window. "{url}" is
	// replaced with the window's connection URL. Empty disables spawning.
	LaunchCommand string `mapstructure:"launch_command" yaml:"launch_command" toml:"launch_command"`
	// OpenOnStart creates the first window when the host starts.
	OpenOnStart bool `mapstructure:"open_on_start" yaml:"open_on_start" toml:"open_on_start"`
}
