package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/adrg/xdg"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolateXDG points every XDG base directory at a fresh temp dir.
func isolateXDG(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	t.Setenv("ENV", "")
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(root, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(root, "data"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(root, "state"))
	xdg.Reload()
	t.Cleanup(xdg.Reload)
	return root
}

func TestSetDefaults(t *testing.T) {
	mgr := &Manager{viper: viper.New()}
	mgr.setDefaults()

	assert.Equal(t, "127.0.0.1:7391", mgr.viper.GetString("server.address"))
	assert.Equal(t, "sqlite", mgr.viper.GetString("settings.backend"))
	assert.Equal(t, "hostd", mgr.viper.GetString("app.name"))
	assert.True(t, mgr.viper.GetBool("windows.open_on_start"))
}

func TestNormalizeConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Settings.Backend = "FILE"
	cfg.Logging.Level = " DEBUG "
	cfg.App.Name = "  "

	normalizeConfig(cfg)

	assert.Equal(t, SettingsBackendFile, cfg.Settings.Backend)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "hostd", cfg.App.Name)

	cfg.Settings.Backend = "postgres"
	normalizeConfig(cfg)
	assert.Equal(t, SettingsBackendSQLite, cfg.Settings.Backend)
}

func TestLoad_WritesDefaultConfigOnFirstRun(t *testing.T) {
	root := isolateXDG(t)

	mgr, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	configFile := filepath.Join(root, "config", "hostd", "config.toml")
	assert.FileExists(t, configFile)

	cfg := mgr.Get()
	assert.Equal(t, "127.0.0.1:7391", cfg.Server.Address)
	assert.Equal(t, SettingsBackendSQLite, cfg.Settings.Backend)
	assert.Equal(t, filepath.Join(root, "data", "hostd", "hostd.sqlite"), cfg.Settings.Path)
	assert.Equal(t, filepath.Join(root, "state", "hostd", "logs"), cfg.Logging.LogDir)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	isolateXDG(t)
	t.Setenv("HOSTD_SERVER_ADDRESS", "127.0.0.1:9000")
	t.Setenv("HOSTD_LOG_LEVEL", "debug")
	t.Setenv("HOSTD_SETTINGS_BACKEND", "file")

	mgr, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	assert.Equal(t, "127.0.0.1:9000", cfg.Server.Address)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, SettingsBackendFile, cfg.Settings.Backend)
	assert.Equal(t, "settings.yaml", filepath.Base(cfg.Settings.Path))
}

func TestLoad_RejectsInvalidFile(t *testing.T) {
	root := isolateXDG(t)
	configDir := filepath.Join(root, "config", "hostd")
	require.NoError(t, os.MkdirAll(configDir, dirPerm))
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.toml"), []byte("[server]\naddress = \"nope\"\n"), filePerm))

	mgr, err := NewManager()
	require.NoError(t, err)

	err = mgr.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "server.address")
}

func TestWatch_ReloadsOnChange(t *testing.T) {
	root := isolateXDG(t)

	mgr, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	changed := make(chan *Config, 4)
	mgr.OnConfigChange(func(cfg *Config) { changed <- cfg })
	require.NoError(t, mgr.Watch())

	cfg := DefaultConfig()
	cfg.Logging.Level = "warn"
	require.NoError(t, WriteConfigOrdered(cfg, filepath.Join(root, "config", "hostd", "config.toml")))

	deadline := time.After(5 * time.Second)
	for {
		select {
		case got := <-changed:
			if got.Logging.Level == "warn" {
				assert.Equal(t, "warn", mgr.Get().Logging.Level)
				return
			}
		case <-deadline:
			t.Fatal("config change was not observed")
		}
	}
}
