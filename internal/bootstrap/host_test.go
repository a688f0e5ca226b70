package bootstrap

import (
	"context"
	"encoding/json"
	"net/http"
	"path/filepath"
	"testing"
	"time"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	portmocks "github.com/bnema/hostd/internal/application/port/mocks"
	"github.com/bnema/hostd/internal/infrastructure/config"
	"github.com/bnema/hostd/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/hostd/internal/infrastructure/persistence/yamlfile"
	"github.com/bnema/hostd/internal/logging"
)

func testContext() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

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

func loadConfig(t *testing.T) *config.Manager {
	t.Helper()
	isolateXDG(t)
	t.Setenv("HOSTD_SERVER_ADDRESS", "127.0.0.1:0")

	mgr, err := config.NewManager()
	require.NoError(t, err)
	require.NoError(t, mgr.Load())
	return mgr
}

type memorySettings map[string]any

func (m memorySettings) GetItem(_ context.Context, key string) (any, error) { return m[key], nil }

func (m memorySettings) SetItem(_ context.Context, key string, value any) error {
	m[key] = value
	return nil
}

func TestHost_RunServesAndOpensFirstWindow(t *testing.T) {
	configs := loadConfig(t)

	ctx, cancel := context.WithCancel(testContext())
	defer cancel()

	host, err := New(ctx, configs, Options{
		Dialogs:  portmocks.NewMockDialogPresenter(t),
		Opener:   portmocks.NewMockURLOpener(t),
		Settings: memorySettings{},
	})
	require.NoError(t, err)
	defer host.Close()

	assert.Contains(t, channelNames(host.Router), "get-settings")

	errCh := make(chan error, 1)
	go func() { errCh <- host.Run(ctx) }()

	require.Eventually(t, func() bool {
		return host.Server.Addr() != "" && host.Windows.Count() == 1
	}, 5*time.Second, 10*time.Millisecond)

	resp, err := http.Get("http://" + host.Server.Addr() + "/healthz")
	require.NoError(t, err)
	var health map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&health))
	resp.Body.Close()
	assert.EqualValues(t, 1, health["windows"])

	cancel()
	select {
	case err := <-errCh:
		assert.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("host did not stop")
	}
}

func TestHost_InvalidLaunchCommand(t *testing.T) {
	configs := loadConfig(t)
	t.Setenv("HOSTD_WINDOWS_LAUNCH_COMMAND", `frontend "unterminated`)
	require.NoError(t, configs.Load())

	_, err := New(testContext(), configs, Options{Settings: memorySettings{}})
	assert.ErrorContains(t, err, "launch_command")
}

func TestNewSettingsStore(t *testing.T) {
	dir := t.TempDir()

	cfg := config.DefaultConfig()
	cfg.Settings.Backend = config.SettingsBackendFile
	cfg.Settings.Path = filepath.Join(dir, "settings.yaml")
	store, closer, err := NewSettingsStore(cfg)
	require.NoError(t, err)
	assert.IsType(t, &yamlfile.Store{}, store)
	assert.NoError(t, closer.Close())

	cfg.Settings.Backend = config.SettingsBackendSQLite
	cfg.Settings.Path = filepath.Join(dir, "hostd.sqlite")
	store, closer, err = NewSettingsStore(cfg)
	require.NoError(t, err)
	assert.IsType(t, &sqlite.SettingsStore{}, store)
	assert.NoError(t, closer.Close())

	cfg.Settings.Backend = "redis"
	_, _, err = NewSettingsStore(cfg)
	assert.Error(t, err)
}

func TestNewLogger_FileOutput(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Logging.EnableFileLog = true
	cfg.Logging.LogDir = t.TempDir()

	logger, closer, err := NewLogger(cfg)
	require.NoError(t, err)
	logger.Info().Msg("hello")
	require.NoError(t, closer.Close())

	assert.FileExists(t, filepath.Join(cfg.Logging.LogDir, "hostd.log"))
}
