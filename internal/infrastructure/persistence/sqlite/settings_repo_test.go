package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/hostd/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/hostd/internal/logging"
)

func testCtx() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

func newStore(t *testing.T) (*sqlite.SettingsStore, *sqlite.LazyDB) {
	t.Helper()
	lazy := sqlite.NewLazyDB(filepath.Join(t.TempDir(), "hostd.sqlite"))
	t.Cleanup(func() { _ = lazy.Close() })
	return sqlite.NewSettingsStore(lazy), lazy
}

func TestSettingsStore_RoundTrip(t *testing.T) {
	ctx := testCtx()
	store, _ := newStore(t)

	require.NoError(t, store.SetItem(ctx, "theme", "dark"))

	got, err := store.GetItem(ctx, "theme")
	require.NoError(t, err)
	assert.Equal(t, "dark", got)
}

func TestSettingsStore_AbsentKeyIsNil(t *testing.T) {
	store, lazy := newStore(t)

	got, err := store.GetItem(testCtx(), "missing")

	require.NoError(t, err)
	assert.Nil(t, got)
	assert.True(t, lazy.IsInitialized())
}

func TestSettingsStore_OverwriteAndStructuredValues(t *testing.T) {
	ctx := testCtx()
	store, _ := newStore(t)

	require.NoError(t, store.SetItem(ctx, "window", map[string]any{"width": 800, "height": 600}))
	require.NoError(t, store.SetItem(ctx, "window", map[string]any{"width": 1024, "maximized": true}))
	require.NoError(t, store.SetItem(ctx, "recent", []any{"/a", "/b"}))
	require.NoError(t, store.SetItem(ctx, "cleared", nil))

	got, err := store.GetItem(ctx, "window")
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"width": float64(1024), "maximized": true}, got)

	got, err = store.GetItem(ctx, "recent")
	require.NoError(t, err)
	assert.Equal(t, []any{"/a", "/b"}, got)

	got, err = store.GetItem(ctx, "cleared")
	require.NoError(t, err)
	assert.Nil(t, got)

	keys, err := store.Keys(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"cleared", "recent", "window"}, keys)
}

func TestSettingsStore_PersistsAcrossConnections(t *testing.T) {
	ctx := testCtx()
	dbPath := filepath.Join(t.TempDir(), "hostd.sqlite")

	first := sqlite.NewLazyDB(dbPath)
	require.NoError(t, sqlite.NewSettingsStore(first).SetItem(ctx, "zoom", 1.25))
	require.NoError(t, first.Close())

	second := sqlite.NewLazyDB(dbPath)
	t.Cleanup(func() { _ = second.Close() })

	got, err := sqlite.NewSettingsStore(second).GetItem(ctx, "zoom")
	require.NoError(t, err)
	assert.Equal(t, 1.25, got)

	db, err := second.DB(ctx)
	require.NoError(t, err)
	version, err := sqlite.GetMigrationStatus(db)
	require.NoError(t, err)
	assert.EqualValues(t, 1, version)
}

func TestNewConnection_EmptyPath(t *testing.T) {
	_, err := sqlite.NewConnection(testCtx(), "")
	assert.Error(t, err)
}
