package yamlfile_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/hostd/internal/infrastructure/persistence/yamlfile"
	"github.com/bnema/hostd/internal/logging"
)

func testCtx() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

func TestStore_RoundTripAndReopen(t *testing.T) {
	ctx := testCtx()
	path := filepath.Join(t.TempDir(), "nested", "settings.yaml")

	store := yamlfile.New(path)
	require.NoError(t, store.SetItem(ctx, "theme", "dark"))
	require.NoError(t, store.SetItem(ctx, "sidebar", map[string]any{"open": true}))

	got, err := store.GetItem(ctx, "theme")
	require.NoError(t, err)
	assert.Equal(t, "dark", got)

	reopened := yamlfile.New(path)
	got, err = reopened.GetItem(ctx, "theme")
	require.NoError(t, err)
	assert.Equal(t, "dark", got)

	got, err = reopened.GetItem(ctx, "sidebar")
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"open": true}, got)
}

func TestStore_MissingFileAndKey(t *testing.T) {
	store := yamlfile.New(filepath.Join(t.TempDir(), "settings.yaml"))

	got, err := store.GetItem(testCtx(), "nothing")

	require.NoError(t, err)
	assert.Nil(t, got)
	assert.NoFileExists(t, store.Path())
}

func TestStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("theme: [unterminated"), 0o600))

	_, err := yamlfile.New(path).GetItem(testCtx(), "theme")

	assert.Error(t, err)
}

func TestStore_Keys(t *testing.T) {
	ctx := testCtx()
	store := yamlfile.New(filepath.Join(t.TempDir(), "settings.yaml"))

	keys, err := store.Keys(ctx)
	require.NoError(t, err)
	assert.Empty(t, keys)

	require.NoError(t, store.SetItem(ctx, "zoom", 1.5))
	require.NoError(t, store.SetItem(ctx, "accent", "blue"))

	keys, err = store.Keys(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"accent", "zoom"}, keys)
}

func TestStore_SharedFileSeesOtherWriters(t *testing.T) {
	ctx := testCtx()
	path := filepath.Join(t.TempDir(), "settings.yaml")
	host := yamlfile.New(path)
	cli := yamlfile.New(path)

	require.NoError(t, host.SetItem(ctx, "theme", "dark"))
	require.NoError(t, cli.SetItem(ctx, "zoom", 1.25))

	got, err := host.GetItem(ctx, "zoom")
	require.NoError(t, err)
	assert.Equal(t, 1.25, got)

	require.NoError(t, host.SetItem(ctx, "theme", "light"))

	reopened := yamlfile.New(path)
	zoom, err := reopened.GetItem(ctx, "zoom")
	require.NoError(t, err)
	assert.Equal(t, 1.25, zoom, "a later set must not drop the other writer's key")
	theme, err := reopened.GetItem(ctx, "theme")
	require.NoError(t, err)
	assert.Equal(t, "light", theme)
}
