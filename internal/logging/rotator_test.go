package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRotatingFile_RotatesAndPrunes(t *testing.T) {
	dir := t.TempDir()

	r, err := NewRotatingFile(dir, 1, 2)
	require.NoError(t, err)
	t.Cleanup(func() { _ = r.Close() })

	// Force a tiny threshold so every write past the first rotates.
	r.maxSize = 16

	for i := 0; i < 5; i++ {
		_, err := r.Write([]byte("0123456789abcdef\n"))
		require.NoError(t, err)
	}

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)

	var backups int
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), logFileName+".") {
			backups++
		}
	}
	assert.LessOrEqual(t, backups, 2)
	assert.FileExists(t, filepath.Join(dir, logFileName))
}

func TestNew_WritesJSONToFile(t *testing.T) {
	dir := t.TempDir()
	r, err := NewRotatingFile(dir, 1, 1)
	require.NoError(t, err)

	cfg := DefaultConfig()
	cfg.Format = "json"
	cfg.File = r

	logger := New(cfg)
	logger.Info().Str("channel", "get-path").Msg("dispatched")
	require.NoError(t, r.Close())

	data, err := os.ReadFile(filepath.Join(dir, logFileName))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"channel":"get-path"`)
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, ParseLevel("DEBUG"))
	assert.Equal(t, zerolog.WarnLevel, ParseLevel("warning"))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel("nonsense"))
}
