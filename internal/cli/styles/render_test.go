package styles_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/hostd/internal/cli/styles"
	"github.com/bnema/hostd/internal/domain/build"
)

func TestRenderer_RenderPaths(t *testing.T) {
	r := styles.NewRenderer(styles.NewTheme())

	out := r.RenderPaths([]styles.PathRow{
		{Name: "home", Path: "/home/me"},
		{Name: "recent", Err: errors.New("path unavailable")},
	})
	require.Contains(t, out, "home")
	require.Contains(t, out, "/home/me")
	require.Contains(t, out, "path unavailable")
}

func TestRenderer_RenderSettings(t *testing.T) {
	r := styles.NewRenderer(styles.NewTheme())

	assert.Contains(t, r.RenderSettings(nil, nil), "no settings")

	out := r.RenderSettings([]string{"theme"}, map[string]string{"theme": `"dark"`})
	assert.Contains(t, out, "theme")
	assert.Contains(t, out, `"dark"`)
}

func TestRenderer_RenderStatus(t *testing.T) {
	r := styles.NewRenderer(styles.NewTheme())

	up := r.RenderStatus(styles.StatusInfo{Address: "127.0.0.1:7391", Running: true, Windows: 2})
	assert.Contains(t, up, "2 windows")

	down := r.RenderStatus(styles.StatusInfo{Address: "127.0.0.1:7391", Err: errors.New("connection refused")})
	assert.Contains(t, down, "connection refused")
}

func TestAboutRenderer_Render(t *testing.T) {
	out := styles.NewAboutRenderer(styles.NewTheme()).Render(build.Info{Version: "1.2.3", Commit: "abc"})
	assert.Contains(t, out, "1.2.3")
	assert.Contains(t, out, build.RepoURL())
}
