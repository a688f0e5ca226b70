// Package paths resolves symbolic path names to absolute OS locations.
package paths

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"

	"github.com/bnema/hostd/internal/application/port"
	"github.com/bnema/hostd/internal/domain/entity"
	"github.com/bnema/hostd/internal/logging"
)

// Provider implements port.PathProvider using XDG base and user directories.
type Provider struct {
	appName    string
	executable func() (string, error)
}

// New creates a path provider for the named application.
func New(appName string) *Provider {
	return &Provider{
		appName:    appName,
		executable: os.Executable,
	}
}

// ResolvePath returns the absolute path for name. Names outside the
// enumeration fail with entity.ErrUnknownPathName.
func (p *Provider) ResolvePath(ctx context.Context, name entity.PathName) (string, error) {
	path, err := p.resolve(name)
	if err != nil {
		logging.FromContext(ctx).Debug().Err(err).Str("name", name.String()).Msg("path lookup failed")
		return "", err
	}
	return path, nil
}

func (p *Provider) resolve(name entity.PathName) (string, error) {
	switch name {
	case entity.PathHome:
		return nonEmpty(name, xdg.Home)
	case entity.PathAppData:
		return nonEmpty(name, xdg.ConfigHome)
	case entity.PathUserData:
		return join(name, xdg.ConfigHome, p.appName)
	case entity.PathCache:
		return nonEmpty(name, xdg.CacheHome)
	case entity.PathTemp:
		return nonEmpty(name, os.TempDir())
	case entity.PathExe, entity.PathModule:
		exe, err := p.executable()
		if err != nil {
			return "", fmt.Errorf("%w: %s: %w", entity.ErrPathUnavailable, name, err)
		}
		return exe, nil
	case entity.PathDesktop:
		return nonEmpty(name, xdg.UserDirs.Desktop)
	case entity.PathDocuments:
		return nonEmpty(name, xdg.UserDirs.Documents)
	case entity.PathDownloads:
		return nonEmpty(name, xdg.UserDirs.Download)
	case entity.PathMusic:
		return nonEmpty(name, xdg.UserDirs.Music)
	case entity.PathPictures:
		return nonEmpty(name, xdg.UserDirs.Pictures)
	case entity.PathVideos:
		return nonEmpty(name, xdg.UserDirs.Videos)
	case entity.PathLogs:
		return join(name, xdg.StateHome, p.appName, "logs")
	case entity.PathPluginSupport:
		return join(name, xdg.DataHome, p.appName, "plugins")
	default:
		return "", fmt.Errorf("%w: %q", entity.ErrUnknownPathName, name)
	}
}

func nonEmpty(name entity.PathName, path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("%w: %s", entity.ErrPathUnavailable, name)
	}
	return path, nil
}

func join(name entity.PathName, base string, elem ...string) (string, error) {
	if base == "" {
		return "", fmt.Errorf("%w: %s", entity.ErrPathUnavailable, name)
	}
	return filepath.Join(append([]string{base}, elem...)...), nil
}

var _ port.PathProvider = (*Provider)(nil)
