package usecase

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/bnema/hostd/internal/application/port"
	"github.com/bnema/hostd/internal/logging"
)

const (
	// FileDroppedEvent is the host -> front-end channel asking a window to open a local path.
	FileDroppedEvent = "file-dropped"

	fileURLPrefix = "file:///"
)

// NavigationInterceptor keeps top-level window content from being replaced by
// in-place navigation. Local file URLs become file-dropped events for the
// owning window; everything else goes to the external opener.
type NavigationInterceptor struct {
	windows port.WindowManager
	opener  port.URLOpener
}

// NewNavigationInterceptor creates a new NavigationInterceptor.
func NewNavigationInterceptor(windows port.WindowManager, opener port.URLOpener) *NavigationInterceptor {
	return &NavigationInterceptor{
		windows: windows,
		opener:  opener,
	}
}

// Install subscribes to window creation so every new top-level window gets intercepted.
// It must be called once, before the first window is created.
func (i *NavigationInterceptor) Install(ctx context.Context) {
	i.windows.OnWindowCreated(i.Attach)
	logging.FromContext(ctx).Debug().Msg("navigation interceptor installed")
}

// Attach registers the will-navigate handler on window. Child windows are left alone.
func (i *NavigationInterceptor) Attach(ctx context.Context, window port.Window) {
	log := logging.FromContext(ctx)

	if window.HasParent() {
		log.Debug().Uint64("window_id", uint64(window.ID())).Msg("child window, navigation not intercepted")
		return
	}

	window.OnWillNavigate(func(ctx context.Context, event *port.NavigationEvent) {
		i.handleWillNavigate(ctx, window, event)
	})
}

func (i *NavigationInterceptor) handleWillNavigate(ctx context.Context, window port.Window, event *port.NavigationEvent) {
	ctx = logging.WithWindowID(ctx, uint64(window.ID()))
	log := logging.FromContext(ctx)

	event.PreventDefault()

	path, isFile, err := FilePathFromURL(event.URL)
	if err != nil {
		log.Warn().Err(err).Str("url", event.URL).Msg("dropped file URL could not be decoded")
		return
	}

	if isFile {
		if err := window.Send(ctx, FileDroppedEvent, path); err != nil {
			log.Warn().Err(err).Str("path", path).Msg("failed to forward dropped file")
			return
		}
		log.Info().Str("path", path).Msg("navigation to local file forwarded as file-dropped")
		return
	}

	target := event.URL
	go func() {
		if err := i.opener.Open(context.WithoutCancel(ctx), target); err != nil {
			log.Warn().Err(err).Str("url", target).Msg("external opener failed")
		}
	}()
	log.Info().Str("url", target).Msg("navigation handed to external opener")
}

// FilePathFromURL reports whether raw is a local file URL and, if so, returns
// the decoded filesystem path. "file:///Users/a%20b/doc.txt" yields
// "/Users/a b/doc.txt". Decoding follows component rules: "+" is kept as is.
func FilePathFromURL(raw string) (string, bool, error) {
	if !strings.HasPrefix(raw, fileURLPrefix) {
		return "", false, nil
	}

	path, err := url.PathUnescape("/" + strings.TrimPrefix(raw, fileURLPrefix))
	if err != nil {
		return "", true, fmt.Errorf("decode file url: %w", err)
	}
	return path, true, nil
}
