package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/hostd/internal/application/port"
	"github.com/bnema/hostd/internal/domain/entity"
	"github.com/bnema/hostd/internal/logging"
)

// WindowLifecycleUseCase creates, shows and feeds files to windows.
type WindowLifecycleUseCase struct {
	windows  port.WindowManager
	resolver *ResolveWindowUseCase
}

// NewWindowLifecycleUseCase creates a new WindowLifecycleUseCase.
func NewWindowLifecycleUseCase(windows port.WindowManager, resolver *ResolveWindowUseCase) *WindowLifecycleUseCase {
	return &WindowLifecycleUseCase{
		windows:  windows,
		resolver: resolver,
	}
}

// NewWindow asks the window manager for a new top-level window.
func (uc *WindowLifecycleUseCase) NewWindow(ctx context.Context) (port.Window, error) {
	window, err := uc.windows.CreateWindow(ctx)
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}

	logging.FromContext(ctx).Info().Uint64("window_id", uint64(window.ID())).Msg("window created")
	return window, nil
}

// WindowReady shows the window owning frontend. Showing is best effort:
// failures are logged as warnings and never returned.
func (uc *WindowLifecycleUseCase) WindowReady(ctx context.Context, frontend port.FrontendID) {
	log := logging.FromContext(ctx)

	window, err := uc.windows.WindowForFrontend(frontend)
	if err != nil {
		log.Warn().
			Err(fmt.Errorf("%w: %w", entity.ErrWindowResolution, err)).
			Str("frontend", string(frontend)).
			Msg("could not show window")
		return
	}
	if window == nil {
		return
	}

	if err := window.Show(ctx); err != nil {
		log.Warn().Err(err).Uint64("window_id", uint64(window.ID())).Msg("could not show window")
		return
	}

	log.Debug().Uint64("window_id", uint64(window.ID())).Msg("window shown")
}

// OpenFile sends path to the current window as a file-dropped event.
// It fails with entity.ErrNoWindowAvailable when no window is open.
func (uc *WindowLifecycleUseCase) OpenFile(ctx context.Context, path string) error {
	window, err := uc.resolver.Execute(ctx)
	if err != nil {
		return err
	}

	if err := window.Send(ctx, FileDroppedEvent, path); err != nil {
		return fmt.Errorf("send %s to window %d: %w", FileDroppedEvent, window.ID(), err)
	}

	logging.FromContext(ctx).Info().
		Uint64("window_id", uint64(window.ID())).
		Str("path", path).
		Msg("file opened in window")
	return nil
}
