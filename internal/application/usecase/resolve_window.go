// Package usecase contains the host's application logic: window resolution,
// navigation interception and the capability bridges the router calls.
package usecase

import (
	"context"

	"github.com/bnema/hostd/internal/application/port"
	"github.com/bnema/hostd/internal/domain/entity"
	"github.com/bnema/hostd/internal/logging"
)

// ResolveWindowUseCase answers which window is the active target.
type ResolveWindowUseCase struct {
	windows port.WindowManager
}

// NewResolveWindowUseCase creates a new ResolveWindowUseCase.
func NewResolveWindowUseCase(windows port.WindowManager) *ResolveWindowUseCase {
	return &ResolveWindowUseCase{windows: windows}
}

// Execute returns the focused window, or the first window in creation order
// when nothing is focused. It fails with entity.ErrNoWindowAvailable when no
// window is open.
//
// Focus-loss races are not handled: a window losing focus between the two
// queries falls through to the first-created window.
func (uc *ResolveWindowUseCase) Execute(ctx context.Context) (port.Window, error) {
	log := logging.FromContext(ctx)

	if window, ok := uc.windows.FocusedWindow(); ok && window != nil {
		log.Trace().Uint64("window_id", uint64(window.ID())).Msg("resolved focused window")
		return window, nil
	}

	windows := uc.windows.Windows()
	if len(windows) == 0 {
		return nil, entity.ErrNoWindowAvailable
	}

	log.Trace().Uint64("window_id", uint64(windows[0].ID())).Msg("no focused window, using first created")
	return windows[0], nil
}
