package usecase

import (
	"context"

	"github.com/bnema/hostd/internal/application/port"
	"github.com/bnema/hostd/internal/domain/entity"
	"github.com/bnema/hostd/internal/logging"
)

// DialogBridge forwards message box requests to the native dialog presenter.
type DialogBridge struct {
	presenter port.DialogPresenter
}

// NewDialogBridge creates a new DialogBridge.
func NewDialogBridge(presenter port.DialogPresenter) *DialogBridge {
	return &DialogBridge{presenter: presenter}
}

// ShowMessageBox blocks until the user picks a button and returns the selection.
func (b *DialogBridge) ShowMessageBox(ctx context.Context, options entity.MessageBoxOptions) (entity.MessageBoxResult, error) {
	log := logging.FromContext(ctx)
	log.Debug().
		Str("type", string(options.Type)).
		Int("buttons", len(options.Buttons)).
		Msg("showing message box")

	result, err := b.presenter.ShowMessageBox(ctx, options)
	if err != nil {
		return entity.MessageBoxResult{}, err
	}

	log.Debug().Int("response", result.Response).Msg("message box answered")
	return result, nil
}
