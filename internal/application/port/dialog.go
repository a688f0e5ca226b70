package port

import (
	"context"

	"github.com/bnema/hostd/internal/domain/entity"
)

// DialogPresenter renders native dialogs.
// ShowMessageBox blocks until the user answers or ctx is done.
type DialogPresenter interface {
	ShowMessageBox(ctx context.Context, options entity.MessageBoxOptions) (entity.MessageBoxResult, error)
}
