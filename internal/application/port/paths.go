package port

import (
	"context"

	"github.com/bnema/hostd/internal/domain/entity"
)

// PathProvider resolves symbolic location names to absolute paths.
// Names outside entity.AllPathNames fail with entity.ErrUnknownPathName.
type PathProvider interface {
	ResolvePath(ctx context.Context, name entity.PathName) (string, error)
}
