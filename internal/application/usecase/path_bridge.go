package usecase

import (
	"context"

	"github.com/bnema/hostd/internal/application/port"
	"github.com/bnema/hostd/internal/domain/entity"
)

// PathBridge relays path lookups to the OS path provider.
// Names are not validated here; the provider's own error is returned.
type PathBridge struct {
	provider port.PathProvider
}

// NewPathBridge creates a new PathBridge.
func NewPathBridge(provider port.PathProvider) *PathBridge {
	return &PathBridge{provider: provider}
}

// Resolve returns the absolute path for name.
func (b *PathBridge) Resolve(ctx context.Context, name entity.PathName) (string, error) {
	return b.provider.ResolvePath(ctx, name)
}
