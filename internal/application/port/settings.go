package port

import "context"

// SettingsStore persists arbitrary values under string keys.
// GetItem returns a nil value and no error for absent keys.
type SettingsStore interface {
	GetItem(ctx context.Context, key string) (any, error)
	SetItem(ctx context.Context, key string, value any) error
}
