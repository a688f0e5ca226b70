package usecase

import (
	"context"

	"github.com/bnema/hostd/internal/application/port"
	"github.com/bnema/hostd/internal/logging"
)

// SettingsBridge relays settings reads and writes to the store unchanged.
type SettingsBridge struct {
	store port.SettingsStore
}

// NewSettingsBridge creates a new SettingsBridge.
func NewSettingsBridge(store port.SettingsStore) *SettingsBridge {
	return &SettingsBridge{store: store}
}

// Get returns the stored value for key, or nil when the key is absent.
func (b *SettingsBridge) Get(ctx context.Context, key string) (any, error) {
	logging.FromContext(ctx).Debug().Str("key", key).Msg("get setting")
	return b.store.GetItem(ctx, key)
}

// Set persists value under key and returns once the store has written it.
func (b *SettingsBridge) Set(ctx context.Context, key string, value any) error {
	logging.FromContext(ctx).Debug().Str("key", key).Msg("set setting")
	return b.store.SetItem(ctx, key, value)
}
