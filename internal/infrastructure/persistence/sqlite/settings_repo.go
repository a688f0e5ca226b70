package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/bnema/hostd/internal/application/port"
	"github.com/bnema/hostd/internal/logging"
)

// DatabaseProvider hands out the shared connection.
type DatabaseProvider interface {
	DB(ctx context.Context) (*sql.DB, error)
}

// SettingsStore persists front-end settings as JSON text keyed by name.
type SettingsStore struct {
	provider DatabaseProvider
}

var _ port.SettingsStore = (*SettingsStore)(nil)

// NewSettingsStore creates a SQLite-backed settings store.
func NewSettingsStore(provider DatabaseProvider) *SettingsStore {
	return &SettingsStore{provider: provider}
}

// GetItem returns the decoded value for key, or nil when it was never set.
func (s *SettingsStore) GetItem(ctx context.Context, key string) (any, error) {
	db, err := s.provider.DB(ctx)
	if err != nil {
		return nil, err
	}

	var raw string
	err = db.QueryRowContext(ctx, `SELECT value FROM settings WHERE key = ?`, key).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read setting %q: %w", key, err)
	}

	var value any
	if err := json.Unmarshal([]byte(raw), &value); err != nil {
		return nil, fmt.Errorf("decode setting %q: %w", key, err)
	}
	return value, nil
}

// SetItem stores value under key, replacing any previous value.
func (s *SettingsStore) SetItem(ctx context.Context, key string, value any) error {
	db, err := s.provider.DB(ctx)
	if err != nil {
		return err
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode setting %q: %w", key, err)
	}

	_, err = db.ExecContext(ctx, `
		INSERT INTO settings (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, string(raw))
	if err != nil {
		return fmt.Errorf("write setting %q: %w", key, err)
	}

	logging.FromContext(ctx).Debug().Str("key", key).Int("bytes", len(raw)).Msg("setting persisted")
	return nil
}

// Keys lists stored keys in lexical order.
func (s *SettingsStore) Keys(ctx context.Context) ([]string, error) {
	db, err := s.provider.DB(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, `SELECT key FROM settings ORDER BY key`)
	if err != nil {
		return nil, fmt.Errorf("list settings: %w", err)
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, err
		}
		keys = append(keys, key)
	}
	return keys, rows.Err()
}
