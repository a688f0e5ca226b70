// Package yamlfile stores front-end settings in a single YAML document.
package yamlfile

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/bnema/hostd/internal/application/port"
	"github.com/bnema/hostd/internal/logging"
)

const (
	dirPerm  = 0o750
	filePerm = 0o600
)

// Store reads the document from disk on every call and rewrites it on every
// set, so several processes sharing the file see each other's writes.
type Store struct {
	path string
	mu   sync.Mutex
}

var _ port.SettingsStore = (*Store)(nil)

// New creates a store backed by the YAML file at path.
func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the backing file.
func (s *Store) Path() string {
	return s.path
}

// load reads the current document. A missing file is an empty document.
func (s *Store) load() (map[string]any, error) {
	data, err := os.ReadFile(s.path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return map[string]any{}, nil
	case err != nil:
		return nil, fmt.Errorf("read settings file: %w", err)
	}

	values := map[string]any{}
	if err := yaml.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("parse settings file %s: %w", s.path, err)
	}
	return values, nil
}

// GetItem returns the stored value for key, or nil when absent.
func (s *Store) GetItem(_ context.Context, key string) (any, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	values, err := s.load()
	if err != nil {
		return nil, err
	}
	return values[key], nil
}

// Keys returns the stored keys in sorted order.
func (s *Store) Keys(_ context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	values, err := s.load()
	if err != nil {
		return nil, err
	}
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys, nil
}

// SetItem merges value into the document on disk and rewrites the file
// before returning.
func (s *Store) SetItem(ctx context.Context, key string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	values, err := s.load()
	if err != nil {
		return err
	}
	values[key] = value

	if err := s.flush(values); err != nil {
		return err
	}

	logging.FromContext(ctx).Debug().Str("key", key).Str("file", s.path).Msg("setting persisted")
	return nil
}

// flush writes the document to a temp file and renames it over the target.
func (s *Store) flush(values map[string]any) error {
	data, err := yaml.Marshal(values)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return fmt.Errorf("create settings directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".settings-*.yaml")
	if err != nil {
		return fmt.Errorf("create temp settings file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write settings: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("sync settings: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close settings: %w", err)
	}
	if err := os.Chmod(tmpName, filePerm); err != nil {
		return fmt.Errorf("chmod settings: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("replace settings file: %w", err)
	}
	return nil
}
