// Package file provides a key-value store persisted as a YAML document on
// local disk. It backs the credential store by default so a saved key
// survives restarts of the same user account.
package file

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/davidbz/codecraft/internal/observability"
)

const (
	dirPerm  = 0o700
	filePerm = 0o600
)

// DefaultFileName is the store file created under the user config directory.
const DefaultFileName = "credentials.yaml"

// Store persists a flat string map to a single YAML file.
type Store struct {
	mu   sync.Mutex
	path string
}

// NewStore creates a store backed by the file at path. The parent directory
// is created if missing; the file itself is created on first write.
func NewStore(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("store path is required")
	}

	if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return nil, fmt.Errorf("failed to create store directory: %w", err)
	}

	return &Store{
		mu:   sync.Mutex{},
		path: path,
	}, nil
}

// DefaultPath returns <UserConfigDir>/<app>/credentials.yaml.
func DefaultPath(app string) (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve user config directory: %w", err)
	}
	return filepath.Join(dir, app, DefaultFileName), nil
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Get returns the value for key.
func (s *Store) Get(ctx context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	values, err := s.load(ctx)
	if err != nil {
		return "", false, err
	}

	value, ok := values[key]
	return value, ok, nil
}

// Set stores value under key.
func (s *Store) Set(ctx context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	values, err := s.load(ctx)
	if err != nil {
		return err
	}

	values[key] = value
	return s.save(values)
}

// Delete removes key. A missing file or key is not an error.
func (s *Store) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	values, err := s.load(ctx)
	if err != nil {
		return err
	}

	if _, ok := values[key]; !ok {
		return nil
	}

	delete(values, key)
	return s.save(values)
}

func (s *Store) load(ctx context.Context) (map[string]string, error) {
	values := make(map[string]string)

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			observability.FromContext(ctx).Debug("store file missing", observability.String("path", s.path))
			return values, nil
		}
		return nil, fmt.Errorf("failed to read store: %w", err)
	}

	if err := yaml.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("failed to decode store %s: %w", s.path, err)
	}

	if values == nil {
		values = make(map[string]string)
	}

	return values, nil
}

// save writes values atomically: temp file in the same directory, then rename.
func (s *Store) save(values map[string]string) error {
	data, err := yaml.Marshal(values)
	if err != nil {
		return fmt.Errorf("failed to encode store: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".credentials-*.yaml")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) //nolint:errcheck // Best effort; gone after rename

	if err := tmp.Chmod(filePerm); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to set store permissions: %w", err)
	}

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to write store: %w", err)
	}

	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close store: %w", err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("failed to replace store: %w", err)
	}

	return nil
}
