// Package store implements the persistent credential and device cache for
// the CLI: a small key-value document kept in a single JSON file under the
// per-user config directory. Every write is flushed to disk before
// returning; reads are served from an in-memory copy loaded on first
// access. The store is not safe for concurrent invocations against the
// same file, which is acceptable for a single-user CLI.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dklimov/pointctl/internal/models"
)

// Well-known keys.
const (
	KeyToken   = "token"
	KeyDevices = "devices"
)

// FileStore persists an opaque key-value document to a single JSON file.
type FileStore struct {
	path   string
	loaded bool
	data   map[string]json.RawMessage
}

// New returns a store bound to the given file path. The file is not touched
// until the first read or write.
func New(path string) *FileStore {
	return &FileStore{path: path}
}

// DefaultPath returns the per-user location of the cache file,
// e.g. ~/.config/pointctl/config.json on Linux.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolving user config dir: %w", err)
	}
	return filepath.Join(dir, "pointctl", "config.json"), nil
}

func (s *FileStore) load() error {
	if s.loaded {
		return nil
	}
	s.data = make(map[string]json.RawMessage)
	b, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			s.loaded = true
			return nil
		}
		return fmt.Errorf("reading %s: %w", s.path, err)
	}
	if len(b) > 0 {
		if err := json.Unmarshal(b, &s.data); err != nil {
			return fmt.Errorf("parsing %s: %w", s.path, err)
		}
	}
	s.loaded = true
	return nil
}

// flush writes the whole document via a temp file and rename, so a crash
// mid-write cannot leave a truncated cache behind.
func (s *FileStore) flush() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}
	b, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return err
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o600); err != nil {
		return fmt.Errorf("writing %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replacing %s: %w", s.path, err)
	}
	return nil
}

// Get returns the raw value stored under key, with ok reporting presence.
func (s *FileStore) Get(key string) (json.RawMessage, bool, error) {
	if err := s.load(); err != nil {
		return nil, false, err
	}
	v, ok := s.data[key]
	return v, ok, nil
}

// Set stores value under key and flushes the document to disk.
func (s *FileStore) Set(key string, value any) error {
	if err := s.load(); err != nil {
		return err
	}
	b, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", key, err)
	}
	s.data[key] = b
	return s.flush()
}

// Clear removes all keys and flushes the now-empty document.
func (s *FileStore) Clear() error {
	s.data = make(map[string]json.RawMessage)
	s.loaded = true
	return s.flush()
}

// Token returns the cached bearer token, with ok false when no token is
// stored (the user has not authenticated, or has logged out).
func (s *FileStore) Token() (string, bool, error) {
	raw, ok, err := s.Get(KeyToken)
	if err != nil || !ok {
		return "", false, err
	}
	var token string
	if err := json.Unmarshal(raw, &token); err != nil {
		return "", false, fmt.Errorf("decoding cached token: %w", err)
	}
	return token, token != "", nil
}

// SetToken stores the bearer token.
func (s *FileStore) SetToken(token string) error {
	return s.Set(KeyToken, token)
}

// Devices returns the cached device list in API response order. A missing
// key yields an empty list, not an error.
func (s *FileStore) Devices() ([]models.DeviceRecord, error) {
	raw, ok, err := s.Get(KeyDevices)
	if err != nil || !ok {
		return nil, err
	}
	var devices []models.DeviceRecord
	if err := json.Unmarshal(raw, &devices); err != nil {
		return nil, fmt.Errorf("decoding cached devices: %w", err)
	}
	return devices, nil
}

// SetDevices replaces the cached device list wholesale.
func (s *FileStore) SetDevices(devices []models.DeviceRecord) error {
	return s.Set(KeyDevices, devices)
}
