// Package store persists blobs under string keys in a local data directory.
package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
)

var (
	// ErrNotFound is returned by Get when the key holds no value.
	ErrNotFound = errors.New("key not found")
	// ErrReadOnly is returned by Set and Remove when the store could not be
	// written during Probe.
	ErrReadOnly = errors.New("store is read-only")
	// ErrInvalidKey is returned for keys that cannot be used as file names.
	ErrInvalidKey = errors.New("invalid key")
)

// KV is an opaque string-keyed blob store.
type KV interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Remove(key string) error
}

const fileExt = ".json"

var validKey = regexp.MustCompile(`^[A-Za-z0-9._:-]+$`)

// FileKV keeps one file per key under Dir.
type FileKV struct {
	Dir      string
	readOnly bool
}

// NewFileKV returns a store rooted at dir. The directory is created on the
// first write.
func NewFileKV(dir string) *FileKV {
	return &FileKV{Dir: dir}
}

// Path returns the file backing key.
func (s *FileKV) Path(key string) string {
	return filepath.Join(s.Dir, key+fileExt)
}

// ReadOnly reports whether Probe found the directory unwritable.
func (s *FileKV) ReadOnly() bool {
	return s.readOnly
}

// Probe writes and removes a scratch value under "<key>::probe". When that
// fails the store turns read-only: reads keep working, writes return
// ErrReadOnly.
func (s *FileKV) Probe(key string) error {
	probe := key + "::probe"
	if err := s.Set(probe, []byte("1")); err != nil {
		s.readOnly = true
		return fmt.Errorf("probing %s: %w", s.Dir, err)
	}
	if err := s.Remove(probe); err != nil {
		s.readOnly = true
		return fmt.Errorf("probing %s: %w", s.Dir, err)
	}
	return nil
}

func (s *FileKV) Get(key string) ([]byte, error) {
	if !validKey.MatchString(key) {
		return nil, fmt.Errorf("%q: %w", key, ErrInvalidKey)
	}
	data, err := os.ReadFile(s.Path(key))
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", key, err)
	}
	return data, nil
}

// Set writes value atomically: a temp file in Dir renamed over the target.
func (s *FileKV) Set(key string, value []byte) error {
	if s.readOnly {
		return ErrReadOnly
	}
	if !validKey.MatchString(key) {
		return fmt.Errorf("%q: %w", key, ErrInvalidKey)
	}
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	tmp, err := os.CreateTemp(s.Dir, "."+key+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op after a successful rename

	if _, err := tmp.Write(value); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	if err := os.Rename(tmpName, s.Path(key)); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

// Remove deletes key. Removing a missing key is not an error.
func (s *FileKV) Remove(key string) error {
	if s.readOnly {
		return ErrReadOnly
	}
	if !validKey.MatchString(key) {
		return fmt.Errorf("%q: %w", key, ErrInvalidKey)
	}
	if err := os.Remove(s.Path(key)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove %s: %w", key, err)
	}
	return nil
}
