package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/dotcommander/uttrack/internal/course"
)

// Watch calls fn with the new value of key every time another writer
// replaces or removes it, until ctx is cancelled. fn receives nil when the
// key was removed. The last write wins; intermediate values may be skipped.
func (s *FileKV) Watch(ctx context.Context, key string, fn func([]byte)) error {
	if !validKey.MatchString(key) {
		return fmt.Errorf("%q: %w", key, ErrInvalidKey)
	}
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to start watcher: %w", err)
	}
	defer w.Close()

	// Writes land through a rename, so the directory is watched rather than
	// the file itself.
	if err := w.Add(s.Dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", s.Dir, err)
	}

	target := filepath.Clean(s.Path(key))
	for {
		select {
		case <-ctx.Done():
			return nil
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watching %s: %w", key, err)
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target {
				continue
			}
			switch {
			case ev.Has(fsnotify.Create), ev.Has(fsnotify.Write):
				data, err := s.Get(key)
				if errors.Is(err, ErrNotFound) {
					continue
				}
				if err != nil {
					return err
				}
				fn(data)
			case ev.Has(fsnotify.Remove), ev.Has(fsnotify.Rename):
				if _, err := os.Stat(target); errors.Is(err, os.ErrNotExist) {
					fn(nil)
				}
			}
		}
	}
}

// Watch reloads the collection whenever another process saves it and hands
// the normalized result to fn.
func (r *CourseRepository) Watch(ctx context.Context, fn func([]course.Course)) error {
	fkv, ok := r.kv.(*FileKV)
	if !ok {
		return errors.New("watching requires a file store")
	}
	return fkv.Watch(ctx, CoursesKey, func(data []byte) {
		if data == nil {
			fn([]course.Course{})
			return
		}
		fn(r.decode(data))
	})
}
