// Package history persists the ordered list of previously used workspace
// roots. The store is a plain text file, one absolute path per line, most
// recently used first, so it stays inspectable with standard tools.
package history

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Store reads and writes the workspace history file.
type Store struct {
	path string
}

// NewStore creates a store backed by the file at path. The file and its
// parent directory are created lazily on the first Record.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the backing file location.
func (s *Store) Path() string {
	return s.path
}

// Load returns the recorded roots, most recently used first. A missing file
// is an empty history, not an error. Blank lines are skipped.
func (s *Store) Load() ([]string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("load history: %w", err)
	}

	var paths []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		paths = append(paths, line)
	}
	return paths, nil
}

// Record moves path to the front of the history, dropping any prior
// occurrence, and persists synchronously before returning.
func (s *Store) Record(path string) error {
	existing, err := s.Load()
	if err != nil {
		return err
	}

	paths := make([]string, 0, len(existing)+1)
	paths = append(paths, path)
	for _, p := range existing {
		if p != path {
			paths = append(paths, p)
		}
	}

	return s.write(paths)
}

// Prune drops entries whose directories no longer exist and persists the
// result. It returns the number of entries removed.
func (s *Store) Prune() (int, error) {
	existing, err := s.Load()
	if err != nil {
		return 0, err
	}

	kept := make([]string, 0, len(existing))
	for _, p := range existing {
		if _, err := os.Stat(p); err == nil {
			kept = append(kept, p)
		}
	}

	removed := len(existing) - len(kept)
	if removed == 0 {
		return 0, nil
	}
	if err := s.write(kept); err != nil {
		return 0, err
	}
	return removed, nil
}

// write replaces the history file via a temp-file rename so a crash never
// leaves it truncated.
func (s *Store) write(paths []string) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create history dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("write history: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	content := ""
	if len(paths) > 0 {
		content = strings.Join(paths, "\n") + "\n"
	}
	if _, err := tmp.WriteString(content); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write history: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write history: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("write history: %w", err)
	}
	return nil
}

// PinFirst returns paths with cwd at index 0 and any duplicate of it
// removed, regardless of where the store ranked it. The current location is
// always shown first in the picker.
func PinFirst(paths []string, cwd string) []string {
	if cwd == "" {
		return paths
	}
	pinned := make([]string, 0, len(paths)+1)
	pinned = append(pinned, cwd)
	for _, p := range paths {
		if p != cwd {
			pinned = append(pinned, p)
		}
	}
	return pinned
}
