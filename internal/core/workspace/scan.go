package workspace

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Scan lists the immediate subdirectories of root as picker candidates.
// Dotted names and basenames matching any ignore glob are skipped. A missing
// root yields an empty list; any other read failure is returned so the
// session can abort before the picker starts.
//
// The listing is one-shot: entries are not refreshed during a session.
func Scan(root string, ignore []string) ([]Entry, error) {
	dirents, err := os.ReadDir(root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan %s: %w", root, err)
	}

	entries := make([]Entry, 0, len(dirents))
	for _, d := range dirents {
		name := d.Name()
		if strings.HasPrefix(name, ".") || !d.IsDir() {
			continue
		}
		if ignored(name, ignore) {
			continue
		}
		info, err := d.Info()
		if err != nil {
			continue
		}
		entries = append(entries, NewEntry(name, filepath.Join(root, name), info.ModTime()))
	}
	return entries, nil
}

func ignored(name string, globs []string) bool {
	for _, g := range globs {
		if ok, err := doublestar.Match(g, name); err == nil && ok {
			return true
		}
	}
	return false
}
