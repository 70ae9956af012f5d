// Package workspace defines the candidate directory model and the scanning,
// naming, and removal collaborators the picker is built on.
package workspace

import (
	"os"
	"strings"
	"time"
)

// Entry is one candidate directory considered by the picker.
type Entry struct {
	// Name is the display basename for scanned entries, or the full path
	// string for history entries.
	Name string
	// NameFolded is the case-folded form of Name, computed once at
	// construction for repeated matching.
	NameFolded string
	// Path is the absolute filesystem path.
	Path string
	// ModifiedAt is the recency signal used for ranking.
	ModifiedAt time.Time
}

// NewEntry builds an Entry, folding the name once. Names are immutable after
// construction.
func NewEntry(name, path string, modifiedAt time.Time) Entry {
	return Entry{
		Name:       name,
		NameFolded: strings.ToLower(name),
		Path:       path,
		ModifiedAt: modifiedAt,
	}
}

// HistoryEntries builds entries from an ordered most-recently-used path
// list. Recency is derived from list position rather than stat data so an
// empty-query ranking reproduces the supplied order exactly. Paths that no
// longer exist on disk are dropped.
func HistoryEntries(paths []string, now time.Time) []Entry {
	entries := make([]Entry, 0, len(paths))
	for i, p := range paths {
		if _, err := os.Stat(p); err != nil {
			continue
		}
		entries = append(entries, NewEntry(p, p, now.Add(-time.Duration(i)*time.Second)))
	}
	return entries
}

// DirExists reports whether path names an existing directory.
func DirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
