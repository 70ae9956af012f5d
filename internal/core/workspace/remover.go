package workspace

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Remover deletes a directory marked in the picker. The picker depends on
// this interface so tests can observe deletions without touching the
// filesystem.
type Remover interface {
	Remove(path string) error
}

// DirRemover removes directories under a fixed root, refusing any target
// that resolves outside it.
type DirRemover struct {
	root string
}

// NewDirRemover creates a remover scoped to root.
func NewDirRemover(root string) *DirRemover {
	return &DirRemover{root: root}
}

// Remove deletes path recursively. Symlinks are resolved on both sides
// before the containment check so a link inside the root cannot reach out.
func (r *DirRemover) Remove(path string) error {
	rootReal, err := filepath.EvalSymlinks(r.root)
	if err != nil {
		rootReal = r.root
	}
	target := path
	if resolved, err := filepath.EvalSymlinks(path); err == nil {
		target = resolved
	}
	if !strings.HasPrefix(target, rootReal+string(filepath.Separator)) {
		return fmt.Errorf("refusing to remove %s: outside workspace root %s", target, rootReal)
	}
	return os.RemoveAll(target)
}
