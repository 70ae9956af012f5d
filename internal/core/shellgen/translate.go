package shellgen

import (
	"fmt"

	"github.com/colonyops/try/internal/core/action"
)

// Translate renders a user action as one evaluable command block in the
// given dialect. It is pure: either the whole string is produced or an
// error is returned, never partial output.
func Translate(a action.UserAction, d Dialect) (string, error) {
	switch act := a.(type) {
	case action.ChangeDirectory:
		// Touching the target keeps most-recently-entered directories at
		// the top of the mtime ordering on the next scan.
		return d.Join([]string{
			d.Touch(act.Path),
			d.ChangeDir(act.Path),
		}), nil
	case action.CreateAndEnter:
		return d.Join([]string{
			d.MakeDir(act.Path),
			d.Touch(act.Path),
			d.ChangeDir(act.Path),
		}), nil
	case action.SetWorkspaceRoot:
		return d.Join([]string{
			d.SetEnv(EnvVar, act.Path),
			d.ChangeDir(act.Path),
		}), nil
	case action.CloneRepository:
		clone := "git clone " + d.Escape(act.URL) + " " + d.Escape(act.Destination)
		if act.Proxy != "" {
			clone = act.Proxy + " " + clone
		}
		return d.Join([]string{
			d.MakeDir(act.Destination),
			d.Echo("Cloning " + act.URL + "..."),
			clone,
			d.ChangeDir(act.Destination),
		}), nil
	default:
		return "", fmt.Errorf("no translation for action %T", a)
	}
}

// WorktreeScript renders the detached-worktree command block: create the
// dated directory, add a worktree for the enclosing repository when inside
// one, and change into the directory either way.
func WorktreeScript(path string, d Dialect) string {
	return d.Join([]string{
		d.MakeDir(path),
		d.WorktreeAdd(path),
		d.ChangeDir(path),
	})
}
