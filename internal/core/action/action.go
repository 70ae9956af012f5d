// Package action defines the closed set of outcomes a picker session can
// produce. Exactly one action (or none, on cancellation) results from a
// session; the shellgen package translates it into command text.
package action

// UserAction is the single observable outcome of a session. The set of
// implementations is closed: translation switches over it exhaustively.
type UserAction interface {
	isUserAction()
}

// ChangeDirectory switches the shell into an existing directory.
type ChangeDirectory struct {
	Path string
}

// CreateAndEnter creates a directory (recursively) and switches into it.
type CreateAndEnter struct {
	Path string
}

// SetWorkspaceRoot adopts Path as the new workspace root: the governing
// environment variable is set and the shell switches into it.
type SetWorkspaceRoot struct {
	Path string
}

// CloneRepository clones URL into Destination, optionally through a
// proxy command prefix, then switches into it.
type CloneRepository struct {
	URL         string
	Destination string
	// Proxy is prepended verbatim to the clone invocation when non-empty.
	Proxy string
}

func (ChangeDirectory) isUserAction()  {}
func (CreateAndEnter) isUserAction()   {}
func (SetWorkspaceRoot) isUserAction() {}
func (CloneRepository) isUserAction()  {}
