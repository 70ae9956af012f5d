// Package validate provides shared validation functions.
package validate

import (
	"fmt"

	"github.com/hay-kot/criterio"

	"github.com/colonyops/try/internal/core/workspace"
)

// WorkspaceName validates that a name still has content once sanitized
// into its directory-safe form. Names made entirely of dropped characters
// (slashes, whitespace, shell punctuation) are rejected.
func WorkspaceName(name string) error {
	if workspace.SanitizeName(name) == "" {
		return fmt.Errorf("name is required")
	}
	return nil
}

// WorkspaceNameField returns a criterio validator for workspace names.
func WorkspaceNameField(field, name string) error {
	return criterio.Run(field, name, WorkspaceName)
}
