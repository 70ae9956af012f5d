package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWorkspaceName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid name", "my-idea", false},
		{"valid with spaces", "my idea", false},
		{"valid unicode", "café", false},
		{"empty string", "", true},
		{"only spaces", "   ", true},
		{"only slashes", "///", true},
		{"only shell punctuation", "~!$&", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := WorkspaceName(tt.input)
			assert.Equal(t, tt.wantErr, err != nil, "WorkspaceName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		})
	}
}

func TestWorkspaceNameField(t *testing.T) {
	err := WorkspaceNameField("name", "///")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "name")

	assert.NoError(t, WorkspaceNameField("name", "my-idea"))
}
