package initcmd

import (
	"fmt"
	"os"
	"path/filepath"
)

// BackupRC creates a backup of the rc file before modifying it. Returns
// empty string if no backup was needed (file doesn't exist).
func BackupRC(rcFile string) (string, error) {
	if _, err := os.Stat(rcFile); os.IsNotExist(err) {
		return "", nil
	}

	backupPath := rcFile + ".bak"

	// Remove existing backup if present
	_ = os.Remove(backupPath)

	content, err := os.ReadFile(rcFile)
	if err != nil {
		return "", fmt.Errorf("read rc file: %w", err)
	}

	if err := os.WriteFile(backupPath, content, 0o644); err != nil {
		return "", fmt.Errorf("create backup: %w", err)
	}

	return backupPath, nil
}

// AppendSourceLine adds the integration line to the rc file, creating it
// (and its directory, for fish) when absent.
func AppendSourceLine(rcFile, line string) error {
	if err := os.MkdirAll(filepath.Dir(rcFile), 0o755); err != nil {
		return fmt.Errorf("create rc directory: %w", err)
	}

	f, err := os.OpenFile(rcFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open rc file: %w", err)
	}
	defer func() { _ = f.Close() }()

	if _, err := fmt.Fprintf(f, "\n# try shell integration\n%s\n", line); err != nil {
		return fmt.Errorf("append to rc file: %w", err)
	}
	return nil
}
