package cli

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// EditInEditor opens content in an editor and returns the modified content.
// The editor argument overrides $VISUAL and $EDITOR when non-empty. The
// suffix is used for the temporary file (e.g. ".yaml" for highlighting).
// Returns error if no editor is configured or the editor exits non-zero.
func EditInEditor(content []byte, suffix, editor string) ([]byte, error) {
	if editor == "" {
		editor = getEditor()
	}
	if editor == "" {
		return nil, fmt.Errorf("EDITOR not set. Set it, add 'editor' to .partyconfig.yaml, or use --flags instead of -i")
	}

	tmpFile, err := os.CreateTemp("", "party-*"+suffix)
	if err != nil {
		return nil, fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer os.Remove(tmpPath)

	if _, err := tmpFile.Write(content); err != nil {
		tmpFile.Close()
		return nil, fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return nil, fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := runEditor(editor, tmpPath); err != nil {
		return nil, err
	}

	result, err := os.ReadFile(tmpPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read edited file: %w", err)
	}

	return result, nil
}

// getEditor returns the editor command from environment.
// Checks VISUAL first, then EDITOR.
func getEditor() string {
	if editor := os.Getenv("VISUAL"); editor != "" {
		return editor
	}
	return os.Getenv("EDITOR")
}

// runEditor executes the editor with the given file path. The editor string
// may carry arguments, e.g. "code --wait".
func runEditor(editor, path string) error {
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("empty editor command")
	}

	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return fmt.Errorf("editor exited with status %d", exitErr.ExitCode())
		}
		return fmt.Errorf("failed to run editor: %w", err)
	}

	return nil
}
