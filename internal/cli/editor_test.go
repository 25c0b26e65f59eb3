package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetEditor(t *testing.T) {
	t.Setenv("VISUAL", "code --wait")
	t.Setenv("EDITOR", "vim")
	assert.Equal(t, "code --wait", getEditor())

	t.Setenv("VISUAL", "")
	assert.Equal(t, "vim", getEditor())

	t.Setenv("EDITOR", "")
	assert.Equal(t, "", getEditor())
}

func TestEditInEditorNoEditor(t *testing.T) {
	t.Setenv("VISUAL", "")
	t.Setenv("EDITOR", "")

	_, err := EditInEditor([]byte("test"), ".yaml", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "EDITOR not set")
}

func TestEditInEditorWithTrueCommand(t *testing.T) {
	t.Setenv("VISUAL", "")
	t.Setenv("EDITOR", "true")

	// 'true' leaves the file untouched
	content := []byte("name: Emmy's Birthday\n")
	result, err := EditInEditor(content, ".yaml", "")
	require.NoError(t, err)
	assert.Equal(t, content, result)
}

func TestEditInEditorNonZeroExit(t *testing.T) {
	t.Setenv("VISUAL", "")
	t.Setenv("EDITOR", "false")

	_, err := EditInEditor([]byte("test"), ".yaml", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "editor exited with status")
}

func writeEditorScript(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "editor.sh")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0755))
	return path
}

func TestEditInEditorContentModified(t *testing.T) {
	t.Setenv("VISUAL", "")
	t.Setenv("EDITOR", writeEditorScript(t, `echo 'modified' > "$1"`))

	result, err := EditInEditor([]byte("original"), ".yaml", "")
	require.NoError(t, err)
	assert.Equal(t, "modified\n", string(result))
}

func TestEditInEditorOverride(t *testing.T) {
	// The explicit editor wins over the environment
	t.Setenv("VISUAL", "false")
	t.Setenv("EDITOR", "false")

	result, err := EditInEditor([]byte("original"), ".yaml", writeEditorScript(t, `echo 'override' > "$1"`))
	require.NoError(t, err)
	assert.Equal(t, "override\n", string(result))
}

func TestRunEditorEmptyCommand(t *testing.T) {
	err := runEditor("", "/tmp/test.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty editor command")
}

func TestRunEditorNonExistentCommand(t *testing.T) {
	err := runEditor("nonexistent-editor-command-12345", "/tmp/test.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to run editor")
}
