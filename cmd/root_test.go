package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func executeCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func setupProject(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "main.go"), []byte("package main\n"), 0644))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "vendor"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "vendor", "dep.go"), []byte("package dep\n"), 0644))
	return dir
}

func TestRootRunsDefaultProfile(t *testing.T) {
	dir := setupProject(t)

	out, err := executeCmd(t, dir)
	require.NoError(t, err)

	expected := filepath.Join(dir, filepath.Base(dir)+"_codebase.md")
	assert.Equal(t, "Output written to "+expected+"\n", out)
	data, err := os.ReadFile(expected)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "# Codebase:\n"))
	assert.Contains(t, string(data), "### `vendor/dep.go`:")
}

func TestProfileSubcommand(t *testing.T) {
	dir := setupProject(t)

	out, err := executeCmd(t, "contents", dir)
	require.NoError(t, err)
	assert.Contains(t, out, filepath.Join(dir, "folder_contents.txt"))
	assert.FileExists(t, filepath.Join(dir, "folder_contents.txt"))
}

func TestIgnoreFlagAndOutput(t *testing.T) {
	dir := setupProject(t)
	output := filepath.Join(t.TempDir(), "snap.md")

	_, err := executeCmd(t, "prompt", dir, "--ignore", "vendor", "-o", output, "-w", "2")
	require.NoError(t, err)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "vendor")
	assert.Contains(t, string(data), "### `main.go`")
}

func TestConfigFileIsApplied(t *testing.T) {
	dir := setupProject(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".foldersnap.toml"),
		[]byte("structure_ignore = [\"vendor\"]\n"), 0644))

	_, err := executeCmd(t, dir)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, filepath.Base(dir)+"_codebase.md"))
	require.NoError(t, err)
	assert.NotContains(t, string(data), "vendor")
}

func TestMissingConfigFileFails(t *testing.T) {
	dir := setupProject(t)

	_, err := executeCmd(t, dir, "--config", filepath.Join(dir, "nope.toml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load configuration")
}

func TestTooManyArgs(t *testing.T) {
	_, err := executeCmd(t, "a", "b")
	require.Error(t, err)
}

func TestVersionCmd(t *testing.T) {
	out, err := executeCmd(t, "version", "--short")
	require.NoError(t, err)
	assert.Equal(t, "dev\n", out)

	out, err = executeCmd(t, "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "foldersnap version dev"))
}
