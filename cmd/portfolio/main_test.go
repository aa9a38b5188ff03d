package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "portfolio dev\n", out)
}

func TestInitThenCheck(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "jane-doe")

	out, err := run(t, "init", dir, "--url", "https://jane.example")
	require.NoError(t, err)
	assert.Contains(t, out, "content.yaml")

	env, err := os.ReadFile(filepath.Join(dir, ".env.example"))
	require.NoError(t, err)
	assert.Contains(t, string(env), "SITE_NAME=Jane Doe")
	assert.Contains(t, string(env), "SITE_URL=https://jane.example")

	out, err = run(t, "content", "check", filepath.Join(dir, "content.yaml"))
	require.NoError(t, err)
	assert.Contains(t, out, "profile       Jane Doe")
	assert.Contains(t, out, "certificates  5")
}

func TestInitRefusesToOverwrite(t *testing.T) {
	dir := t.TempDir()
	_, err := run(t, "init", dir)
	require.NoError(t, err)

	_, err = run(t, "init", dir)
	require.Error(t, err)
}

func TestContentCheckRejectsBadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content.yaml")
	require.NoError(t, os.WriteFile(path, []byte("nonsense: [1, 2\n"), 0o644))

	_, err := run(t, "content", "check", path)
	require.Error(t, err)
}

func TestContentDefaults(t *testing.T) {
	out, err := run(t, "content", "defaults")
	require.NoError(t, err)
	assert.Contains(t, out, "certificates:")
}
