package cmd

import (
	"path/filepath"
	"testing"

	"repo-sync/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSet_ShowDefaults(t *testing.T) {
	withTempHome(t)

	out, _, err := executeCommand(t, "set")
	require.NoError(t, err)
	assert.Equal(t, "root: \nmarker: .git\ngit: git\n", out)
}

func TestSet_RootIsStoredAbsolute(t *testing.T) {
	home := withTempHome(t)

	out, _, err := executeCommand(t, "set", "root", "~/code")
	require.NoError(t, err)
	assert.Equal(t, "root set to "+filepath.Join(home, "code")+"\n", out)

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "code"), cfg.Root)
}

func TestSet_Marker(t *testing.T) {
	withTempHome(t)

	_, _, err := executeCommand(t, "set", "marker", ".hg")
	require.NoError(t, err)

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, ".hg", cfg.Marker)
}

func TestSet_InvalidMarker(t *testing.T) {
	withTempHome(t)

	_, _, err := executeCommand(t, "set", "marker", "a/b")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid marker")
}

func TestSet_UnsupportedKey(t *testing.T) {
	withTempHome(t)

	_, _, err := executeCommand(t, "set", "email", "x@example.com")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unsupported key "email"`)
}

func TestSet_WrongArgCount(t *testing.T) {
	withTempHome(t)

	_, _, err := executeCommand(t, "set", "root")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "usage: repo-sync set")
}
