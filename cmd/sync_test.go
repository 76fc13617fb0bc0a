package cmd

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetch_PrintsEveryRepository(t *testing.T) {
	home := withTempHome(t)
	root := makeWorkspace(t, home)
	calls := stubExecutor(t, root)

	out, _, err := executeCommand(t, "fetch", "--root", root)
	require.NoError(t, err)

	assert.Contains(t, out, "==> "+filepath.Join(root, "project1")+"\ndone.\n")
	assert.Contains(t, out, "==> "+filepath.Join(root, "project2")+"\n(no output)\n")
	assert.Contains(t, out, "==> "+filepath.Join(root, "project3")+"\n(no output)\n")
	assert.Equal(t, []string{"fetch project1", "fetch project2", "fetch project3"}, *calls)
}

func TestStatus_PrintsEveryRepository(t *testing.T) {
	home := withTempHome(t)
	root := makeWorkspace(t, home)
	stubExecutor(t, root)

	out, _, err := executeCommand(t, "status", "--root", root)
	require.NoError(t, err)
	assert.Contains(t, out, "can be fast-forwarded")
	assert.Equal(t, 3, strings.Count(out, "==> "))
}

func TestStatus_BehindOnly(t *testing.T) {
	home := withTempHome(t)
	root := makeWorkspace(t, home)
	stubExecutor(t, root)

	out, _, err := executeCommand(t, "status", "--root", root, "--behind")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "project1")+"\n", out)
}

func TestPull_OnlyPullable(t *testing.T) {
	home := withTempHome(t)
	root := makeWorkspace(t, home)
	calls := stubExecutor(t, root)

	out, _, err := executeCommand(t, "pull", "--root", root)
	require.NoError(t, err)

	assert.Equal(t, "==> "+filepath.Join(root, "project1")+"\nUpdating\npulled 1 repositories\n", out)
	assert.Equal(t, []string{"status project1", "pull project1", "status project2", "status project3"}, *calls)
}

func TestPull_FetchFirst(t *testing.T) {
	home := withTempHome(t)
	root := makeWorkspace(t, home)
	calls := stubExecutor(t, root)

	_, _, err := executeCommand(t, "pull", "--root", root, "--fetch")
	require.NoError(t, err)

	require.Len(t, *calls, 7)
	assert.Equal(t, []string{"fetch project1", "fetch project2", "fetch project3"}, (*calls)[:3])
	assert.Equal(t, "pull project1", (*calls)[4])
}

func TestPull_NothingToPull(t *testing.T) {
	home := withTempHome(t)
	root := makeWorkspace(t, home)
	stubExecutor(t, filepath.Join(home, "elsewhere"))

	out, _, err := executeCommand(t, "pull", "--root", root)
	require.NoError(t, err)
	assert.Equal(t, "all repositories up to date\n", out)
}

func TestVersion(t *testing.T) {
	out, _, err := executeCommand(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "repo-sync "+Version+"\n", out)
}

func TestNewRepoProgressBar_NonTerminalWriter(t *testing.T) {
	var buf bytes.Buffer
	assert.Nil(t, newRepoProgressBar(&buf, 3, "fetching"))
	assert.Nil(t, newRepoProgressBar(&buf, 1, "fetching"))
}

func TestPull_FetchFirst_ProgressRespectsErrWriter(t *testing.T) {
	home := withTempHome(t)
	root := makeWorkspace(t, home)
	stubExecutor(t, root)

	_, errOut, err := executeCommand(t, "pull", "--root", root, "--fetch")
	require.NoError(t, err)
	assert.NotContains(t, errOut, "fetching")
}
