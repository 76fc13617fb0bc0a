package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"repo-sync/internal/config"
	"repo-sync/internal/vcs"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

const behindStatus = "On branch master\nYour branch is behind 'origin/master' by 2 commits, and can be fast-forwarded.\n"

func withTempHome(t *testing.T) string {
	t.Helper()

	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("REPO_SYNC_ROOT", "")
	return home
}

// makeWorkspace 在 home/code 下创建 project1..3 三个仓库和一些非仓库项。
func makeWorkspace(t *testing.T, home string) string {
	t.Helper()

	root := filepath.Join(home, "code")
	for _, name := range []string{"project1", "project2", "project3"} {
		require.NoError(t, os.MkdirAll(filepath.Join(root, name, ".git"), 0o755))
	}
	require.NoError(t, os.MkdirAll(filepath.Join(root, "other1", "subfolder1"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "file1.txt"), []byte("x"), 0o644))
	return root
}

// stubExecutor 替换真实的 git 调用：project1 可快进，其余仓库无输出。
func stubExecutor(t *testing.T, root string) *[]string {
	t.Helper()

	calls := &[]string{}
	project1 := filepath.Join(root, "project1")
	fake := vcs.ExecutorFunc(func(path string, command vcs.Command) string {
		*calls = append(*calls, string(command)+" "+filepath.Base(path))
		if path != project1 {
			return ""
		}
		switch command {
		case vcs.Fetch:
			return "done."
		case vcs.Status:
			return behindStatus
		case vcs.Pull:
			return "Updating"
		}
		return ""
	})

	original := newExecutor
	newExecutor = func(*config.Config, *logrus.Entry) vcs.Executor { return fake }
	t.Cleanup(func() { newExecutor = original })
	return calls
}

func resetFlags() {
	rootDir = ""
	rootMarker = ""
	verbose = false
	statusBehind = false
	pullFetchFirst = false
}

func executeCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	resetFlags()
	var out, errBuf bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errBuf)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
		resetFlags()
	})

	err := rootCmd.Execute()
	return out.String(), errBuf.String(), err
}
