package repo

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

const (
	repoCountWarnThreshold = 50
	gitSizeWarnThreshold   = int64(1 << 30) // 1GB
)

// CheckBranchReachability 检查仓库当前分支能否参与 pull：
// HEAD 可解析且有提交、不是游离状态、配置了上游且上游引用已存在。
func CheckBranchReachability(repoPath string) error {
	r, err := git.PlainOpen(repoPath)
	if err != nil {
		return fmt.Errorf("cannot open repo: %w", err)
	}

	headRef, err := r.Head()
	if err != nil {
		return fmt.Errorf("cannot resolve HEAD: %w", err)
	}
	if headRef.Hash().IsZero() {
		return fmt.Errorf("HEAD has no commits")
	}
	if _, err := r.CommitObject(headRef.Hash()); err != nil {
		return fmt.Errorf("HEAD commit is unreachable: %w", err)
	}
	if !headRef.Name().IsBranch() {
		return fmt.Errorf("HEAD is detached")
	}

	branch := headRef.Name().Short()
	cfg, err := r.Config()
	if err != nil {
		return fmt.Errorf("cannot read repo config: %w", err)
	}
	b, ok := cfg.Branches[branch]
	if !ok || b.Remote == "" || b.Merge == "" {
		return fmt.Errorf("branch %q has no upstream", branch)
	}
	// remote 为 "." 时上游是本地分支
	upstream := plumbing.NewRemoteReferenceName(b.Remote, b.Merge.Short())
	if b.Remote == "." {
		upstream = b.Merge
	}
	if _, err := r.Reference(upstream, true); err != nil {
		return fmt.Errorf("upstream %q not found (run fetch)", upstream.Short())
	}

	return nil
}

// CheckPermissions 检查仓库读取权限：仓库目录可列出，标记项可读。
// 标记为 .git 目录时读取 .git/HEAD，其他目录标记读取其目录项，文件标记直接打开。
func CheckPermissions(repoPath, marker string) error {
	if _, err := os.ReadDir(repoPath); err != nil {
		return fmt.Errorf("cannot list repository: %w", err)
	}

	markerPath := filepath.Join(repoPath, marker)
	st, err := os.Stat(markerPath)
	if err != nil {
		return fmt.Errorf("cannot read %s: %w", marker, err)
	}

	switch {
	case st.IsDir() && marker == string(GitMarker):
		f, err := os.Open(filepath.Join(markerPath, "HEAD"))
		if err != nil {
			return fmt.Errorf("cannot read .git/HEAD: %w", err)
		}
		_ = f.Close()
	case st.IsDir():
		if _, err := os.ReadDir(markerPath); err != nil {
			return fmt.Errorf("cannot read %s: %w", marker, err)
		}
	default:
		f, err := os.Open(markerPath)
		if err != nil {
			return fmt.Errorf("cannot read %s: %w", marker, err)
		}
		_ = f.Close()
	}
	return nil
}

// CheckPerformance 检查性能预警项：仓库数量过多、标记目录体积过大都会拖慢批量 fetch。
func CheckPerformance(repos []string, marker string) []string {
	warnings := make([]string, 0)

	if len(repos) > repoCountWarnThreshold {
		warnings = append(warnings, fmt.Sprintf("large number of repos (%d) may slow down batch fetch", len(repos)))
	}

	for _, repoPath := range repos {
		size, err := getRepoSize(repoPath, marker)
		if err != nil {
			continue
		}
		if size > gitSizeWarnThreshold {
			warnings = append(warnings, fmt.Sprintf("%s is large (%.1f GB), fetch may be slow", repoPath, float64(size)/float64(1<<30)))
		}
	}

	return warnings
}

func getRepoSize(repoPath, marker string) (int64, error) {
	metaPath := filepath.Join(repoPath, marker)
	var size int64

	err := filepath.Walk(metaPath, func(_ string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() {
			size += info.Size()
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return size, nil
}
