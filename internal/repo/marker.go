package repo

import (
	"os"
	"path/filepath"
)

// Marker 判断一个目录是否为受版本控制的仓库。
type Marker interface {
	Match(dir string) bool
}

// MarkerFunc 将普通函数适配为 Marker。
type MarkerFunc func(dir string) bool

func (f MarkerFunc) Match(dir string) bool { return f(dir) }

// EntryMarker 以目录下存在指定名称的子项作为仓库标记。
// 子项可以是目录或文件（git worktree 的 .git 是文件）。
type EntryMarker string

// GitMarker 是默认的仓库标记。
const GitMarker EntryMarker = ".git"

func (m EntryMarker) Match(dir string) bool {
	_, err := os.Lstat(filepath.Join(dir, string(m)))
	return err == nil
}

// IsValidRepo 检查路径是否指向有效仓库：路径存在、是目录、且满足标记。
func IsValidRepo(path string, marker Marker) bool {
	st, err := os.Stat(path)
	if err != nil || !st.IsDir() {
		return false
	}
	return marker.Match(path)
}
