package repo

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"repo-sync/internal/config"
)

// buildOp 是诊断信息中标识扫描操作的名称。
const buildOp = "BuildWorkingSet"

// RootFunc 在每次扫描时返回根目录，通常来自配置。
type RootFunc func() (string, error)

// StaticRoot 返回固定根目录的 RootFunc。
func StaticRoot(root string) RootFunc {
	return func() (string, error) { return root, nil }
}

// Option 配置 Scanner。
type Option func(*Scanner)

// WithMarker 替换默认的 .git 标记。
func WithMarker(m Marker) Option {
	return func(s *Scanner) {
		if m != nil {
			s.marker = m
		}
	}
}

// WithDiagnostics 设置扫描失败时诊断信息的输出位置，默认 os.Stderr。
func WithDiagnostics(w io.Writer) Option {
	return func(s *Scanner) {
		if w != nil {
			s.diag = w
		}
	}
}

// Scanner 扫描根目录的直接子目录，并保存最近一次扫描得到的工作集。
type Scanner struct {
	root   RootFunc
	marker Marker
	diag   io.Writer

	mu    sync.RWMutex
	repos []string
}

func NewScanner(root RootFunc, opts ...Option) *Scanner {
	s := &Scanner{
		root:   root,
		marker: GitMarker,
		diag:   os.Stderr,
		repos:  []string{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Build 重新扫描根目录并替换工作集，返回新的工作集。
// 扫描失败不会返回错误：工作集被置空，并向诊断输出写入一行信息。
func (s *Scanner) Build() []string {
	repos, err := s.scan()
	if err != nil {
		fmt.Fprintf(s.diag, "%s error: %v\n", buildOp, err)
		repos = []string{}
	}

	s.mu.Lock()
	s.repos = repos
	s.mu.Unlock()

	return s.Repos()
}

// Repos 返回当前工作集的副本。
func (s *Scanner) Repos() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]string, len(s.repos))
	copy(out, s.repos)
	return out
}

func (s *Scanner) scan() ([]string, error) {
	if s.root == nil {
		return nil, config.ErrNoRoot
	}
	raw, err := s.root()
	if err != nil {
		return nil, err
	}
	rootPath, err := config.ExpandPath(raw)
	if err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(rootPath)
	if err != nil {
		return nil, err
	}

	repos := make([]string, 0, len(entries))
	for _, entry := range entries {
		dir := filepath.Join(rootPath, entry.Name())
		// 跟随符号链接，只保留最终指向目录的项
		st, err := os.Stat(dir)
		if err != nil || !st.IsDir() {
			continue
		}
		if !s.marker.Match(dir) {
			continue
		}
		repos = append(repos, dir)
	}

	sort.Strings(repos)
	return repos, nil
}
