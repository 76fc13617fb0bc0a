package cmd

import (
	"fmt"
	"io"
	"strings"

	"repo-sync/internal/batch"
	"repo-sync/internal/config"
	"repo-sync/internal/repo"
	"repo-sync/internal/vcs"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// RunContext holds the common initialization result for commands.
type RunContext struct {
	Config  *config.Config
	Scanner *repo.Scanner
	Ops     *batch.Ops
	Repos   []string
}

// newExecutor 创建版本控制执行器，测试中可替换。
var newExecutor = func(cfg *config.Config, log *logrus.Entry) vcs.Executor {
	return vcs.NewGitExecutor(cfg.Git, log)
}

// loadConfig 加载配置并应用命令行覆盖项。
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if s := strings.TrimSpace(rootDir); s != "" {
		cfg.Root = s
	}
	if s := strings.TrimSpace(rootMarker); s != "" {
		cfg.Marker = s
	}
	if cfg.Marker == "" {
		cfg.Marker = config.DefaultMarker
	}
	return cfg, nil
}

// readRoot 在每次扫描时读取根目录：命令行优先，其次配置。
func readRoot() (string, error) {
	if s := strings.TrimSpace(rootDir); s != "" {
		return config.ExpandPath(s)
	}
	return config.ReadRoot()
}

// prepareRun performs common command initialization:
// load config, build the working set, wire batch operations.
// 扫描失败不会返回错误，诊断信息写到命令的 stderr，工作集为空。
func prepareRun(cmd *cobra.Command) (*RunContext, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	scanner := repo.NewScanner(readRoot,
		repo.WithMarker(repo.EntryMarker(cfg.Marker)),
		repo.WithDiagnostics(cmd.ErrOrStderr()),
	)
	repos := scanner.Build()
	logger.WithFields(logrus.Fields{"component": "scan", "count": len(repos)}).Debug("working set built")

	return &RunContext{
		Config:  cfg,
		Scanner: scanner,
		Ops:     batch.New(scanner, newExecutor(cfg, logrus.NewEntry(logger))),
		Repos:   repos,
	}, nil
}

// printResult 输出单个仓库的命令结果，空输出显示为 (no output)。
func printResult(out io.Writer, path, text string) {
	fmt.Fprintf(out, "==> %s\n", path)
	text = strings.TrimRight(text, "\n")
	if strings.TrimSpace(text) == "" {
		fmt.Fprintln(out, "(no output)")
		return
	}
	fmt.Fprintln(out, text)
}
