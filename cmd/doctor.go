package cmd

import (
	"fmt"
	"io"
	"os"
	"os/exec"

	"repo-sync/internal/config"
	"repo-sync/internal/repo"

	"github.com/spf13/cobra"
)

// doctorCmd 实现 doctor 子命令，一站式诊断环境和配置问题。
// 有错误时返回非零退出码，仅警告时返回 0。
// 用法: repo-sync doctor
var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Diagnose environment and configuration issues",
	Args:  cobra.NoArgs,
	RunE:  runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

// runDoctor 按顺序执行诊断检查：
//  1. 配置合法性（root、marker、git）
//  2. git 可执行文件
//  3. 根目录可读
//  4. 仓库扫描结果与标记复核
//  5. 上游跟踪（当前分支有上游且已 fetch，仅 .git 标记）
//  6. 读权限
//  7. 性能预警
//
// 输出使用 ✅/⚠️/❌ 分类显示，有错误时返回 error（exit 非零）。
func runDoctor(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "Running diagnostics...")

	hasError := false

	// 1. 配置合法性检查
	cfg, cfgErr := loadConfig()
	if cfgErr != nil {
		fmt.Fprintf(out, "❌ Config: %v\n", cfgErr)
		return fmt.Errorf("doctor found issues")
	}
	if issues := config.ValidateConfig(cfg); len(issues) == 0 {
		fmt.Fprintln(out, "✅ Config: OK")
	} else {
		hasError = true
		fmt.Fprintf(out, "❌ Config: %d issue(s)\n", len(issues))
		printLines(out, issues)
	}

	// 2. git 可执行文件
	if path, err := exec.LookPath(cfg.Git); err != nil {
		hasError = true
		fmt.Fprintf(out, "❌ Git: %v\n", err)
	} else {
		fmt.Fprintf(out, "✅ Git: %s\n", path)
	}

	// 3. 根目录可读
	root, rootErr := readRoot()
	if rootErr == nil {
		_, rootErr = os.ReadDir(root)
	}
	if rootErr != nil {
		fmt.Fprintf(out, "❌ Root: %v\n", rootErr)
		return fmt.Errorf("doctor found issues")
	}
	fmt.Fprintf(out, "✅ Root: %s\n", root)

	// 4. 扫描仓库并复核标记
	marker := repo.EntryMarker(cfg.Marker)
	scanner := repo.NewScanner(repo.StaticRoot(root),
		repo.WithMarker(marker),
		repo.WithDiagnostics(cmd.ErrOrStderr()),
	)
	repos := scanner.Build()
	if len(repos) == 0 {
		fmt.Fprintln(out, "⚠️  Repositories: none found")
	} else {
		invalid := make([]string, 0)
		for _, repoPath := range repos {
			if !repo.IsValidRepo(repoPath, marker) {
				invalid = append(invalid, fmt.Sprintf("%s: missing %s", repoPath, cfg.Marker))
			}
		}
		if len(invalid) == 0 {
			fmt.Fprintf(out, "✅ Repositories: %d found, marker %s valid\n", len(repos), cfg.Marker)
		} else {
			hasError = true
			fmt.Fprintf(out, "❌ Repositories: %d/%d marker %s valid\n", len(repos)-len(invalid), len(repos), cfg.Marker)
			printLines(out, invalid)
		}
	}

	// 5. 上游跟踪：没有上游的仓库永远不会被 pull，只作为警告
	switch {
	case len(repos) == 0:
		fmt.Fprintln(out, "⚠️  Upstream tracking: skipped (no repositories)")
	case marker != repo.GitMarker:
		fmt.Fprintf(out, "⚠️  Upstream tracking: skipped (marker %s is not .git)\n", cfg.Marker)
	default:
		upstreamIssues := make([]string, 0)
		for _, repoPath := range repos {
			if err := repo.CheckBranchReachability(repoPath); err != nil {
				upstreamIssues = append(upstreamIssues, fmt.Sprintf("%s: %v", repoPath, err))
			}
		}
		if len(upstreamIssues) == 0 {
			fmt.Fprintln(out, "✅ Upstream tracking: OK")
		} else {
			fmt.Fprintf(out, "⚠️  Upstream tracking: %d issue(s)\n", len(upstreamIssues))
			printLines(out, upstreamIssues)
		}
	}

	// 6. 读权限检查
	if len(repos) == 0 {
		fmt.Fprintln(out, "⚠️  Permissions: skipped (no repositories)")
	} else {
		permissionErrors := make([]string, 0)
		for _, repoPath := range repos {
			if err := repo.CheckPermissions(repoPath, cfg.Marker); err != nil {
				permissionErrors = append(permissionErrors, fmt.Sprintf("%s: %v", repoPath, err))
			}
		}
		if len(permissionErrors) == 0 {
			fmt.Fprintln(out, "✅ Permissions: OK")
		} else {
			hasError = true
			fmt.Fprintf(out, "❌ Permissions: %d issue(s)\n", len(permissionErrors))
			printLines(out, permissionErrors)
		}
	}

	// 7. 性能预警
	performanceWarnings := repo.CheckPerformance(repos, cfg.Marker)
	if len(performanceWarnings) == 0 {
		fmt.Fprintln(out, "✅ Performance: OK")
	} else {
		fmt.Fprintf(out, "⚠️  Performance: %d warning(s)\n", len(performanceWarnings))
		printLines(out, performanceWarnings)
	}

	if hasError {
		return fmt.Errorf("doctor found issues")
	}
	return nil
}

// printLines 将字符串列表以缩进列表形式输出，每行前加 "   - " 前缀。
func printLines(out io.Writer, lines []string) {
	for _, line := range lines {
		fmt.Fprintf(out, "   - %s\n", line)
	}
}
