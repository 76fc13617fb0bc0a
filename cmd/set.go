package cmd

import (
	"fmt"
	"strings"

	"repo-sync/internal/config"

	"github.com/spf13/cobra"
)

// setCmd 实现 set 子命令，用于查看或修改默认配置。
// 支持两种模式：
// 1. repo-sync set - 显示当前配置
// 2. repo-sync set <key> <value> - 设置配置项（root、marker、git）
var setCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Set or show default configuration",
	Example: `  repo-sync set
  repo-sync set root ~/code
  repo-sync set marker .git
  repo-sync set git /usr/local/bin/git`,
	Args: validateSetArgs,
	RunE: runSet,
}

func init() {
	rootCmd.AddCommand(setCmd)
}

// validateSetArgs 校验 set 参数格式。
func validateSetArgs(cmd *cobra.Command, args []string) error {
	if len(args) == 0 || len(args) == 2 {
		return nil
	}
	return fmt.Errorf("usage: repo-sync set [root|marker|git] <value>")
}

func runSet(cmd *cobra.Command, args []string) error {
	// 这里读取的是持久化的配置，不应用 --root 等覆盖项
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if len(args) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "root: %s\nmarker: %s\ngit: %s\n", cfg.Root, cfg.Marker, cfg.Git)
		return nil
	}

	key := args[0]
	val := strings.TrimSpace(args[1])

	var saved string
	switch key {
	case "root":
		abs, err := config.ExpandPath(val)
		if err != nil {
			return fmt.Errorf("invalid root %q: %w", val, err)
		}
		cfg.Root, saved = abs, abs
	case "marker":
		if err := config.ValidateMarker(val); err != nil {
			return err
		}
		cfg.Marker, saved = val, val
	case "git":
		if val == "" {
			return fmt.Errorf("git must not be empty")
		}
		cfg.Git, saved = val, val
	default:
		return fmt.Errorf("unsupported key %q (supported: root, marker, git)", key)
	}

	if err := config.Save(*cfg); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s set to %s\n", key, saved)
	return nil
}
