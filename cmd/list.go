package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// listCmd 实现 list 子命令，列出根目录下识别到的仓库。
// 用法: repo-sync list
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List repositories found under the root folder",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		runCtx, err := prepareRun(cmd)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if len(runCtx.Repos) == 0 {
			fmt.Fprintln(out, "no repositories found")
			return nil
		}
		for _, p := range runCtx.Repos {
			fmt.Fprintln(out, p)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
