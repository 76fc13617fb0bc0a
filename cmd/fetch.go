package cmd

import (
	"github.com/spf13/cobra"
)

// fetchCmd 依次对每个仓库执行 fetch 并输出结果。
var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Run fetch in every repository",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		runCtx, err := prepareRun(cmd)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for path, text := range runCtx.Ops.FetchResults() {
			printResult(out, path, text)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(fetchCmd)
}
