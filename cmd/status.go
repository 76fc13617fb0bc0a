package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// statusBehind 为 true 时只列出可以快进的仓库。
var statusBehind bool

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show status of every repository",
	Args:  cobra.NoArgs,
	RunE:  runStatus,
}

func init() {
	statusCmd.Flags().BoolVarP(&statusBehind, "behind", "b", false, "Only list repositories that can be fast-forwarded")
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, _ []string) error {
	runCtx, err := prepareRun(cmd)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if !statusBehind {
		for path, text := range runCtx.Ops.Status() {
			printResult(out, path, text)
		}
		return nil
	}

	found := 0
	for path := range runCtx.Ops.Pullable() {
		fmt.Fprintln(out, path)
		found++
	}
	if found == 0 {
		fmt.Fprintln(out, "all repositories up to date")
	}
	return nil
}
