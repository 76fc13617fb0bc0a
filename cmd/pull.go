package cmd

import (
	"fmt"
	"io"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// pullFetchFirst 为 true 时先对所有仓库执行一轮 fetch。
var pullFetchFirst bool

// pullCmd 只对可以快进的仓库执行 pull。
// 用法: repo-sync pull [--fetch]
var pullCmd = &cobra.Command{
	Use:   "pull",
	Short: "Pull every repository that can be fast-forwarded",
	Args:  cobra.NoArgs,
	RunE:  runPull,
}

func init() {
	pullCmd.Flags().BoolVarP(&pullFetchFirst, "fetch", "f", false, "Fetch all repositories before checking status")
	rootCmd.AddCommand(pullCmd)
}

func runPull(cmd *cobra.Command, _ []string) error {
	runCtx, err := prepareRun(cmd)
	if err != nil {
		return err
	}

	if pullFetchFirst {
		bar := newRepoProgressBar(cmd.ErrOrStderr(), len(runCtx.Repos), "fetching")
		for text := range runCtx.Ops.Fetch() {
			logger.WithField("component", "fetch").Debug(text)
			if bar != nil {
				_ = bar.Add(1)
			}
		}
		if bar != nil {
			_ = bar.Finish()
		}
	}

	out := cmd.OutOrStdout()
	pulled := 0
	for path, text := range runCtx.Ops.PullResults() {
		printResult(out, path, text)
		pulled++
	}

	if pulled == 0 {
		fmt.Fprintln(out, "all repositories up to date")
		return nil
	}
	fmt.Fprintf(out, "pulled %d repositories\n", pulled)
	return nil
}

// newRepoProgressBar 创建仓库处理进度条，输出到 w。
// 仅当仓库数量 > 1 且 w 是终端时才显示。
func newRepoProgressBar(w io.Writer, total int, description string) *progressbar.ProgressBar {
	if total <= 1 {
		return nil
	}
	f, ok := w.(interface{ Fd() uintptr })
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return nil
	}

	return progressbar.NewOptions(
		total,
		progressbar.OptionSetWriter(w),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionSetDescription(description),
		progressbar.OptionShowCount(),
		progressbar.OptionSetPredictTime(false),
		progressbar.OptionThrottle(65*time.Millisecond),
	)
}
