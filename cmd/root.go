package cmd

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	rootDir    string
	rootMarker string
	verbose    bool
)

// logger 是命令层共用的日志实例，默认 info 级别，--verbose 时为 debug。
var logger = logrus.New()

var rootCmd = &cobra.Command{
	Use:   "repo-sync",
	Short: "Fetch, inspect and pull every repository under one folder",
	Long: `repo-sync scans the immediate subdirectories of a root folder for
repositories and runs fetch, status or pull across all of them, one at a time.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initLogging)

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&rootDir, "root", "r", "", "Root folder to scan (overrides config)")
	flags.StringVar(&rootMarker, "marker", "", "Entry that marks a repository (overrides config, default .git)")
	flags.BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

func initLogging() {
	logger.SetOutput(rootCmd.ErrOrStderr())
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	level := logrus.InfoLevel
	if env := strings.TrimSpace(os.Getenv("REPO_SYNC_LOG_LEVEL")); env != "" {
		if parsed, err := logrus.ParseLevel(env); err == nil {
			level = parsed
		}
	}
	if verbose {
		level = logrus.DebugLevel
	}
	logger.SetLevel(level)
}
