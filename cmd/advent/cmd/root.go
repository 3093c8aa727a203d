package cmd

import (
	"context"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type rootOpts struct {
	debugModeOn bool
	hideLogTime bool
}

var longRootCmdDescription = `advent solves Advent of Code puzzles from local input files.
Each day reads its input, one line per row, and prints one labeled answer per part.
`

// NewRootCmd builds the advent command tree.
func NewRootCmd() *cobra.Command {
	var opts rootOpts
	rootCmd := &cobra.Command{
		Use:           "advent",
		Short:         "Solve Advent of Code puzzles from local input files.",
		Long:          longRootCmdDescription,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			initLogger(opts)
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&opts.debugModeOn, "debug", "d", false, "turn on debug mode")
	rootCmd.PersistentFlags().BoolVar(&opts.hideLogTime, "hide-time", false, "hide the log time")
	rootCmd.DisableAutoGenTag = true

	rootCmd.AddCommand(NewDayCmd(), NewAllCmd())
	return rootCmd
}

func initLogger(opts rootOpts) {
	logrus.SetOutput(os.Stderr)
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:    true,
		DisableTimestamp: opts.hideLogTime,
		TimestampFormat:  "2006-01-02 15:04:05",
	})
	logrus.SetLevel(logrus.InfoLevel)
	if opts.debugModeOn {
		logrus.SetLevel(logrus.DebugLevel)
	}
}

// Execute runs the root command and exits non-zero on failure.
// This is called by main.main().
func Execute() {
	if err := NewRootCmd().ExecuteContext(context.Background()); err != nil {
		logrus.Errorf("advent: %v", err)
		os.Exit(1)
	}
}
