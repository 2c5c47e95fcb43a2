package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/on-the-ground/partitions/internal/logging"
	"github.com/on-the-ground/partitions/partition"
)

const exitFailure = 1

func newRootCmd(logger *zap.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "partitions <n> [k]",
		Short: "Count integer partitions",
		Long: "Prints the number of partitions of n, or with k the number of\n" +
			"partitions of n into exactly k parts.",
		Args:          cobra.MaximumNArgs(2),
		SilenceErrors: true,
		SilenceUsage:  true,

		// n may be negative, which must reach validation rather than the flag parser.
		DisableFlagParsing: true,

		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := partition.ParseQuery(args)
			if err != nil {
				return err
			}
			counter := partition.New(partition.WithLogger(logger))
			_, err = fmt.Fprintln(cmd.OutOrStdout(), q.Run(counter))
			return err
		},
	}
	cmd.CompletionOptions.DisableDefaultCmd = true
	return cmd
}

// run executes the command and returns the process exit status.
func run(args []string, stdout, stderr io.Writer) int {
	logger := logging.NewConsoleLogger(stderr, zap.WarnLevel)
	defer func() { _ = logger.Sync() }()

	if args == nil {
		// cobra falls back to os.Args on nil
		args = []string{}
	}
	cmd := newRootCmd(logger)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	if err := cmd.Execute(); err != nil {
		for _, e := range multierr.Errors(err) {
			logger.Error(e.Error())
		}
		fmt.Fprintln(stderr, "usage:", cmd.UseLine())
		return exitFailure
	}
	return 0
}
