package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hapi-tools/gitstatus/internal/engine"
	"github.com/hapi-tools/gitstatus/internal/output"
)

func newDiffCmd() *cobra.Command {
	var staged bool

	cmd := &cobra.Command{
		Use:   "diff [file]",
		Short: "Show diff statistics, or the full diff of one file",
		Args:  cobra.MaximumNArgs(1),
		Long: `Show diff statistics in numstat form, or the full diff of one file.

Without a file argument, per-file insertion and deletion counts are
reported. Outside a repository the counts of every nested repository
are combined, framed per repository. With a file argument the full
patch for that file is printed; the file is routed to the nested
repository that contains it.`,
		Example: `  gitstatus diff                  # Numstat for unstaged changes
  gitstatus diff --staged         # Numstat for staged changes
  gitstatus diff api/main.go      # Full diff of one file`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)

			eng, opts := newEngine()
			var res engine.Result
			if len(args) == 1 {
				res = eng.DiffFile(ctx, args[0], staged, opts)
			} else {
				res = eng.DiffNumstat(ctx, staged, opts)
			}

			if res.Stderr != "" {
				fmt.Fprintln(os.Stderr, strings.TrimRight(res.Stderr, "\n"))
			}
			if !res.Success {
				return errors.New(res.Error)
			}
			if res.Stdout != "" {
				out.Println(strings.TrimRight(res.Stdout, "\n"))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&staged, "staged", false, "Diff staged changes instead of unstaged")

	return cmd
}
