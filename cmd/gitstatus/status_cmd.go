package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/hapi-tools/gitstatus/internal/output"
)

func newStatusCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show staged and unstaged changes",
		Args:  cobra.NoArgs,
		Long: `Show staged and unstaged changes with per-file line counts.

Inside a repository the report covers that repository. Elsewhere,
nested repositories are queried concurrently and file paths are
prefixed with the repository they belong to.`,
		Example: `  gitstatus status             # Status for the current directory
  gitstatus status -d ~/code   # Status for another directory
  gitstatus status --json      # Output as JSON`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)

			eng, opts := newEngine()
			agg, err := eng.Aggregate(ctx, opts)
			if err != nil {
				return err
			}

			if jsonOutput {
				enc := json.NewEncoder(out.Writer())
				enc.SetIndent("", "  ")
				return enc.Encode(agg)
			}

			renderAggregation(out, agg)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}
