package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/hapi-tools/gitstatus/internal/output"
	"github.com/hapi-tools/gitstatus/internal/ui/static"
)

func newScanCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "scan",
		Short: "List nested git repositories",
		Args:  cobra.NoArgs,
		Long: `List the nested git repositories below a directory.

The scan is breadth-first and bounded by the configured depth,
directory, and repository limits. Hidden directories and dependency
caches are skipped.`,
		Example: `  gitstatus scan               # Repos below the current directory
  gitstatus scan -d ~/code     # Repos below another directory
  gitstatus scan --json        # Output as JSON`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)

			eng, opts := newEngine()
			repos, err := eng.Discover(opts)
			if err != nil {
				return err
			}

			if jsonOutput {
				enc := json.NewEncoder(out.Writer())
				enc.SetIndent("", "  ")
				return enc.Encode(repos)
			}

			if len(repos) == 0 {
				out.Println("No nested git repositories found")
				return nil
			}

			headers := []string{"REPO", "PATH"}
			rows := make([][]string, 0, len(repos))
			for _, r := range repos {
				rows = append(rows, []string{r.Rel, r.Path})
			}
			out.Print(static.RenderTable(headers, rows))

			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}
