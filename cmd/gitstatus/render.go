package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/hapi-tools/gitstatus/internal/output"
	"github.com/hapi-tools/gitstatus/internal/status"
	"github.com/hapi-tools/gitstatus/internal/ui/static"
)

var (
	headingStyle   = lipgloss.NewStyle().Bold(true)
	branchStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	addedStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	modifiedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	deletedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	renamedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
	conflictStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	untrackedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

func categoryStyle(cat status.Category) lipgloss.Style {
	switch cat {
	case status.Added:
		return addedStyle
	case status.Deleted:
		return deletedStyle
	case status.Renamed:
		return renamedStyle
	case status.Conflicted:
		return conflictStyle
	case status.Untracked:
		return untrackedStyle
	default:
		return modifiedStyle
	}
}

// renderAggregation writes the human-readable status report.
// Styling is skipped when stdout is not a terminal.
func renderAggregation(out *output.Printer, agg *status.Aggregation) {
	styled := isatty.IsTerminal(os.Stdout.Fd())
	style := func(s lipgloss.Style, text string) string {
		if !styled {
			return text
		}
		return s.Render(text)
	}

	switch {
	case agg.Branch != "":
		out.Printf("On branch %s\n", style(branchStyle, agg.Branch))
	case len(agg.Repos) > 0:
		for _, r := range agg.Repos {
			branch := r.Branch
			if branch == "" {
				branch = "detached"
			}
			out.Printf("%s (%s)\n", r.Name, style(branchStyle, branch))
		}
	}

	if agg.TotalStaged == 0 && agg.TotalUnstaged == 0 {
		out.Println("Nothing to commit, working trees clean")
		return
	}

	if len(agg.StagedFiles) > 0 {
		out.Println()
		out.Println(style(headingStyle, "Staged changes:"))
		out.Print(static.RenderTable(statusHeaders, statusRows(agg.StagedFiles, style)))
	}
	if len(agg.UnstagedFiles) > 0 {
		out.Println()
		out.Println(style(headingStyle, "Unstaged changes:"))
		out.Print(static.RenderTable(statusHeaders, statusRows(agg.UnstagedFiles, style)))
	}

	out.Printf("\n%d staged, %d unstaged\n", agg.TotalStaged, agg.TotalUnstaged)
}

var statusHeaders = []string{"STATUS", "FILE", "CHANGES"}

func statusRows(files []status.FileStatus, style func(lipgloss.Style, string) string) [][]string {
	rows := make([][]string, 0, len(files))
	for _, f := range files {
		path := f.FullPath
		if f.OldPath != "" {
			path = f.OldPath + " -> " + f.FullPath
		}
		rows = append(rows, []string{
			style(categoryStyle(f.Status), string(f.Status)),
			path,
			changeSummary(f, style),
		})
	}
	return rows
}

func changeSummary(f status.FileStatus, style func(lipgloss.Style, string) string) string {
	if f.Binary {
		return "binary"
	}
	if f.Status == status.Untracked {
		return ""
	}
	plus := style(addedStyle, fmt.Sprintf("+%d", f.LinesAdded))
	minus := style(deletedStyle, fmt.Sprintf("-%d", f.LinesRemoved))
	return plus + " " + minus
}
