package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/hapi-tools/gitstatus/internal/config"
	"github.com/hapi-tools/gitstatus/internal/log"
	"github.com/hapi-tools/gitstatus/internal/output"
)

var (
	// Global flags
	verbose     bool
	dirFlag     string
	timeoutFlag time.Duration

	// Shared state injected into commands
	cfg     *config.Config
	workDir string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "gitstatus",
	Short: "Aggregated git status and diff across nested repositories",
	Long: `gitstatus reports staged and unstaged changes for a directory tree.

Inside a git repository it behaves like a thin wrapper around git. In a
directory that is not a repository, nested repositories are discovered
and queried concurrently, and their results are merged into a single
report with per-repository attribution.`,
	SilenceUsage:               true,
	SilenceErrors:              true,
	SuggestionsMinimumDistance: 2, // Enable typo suggestions
	// Run is not set - shows help when no subcommand provided
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	// Parse flags early so --verbose affects the logger
	_ = rootCmd.ParseFlags(os.Args[1:])

	// Load config
	loadedCfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	cfg = &loadedCfg

	// Get working directory
	workDir, err = os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "gitstatus: failed to get working directory: %v\n", err)
		os.Exit(1)
	}

	// Create context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Create logger (stderr for diagnostics)
	logger := log.New(os.Stderr, verbose)
	ctx = log.WithLogger(ctx, logger)

	// Add output printer (stdout for primary data)
	ctx = output.WithPrinter(ctx, os.Stdout)

	// Store context for commands to use
	rootCmd.SetContext(ctx)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show git commands being executed")
	rootCmd.PersistentFlags().StringVarP(&dirFlag, "dir", "d", "", "Directory to query (default: root_dir from config, else the current directory)")
	rootCmd.PersistentFlags().DurationVar(&timeoutFlag, "timeout", 0, "Per-git-command timeout (default: from config)")

	// Version flag
	rootCmd.Version = versionString()
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	rootCmd.AddCommand(newStatusCmd())
	rootCmd.AddCommand(newDiffCmd())
	rootCmd.AddCommand(newScanCmd())
	rootCmd.AddCommand(newConfigCmd())
}
