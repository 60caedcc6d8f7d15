package git

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/hapi-tools/gitstatus/internal/cmd"
)

// gitArgs prepends -C <dir> to args if dir is non-empty.
func gitArgs(dir string, args []string) []string {
	if dir == "" {
		return args
	}
	return append([]string{"-C", dir}, args...)
}

// Runner executes git commands. It satisfies the engine's runner contract
// and is the only place a git process is spawned.
type Runner struct{}

// Run invokes git in dir with the given timeout. All failure modes are
// returned as data, never as an error.
func (Runner) Run(ctx context.Context, dir string, timeout time.Duration, args ...string) cmd.Result {
	return cmd.Run(ctx, "", timeout, "git", gitArgs(dir, args)...)
}

// StatusArgs returns the arguments for the structured status query.
// Porcelain v2 with --branch emits the branch pragma lines and the
// 1/2/u/?/! record lines the status parser understands.
func StatusArgs() []string {
	return []string{"status", "--porcelain=v2", "--branch"}
}

// NumstatArgs returns the arguments for the per-file diff-stat query.
func NumstatArgs(staged bool) []string {
	args := []string{"diff", "--numstat"}
	if staged {
		args = append(args, "--cached")
	}
	return args
}

// DiffFileArgs returns the arguments for a single-file diff. file must be
// relative to the repository the command runs in.
func DiffFileArgs(staged bool, file string) []string {
	args := []string{"diff"}
	if staged {
		args = append(args, "--cached")
	}
	return append(args, "--", file)
}

// IsRepo checks if a path is a git repository root (has a .git dir or file).
// .git can be a directory (regular repo) or file (worktree or submodule).
func IsRepo(path string) bool {
	info, err := os.Stat(filepath.Join(path, metaDirName))
	if err != nil {
		return false
	}
	return info.IsDir() || info.Mode().IsRegular()
}
