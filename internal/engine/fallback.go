package engine

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hapi-tools/gitstatus/internal/cmd"
	"github.com/hapi-tools/gitstatus/internal/git"
	"github.com/hapi-tools/gitstatus/internal/log"
	"github.com/hapi-tools/gitstatus/internal/paths"
	"github.com/hapi-tools/gitstatus/internal/section"
)

// fanoutWorkers bounds concurrent git processes during multi-repo
// fan-out. Results keep the sorted repository order regardless.
const fanoutWorkers = 4

// ErrNoNestedRepos is reported when a directory is not a repository and
// discovery finds no nested repositories below it either.
var ErrNoNestedRepos = errors.New("no nested git repositories found")

// Status runs the structured status query, fanning out across nested
// repositories when the directory itself is not one.
func (e *Engine) Status(ctx context.Context, opts Opts) Result {
	return e.runWithFanout(ctx, opts, git.StatusArgs())
}

// DiffNumstat runs the per-file diff-stat query, fanning out across
// nested repositories when the directory itself is not one.
func (e *Engine) DiffNumstat(ctx context.Context, staged bool, opts Opts) Result {
	return e.runWithFanout(ctx, opts, git.NumstatArgs(staged))
}

// runWithFanout is the shared orchestration for status and numstat:
// direct attempt, "not a repository" classification, then a framed
// multi-repo fan-out.
func (e *Engine) runWithFanout(ctx context.Context, opts Opts, args []string) Result {
	dir, err := e.resolveDir(opts)
	if err != nil {
		return fail(err.Error())
	}
	timeout := e.timeoutFor(opts)

	direct := e.runner.Run(ctx, dir, timeout, args...)
	if direct.Success || !git.IsNotRepo(direct) {
		return fromCmd(direct)
	}

	repos := e.scanner.Discover(dir)
	if len(repos) == 0 {
		res := fail(ErrNoNestedRepos.Error())
		// Keep the original diagnostics for debugging
		res.Stderr = ErrNoNestedRepos.Error() + "\n" + strings.TrimSpace(direct.Stderr)
		return res
	}

	return e.fanout(ctx, repos, timeout, args)
}

// fanout runs the same query in every discovered repository and merges
// the outputs into one framed stream. Workers are bounded; result slots
// are indexed by repository so the sorted order survives without a
// post-hoc sort. Per-repo failures become warnings unless every
// repository fails.
func (e *Engine) fanout(ctx context.Context, repos []git.Repo, timeout time.Duration, args []string) Result {
	results := make([]cmd.Result, len(repos))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(fanoutWorkers)
	for i, repo := range repos {
		i, repo := i, repo
		g.Go(func() error {
			results[i] = e.runner.Run(gctx, repo.Path, timeout, args...)
			return nil // per-repo failures are collected, never fatal
		})
	}
	_ = g.Wait() // always nil

	logger := log.FromContext(ctx)
	var (
		sections  []string
		warnings  []string
		succeeded int
	)
	for i, repo := range repos {
		res := results[i]
		if !res.Success {
			warnings = append(warnings, fmt.Sprintf("%s: %s", repo.Rel, res.ErrorText()))
			logger.Warnf("%s: %s", repo.Rel, res.ErrorText())
			continue
		}
		succeeded++
		if strings.TrimSpace(res.Stdout) == "" {
			continue // clean repo, nothing to frame
		}
		sections = append(sections, section.Wrap(repo.Rel, res.Stdout))
	}

	if succeeded == 0 {
		return Result{
			Success:  false,
			ExitCode: 1,
			Error:    warnings[0],
			Stderr:   strings.Join(warnings, "\n"),
		}
	}
	return Result{
		Success: true,
		Stdout:  strings.Join(sections, "\n"),
		Stderr:  strings.Join(warnings, "\n"),
	}
}

// DiffFile runs a unified diff for one file. On fallback the file is
// targeted at the most specific discovered repository containing it; the
// single command's result is returned unframed.
func (e *Engine) DiffFile(ctx context.Context, file string, staged bool, opts Opts) Result {
	dir, err := e.resolveDir(opts)
	if err != nil {
		return fail(err.Error())
	}
	if file == "" {
		return fail("file path is required")
	}
	abs, err := paths.Resolve(dir, file)
	if err != nil {
		return fail(err.Error())
	}
	timeout := e.timeoutFor(opts)

	direct := e.runner.Run(ctx, dir, timeout, git.DiffFileArgs(staged, file)...)
	if direct.Success || !git.IsNotRepo(direct) {
		return fromCmd(direct)
	}

	repos := e.scanner.Discover(dir)
	if len(repos) == 0 {
		return fail(ErrNoNestedRepos.Error())
	}

	owner, ok := owningRepo(repos, abs)
	if !ok {
		return fail(fmt.Sprintf("file %q is not inside a nested repository", file))
	}
	rel, err := filepath.Rel(owner.Path, abs)
	if err != nil {
		return fail(fmt.Sprintf("file %q is not inside a nested repository", file))
	}
	return fromCmd(e.runner.Run(ctx, owner.Path, timeout, git.DiffFileArgs(staged, rel)...))
}

// owningRepo picks the most specific (longest-path) repository whose
// directory is an ancestor of abs.
func owningRepo(repos []git.Repo, abs string) (git.Repo, bool) {
	var best git.Repo
	found := false
	for _, repo := range repos {
		if !paths.Within(repo.Path, abs) {
			continue
		}
		if !found || len(repo.Path) > len(best.Path) {
			best = repo
			found = true
		}
	}
	return best, found
}
