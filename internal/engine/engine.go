package engine

import (
	"context"
	"errors"
	"path/filepath"
	"time"

	"github.com/hapi-tools/gitstatus/internal/cmd"
	"github.com/hapi-tools/gitstatus/internal/git"
	"github.com/hapi-tools/gitstatus/internal/paths"
	"github.com/hapi-tools/gitstatus/internal/status"
)

// Runner is the command execution contract the engine depends on.
// Implemented by [git.Runner]; tests substitute a fake.
type Runner interface {
	Run(ctx context.Context, dir string, timeout time.Duration, args ...string) cmd.Result
}

// Config constructs an Engine. RootDir is the trusted root: the default
// working directory and the boundary no per-call path may escape.
type Config struct {
	RootDir  string
	Timeout  time.Duration  // per-invocation timeout, default cmd.DefaultTimeout
	CacheTTL time.Duration  // discovery cache TTL, default git.DefaultCacheTTL
	Limits   git.ScanLimits // discovery bounds, zero value means defaults
}

// Opts are per-call overrides.
type Opts struct {
	Dir     string        // working directory override, validated against RootDir
	Timeout time.Duration // timeout override
}

// Result is the invocation-interface shape of one operation's outcome.
// Stderr and ExitCode keep raw tool diagnostics for debugging; Error is a
// short actionable message.
type Result struct {
	Success  bool   `json:"success"`
	Stdout   string `json:"stdout,omitempty"`
	Stderr   string `json:"stderr,omitempty"`
	ExitCode int    `json:"exitCode"`
	Error    string `json:"error,omitempty"`
}

// Engine owns the discovery cache and configuration; all other state is
// request-scoped.
type Engine struct {
	root    string
	timeout time.Duration
	runner  Runner
	scanner *git.Scanner
}

// New creates an engine rooted at cfg.RootDir.
func New(cfg Config) *Engine {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = cmd.DefaultTimeout
	}
	ttl := cfg.CacheTTL
	if ttl == 0 {
		ttl = git.DefaultCacheTTL
	}
	limits := cfg.Limits
	if limits.MaxDepth == 0 && limits.MaxDirs == 0 && limits.MaxRepos == 0 {
		limits = git.DefaultLimits()
	}
	return &Engine{
		root:    filepath.Clean(cfg.RootDir),
		timeout: timeout,
		runner:  git.Runner{},
		scanner: git.NewScanner(ttl, limits),
	}
}

// Root returns the engine's trusted root directory.
func (e *Engine) Root() string {
	return e.root
}

// Discover returns the nested repositories under the resolved directory,
// through the TTL cache.
func (e *Engine) Discover(opts Opts) ([]git.Repo, error) {
	dir, err := e.resolveDir(opts)
	if err != nil {
		return nil, err
	}
	return e.scanner.Discover(dir), nil
}

// resolveDir validates the per-call directory override against the root.
func (e *Engine) resolveDir(opts Opts) (string, error) {
	return paths.Resolve(e.root, opts.Dir)
}

func (e *Engine) timeoutFor(opts Opts) time.Duration {
	if opts.Timeout > 0 {
		return opts.Timeout
	}
	return e.timeout
}

// fromCmd converts a raw command result to the invocation-interface shape.
func fromCmd(res cmd.Result) Result {
	out := Result{
		Success:  res.Success,
		Stdout:   res.Stdout,
		Stderr:   res.Stderr,
		ExitCode: res.ExitCode,
	}
	if !res.Success {
		out.Error = res.ErrorText()
	}
	return out
}

// fail builds a domain-error result that never reached a process.
func fail(msg string) Result {
	return Result{Success: false, ExitCode: -1, Error: msg, Stderr: msg}
}

// Aggregate runs the status and both numstat queries and merges them into
// the unified staged/unstaged view. Numstat failures degrade to zero
// stats rather than failing the whole aggregation.
func (e *Engine) Aggregate(ctx context.Context, opts Opts) (*status.Aggregation, error) {
	st := e.Status(ctx, opts)
	if !st.Success {
		return nil, errors.New(st.Error)
	}
	staged := e.DiffNumstat(ctx, true, opts)
	unstaged := e.DiffNumstat(ctx, false, opts)
	return status.Aggregate(st.Stdout, staged.Stdout, unstaged.Stdout), nil
}
