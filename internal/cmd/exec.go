package cmd

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"
	"time"

	"github.com/hapi-tools/gitstatus/internal/log"
)

// DefaultTimeout bounds a single command invocation unless the caller
// overrides it.
const DefaultTimeout = 10 * time.Second

// Kind classifies how a command invocation ended.
type Kind int

const (
	// KindNone means the command exited zero.
	KindNone Kind = iota
	// KindExit means the command ran and exited nonzero.
	KindExit
	// KindTimeout means the invocation hit its deadline or the process was
	// killed by a signal before exiting.
	KindTimeout
	// KindStart means the process could not be spawned at all.
	KindStart
)

// Result is the outcome of one command invocation. Stdout and Stderr are
// captured even on failure; failure text is inspected by callers to
// classify retryable conditions.
type Result struct {
	Success  bool
	Stdout   string
	Stderr   string
	ExitCode int
	Kind     Kind
}

// TimedOut reports whether the invocation was cut off by its deadline.
func (r Result) TimedOut() bool {
	return r.Kind == KindTimeout
}

// ErrorText returns a short description of the failure, preferring the
// process's own stderr.
func (r Result) ErrorText() string {
	if s := strings.TrimSpace(r.Stderr); s != "" {
		return s
	}
	switch r.Kind {
	case KindTimeout:
		return "command timed out"
	case KindStart:
		return "command could not be started"
	case KindExit:
		return "command failed"
	}
	return ""
}

// Run executes a command in dir with the given timeout and returns the
// outcome as data. It never returns an error. A non-positive timeout means
// [DefaultTimeout]. An empty dir runs in the current working directory.
func Run(ctx context.Context, dir string, timeout time.Duration, name string, args ...string) Result {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	log.FromContext(ctx).Command(dir, name, args...)

	cctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	c := exec.CommandContext(cctx, name, args...)
	if dir != "" {
		c.Dir = dir
	}
	var stdout, stderr bytes.Buffer
	c.Stdout = &stdout
	c.Stderr = &stderr

	err := c.Run()
	res := Result{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}
	if err == nil {
		res.Success = true
		return res
	}

	var exitErr *exec.ExitError
	switch {
	case errors.Is(cctx.Err(), context.DeadlineExceeded):
		res.Kind = KindTimeout
		res.ExitCode = -1
		if strings.TrimSpace(res.Stderr) == "" {
			res.Stderr = "timed out after " + timeout.String()
		}
	case errors.As(err, &exitErr):
		res.ExitCode = exitErr.ExitCode()
		if res.ExitCode == -1 {
			// Killed by a signal without a deadline; treat like a timeout
			// so callers distinguish it from a tool-reported error.
			res.Kind = KindTimeout
		} else {
			res.Kind = KindExit
		}
	default:
		res.Kind = KindStart
		res.ExitCode = -1
		if strings.TrimSpace(res.Stderr) == "" {
			res.Stderr = err.Error()
		}
	}
	return res
}
