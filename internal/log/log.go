// Package log provides context-aware diagnostic logging for gitstatus.
package log

import (
	"context"
	"fmt"
	"io"
	"strings"
)

type ctxKey struct{}

// Logger writes diagnostics and, in verbose mode, echoes spawned commands.
type Logger struct {
	out     io.Writer
	verbose bool
}

// New creates a new logger.
func New(out io.Writer, verbose bool) *Logger {
	return &Logger{out: out, verbose: verbose}
}

// WithLogger attaches a logger to the context.
func WithLogger(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// FromContext retrieves the logger from context.
// Returns a no-op logger if none is attached.
func FromContext(ctx context.Context) *Logger {
	if l, ok := ctx.Value(ctxKey{}).(*Logger); ok {
		return l
	}
	return &Logger{out: io.Discard}
}

// Printf writes formatted diagnostic output.
func (l *Logger) Printf(format string, args ...any) {
	fmt.Fprintf(l.out, format, args...)
}

// Warnf writes a warning line. Used for non-fatal per-repository failures
// during multi-repo fan-out.
func (l *Logger) Warnf(format string, args ...any) {
	fmt.Fprintf(l.out, "warning: "+format+"\n", args...)
}

// Command logs an external command execution in the directory it runs in.
// Only prints when verbose mode is enabled.
func (l *Logger) Command(dir, name string, args ...string) {
	if !l.verbose {
		return
	}
	if dir != "" {
		fmt.Fprintf(l.out, "$ (%s) %s %s\n", dir, name, strings.Join(args, " "))
		return
	}
	fmt.Fprintf(l.out, "$ %s %s\n", name, strings.Join(args, " "))
}

// Verbose returns true if verbose mode is enabled.
func (l *Logger) Verbose() bool {
	return l.verbose
}

// Writer returns the underlying writer.
func (l *Logger) Writer() io.Writer {
	return l.out
}
