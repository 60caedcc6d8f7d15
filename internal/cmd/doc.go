// Package cmd executes external commands and reports every outcome as data.
//
// The engine shells out to the git CLI rather than using a Go git library.
// This approach is simpler, more reliable, and ensures compatibility with
// user configurations (SSH keys, credential helpers, aliases).
//
// Unlike [os/exec], nothing in this package returns an error: a failed
// spawn, a timeout, and a nonzero exit all come back as a [Result] whose
// Kind classifies the failure and whose Stdout/Stderr carry whatever the
// process produced before it ended. Callers inspect failure text to decide
// on fallback behavior, so partial output must survive all failure modes.
package cmd
