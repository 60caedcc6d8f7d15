// Package paths validates user-supplied paths against a trusted root.
//
// Validation is lexical: candidates are resolved to a cleaned absolute
// path and checked for containment before any external process sees them.
// An invalid path is a domain error, never a spawned command.
package paths

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrOutsideRoot marks a candidate that resolves outside the trusted root.
var ErrOutsideRoot = errors.New("path is outside the trusted root")

// Resolve makes candidate absolute relative to root and verifies it stays
// inside root. An empty candidate resolves to root itself.
func Resolve(root, candidate string) (string, error) {
	if candidate == "" {
		return filepath.Clean(root), nil
	}
	abs := candidate
	if !filepath.IsAbs(abs) {
		abs = filepath.Join(root, abs)
	}
	abs = filepath.Clean(abs)
	if !Within(root, abs) {
		return "", fmt.Errorf("%q: %w", candidate, ErrOutsideRoot)
	}
	return abs, nil
}

// Within reports whether p is dir itself or contained in dir's subtree.
// Both arguments must be absolute; the check is lexical.
func Within(dir, p string) bool {
	rel, err := filepath.Rel(filepath.Clean(dir), filepath.Clean(p))
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}
