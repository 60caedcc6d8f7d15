package git

import (
	"strings"

	"github.com/hapi-tools/gitstatus/internal/cmd"
)

// notRepoPhrases are the diagnostic substrings git emits when a command
// runs outside a repository. This is a heuristic: git has no structured
// exit-code contract for this condition, so the engine matches its
// human-readable stderr. New git versions could reword these messages and
// silently break fallback detection; keep the set in one place.
var notRepoPhrases = []string{
	"not a git repository",
	"not in a git repository",
	"must be run in a work tree",
}

// IsNotRepo reports whether a failed result means "this directory is not a
// repository", the only failure class that triggers multi-repo fallback.
// Timeouts and spawn failures never qualify; they surface directly.
func IsNotRepo(res cmd.Result) bool {
	if res.Success || res.Kind != cmd.KindExit {
		return false
	}
	text := strings.ToLower(res.Stderr + "\n" + res.ErrorText())
	for _, phrase := range notRepoPhrases {
		if strings.Contains(text, phrase) {
			return true
		}
	}
	return false
}
