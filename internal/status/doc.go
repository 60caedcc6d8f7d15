// Package status parses git's machine-readable status and diff-stat
// formats and merges them into a single repo-attributed view.
//
// Three layers build on each other:
//
//   - [Parse]: the porcelain v2 status stream (branch pragma lines plus
//     ordinary/rename/unmerged/untracked/ignored records)
//   - [ParseNumstat]: the numstat stream (per-file insertion/deletion
//     counts with binary and rename edge cases)
//   - [Aggregate]: framed status + staged/unstaged numstat streams merged
//     into staged and unstaged file lists with repo path prefixing
//
// Both formats are produced by git and are not under this system's
// control; the grammar here, including the rename bracket and arrow
// notations, tracks git's output exactly. Parsers skip malformed lines of
// a recognized type instead of aborting: partial or truncated tool output
// should still yield partial results.
package status
