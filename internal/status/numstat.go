package status

import (
	"path"
	"strconv"
	"strings"
)

// FileStat is one line of numstat output. Binary files report "-" counts;
// they carry zero insertions/deletions and Binary=true.
type FileStat struct {
	// Path is the raw numstat path text, rename notation included.
	Path string
	// NewPath and OldPath are the normalized rename targets. Both equal
	// Path when the line is not a rename.
	NewPath string
	OldPath string

	Insertions int
	Deletions  int
	Binary     bool
}

// Numstat is a parsed numstat body with running totals.
type Numstat struct {
	Files      []FileStat
	Insertions int
	Deletions  int
	Changed    int // total line changes: insertions + deletions
}

// ParseNumstat reads a numstat body, one "<ins>\t<del>\t<path>" line per
// file. Malformed lines are skipped.
func ParseNumstat(body string) Numstat {
	var n Numstat
	for _, line := range strings.Split(body, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		parts := strings.SplitN(line, "\t", 3)
		if len(parts) != 3 || parts[2] == "" {
			continue
		}

		fs := FileStat{Path: parts[2]}
		if parts[0] == "-" || parts[1] == "-" {
			fs.Binary = true
		} else {
			ins, insErr := strconv.Atoi(parts[0])
			del, delErr := strconv.Atoi(parts[1])
			if insErr != nil || delErr != nil || ins < 0 || del < 0 {
				continue
			}
			fs.Insertions = ins
			fs.Deletions = del
		}
		fs.OldPath, fs.NewPath = normalizeRename(fs.Path)

		n.Files = append(n.Files, fs)
		n.Insertions += fs.Insertions
		n.Deletions += fs.Deletions
		n.Changed += fs.Insertions + fs.Deletions
	}
	return n
}

const renameArrow = " => "

// normalizeRename expands the two rename notations numstat uses:
// brace-compressed ("prefix{old => new}suffix") and whole-path arrow
// ("old => new"). Non-renames return the path unchanged for both sides.
func normalizeRename(raw string) (oldPath, newPath string) {
	if open := strings.Index(raw, "{"); open != -1 {
		if end := strings.Index(raw[open:], "}"); end != -1 {
			inner := raw[open+1 : open+end]
			if before, after, ok := strings.Cut(inner, renameArrow); ok {
				prefix, suffix := raw[:open], raw[open+end+1:]
				return joinRename(prefix, before, suffix), joinRename(prefix, after, suffix)
			}
		}
	}
	if before, after, ok := strings.Cut(raw, renameArrow); ok {
		return before, after
	}
	return raw, raw
}

// joinRename reassembles one side of a brace-compressed rename. An empty
// side leaves a doubled or leading separator; numstat paths are always
// repo-relative, so both are cleaned away.
func joinRename(prefix, mid, suffix string) string {
	return strings.TrimPrefix(path.Clean(prefix+mid+suffix), "/")
}

// StatsIndex maps path strings to their numstat entry so the aggregator
// can match stats against status-record paths regardless of which rename
// notation the diff used.
type StatsIndex map[string]FileStat

// Index builds a StatsIndex keyed by each file's raw numstat path, plus
// its normalized new and old paths when they differ.
func (n Numstat) Index() StatsIndex {
	idx := make(StatsIndex, len(n.Files))
	for _, fs := range n.Files {
		idx[fs.Path] = fs
		if fs.NewPath != fs.Path {
			idx[fs.NewPath] = fs
		}
		if fs.OldPath != fs.Path {
			idx[fs.OldPath] = fs
		}
	}
	return idx
}

// Lookup returns the stats for a status-record path, if any. A nil index
// is a valid empty index.
func (m StatsIndex) Lookup(p string) (FileStat, bool) {
	fs, ok := m[p]
	return fs, ok
}
