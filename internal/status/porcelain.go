package status

import (
	"strconv"
	"strings"
)

// Head sentinel values emitted by git for "no current branch".
const (
	headDetached = "(detached)"
	headUnborn   = "(initial)"
)

// BranchInfo carries the branch pragma lines of a status stream.
type BranchInfo struct {
	OID      string
	Head     string
	Upstream string
	Ahead    int
	Behind   int
}

// CurrentBranch returns the branch name, or "" when HEAD is detached or
// the branch is unborn.
func (b BranchInfo) CurrentBranch() string {
	if b.Head == "" || b.Head == headDetached || b.Head == headUnborn {
		return ""
	}
	return b.Head
}

// RecordKind discriminates the change record variants.
type RecordKind int

const (
	KindOrdinary RecordKind = iota
	KindRenamed             // rename or copy
	KindUnmerged
)

// Record is one tracked-change line from the porcelain v2 status stream.
// Index and Worktree are the two status characters; '.' means no change
// on that side.
type Record struct {
	Kind     RecordKind
	Index    byte
	Worktree byte
	Path     string
	OrigPath string // rename/copy origin, empty otherwise
}

// Parsed is the result of parsing one un-framed status body.
type Parsed struct {
	Files    []Record
	NotAdded []string // untracked paths; directories keep their trailing slash
	Ignored  []string
	Branch   BranchInfo
}

// Parse reads a porcelain v2 status body. Lines with an unrecognized
// prefix, and malformed lines of a recognized prefix, are skipped:
// truncated tool output still yields the records that did arrive intact.
func Parse(body string) Parsed {
	var p Parsed
	for _, line := range strings.Split(body, "\n") {
		switch {
		case strings.HasPrefix(line, "# branch."):
			parseBranchLine(line, &p.Branch)
		case strings.HasPrefix(line, "1 "):
			// 1 <XY> <sub> <mH> <mI> <mW> <hH> <hI> <path>
			parts := strings.SplitN(line, " ", 9)
			if len(parts) != 9 || len(parts[1]) != 2 {
				continue
			}
			p.Files = append(p.Files, Record{
				Kind:     KindOrdinary,
				Index:    parts[1][0],
				Worktree: parts[1][1],
				Path:     parts[8],
			})
		case strings.HasPrefix(line, "2 "):
			// 2 <XY> <sub> <mH> <mI> <mW> <hH> <hI> <X><score> <path>\t<origPath>
			parts := strings.SplitN(line, " ", 10)
			if len(parts) != 10 || len(parts[1]) != 2 {
				continue
			}
			path, orig, _ := strings.Cut(parts[9], "\t")
			p.Files = append(p.Files, Record{
				Kind:     KindRenamed,
				Index:    parts[1][0],
				Worktree: parts[1][1],
				Path:     path,
				OrigPath: orig,
			})
		case strings.HasPrefix(line, "u "):
			// u <XY> <sub> <m1> <m2> <m3> <mW> <h1> <h2> <h3> <path>
			parts := strings.SplitN(line, " ", 11)
			if len(parts) != 11 || len(parts[1]) != 2 {
				continue
			}
			p.Files = append(p.Files, Record{
				Kind:     KindUnmerged,
				Index:    parts[1][0],
				Worktree: parts[1][1],
				Path:     parts[10],
			})
		case strings.HasPrefix(line, "? "):
			p.NotAdded = append(p.NotAdded, line[2:])
		case strings.HasPrefix(line, "! "):
			p.Ignored = append(p.Ignored, line[2:])
		}
	}
	return p
}

// parseBranchLine handles "# branch.oid/head/upstream/ab" pragma lines.
func parseBranchLine(line string, b *BranchInfo) {
	rest := strings.TrimPrefix(line, "# branch.")
	key, value, ok := strings.Cut(rest, " ")
	if !ok {
		return
	}
	switch key {
	case "oid":
		b.OID = value
	case "head":
		b.Head = value
	case "upstream":
		b.Upstream = value
	case "ab":
		// "+<ahead> -<behind>"
		fields := strings.Fields(value)
		if len(fields) != 2 {
			return
		}
		if n, err := strconv.Atoi(strings.TrimPrefix(fields[0], "+")); err == nil {
			b.Ahead = n
		}
		if n, err := strconv.Atoi(strings.TrimPrefix(fields[1], "-")); err == nil {
			b.Behind = n
		}
	}
}

// Category is the user-facing classification of one status character.
type Category string

const (
	Modified   Category = "modified"
	Added      Category = "added"
	Deleted    Category = "deleted"
	Renamed    Category = "renamed"
	Conflicted Category = "conflicted"
	Untracked  Category = "untracked"
)

// Categorize maps a porcelain status character to its category.
// Unknown characters map to modified, the conservative default.
func Categorize(c byte) Category {
	switch c {
	case 'M':
		return Modified
	case 'A':
		return Added
	case 'D':
		return Deleted
	case 'R', 'C':
		return Renamed
	case 'U':
		return Conflicted
	default:
		return Modified
	}
}
