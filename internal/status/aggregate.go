package status

import (
	"path"
	"strings"

	"github.com/hapi-tools/gitstatus/internal/section"
)

// FileStatus is one staged or unstaged entry in the aggregated view.
// FullPath is repo-prefixed when the record came from a named section.
type FileStatus struct {
	FileName     string   `json:"fileName"`
	DirPath      string   `json:"dirPath"`
	FullPath     string   `json:"fullPath"`
	RepoName     string   `json:"repoName,omitempty"`
	Status       Category `json:"status"`
	Staged       bool     `json:"staged"`
	LinesAdded   int      `json:"linesAdded"`
	LinesRemoved int      `json:"linesRemoved"`
	Binary       bool     `json:"binary,omitempty"`
	OldPath      string   `json:"oldPath,omitempty"`
}

// RepoBranch pairs a repository section name with its parsed branch.
type RepoBranch struct {
	Name   string `json:"name"`
	Branch string `json:"branch"`
}

// Aggregation is the unified staged/unstaged view across all sections.
// Branch is populated only in legacy mode (exactly one unnamed section);
// with named sections the per-repo branches live in Repos instead.
type Aggregation struct {
	StagedFiles   []FileStatus `json:"stagedFiles"`
	UnstagedFiles []FileStatus `json:"unstagedFiles"`
	Repos         []RepoBranch `json:"repos"`
	Branch        string       `json:"branch,omitempty"`
	TotalStaged   int          `json:"totalStaged"`
	TotalUnstaged int          `json:"totalUnstaged"`
}

// Aggregate merges a framed status stream with framed staged and unstaged
// numstat streams into one result. Sections are processed in the order
// they appear, which the orchestrator already sorted by repository path,
// so output ordering is stable.
func Aggregate(statusOut, stagedOut, unstagedOut string) *Aggregation {
	stagedStats := indexSections(stagedOut)
	unstagedStats := indexSections(unstagedOut)

	agg := &Aggregation{}
	sections := section.Split(statusOut)
	for _, sec := range sections {
		parsed := Parse(sec.Body)
		if sec.Name != "" {
			agg.Repos = append(agg.Repos, RepoBranch{
				Name:   sec.Name,
				Branch: parsed.Branch.CurrentBranch(),
			})
		} else if len(sections) == 1 {
			agg.Branch = parsed.Branch.CurrentBranch()
		}

		staged := stagedStats[sec.Name]
		unstaged := unstagedStats[sec.Name]

		for _, rec := range parsed.Files {
			// A partially staged file contributes to both lists.
			if rec.Index != 0 && rec.Index != '.' && rec.Index != '?' {
				agg.StagedFiles = append(agg.StagedFiles,
					makeEntry(rec, sec.Name, true, Categorize(rec.Index), staged))
			}
			if rec.Worktree != 0 && rec.Worktree != '.' {
				agg.UnstagedFiles = append(agg.UnstagedFiles,
					makeEntry(rec, sec.Name, false, Categorize(rec.Worktree), unstaged))
			}
		}

		for _, p := range parsed.NotAdded {
			if strings.HasSuffix(p, "/") {
				continue // directory placeholder, not a file
			}
			entry := makeEntry(Record{Path: p}, sec.Name, false, Untracked, nil)
			agg.UnstagedFiles = append(agg.UnstagedFiles, entry)
		}
	}

	agg.TotalStaged = len(agg.StagedFiles)
	agg.TotalUnstaged = len(agg.UnstagedFiles)
	return agg
}

// indexSections splits a framed numstat stream and builds a stats index
// per section name. The anonymous legacy section indexes under "".
func indexSections(framed string) map[string]StatsIndex {
	out := make(map[string]StatsIndex)
	for _, sec := range section.Split(framed) {
		out[sec.Name] = ParseNumstat(sec.Body).Index()
	}
	return out
}

// makeEntry builds one aggregated entry, resolving line stats from the
// side's numstat index and prefixing paths with the owning repo name.
func makeEntry(rec Record, repoName string, staged bool, cat Category, stats StatsIndex) FileStatus {
	entry := FileStatus{
		RepoName: repoName,
		Status:   cat,
		Staged:   staged,
		FullPath: prefixPath(repoName, rec.Path),
	}
	entry.FileName = path.Base(entry.FullPath)
	if dir := path.Dir(entry.FullPath); dir != "." {
		entry.DirPath = dir
	}
	if rec.OrigPath != "" {
		entry.OldPath = prefixPath(repoName, rec.OrigPath)
	}
	if fs, ok := stats.Lookup(rec.Path); ok {
		entry.LinesAdded = fs.Insertions
		entry.LinesRemoved = fs.Deletions
		entry.Binary = fs.Binary
	}
	return entry
}

// prefixPath prepends the repo's relative name in multi-repo mode; legacy
// single-repo sections stay un-prefixed.
func prefixPath(repoName, p string) string {
	if repoName == "" {
		return p
	}
	return repoName + "/" + p
}
