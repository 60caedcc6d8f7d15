package git

import (
	"os"
	"path/filepath"
	"slices"
	"sort"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// metaDirName is the reserved version-control metadata name.
const metaDirName = ".git"

// DefaultCacheTTL is how long a discovery result stays valid for a root.
// Coarse on purpose: filesystem mutation within the window is not observed.
const DefaultCacheTTL = 3 * time.Second

// Repo is a nested repository found under a scanned root.
type Repo struct {
	// Path is the absolute repository root.
	Path string `json:"path"`
	// Rel is the path relative to the scanned root, slash-separated.
	// It is always strictly inside the root, never a parent escape.
	Rel string `json:"rel"`
}

// ScanLimits bounds the cost of a discovery scan. Whichever limit is hit
// first halts traversal; partial results are still returned.
type ScanLimits struct {
	MaxDepth int // deepest directory level visited below the root
	MaxDirs  int // total directories visited
	MaxRepos int // repositories reported

	// SkipDirs prunes extra directory names beyond the built-in set.
	SkipDirs []string
}

// DefaultLimits returns the standard scan bounds.
func DefaultLimits() ScanLimits {
	return ScanLimits{MaxDepth: 4, MaxDirs: 2000, MaxRepos: 64}
}

// skipDirs are low-value directory names pruned without descending.
// Hidden directories (leading dot) are pruned separately, which also
// covers .git itself.
var skipDirs = map[string]bool{
	"node_modules":     true,
	"vendor":           true,
	"bower_components": true,
	"dist":             true,
	"build":            true,
	"out":              true,
	"target":           true,
}

// Scan walks root breadth-first and returns the nested repository roots,
// sorted ascending by relative path. The root itself is never reported: if
// it were a repository, the direct command path would have succeeded and
// discovery would not run. A found repository's subtree is not descended.
func Scan(root string, limits ScanLimits) []Repo {
	type item struct {
		path  string
		depth int
	}

	queue := []item{{path: root, depth: 0}}
	visited := 0
	var repos []Repo

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		if visited >= limits.MaxDirs {
			break
		}
		visited++

		if cur.depth > 0 && IsRepo(cur.path) {
			rel, err := filepath.Rel(root, cur.path)
			if err != nil {
				continue
			}
			repos = append(repos, Repo{Path: cur.path, Rel: filepath.ToSlash(rel)})
			if len(repos) >= limits.MaxRepos {
				break
			}
			continue // repo boundary: no repo-within-repo detection
		}

		if cur.depth >= limits.MaxDepth {
			continue
		}

		entries, err := os.ReadDir(cur.path)
		if err != nil {
			continue // unreadable directory: skip, keep scanning
		}
		for _, entry := range entries {
			if !entry.IsDir() {
				continue
			}
			name := entry.Name()
			if name[0] == '.' || skipDirs[name] || slices.Contains(limits.SkipDirs, name) {
				continue
			}
			queue = append(queue, item{path: filepath.Join(cur.path, name), depth: cur.depth + 1})
		}
	}

	// Ordinal sort for deterministic downstream ordering
	sort.Slice(repos, func(i, j int) bool { return repos[i].Rel < repos[j].Rel })
	return repos
}

// Scanner caches Scan results per root path for a fixed TTL. Stale entries
// are recomputed synchronously on the next access, never refreshed
// proactively. Safe for concurrent use.
type Scanner struct {
	limits ScanLimits
	cache  *gocache.Cache // nil disables caching
}

// NewScanner creates a scanner with the given cache TTL and scan limits.
// A non-positive ttl disables caching entirely, so every Discover rescans;
// tests use this instead of a manually-advanced clock.
func NewScanner(ttl time.Duration, limits ScanLimits) *Scanner {
	s := &Scanner{limits: limits}
	if ttl > 0 {
		s.cache = gocache.New(ttl, 2*ttl)
	}
	return s
}

// Discover returns the cached repository list for root, scanning if the
// entry is missing or expired. Entries are replaced wholesale, never
// mutated in place.
func (s *Scanner) Discover(root string) []Repo {
	if s.cache != nil {
		if v, ok := s.cache.Get(root); ok {
			return v.([]Repo)
		}
	}
	repos := Scan(root, s.limits)
	if s.cache != nil {
		s.cache.Set(root, repos, gocache.DefaultExpiration)
	}
	return repos
}

// Clear drops all cached discovery results.
func (s *Scanner) Clear() {
	if s.cache != nil {
		s.cache.Flush()
	}
}
