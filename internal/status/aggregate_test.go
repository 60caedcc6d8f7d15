package status

import (
	"testing"

	"github.com/hapi-tools/gitstatus/internal/section"
)

func TestAggregate_NestedRepoPartiallyStaged(t *testing.T) {
	t.Parallel()

	statusBody := "# branch.oid aaaaaaa\n" +
		"# branch.head main\n" +
		"1 MM N... 100644 100644 100644 aaaaaaa bbbbbbb tracked.txt\n" +
		"? scratch.txt"
	statusOut := section.Wrap("project-a", statusBody)
	stagedOut := section.Wrap("project-a", "3\t1\ttracked.txt")
	unstagedOut := section.Wrap("project-a", "2\t0\ttracked.txt")

	agg := Aggregate(statusOut, stagedOut, unstagedOut)

	if len(agg.Repos) != 1 || agg.Repos[0].Name != "project-a" || agg.Repos[0].Branch != "main" {
		t.Errorf("Repos = %+v, want [{project-a main}]", agg.Repos)
	}
	if agg.Branch != "" {
		t.Errorf("Branch = %q, want empty in multi-repo mode", agg.Branch)
	}

	if agg.TotalStaged != 1 {
		t.Fatalf("TotalStaged = %d, want 1", agg.TotalStaged)
	}
	st := agg.StagedFiles[0]
	if st.FullPath != "project-a/tracked.txt" {
		t.Errorf("staged FullPath = %q, want project-a/tracked.txt", st.FullPath)
	}
	if st.RepoName != "project-a" || !st.Staged || st.Status != Modified {
		t.Errorf("staged entry = %+v", st)
	}
	if st.LinesAdded != 3 || st.LinesRemoved != 1 {
		t.Errorf("staged stats = +%d -%d, want +3 -1", st.LinesAdded, st.LinesRemoved)
	}

	if agg.TotalUnstaged != 2 {
		t.Fatalf("TotalUnstaged = %d, want 2 (tracked + untracked)", agg.TotalUnstaged)
	}
	un := agg.UnstagedFiles[0]
	if un.FullPath != "project-a/tracked.txt" || un.Staged {
		t.Errorf("unstaged entry = %+v", un)
	}
	if un.LinesAdded != 2 || un.LinesRemoved != 0 {
		t.Errorf("unstaged stats = +%d -%d, want +2 -0", un.LinesAdded, un.LinesRemoved)
	}
	tr := agg.UnstagedFiles[1]
	if tr.Status != Untracked || tr.FullPath != "project-a/scratch.txt" {
		t.Errorf("untracked entry = %+v", tr)
	}
	if tr.LinesAdded != 0 || tr.LinesRemoved != 0 {
		t.Errorf("untracked stats = +%d -%d, want zeros", tr.LinesAdded, tr.LinesRemoved)
	}
}

func TestAggregate_LegacySingleRepo(t *testing.T) {
	t.Parallel()

	statusOut := "# branch.head feature/x\n" +
		"1 M. N... 100644 100644 100644 aaaaaaa bbbbbbb main.go"
	agg := Aggregate(statusOut, "1\t1\tmain.go", "")

	if len(agg.Repos) != 0 {
		t.Errorf("Repos = %+v, want empty in legacy mode", agg.Repos)
	}
	if agg.Branch != "feature/x" {
		t.Errorf("Branch = %q, want feature/x", agg.Branch)
	}
	if agg.TotalStaged != 1 || agg.TotalUnstaged != 0 {
		t.Fatalf("totals = %d/%d, want 1/0", agg.TotalStaged, agg.TotalUnstaged)
	}
	st := agg.StagedFiles[0]
	if st.FullPath != "main.go" || st.RepoName != "" {
		t.Errorf("legacy entry = %+v, want un-prefixed path", st)
	}
	if st.FileName != "main.go" || st.DirPath != "" {
		t.Errorf("FileName/DirPath = %q/%q", st.FileName, st.DirPath)
	}
	if st.LinesAdded != 1 || st.LinesRemoved != 1 {
		t.Errorf("stats = +%d -%d, want +1 -1", st.LinesAdded, st.LinesRemoved)
	}
}

func TestAggregate_MultipleRepoOrdering(t *testing.T) {
	t.Parallel()

	statusOut := section.Wrap("a", "# branch.head main\n1 .M N... 100644 100644 100644 x y f1.txt") +
		"\n" +
		section.Wrap("b", "# branch.head dev\n1 .M N... 100644 100644 100644 x y f2.txt")
	agg := Aggregate(statusOut, "", "")

	if len(agg.Repos) != 2 || agg.Repos[0].Name != "a" || agg.Repos[1].Name != "b" {
		t.Fatalf("Repos = %+v, want a then b", agg.Repos)
	}
	if agg.Repos[1].Branch != "dev" {
		t.Errorf("repo b branch = %q, want dev", agg.Repos[1].Branch)
	}
	if agg.TotalUnstaged != 2 {
		t.Fatalf("TotalUnstaged = %d, want 2", agg.TotalUnstaged)
	}
	if agg.UnstagedFiles[0].FullPath != "a/f1.txt" || agg.UnstagedFiles[1].FullPath != "b/f2.txt" {
		t.Errorf("ordering = %q, %q", agg.UnstagedFiles[0].FullPath, agg.UnstagedFiles[1].FullPath)
	}
	// Entries carry no stats when the numstat streams are empty
	if agg.UnstagedFiles[0].LinesAdded != 0 {
		t.Errorf("missing stats should default to zero")
	}
}

func TestAggregate_RenameEntry(t *testing.T) {
	t.Parallel()

	statusOut := "# branch.head main\n" +
		"2 R. N... 100644 100644 100644 aaaaaaa aaaaaaa R100 src/new.txt\tsrc/old.txt"
	// Numstat reports the rename in brace notation; lookup must still match.
	agg := Aggregate(statusOut, "4\t4\tsrc/{old.txt => new.txt}", "")

	if agg.TotalStaged != 1 {
		t.Fatalf("TotalStaged = %d, want 1", agg.TotalStaged)
	}
	st := agg.StagedFiles[0]
	if st.Status != Renamed {
		t.Errorf("Status = %q, want renamed", st.Status)
	}
	if st.FullPath != "src/new.txt" || st.OldPath != "src/old.txt" {
		t.Errorf("FullPath = %q, OldPath = %q", st.FullPath, st.OldPath)
	}
	if st.LinesAdded != 4 || st.LinesRemoved != 4 {
		t.Errorf("stats = +%d -%d, want +4 -4 (matched via rename normalization)", st.LinesAdded, st.LinesRemoved)
	}
}

func TestAggregate_BinaryStats(t *testing.T) {
	t.Parallel()

	statusOut := "# branch.head main\n" +
		"1 A. N... 000000 100644 100644 0000000 bbbbbbb logo.png"
	agg := Aggregate(statusOut, "-\t-\tlogo.png", "")

	if agg.TotalStaged != 1 {
		t.Fatalf("TotalStaged = %d, want 1", agg.TotalStaged)
	}
	st := agg.StagedFiles[0]
	if !st.Binary || st.LinesAdded != 0 || st.LinesRemoved != 0 {
		t.Errorf("binary entry = %+v, want binary with zero counts", st)
	}
	if st.Status != Added {
		t.Errorf("Status = %q, want added", st.Status)
	}
}

func TestAggregate_UntrackedDirectoriesDropped(t *testing.T) {
	t.Parallel()

	agg := Aggregate("# branch.head main\n? newdir/\n? file.txt", "", "")
	if agg.TotalUnstaged != 1 {
		t.Fatalf("TotalUnstaged = %d, want 1", agg.TotalUnstaged)
	}
	if agg.UnstagedFiles[0].FullPath != "file.txt" {
		t.Errorf("entry = %+v", agg.UnstagedFiles[0])
	}
}

func TestAggregate_DetachedHeadGivesNoBranch(t *testing.T) {
	t.Parallel()

	agg := Aggregate("# branch.oid aaaaaaa\n# branch.head (detached)", "", "")
	if agg.Branch != "" {
		t.Errorf("Branch = %q, want empty for detached HEAD", agg.Branch)
	}
}

func TestAggregate_Empty(t *testing.T) {
	t.Parallel()

	agg := Aggregate("", "", "")
	if agg.TotalStaged != 0 || agg.TotalUnstaged != 0 || len(agg.Repos) != 0 || agg.Branch != "" {
		t.Errorf("empty aggregate = %+v", agg)
	}
}
