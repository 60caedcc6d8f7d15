package status

import "testing"

func TestParseNumstat_Basic(t *testing.T) {
	t.Parallel()
	n := ParseNumstat("2\t1\tsrc/app.ts\n10\t0\tREADME.md")
	if len(n.Files) != 2 {
		t.Fatalf("got %d files, want 2", len(n.Files))
	}
	fs := n.Files[0]
	if fs.Insertions != 2 || fs.Deletions != 1 || fs.Binary {
		t.Errorf("src/app.ts = +%d -%d binary=%v, want +2 -1 false", fs.Insertions, fs.Deletions, fs.Binary)
	}
	if n.Insertions != 12 || n.Deletions != 1 || n.Changed != 13 {
		t.Errorf("totals = +%d -%d changed=%d, want +12 -1 13", n.Insertions, n.Deletions, n.Changed)
	}
}

func TestParseNumstat_Binary(t *testing.T) {
	t.Parallel()
	n := ParseNumstat("-\t-\tbin/file")
	if len(n.Files) != 1 {
		t.Fatalf("got %d files, want 1", len(n.Files))
	}
	fs := n.Files[0]
	if !fs.Binary {
		t.Error("Binary = false, want true")
	}
	if fs.Insertions != 0 || fs.Deletions != 0 {
		t.Errorf("binary counts = +%d -%d, want zeros", fs.Insertions, fs.Deletions)
	}
}

func TestParseNumstat_MalformedSkipped(t *testing.T) {
	t.Parallel()
	n := ParseNumstat("nonsense\n3\tfour\tx.txt\n\n1\t1\tok.txt")
	if len(n.Files) != 1 || n.Files[0].Path != "ok.txt" {
		t.Errorf("Files = %+v, want only ok.txt", n.Files)
	}
}

func TestNormalizeRename(t *testing.T) {
	t.Parallel()
	tests := []struct {
		raw     string
		oldPath string
		newPath string
	}{
		{"src/{old.txt => new.txt}", "src/old.txt", "src/new.txt"},
		{"src/{a => b}/file.go", "src/a/file.go", "src/b/file.go"},
		{"{ => pkg}/util.go", "util.go", "pkg/util.go"},
		{"old.txt => new.txt", "old.txt", "new.txt"},
		{"plain/path.go", "plain/path.go", "plain/path.go"},
	}
	for _, tt := range tests {
		oldPath, newPath := normalizeRename(tt.raw)
		if oldPath != tt.oldPath || newPath != tt.newPath {
			t.Errorf("normalizeRename(%q) = (%q, %q), want (%q, %q)",
				tt.raw, oldPath, newPath, tt.oldPath, tt.newPath)
		}
	}
}

func TestIndex_RenameLookupByEitherName(t *testing.T) {
	t.Parallel()
	n := ParseNumstat("5\t2\tsrc/{old.txt => new.txt}")
	idx := n.Index()

	for _, key := range []string{"src/{old.txt => new.txt}", "src/new.txt", "src/old.txt"} {
		fs, ok := idx.Lookup(key)
		if !ok {
			t.Errorf("Lookup(%q) missed", key)
			continue
		}
		if fs.Insertions != 5 || fs.Deletions != 2 {
			t.Errorf("Lookup(%q) = +%d -%d, want +5 -2", key, fs.Insertions, fs.Deletions)
		}
	}
}

func TestLookup_NilIndex(t *testing.T) {
	t.Parallel()
	var idx StatsIndex
	if _, ok := idx.Lookup("anything"); ok {
		t.Error("nil index Lookup returned ok")
	}
}
