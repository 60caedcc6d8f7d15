package paths

import (
	"errors"
	"testing"
)

func TestResolve(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		root      string
		candidate string
		want      string
		wantErr   bool
	}{
		{"empty candidate is root", "/work", "", "/work", false},
		{"relative inside", "/work", "sub/dir", "/work/sub/dir", false},
		{"absolute inside", "/work", "/work/sub", "/work/sub", false},
		{"dot segments collapse", "/work", "a/./b/../c", "/work/a/c", false},
		{"escape via dotdot", "/work", "../elsewhere", "", true},
		{"escape via absolute", "/work", "/etc/passwd", "", true},
		{"sneaky prefix", "/work", "/workspace/x", "", true},
		{"root itself", "/work", ".", "/work", false},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := Resolve(tt.root, tt.candidate)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Resolve(%q, %q) = %q, want error", tt.root, tt.candidate, got)
				}
				if !errors.Is(err, ErrOutsideRoot) {
					t.Errorf("error = %v, want ErrOutsideRoot", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Resolve(%q, %q) error: %v", tt.root, tt.candidate, err)
			}
			if got != tt.want {
				t.Errorf("Resolve(%q, %q) = %q, want %q", tt.root, tt.candidate, got, tt.want)
			}
		})
	}
}

func TestWithin(t *testing.T) {
	t.Parallel()

	tests := []struct {
		dir  string
		p    string
		want bool
	}{
		{"/work", "/work", true},
		{"/work", "/work/a/b", true},
		{"/work", "/workspace", false},
		{"/work", "/other", false},
		{"/work/a", "/work", false},
	}
	for _, tt := range tests {
		if got := Within(tt.dir, tt.p); got != tt.want {
			t.Errorf("Within(%q, %q) = %v, want %v", tt.dir, tt.p, got, tt.want)
		}
	}
}
