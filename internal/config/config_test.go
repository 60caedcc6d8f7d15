package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadFrom_MissingFileReturnsDefaults(t *testing.T) {
	t.Parallel()
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.TimeoutSeconds != 10 {
		t.Errorf("TimeoutSeconds = %d, want 10", cfg.TimeoutSeconds)
	}
	if cfg.Discovery.MaxDepth != 4 || cfg.Discovery.MaxRepos != 64 {
		t.Errorf("Discovery = %+v", cfg.Discovery)
	}
}

func TestLoadFrom_Valid(t *testing.T) {
	t.Parallel()
	path := writeConfig(t, `
root_dir = "/srv/projects"
timeout_seconds = 30

[discovery]
ttl_seconds = 5
max_depth = 2
skip_dirs = ["logs", "tmp"]
`)
	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.RootDir != "/srv/projects" {
		t.Errorf("RootDir = %q", cfg.RootDir)
	}
	if cfg.Timeout() != 30*time.Second {
		t.Errorf("Timeout = %v, want 30s", cfg.Timeout())
	}
	if cfg.CacheTTL() != 5*time.Second {
		t.Errorf("CacheTTL = %v, want 5s", cfg.CacheTTL())
	}
	if cfg.Discovery.MaxDepth != 2 {
		t.Errorf("MaxDepth = %d, want 2", cfg.Discovery.MaxDepth)
	}
	// Unset keys keep their defaults
	if cfg.Discovery.MaxRepos != 64 {
		t.Errorf("MaxRepos = %d, want default 64", cfg.Discovery.MaxRepos)
	}
	if len(cfg.Discovery.SkipDirs) != 2 {
		t.Errorf("SkipDirs = %v", cfg.Discovery.SkipDirs)
	}
}

func TestLoadFrom_RelativeRootRejected(t *testing.T) {
	t.Parallel()
	path := writeConfig(t, `root_dir = "../projects"`)
	if _, err := LoadFrom(path); err == nil {
		t.Error("LoadFrom accepted relative root_dir")
	}
}

func TestLoadFrom_NegativeLimitsRejected(t *testing.T) {
	t.Parallel()
	path := writeConfig(t, "[discovery]\nmax_depth = -1\n")
	if _, err := LoadFrom(path); err == nil {
		t.Error("LoadFrom accepted negative max_depth")
	}
}

func TestLoadFrom_InvalidTOML(t *testing.T) {
	t.Parallel()
	path := writeConfig(t, "root_dir = [broken")
	if _, err := LoadFrom(path); err == nil {
		t.Error("LoadFrom accepted invalid TOML")
	}
}

func TestValidatePath(t *testing.T) {
	t.Parallel()
	if err := ValidatePath("", "root_dir"); err != nil {
		t.Errorf("empty path rejected: %v", err)
	}
	if err := ValidatePath("~/code", "root_dir"); err != nil {
		t.Errorf("~ path rejected: %v", err)
	}
	if err := ValidatePath("/abs", "root_dir"); err != nil {
		t.Errorf("absolute path rejected: %v", err)
	}
	err := ValidatePath("relative", "root_dir")
	if err == nil {
		t.Fatal("relative path accepted")
	}
	if !strings.Contains(err.Error(), "root_dir") {
		t.Errorf("error %q should name the field", err)
	}
}
