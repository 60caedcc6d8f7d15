package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// DiscoveryConfig bounds the nested-repository scan.
type DiscoveryConfig struct {
	TTLSeconds int      `toml:"ttl_seconds"` // discovery cache TTL
	MaxDepth   int      `toml:"max_depth"`
	MaxDirs    int      `toml:"max_dirs"`
	MaxRepos   int      `toml:"max_repos"`
	SkipDirs   []string `toml:"skip_dirs"` // extra directory names to prune
}

// Config holds the gitstatus configuration.
type Config struct {
	RootDir        string          `toml:"root_dir"`        // default working directory and trust boundary
	TimeoutSeconds int             `toml:"timeout_seconds"` // per-command timeout
	Discovery      DiscoveryConfig `toml:"discovery"`
}

// Default returns the default configuration. RootDir stays empty; callers
// fall back to the current working directory.
func Default() Config {
	return Config{
		TimeoutSeconds: 10,
		Discovery: DiscoveryConfig{
			TTLSeconds: 3,
			MaxDepth:   4,
			MaxDirs:    2000,
			MaxRepos:   64,
		},
	}
}

// Timeout returns the configured per-command timeout.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// CacheTTL returns the configured discovery cache TTL.
func (c *Config) CacheTTL() time.Duration {
	return time.Duration(c.Discovery.TTLSeconds) * time.Second
}

// ValidatePath checks that the path is absolute or starts with ~.
// Relative paths like "." or ".." are rejected.
func ValidatePath(path, fieldName string) error {
	if path == "" {
		return nil // not configured
	}
	if path[0] == '~' {
		return nil
	}
	if !filepath.IsAbs(path) {
		return fmt.Errorf("%s must be absolute or start with ~, got: %q", fieldName, path)
	}
	return nil
}

// expandPath expands ~ to the user's home directory.
func expandPath(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	if len(path) >= 2 && path[:2] == "~/" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("expand ~: %w", err)
		}
		return filepath.Join(home, path[2:]), nil
	}
	if path == "~" {
		return os.UserHomeDir()
	}
	return path, nil
}

// configPath returns the path to the config file.
func configPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "gitstatus", "config.toml"), nil
}

// Load reads config from ~/.config/gitstatus/config.toml.
// Returns Default() if the file doesn't exist (no error).
// Returns an error only if the file exists but is invalid.
func Load() (Config, error) {
	path, err := configPath()
	if err != nil {
		return Default(), nil
	}
	return LoadFrom(path)
}

// LoadFrom reads config from an explicit path. Missing file means defaults.
func LoadFrom(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := ValidatePath(cfg.RootDir, "root_dir"); err != nil {
		return Default(), err
	}
	if cfg.RootDir != "" {
		expanded, err := expandPath(cfg.RootDir)
		if err != nil {
			return Default(), fmt.Errorf("expand root_dir: %w", err)
		}
		cfg.RootDir = expanded
	}

	if cfg.TimeoutSeconds < 0 {
		return Default(), fmt.Errorf("timeout_seconds must not be negative, got %d", cfg.TimeoutSeconds)
	}
	d := cfg.Discovery
	if d.MaxDepth < 0 || d.MaxDirs < 0 || d.MaxRepos < 0 || d.TTLSeconds < 0 {
		return Default(), errors.New("discovery limits must not be negative")
	}

	return cfg, nil
}

const defaultConfig = `# gitstatus configuration

# Default working directory and trust boundary for status/diff queries.
# Must be an absolute path or start with ~ (no relative paths).
# If not set, the current working directory is used.
# root_dir = "~/Code"

# Per-command timeout in seconds for git invocations.
timeout_seconds = 10

# Nested-repository discovery bounds. Scanning stops at whichever limit
# is hit first; partial results are still used.
[discovery]
ttl_seconds = 3    # how long a scan result is reused for a root
max_depth = 4
max_dirs = 2000
max_repos = 64
# Extra directory names to prune during scanning. Dependency caches,
# build output, and hidden directories are always pruned.
# skip_dirs = ["tmp", "logs"]
`

// Init creates a default config file at ~/.config/gitstatus/config.toml.
// If force is true, overwrites an existing file.
// Returns the path to the created file.
func Init(force bool) (string, error) {
	path, err := configPath()
	if err != nil {
		return "", err
	}

	if !force {
		if _, err := os.Stat(path); err == nil {
			return "", errors.New("config file already exists: " + path)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", err
	}
	if err := os.WriteFile(path, []byte(defaultConfig), 0644); err != nil {
		return "", err
	}

	return path, nil
}
