package main

import (
	"github.com/hapi-tools/gitstatus/internal/engine"
	"github.com/hapi-tools/gitstatus/internal/git"
)

// newEngine builds an engine from the loaded config and global flags.
//
// When root_dir is configured it is the trust boundary: --dir must stay
// inside it and is passed through as a per-invocation override. Without
// root_dir the boundary is the queried directory itself, so --dir
// becomes the engine root directly.
func newEngine() (*engine.Engine, engine.Opts) {
	root := cfg.RootDir
	opts := engine.Opts{Dir: dirFlag, Timeout: timeoutFlag}
	if root == "" {
		root = workDir
		if dirFlag != "" {
			root = dirFlag
			opts.Dir = ""
		}
	}

	e := engine.New(engine.Config{
		RootDir:  root,
		Timeout:  cfg.Timeout(),
		CacheTTL: cfg.CacheTTL(),
		Limits: git.ScanLimits{
			MaxDepth: cfg.Discovery.MaxDepth,
			MaxDirs:  cfg.Discovery.MaxDirs,
			MaxRepos: cfg.Discovery.MaxRepos,
			SkipDirs: cfg.Discovery.SkipDirs,
		},
	})
	return e, opts
}
