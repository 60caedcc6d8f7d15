// Package config loads the gitstatus configuration file.
//
// Configuration lives at ~/.config/gitstatus/config.toml. A missing file
// is not an error: defaults apply. An existing but invalid file is an
// error, so typos never silently degrade to defaults.
//
// The working-directory default is explicit configuration rather than
// ambient process state: the engine receives root_dir at construction and
// callers override it per invocation.
package config
