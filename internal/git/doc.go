// Package git provides git invocation plumbing and nested-repository
// discovery.
//
// All operations shell out to the git CLI (see [internal/cmd]) rather than
// using a Go git library, keeping behavior identical to the user's own git.
//
// # Invocation
//
//   - [Runner]: runs git with -C <dir>, returning a structured result
//   - [StatusArgs], [NumstatArgs], [DiffFileArgs]: argument builders for
//     the queries the engine issues
//   - [IsNotRepo]: heuristic classification of "this directory is not a
//     repository" failures, the only failure that triggers fallback
//
// # Discovery
//
//   - [Scan]: bounded breadth-first search for nested repository roots
//   - [Scanner]: Scan behind a TTL cache keyed by root path
//
// Discovery never descends into a found repository's subtree and prunes
// dependency/build/hidden directories, so its cost stays bounded even on
// large workspaces.
package git
