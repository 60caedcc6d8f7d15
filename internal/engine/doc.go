// Package engine ties discovery, command execution, framing, and parsing
// together into the status aggregation operations callers consume.
//
// Every operation first runs the direct git command at the resolved
// working directory. Only a failure classified as "not a repository"
// escalates: the engine discovers nested repositories under the directory
// and either fans the same query out across all of them (status, numstat)
// or targets the one repository containing the requested file (single-file
// diff). Fan-out output is multiplexed with the section framing protocol
// so one stream carries every repository's result.
//
// Fan-out tolerates partial failure: if at least one repository's query
// succeeds the operation succeeds, with the failed repositories' errors
// preserved as warnings in stderr.
package engine
