// Package main hosts the salient CLI entrypoint and command graph.
//
// Commands resolve configuration once, build a logger from it, and hand the
// exclusion list and body sources to internal/summary. Output goes to stdout;
// logs go to stderr and, when configured, a rotating log file.
package main
