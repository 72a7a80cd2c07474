// Package logging assembles the structured slog loggers used by salient.
//
// It owns the console and JSON handlers, level parsing and output routing
// (stderr plus an optional size-rotated log file), and exposes helpers that
// tag log lines with the component and run identifier. Standard output is
// never used for logs; it carries the summary itself.
package logging
