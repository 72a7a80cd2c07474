// Package history keeps an optional record of completed summaries in a local
// SQLite database.
//
// Each row captures what was summarized (source names, mode, take), how many
// units the text had, which units were selected, and the final output. The
// frequency table and per-unit scores are never stored. Schema changes ship
// as embedded migrations applied on Open under an exclusive file lock, so two
// CLI invocations racing on a fresh database cannot both run them.
package history
