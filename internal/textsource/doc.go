// Package textsource reads the exclusion list and body text that feed the
// summary analyzer.
//
// A Source names where text comes from and opens it as a UTF-8 stream. File
// sources decode their bytes with golang.org/x/text so UTF-8 files carrying a
// byte order mark and UTF-16 exports from Windows editors tokenize the same
// way as plain UTF-8. ReadAll drains a source fully into memory; the analyzer
// never streams.
package textsource
