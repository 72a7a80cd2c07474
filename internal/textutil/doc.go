// Package textutil provides the tokenization primitives shared by the summary
// analyzer.
//
// Tokens are the maximal runs of bytes between delimiter characters. The
// delimiter set is a fixed list of ASCII punctuation and whitespace, so a
// delimiter byte can never occur inside a multi-byte UTF-8 sequence and the
// splitters work on bytes without decoding runes. Empty tokens produced by
// adjacent delimiters are kept; callers decide what they mean.
package textutil
