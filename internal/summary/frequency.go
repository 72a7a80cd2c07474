package summary

import (
	"cmp"
	"slices"

	"salient/internal/textutil"
)

// FrequencyTable maps a case-sensitive token to its number of occurrences.
// Missing tokens count as zero.
type FrequencyTable map[string]int

// BuildFrequencyTable counts every token of text, including the empty tokens
// produced by adjacent delimiters.
func BuildFrequencyTable(text string) FrequencyTable {
	words := textutil.SplitWords(text)
	table := make(FrequencyTable, len(words)/2+1)
	for _, w := range words {
		table[w]++
	}
	return table
}

// RemoveExcluded deletes every token of exclusion from the table.
func (t FrequencyTable) RemoveExcluded(exclusion string) {
	for _, w := range textutil.SplitWords(exclusion) {
		delete(t, w)
	}
}

// Count returns the occurrences of token, or zero when it is absent.
func (t FrequencyTable) Count(token string) int {
	return t[token]
}

// Score sums the table counts of every token in unit, empty tokens
// included. The empty token only drops out when the exclusion list itself
// yields one, as any list with a trailing newline does.
func Score(unit string, table FrequencyTable) int {
	score := 0
	for _, w := range textutil.SplitWords(unit) {
		score += table.Count(w)
	}
	return score
}

// WordCount is one frequency table entry.
type WordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// TopWords returns up to n entries ordered by descending count, then by
// word. The empty token is skipped. n <= 0 returns every entry.
func TopWords(table FrequencyTable, n int) []WordCount {
	words := make([]WordCount, 0, len(table))
	for w, c := range table {
		if w == "" {
			continue
		}
		words = append(words, WordCount{Word: w, Count: c})
	}
	slices.SortFunc(words, func(a, b WordCount) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return cmp.Compare(a.Word, b.Word)
	})
	if n > 0 && n < len(words) {
		words = words[:n]
	}
	return words
}
