package textutil

// delimiters marks the bytes that terminate a word.
var delimiters = [256]bool{
	'.': true, '!': true, '?': true, ',': true, ';': true,
	')': true, '(': true, '{': true, '}': true, '[': true, ']': true,
	':': true, '"': true, '\'': true,
	'\r': true, '\n': true, '\t': true, ' ': true,
}

// IsDelimiter reports whether r separates words.
func IsDelimiter(r rune) bool {
	return r >= 0 && r < 0x80 && delimiters[r]
}

// SplitWords splits text at every delimiter. The result always has one more
// element than the number of delimiters in text, so "" yields [""] and
// "a..b" yields ["a", "", "b"].
func SplitWords(text string) []string {
	words := make([]string, 0, estimateWords(text))
	start := 0
	for i := 0; i < len(text); i++ {
		if delimiters[text[i]] {
			words = append(words, text[start:i])
			start = i + 1
		}
	}
	return append(words, text[start:])
}

// SplitAny splits text at every occurrence of any byte in chars. chars must
// be ASCII. Consecutive break characters yield empty elements.
func SplitAny(text, chars string) []string {
	var set [256]bool
	for i := 0; i < len(chars); i++ {
		set[chars[i]] = true
	}
	parts := make([]string, 0, 8)
	start := 0
	for i := 0; i < len(text); i++ {
		if set[text[i]] {
			parts = append(parts, text[start:i])
			start = i + 1
		}
	}
	return append(parts, text[start:])
}

func estimateWords(text string) int {
	// Average English word plus separator.
	return len(text)/6 + 1
}
