package summary

import (
	"errors"
	"fmt"
	"strings"

	"salient/internal/textutil"
)

// ErrEmptyPattern reports a pattern mode without a separator.
var ErrEmptyPattern = errors.New("pattern mode requires a non-empty separator")

// ModeKind discriminates the unit-splitting strategies.
type ModeKind int

const (
	// KindParagraphUnix splits on "\n\n".
	KindParagraphUnix ModeKind = iota
	// KindParagraphWindows splits on "\r\n\r\n".
	KindParagraphWindows
	// KindSentence splits on each '.', '?' and '!'.
	KindSentence
	// KindPattern splits on a caller supplied literal.
	KindPattern
)

const (
	unixParagraphSeparator    = "\n\n"
	windowsParagraphSeparator = "\r\n\r\n"
	sentenceBreaks            = ".?!"
)

// Canonical mode names accepted by ParseMode and written by Mode.String.
const (
	NameParagraphUnix    = "paragraph-unix"
	NameParagraphWindows = "paragraph-windows"
	NameSentence         = "sentence"
	NamePattern          = "pattern"
)

// Mode selects how a body of text is divided into units. The zero value
// splits Unix paragraphs.
type Mode struct {
	kind    ModeKind
	pattern string
}

// UnixParagraphs returns the mode splitting on blank lines ending in "\n".
func UnixParagraphs() Mode { return Mode{kind: KindParagraphUnix} }

// WindowsParagraphs returns the mode splitting on blank lines ending in "\r\n".
func WindowsParagraphs() Mode { return Mode{kind: KindParagraphWindows} }

// Sentences returns the mode splitting on sentence punctuation.
func Sentences() Mode { return Mode{kind: KindSentence} }

// Pattern returns a mode splitting on the literal sep.
func Pattern(sep string) (Mode, error) {
	if sep == "" {
		return Mode{}, ErrEmptyPattern
	}
	return Mode{kind: KindPattern, pattern: sep}, nil
}

// ParseMode resolves a mode name. pattern is only consulted for the pattern
// mode.
func ParseMode(name, pattern string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", NameParagraphUnix, "paragraph", "unix":
		return UnixParagraphs(), nil
	case NameParagraphWindows, "windows", "crlf":
		return WindowsParagraphs(), nil
	case NameSentence, "sentences":
		return Sentences(), nil
	case NamePattern, "custom":
		return Pattern(pattern)
	default:
		return Mode{}, fmt.Errorf("unknown summary mode %q", name)
	}
}

// Kind reports the splitting strategy.
func (m Mode) Kind() ModeKind { return m.kind }

// Separator returns the custom separator of a pattern mode, or "".
func (m Mode) Separator() string { return m.pattern }

// String returns the canonical mode name.
func (m Mode) String() string {
	switch m.kind {
	case KindParagraphWindows:
		return NameParagraphWindows
	case KindSentence:
		return NameSentence
	case KindPattern:
		return NamePattern
	default:
		return NameParagraphUnix
	}
}

// Split divides text into units. Separators are discarded, units are kept
// verbatim, and text without a separator is returned as a single unit.
func (m Mode) Split(text string) []string {
	switch m.kind {
	case KindParagraphWindows:
		return strings.Split(text, windowsParagraphSeparator)
	case KindSentence:
		return textutil.SplitAny(text, sentenceBreaks)
	case KindPattern:
		if m.pattern == "" {
			return []string{text}
		}
		return strings.Split(text, m.pattern)
	default:
		return strings.Split(text, unixParagraphSeparator)
	}
}

// SplitUnits is shorthand for mode.Split(text).
func SplitUnits(text string, mode Mode) []string {
	return mode.Split(text)
}
