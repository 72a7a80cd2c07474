package summary

import (
	"slices"
	"strings"
	"testing"
)

const catText = "cat dog.\n\ncat cat bird."

func TestAnalyzeSentenceScenario(t *testing.T) {
	got := Analyze("", catText, Sentences())
	want := []Digest{
		{Text: "\n\ncat cat bird", Score: 7, Index: 1},
		{Text: "cat dog", Score: 4, Index: 0},
		{Text: "", Score: 0, Index: 2},
	}
	if !slices.Equal(got, want) {
		t.Fatalf("Analyze = %+v, want %+v", got, want)
	}

	summary := Summarize("", catText, Sentences(), 2)
	if summary != "cat dog\n\n\n\ncat cat bird" {
		t.Fatalf("Summarize = %q", summary)
	}
}

func TestBuildFrequencyTable(t *testing.T) {
	table := BuildFrequencyTable(catText)
	for word, want := range map[string]int{"cat": 3, "dog": 1, "bird": 1, "": 3} {
		if got := table.Count(word); got != want {
			t.Errorf("Count(%q) = %d, want %d", word, got, want)
		}
	}
	if got := table.Count("Cat"); got != 0 {
		t.Errorf("tokens are case-sensitive; Count(Cat) = %d", got)
	}
}

func TestRemoveExcluded(t *testing.T) {
	table := BuildFrequencyTable("the cat and the dog")
	table.RemoveExcluded("the\nand\nthe\nmissing")

	if _, ok := table["the"]; ok {
		t.Error("expected 'the' removed from table")
	}
	if _, ok := table["and"]; ok {
		t.Error("expected 'and' removed from table")
	}
	if table.Count("cat") != 1 || table.Count("dog") != 1 {
		t.Errorf("unexpected remaining counts: %v", table)
	}
}

func TestEmptyTokensScoreUnlessExcluded(t *testing.T) {
	// "a  b" holds one empty token between the two spaces and "\n\n" adds
	// another, so the table counts "" twice.
	text := "a  b\n\nc"
	if got := BuildFrequencyTable(text).Count(""); got != 2 {
		t.Fatalf("Count(\"\") = %d, want 2", got)
	}

	tests := []struct {
		exclusion string
		want      []Digest
	}{
		// a(1) + ""(2) + b(1)
		{"the", []Digest{{Text: "a  b", Score: 4, Index: 0}, {Text: "c", Score: 1, Index: 1}}},
		{"zzz", []Digest{{Text: "a  b", Score: 4, Index: 0}, {Text: "c", Score: 1, Index: 1}}},
		// A trailing newline tokenizes to "", which removes it from the table.
		{"the\n", []Digest{{Text: "a  b", Score: 2, Index: 0}, {Text: "c", Score: 1, Index: 1}}},
		{"", []Digest{{Text: "a  b", Score: 2, Index: 0}, {Text: "c", Score: 1, Index: 1}}},
	}
	for _, tt := range tests {
		got := Analyze(tt.exclusion, text, UnixParagraphs())
		if !slices.Equal(got, tt.want) {
			t.Fatalf("exclusion %q: Analyze = %+v, want %+v", tt.exclusion, got, tt.want)
		}
	}
}

func TestEmptyTokensCanChangeRanking(t *testing.T) {
	// Unit 0 holds four empty tokens and the body five in total, so while ""
	// stays in the table unit 0 scores 1 + 4*5 + 1 and outranks unit 1.
	text := "x , , y\n\nz z z"
	got := Analyze("the", text, UnixParagraphs())
	if got[0].Index != 0 || got[0].Score != 22 || got[1].Score != 9 {
		t.Fatalf("unexpected ranking with empty token: %+v", got)
	}
	got = Analyze("the\n", text, UnixParagraphs())
	if got[0].Index != 1 || got[0].Score != 9 || got[1].Score != 2 {
		t.Fatalf("unexpected ranking without empty token: %+v", got)
	}
}

func TestScoreMissingTokensAreZero(t *testing.T) {
	table := FrequencyTable{"cat": 2}
	if got := Score("cat unknown cat", table); got != 4 {
		t.Fatalf("Score = %d, want 4", got)
	}
	if len(table) != 1 {
		t.Fatalf("Score must not grow the table, got %v", table)
	}
	if Score("cat unknown cat", table) != 4 {
		t.Fatal("Score is not idempotent")
	}
}

func TestModeSplit(t *testing.T) {
	pattern, err := Pattern("--")
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		mode Mode
		text string
		want []string
	}{
		{"unix", UnixParagraphs(), "a\n\nb\n\n\nc", []string{"a", "b", "\nc"}},
		{"unix keeps crlf paragraphs whole", UnixParagraphs(), "a\r\n\r\nb", []string{"a\r\n\r\nb"}},
		{"windows", WindowsParagraphs(), " a \r\n\r\nb\r\n", []string{" a ", "b\r\n"}},
		{"sentence", Sentences(), "Hi. Really?! Yes", []string{"Hi", " Really", "", " Yes"}},
		{"pattern", pattern, "one--two----three", []string{"one", "two", "", "three"}},
		{"no separator", WindowsParagraphs(), "single unit", []string{"single unit"}},
		{"empty text", Sentences(), "", []string{""}},
		{"zero mode is unix", Mode{}, "x\n\ny", []string{"x", "y"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitUnits(tt.text, tt.mode)
			if !slices.Equal(got, tt.want) {
				t.Errorf("Split(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		want    ModeKind
		wantErr bool
	}{
		{"", "", KindParagraphUnix, false},
		{"paragraph-unix", "", KindParagraphUnix, false},
		{"Paragraph-Windows", "", KindParagraphWindows, false},
		{"crlf", "", KindParagraphWindows, false},
		{"sentence", "", KindSentence, false},
		{"pattern", "##", KindPattern, false},
		{"pattern", "", 0, true},
		{"chapters", "", 0, true},
	}

	for _, tt := range tests {
		mode, err := ParseMode(tt.name, tt.pattern)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseMode(%q, %q) expected error", tt.name, tt.pattern)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseMode(%q, %q) error: %v", tt.name, tt.pattern, err)
			continue
		}
		if mode.Kind() != tt.want {
			t.Errorf("ParseMode(%q) kind = %v, want %v", tt.name, mode.Kind(), tt.want)
		}
	}

	mode, _ := ParseMode("pattern", "##")
	if mode.String() != NamePattern || mode.Separator() != "##" {
		t.Fatalf("unexpected pattern mode %q %q", mode.String(), mode.Separator())
	}
}

func TestAnalyzeIndicesCoverAllUnits(t *testing.T) {
	text := "Alpha beta. Gamma alpha? Beta beta! Delta. Alpha"
	for _, mode := range []Mode{UnixParagraphs(), WindowsParagraphs(), Sentences()} {
		units := SplitUnits(text, mode)
		digests := Analyze("", text, mode)
		if len(digests) != len(units) {
			t.Fatalf("%s: %d digests for %d units", mode, len(digests), len(units))
		}
		seen := make([]bool, len(units))
		for _, d := range digests {
			if d.Index < 0 || d.Index >= len(units) || seen[d.Index] {
				t.Fatalf("%s: bad or duplicate index %d", mode, d.Index)
			}
			seen[d.Index] = true
			if units[d.Index] != d.Text {
				t.Fatalf("%s: index %d text %q, want %q", mode, d.Index, d.Text, units[d.Index])
			}
		}
		for i := 1; i < len(digests); i++ {
			if digests[i-1].Score < digests[i].Score {
				t.Fatalf("%s: ranking not descending: %+v", mode, digests)
			}
		}
	}
}

func TestAnalyzeIdempotent(t *testing.T) {
	text := "one two. two three. three three one"
	first := Analyze("one", text, Sentences())
	second := Analyze("one", text, Sentences())
	if !slices.Equal(first, second) {
		t.Fatalf("results differ:\n%+v\n%+v", first, second)
	}
}

func TestAnalyzeStableTies(t *testing.T) {
	got := Analyze("", "a. b. c", Sentences())
	for i, d := range got {
		if d.Index != i {
			t.Fatalf("equal scores must keep original order, got %+v", got)
		}
	}
}

func TestExcludedWordsDoNotScore(t *testing.T) {
	text := "the the the cat\n\nthe dog dog"
	digests := Analyze("the", text, UnixParagraphs())
	byIndex := make(map[int]Digest, len(digests))
	for _, d := range digests {
		byIndex[d.Index] = d
	}
	if byIndex[0].Score != 1 {
		t.Errorf("unit 0 score = %d, want 1", byIndex[0].Score)
	}
	if byIndex[1].Score != 4 {
		t.Errorf("unit 1 score = %d, want 4", byIndex[1].Score)
	}
	if !strings.Contains(byIndex[0].Text, "the") {
		t.Error("excluded words must stay in unit text")
	}
}

func TestSelectClampsAndRestoresOrder(t *testing.T) {
	ranked := Analyze("", catText, Sentences())

	if got := Join(Select(ranked, 0)); got != "" {
		t.Errorf("take 0 = %q, want empty", got)
	}
	if got := Join(Select(ranked, -3)); got != "" {
		t.Errorf("negative take = %q, want empty", got)
	}
	all := Select(ranked, 10)
	if len(all) != 3 {
		t.Fatalf("take beyond unit count returned %d units", len(all))
	}
	for i, d := range all {
		if d.Index != i {
			t.Fatalf("selection not in original order: %+v", all)
		}
	}
	if got := Join(all); got != "cat dog\n\n\n\ncat cat bird\n\n" {
		t.Errorf("Join(all) = %q", got)
	}
	if ranked[0].Index != 1 {
		t.Error("Select must not reorder the ranked slice")
	}
}

func TestEmptyBody(t *testing.T) {
	// Exclusion lists read from files end in a newline, which removes "".
	for _, mode := range []Mode{UnixParagraphs(), WindowsParagraphs(), Sentences()} {
		got := Analyze("the\n", "", mode)
		if len(got) != 1 || got[0] != (Digest{}) {
			t.Fatalf("%s: Analyze(\"\") = %+v", mode, got)
		}
		if s := Summarize("the\n", "", mode, 1); s != "" {
			t.Fatalf("%s: Summarize(\"\") = %q", mode, s)
		}
	}
}

func TestTopWords(t *testing.T) {
	table := BuildFrequencyTable("b a b c. c b")
	got := TopWords(table, 2)
	want := []WordCount{{"b", 3}, {"c", 2}}
	if !slices.Equal(got, want) {
		t.Fatalf("TopWords = %+v, want %+v", got, want)
	}
	if all := TopWords(table, 0); len(all) != 3 {
		t.Fatalf("TopWords(0) returned %d entries, want 3 (empty token skipped)", len(all))
	}
}

func TestAnalyzerSummarizeResult(t *testing.T) {
	res := New(nil).Summarize("", catText, Sentences(), 2)
	if res.UnitCount != 3 || len(res.Selected) != 2 || len(res.Ranked) != 3 {
		t.Fatalf("unexpected result shape: %+v", res)
	}
	if res.Summary != Summarize("", catText, Sentences(), 2) {
		t.Fatalf("Analyzer and package Summarize disagree: %q", res.Summary)
	}
	if res.Mode != NameSentence {
		t.Fatalf("Mode = %q", res.Mode)
	}
}

func FuzzModeSplit(f *testing.F) {
	f.Add("cat dog.\n\ncat cat bird.")
	f.Add("")
	f.Add("a\r\n\r\nb\n\nc?!")

	f.Fuzz(func(t *testing.T, text string) {
		for _, mode := range []Mode{UnixParagraphs(), WindowsParagraphs(), Sentences()} {
			units := mode.Split(text)
			if len(units) == 0 {
				t.Fatalf("%s: no units for %q", mode, text)
			}
			digests := Analyze("", text, mode)
			if len(digests) != len(units) {
				t.Fatalf("%s: %d digests for %d units", mode, len(digests), len(units))
			}
			sel := Select(digests, len(digests))
			for i, d := range sel {
				if d.Index != i {
					t.Fatalf("%s: selection out of order", mode)
				}
			}
		}
	})
}
