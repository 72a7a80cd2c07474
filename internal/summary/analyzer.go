package summary

import (
	"cmp"
	"log/slog"
	"slices"
	"strings"

	"salient/internal/logging"
)

// UnitSeparator joins the selected units in the final summary.
const UnitSeparator = "\n\n"

// Digest is one scored unit of the analyzed text.
type Digest struct {
	Text  string `json:"text"`
	Score int    `json:"score"`
	Index int    `json:"index"`
}

// Result bundles a summary with the ranking that produced it.
type Result struct {
	Mode      string   `json:"mode"`
	Take      int      `json:"take"`
	UnitCount int      `json:"unit_count"`
	Summary   string   `json:"summary"`
	Selected  []Digest `json:"selected"`
	Ranked    []Digest `json:"ranked,omitempty"`
}

// Analyze scores every unit of text and returns them ranked by descending
// score. Equal scores keep their original relative order.
func Analyze(exclusion, text string, mode Mode) []Digest {
	table := BuildFrequencyTable(text)
	table.RemoveExcluded(exclusion)
	return rank(mode.Split(text), table)
}

func rank(units []string, table FrequencyTable) []Digest {
	digests := make([]Digest, len(units))
	for i, unit := range units {
		digests[i] = Digest{Text: unit, Score: Score(unit, table), Index: i}
	}
	slices.SortStableFunc(digests, func(a, b Digest) int {
		return cmp.Compare(b.Score, a.Score)
	})
	return digests
}

// Select copies the first take ranked digests and restores their original
// order. take is clamped to [0, len(ranked)].
func Select(ranked []Digest, take int) []Digest {
	take = max(0, min(take, len(ranked)))
	top := slices.Clone(ranked[:take])
	slices.SortFunc(top, func(a, b Digest) int {
		return cmp.Compare(a.Index, b.Index)
	})
	return top
}

// Join concatenates digest texts separated by a blank line.
func Join(digests []Digest) string {
	parts := make([]string, len(digests))
	for i, d := range digests {
		parts[i] = d.Text
	}
	return strings.Join(parts, UnitSeparator)
}

// Summarize analyzes text and returns the joined top take units.
func Summarize(exclusion, text string, mode Mode, take int) string {
	return Join(Select(Analyze(exclusion, text, mode), take))
}

// Analyzer runs the summary pipeline with logging.
type Analyzer struct {
	logger *slog.Logger
}

// New constructs an Analyzer. A nil logger discards output.
func New(logger *slog.Logger) *Analyzer {
	return &Analyzer{logger: logging.NewComponentLogger(logger, "summary")}
}

// Analyze is the logged form of the package level Analyze.
func (a *Analyzer) Analyze(exclusion, text string, mode Mode) []Digest {
	table := BuildFrequencyTable(text)
	distinct := len(table)
	table.RemoveExcluded(exclusion)
	units := mode.Split(text)
	a.logger.Debug("frequency table built",
		logging.String(logging.FieldMode, mode.String()),
		logging.Int("distinct_tokens", distinct),
		logging.Int("excluded_tokens", distinct-len(table)),
		logging.Int("units", len(units)),
	)
	return rank(units, table)
}

// Summarize analyzes text and returns the full result including the ranking.
func (a *Analyzer) Summarize(exclusion, text string, mode Mode, take int) *Result {
	ranked := a.Analyze(exclusion, text, mode)
	selected := Select(ranked, take)
	return &Result{
		Mode:      mode.String(),
		Take:      take,
		UnitCount: len(ranked),
		Summary:   Join(selected),
		Selected:  selected,
		Ranked:    ranked,
	}
}
