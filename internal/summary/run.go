package summary

import (
	"context"
	"errors"
	"fmt"
	"time"

	"salient/internal/logging"
	"salient/internal/textsource"
)

// ErrSourceRead marks failures to read the exclusion or body text.
var ErrSourceRead = errors.New("source read failed")

// SourceError reports which input could not be read. It matches both
// ErrSourceRead and the underlying cause under errors.Is.
type SourceError struct {
	Role   string
	Source string
	Err    error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("read %s %s: %v", e.Role, e.Source, e.Err)
}

func (e *SourceError) Unwrap() []error {
	return []error{ErrSourceRead, e.Err}
}

const (
	roleExclusion = "exclusion list"
	roleBody      = "text"
)

// Run reads both sources, then summarizes body. A read failure on either
// source aborts before any analysis.
func (a *Analyzer) Run(ctx context.Context, exclusion, body textsource.Source, mode Mode, take int) (string, error) {
	res, err := a.RunResult(ctx, exclusion, body, mode, take)
	if err != nil {
		return "", err
	}
	return res.Summary, nil
}

// RunResult is Run returning the full Result.
func (a *Analyzer) RunResult(ctx context.Context, exclusion, body textsource.Source, mode Mode, take int) (*Result, error) {
	logger := logging.WithContext(ctx, a.logger)
	started := time.Now()

	exclude, text, err := ReadSources(ctx, exclusion, body)
	if err != nil {
		return nil, err
	}
	logger.Debug("sources loaded",
		logging.String("exclude_source", exclusion.Name()),
		logging.String("text_source", body.Name()),
		logging.Int("text_bytes", len(text)),
	)

	res := a.Summarize(exclude, text, mode, take)
	logger.Debug("summary ready",
		logging.String(logging.FieldMode, res.Mode),
		logging.Int("units", res.UnitCount),
		logging.Int("selected", len(res.Selected)),
		logging.Duration("elapsed", time.Since(started)),
	)
	return res, nil
}

// ReadSources reads the exclusion list, then the body. The body is not
// touched when the exclusion list cannot be read.
func ReadSources(ctx context.Context, exclusion, body textsource.Source) (string, string, error) {
	exclude, err := read(ctx, roleExclusion, exclusion)
	if err != nil {
		return "", "", err
	}
	text, err := read(ctx, roleBody, body)
	if err != nil {
		return "", "", err
	}
	return exclude, text, nil
}

func read(ctx context.Context, role string, src textsource.Source) (string, error) {
	if src == nil {
		return "", &SourceError{Role: role, Source: "<nil>", Err: errors.New("no source configured")}
	}
	text, err := textsource.ReadAll(ctx, src)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil && errors.Is(err, ctxErr) {
			return "", err
		}
		return "", &SourceError{Role: role, Source: src.Name(), Err: err}
	}
	return text, nil
}
