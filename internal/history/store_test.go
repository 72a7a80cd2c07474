package history

import (
	"context"
	"errors"
	"path/filepath"
	"slices"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(context.Background(), filepath.Join(t.TempDir(), "nested", "history.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func recordAt(t *testing.T, s *Store, summary string, at time.Time) *Run {
	t.Helper()
	run, err := s.Record(context.Background(), Run{
		CreatedAt:     at,
		ExcludeSource: "common.txt",
		TextSource:    "test.txt",
		Mode:          "sentence",
		Take:          2,
		UnitCount:     3,
		Selected:      []int{0, 1},
		Summary:       summary,
	})
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
	return run
}

func TestRecordAndGet(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	created := recordAt(t, s, "cat dog\n\ncat cat bird", time.Time{})
	if created.ID == "" || created.CreatedAt.IsZero() {
		t.Fatalf("expected generated id and timestamp: %+v", created)
	}

	got, err := s.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Summary != created.Summary || got.Mode != "sentence" || got.UnitCount != 3 {
		t.Fatalf("unexpected run: %+v", got)
	}
	if !slices.Equal(got.Selected, []int{0, 1}) {
		t.Fatalf("Selected = %v", got.Selected)
	}
	if !got.CreatedAt.Equal(created.CreatedAt) {
		t.Fatalf("CreatedAt = %v, want %v", got.CreatedAt, created.CreatedAt)
	}

	byPrefix, err := s.Get(ctx, created.ID[:8])
	if err != nil || byPrefix.ID != created.ID {
		t.Fatalf("Get by prefix = %+v, %v", byPrefix, err)
	}
}

func TestGetErrors(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if _, err := s.Get(ctx, "deadbeef"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := s.Get(ctx, "  "); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for blank id, got %v", err)
	}

	for _, id := range []string{"abc-1", "abc-2"} {
		if _, err := s.Record(ctx, Run{ID: id, Mode: "sentence"}); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := s.Get(ctx, "abc"); !errors.Is(err, ErrAmbiguous) {
		t.Fatalf("expected ErrAmbiguous, got %v", err)
	}
	if run, err := s.Get(ctx, "abc-2"); err != nil || run.ID != "abc-2" {
		t.Fatalf("exact id should win: %+v, %v", run, err)
	}
}

func TestListNewestFirstAndPrune(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	base := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	for i, summary := range []string{"first", "second", "third", "fourth"} {
		recordAt(t, s, summary, base.Add(time.Duration(i)*time.Millisecond))
	}

	runs, err := s.List(ctx, 0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	var summaries []string
	for _, r := range runs {
		summaries = append(summaries, r.Summary)
	}
	if !slices.Equal(summaries, []string{"fourth", "third", "second", "first"}) {
		t.Fatalf("unexpected order: %v", summaries)
	}

	limited, err := s.List(ctx, 2)
	if err != nil || len(limited) != 2 {
		t.Fatalf("List(2) = %d runs, %v", len(limited), err)
	}

	removed, err := s.Prune(ctx, 2)
	if err != nil {
		t.Fatalf("Prune: %v", err)
	}
	if removed != 2 {
		t.Fatalf("Prune removed %d, want 2", removed)
	}
	runs, _ = s.List(ctx, 0)
	if len(runs) != 2 || runs[0].Summary != "fourth" || runs[1].Summary != "third" {
		t.Fatalf("unexpected runs after prune: %+v", runs)
	}

	if removed, _ := s.Prune(ctx, 0); removed != 0 {
		t.Fatalf("Prune(0) removed %d", removed)
	}

	cleared, err := s.Clear(ctx)
	if err != nil || cleared != 2 {
		t.Fatalf("Clear = %d, %v", cleared, err)
	}
	if runs, _ := s.List(ctx, 0); len(runs) != 0 {
		t.Fatalf("expected empty history, got %d", len(runs))
	}
}

func TestReopenKeepsRuns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")
	ctx := context.Background()

	s, err := Open(ctx, path)
	if err != nil {
		t.Fatal(err)
	}
	recordAt(t, s, "persisted", time.Time{})
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}

	reopened, err := Open(ctx, path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()
	runs, err := reopened.List(ctx, 0)
	if err != nil || len(runs) != 1 || runs[0].Summary != "persisted" {
		t.Fatalf("unexpected runs after reopen: %+v, %v", runs, err)
	}
	if reopened.Path() != path {
		t.Fatalf("Path() = %q", reopened.Path())
	}
}

func TestOpenRecordsSchemaVersion(t *testing.T) {
	s := openTestStore(t)
	steps, err := schemaSteps()
	if err != nil {
		t.Fatalf("schemaSteps: %v", err)
	}
	if len(steps) == 0 || steps[0].version != 1 {
		t.Fatalf("unexpected migration steps: %+v", steps)
	}

	var version int
	if err := s.db.QueryRow("PRAGMA user_version").Scan(&version); err != nil {
		t.Fatal(err)
	}
	if want := steps[len(steps)-1].version; version != want {
		t.Fatalf("user_version = %d, want %d", version, want)
	}
}

func TestOpenRejectsNewerSchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")
	ctx := context.Background()

	s, err := Open(ctx, path)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := s.db.Exec("PRAGMA user_version = 999"); err != nil {
		t.Fatal(err)
	}
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}

	if _, err := Open(ctx, path); !errors.Is(err, ErrSchemaTooNew) {
		t.Fatalf("expected ErrSchemaTooNew, got %v", err)
	}
}
