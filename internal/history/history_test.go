package history

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/msto63/pyanalyzer/foundation/pylang"
	"github.com/msto63/pyanalyzer/foundation/pylang/diag"

	mdwerror "github.com/msto63/pyanalyzer/foundation/core/error"
	mdwlog "github.com/msto63/pyanalyzer/foundation/core/log"
)

var base = time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)

func sampleRuns() []*Run {
	return []*Run{
		{ID: "aaaa-1111", Timestamp: base, Source: "a.py", Status: pylang.StatusOK, Tokens: 10, Symbols: 2},
		{ID: "aaaa-2222", Timestamp: base.Add(time.Minute), Source: "b.py", Status: pylang.StatusSyntaxErrors,
			Tokens: 7, SyntaxErrors: 1, Duration: 3 * time.Millisecond,
			Diagnostics: []diag.Diagnostic{
				{Code: mdwerror.CodeSyntax, Message: "Expected ':' after while condition", Line: 1, Column: 8},
			}},
		{ID: "bbbb-3333", Timestamp: base.Add(2 * time.Minute), Source: "a.py", Status: pylang.StatusLexicalErrors,
			Tokens: 4, LexicalErrors: 2,
			Diagnostics: []diag.Diagnostic{
				{Code: mdwerror.CodeLexical, Message: "Invalid character: $", Line: 1, Column: 1},
				{Code: mdwerror.CodeSemantic, Message: "Division by zero", Line: 2, Column: 1},
			}},
	}
}

func stores(t *testing.T) map[string]RunStore {
	t.Helper()
	sqlite, err := NewSQLiteRunStore(SQLiteRunConfig{Path: filepath.Join(t.TempDir(), "nested", "history.db")})
	if err != nil {
		t.Fatalf("NewSQLiteRunStore() error = %v", err)
	}
	t.Cleanup(func() { sqlite.Close() })
	return map[string]RunStore{
		"memory": NewMemoryRunStore(),
		"sqlite": sqlite,
	}
}

func fill(t *testing.T, store RunStore) {
	t.Helper()
	for _, r := range sampleRuns() {
		if err := store.Save(context.Background(), r); err != nil {
			t.Fatalf("Save(%s) error = %v", r.ID, err)
		}
	}
}

func ids(runs []*Run) []string {
	out := make([]string, len(runs))
	for i, r := range runs {
		out[i] = r.ID
	}
	return out
}

func TestRunStore_List(t *testing.T) {
	tests := []struct {
		name   string
		filter RunFilter
		want   []string
	}{
		{"all newest first", RunFilter{}, []string{"bbbb-3333", "aaaa-2222", "aaaa-1111"}},
		{"limit", RunFilter{Limit: 2}, []string{"bbbb-3333", "aaaa-2222"}},
		{"source", RunFilter{Source: "a.py"}, []string{"bbbb-3333", "aaaa-1111"}},
		{"failed only", RunFilter{FailedOnly: true}, []string{"bbbb-3333", "aaaa-2222"}},
		{"since", RunFilter{Since: base.Add(time.Minute)}, []string{"bbbb-3333", "aaaa-2222"}},
		{"no match", RunFilter{Source: "c.py"}, []string{}},
	}

	for name, store := range stores(t) {
		fill(t, store)
		for _, tt := range tests {
			t.Run(name+"/"+tt.name, func(t *testing.T) {
				runs, err := store.List(context.Background(), tt.filter)
				if err != nil {
					t.Fatalf("List() error = %v", err)
				}
				got := ids(runs)
				if len(got) != len(tt.want) {
					t.Fatalf("List() = %v, want %v", got, tt.want)
				}
				for i := range got {
					if got[i] != tt.want[i] {
						t.Errorf("List()[%d] = %s, want %s", i, got[i], tt.want[i])
					}
				}
				for _, r := range runs {
					if len(r.Diagnostics) != 0 {
						t.Errorf("List() run %s carries diagnostics", r.ID)
					}
				}
			})
		}
	}
}

func TestRunStore_Get(t *testing.T) {
	for name, store := range stores(t) {
		fill(t, store)
		ctx := context.Background()

		t.Run(name+"/full id", func(t *testing.T) {
			r, err := store.Get(ctx, "bbbb-3333")
			if err != nil {
				t.Fatalf("Get() error = %v", err)
			}
			if r.Source != "a.py" || r.LexicalErrors != 2 || r.Tokens != 4 {
				t.Errorf("Get() = %+v", r)
			}
			if len(r.Diagnostics) != 2 {
				t.Fatalf("Diagnostics = %v, want 2", r.Diagnostics)
			}
			if r.Diagnostics[1].Code != mdwerror.CodeSemantic || r.Diagnostics[1].Message != "Division by zero" {
				t.Errorf("Diagnostics[1] = %+v", r.Diagnostics[1])
			}
			if !r.Timestamp.Equal(base.Add(2 * time.Minute)) {
				t.Errorf("Timestamp = %v, want %v", r.Timestamp, base.Add(2*time.Minute))
			}
		})

		t.Run(name+"/prefix", func(t *testing.T) {
			r, err := store.Get(ctx, "aaaa-2")
			if err != nil {
				t.Fatalf("Get() error = %v", err)
			}
			if r.ID != "aaaa-2222" || r.Duration != 3*time.Millisecond {
				t.Errorf("Get() = %+v", r)
			}
		})

		t.Run(name+"/ambiguous", func(t *testing.T) {
			if _, err := store.Get(ctx, "aaaa"); !errors.Is(err, ErrAmbiguous) {
				t.Errorf("Get() error = %v, want ErrAmbiguous", err)
			}
		})

		t.Run(name+"/missing", func(t *testing.T) {
			for _, id := range []string{"cccc", "", "%", "b%", "bbbb-333_"} {
				if _, err := store.Get(ctx, id); !errors.Is(err, ErrNotFound) {
					t.Errorf("Get(%q) error = %v, want ErrNotFound", id, err)
				}
			}
		})
	}
}

func TestRunStore_StatsAndPrune(t *testing.T) {
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			fill(t, store)

			stats, err := store.Stats(ctx)
			if err != nil {
				t.Fatalf("Stats() error = %v", err)
			}
			if stats.Total != 3 || stats.Failed != 2 || stats.Sources != 2 {
				t.Errorf("Stats() = %+v, want 3/2/2", stats)
			}
			if !stats.Latest.Equal(base.Add(2 * time.Minute)) {
				t.Errorf("Latest = %v", stats.Latest)
			}

			deleted, err := store.Prune(ctx, 1)
			if err != nil {
				t.Fatalf("Prune() error = %v", err)
			}
			if deleted != 2 {
				t.Errorf("Prune() = %d, want 2", deleted)
			}
			runs, _ := store.List(ctx, RunFilter{})
			if len(runs) != 1 || runs[0].ID != "bbbb-3333" {
				t.Errorf("after Prune() = %v", ids(runs))
			}
			if _, err := store.Get(ctx, "aaaa-2222"); !errors.Is(err, ErrNotFound) {
				t.Errorf("pruned run still present: %v", err)
			}
		})
	}
}

func TestSQLiteRunStore_Persists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")
	store, err := NewSQLiteRunStore(SQLiteRunConfig{Path: path})
	if err != nil {
		t.Fatal(err)
	}
	fill(t, store)
	store.Close()

	store, err = NewSQLiteRunStore(SQLiteRunConfig{Path: path})
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	r, err := store.Get(context.Background(), "aaaa-2222")
	if err != nil {
		t.Fatalf("Get() after reopen error = %v", err)
	}
	if len(r.Diagnostics) != 1 || r.Diagnostics[0].Column != 8 {
		t.Errorf("Diagnostics = %+v", r.Diagnostics)
	}
	if err := store.Vacuum(context.Background()); err != nil {
		t.Errorf("Vacuum() error = %v", err)
	}
}

func TestSQLiteRunStore_RejectsDuplicateAndEmptyID(t *testing.T) {
	store := stores(t)["sqlite"]
	ctx := context.Background()

	if err := store.Save(ctx, &Run{Source: "x.py"}); !mdwerror.HasCode(err, mdwerror.CodeInvalidInput) {
		t.Errorf("Save(empty id) error = %v, want INVALID_INPUT", err)
	}
	run := &Run{ID: "dup", Timestamp: base, Source: "x.py"}
	if err := store.Save(ctx, run); err != nil {
		t.Fatal(err)
	}
	if err := store.Save(ctx, run); err == nil {
		t.Error("Save(duplicate) error = nil")
	}
}

func TestFromResult(t *testing.T) {
	analyzer, err := pylang.New(pylang.Options{Logger: mdwlog.NewDiscard()})
	if err != nil {
		t.Fatal(err)
	}
	result, err := analyzer.Run("x = 1\nwhile x < 3\n    x += 1\n")
	if err != nil {
		t.Fatal(err)
	}

	run := FromResult(result, "loop.py")
	if run.ID != result.RunID || run.Source != "loop.py" {
		t.Errorf("FromResult() = %+v", run)
	}
	if run.Status != pylang.StatusSyntaxErrors || !run.Failed() {
		t.Errorf("Status = %q, Failed = %v", run.Status, run.Failed())
	}
	if run.SyntaxErrors != 1 || len(run.Diagnostics) != 1 {
		t.Errorf("SyntaxErrors = %d, Diagnostics = %v", run.SyntaxErrors, run.Diagnostics)
	}
	if run.Tokens != len(result.Tokens) || run.Symbols != 1 {
		t.Errorf("Tokens = %d, Symbols = %d", run.Tokens, run.Symbols)
	}
}
