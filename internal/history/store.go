package history

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/msto63/pyanalyzer/foundation/pylang"
	"github.com/msto63/pyanalyzer/foundation/pylang/diag"
)

// ErrNotFound is returned when no run matches an ID
var ErrNotFound = errors.New("run not found")

// ErrAmbiguous is returned when an ID prefix matches more than one run
var ErrAmbiguous = errors.New("run ID prefix is ambiguous")

// Run is one recorded analysis
type Run struct {
	ID            string            `json:"id" yaml:"id"`
	Timestamp     time.Time         `json:"timestamp" yaml:"timestamp"`
	Source        string            `json:"source" yaml:"source"`
	Status        string            `json:"status" yaml:"status"`
	Tokens        int               `json:"tokens" yaml:"tokens"`
	Symbols       int               `json:"symbols" yaml:"symbols"`
	LexicalErrors int               `json:"lexical_errors" yaml:"lexical_errors"`
	SyntaxErrors  int               `json:"syntax_errors" yaml:"syntax_errors"`
	Duration      time.Duration     `json:"duration" yaml:"duration"`
	Diagnostics   []diag.Diagnostic `json:"diagnostics,omitempty" yaml:"diagnostics,omitempty"`
}

// Failed reports whether the run found problems
func (r *Run) Failed() bool {
	return r.LexicalErrors+r.SyntaxErrors > 0
}

// FromResult converts an analysis result into a history record. source
// names the analyzed input, e.g. a file path or "<stdin>".
func FromResult(result *pylang.Result, source string) *Run {
	return &Run{
		ID:            result.RunID,
		Timestamp:     result.Started,
		Source:        source,
		Status:        result.Status(),
		Tokens:        len(result.Tokens),
		Symbols:       result.Symbols.Len(),
		LexicalErrors: result.LexicalErrors.Len(),
		SyntaxErrors:  result.SyntaxErrors.Len(),
		Duration:      result.Duration,
		Diagnostics:   result.Diagnostics(),
	}
}

// RunFilter defines criteria for listing runs
type RunFilter struct {
	Source     string
	FailedOnly bool
	Since      time.Time
	Limit      int
}

// Stats summarizes the recorded runs
type Stats struct {
	Total   int64     `json:"total"`
	Failed  int64     `json:"failed"`
	Sources int64     `json:"sources"`
	Latest  time.Time `json:"latest,omitempty"`
}

// RunStore defines the interface for run persistence
type RunStore interface {
	Save(ctx context.Context, run *Run) error
	// Get returns the run whose ID equals or starts with id, including
	// its diagnostics.
	Get(ctx context.Context, id string) (*Run, error)
	// List returns runs newest first, without diagnostics
	List(ctx context.Context, filter RunFilter) ([]*Run, error)
	Stats(ctx context.Context) (*Stats, error)
	// Prune deletes all but the newest keep runs
	Prune(ctx context.Context, keep int) (int64, error)
	Close() error
}

// MemoryRunStore is an in-memory implementation, used when the history
// is disabled and in tests
type MemoryRunStore struct {
	mu   sync.RWMutex
	runs []*Run
}

// NewMemoryRunStore creates an empty in-memory store
func NewMemoryRunStore() *MemoryRunStore {
	return &MemoryRunStore{}
}

func (s *MemoryRunStore) Save(ctx context.Context, run *Run) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if run.Timestamp.IsZero() {
		run.Timestamp = time.Now()
	}
	copied := *run
	copied.Diagnostics = append([]diag.Diagnostic(nil), run.Diagnostics...)
	s.runs = append(s.runs, &copied)
	sort.SliceStable(s.runs, func(i, j int) bool {
		return s.runs[i].Timestamp.After(s.runs[j].Timestamp)
	})
	return nil
}

func (s *MemoryRunStore) Get(ctx context.Context, id string) (*Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if id == "" {
		return nil, ErrNotFound
	}
	var found *Run
	for _, r := range s.runs {
		if r.ID == id {
			copied := *r
			return &copied, nil
		}
		if strings.HasPrefix(r.ID, id) {
			if found != nil {
				return nil, ErrAmbiguous
			}
			found = r
		}
	}
	if found == nil {
		return nil, ErrNotFound
	}
	copied := *found
	return &copied, nil
}

func (s *MemoryRunStore) List(ctx context.Context, filter RunFilter) ([]*Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var runs []*Run
	for _, r := range s.runs {
		if filter.Source != "" && r.Source != filter.Source {
			continue
		}
		if filter.FailedOnly && !r.Failed() {
			continue
		}
		if !filter.Since.IsZero() && r.Timestamp.Before(filter.Since) {
			continue
		}
		copied := *r
		copied.Diagnostics = nil
		runs = append(runs, &copied)
		if filter.Limit > 0 && len(runs) == filter.Limit {
			break
		}
	}
	return runs, nil
}

func (s *MemoryRunStore) Stats(ctx context.Context) (*Stats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := &Stats{Total: int64(len(s.runs))}
	sources := make(map[string]bool)
	for _, r := range s.runs {
		if r.Failed() {
			stats.Failed++
		}
		sources[r.Source] = true
		if r.Timestamp.After(stats.Latest) {
			stats.Latest = r.Timestamp
		}
	}
	stats.Sources = int64(len(sources))
	return stats, nil
}

func (s *MemoryRunStore) Prune(ctx context.Context, keep int) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if keep < 0 || len(s.runs) <= keep {
		return 0, nil
	}
	deleted := int64(len(s.runs) - keep)
	s.runs = s.runs[:keep]
	return deleted, nil
}

func (s *MemoryRunStore) Close() error {
	return nil
}
