// File path: internal/kb/library.go
package kb

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/wellnessgarden/guide/internal/common"
)

// Library loads every configured source once and memoizes the combined
// entries for the process lifetime. A failed load clears the memo so a
// later call retries all sources from scratch; a successful load is never
// repeated. Entries are read-only after loading and safe for concurrent
// queries.
type Library struct {
	sources []Source

	mu      sync.Mutex
	loaded  bool
	entries []Entry
	counts  map[string]int
}

// Stats reports the library load state for diagnostics.
type Stats struct {
	Loaded  bool           `json:"loaded"`
	Total   int            `json:"total"`
	Sources map[string]int `json:"sources,omitempty"`
}

func NewLibrary(sources ...Source) *Library {
	if len(sources) == 0 {
		panic("kb: library requires at least one source")
	}
	return &Library{sources: sources}
}

// Entries returns the memoized entry collection, loading all sources
// concurrently on first use. Concurrent callers share a single load.
func (l *Library) Entries(ctx context.Context) ([]Entry, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.loaded {
		return l.entries, nil
	}

	logger := common.Logger()
	results := make([][]Entry, len(l.sources))
	g, gctx := errgroup.WithContext(ctx)
	for i, src := range l.sources {
		i, src := i, src
		g.Go(func() error {
			entries, err := src.Load(gctx)
			if err != nil {
				return fmt.Errorf("load %s: %w", src.Name(), err)
			}
			results[i] = entries
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		logger.Error("kb: source load failed, cache invalidated", "error", err)
		return nil, err
	}

	counts := make(map[string]int, len(l.sources))
	var combined []Entry
	for i, entries := range results {
		counts[l.sources[i].Name()] += len(entries)
		combined = append(combined, entries...)
	}

	l.entries = combined
	l.counts = counts
	l.loaded = true
	logger.Info("kb: library loaded", "entries", len(combined), "sources", len(l.sources))
	return l.entries, nil
}

// Stats returns per-source entry counts from the last successful load.
func (l *Library) Stats() Stats {
	l.mu.Lock()
	defer l.mu.Unlock()
	stats := Stats{Loaded: l.loaded, Total: len(l.entries)}
	if len(l.counts) > 0 {
		stats.Sources = make(map[string]int, len(l.counts))
		for name, n := range l.counts {
			stats.Sources[name] = n
		}
	}
	return stats
}
