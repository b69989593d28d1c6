// Package listview implements the list-page data pipeline shared by
// every resource in the dashboard: fetch → normalize → filter →
// paginate → mutate → reconcile. Each page supplies only its fetch
// function, id extractor, search fields, and page size.
package listview

import (
	"context"
	"strings"
	"sync"
)

// DefaultPageSize is used when a Config does not set one.
const DefaultPageSize = 10

// Config parameterizes a Pipeline for one resource.
type Config[T any] struct {
	// Fetch retrieves and normalizes the full record set.
	Fetch func(ctx context.Context) ([]T, error)
	// ID extracts the opaque server id used to reconcile deletes.
	ID func(T) string
	// SearchText returns the designated searchable fields, already
	// stringified. Numeric fields should be formatted by the caller.
	SearchText func(T) []string
	// PageSize is the page window size; DefaultPageSize when <= 0.
	PageSize int
}

// Pipeline holds one list view's record set and its derived
// projections. The record set is a cache of the server's state; it owns
// nothing and is rebuilt by every Load.
type Pipeline[T any] struct {
	cfg Config[T]

	mu       sync.Mutex
	seq      uint64 // latest issued load, for stale-response discard
	records  []T
	filtered []T
	term     string
	page     int
	loaded   bool
}

// New creates a pipeline from cfg.
func New[T any](cfg Config[T]) *Pipeline[T] {
	if cfg.PageSize <= 0 {
		cfg.PageSize = DefaultPageSize
	}
	return &Pipeline[T]{cfg: cfg, page: 1}
}

// Load fetches the record set. Each call is tagged; if another Load was
// issued while this one was in flight, the slower response is discarded
// so it cannot overwrite newer state. On error the previous record set
// is left intact.
func (p *Pipeline[T]) Load(ctx context.Context) error {
	p.mu.Lock()
	p.seq++
	tag := p.seq
	p.mu.Unlock()

	records, err := p.cfg.Fetch(ctx)
	if err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if tag != p.seq {
		return nil // a newer load superseded this one
	}
	p.records = records
	p.loaded = true
	p.refilter()
	return nil
}

// Loaded reports whether at least one Load has completed.
func (p *Pipeline[T]) Loaded() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.loaded
}

// Records returns the full normalized record set.
func (p *Pipeline[T]) Records() []T {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.records
}

// SetSearch updates the search term and resets to the first page. The
// filtered projection is recomputed synchronously.
func (p *Pipeline[T]) SetSearch(term string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if term == p.term {
		return
	}
	p.term = term
	p.page = 1
	p.refilter()
}

// SearchTerm returns the current search term.
func (p *Pipeline[T]) SearchTerm() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.term
}

// Filtered returns the search projection of the record set.
func (p *Pipeline[T]) Filtered() []T {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.filtered
}

// SetPage selects the 1-based current page. Out-of-range values clamp;
// the page can never point at an empty window while records exist.
func (p *Pipeline[T]) SetPage(n int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.page = clampPage(n, len(p.filtered), p.cfg.PageSize)
}

// Page returns the current 1-based page number.
func (p *Pipeline[T]) Page() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.page
}

// TotalPages returns the page count for the filtered set.
func (p *Pipeline[T]) TotalPages() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return TotalPages(len(p.filtered), p.cfg.PageSize)
}

// Window returns the records on the current page.
func (p *Pipeline[T]) Window() []T {
	p.mu.Lock()
	defer p.mu.Unlock()
	return Paginate(p.filtered, p.page, p.cfg.PageSize)
}

// Delete runs the mutation and, only after it succeeds, drops the
// record locally and recomputes the projections. On failure the local
// state is untouched so the view stays consistent with the server.
func (p *Pipeline[T]) Delete(ctx context.Context, id string, mutate func(context.Context) error) error {
	if err := mutate(ctx); err != nil {
		return err
	}
	p.Remove(id)
	return nil
}

// Remove drops the record with the given id from the source set. The
// filtered and paginated projections recompute, and the current page
// clamps if the delete emptied it.
func (p *Pipeline[T]) Remove(id string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	kept := p.records[:0:0]
	for _, r := range p.records {
		if p.cfg.ID(r) != id {
			kept = append(kept, r)
		}
	}
	p.records = kept
	p.refilter()
}

// refilter recomputes the filtered projection and re-clamps the page.
// Callers must hold p.mu.
func (p *Pipeline[T]) refilter() {
	p.filtered = Filter(p.records, p.term, p.cfg.SearchText)
	p.page = clampPage(p.page, len(p.filtered), p.cfg.PageSize)
}

// --- Pure projection functions ---

// Filter returns the records whose designated fields contain term,
// case-insensitively, preserving order. An empty term matches all.
func Filter[T any](records []T, term string, searchText func(T) []string) []T {
	if strings.TrimSpace(term) == "" {
		return records
	}
	needle := strings.ToLower(term)

	var out []T
	for _, r := range records {
		for _, field := range searchText(r) {
			if strings.Contains(strings.ToLower(field), needle) {
				out = append(out, r)
				break
			}
		}
	}
	return out
}

// Paginate returns the 1-based page window [start, start+pageSize) of
// records. Out-of-range pages return an empty slice.
func Paginate[T any](records []T, page, pageSize int) []T {
	if page < 1 || pageSize <= 0 {
		return nil
	}
	start := (page - 1) * pageSize
	if start >= len(records) {
		return nil
	}
	end := start + pageSize
	if end > len(records) {
		end = len(records)
	}
	return records[start:end]
}

// TotalPages returns ceil(n / pageSize), and at least 1 so a list with
// no records still renders page 1 of 1.
func TotalPages(n, pageSize int) int {
	if pageSize <= 0 || n <= 0 {
		return 1
	}
	return (n + pageSize - 1) / pageSize
}

// clampPage forces page into [1, TotalPages(n, pageSize)].
func clampPage(page, n, pageSize int) int {
	if page < 1 {
		return 1
	}
	if last := TotalPages(n, pageSize); page > last {
		return last
	}
	return page
}
