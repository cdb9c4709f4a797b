package store

import (
	"sync"
	"time"
)

// Cooldown windows before a cache entry is considered stale enough to
// refetch. Searchable, paginated lists refresh more aggressively than the
// simple media listings.
const (
	CooldownPaginated = 2 * time.Minute
	CooldownSimple    = 5 * time.Minute
)

// ShouldFetch reports whether a list with the given last fetch time is due
// for a refresh. A zero time always fetches.
func ShouldFetch(lastFetched time.Time, cooldown time.Duration) bool {
	if lastFetched.IsZero() {
		return true
	}
	return time.Since(lastFetched) > cooldown
}

// Pagination is the client-side page cursor for numbered pagination.
type Pagination struct {
	Page       int
	PageSize   int
	TotalItems int
}

// List is the snapshot of one resource list cache entry.
type List[T any] struct {
	Items       []T
	Loading     bool
	LoadingMore bool
	Updating    string // id of the item a mutation is in flight for
	Err         string
	LastFetched time.Time
	Pagination  Pagination
	SearchTerm  string
	NextCursor  string
	HasMore     bool
}

// HasError reports whether the last terminal transition failed. An empty
// items slice with no error is a valid "no items" state, not a failure.
func (l List[T]) HasError() bool {
	return l.Err != ""
}

// Result carries a successful fetch payload into ResolveFetch.
type Result[T any] struct {
	Items      []T
	TotalItems int
	NextCursor string
	HasMore    bool
}

// Entry coordinates concurrent transitions for one resource list. All
// mutations go through the Begin/Resolve transition pair; reads return
// defensive copies.
//
// Each Begin bumps a request generation and Resolve discards payloads from
// superseded requests, so only the most recently issued fetch ever commits.
// Overlapping fetches previously raced with last-resolved-wins semantics.
type Entry[T any] struct {
	mu    sync.RWMutex
	gen   uint64
	state List[T]
}

// NewEntry builds an Entry with the given initial page size.
func NewEntry[T any](pageSize int) *Entry[T] {
	e := &Entry[T]{}
	e.state.Pagination = Pagination{Page: 1, PageSize: pageSize}
	return e
}

// BeginFetch starts a fetch transition and returns its generation token.
// reset marks a full refresh (replace items); otherwise the fetch is a
// forward "load more" continuing from the current cursor.
func (e *Entry[T]) BeginFetch(reset bool) uint64 {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.gen++
	e.state.Err = ""
	if reset {
		e.state.Loading = true
		e.state.NextCursor = ""
	} else {
		e.state.LoadingMore = true
	}
	return e.gen
}

// ResolveFetch commits the terminal transition for the fetch identified by
// gen. Stale generations are discarded so a superseded request can never
// overwrite newer data; the return value reports whether the payload
// committed. On failure the previous items are kept untouched and only the
// error message changes. Loading flags drop on every terminal path.
func (e *Entry[T]) ResolveFetch(gen uint64, reset bool, result Result[T], err error) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if gen != e.gen {
		return false
	}
	e.state.Loading = false
	e.state.LoadingMore = false

	if err != nil {
		e.state.Err = err.Error()
		return true
	}

	if reset {
		e.state.Items = cloneItems(result.Items)
		e.state.LastFetched = time.Now()
	} else {
		e.state.Items = append(e.state.Items, result.Items...)
	}
	e.state.Err = ""
	e.state.NextCursor = result.NextCursor
	e.state.HasMore = result.HasMore
	e.state.Pagination.TotalItems = result.TotalItems
	return true
}

// ShouldFetch reports whether this entry is stale for the given cooldown.
func (e *Entry[T]) ShouldFetch(cooldown time.Duration) bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return ShouldFetch(e.state.LastFetched, cooldown)
}

// SetSearch records a new search term and resets to the first page.
func (e *Entry[T]) SetSearch(term string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.state.SearchTerm = term
	e.state.Pagination.Page = 1
}

// SetPage records a pagination change.
func (e *Entry[T]) SetPage(page, pageSize int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if page > 0 {
		e.state.Pagination.Page = page
	}
	if pageSize > 0 {
		e.state.Pagination.PageSize = pageSize
	}
}

// SetUpdating marks the item a mutation is in flight for; empty clears it.
func (e *Entry[T]) SetUpdating(id string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.state.Updating = id
}

// RemoveWhere drops items matching the predicate after a confirmed server
// delete. TotalItems shrinks accordingly.
func (e *Entry[T]) RemoveWhere(match func(T) bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	kept := e.state.Items[:0:0]
	for _, item := range e.state.Items {
		if !match(item) {
			kept = append(kept, item)
		}
	}
	removed := len(e.state.Items) - len(kept)
	e.state.Items = kept
	if removed > 0 && e.state.Pagination.TotalItems >= removed {
		e.state.Pagination.TotalItems -= removed
	}
}

// Invalidate clears the fetch timestamp so the next ShouldFetch refetches.
func (e *Entry[T]) Invalidate() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.state.LastFetched = time.Time{}
}

// Snapshot returns a copy of the current list state.
func (e *Entry[T]) Snapshot() List[T] {
	e.mu.RLock()
	defer e.mu.RUnlock()

	snap := e.state
	snap.Items = cloneItems(e.state.Items)
	return snap
}

func cloneItems[T any](items []T) []T {
	if len(items) == 0 {
		return nil
	}
	dup := make([]T, len(items))
	copy(dup, items)
	return dup
}
