// Package listctl implements the list state shared by every catalog screen:
// one fetched collection, an optional search override, a sort key, and a
// current page. It is the single generic replacement for the per-entity
// screen state that would otherwise be duplicated four times.
package listctl

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Entity is the minimal shape the controller needs from an item.
type Entity interface {
	EntityID() string
	EntityName() string
	EntityCreatedAt() time.Time
}

// SortKey selects one of the fixed sort strategies.
type SortKey string

const (
	// SortByCreated orders by creation timestamp, newest first.
	SortByCreated SortKey = "created"
	// SortByName orders by name, locale-aware ascending.
	SortByName SortKey = "name"
)

// AllSortKeys lists the valid sort keys.
var AllSortKeys = []SortKey{SortByCreated, SortByName}

// DefaultPageSize matches the ten-row table of the original screens.
const DefaultPageSize = 10

// List holds the collection state for one entity kind. The base collection
// is only ever replaced by Load or patched by the Apply methods; sorting and
// pagination operate on shallow copies.
type List[T Entity] struct {
	items      []T
	filtered   []T // search override; nil means the base collection is active
	searchTerm string
	sortKey    SortKey
	page       int
	pageSize   int
	loading    bool
	collator   *collate.Collator
}

func New[T Entity]() *List[T] {
	return &List[T]{
		sortKey:  SortByCreated,
		page:     1,
		pageSize: DefaultPageSize,
		collator: collate.New(language.Und, collate.Loose),
	}
}

// Load replaces the collection with the fetch result. A nil result is
// coerced to an empty collection. On failure the previous collection is kept
// and the error is returned for the caller's notification.
func (l *List[T]) Load(ctx context.Context, fetch func(context.Context) ([]T, error)) error {
	l.loading = true
	defer func() { l.loading = false }()

	items, err := fetch(ctx)
	if err != nil {
		return fmt.Errorf("fetch > %w", err)
	}
	if items == nil {
		items = []T{}
	}
	l.items = items
	l.refreshSearch()
	return nil
}

// Loading reports whether a Load call is in flight.
func (l *List[T]) Loading() bool {
	return l.loading
}

// Search stores a case-insensitive substring filter over names. An empty
// term clears the override so the base collection is active again.
func (l *List[T]) Search(term string) {
	l.searchTerm = strings.TrimSpace(term)
	l.refreshSearch()
}

// ClearSearch removes any active search override.
func (l *List[T]) ClearSearch() {
	l.Search("")
}

// refreshSearch recomputes the override from the current base collection.
// It runs after every mutation so a just-edited row never vanishes from a
// filtered view.
func (l *List[T]) refreshSearch() {
	if l.searchTerm == "" {
		l.filtered = nil
		return
	}
	needle := strings.ToLower(l.searchTerm)
	filtered := make([]T, 0, len(l.items))
	for _, item := range l.items {
		if strings.Contains(strings.ToLower(item.EntityName()), needle) {
			filtered = append(filtered, item)
		}
	}
	l.filtered = filtered
}

// SortBy selects the sort strategy applied to the active list.
func (l *List[T]) SortBy(key SortKey) {
	l.sortKey = key
}

func (l *List[T]) activeSource() []T {
	if l.filtered != nil {
		return l.filtered
	}
	return l.items
}

// Active returns a sorted shallow copy of the active list (the search
// override when present, else the base collection). The source is never
// mutated.
func (l *List[T]) Active() []T {
	source := l.activeSource()
	active := make([]T, len(source))
	copy(active, source)

	switch l.sortKey {
	case SortByName:
		sort.SliceStable(active, func(i, j int) bool {
			return l.collator.CompareString(active[i].EntityName(), active[j].EntityName()) < 0
		})
	default:
		sort.SliceStable(active, func(i, j int) bool {
			return active[i].EntityCreatedAt().After(active[j].EntityCreatedAt())
		})
	}
	return active
}

// SetPageSize changes the page size. Sizes below one are ignored.
func (l *List[T]) SetPageSize(size int) {
	if size > 0 {
		l.pageSize = size
	}
}

// PageSize returns the current page size.
func (l *List[T]) PageSize() int {
	return l.pageSize
}

// TotalPages is ceil(activeListLength / pageSize).
func (l *List[T]) TotalPages() int {
	return (len(l.activeSource()) + l.pageSize - 1) / l.pageSize
}

// Page returns the current page clamped to [1, TotalPages].
func (l *List[T]) Page() int {
	page := l.page
	if total := l.TotalPages(); total > 0 && page > total {
		page = total
	}
	if page < 1 {
		page = 1
	}
	return page
}

// SetPage moves to the given page, clamped at the bounds.
func (l *List[T]) SetPage(page int) {
	if page < 1 {
		page = 1
	}
	if total := l.TotalPages(); total > 0 && page > total {
		page = total
	}
	l.page = page
}

// NextPage advances one page unless already at the last one.
func (l *List[T]) NextPage() {
	l.SetPage(l.Page() + 1)
}

// PrevPage goes back one page unless already at the first one.
func (l *List[T]) PrevPage() {
	l.SetPage(l.Page() - 1)
}

// Window returns the active list slice for the current page, never more
// than one page size of items.
func (l *List[T]) Window() []T {
	active := l.Active()
	start := (l.Page() - 1) * l.pageSize
	if start >= len(active) {
		return nil
	}
	end := start + l.pageSize
	if end > len(active) {
		end = len(active)
	}
	return active[start:end]
}

// Items returns the base collection.
func (l *List[T]) Items() []T {
	return l.items
}

// SearchTerm returns the active search term, empty when cleared.
func (l *List[T]) SearchTerm() string {
	return l.searchTerm
}

// Sort returns the active sort strategy.
func (l *List[T]) Sort() SortKey {
	return l.sortKey
}

// ApplyCreate prepends a created item to the base collection.
func (l *List[T]) ApplyCreate(item T) {
	l.items = append([]T{item}, l.items...)
	l.refreshSearch()
}

// ApplyUpdate replaces the element whose id matches.
func (l *List[T]) ApplyUpdate(item T) {
	for i := range l.items {
		if l.items[i].EntityID() == item.EntityID() {
			l.items[i] = item
			break
		}
	}
	l.refreshSearch()
}

// ApplyDelete removes the element whose id matches.
func (l *List[T]) ApplyDelete(id string) {
	kept := make([]T, 0, len(l.items))
	for _, item := range l.items {
		if item.EntityID() != id {
			kept = append(kept, item)
		}
	}
	l.items = kept
	l.refreshSearch()
}

// Find returns the item with the given id from the base collection.
func (l *List[T]) Find(id string) (T, bool) {
	for _, item := range l.items {
		if item.EntityID() == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}
