// Package memory is an in-process catalog store used for local runs, tests
// and the embedded SDK.
package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	domcat "github.com/kailas-cloud/shelf/internal/domain/catalog"
	"github.com/kailas-cloud/shelf/internal/domain/search/filter"
	"github.com/kailas-cloud/shelf/internal/domain/search/request"
	repocat "github.com/kailas-cloud/shelf/internal/repository/catalog"
	searchuc "github.com/kailas-cloud/shelf/internal/usecase/search"
)

// Compile-time check: Store implements usecase/search.Store.
var _ searchuc.Store = (*Store)(nil)

// Store keeps the catalog in a slice guarded by a RWMutex.
type Store struct {
	mu    sync.RWMutex
	items []domcat.Item
}

// New creates a store holding items.
func New(items ...domcat.Item) *Store {
	s := &Store{}
	s.Add(items...)
	return s
}

// Add appends items. Items without an id get a random UUID; an item whose id
// already exists replaces the stored one.
func (s *Store) Add(items ...domcat.Item) {
	s.mu.Lock()
	defer s.mu.Unlock()

	index := make(map[string]int, len(s.items))
	for i := range s.items {
		index[s.items[i].ID] = i
	}
	for _, it := range items {
		if it.ID == "" {
			it.ID = uuid.NewString()
		}
		if pos, ok := index[it.ID]; ok {
			s.items[pos] = it
			continue
		}
		index[it.ID] = len(s.items)
		s.items = append(s.items, it)
	}
}

// Len returns the number of stored items.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// Ping always succeeds.
func (s *Store) Ping(context.Context) error { return nil }

// Count returns the number of items matching expr.
func (s *Store) Count(ctx context.Context, expr filter.Expression) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0
	for i := range s.items {
		if repocat.Matches(&s.items[i], expr) {
			n++
		}
	}
	return n, nil
}

// Fetch returns one ordered page of items matching expr.
func (s *Store) Fetch(
	ctx context.Context, expr filter.Expression, order request.Sort, offset, limit int,
) ([]domcat.Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	matched := repocat.Filter(s.items, expr)
	s.mu.RUnlock()

	return repocat.Page(matched, order, offset, limit), nil
}

// Categories returns category names keyed by item id.
func (s *Store) Categories(ctx context.Context, ids []string) (map[string][]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return repocat.CategoryIndex(s.items, ids), nil
}
