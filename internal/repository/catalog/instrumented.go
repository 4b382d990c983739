package catalog

import (
	"context"
	"time"

	domcat "github.com/kailas-cloud/shelf/internal/domain/catalog"
	"github.com/kailas-cloud/shelf/internal/domain/search/filter"
	"github.com/kailas-cloud/shelf/internal/domain/search/request"
	"github.com/kailas-cloud/shelf/internal/metrics"
	searchuc "github.com/kailas-cloud/shelf/internal/usecase/search"
)

// Compile-time check: InstrumentedStore implements usecase/search.Store.
var _ searchuc.Store = (*InstrumentedStore)(nil)

// InstrumentedStore records per-operation latency and outcome for a store driver.
type InstrumentedStore struct {
	inner  searchuc.Store
	driver string
}

// NewInstrumentedStore wraps inner; driver labels the metrics.
func NewInstrumentedStore(inner searchuc.Store, driver string) *InstrumentedStore {
	return &InstrumentedStore{inner: inner, driver: driver}
}

// Count records and proxies Count.
func (s *InstrumentedStore) Count(ctx context.Context, expr filter.Expression) (int, error) {
	start := time.Now()
	n, err := s.inner.Count(ctx, expr)
	s.observe("count", start, err)
	return n, err
}

// Fetch records and proxies Fetch.
func (s *InstrumentedStore) Fetch(
	ctx context.Context, expr filter.Expression, order request.Sort, offset, limit int,
) ([]domcat.Item, error) {
	start := time.Now()
	items, err := s.inner.Fetch(ctx, expr, order, offset, limit)
	s.observe("fetch", start, err)
	return items, err
}

// Categories records and proxies Categories.
func (s *InstrumentedStore) Categories(ctx context.Context, ids []string) (map[string][]string, error) {
	start := time.Now()
	cats, err := s.inner.Categories(ctx, ids)
	s.observe("categories", start, err)
	return cats, err
}

func (s *InstrumentedStore) observe(op string, start time.Time, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	metrics.StoreOperationDuration.WithLabelValues(s.driver, op, status).Observe(time.Since(start).Seconds())
}
