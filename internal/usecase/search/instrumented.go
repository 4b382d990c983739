package search

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/shelf/internal/domain/search/request"
	"github.com/kailas-cloud/shelf/internal/domain/search/result"
	"github.com/kailas-cloud/shelf/internal/metrics"
)

// Searcher runs a search request.
type Searcher interface {
	Search(ctx context.Context, req *request.Request) (*result.Response, error)
}

// InstrumentedSearcher wraps a Searcher with search metrics and debug logging.
// HTTP metrics are recorded by the transport middleware.
type InstrumentedSearcher struct {
	inner  Searcher
	logger *zap.Logger
}

// NewInstrumentedSearcher wraps a searcher with observability.
func NewInstrumentedSearcher(inner Searcher, logger *zap.Logger) *InstrumentedSearcher {
	return &InstrumentedSearcher{inner: inner, logger: logger}
}

// Search delegates to the inner searcher and records the outcome.
func (p *InstrumentedSearcher) Search(ctx context.Context, req *request.Request) (*result.Response, error) {
	start := time.Now()

	resp, err := p.inner.Search(ctx, req)
	if err != nil {
		metrics.SearchFailuresTotal.Inc()
		return nil, err
	}

	label := "none"
	if resp.Insights != nil {
		label = string(resp.Insights.Intent)
		metrics.SearchCorrectionsTotal.Add(float64(len(resp.Insights.CorrectedTerms)))
	}
	metrics.SearchRequestsTotal.WithLabelValues(label).Inc()
	metrics.SearchResultsCount.Observe(float64(len(resp.Items)))

	p.logger.Debug("Search completed",
		zap.String("intent", label),
		zap.Int("page", req.Page()),
		zap.Int("limit", req.Limit()),
		zap.Int("total", resp.Pagination.TotalItems),
		zap.Int("returned", len(resp.Items)),
		zap.Duration("duration", time.Since(start)),
	)

	return resp, nil
}
