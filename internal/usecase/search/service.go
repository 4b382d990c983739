package search

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/kailas-cloud/shelf/internal/domain/catalog"
	"github.com/kailas-cloud/shelf/internal/domain/search/intent"
	"github.com/kailas-cloud/shelf/internal/domain/search/request"
	"github.com/kailas-cloud/shelf/internal/domain/search/result"
)

// Service runs the search pipeline: interpret the query, filter and page in
// the store, then rank or sort the page.
type Service struct {
	store   Store
	weights Weights
	now     func() time.Time
}

// New creates a search service.
func New(store Store, weights Weights) *Service {
	return &Service{store: store, weights: weights, now: time.Now}
}

// Search executes one search request. Any store failure aborts the whole
// request; there are no partial results.
func (s *Service) Search(ctx context.Context, req *request.Request) (*result.Response, error) {
	var (
		insights *result.Insights
		terms    []string
		in       = intent.General
	)

	if req.HasQuery() {
		in = DetectIntent(req.Query())
		fixed := CorrectTypos(req.Query())
		terms = ExpandQuery(fixed.Corrected, in)
		corrections := fixed.Corrections
		if corrections == nil {
			corrections = []string{}
		}
		insights = &result.Insights{
			OriginalQuery:  req.Query(),
			ProcessedQuery: fixed.Corrected,
			CorrectedTerms: corrections,
			Intent:         in,
			Suggestions:    GenerateSuggestions(fixed.Corrected, in),
			ExpandedTerms:  terms,
		}
	}

	expr, err := BuildExpression(terms, in, req.Filters())
	if err != nil {
		return nil, fmt.Errorf("build filter: %w", err)
	}

	var (
		total int
		items []catalog.Item
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		n, err := s.store.Count(gctx, expr)
		if err != nil {
			return fmt.Errorf("count: %w", err)
		}
		total = n
		return nil
	})
	g.Go(func() error {
		page, err := s.store.Fetch(gctx, expr, req.Sort().StoreOrder(), req.Offset(), req.Limit())
		if err != nil {
			return fmt.Errorf("fetch: %w", err)
		}
		items = page
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if err := s.attachCategories(ctx, items); err != nil {
		return nil, err
	}

	if req.Sort().IsRelevance() {
		items = s.rank(items, req.Query(), terms, in)
	} else {
		SortItems(items, req.Sort())
	}

	if items == nil {
		items = []catalog.Item{}
	}
	return &result.Response{
		Items:      items,
		Pagination: result.NewPagination(req.Page(), req.Limit(), total),
		Insights:   insights,
	}, nil
}

func (s *Service) attachCategories(ctx context.Context, items []catalog.Item) error {
	if len(items) == 0 {
		return nil
	}
	ids := make([]string, len(items))
	for i := range items {
		ids[i] = items[i].ID
	}
	cats, err := s.store.Categories(ctx, ids)
	if err != nil {
		return fmt.Errorf("categories: %w", err)
	}
	for i := range items {
		items[i].Categories = cats[items[i].ID]
	}
	return nil
}

func (s *Service) rank(items []catalog.Item, query string, terms []string, in intent.Intent) []catalog.Item {
	now := s.now()
	scored := make([]result.Scored, len(items))
	for i := range items {
		scored[i] = result.Scored{
			Item:  items[i],
			Score: s.weights.Score(&items[i], query, terms, in, now),
		}
	}
	rankByScore(scored)

	out := make([]catalog.Item, len(scored))
	for i := range scored {
		out[i] = scored[i].Item
	}
	return out
}
