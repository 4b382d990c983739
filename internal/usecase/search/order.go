package search

import (
	"cmp"
	"slices"

	"github.com/kailas-cloud/shelf/internal/domain/catalog"
	"github.com/kailas-cloud/shelf/internal/domain/search/request"
	"github.com/kailas-cloud/shelf/internal/domain/search/result"
)

// SortItems stable-sorts items by a non-relevance field. Strings use
// locale-aware collation; dates and sizes compare numerically.
func SortItems(items []catalog.Item, s request.Sort) {
	col := catalog.NewCollator()
	field := s.Column()
	slices.SortStableFunc(items, func(a, b catalog.Item) int {
		if s.Descending() {
			return catalog.Compare(&b, &a, field, col)
		}
		return catalog.Compare(&a, &b, field, col)
	})
}

// rankByScore stable-sorts scored items by descending score; equal scores
// keep fetch order.
func rankByScore(scored []result.Scored) {
	slices.SortStableFunc(scored, func(a, b result.Scored) int {
		return cmp.Compare(b.Score, a.Score)
	})
}
