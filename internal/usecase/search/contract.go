package search

import (
	"context"

	"github.com/kailas-cloud/shelf/internal/domain/catalog"
	"github.com/kailas-cloud/shelf/internal/domain/search/filter"
	"github.com/kailas-cloud/shelf/internal/domain/search/request"
)

// Store is the catalog contract consumed by the search pipeline.
type Store interface {
	// Count returns the number of items matching expr.
	Count(ctx context.Context, expr filter.Expression) (int, error)
	// Fetch returns one page of matching items ordered by order, id ascending
	// as the final tie-break. Categories may be left empty.
	Fetch(
		ctx context.Context, expr filter.Expression,
		order request.Sort, offset, limit int,
	) ([]catalog.Item, error)
	// Categories resolves category names per item id.
	Categories(ctx context.Context, ids []string) (map[string][]string, error)
}
