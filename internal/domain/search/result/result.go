package result

import (
	"github.com/kailas-cloud/shelf/internal/domain/catalog"
	"github.com/kailas-cloud/shelf/internal/domain/search/intent"
)

// Scored pairs an item with its relevance score. Transient: the score is
// never returned to clients.
type Scored struct {
	Item  catalog.Item
	Score float64
}

// Pagination describes the page window over the full match set.
type Pagination struct {
	CurrentPage  int
	TotalPages   int
	TotalItems   int
	ItemsPerPage int
	HasNextPage  bool
	HasPrevPage  bool
}

// NewPagination derives the page envelope from the total match count.
// limit must be positive.
func NewPagination(page, limit, total int) Pagination {
	totalPages := 0
	if total > 0 {
		totalPages = (total + limit - 1) / limit
	}
	return Pagination{
		CurrentPage:  page,
		TotalPages:   totalPages,
		TotalItems:   total,
		ItemsPerPage: limit,
		HasNextPage:  page < totalPages,
		HasPrevPage:  page > 1,
	}
}

// Insights explains how a free-text query was interpreted.
type Insights struct {
	OriginalQuery  string
	ProcessedQuery string
	CorrectedTerms []string
	Intent         intent.Intent
	Suggestions    []string
	ExpandedTerms  []string
}

// Response is one page of search results.
type Response struct {
	Items      []catalog.Item
	Pagination Pagination
	// Insights is nil when the request carried no query.
	Insights *Insights
}
