package shelf

import "time"

// ItemType is the kind of catalog entry.
type ItemType string

// Item type constants.
const (
	TypeBook     ItemType = "BOOK"
	TypeDocument ItemType = "DOCUMENT"
	TypePeriodic ItemType = "PERIODIC"
	TypeArticle  ItemType = "ARTICLE"
)

// Intent is the detected purpose of a free-text query.
type Intent string

// Intent constants.
const (
	IntentTitle   Intent = "title"
	IntentAuthor  Intent = "author"
	IntentTopic   Intent = "topic"
	IntentISBN    Intent = "isbn"
	IntentGeneral Intent = "general"
)

// Book is a catalog item. Optional strings are empty when absent and
// PublishedAt is zero when unknown.
type Book struct {
	ID                  string
	Title               string
	Author              string
	ISBN                string
	Barcode             string
	Description         string
	Language            string
	Type                ItemType
	PeriodicalFrequency string
	Categories          []string
	PublishedAt         time.Time
	AddedAt             time.Time
	Size                int
	Available           bool
	CoverImage          string
	PDFURL              string
}

// SizeRange is an inclusive size bound.
type SizeRange struct {
	Min float64
	Max float64
}

// SearchParams describes one search. Zero values do not constrain:
// an empty Query lists the catalog, Page 0 is the first page and Limit 0
// takes the default page size.
type SearchParams struct {
	Query string
	// Size accepts the same forms as the HTTP size parameter ("200-400", "300").
	// It is ignored when SizeRange is set.
	Size        string
	SizeRange   *SizeRange
	Categories  []string
	Available   *bool
	Types       []ItemType
	Languages   []string
	Frequencies []string
	Page        int
	Limit       int
	// SortBy is one of relevance, title, author, date, added or size.
	// Empty means relevance; unknown values fall back to added descending.
	SortBy    string
	SortOrder string
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

// Insights explains how a free-text query was interpreted.
type Insights struct {
	OriginalQuery  string
	ProcessedQuery string
	CorrectedTerms []string
	Intent         Intent
	Suggestions    []string
	ExpandedTerms  []string
}

// SearchResult is one page of matches.
type SearchResult struct {
	Books      []Book
	Pagination Pagination
	// Insights is nil when no query was given.
	Insights *Insights
}

// Ranking holds the policy bonuses of the relevance score.
type Ranking struct {
	FreshnessWindow time.Duration
	FreshnessBonus  float64
	AvailableBonus  float64
	ResourceBonus   float64
}
