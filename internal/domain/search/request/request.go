package request

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/kailas-cloud/shelf/internal/domain/catalog"
)

// Search parameter limits.
const (
	// MaxQueryLength is the maximum query length in runes; longer queries are truncated.
	MaxQueryLength = 512
	DefaultLimit   = 20
	MaxLimit       = 50
)

// Limits bounds the page size.
type Limits struct {
	Default int
	Max     int
}

// DefaultLimits returns the stock page size bounds.
func DefaultLimits() Limits {
	return Limits{Default: DefaultLimit, Max: MaxLimit}
}

// SizeRange is an inclusive size bound in pages or units.
type SizeRange struct {
	Min float64
	Max float64
}

// Filters holds the structured constraints of a search. Nil or empty fields
// do not constrain.
type Filters struct {
	Size        *SizeRange
	Categories  []string
	Available   *bool
	Types       []catalog.ItemType
	Languages   []string
	Frequencies []string
}

// IsEmpty reports whether no structured filter is set.
func (f Filters) IsEmpty() bool {
	return f.Size == nil && len(f.Categories) == 0 && f.Available == nil &&
		len(f.Types) == 0 && len(f.Languages) == 0 && len(f.Frequencies) == 0
}

// Request is a normalized search query. It never fails to build: malformed
// inputs fall back to defaults.
type Request struct {
	query   string
	filters Filters
	page    int
	limit   int
	sort    Sort
}

// New normalizes search parameters.
// page < 1 becomes 1 and pages beyond MaxInt/limit are clamped so Offset
// never overflows. limit 0 takes the default, negative limits become 1
// and limits above the maximum are clamped.
func New(query string, filters Filters, page, limit int, s Sort, lim Limits) Request {
	if lim.Max <= 0 {
		lim.Max = MaxLimit
	}
	if lim.Default <= 0 || lim.Default > lim.Max {
		lim.Default = min(DefaultLimit, lim.Max)
	}

	query = strings.TrimSpace(query)
	if utf8.RuneCountInString(query) > MaxQueryLength {
		query = strings.TrimSpace(string([]rune(query)[:MaxQueryLength]))
	}
	if page < 1 {
		page = 1
	}
	switch {
	case limit == 0:
		limit = lim.Default
	case limit < 1:
		limit = 1
	case limit > lim.Max:
		limit = lim.Max
	}
	if maxPage := math.MaxInt/limit + 1; page > maxPage {
		page = maxPage
	}
	if s.field == "" {
		s = Sort{field: SortRelevance, dir: Desc}
	}

	return Request{
		query:   query,
		filters: filters,
		page:    page,
		limit:   limit,
		sort:    s.Resolve(query != ""),
	}
}

// Query returns the trimmed search text; empty when no text was given.
func (r *Request) Query() string { return r.query }

// HasQuery reports whether free text was supplied.
func (r *Request) HasQuery() bool { return r.query != "" }

// Filters returns the structured filters.
func (r *Request) Filters() Filters { return r.filters }

// Page returns the 1-based page number.
func (r *Request) Page() int { return r.page }

// Limit returns the page size.
func (r *Request) Limit() int { return r.limit }

// Offset returns the number of items skipped before the page.
func (r *Request) Offset() int { return (r.page - 1) * r.limit }

// Sort returns the effective ordering.
func (r *Request) Sort() Sort { return r.sort }
