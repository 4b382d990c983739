package request

import (
	"strings"

	"github.com/kailas-cloud/shelf/internal/domain/catalog"
)

// SortField names a result ordering.
type SortField string

// Sort fields.
const (
	SortRelevance SortField = "relevance"
	SortTitle     SortField = "title"
	SortAuthor    SortField = "author"
	// SortDate orders by publication date.
	SortDate  SortField = "date"
	SortAdded SortField = "added"
	SortSize  SortField = "size"
)

// IsValid checks if the field is one of the supported values.
func (f SortField) IsValid() bool {
	switch f {
	case SortRelevance, SortTitle, SortAuthor, SortDate, SortAdded, SortSize:
		return true
	}
	return false
}

// Direction is the sort direction.
type Direction string

// Sort directions.
const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// Sort is a field plus direction.
type Sort struct {
	field SortField
	dir   Direction
}

// ParseSort normalizes raw sort parameters. An empty field means relevance,
// an unknown field falls back to added-date descending and an unknown
// direction to descending.
func ParseSort(by, order string) Sort {
	by = strings.ToLower(strings.TrimSpace(by))
	dir := Direction(strings.ToLower(strings.TrimSpace(order)))
	if dir != Asc {
		dir = Desc
	}

	field := SortField(by)
	switch {
	case by == "":
		field = SortRelevance
	case !field.IsValid():
		return Sort{field: SortAdded, dir: Desc}
	}
	return Sort{field: field, dir: dir}
}

// Field returns the sort field.
func (s Sort) Field() SortField { return s.field }

// Direction returns the sort direction.
func (s Sort) Direction() Direction { return s.dir }

// Descending reports whether larger values come first.
func (s Sort) Descending() bool { return s.dir != Asc }

// IsRelevance reports whether results are ranked by score.
func (s Sort) IsRelevance() bool { return s.field == SortRelevance }

// Resolve replaces relevance ordering with added-date descending when there
// is no query to score against.
func (s Sort) Resolve(hasQuery bool) Sort {
	if s.field == SortRelevance && !hasQuery {
		return Sort{field: SortAdded, dir: Desc}
	}
	return s
}

// StoreOrder is the ordering the store applies before paging. Relevance is
// computed after fetch, so the store pages by added-date descending.
func (s Sort) StoreOrder() Sort {
	if s.field == SortRelevance {
		return Sort{field: SortAdded, dir: Desc}
	}
	return s
}

// Column returns the catalog field the sort compares; empty for relevance.
func (s Sort) Column() string {
	switch s.field {
	case SortTitle:
		return catalog.FieldTitle
	case SortAuthor:
		return catalog.FieldAuthor
	case SortDate:
		return catalog.FieldPublishedAt
	case SortAdded:
		return catalog.FieldAddedAt
	case SortSize:
		return catalog.FieldSize
	default:
		return ""
	}
}
