package request

import (
	"testing"

	"github.com/kailas-cloud/shelf/internal/domain/catalog"
)

func TestParseSort(t *testing.T) {
	tests := []struct {
		by, order string
		field     SortField
		dir       Direction
	}{
		{"", "", SortRelevance, Desc},
		{"relevance", "", SortRelevance, Desc},
		{"title", "asc", SortTitle, Asc},
		{"TITLE", "ASC", SortTitle, Asc},
		{"author", "desc", SortAuthor, Desc},
		{"date", "sideways", SortDate, Desc},
		{"size", "asc", SortSize, Asc},
		{"popularity", "asc", SortAdded, Desc},
	}
	for _, tt := range tests {
		s := ParseSort(tt.by, tt.order)
		if s.Field() != tt.field || s.Direction() != tt.dir {
			t.Errorf("ParseSort(%q, %q) = (%s, %s), want (%s, %s)",
				tt.by, tt.order, s.Field(), s.Direction(), tt.field, tt.dir)
		}
	}
}

func TestSort_ResolveAndStoreOrder(t *testing.T) {
	rel := ParseSort("relevance", "")
	if got := rel.Resolve(true); !got.IsRelevance() {
		t.Errorf("Resolve(true) = %v, want relevance", got)
	}
	if got := rel.Resolve(false); got.Field() != SortAdded {
		t.Errorf("Resolve(false) = %v, want added", got)
	}
	if got := rel.StoreOrder(); got.Field() != SortAdded || !got.Descending() {
		t.Errorf("StoreOrder() = %v, want added desc", got)
	}

	title := ParseSort("title", "asc")
	if got := title.StoreOrder(); got != title {
		t.Errorf("StoreOrder() = %v, want %v", got, title)
	}
}

func TestSort_Column(t *testing.T) {
	tests := map[SortField]string{
		SortRelevance: "",
		SortTitle:     catalog.FieldTitle,
		SortAuthor:    catalog.FieldAuthor,
		SortDate:      catalog.FieldPublishedAt,
		SortAdded:     catalog.FieldAddedAt,
		SortSize:      catalog.FieldSize,
	}
	for f, want := range tests {
		if got := (Sort{field: f, dir: Asc}).Column(); got != want {
			t.Errorf("Column(%s) = %q, want %q", f, got, want)
		}
	}
}
