package search

import (
	"errors"
	"slices"
	"testing"

	"github.com/kailas-cloud/shelf/internal/domain"
	"github.com/kailas-cloud/shelf/internal/domain/catalog"
	"github.com/kailas-cloud/shelf/internal/domain/search/filter"
	"github.com/kailas-cloud/shelf/internal/domain/search/intent"
	"github.com/kailas-cloud/shelf/internal/domain/search/request"
)

func keys(conds []filter.Condition) []string {
	out := make([]string, len(conds))
	for i, c := range conds {
		out[i] = c.Key()
	}
	return out
}

func TestBuildExpression_TextTargeting(t *testing.T) {
	tests := []struct {
		in     intent.Intent
		fields []string
		op     filter.Op
	}{
		{intent.General, []string{catalog.FieldTitle, catalog.FieldAuthor, catalog.FieldDescription}, filter.Contains},
		{intent.Topic, []string{catalog.FieldTitle, catalog.FieldAuthor, catalog.FieldDescription}, filter.Contains},
		{intent.Title, []string{catalog.FieldTitle}, filter.Contains},
		{intent.Author, []string{catalog.FieldAuthor}, filter.Contains},
		{intent.ISBN, []string{catalog.FieldISBN, catalog.FieldBarcode}, filter.CompactContains},
	}
	for _, tt := range tests {
		t.Run(string(tt.in), func(t *testing.T) {
			expr, err := BuildExpression([]string{"978-0-13-468599-1", "x"}, tt.in, request.Filters{})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(expr.Must()) != 0 {
				t.Errorf("Must() = %v, want none", expr.Must())
			}
			if got := keys(expr.Should()); !slices.Equal(got, tt.fields) {
				t.Errorf("should fields = %v, want %v", got, tt.fields)
			}
			for _, c := range expr.Should() {
				if c.Op() != tt.op {
					t.Errorf("op = %v, want %v", c.Op(), tt.op)
				}
			}
		})
	}
}

func TestBuildExpression_ISBNCompactsTerms(t *testing.T) {
	expr, err := BuildExpression([]string{"978-0-13-468599-1"}, intent.ISBN, request.Filters{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, c := range expr.Should() {
		if !slices.Equal(c.Values(), []string{"9780134685991"}) {
			t.Errorf("values = %v", c.Values())
		}
	}
}

func TestBuildExpression_StructuredFilters(t *testing.T) {
	yes := true
	f := request.Filters{
		Size:        &request.SizeRange{Min: 300, Max: 400},
		Categories:  []string{"Science Fiction", ""},
		Available:   &yes,
		Types:       []catalog.ItemType{catalog.Book, catalog.Article},
		Languages:   []string{"en"},
		Frequencies: []string{"MONTHLY"},
	}
	expr, err := BuildExpression(nil, intent.General, f)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(expr.Should()) != 0 {
		t.Errorf("Should() = %v, want none without terms", expr.Should())
	}

	want := []string{
		catalog.FieldSize, catalog.FieldCategories, catalog.FieldAvailable,
		catalog.FieldType, catalog.FieldLanguage, catalog.FieldFrequency,
	}
	if got := keys(expr.Must()); !slices.Equal(got, want) {
		t.Fatalf("must fields = %v, want %v", got, want)
	}

	size := expr.Must()[0]
	if size.Op() != filter.Between || *size.Range().GTE() != 300 || *size.Range().LTE() != 400 {
		t.Errorf("unexpected size condition: %v %v", size.Op(), size.Range())
	}
	if cats := expr.Must()[1]; !slices.Equal(cats.Values(), []string{"Science Fiction"}) {
		t.Errorf("categories = %v", cats.Values())
	}
	if avail := expr.Must()[2]; avail.Op() != filter.Bool || !avail.Flag() {
		t.Errorf("unexpected availability condition")
	}
	if types := expr.Must()[3]; !slices.Equal(types.Values(), []string{"BOOK", "ARTICLE"}) {
		t.Errorf("types = %v", types.Values())
	}
}

func TestBuildExpression_Empty(t *testing.T) {
	expr, err := BuildExpression(nil, intent.General, request.Filters{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !expr.IsEmpty() {
		t.Error("expected empty expression")
	}
}

func TestBuildExpression_InvalidRange(t *testing.T) {
	f := request.Filters{Size: &request.SizeRange{Min: 10, Max: 1}}
	_, err := BuildExpression(nil, intent.General, f)
	if !errors.Is(err, domain.ErrInvalidFilter) {
		t.Fatalf("expected ErrInvalidFilter, got %v", err)
	}
}
