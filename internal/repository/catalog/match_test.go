package catalog

import (
	"testing"
	"time"

	domcat "github.com/kailas-cloud/shelf/internal/domain/catalog"
	"github.com/kailas-cloud/shelf/internal/domain/search/filter"
	"github.com/kailas-cloud/shelf/internal/domain/search/request"
)

func cond(t *testing.T) func(filter.Condition, error) filter.Condition {
	return func(c filter.Condition, err error) filter.Condition {
		t.Helper()
		if err != nil {
			t.Fatalf("condition: %v", err)
		}
		return c
	}
}

func floatPtr(f float64) *float64 { return &f }

func sampleItem() domcat.Item {
	return domcat.Item{
		ID:          "b1",
		Title:       "The Go Programming Language",
		Author:      "Alan Donovan",
		ISBN:        "978-0-13-419044-0",
		Description: "Idiomatic Go",
		Language:    "en",
		Type:        domcat.Book,
		Categories:  []string{"Programming", "Computer Science"},
		Size:        380,
		Available:   true,
	}
}

func TestMatches(t *testing.T) {
	c := cond(t)
	sizeRange, _ := filter.NewRangeFilter(floatPtr(300), floatPtr(400))
	smallRange, _ := filter.NewRangeFilter(nil, floatPtr(100))

	tests := []struct {
		name   string
		must   []filter.Condition
		should []filter.Condition
		want   bool
	}{
		{"empty", nil, nil, true},
		{"title contains case-insensitive", nil, []filter.Condition{c(filter.NewContains("title", "PROGRAMMING"))}, true},
		{"should any of", nil, []filter.Condition{
			c(filter.NewContains("title", "rust")),
			c(filter.NewContains("author", "donovan")),
		}, true},
		{"should none", nil, []filter.Condition{c(filter.NewContains("title", "rust"))}, false},
		{"compact isbn", nil, []filter.Condition{c(filter.NewCompactContains("isbn", "9780134190440"))}, true},
		{"plain contains misses hyphenated isbn", nil, []filter.Condition{c(filter.NewContains("isbn", "9780134190440"))}, false},
		{"category contains", []filter.Condition{c(filter.NewContains("categories", "computer"))}, nil, true},
		{"type in", []filter.Condition{c(filter.NewIn("type", "ARTICLE", "BOOK"))}, nil, true},
		{"language in exact", []filter.Condition{c(filter.NewIn("language", "EN"))}, nil, false},
		{"available", []filter.Condition{c(filter.NewBool("available", true))}, nil, true},
		{"unavailable", []filter.Condition{c(filter.NewBool("available", false))}, nil, false},
		{"size inside", []filter.Condition{c(filter.NewRange("size", sizeRange))}, nil, true},
		{"size outside", []filter.Condition{c(filter.NewRange("size", smallRange))}, nil, false},
		{"must fails despite should", []filter.Condition{c(filter.NewBool("available", false))},
			[]filter.Condition{c(filter.NewContains("title", "go"))}, false},
		{"unknown field", []filter.Condition{c(filter.NewContains("publisher", "x"))}, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expr, err := filter.NewExpression(tt.must, tt.should)
			if err != nil {
				t.Fatalf("NewExpression: %v", err)
			}
			item := sampleItem()
			if got := Matches(&item, expr); got != tt.want {
				t.Errorf("Matches() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFilter_PreservesOrder(t *testing.T) {
	items := []domcat.Item{
		{ID: "a", Available: true},
		{ID: "b"},
		{ID: "c", Available: true},
	}
	c := cond(t)
	expr, _ := filter.NewExpression([]filter.Condition{c(filter.NewBool("available", true))}, nil)

	got := Filter(items, expr)
	if len(got) != 2 || got[0].ID != "a" || got[1].ID != "c" {
		t.Errorf("Filter() = %+v", got)
	}
}

func TestPage_OrderAndWindow(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	items := []domcat.Item{
		{ID: "c", Title: "beta", AddedAt: base},
		{ID: "a", Title: "Alpha", AddedAt: base.Add(time.Hour)},
		{ID: "b", Title: "beta", AddedAt: base},
	}

	got := Page(append([]domcat.Item(nil), items...), request.ParseSort("title", "asc"), 0, 10)
	if ids := idsOf(got); ids != "a,b,c" {
		t.Errorf("title asc = %s, want a,b,c", ids)
	}

	got = Page(append([]domcat.Item(nil), items...), request.ParseSort("added", "desc"), 1, 2)
	if ids := idsOf(got); ids != "b,c" {
		t.Errorf("added desc window = %s, want b,c", ids)
	}

	got = Page(append([]domcat.Item(nil), items...), request.ParseSort("added", "desc"), 5, 2)
	if got == nil || len(got) != 0 {
		t.Errorf("window past end = %v, want empty", got)
	}
}

func TestCategoryIndex(t *testing.T) {
	items := []domcat.Item{
		{ID: "a", Categories: []string{"Fiction"}},
		{ID: "b"},
		{ID: "c", Categories: []string{"History", "Science"}},
	}
	got := CategoryIndex(items, []string{"a", "b", "c"})
	if len(got) != 2 || len(got["c"]) != 2 {
		t.Errorf("CategoryIndex() = %v", got)
	}
	got["a"][0] = "changed"
	if items[0].Categories[0] != "Fiction" {
		t.Error("CategoryIndex must not alias item categories")
	}
}

func idsOf(items []domcat.Item) string {
	out := ""
	for i, it := range items {
		if i > 0 {
			out += ","
		}
		out += it.ID
	}
	return out
}
