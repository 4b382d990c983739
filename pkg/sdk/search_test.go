package shelf

import (
	"context"
	"math"
	"testing"
	"time"
)

func catalogBooks() []Book {
	added := time.Now().UTC().Add(-48 * time.Hour)
	return []Book{
		{
			ID: "b1", Title: "Go Programming", Author: "Alan Donovan",
			Categories: []string{"Programming"}, AddedAt: added, Size: 380, Available: true,
		},
		{
			ID: "b2", Title: "Cooking Basics", Author: "Julia Child",
			Categories: []string{"Cooking"}, AddedAt: added.Add(-time.Hour), Size: 200, Available: true,
		},
		{
			ID: "b3", Title: "Practical Programming", Author: "Paul Gries", Type: TypeDocument,
			Categories: []string{"Programming", "Education"}, AddedAt: added.Add(-2 * time.Hour), Size: 400,
		},
	}
}

func newMemoryClient(t *testing.T, opts ...Option) *Client {
	t.Helper()
	opts = append([]Option{WithItems(catalogBooks()...)}, opts...)
	c, err := New(context.Background(), opts...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(c.Close)
	return c
}

func TestSearch_Memory_CorrectsAndRanks(t *testing.T) {
	c := newMemoryClient(t)

	res, err := c.Search(context.Background(), SearchParams{Query: "programing"})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if res.Insights == nil {
		t.Fatal("expected insights for a text query")
	}
	if res.Insights.ProcessedQuery != "programming" {
		t.Errorf("processed = %q, want programming", res.Insights.ProcessedQuery)
	}
	if len(res.Insights.CorrectedTerms) != 1 {
		t.Errorf("corrections = %v", res.Insights.CorrectedTerms)
	}
	if res.Pagination.TotalItems != 2 || len(res.Books) != 2 {
		t.Fatalf("total = %d, books = %d, want 2", res.Pagination.TotalItems, len(res.Books))
	}
	for _, b := range res.Books {
		if b.ID == "b2" {
			t.Error("unrelated book must not match")
		}
	}
	// b1 is available and fresher; both titles match the expanded term.
	if res.Books[0].ID != "b1" {
		t.Errorf("first = %q, want b1", res.Books[0].ID)
	}
}

func TestSearch_Memory_NoQueryListsByAdded(t *testing.T) {
	c := newMemoryClient(t)

	res, err := c.Search(context.Background(), SearchParams{})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if res.Insights != nil {
		t.Error("insights must be nil without a query")
	}
	want := []string{"b1", "b2", "b3"}
	if len(res.Books) != len(want) {
		t.Fatalf("books = %d, want %d", len(res.Books), len(want))
	}
	for i, id := range want {
		if res.Books[i].ID != id {
			t.Errorf("books[%d] = %q, want %q", i, res.Books[i].ID, id)
		}
	}
}

func TestSearch_Memory_Filters(t *testing.T) {
	c := newMemoryClient(t)
	avail := true

	tests := []struct {
		name   string
		params SearchParams
		want   []string
	}{
		{"categories", SearchParams{Categories: []string{"Programming"}, SortBy: "title", SortOrder: "asc"}, []string{"b1", "b3"}},
		{"available", SearchParams{Available: &avail, SortBy: "size", SortOrder: "asc"}, []string{"b2", "b1"}},
		{"type", SearchParams{Types: []ItemType{TypeDocument}}, []string{"b3"}},
		{"size window", SearchParams{Size: "390"}, []string{"b1", "b3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := c.Search(context.Background(), tt.params)
			if err != nil {
				t.Fatalf("Search: %v", err)
			}
			if len(res.Books) != len(tt.want) {
				t.Fatalf("books = %d, want %d", len(res.Books), len(tt.want))
			}
			for i, id := range tt.want {
				if res.Books[i].ID != id {
					t.Errorf("books[%d] = %q, want %q", i, res.Books[i].ID, id)
				}
			}
		})
	}
}

func TestSearch_Memory_Paging(t *testing.T) {
	c := newMemoryClient(t, WithLimits(2, 2))

	res, err := c.Search(context.Background(), SearchParams{Page: 2})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	p := res.Pagination
	if p.TotalPages != 2 || p.ItemsPerPage != 2 || p.HasNextPage || !p.HasPrevPage {
		t.Errorf("pagination = %+v", p)
	}
	if len(res.Books) != 1 || res.Books[0].ID != "b3" {
		t.Errorf("books = %+v", res.Books)
	}

	res, err = c.Search(context.Background(), SearchParams{Page: 9})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(res.Books) != 0 || res.Books == nil {
		t.Errorf("expected an empty non-nil page, got %+v", res.Books)
	}
}

func TestSearch_Memory_HugePage(t *testing.T) {
	c := newMemoryClient(t)

	res, err := c.Search(context.Background(), SearchParams{Page: math.MaxInt})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(res.Books) != 0 {
		t.Errorf("books = %+v, want none past the last page", res.Books)
	}
	if res.Pagination.TotalItems != 3 || res.Pagination.HasNextPage {
		t.Errorf("pagination = %+v", res.Pagination)
	}
}

func TestSearch_Memory_WithBreaker(t *testing.T) {
	c := newMemoryClient(t, WithBreaker(BreakerSettings{MinRequests: 1, FailureRatio: 0.5, OpenTimeout: time.Second}))

	if _, err := c.Search(context.Background(), SearchParams{Query: "go"}); err != nil {
		t.Fatalf("Search: %v", err)
	}
	h := c.Health(context.Background())
	if h.Status != "ok" || h.Checks["breaker"] != "ok" {
		t.Errorf("health = %+v", h)
	}
}
