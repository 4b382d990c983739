package search

import (
	"testing"
	"time"

	"github.com/kailas-cloud/shelf/internal/domain/catalog"
	"github.com/kailas-cloud/shelf/internal/domain/search/request"
	"github.com/kailas-cloud/shelf/internal/domain/search/result"
)

func ids(items []catalog.Item) []string {
	out := make([]string, len(items))
	for i := range items {
		out[i] = items[i].ID
	}
	return out
}

func equalIDs(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestSortItems_TitleCollation(t *testing.T) {
	items := []catalog.Item{
		{ID: "1", Title: "banana"},
		{ID: "2", Title: "Apple"},
		{ID: "3", Title: "cherry"},
		{ID: "4", Title: "Éclair"},
	}
	SortItems(items, request.ParseSort("title", "asc"))
	if got, want := ids(items), []string{"2", "1", "3", "4"}; !equalIDs(got, want) {
		t.Errorf("order = %v, want %v", got, want)
	}

	SortItems(items, request.ParseSort("title", "desc"))
	if got, want := ids(items), []string{"4", "3", "1", "2"}; !equalIDs(got, want) {
		t.Errorf("order = %v, want %v", got, want)
	}
}

func TestSortItems_SizeStableOnTies(t *testing.T) {
	items := []catalog.Item{
		{ID: "a", Size: 200},
		{ID: "b", Size: 100},
		{ID: "c", Size: 200},
		{ID: "d", Size: 100},
	}
	SortItems(items, request.ParseSort("size", "asc"))
	if got, want := ids(items), []string{"b", "d", "a", "c"}; !equalIDs(got, want) {
		t.Errorf("order = %v, want %v", got, want)
	}
}

func TestSortItems_Dates(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	items := []catalog.Item{
		{ID: "old", PublishedAt: base, AddedAt: base.Add(48 * time.Hour)},
		{ID: "new", PublishedAt: base.AddDate(1, 0, 0), AddedAt: base},
		{ID: "unknown"},
	}

	SortItems(items, request.ParseSort("date", "desc"))
	if got, want := ids(items), []string{"new", "old", "unknown"}; !equalIDs(got, want) {
		t.Errorf("date desc = %v, want %v", got, want)
	}

	SortItems(items, request.ParseSort("added", "asc"))
	if got, want := ids(items), []string{"unknown", "new", "old"}; !equalIDs(got, want) {
		t.Errorf("added asc = %v, want %v", got, want)
	}
}

func TestRankByScore_Stable(t *testing.T) {
	scored := []result.Scored{
		{Item: catalog.Item{ID: "a"}, Score: 10},
		{Item: catalog.Item{ID: "b"}, Score: 30},
		{Item: catalog.Item{ID: "c"}, Score: 10},
		{Item: catalog.Item{ID: "d"}, Score: 30},
	}
	rankByScore(scored)

	got := make([]string, len(scored))
	for i := range scored {
		got[i] = scored[i].Item.ID
	}
	if want := []string{"b", "d", "a", "c"}; !equalIDs(got, want) {
		t.Errorf("order = %v, want %v", got, want)
	}
}
