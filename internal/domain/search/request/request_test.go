package request

import (
	"math"
	"strings"
	"testing"
)

func TestNew_Defaults(t *testing.T) {
	r := New("  go  ", Filters{}, 0, 0, Sort{}, DefaultLimits())

	if r.Query() != "go" {
		t.Errorf("Query() = %q", r.Query())
	}
	if !r.HasQuery() {
		t.Error("HasQuery() = false")
	}
	if r.Page() != 1 {
		t.Errorf("Page() = %d, want 1", r.Page())
	}
	if r.Limit() != DefaultLimit {
		t.Errorf("Limit() = %d, want %d", r.Limit(), DefaultLimit)
	}
	if !r.Sort().IsRelevance() {
		t.Errorf("Sort() = %v, want relevance", r.Sort())
	}
	if r.Offset() != 0 {
		t.Errorf("Offset() = %d", r.Offset())
	}
}

func TestNew_LimitClamping(t *testing.T) {
	tests := []struct {
		name  string
		limit int
		want  int
	}{
		{"zero takes default", 0, 20},
		{"negative becomes one", -5, 1},
		{"in range", 35, 35},
		{"max", 50, 50},
		{"above max", 500, 50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := New("", Filters{}, 1, tt.limit, Sort{}, DefaultLimits())
			if r.Limit() != tt.want {
				t.Errorf("Limit() = %d, want %d", r.Limit(), tt.want)
			}
		})
	}
}

func TestNew_CustomLimits(t *testing.T) {
	r := New("", Filters{}, 1, 0, Sort{}, Limits{Default: 10, Max: 25})
	if r.Limit() != 10 {
		t.Errorf("Limit() = %d, want 10", r.Limit())
	}
	r = New("", Filters{}, 1, 40, Sort{}, Limits{Default: 10, Max: 25})
	if r.Limit() != 25 {
		t.Errorf("Limit() = %d, want 25", r.Limit())
	}
	// default above max collapses to the max
	r = New("", Filters{}, 1, 0, Sort{}, Limits{Default: 100, Max: 5})
	if r.Limit() != 5 {
		t.Errorf("Limit() = %d, want 5", r.Limit())
	}
}

func TestNew_PageAndOffset(t *testing.T) {
	r := New("x", Filters{}, -3, 10, Sort{}, DefaultLimits())
	if r.Page() != 1 {
		t.Errorf("Page() = %d, want 1", r.Page())
	}

	r = New("x", Filters{}, 3, 10, Sort{}, DefaultLimits())
	if r.Offset() != 20 {
		t.Errorf("Offset() = %d, want 20", r.Offset())
	}
}

func TestNew_HugePageDoesNotOverflowOffset(t *testing.T) {
	tests := []struct {
		name  string
		page  int
		limit int
	}{
		{"max int", math.MaxInt, 20},
		{"just past the ceiling", math.MaxInt/20 + 2, 20},
		{"limit one", math.MaxInt, 1},
		{"max limit", math.MaxInt, MaxLimit},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := New("", Filters{}, tt.page, tt.limit, Sort{}, DefaultLimits())
			if r.Offset() < 0 {
				t.Fatalf("Offset() = %d, must not be negative", r.Offset())
			}
			if r.Page() < 2 {
				t.Errorf("Page() = %d, want a page past the first", r.Page())
			}
		})
	}
}

func TestNew_TruncatesLongQuery(t *testing.T) {
	long := strings.Repeat("é", MaxQueryLength+10)
	r := New(long, Filters{}, 1, 1, Sort{}, DefaultLimits())
	if got := len([]rune(r.Query())); got != MaxQueryLength {
		t.Errorf("query length = %d runes, want %d", got, MaxQueryLength)
	}
}

func TestNew_RelevanceWithoutQuery(t *testing.T) {
	r := New("   ", Filters{}, 1, 10, ParseSort("relevance", "asc"), DefaultLimits())
	if r.HasQuery() {
		t.Fatal("blank query should not count as a query")
	}
	if r.Sort().Field() != SortAdded || !r.Sort().Descending() {
		t.Errorf("Sort() = %v, want added desc", r.Sort())
	}
}

func TestFilters_IsEmpty(t *testing.T) {
	if !(Filters{}).IsEmpty() {
		t.Error("zero Filters should be empty")
	}
	yes := true
	if (Filters{Available: &yes}).IsEmpty() {
		t.Error("Filters with availability should not be empty")
	}
	if (Filters{Languages: []string{"en"}}).IsEmpty() {
		t.Error("Filters with languages should not be empty")
	}
}
