package chi

import (
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/kailas-cloud/shelf/internal/domain/catalog"
	"github.com/kailas-cloud/shelf/internal/domain/search/request"
)

func parse(t *testing.T, target string) request.Request {
	t.Helper()
	r := httptest.NewRequest(http.MethodGet, target, http.NoBody)
	return bindSearchParams(r).toRequest(request.DefaultLimits())
}

func TestParams_Full(t *testing.T) {
	req := parse(t, "/search?q=go+programming&size=300%20-%20400%20pages&categories=science+fiction%20classics"+
		"&available=false&type=book,scroll,Article&language=en,%20fr&periodicalFrequency=weekly"+
		"&page=3&limit=10&sortBy=title&sortOrder=asc")

	if req.Query() != "go programming" {
		t.Errorf("Query() = %q", req.Query())
	}
	f := req.Filters()
	if f.Size == nil || f.Size.Min != 300 || f.Size.Max != 400 {
		t.Errorf("Size = %+v", f.Size)
	}
	if !reflect.DeepEqual(f.Categories, []string{"science", "fiction classics"}) {
		t.Errorf("Categories = %q", f.Categories)
	}
	if f.Available == nil || *f.Available {
		t.Errorf("Available = %v", f.Available)
	}
	if !reflect.DeepEqual(f.Types, []catalog.ItemType{catalog.Book, catalog.Article}) {
		t.Errorf("Types = %v", f.Types)
	}
	if !reflect.DeepEqual(f.Languages, []string{"en", "fr"}) {
		t.Errorf("Languages = %v", f.Languages)
	}
	if !reflect.DeepEqual(f.Frequencies, []string{"weekly"}) {
		t.Errorf("Frequencies = %v", f.Frequencies)
	}
	if req.Page() != 3 || req.Limit() != 10 || req.Offset() != 20 {
		t.Errorf("page=%d limit=%d offset=%d", req.Page(), req.Limit(), req.Offset())
	}
	if req.Sort().Field() != request.SortTitle || req.Sort().Direction() != request.Asc {
		t.Errorf("Sort = %v %v", req.Sort().Field(), req.Sort().Direction())
	}
}

func TestParams_Defaults(t *testing.T) {
	req := parse(t, "/search")

	if req.HasQuery() {
		t.Error("expected no query")
	}
	if !req.Filters().IsEmpty() {
		t.Errorf("expected empty filters, got %+v", req.Filters())
	}
	if req.Page() != 1 || req.Limit() != request.DefaultLimit {
		t.Errorf("page=%d limit=%d", req.Page(), req.Limit())
	}
	// Relevance without a query resolves to newest first.
	if req.Sort().Field() != request.SortAdded || !req.Sort().Descending() {
		t.Errorf("Sort = %v %v", req.Sort().Field(), req.Sort().Direction())
	}
}

func TestParams_MalformedFallBack(t *testing.T) {
	tests := []struct {
		name   string
		target string
		check  func(t *testing.T, req request.Request)
	}{
		{"page not a number", "/search?page=abc", func(t *testing.T, req request.Request) {
			if req.Page() != 1 {
				t.Errorf("Page() = %d, want 1", req.Page())
			}
		}},
		{"limit too large", "/search?limit=500", func(t *testing.T, req request.Request) {
			if req.Limit() != request.MaxLimit {
				t.Errorf("Limit() = %d, want %d", req.Limit(), request.MaxLimit)
			}
		}},
		{"negative page", "/search?page=-4", func(t *testing.T, req request.Request) {
			if req.Page() != 1 {
				t.Errorf("Page() = %d, want 1", req.Page())
			}
		}},
		{"available maybe", "/search?available=maybe", func(t *testing.T, req request.Request) {
			if req.Filters().Available != nil {
				t.Error("Available should be unset")
			}
		}},
		{"size garbage", "/search?size=huge", func(t *testing.T, req request.Request) {
			if req.Filters().Size != nil {
				t.Error("Size should be unset")
			}
		}},
		{"only invalid types", "/search?type=scroll,tablet", func(t *testing.T, req request.Request) {
			if len(req.Filters().Types) != 0 {
				t.Errorf("Types = %v", req.Filters().Types)
			}
		}},
		{"unknown sortBy", "/search?q=go&sortBy=popularity&sortOrder=asc", func(t *testing.T, req request.Request) {
			if req.Sort().Field() != request.SortAdded || !req.Sort().Descending() {
				t.Errorf("Sort = %v %v", req.Sort().Field(), req.Sort().Direction())
			}
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, parse(t, tt.target))
		})
	}
}

func TestRawCategories(t *testing.T) {
	tests := []struct {
		raw  string
		want []string
	}{
		{"categories=fiction", []string{"fiction"}},
		{"q=x&categories=a+b%2Bc&limit=2", []string{"a", "b+c"}},
		{"categories=computer%20science++history", []string{"computer science", "history"}},
		{"categories=", nil},
		{"q=fiction", nil},
	}
	for _, tt := range tests {
		if got := rawCategories(tt.raw); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("rawCategories(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}
