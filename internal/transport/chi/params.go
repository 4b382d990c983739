package chi

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/oapi-codegen/runtime"

	"github.com/kailas-cloud/shelf/internal/domain/catalog"
	"github.com/kailas-cloud/shelf/internal/domain/search/request"
)

// SearchParams are the raw GET /search query parameters.
type SearchParams struct {
	Q                   *string
	Size                *string
	Available           *string
	Type                *string
	Language            *string
	PeriodicalFrequency *string
	Page                *int
	Limit               *int
	SortBy              *string
	SortOrder           *string
	// Categories is read from the raw query string: '+' separates names.
	Categories []string
}

// bindSearchParams binds query parameters. A parameter that fails to bind
// is left unset so it falls back to its default.
func bindSearchParams(r *http.Request) SearchParams {
	q := r.URL.Query()
	return SearchParams{
		Q:                   bindOptional[string](q, "q"),
		Size:                bindOptional[string](q, "size"),
		Available:           bindOptional[string](q, "available"),
		Type:                bindOptional[string](q, "type"),
		Language:            bindOptional[string](q, "language"),
		PeriodicalFrequency: bindOptional[string](q, "periodicalFrequency"),
		Page:                bindOptional[int](q, "page"),
		Limit:               bindOptional[int](q, "limit"),
		SortBy:              bindOptional[string](q, "sortBy"),
		SortOrder:           bindOptional[string](q, "sortOrder"),
		Categories:          rawCategories(r.URL.RawQuery),
	}
}

// bindOptional binds a form-style query parameter; nil when absent or malformed.
func bindOptional[T any](q url.Values, name string) *T {
	var v *T
	if err := runtime.BindQueryParameter("form", true, false, name, q, &v); err != nil {
		return nil
	}
	return v
}

// toRequest normalizes the parameters into a search request.
func (p SearchParams) toRequest(lim request.Limits) request.Request {
	var f request.Filters

	if p.Size != nil {
		if sr, ok := request.ParseSize(*p.Size); ok {
			f.Size = &sr
		}
	}
	f.Categories = p.Categories
	if p.Available != nil {
		switch strings.ToLower(strings.TrimSpace(*p.Available)) {
		case "true":
			v := true
			f.Available = &v
		case "false":
			v := false
			f.Available = &v
		}
	}
	if p.Type != nil {
		for _, raw := range splitList(*p.Type) {
			if t, ok := catalog.ParseType(raw); ok {
				f.Types = append(f.Types, t)
			}
		}
	}
	if p.Language != nil {
		f.Languages = splitList(*p.Language)
	}
	if p.PeriodicalFrequency != nil {
		f.Frequencies = splitList(*p.PeriodicalFrequency)
	}

	return request.New(
		deref(p.Q),
		f,
		derefInt(p.Page),
		derefInt(p.Limit),
		request.ParseSort(deref(p.SortBy), deref(p.SortOrder)),
		lim,
	)
}

// rawCategories extracts the categories parameter without form decoding,
// so '+' separates names instead of standing for a space.
func rawCategories(rawQuery string) []string {
	var out []string
	for _, pair := range strings.Split(rawQuery, "&") {
		key, value, _ := strings.Cut(pair, "=")
		if key != "categories" {
			continue
		}
		for _, part := range strings.Split(value, "+") {
			name, err := url.PathUnescape(part)
			if err != nil {
				name = part
			}
			if name = strings.TrimSpace(name); name != "" {
				out = append(out, name)
			}
		}
	}
	return out
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func derefInt(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}
