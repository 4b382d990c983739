package chi

import (
	"time"

	"github.com/kailas-cloud/shelf/internal/domain/catalog"
	"github.com/kailas-cloud/shelf/internal/domain/search/request"
	"github.com/kailas-cloud/shelf/internal/domain/search/result"
)

// ErrorResponse is the body of every non-2xx reply.
type ErrorResponse struct {
	Error string `json:"error"`
}

// BookResponse is one catalog item on the wire.
type BookResponse struct {
	ID                  string   `json:"id"`
	Title               string   `json:"title"`
	Author              string   `json:"author"`
	ISBN                *string  `json:"isbn"`
	Barcode             *string  `json:"barcode"`
	Description         *string  `json:"description"`
	Language            *string  `json:"language"`
	Type                string   `json:"type"`
	PeriodicalFrequency *string  `json:"periodicalFrequency"`
	Categories          []string `json:"categories"`
	PublishedAt         *string  `json:"publishedAt"`
	AddedAt             *string  `json:"addedAt"`
	Size                int      `json:"size"`
	Available           bool     `json:"available"`
	CoverImage          *string  `json:"coverImage"`
	PDFURL              *string  `json:"pdfUrl"`
}

// PaginationResponse is the page envelope.
type PaginationResponse struct {
	CurrentPage  int  `json:"currentPage"`
	TotalPages   int  `json:"totalPages"`
	TotalItems   int  `json:"totalItems"`
	ItemsPerPage int  `json:"itemsPerPage"`
	HasNextPage  bool `json:"hasNextPage"`
	HasPrevPage  bool `json:"hasPrevPage"`
}

// SizeFilterResponse echoes the effective size range.
type SizeFilterResponse struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// AppliedFilters echoes the normalized request parameters.
type AppliedFilters struct {
	Query               *string             `json:"q,omitempty"`
	Size                *SizeFilterResponse `json:"size,omitempty"`
	Categories          []string            `json:"categories,omitempty"`
	Available           *bool               `json:"available,omitempty"`
	Type                []string            `json:"type,omitempty"`
	Language            []string            `json:"language,omitempty"`
	PeriodicalFrequency []string            `json:"periodicalFrequency,omitempty"`
	SortBy              string              `json:"sortBy"`
	SortOrder           string              `json:"sortOrder"`
}

// SearchInsightsResponse explains how the query was interpreted.
type SearchInsightsResponse struct {
	OriginalQuery  string   `json:"originalQuery"`
	ProcessedQuery string   `json:"processedQuery"`
	CorrectedTerms []string `json:"correctedTerms"`
	DetectedIntent string   `json:"detectedIntent"`
	Suggestions    []string `json:"suggestions"`
	ExpandedTerms  []string `json:"expandedTerms"`
}

// SearchResponse is the body of GET /search.
type SearchResponse struct {
	Books          []BookResponse          `json:"books"`
	Pagination     PaginationResponse      `json:"pagination"`
	AppliedFilters AppliedFilters          `json:"appliedFilters"`
	ResultsCount   int                     `json:"resultsCount"`
	SearchInsights *SearchInsightsResponse `json:"searchInsights"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

func searchResponseToDTO(resp *result.Response, req *request.Request) SearchResponse {
	books := make([]BookResponse, len(resp.Items))
	for i := range resp.Items {
		books[i] = bookToDTO(&resp.Items[i])
	}

	p := resp.Pagination
	out := SearchResponse{
		Books: books,
		Pagination: PaginationResponse{
			CurrentPage:  p.CurrentPage,
			TotalPages:   p.TotalPages,
			TotalItems:   p.TotalItems,
			ItemsPerPage: p.ItemsPerPage,
			HasNextPage:  p.HasNextPage,
			HasPrevPage:  p.HasPrevPage,
		},
		AppliedFilters: appliedFiltersToDTO(req),
		ResultsCount:   len(books),
	}

	if in := resp.Insights; in != nil {
		out.SearchInsights = &SearchInsightsResponse{
			OriginalQuery:  in.OriginalQuery,
			ProcessedQuery: in.ProcessedQuery,
			CorrectedTerms: nonNil(in.CorrectedTerms),
			DetectedIntent: string(in.Intent),
			Suggestions:    nonNil(in.Suggestions),
			ExpandedTerms:  nonNil(in.ExpandedTerms),
		}
	}
	return out
}

func bookToDTO(it *catalog.Item) BookResponse {
	return BookResponse{
		ID:                  it.ID,
		Title:               it.Title,
		Author:              it.Author,
		ISBN:                optString(it.ISBN),
		Barcode:             optString(it.Barcode),
		Description:         optString(it.Description),
		Language:            optString(it.Language),
		Type:                string(it.Type),
		PeriodicalFrequency: optString(it.PeriodicalFrequency),
		Categories:          nonNil(it.Categories),
		PublishedAt:         optTime(it.PublishedAt),
		AddedAt:             optTime(it.AddedAt),
		Size:                it.Size,
		Available:           it.Available,
		CoverImage:          optString(it.CoverImage),
		PDFURL:              optString(it.PDFURL),
	}
}

func appliedFiltersToDTO(req *request.Request) AppliedFilters {
	f := req.Filters()
	out := AppliedFilters{
		Categories:          f.Categories,
		Available:           f.Available,
		Language:            f.Languages,
		PeriodicalFrequency: f.Frequencies,
		SortBy:              string(req.Sort().Field()),
		SortOrder:           string(req.Sort().Direction()),
	}
	if req.HasQuery() {
		q := req.Query()
		out.Query = &q
	}
	if f.Size != nil {
		out.Size = &SizeFilterResponse{Min: f.Size.Min, Max: f.Size.Max}
	}
	for _, t := range f.Types {
		out.Type = append(out.Type, string(t))
	}
	return out
}

func optString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func optTime(t time.Time) *string {
	if t.IsZero() {
		return nil
	}
	s := t.UTC().Format(time.RFC3339)
	return &s
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
