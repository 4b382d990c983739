package shelf

import (
	domcat "github.com/kailas-cloud/shelf/internal/domain/catalog"
	"github.com/kailas-cloud/shelf/internal/domain/search/request"
	"github.com/kailas-cloud/shelf/internal/domain/search/result"
)

func toInternalItem(b Book) domcat.Item {
	t := domcat.ItemType(b.Type)
	if parsed, ok := domcat.ParseType(string(b.Type)); ok {
		t = parsed
	} else if b.Type == "" {
		t = domcat.Book
	}
	return domcat.Item{
		ID:                  b.ID,
		Title:               b.Title,
		Author:              b.Author,
		ISBN:                b.ISBN,
		Barcode:             b.Barcode,
		Description:         b.Description,
		Language:            b.Language,
		Type:                t,
		PeriodicalFrequency: b.PeriodicalFrequency,
		Categories:          append([]string(nil), b.Categories...),
		PublishedAt:         b.PublishedAt,
		AddedAt:             b.AddedAt,
		Size:                b.Size,
		Available:           b.Available,
		CoverImage:          b.CoverImage,
		PDFURL:              b.PDFURL,
	}
}

func fromInternalItem(it domcat.Item) Book {
	cats := it.Categories
	if cats == nil {
		cats = []string{}
	}
	return Book{
		ID:                  it.ID,
		Title:               it.Title,
		Author:              it.Author,
		ISBN:                it.ISBN,
		Barcode:             it.Barcode,
		Description:         it.Description,
		Language:            it.Language,
		Type:                ItemType(it.Type),
		PeriodicalFrequency: it.PeriodicalFrequency,
		Categories:          cats,
		PublishedAt:         it.PublishedAt,
		AddedAt:             it.AddedAt,
		Size:                it.Size,
		Available:           it.Available,
		CoverImage:          it.CoverImage,
		PDFURL:              it.PDFURL,
	}
}

// toInternalRequest normalizes params the same way the HTTP surface does.
func toInternalRequest(p SearchParams, lim request.Limits) request.Request {
	var f request.Filters

	switch {
	case p.SizeRange != nil:
		lo, hi := p.SizeRange.Min, p.SizeRange.Max
		if lo > hi {
			lo, hi = hi, lo
		}
		f.Size = &request.SizeRange{Min: lo, Max: hi}
	case p.Size != "":
		if sr, ok := request.ParseSize(p.Size); ok {
			f.Size = &sr
		}
	}
	f.Categories = p.Categories
	f.Available = p.Available
	for _, t := range p.Types {
		if parsed, ok := domcat.ParseType(string(t)); ok {
			f.Types = append(f.Types, parsed)
		}
	}
	f.Languages = p.Languages
	f.Frequencies = p.Frequencies

	return request.New(
		p.Query, f, p.Page, p.Limit,
		request.ParseSort(p.SortBy, p.SortOrder),
		lim,
	)
}

func fromInternalResponse(resp *result.Response) *SearchResult {
	books := make([]Book, len(resp.Items))
	for i, it := range resp.Items {
		books[i] = fromInternalItem(it)
	}

	out := &SearchResult{
		Books: books,
		Pagination: Pagination{
			CurrentPage:  resp.Pagination.CurrentPage,
			TotalPages:   resp.Pagination.TotalPages,
			TotalItems:   resp.Pagination.TotalItems,
			ItemsPerPage: resp.Pagination.ItemsPerPage,
			HasNextPage:  resp.Pagination.HasNextPage,
			HasPrevPage:  resp.Pagination.HasPrevPage,
		},
	}
	if in := resp.Insights; in != nil {
		out.Insights = &Insights{
			OriginalQuery:  in.OriginalQuery,
			ProcessedQuery: in.ProcessedQuery,
			CorrectedTerms: in.CorrectedTerms,
			Intent:         Intent(in.Intent),
			Suggestions:    in.Suggestions,
			ExpandedTerms:  in.ExpandedTerms,
		}
	}
	return out
}
