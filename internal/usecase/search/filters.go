package search

import (
	"fmt"

	"github.com/kailas-cloud/shelf/internal/domain"
	"github.com/kailas-cloud/shelf/internal/domain/catalog"
	"github.com/kailas-cloud/shelf/internal/domain/search/filter"
	"github.com/kailas-cloud/shelf/internal/domain/search/intent"
	"github.com/kailas-cloud/shelf/internal/domain/search/request"
)

// BuildExpression combines the text clause over the expanded terms (should)
// with the structured filters (must).
func BuildExpression(terms []string, in intent.Intent, f request.Filters) (filter.Expression, error) {
	should, err := textClause(terms, in)
	if err != nil {
		return filter.Expression{}, fmt.Errorf("%w: %w", domain.ErrInvalidFilter, err)
	}
	must, err := structuredClause(f)
	if err != nil {
		return filter.Expression{}, fmt.Errorf("%w: %w", domain.ErrInvalidFilter, err)
	}
	expr, err := filter.NewExpression(must, should)
	if err != nil {
		return filter.Expression{}, fmt.Errorf("%w: %w", domain.ErrInvalidFilter, err)
	}
	return expr, nil
}

func textClause(terms []string, in intent.Intent) ([]filter.Condition, error) {
	values := nonEmpty(terms)
	if len(values) == 0 {
		return nil, nil
	}

	var fields []string
	switch in {
	case intent.ISBN:
		codes := make([]string, 0, len(values))
		for _, v := range values {
			if c := catalog.CompactCode(v); c != "" {
				codes = append(codes, c)
			}
		}
		if len(codes) == 0 {
			return nil, nil
		}
		isbn, err := filter.NewCompactContains(catalog.FieldISBN, codes...)
		if err != nil {
			return nil, err
		}
		barcode, err := filter.NewCompactContains(catalog.FieldBarcode, codes...)
		if err != nil {
			return nil, err
		}
		return []filter.Condition{isbn, barcode}, nil
	case intent.Author:
		fields = []string{catalog.FieldAuthor}
	case intent.Title:
		fields = []string{catalog.FieldTitle}
	default:
		fields = []string{catalog.FieldTitle, catalog.FieldAuthor, catalog.FieldDescription}
	}

	out := make([]filter.Condition, 0, len(fields))
	for _, field := range fields {
		c, err := filter.NewContains(field, values...)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

func structuredClause(f request.Filters) ([]filter.Condition, error) {
	var out []filter.Condition
	add := func(c filter.Condition, err error) error {
		if err != nil {
			return err
		}
		out = append(out, c)
		return nil
	}

	if f.Size != nil {
		lo, hi := f.Size.Min, f.Size.Max
		r, err := filter.NewRangeFilter(&lo, &hi)
		if err != nil {
			return nil, err
		}
		if err := add(filter.NewRange(catalog.FieldSize, r)); err != nil {
			return nil, err
		}
	}
	if cats := nonEmpty(f.Categories); len(cats) > 0 {
		if err := add(filter.NewContains(catalog.FieldCategories, cats...)); err != nil {
			return nil, err
		}
	}
	if f.Available != nil {
		if err := add(filter.NewBool(catalog.FieldAvailable, *f.Available)); err != nil {
			return nil, err
		}
	}
	if len(f.Types) > 0 {
		types := make([]string, len(f.Types))
		for i, t := range f.Types {
			types[i] = string(t)
		}
		if err := add(filter.NewIn(catalog.FieldType, types...)); err != nil {
			return nil, err
		}
	}
	if langs := nonEmpty(f.Languages); len(langs) > 0 {
		if err := add(filter.NewIn(catalog.FieldLanguage, langs...)); err != nil {
			return nil, err
		}
	}
	if freqs := nonEmpty(f.Frequencies); len(freqs) > 0 {
		if err := add(filter.NewIn(catalog.FieldFrequency, freqs...)); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func nonEmpty(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}
