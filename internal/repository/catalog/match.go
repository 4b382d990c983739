// Package catalog holds the store-neutral pieces of the catalog adapters:
// in-process filter evaluation, paging and the store decorators.
package catalog

import (
	"strings"

	domcat "github.com/kailas-cloud/shelf/internal/domain/catalog"
	"github.com/kailas-cloud/shelf/internal/domain/search/filter"
)

// Matches evaluates expr against item: all must conditions and, when
// present, at least one should condition.
func Matches(item *domcat.Item, expr filter.Expression) bool {
	for _, c := range expr.Must() {
		if !matchCondition(item, c) {
			return false
		}
	}
	should := expr.Should()
	if len(should) == 0 {
		return true
	}
	for _, c := range should {
		if matchCondition(item, c) {
			return true
		}
	}
	return false
}

func matchCondition(item *domcat.Item, c filter.Condition) bool {
	switch c.Op() {
	case filter.Contains:
		return containsAny(textValues(item, c.Key()), c.Values(), false)
	case filter.CompactContains:
		return containsAny(textValues(item, c.Key()), c.Values(), true)
	case filter.In:
		for _, v := range textValues(item, c.Key()) {
			for _, want := range c.Values() {
				if v == want {
					return true
				}
			}
		}
		return false
	case filter.Bool:
		return c.Key() == domcat.FieldAvailable && item.Available == c.Flag()
	case filter.Between:
		return c.Key() == domcat.FieldSize && c.Range() != nil && c.Range().Contains(float64(item.Size))
	default:
		return false
	}
}

func containsAny(fields, values []string, compact bool) bool {
	for _, f := range fields {
		if compact {
			f = domcat.CompactCode(f)
		}
		f = strings.ToLower(f)
		for _, v := range values {
			if strings.Contains(f, strings.ToLower(v)) {
				return true
			}
		}
	}
	return false
}

// textValues returns the string values of a field; categories yield one value per name.
func textValues(item *domcat.Item, field string) []string {
	switch field {
	case domcat.FieldID:
		return []string{item.ID}
	case domcat.FieldTitle:
		return []string{item.Title}
	case domcat.FieldAuthor:
		return []string{item.Author}
	case domcat.FieldISBN:
		return []string{item.ISBN}
	case domcat.FieldBarcode:
		return []string{item.Barcode}
	case domcat.FieldDescription:
		return []string{item.Description}
	case domcat.FieldLanguage:
		return []string{item.Language}
	case domcat.FieldType:
		return []string{string(item.Type)}
	case domcat.FieldFrequency:
		return []string{item.PeriodicalFrequency}
	case domcat.FieldCategories:
		return item.Categories
	default:
		return nil
	}
}
