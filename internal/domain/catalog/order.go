package catalog

import (
	"cmp"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// NewCollator returns the collator used for locale-aware title and author
// ordering. Collators are not safe for concurrent use; create one per sort.
func NewCollator() *collate.Collator {
	return collate.New(language.English)
}

// Compare orders a and b by field. Strings use col, dates and sizes compare
// numerically and unknown fields fall back to added date. Zero dates sort first.
func Compare(a, b *Item, field string, col *collate.Collator) int {
	switch field {
	case FieldTitle:
		return col.CompareString(a.Title, b.Title)
	case FieldAuthor:
		return col.CompareString(a.Author, b.Author)
	case FieldPublishedAt:
		return a.PublishedAt.Compare(b.PublishedAt)
	case FieldSize:
		return cmp.Compare(a.Size, b.Size)
	default:
		return a.AddedAt.Compare(b.AddedAt)
	}
}
