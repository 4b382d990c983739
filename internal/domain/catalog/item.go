// Package catalog holds the read-only catalog item model searched by the engine.
package catalog

import (
	"slices"
	"strings"
	"time"
)

// ItemType is the kind of catalog entry.
type ItemType string

// Catalog item types.
const (
	Book     ItemType = "BOOK"
	Document ItemType = "DOCUMENT"
	Periodic ItemType = "PERIODIC"
	Article  ItemType = "ARTICLE"
)

// IsValid checks if the type is one of the supported values.
func (t ItemType) IsValid() bool {
	return t == Book || t == Document || t == Periodic || t == Article
}

// ParseType normalizes s case-insensitively. ok is false for unknown types.
func ParseType(s string) (ItemType, bool) {
	t := ItemType(strings.ToUpper(strings.TrimSpace(s)))
	return t, t.IsValid()
}

// Field names shared by filters, sorting and store adapters.
const (
	FieldID          = "id"
	FieldTitle       = "title"
	FieldAuthor      = "author"
	FieldISBN        = "isbn"
	FieldBarcode     = "barcode"
	FieldDescription = "description"
	FieldLanguage    = "language"
	FieldType        = "type"
	FieldFrequency   = "periodical_frequency"
	FieldCategories  = "categories"
	FieldPublishedAt = "published_at"
	FieldAddedAt     = "added_at"
	FieldSize        = "size"
	FieldAvailable   = "available"
)

// Item is a catalog entry. PublishedAt is zero when unknown; optional
// strings are empty when absent.
type Item struct {
	ID                  string
	Title               string
	Author              string
	ISBN                string
	Barcode             string
	Description         string
	Language            string
	Type                ItemType
	PeriodicalFrequency string
	Categories          []string
	PublishedAt         time.Time
	AddedAt             time.Time
	Size                int
	Available           bool
	CoverImage          string
	PDFURL              string
}

// HasPDF reports whether the item links a downloadable resource.
func (i *Item) HasPDF() bool { return i.PDFURL != "" }

// CompactSeparators are the runes CompactCode drops: ASCII hyphen, space,
// tab, U+2010 hyphen and U+2011 non-breaking hyphen. SQL stores strip the
// same set.
var CompactSeparators = []rune{'-', ' ', '\t', '\u2010', '\u2011'}

// CompactCode strips hyphens and whitespace so ISBN-like codes compare by digits.
func CompactCode(s string) string {
	return strings.Map(func(r rune) rune {
		if slices.Contains(CompactSeparators, r) {
			return -1
		}
		return r
	}, s)
}
