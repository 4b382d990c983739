package postgres

import (
	"fmt"
	"strconv"
	"strings"

	domcat "github.com/kailas-cloud/shelf/internal/domain/catalog"
	"github.com/kailas-cloud/shelf/internal/domain/search/filter"
	"github.com/kailas-cloud/shelf/internal/domain/search/request"
)

// textColumns maps filterable string fields to columns of catalog_items.
var textColumns = map[string]string{
	domcat.FieldID:          "i.id",
	domcat.FieldTitle:       "i.title",
	domcat.FieldAuthor:      "i.author",
	domcat.FieldISBN:        "i.isbn",
	domcat.FieldBarcode:     "i.barcode",
	domcat.FieldDescription: "i.description",
	domcat.FieldLanguage:    "i.language",
	domcat.FieldType:        "i.type",
	domcat.FieldFrequency:   "i.periodical_frequency",
}

// compactSQL wraps a text expression the way domcat.CompactCode compacts a
// string: translate deletes every separator rune.
var compactSQL = func() string {
	chars := make([]string, len(domcat.CompactSeparators))
	for i, r := range domcat.CompactSeparators {
		chars[i] = "chr(" + strconv.Itoa(int(r)) + ")"
	}
	return "translate(%s, " + strings.Join(chars, " || ") + ", '')"
}()

const categoryExists = `EXISTS (SELECT 1 FROM catalog_item_categories ic ` +
	`JOIN categories c ON c.id = ic.category_id WHERE ic.item_id = i.id AND (%s))`

// builder accumulates positional arguments while rendering SQL.
type builder struct {
	args []any
}

func (b *builder) arg(v any) string {
	b.args = append(b.args, v)
	return "$" + strconv.Itoa(len(b.args))
}

// where renders expr as a WHERE clause; empty when expr has no conditions.
func (b *builder) where(expr filter.Expression) (string, error) {
	var parts []string
	for _, c := range expr.Must() {
		sql, err := b.condition(c)
		if err != nil {
			return "", err
		}
		parts = append(parts, sql)
	}
	if should := expr.Should(); len(should) > 0 {
		alts := make([]string, 0, len(should))
		for _, c := range should {
			sql, err := b.condition(c)
			if err != nil {
				return "", err
			}
			alts = append(alts, sql)
		}
		parts = append(parts, "("+strings.Join(alts, " OR ")+")")
	}
	if len(parts) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(parts, " AND "), nil
}

func (b *builder) condition(c filter.Condition) (string, error) {
	switch c.Op() {
	case filter.Contains, filter.CompactContains:
		if c.Key() == domcat.FieldCategories {
			return fmt.Sprintf(categoryExists, b.ilikeAny("c.name", c.Values())), nil
		}
		col, ok := textColumns[c.Key()]
		if !ok {
			return "", fmt.Errorf("unsupported text field %q", c.Key())
		}
		expr := "coalesce(" + col + ", '')"
		if c.Op() == filter.CompactContains {
			expr = fmt.Sprintf(compactSQL, expr)
		}
		return "(" + b.ilikeAny(expr, c.Values()) + ")", nil
	case filter.In:
		if c.Key() == domcat.FieldCategories {
			return fmt.Sprintf(categoryExists, "c.name IN ("+b.list(c.Values())+")"), nil
		}
		col, ok := textColumns[c.Key()]
		if !ok {
			return "", fmt.Errorf("unsupported in field %q", c.Key())
		}
		return col + " IN (" + b.list(c.Values()) + ")", nil
	case filter.Bool:
		if c.Key() != domcat.FieldAvailable {
			return "", fmt.Errorf("unsupported bool field %q", c.Key())
		}
		return "i.available = " + b.arg(c.Flag()), nil
	case filter.Between:
		if c.Key() != domcat.FieldSize || c.Range() == nil {
			return "", fmt.Errorf("unsupported range field %q", c.Key())
		}
		var bounds []string
		if gte := c.Range().GTE(); gte != nil {
			bounds = append(bounds, "i.size >= "+b.arg(*gte))
		}
		if lte := c.Range().LTE(); lte != nil {
			bounds = append(bounds, "i.size <= "+b.arg(*lte))
		}
		return "(" + strings.Join(bounds, " AND ") + ")", nil
	default:
		return "", fmt.Errorf("unsupported operator %s", c.Op())
	}
}

func (b *builder) ilikeAny(expr string, values []string) string {
	alts := make([]string, len(values))
	for i, v := range values {
		alts[i] = expr + ` ILIKE ` + b.arg("%"+escapeLike(v)+"%") + ` ESCAPE '\'`
	}
	return strings.Join(alts, " OR ")
}

func (b *builder) list(values []string) string {
	ph := make([]string, len(values))
	for i, v := range values {
		ph[i] = b.arg(v)
	}
	return strings.Join(ph, ", ")
}

// textCollation is the ICU English collation, the one domcat.NewCollator
// uses, so page boundaries agree with the in-page order.
const textCollation = ` COLLATE "en-x-icu"`

// orderBy renders the ORDER BY clause; id ascending breaks ties.
// Missing dates sort first ascending and last descending.
func orderBy(order request.Sort) string {
	col := "i.added_at"
	switch order.Column() {
	case domcat.FieldTitle:
		col = "i.title" + textCollation
	case domcat.FieldAuthor:
		col = "i.author" + textCollation
	case domcat.FieldPublishedAt:
		col = "i.published_at"
	case domcat.FieldSize:
		col = "i.size"
	}
	dir := "ASC NULLS FIRST"
	if order.Descending() {
		dir = "DESC NULLS LAST"
	}
	return " ORDER BY " + col + " " + dir + ", i.id ASC"
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
