package catalog

import (
	"slices"
	"strings"

	domcat "github.com/kailas-cloud/shelf/internal/domain/catalog"
	"github.com/kailas-cloud/shelf/internal/domain/search/filter"
	"github.com/kailas-cloud/shelf/internal/domain/search/request"
)

// Filter returns the items matching expr, preserving input order.
func Filter(items []domcat.Item, expr filter.Expression) []domcat.Item {
	out := make([]domcat.Item, 0, len(items))
	for i := range items {
		if Matches(&items[i], expr) {
			out = append(out, items[i])
		}
	}
	return out
}

// Page orders matched items by order (id ascending breaks ties) and returns
// the window [offset, offset+limit). matched is reordered in place.
func Page(matched []domcat.Item, order request.Sort, offset, limit int) []domcat.Item {
	col := domcat.NewCollator()
	field := order.Column()
	slices.SortStableFunc(matched, func(a, b domcat.Item) int {
		var c int
		if order.Descending() {
			c = domcat.Compare(&b, &a, field, col)
		} else {
			c = domcat.Compare(&a, &b, field, col)
		}
		if c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})

	if offset < 0 {
		offset = 0
	}
	if offset >= len(matched) || limit <= 0 {
		return []domcat.Item{}
	}
	end := min(offset+limit, len(matched))
	out := make([]domcat.Item, end-offset)
	copy(out, matched[offset:end])
	return out
}

// CategoryIndex maps item id to category names for the given ids.
func CategoryIndex(items []domcat.Item, ids []string) map[string][]string {
	want := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		want[id] = struct{}{}
	}
	out := make(map[string][]string, len(ids))
	for i := range items {
		if _, ok := want[items[i].ID]; ok && len(items[i].Categories) > 0 {
			out[items[i].ID] = slices.Clone(items[i].Categories)
		}
	}
	return out
}
