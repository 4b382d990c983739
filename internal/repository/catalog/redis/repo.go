// Package redis reads the catalog from hashes in Redis or Valkey. Each item
// lives at <prefix>item:<id>; filtering and paging run in process.
package redis

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/kailas-cloud/shelf/internal/db"
	domcat "github.com/kailas-cloud/shelf/internal/domain/catalog"
	"github.com/kailas-cloud/shelf/internal/domain/search/filter"
	"github.com/kailas-cloud/shelf/internal/domain/search/request"
	repocat "github.com/kailas-cloud/shelf/internal/repository/catalog"
	searchuc "github.com/kailas-cloud/shelf/internal/usecase/search"
)

// Compile-time check: Repo implements usecase/search.Store.
var _ searchuc.Store = (*Repo)(nil)

// CategorySeparator joins category names inside the categories hash field.
const CategorySeparator = "|"

// Repo implements the catalog store over hashes.
type Repo struct {
	store  db.HashReader
	prefix string
}

// New creates a Redis/Valkey catalog repository.
func New(store db.HashReader, prefix string) *Repo {
	return &Repo{store: store, prefix: prefix}
}

// Key returns the hash key of an item id.
func (r *Repo) Key(id string) string {
	return r.prefix + "item:" + id
}

// Count returns the number of items matching expr.
func (r *Repo) Count(ctx context.Context, expr filter.Expression) (int, error) {
	items, err := r.loadAll(ctx)
	if err != nil {
		return 0, err
	}
	n := 0
	for i := range items {
		if repocat.Matches(&items[i], expr) {
			n++
		}
	}
	return n, nil
}

// Fetch returns one ordered page of items matching expr.
func (r *Repo) Fetch(
	ctx context.Context, expr filter.Expression, order request.Sort, offset, limit int,
) ([]domcat.Item, error) {
	items, err := r.loadAll(ctx)
	if err != nil {
		return nil, err
	}
	return repocat.Page(repocat.Filter(items, expr), order, offset, limit), nil
}

// Categories returns category names keyed by item id.
func (r *Repo) Categories(ctx context.Context, ids []string) (map[string][]string, error) {
	out := make(map[string][]string, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = r.Key(id)
	}
	hashes, err := r.store.HGetAllMulti(ctx, keys)
	if err != nil {
		return nil, fmt.Errorf("get categories: %w", err)
	}
	for i, h := range hashes {
		if i >= len(ids) {
			break
		}
		if cats := splitCategories(h[domcat.FieldCategories]); len(cats) > 0 {
			out[ids[i]] = cats
		}
	}
	return out, nil
}

func (r *Repo) loadAll(ctx context.Context) ([]domcat.Item, error) {
	keys, err := r.store.Scan(ctx, r.prefix+"item:*")
	if err != nil {
		return nil, fmt.Errorf("scan items: %w", err)
	}
	if len(keys) == 0 {
		return nil, nil
	}

	hashes, err := r.store.HGetAllMulti(ctx, keys)
	if err != nil {
		return nil, fmt.Errorf("get items: %w", err)
	}

	items := make([]domcat.Item, 0, len(hashes))
	for i, h := range hashes {
		// Deleted between SCAN and HGETALL.
		if len(h) == 0 {
			continue
		}
		item, err := parseItem(strings.TrimPrefix(keys[i], r.prefix+"item:"), h)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", keys[i], err)
		}
		items = append(items, item)
	}
	return items, nil
}

func parseItem(id string, h map[string]string) (domcat.Item, error) {
	if v := h[domcat.FieldID]; v != "" {
		id = v
	}

	typ := domcat.Book
	if raw := h[domcat.FieldType]; raw != "" {
		t, ok := domcat.ParseType(raw)
		if !ok {
			return domcat.Item{}, fmt.Errorf("unknown type %q", raw)
		}
		typ = t
	}

	published, err := repocat.ParseTimestamp(h[domcat.FieldPublishedAt])
	if err != nil {
		return domcat.Item{}, fmt.Errorf("published_at: %w", err)
	}
	added, err := repocat.ParseTimestamp(h[domcat.FieldAddedAt])
	if err != nil {
		return domcat.Item{}, fmt.Errorf("added_at: %w", err)
	}

	var size int
	if raw := h[domcat.FieldSize]; raw != "" {
		size, err = strconv.Atoi(raw)
		if err != nil {
			return domcat.Item{}, fmt.Errorf("size: %w", err)
		}
	}

	return domcat.Item{
		ID:                  id,
		Title:               h[domcat.FieldTitle],
		Author:              h[domcat.FieldAuthor],
		ISBN:                h[domcat.FieldISBN],
		Barcode:             h[domcat.FieldBarcode],
		Description:         h[domcat.FieldDescription],
		Language:            h[domcat.FieldLanguage],
		Type:                typ,
		PeriodicalFrequency: h[domcat.FieldFrequency],
		Categories:          splitCategories(h[domcat.FieldCategories]),
		PublishedAt:         published,
		AddedAt:             added,
		Size:                size,
		Available:           parseBool(h[domcat.FieldAvailable]),
		CoverImage:          h["cover_image"],
		PDFURL:              h["pdf_url"],
	}, nil
}

func splitCategories(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, CategorySeparator)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func parseBool(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "true", "yes":
		return true
	default:
		return false
	}
}
