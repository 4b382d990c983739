// Package postgres implements the catalog store over PostgreSQL. Filters,
// ordering and paging are pushed down to SQL.
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"

	"github.com/kailas-cloud/shelf/internal/db"
	domcat "github.com/kailas-cloud/shelf/internal/domain/catalog"
	"github.com/kailas-cloud/shelf/internal/domain/search/filter"
	"github.com/kailas-cloud/shelf/internal/domain/search/request"
	searchuc "github.com/kailas-cloud/shelf/internal/usecase/search"
)

// Compile-time check: Repo implements usecase/search.Store.
var _ searchuc.Store = (*Repo)(nil)

const schemaLockID int64 = 2026101501

const itemColumns = `i.id, i.title, i.author, i.isbn, i.barcode, i.description, i.language, i.type, ` +
	`i.periodical_frequency, i.published_at, i.added_at, i.size, i.available, i.cover_image, i.pdf_url`

// Repo implements the catalog store over PostgreSQL.
type Repo struct {
	db *sql.DB
}

// New creates a PostgreSQL catalog repository.
func New(conn *sql.DB) *Repo {
	return &Repo{db: conn}
}

// EnsureSchema creates the catalog tables if missing. Concurrent startups
// serialize on an advisory lock.
func (r *Repo) EnsureSchema(ctx context.Context) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return &db.Error{Op: db.OpBegin, Err: fmt.Errorf("begin schema tx: %w", err)}
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, `SELECT pg_advisory_xact_lock($1)`, schemaLockID); err != nil {
		return &db.Error{Op: db.OpExec, Err: fmt.Errorf("acquire schema lock: %w", err)}
	}

	const ddl = `
CREATE TABLE IF NOT EXISTS catalog_items (
	id TEXT PRIMARY KEY,
	title TEXT NOT NULL,
	author TEXT NOT NULL DEFAULT '',
	isbn TEXT,
	barcode TEXT,
	description TEXT,
	language TEXT,
	type TEXT NOT NULL DEFAULT 'BOOK',
	periodical_frequency TEXT,
	published_at TIMESTAMPTZ,
	added_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	size INTEGER NOT NULL DEFAULT 0,
	available BOOLEAN NOT NULL DEFAULT TRUE,
	cover_image TEXT,
	pdf_url TEXT
);

CREATE TABLE IF NOT EXISTS categories (
	id SERIAL PRIMARY KEY,
	name TEXT NOT NULL UNIQUE
);

CREATE TABLE IF NOT EXISTS catalog_item_categories (
	item_id TEXT NOT NULL REFERENCES catalog_items(id) ON DELETE CASCADE,
	category_id INTEGER NOT NULL REFERENCES categories(id) ON DELETE CASCADE,
	PRIMARY KEY (item_id, category_id)
);

CREATE INDEX IF NOT EXISTS idx_catalog_items_added_at ON catalog_items(added_at DESC);
CREATE INDEX IF NOT EXISTS idx_catalog_items_title ON catalog_items(title);
`
	if _, err := tx.ExecContext(ctx, ddl); err != nil {
		return &db.Error{Op: db.OpExec, Err: fmt.Errorf("execute schema ddl: %w", err)}
	}

	if err := tx.Commit(); err != nil {
		return &db.Error{Op: db.OpCommit, Err: fmt.Errorf("commit schema tx: %w", err)}
	}
	return nil
}

// Count returns the number of items matching expr.
func (r *Repo) Count(ctx context.Context, expr filter.Expression) (int, error) {
	var b builder
	where, err := b.where(expr)
	if err != nil {
		return 0, fmt.Errorf("build count query: %w", err)
	}

	var n int
	query := `SELECT COUNT(*) FROM catalog_items i` + where
	if err := r.db.QueryRowContext(ctx, query, b.args...).Scan(&n); err != nil {
		return 0, &db.Error{Op: db.OpQuery, Err: fmt.Errorf("count items: %w", err)}
	}
	return n, nil
}

// Fetch returns one ordered page of items matching expr. Categories are
// left empty; use Categories.
func (r *Repo) Fetch(
	ctx context.Context, expr filter.Expression, order request.Sort, offset, limit int,
) ([]domcat.Item, error) {
	var b builder
	where, err := b.where(expr)
	if err != nil {
		return nil, fmt.Errorf("build fetch query: %w", err)
	}
	if offset < 0 {
		offset = 0
	}
	query := `SELECT ` + itemColumns + ` FROM catalog_items i` + where + orderBy(order) +
		` LIMIT ` + b.arg(limit) + ` OFFSET ` + b.arg(offset)

	rows, err := r.db.QueryContext(ctx, query, b.args...)
	if err != nil {
		return nil, &db.Error{Op: db.OpQuery, Err: fmt.Errorf("fetch items: %w", err)}
	}
	defer func() { _ = rows.Close() }()

	items := make([]domcat.Item, 0, limit)
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, &db.Error{Op: db.OpQuery, Err: fmt.Errorf("scan item: %w", err)}
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, &db.Error{Op: db.OpQuery, Err: fmt.Errorf("iterate items: %w", err)}
	}
	return items, nil
}

// Categories returns category names keyed by item id, alphabetically per item.
func (r *Repo) Categories(ctx context.Context, ids []string) (map[string][]string, error) {
	out := make(map[string][]string, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	var b builder
	query := `SELECT ic.item_id, c.name FROM catalog_item_categories ic ` +
		`JOIN categories c ON c.id = ic.category_id ` +
		`WHERE ic.item_id IN (` + b.list(ids) + `) ORDER BY ic.item_id, c.name`

	rows, err := r.db.QueryContext(ctx, query, b.args...)
	if err != nil {
		return nil, &db.Error{Op: db.OpQuery, Err: fmt.Errorf("query categories: %w", err)}
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var id, name string
		if err := rows.Scan(&id, &name); err != nil {
			return nil, &db.Error{Op: db.OpQuery, Err: fmt.Errorf("scan category: %w", err)}
		}
		out[id] = append(out[id], name)
	}
	if err := rows.Err(); err != nil {
		return nil, &db.Error{Op: db.OpQuery, Err: fmt.Errorf("iterate categories: %w", err)}
	}
	return out, nil
}

func scanItem(rows *sql.Rows) (domcat.Item, error) {
	var item domcat.Item
	var isbn, barcode, description, language, freq, coverImage, pdfURL sql.NullString
	var typ string
	var publishedAt sql.NullTime
	err := rows.Scan(
		&item.ID, &item.Title, &item.Author, &isbn, &barcode, &description, &language, &typ,
		&freq, &publishedAt, &item.AddedAt, &item.Size, &item.Available, &coverImage, &pdfURL,
	)
	if err != nil {
		return domcat.Item{}, err
	}

	t, ok := domcat.ParseType(typ)
	if !ok {
		return domcat.Item{}, fmt.Errorf("item %s: unknown type %s", item.ID, strconv.Quote(typ))
	}
	item.Type = t
	item.ISBN = isbn.String
	item.Barcode = barcode.String
	item.Description = description.String
	item.Language = language.String
	item.PeriodicalFrequency = freq.String
	item.CoverImage = coverImage.String
	item.PDFURL = pdfURL.String
	if publishedAt.Valid {
		item.PublishedAt = publishedAt.Time.UTC()
	}
	item.AddedAt = item.AddedAt.UTC()
	return item, nil
}
