package source

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

const itemsQuery = `
SELECT id, title, body, image_url
FROM items
ORDER BY position, id
`

// SQLite returns a source that reads the items table of the database at path.
func SQLite(path string) Source {
	return Func(func(ctx context.Context) ([]Item, error) {
		resolved, err := expandPath(path)
		if err != nil {
			return nil, err
		}
		db, err := sql.Open("sqlite", resolved)
		if err != nil {
			return nil, fmt.Errorf("open db: %w", err)
		}
		defer func() { _ = db.Close() }()
		return QueryItems(ctx, db)
	})
}

// QueryItems reads every row of the items table, ordered by position.
func QueryItems(ctx context.Context, db *sql.DB) ([]Item, error) {
	rows, err := db.QueryContext(ctx, itemsQuery)
	if err != nil {
		return nil, fmt.Errorf("query items: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var items []Item
	for rows.Next() {
		var (
			item  Item
			body  sql.NullString
			image sql.NullString
		)
		if err := rows.Scan(&item.ID, &item.Title, &body, &image); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		item.Body = body.String
		item.ImageURL = image.String
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read items: %w", err)
	}
	return items, nil
}

// Schema creates the items table when it does not exist.
const Schema = `
CREATE TABLE IF NOT EXISTS items (
	id        TEXT PRIMARY KEY,
	position  INTEGER NOT NULL DEFAULT 0,
	title     TEXT NOT NULL,
	body      TEXT,
	image_url TEXT
);
`

// Seed creates the items table and inserts items in order.
func Seed(ctx context.Context, db *sql.DB, items []Item) error {
	if _, err := db.ExecContext(ctx, Schema); err != nil {
		return fmt.Errorf("create items table: %w", err)
	}
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed: %w", err)
	}
	for i, item := range items {
		_, err := tx.ExecContext(ctx,
			`INSERT OR REPLACE INTO items (id, position, title, body, image_url) VALUES (?, ?, ?, ?, ?)`,
			item.ID, i, item.Title, item.Body, item.ImageURL)
		if err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("insert item %q: %w", item.ID, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed: %w", err)
	}
	return nil
}
