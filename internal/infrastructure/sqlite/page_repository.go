package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/zjrosen/pagekit/internal/pages"
)

const pageColumns = `page_id, body, version, created_at, updated_at`

type pageRepository struct {
	db  *sql.DB
	now func() time.Time
}

func newPageRepository(db *sql.DB) *pageRepository {
	return &pageRepository{db: db, now: time.Now}
}

var _ pages.Repository = (*pageRepository)(nil)

// Find retrieves a page by id.
func (r *pageRepository) Find(ctx context.Context, id string) (*pages.Page, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+pageColumns+` FROM pages WHERE page_id = ?`, id)
	model, err := scanPage(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &pages.NotFoundError{ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find page: %w", err)
	}
	return model.toDomain(), nil
}

// Save upserts the page. New pages start at version 1; updates increment it.
func (r *pageRepository) Save(ctx context.Context, id string, body json.RawMessage) (*pages.Page, error) {
	if id == "" {
		return nil, fmt.Errorf("failed to save page: empty page id")
	}
	if !json.Valid(body) {
		return nil, fmt.Errorf("failed to save page %s: body is not valid JSON", id)
	}

	now := r.now().Unix()
	row := r.db.QueryRowContext(ctx,
		`INSERT INTO pages (page_id, body, version, created_at, updated_at)
		 VALUES (?, ?, 1, ?, ?)
		 ON CONFLICT (page_id) DO UPDATE SET
			body = excluded.body,
			version = pages.version + 1,
			updated_at = excluded.updated_at
		 RETURNING `+pageColumns,
		id, string(body), now, now,
	)
	model, err := scanPage(row)
	if err != nil {
		return nil, fmt.Errorf("failed to save page: %w", err)
	}
	return model.toDomain(), nil
}

// List returns every page ordered by id.
func (r *pageRepository) List(ctx context.Context) ([]*pages.Page, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+pageColumns+` FROM pages ORDER BY page_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list pages: %w", err)
	}
	defer rows.Close()

	var out []*pages.Page
	for rows.Next() {
		model, err := scanPage(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan page: %w", err)
		}
		out = append(out, model.toDomain())
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate pages: %w", err)
	}
	return out, nil
}

// Delete removes a page.
func (r *pageRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM pages WHERE page_id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete page: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if n == 0 {
		return &pages.NotFoundError{ID: id}
	}
	return nil
}
