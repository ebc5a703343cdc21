// Package pages stores and serves page schemas for the editor.
package pages

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// ErrPageNotFound matches every *NotFoundError.
var ErrPageNotFound = errors.New("page not found")

// NotFoundError reports a page id with no stored schema.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("page not found: %s", e.ID)
}

// Is lets errors.Is(err, ErrPageNotFound) match.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrPageNotFound
}

// Page is a stored page schema. Version starts at 1 and increases on every save.
type Page struct {
	ID        string
	Body      json.RawMessage
	Version   int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Repository persists pages.
type Repository interface {
	// Find returns the page or a *NotFoundError.
	Find(ctx context.Context, id string) (*Page, error)
	// Save inserts the page or replaces its body, bumping the version.
	Save(ctx context.Context, id string, body json.RawMessage) (*Page, error)
	// List returns every page ordered by id.
	List(ctx context.Context) ([]*Page, error)
	// Delete removes the page or returns a *NotFoundError.
	Delete(ctx context.Context, id string) error
}
