package sqlite

import (
	"encoding/json"
	"time"

	"github.com/zjrosen/pagekit/internal/pages"
)

// PageModel is a row of the pages table. Times are Unix seconds.
type PageModel struct {
	PageID    string
	Body      string
	Version   int
	CreatedAt int64
	UpdatedAt int64
}

func (m *PageModel) toDomain() *pages.Page {
	return &pages.Page{
		ID:        m.PageID,
		Body:      json.RawMessage(m.Body),
		Version:   m.Version,
		CreatedAt: time.Unix(m.CreatedAt, 0),
		UpdatedAt: time.Unix(m.UpdatedAt, 0),
	}
}

func scanPage(scanner interface{ Scan(...any) error }) (*PageModel, error) {
	var m PageModel
	err := scanner.Scan(&m.PageID, &m.Body, &m.Version, &m.CreatedAt, &m.UpdatedAt)
	return &m, err
}
