package testutil

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zjrosen/pagekit/internal/pages"
)

// Builder accumulates pages and saves them through a repository.
type Builder struct {
	t     *testing.T
	repo  pages.Repository
	pages []pageData
}

// NewBuilder creates a builder for the given repository.
func NewBuilder(t *testing.T, repo pages.Repository) *Builder {
	t.Helper()
	return &Builder{t: t, repo: repo}
}

// WithPage adds a page with optional configuration.
func (b *Builder) WithPage(id string, opts ...PageOption) *Builder {
	p := defaultPage(id)
	for _, opt := range opts {
		opt(&p)
	}
	b.pages = append(b.pages, p)
	return b
}

// WithSite adds a small site: a home page with a button, an about page that
// was edited twice, and an empty contact page.
func (b *Builder) WithSite() *Builder {
	return b.
		WithPage("home", Title("Home"), Button("node_cta", "Get started")).
		WithPage("about", Title("About us"), Saves(2)).
		WithPage("contact", Title("Contact"))
}

// Build saves every page in insertion order and returns the stored rows by id.
func (b *Builder) Build() map[string]*pages.Page {
	b.t.Helper()
	ctx := context.Background()
	out := make(map[string]*pages.Page, len(b.pages))
	for _, p := range b.pages {
		for i := 0; i < p.saves; i++ {
			stored, err := b.repo.Save(ctx, p.id, p.body())
			require.NoError(b.t, err, "saving page %s", p.id)
			out[p.id] = stored
		}
	}
	return out
}
