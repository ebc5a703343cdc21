package pages

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/zjrosen/pagekit/internal/defaults"
	"github.com/zjrosen/pagekit/internal/host"
	"github.com/zjrosen/pagekit/internal/log"
)

// ErrNoActiveDocument is returned by Save and Preview before a page is open.
var ErrNoActiveDocument = errors.New("no active document")

// ActiveDocumenter exposes the document currently open in the editor.
type ActiveDocumenter interface {
	ActiveDocument() (host.Document, bool)
}

// SaveResult describes one save.
type SaveResult struct {
	Page    *Page
	Diff    string // line diff against the previous version; empty when unchanged or new
	Created bool
}

// Service fetches, saves and previews page schemas.
type Service struct {
	repo        Repository
	project     ActiveDocumenter
	previewBase string
}

// NewService creates a service. project may be nil for commands that never
// save the active document.
func NewService(repo Repository, project ActiveDocumenter, previewBase string) *Service {
	return &Service{repo: repo, project: project, previewBase: previewBase}
}

// FetchPageSchema returns the stored schema for pageID, the shipped default
// for that id, or a blank page, in that order.
func (s *Service) FetchPageSchema(ctx context.Context, pageID string) (host.Schema, error) {
	page, err := s.repo.Find(ctx, pageID)
	switch {
	case err == nil:
		log.Debug(log.CatPages, "Page schema loaded from store", "page", pageID, "version", page.Version)
		return host.Schema{PageID: pageID, Body: page.Body}, nil
	case !errors.Is(err, ErrPageNotFound):
		return host.Schema{}, fmt.Errorf("find page %s: %w", pageID, err)
	}

	if body, ok := defaults.Page(pageID); ok {
		log.Debug(log.CatPages, "Page schema loaded from defaults", "page", pageID)
		return host.Schema{PageID: pageID, Body: body}, nil
	}
	log.Info(log.CatPages, "No schema for page, starting blank", "page", pageID)
	return host.Schema{PageID: pageID, Body: defaults.BlankPage(pageID)}, nil
}

// Save persists the active document.
func (s *Service) Save(ctx context.Context) (SaveResult, error) {
	doc, err := s.activeDocument()
	if err != nil {
		return SaveResult{}, err
	}
	return s.SaveSchema(ctx, doc.Schema)
}

// SaveSchema persists schema and diffs it against the stored version.
func (s *Service) SaveSchema(ctx context.Context, schema host.Schema) (SaveResult, error) {
	if schema.PageID == "" {
		return SaveResult{}, fmt.Errorf("save page: empty page id")
	}

	var previous *Page
	prev, err := s.repo.Find(ctx, schema.PageID)
	switch {
	case err == nil:
		previous = prev
	case !errors.Is(err, ErrPageNotFound):
		return SaveResult{}, fmt.Errorf("find page %s: %w", schema.PageID, err)
	}

	saved, err := s.repo.Save(ctx, schema.PageID, schema.Body)
	if err != nil {
		return SaveResult{}, fmt.Errorf("save page %s: %w", schema.PageID, err)
	}

	result := SaveResult{Page: saved, Created: previous == nil}
	if previous != nil {
		result.Diff = lineDiff(previous.Body, saved.Body)
	}
	log.Info(log.CatPages, "Page saved", "page", saved.ID, "version", saved.Version, "changed_lines", strings.Count(result.Diff, "\n"))
	return result, nil
}

// Preview saves the active document and returns its preview URL.
func (s *Service) Preview(ctx context.Context) (string, error) {
	result, err := s.Save(ctx)
	if err != nil {
		return "", err
	}
	return s.PreviewURL(result.Page.ID)
}

// PreviewURL returns <preview_base>?page=<pageID>, keeping any query the base has.
func (s *Service) PreviewURL(pageID string) (string, error) {
	base, err := url.Parse(s.previewBase)
	if err != nil {
		return "", fmt.Errorf("parse preview base %q: %w", s.previewBase, err)
	}
	q := base.Query()
	q.Set("page", pageID)
	base.RawQuery = q.Encode()
	return base.String(), nil
}

// List returns every stored page.
func (s *Service) List(ctx context.Context) ([]*Page, error) {
	return s.repo.List(ctx)
}

// Delete removes a stored page.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	log.Info(log.CatPages, "Page deleted", "page", id)
	return nil
}

func (s *Service) activeDocument() (host.Document, error) {
	if s.project == nil {
		return host.Document{}, ErrNoActiveDocument
	}
	doc, ok := s.project.ActiveDocument()
	if !ok {
		return host.Document{}, ErrNoActiveDocument
	}
	return doc, nil
}
