package engine

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/zjrosen/pagekit/internal/host"
	"github.com/zjrosen/pagekit/internal/log"
	"github.com/zjrosen/pagekit/internal/pubsub"
)

// Project errors
var (
	ErrInvalidSchema    = errors.New("schema body is not valid JSON")
	ErrNoActiveDocument = errors.New("no active document")
)

// Project holds opened documents and the renderer-ready notification.
type Project struct {
	mu        sync.RWMutex
	documents map[string]host.Document
	active    string
	ready     *pubsub.OneShot
	onChange  func(Event)
}

func newProject(onChange func(Event)) *Project {
	return &Project{
		documents: make(map[string]host.Document),
		ready:     pubsub.NewOneShot(),
		onChange:  onChange,
	}
}

var _ host.Project = (*Project)(nil)

// OpenDocument opens schema under a fresh document id and makes it active.
func (p *Project) OpenDocument(schema host.Schema) (host.Document, error) {
	if len(schema.Body) == 0 || !json.Valid(schema.Body) {
		return host.Document{}, fmt.Errorf("open document %q: %w", schema.PageID, ErrInvalidSchema)
	}

	doc := host.Document{ID: uuid.NewString(), Schema: schema}

	p.mu.Lock()
	p.documents[doc.ID] = doc
	p.active = doc.ID
	p.mu.Unlock()

	log.Info(log.CatPages, "Document opened", "id", doc.ID, "page", schema.PageID)
	p.onChange(Event{Kind: EventDocumentOpened, Name: doc.ID})
	return doc, nil
}

// ActiveDocument returns the document most recently opened.
func (p *Project) ActiveDocument() (host.Document, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	doc, ok := p.documents[p.active]
	return doc, ok
}

// ReplaceActiveSchema swaps the body of the active document, as an edit would.
func (p *Project) ReplaceActiveSchema(body json.RawMessage) (host.Document, error) {
	if len(body) == 0 || !json.Valid(body) {
		return host.Document{}, ErrInvalidSchema
	}

	p.mu.Lock()
	doc, ok := p.documents[p.active]
	if !ok {
		p.mu.Unlock()
		return host.Document{}, ErrNoActiveDocument
	}
	doc.Schema.Body = append(json.RawMessage(nil), body...)
	p.documents[doc.ID] = doc
	p.mu.Unlock()

	p.onChange(Event{Kind: EventDocumentChanged, Name: doc.ID})
	return doc, nil
}

// OnSimulatorRendererReady runs fn once the renderer is ready.
func (p *Project) OnSimulatorRendererReady(fn func()) {
	p.ready.Subscribe(fn)
}

// MarkRendererReady signals that the preview surface is usable.
// Only the first call has an effect.
func (p *Project) MarkRendererReady() {
	if !p.ready.Fire() {
		return
	}
	log.Info(log.CatPages, "Simulator renderer ready")
	p.onChange(Event{Kind: EventRendererReady})
}

// RendererReady reports whether MarkRendererReady has been called.
func (p *Project) RendererReady() bool {
	return p.ready.Fired()
}

// Ready exposes the readiness notification.
func (p *Project) Ready() *pubsub.OneShot {
	return p.ready
}
