package testutil

import (
	"encoding/json"
	"fmt"
)

// pageData holds everything needed to store one page.
type pageData struct {
	id       string
	title    string
	children []map[string]any
	raw      json.RawMessage
	saves    int
}

func defaultPage(id string) pageData {
	return pageData{id: id, title: id, saves: 1}
}

// body renders the page schema, preferring a Raw body when one was given.
func (p pageData) body() json.RawMessage {
	if p.raw != nil {
		return p.raw
	}
	children := p.children
	if children == nil {
		children = []map[string]any{}
	}
	data, _ := json.Marshal(map[string]any{
		"componentName": "Page",
		"id":            "node_" + p.id,
		"props":         map[string]any{"title": p.title},
		"children":      children,
	})
	return data
}

// PageOption configures a seeded page.
type PageOption func(*pageData)

// Title sets props.title of the page node.
func Title(title string) PageOption {
	return func(p *pageData) { p.title = title }
}

// Button appends a Button child node with the given id and label.
func Button(id, label string) PageOption {
	return func(p *pageData) {
		p.children = append(p.children, map[string]any{
			"componentName": "Button",
			"id":            id,
			"props":         map[string]any{"children": label},
		})
	}
}

// Raw stores body verbatim instead of the generated schema.
func Raw(body string) PageOption {
	return func(p *pageData) { p.raw = json.RawMessage(body) }
}

// Saves stores the page n times so it ends at version n.
func Saves(n int) PageOption {
	if n < 1 {
		panic(fmt.Sprintf("testutil.Saves: n must be positive, got %d", n))
	}
	return func(p *pageData) { p.saves = n }
}
