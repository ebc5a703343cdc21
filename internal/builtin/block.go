package builtin

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/zjrosen/pagekit/internal/host"
	"github.com/zjrosen/pagekit/internal/log"
	"github.com/zjrosen/pagekit/internal/pages"
)

// BlockPrefix is prepended to a node id to form the page id a block is saved under.
const BlockPrefix = "block-"

// ErrNodeNotFound is returned when the active document has no node with the given id.
var ErrNodeNotFound = errors.New("node not found")

// BlockSaver persists a block schema.
type BlockSaver interface {
	SaveSchema(ctx context.Context, schema host.Schema) (pages.SaveResult, error)
}

// SaveAsBlock returns the component action that stores a node's subtree as a
// reusable block.
func SaveAsBlock(project pages.ActiveDocumenter, store BlockSaver) host.ComponentAction {
	return host.ComponentAction{
		Name:      "add",
		Title:     "Save as block",
		Icon:      "save",
		Important: true,
		Action: func(ctx context.Context, nodeID string) error {
			doc, ok := project.ActiveDocument()
			if !ok {
				return pages.ErrNoActiveDocument
			}
			node, err := findNode(doc.Schema.Body, nodeID)
			if err != nil {
				return err
			}
			result, err := store.SaveSchema(ctx, host.Schema{PageID: BlockPrefix + nodeID, Body: node})
			if err != nil {
				return fmt.Errorf("save block %s: %w", nodeID, err)
			}
			log.Info(log.CatPages, "Saved block", "node", nodeID, "page", result.Page.ID, "version", result.Page.Version)
			return nil
		},
	}
}

type node struct {
	ID       string          `json:"id"`
	Children json.RawMessage `json:"children"`
}

// findNode searches the schema tree depth first for the node with id.
// children may be a node, a list of nodes and strings, or a plain string.
func findNode(body json.RawMessage, id string) (json.RawMessage, error) {
	if found, ok := searchNode(body, id); ok {
		return found, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrNodeNotFound, id)
}

func searchNode(body json.RawMessage, id string) (json.RawMessage, bool) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return nil, false
	}
	switch body[0] {
	case '[':
		var list []json.RawMessage
		if err := json.Unmarshal(body, &list); err != nil {
			return nil, false
		}
		for _, child := range list {
			if found, ok := searchNode(child, id); ok {
				return found, true
			}
		}
		return nil, false
	case '{':
		var n node
		if err := json.Unmarshal(body, &n); err != nil {
			return nil, false
		}
		if n.ID == id {
			return body, true
		}
		return searchNode(n.Children, id)
	default:
		return nil, false
	}
}
