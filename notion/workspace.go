package notion

import (
	"context"
	"fmt"
	"log/slog"
)

// Workspace exposes page and block operations bound to a currently
// configured page. It holds one piece of mutable state, the page ID; a
// single owned instance per invocation is expected, and methods are not
// safe for concurrent use.
type Workspace struct {
	client *Client
	pageID string
	log    *slog.Logger
}

// NewWorkspace binds a client to a page.
func NewWorkspace(client *Client, pageID string) *Workspace {
	return &Workspace{
		client: client,
		pageID: normalizeID(pageID),
		log:    client.log,
	}
}

// PageID returns the currently configured page ID.
func (w *Workspace) PageID() string { return w.pageID }

// SetPageID changes the page subsequent operations target. No remote call.
func (w *Workspace) SetPageID(id string) { w.pageID = normalizeID(id) }

// GetPage retrieves the configured page.
func (w *Workspace) GetPage(ctx context.Context) (*Page, error) {
	return w.client.RetrievePage(ctx, w.pageID)
}

// AddText appends a paragraph block holding text. parentID selects the
// block to append under; when empty the text goes directly under the page.
// Returns the created block as the service reports it.
func (w *Workspace) AddText(ctx context.Context, text, parentID string) (*Block, error) {
	target := parentID
	if target == "" {
		target = w.pageID
	}
	created, err := w.client.AppendChildren(ctx, target, []map[string]any{paragraphSpec(text)})
	if err != nil {
		return nil, err
	}
	if len(created) == 0 {
		return nil, fmt.Errorf("append text: service returned no blocks")
	}
	return &created[0], nil
}

// DeleteBlock archives the block and returns its representation, with
// Archived set and the ID unchanged.
func (w *Workspace) DeleteBlock(ctx context.Context, blockID string) (*Block, error) {
	return w.client.DeleteBlock(ctx, blockID)
}

// UpdateBlock replaces the block's text. Only paragraph blocks support a
// plain-text rewrite; for any other type a warning is logged and the write
// is attempted anyway, leaving the service to accept or reject it.
func (w *Workspace) UpdateBlock(ctx context.Context, blockID, text string) (*Block, error) {
	current, err := w.client.RetrieveBlock(ctx, blockID)
	if err != nil {
		return nil, err
	}
	if current.Type != "paragraph" {
		w.log.Warn("block type may not support a text update",
			"block_id", current.ID, "type", current.Type)
	}
	payload := map[string]any{
		current.Type: map[string]any{
			"rich_text": richTextSpec(text),
		},
	}
	return w.client.UpdateBlock(ctx, blockID, payload)
}

// PageBlocks lists the configured page's blocks with nested children
// flattened: depth-first, parent before children, siblings in service
// order. Top-level records carry no parent ID.
func (w *Workspace) PageBlocks(ctx context.Context) ([]SimplifiedBlock, error) {
	top, err := w.client.ListChildren(ctx, w.pageID)
	if err != nil {
		return nil, fmt.Errorf("list page blocks: %w", err)
	}

	var out []SimplifiedBlock
	for _, b := range top {
		out = append(out, Flatten(ctx, b, w.client.ListChildren, "", w.log)...)
	}
	return out, nil
}
