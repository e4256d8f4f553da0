package notion

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// RetrieveBlock fetches a single block by ID.
func (c *Client) RetrieveBlock(ctx context.Context, blockID string) (*Block, error) {
	blockID = normalizeID(blockID)
	resp, err := c.doRequest(ctx, http.MethodGet, "/blocks/"+blockID, nil)
	if err != nil {
		return nil, fmt.Errorf("retrieve block %s: %w", blockID, err)
	}

	var block Block
	if err := json.Unmarshal(resp, &block); err != nil {
		return nil, fmt.Errorf("parse block: %w", err)
	}
	return &block, nil
}

// AppendChildren appends the given block specs under a block or page and
// returns the created blocks in order.
func (c *Client) AppendChildren(ctx context.Context, blockID string, children []map[string]any) ([]Block, error) {
	blockID = normalizeID(blockID)
	body := map[string]any{
		"children": children,
	}
	resp, err := c.doRequest(ctx, http.MethodPatch, "/blocks/"+blockID+"/children", body)
	if err != nil {
		return nil, fmt.Errorf("append children to %s: %w", blockID, err)
	}

	var result struct {
		Results []Block `json:"results"`
	}
	if err := json.Unmarshal(resp, &result); err != nil {
		return nil, fmt.Errorf("parse append response: %w", err)
	}
	return result.Results, nil
}

// UpdateBlock patches a block's type payload and returns the updated block.
func (c *Client) UpdateBlock(ctx context.Context, blockID string, payload map[string]any) (*Block, error) {
	blockID = normalizeID(blockID)
	resp, err := c.doRequest(ctx, http.MethodPatch, "/blocks/"+blockID, payload)
	if err != nil {
		return nil, fmt.Errorf("update block %s: %w", blockID, err)
	}

	var block Block
	if err := json.Unmarshal(resp, &block); err != nil {
		return nil, fmt.Errorf("parse block: %w", err)
	}
	return &block, nil
}

// DeleteBlock archives a block. The service keeps the record and flags it
// archived rather than hard-deleting it; the returned representation has
// Archived set.
func (c *Client) DeleteBlock(ctx context.Context, blockID string) (*Block, error) {
	blockID = normalizeID(blockID)
	resp, err := c.doRequest(ctx, http.MethodDelete, "/blocks/"+blockID, nil)
	if err != nil {
		return nil, fmt.Errorf("delete block %s: %w", blockID, err)
	}

	var block Block
	if err := json.Unmarshal(resp, &block); err != nil {
		return nil, fmt.Errorf("parse block: %w", err)
	}
	return &block, nil
}

// ListChildren fetches the immediate children of a block or page, in the
// order the service keeps them. One batch of up to 100 children; deeper
// pagination is out of scope for this tool.
func (c *Client) ListChildren(ctx context.Context, blockID string) ([]Block, error) {
	blockID = normalizeID(blockID)
	resp, err := c.doRequest(ctx, http.MethodGet, "/blocks/"+blockID+"/children?page_size=100", nil)
	if err != nil {
		return nil, fmt.Errorf("list children of %s: %w", blockID, err)
	}

	var result struct {
		Results []Block `json:"results"`
	}
	if err := json.Unmarshal(resp, &result); err != nil {
		return nil, fmt.Errorf("parse children: %w", err)
	}
	return result.Results, nil
}
