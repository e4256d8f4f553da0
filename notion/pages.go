package notion

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// RetrievePage fetches the page with the given ID.
func (c *Client) RetrievePage(ctx context.Context, pageID string) (*Page, error) {
	pageID = normalizeID(pageID)
	resp, err := c.doRequest(ctx, http.MethodGet, "/pages/"+pageID, nil)
	if err != nil {
		return nil, fmt.Errorf("retrieve page %s: %w", pageID, err)
	}

	var page Page
	if err := json.Unmarshal(resp, &page); err != nil {
		return nil, fmt.Errorf("parse page: %w", err)
	}
	return &page, nil
}
