package genius

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
)

// Search runs a full-text search and returns the matching hits.
func (c *Client) Search(ctx context.Context, query string) ([]SearchHit, error) {
	if query == "" {
		return nil, fmt.Errorf("genius: search query is required")
	}

	resp, err := c.SendRequest(ctx, "/search", RequestOptions{Query: url.Values{"q": {query}}})
	if err != nil {
		return nil, err
	}

	var payload struct {
		Hits []SearchHit `json:"hits"`
	}
	if err := json.Unmarshal(resp, &payload); err != nil {
		return nil, fmt.Errorf("genius: failed to parse search response: %w", err)
	}

	return payload.Hits, nil
}
