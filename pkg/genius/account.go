package genius

import (
	"context"
	"encoding/json"
	"fmt"
)

// Account fetches the account the token was issued for.
//
// The account endpoint needs the "me" scope, which SendRequest requests
// when this is the first call on the client. A token cached by an earlier
// call to another endpoint was issued without it, and the API will refuse
// the request.
func (c *Client) Account(ctx context.Context) (*Account, error) {
	resp, err := c.SendRequest(ctx, AccountEndpoint, RequestOptions{})
	if err != nil {
		return nil, err
	}

	var payload struct {
		User Account `json:"user"`
	}
	if err := json.Unmarshal(resp, &payload); err != nil {
		return nil, fmt.Errorf("genius: failed to parse account response: %w", err)
	}

	return &payload.User, nil
}
