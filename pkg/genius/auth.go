package genius

import (
	"context"
)

// AuthService provides authentication operations for the Genius API.
type AuthService struct {
	client *Client
}

// IssueToken requests a new access token with the given scopes.
//
// The token is returned and not cached. Use Client.SetToken to make the
// client use it, or let SendRequest authenticate on its own.
//
// Example:
//
//	token, err := client.Auth().IssueToken(ctx, genius.ScopeMe)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	client.SetToken(token)
func (a *AuthService) IssueToken(ctx context.Context, scopes ...string) (string, error) {
	if scopes == nil {
		scopes = []string{}
	}
	return a.client.Authenticate(ctx, scopes)
}
