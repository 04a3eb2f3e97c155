// Package genius provides a client library for the Genius API.
//
// # Overview
//
// This package implements a small Go client for https://api.genius.com.
// It handles client-credentials authentication, attaches the standard
// headers to every call, and unwraps the {meta, response} envelope the API
// puts around each payload.
//
// # Installation
//
//	go get github.com/jfmyers9/genius/pkg/genius
//
// # Quick Start
//
// Create a client with your API credentials and close it when done:
//
//	client, err := genius.NewClient(genius.Config{
//	    ClientID:     "your-client-id",
//	    ClientSecret: "your-client-secret",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
// # Authentication
//
// The first request on a client exchanges the credentials for an access
// token and caches it for the lifetime of the client. The token is never
// refreshed. Requests to /account ask for the "me" scope; all others ask
// for none.
//
// A token can also be issued explicitly:
//
//	token, err := client.Auth().IssueToken(ctx, genius.ScopeMe)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	client.SetToken(token)
//
// # Requests
//
// Typed helpers cover the common resources:
//
//	song, err := client.Songs().Get(ctx, 378195)
//	artist, err := client.Artists().Get(ctx, 16775)
//	hits, err := client.Search(ctx, "Kendrick Lamar")
//
// Anything else goes through SendRequest, which returns the envelope's
// response field untouched:
//
//	raw, err := client.SendRequest(ctx, "/annotations/10225840", genius.RequestOptions{})
//
// # Error Handling
//
// Two error types separate transport failures from API failures:
//
//	_, err := client.Songs().Get(ctx, 1)
//	var httpErr *genius.HTTPError
//	var apiErr *genius.Error
//	switch {
//	case errors.As(err, &httpErr):
//	    // the HTTP status was not 200
//	case errors.As(err, &apiErr):
//	    // HTTP 200, but meta.status was not 200
//	}
//
// Nothing is retried.
//
// # Configuration
//
// The base URL and user agent default to DefaultBaseURL and
// DefaultUserAgent and can be overridden per client:
//
//	client, err := genius.NewClient(genius.Config{
//	    ClientID:     "your-client-id",
//	    ClientSecret: "your-client-secret",
//	    HTTPClient:   &http.Client{Timeout: 30 * time.Second},
//	    UserAgent:    "myapp/1.0",
//	    Logger:       myLogger, // Implements genius.Logger interface
//	})
//
// # Genius API Documentation
//
// https://docs.genius.com
package genius
