// Package genius provides a client for the Genius API.
//
// This package implements client-credentials authentication, authenticated
// requests, and unwrapping of the API's {meta, response} envelope. It is
// designed to be used as a standalone SDK.
//
// Example usage:
//
//	import "github.com/jfmyers9/genius/pkg/genius"
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
//	song, err := client.Songs().Get(ctx, 378195)
package genius

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"golang.org/x/oauth2"
)

// Config holds client configuration.
type Config struct {
	ClientID     string       // Required: Genius API client ID
	ClientSecret string       // Required: Genius API client secret
	AccessToken  string       // Optional: Pre-issued access token, skips authentication
	HTTPClient   *http.Client // Optional: HTTP client (defaults to a client owned by the transport)
	BaseURL      string       // Optional: Base URL for API (defaults to DefaultBaseURL, used for testing)
	UserAgent    string       // Optional: User-Agent header (defaults to DefaultUserAgent)
	Logger       Logger       // Optional: Logger interface for debug logging
}

// Logger is an optional interface for logging.
type Logger interface {
	// Debugf logs a debug message with format and arguments.
	Debugf(format string, args ...interface{})
}

// Credentials is the client identifier and secret pair.
type Credentials struct {
	ClientID     string
	ClientSecret string
}

// Client is the main entry point for Genius API operations.
type Client struct {
	creds     Credentials
	baseURL   string
	userAgent string
	logger    Logger
	transport *Transport

	mu    sync.Mutex
	token *oauth2.Token

	auth    *AuthService
	songs   *SongService
	artists *ArtistService
}

const (
	// DefaultBaseURL is the default Genius API endpoint.
	DefaultBaseURL = "https://api.genius.com"

	// DefaultUserAgent is sent with every resource request.
	DefaultUserAgent = "CompuServe Classic/1.22"

	// AccountEndpoint is the only endpoint that needs a non-empty scope.
	AccountEndpoint = "/account"

	// ScopeMe grants access to the account endpoint.
	ScopeMe = "me"

	tokenPath = "/oauth/token"
	grantType = "client_credentials"
)

// NewClient creates a new Genius API client.
//
// Returns an error if required configuration (ClientID, ClientSecret) is
// missing. The client owns its transport; call Close when done.
func NewClient(cfg Config) (*Client, error) {
	if cfg.ClientID == "" {
		return nil, fmt.Errorf("%w: ClientID is required", ErrInvalidConfig)
	}
	if cfg.ClientSecret == "" {
		return nil, fmt.Errorf("%w: ClientSecret is required", ErrInvalidConfig)
	}

	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}

	c := &Client{
		creds: Credentials{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
		},
		baseURL:   baseURL,
		userAgent: userAgent,
		logger:    cfg.Logger,
		transport: NewTransport(TransportConfig{
			HTTPClient: cfg.HTTPClient,
			Logger:     cfg.Logger,
		}),
	}
	if cfg.AccessToken != "" {
		c.token = bearer(cfg.AccessToken)
	}

	c.auth = &AuthService{client: c}
	c.songs = &SongService{client: c}
	c.artists = &ArtistService{client: c}

	return c, nil
}

// Auth returns the authentication service.
func (c *Client) Auth() *AuthService {
	return c.auth
}

// Songs returns the song service.
func (c *Client) Songs() *SongService {
	return c.songs
}

// Artists returns the artist service.
func (c *Client) Artists() *ArtistService {
	return c.artists
}

// Credentials returns the credentials the client was created with.
func (c *Client) Credentials() Credentials {
	return c.creds
}

// BaseURL returns the API base URL in use.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Close releases the underlying transport.
func (c *Client) Close() error {
	return c.transport.Close()
}

// Token returns the cached access token, or "" if none has been obtained.
func (c *Client) Token() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.token == nil {
		return ""
	}
	return c.token.AccessToken
}

// SetToken caches an access token for subsequent requests.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if token == "" {
		return
	}
	c.token = bearer(token)
}

// HasToken reports whether an access token is cached.
func (c *Client) HasToken() bool {
	return c.Token() != ""
}

// Authenticate exchanges the client credentials for an access token.
//
// The scopes are joined with "+" into a single scopes parameter. The token
// is returned but not cached; SendRequest does the caching.
func (c *Client) Authenticate(ctx context.Context, scopes []string) (string, error) {
	query := url.Values{}
	query.Set("client_id", c.creds.ClientID)
	query.Set("client_secret", c.creds.ClientSecret)
	query.Set("grant_type", grantType)
	query.Set("scopes", joinScopes(scopes))

	c.logDebugf("genius: requesting token (scopes=%q)", joinScopes(scopes))

	body, err := c.transport.Post(ctx, c.baseURL+tokenPath, FormatJSON, RequestOptions{Query: query})
	if err != nil {
		return "", err
	}

	var tok tokenResponse
	if err := json.Unmarshal(body.JSON, &tok); err != nil {
		return "", fmt.Errorf("genius: failed to parse token response: %w", err)
	}
	if tok.AccessToken == "" {
		return "", ErrNoAccessToken
	}

	return tok.AccessToken, nil
}

// SendRequest performs an authenticated GET against baseURL+endpoint and
// returns the envelope's response payload unchanged.
//
// The first call on a client without a token authenticates, using scope
// "me" for the account endpoint and no scope otherwise, and caches the
// token for the lifetime of the client. A meta.status other than 200 is
// returned as *Error.
func (c *Client) SendRequest(ctx context.Context, endpoint string, opts RequestOptions) (json.RawMessage, error) {
	token, err := c.ensureToken(ctx, scopesFor(endpoint))
	if err != nil {
		return nil, err
	}

	reqURL := c.baseURL + endpoint

	header := http.Header{}
	for k, vs := range opts.Header {
		header[k] = append([]string(nil), vs...)
	}
	req := &http.Request{Header: header}
	token.SetAuthHeader(req)
	header.Set("Accept", "application/json")
	header.Set("User-Agent", c.userAgent)
	opts.Header = header

	body, err := c.transport.Get(ctx, reqURL, FormatJSON, opts)
	if err != nil {
		return nil, err
	}

	var env envelope
	if err := json.Unmarshal(body.JSON, &env); err != nil {
		return nil, fmt.Errorf("genius: failed to parse response envelope: %w", err)
	}

	if env.Meta.Status != StatusOK {
		return nil, &Error{
			Status:  env.Meta.Status,
			URL:     reqURL,
			Message: env.Meta.Message,
		}
	}

	c.logDebugf("genius: %s succeeded", endpoint)
	return env.Response, nil
}

// ensureToken returns the cached token, authenticating first if needed.
// The lock is not held across the token request, so concurrent first calls
// may each fetch a token; the last one stored wins.
func (c *Client) ensureToken(ctx context.Context, scopes []string) (*oauth2.Token, error) {
	c.mu.Lock()
	token := c.token
	c.mu.Unlock()
	if token != nil {
		return token, nil
	}

	access, err := c.Authenticate(ctx, scopes)
	if err != nil {
		return nil, err
	}

	token = bearer(access)
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
	return token, nil
}

// scopesFor returns the scopes an endpoint needs.
func scopesFor(endpoint string) []string {
	if endpoint == AccountEndpoint {
		return []string{ScopeMe}
	}
	return []string{}
}

func joinScopes(scopes []string) string {
	return strings.Join(scopes, "+")
}

func bearer(access string) *oauth2.Token {
	return &oauth2.Token{AccessToken: access, TokenType: "Bearer"}
}

// logDebugf logs a debug message if a logger is configured.
func (c *Client) logDebugf(format string, args ...interface{}) {
	if c.logger != nil {
		c.logger.Debugf(format, args...)
	}
}
