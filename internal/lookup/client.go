package lookup

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/jfmyers9/genius/pkg/genius"
	"github.com/rs/zerolog"
)

// Options configures a lookup client
type Options struct {
	ClientID     string
	ClientSecret string
	AccessToken  string
	BaseURL      string
	UserAgent    string
	Timeout      time.Duration
	Logger       zerolog.Logger
	History      *History // Optional: records every lookup
}

// Client wraps the Genius API client for the CLI
type Client struct {
	client  *genius.Client
	history *History
	logger  zerolog.Logger
}

// New creates a new Genius client for CLI use
func New(opts Options) (*Client, error) {
	var httpClient *http.Client
	if opts.Timeout > 0 {
		httpClient = &http.Client{Timeout: opts.Timeout}
	}

	client, err := genius.NewClient(genius.Config{
		ClientID:     opts.ClientID,
		ClientSecret: opts.ClientSecret,
		AccessToken:  opts.AccessToken,
		BaseURL:      opts.BaseURL,
		UserAgent:    opts.UserAgent,
		HTTPClient:   httpClient,
		Logger:       zerologAdapter{logger: opts.Logger},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genius client: %w", err)
	}

	return &Client{
		client:  client,
		history: opts.History,
		logger:  opts.Logger,
	}, nil
}

// Close releases the underlying HTTP session
func (c *Client) Close() error {
	return c.client.Close()
}

// IssueToken requests a new access token with the given scopes
func (c *Client) IssueToken(ctx context.Context, scopes ...string) (string, error) {
	token, err := c.client.Auth().IssueToken(ctx, scopes...)
	c.record(ctx, "/oauth/token", err)
	if err != nil {
		return "", fmt.Errorf("failed to issue token: %w", err)
	}
	return token, nil
}

// Raw performs an authenticated GET and returns the response payload
func (c *Client) Raw(ctx context.Context, endpoint string, query url.Values) (json.RawMessage, error) {
	resp, err := c.client.SendRequest(ctx, endpoint, genius.RequestOptions{Query: query})
	c.record(ctx, endpoint, err)
	if err != nil {
		return nil, fmt.Errorf("request to %s failed: %w", endpoint, err)
	}
	return resp, nil
}

// Song fetches a song by ID
func (c *Client) Song(ctx context.Context, id int) (*genius.Song, error) {
	song, err := c.client.Songs().Get(ctx, id)
	c.record(ctx, fmt.Sprintf("/songs/%d", id), err)
	if err != nil {
		return nil, fmt.Errorf("failed to get song %d: %w", id, err)
	}
	return song, nil
}

// Artist fetches an artist by ID
func (c *Client) Artist(ctx context.Context, id int) (*genius.Artist, error) {
	artist, err := c.client.Artists().Get(ctx, id)
	c.record(ctx, fmt.Sprintf("/artists/%d", id), err)
	if err != nil {
		return nil, fmt.Errorf("failed to get artist %d: %w", id, err)
	}
	return artist, nil
}

// ArtistSongs fetches one page of an artist's songs
func (c *Client) ArtistSongs(ctx context.Context, id int, opts genius.ArtistSongsOptions) (*genius.ArtistSongsPage, error) {
	page, err := c.client.Artists().Songs(ctx, id, opts)
	c.record(ctx, fmt.Sprintf("/artists/%d/songs", id), err)
	if err != nil {
		return nil, fmt.Errorf("failed to get songs for artist %d: %w", id, err)
	}
	return page, nil
}

// Search runs a full-text search
func (c *Client) Search(ctx context.Context, query string) ([]genius.SearchHit, error) {
	hits, err := c.client.Search(ctx, query)
	c.record(ctx, "/search", err)
	if err != nil {
		return nil, fmt.Errorf("search failed: %w", err)
	}
	return hits, nil
}

// Account fetches the account behind the token
func (c *Client) Account(ctx context.Context) (*genius.Account, error) {
	account, err := c.client.Account(ctx)
	c.record(ctx, genius.AccountEndpoint, err)
	if err != nil {
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return account, nil
}

// Token returns the access token currently cached by the client
func (c *Client) Token() string {
	return c.client.Token()
}

// record writes a history entry. History failures are logged, never returned.
func (c *Client) record(ctx context.Context, endpoint string, err error) {
	if c.history == nil {
		return
	}

	entry := Entry{
		Endpoint:  endpoint,
		Status:    statusOf(err),
		Timestamp: time.Now(),
	}
	if err != nil {
		entry.Error = err.Error()
	}

	if _, herr := c.history.Add(ctx, entry); herr != nil {
		c.logger.Warn().Err(herr).Str("endpoint", endpoint).Msg("Failed to record lookup")
	}
}

// statusOf returns the HTTP or envelope status for err, 200 for nil and 0
// when no status is known
func statusOf(err error) int {
	if err == nil {
		return genius.StatusOK
	}
	var apiErr *genius.Error
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	var httpErr *genius.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode
	}
	return 0
}

// zerologAdapter satisfies genius.Logger with a zerolog.Logger
type zerologAdapter struct {
	logger zerolog.Logger
}

func (a zerologAdapter) Debugf(format string, args ...interface{}) {
	a.logger.Debug().Msgf(format, args...)
}
