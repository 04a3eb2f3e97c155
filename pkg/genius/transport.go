package genius

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"
)

// Format selects how a successful response body is decoded.
type Format int

const (
	FormatJSON  Format = iota // Body.JSON holds the validated raw JSON
	FormatText                // Body.Text holds the body as a string
	FormatBytes               // Body.Bytes holds the raw body
)

// String returns a human-readable name for the format.
func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatText:
		return "text"
	case FormatBytes:
		return "bytes"
	default:
		return "unknown"
	}
}

// RequestOptions carries the per-call parts of an HTTP request.
type RequestOptions struct {
	Query       url.Values  // Optional: query parameters, appended to the URL
	Header      http.Header // Optional: request headers
	Body        io.Reader   // Optional: request body
	ContentType string      // Optional: Content-Type for Body
}

// Body is a decoded response body. Only the field matching Format is set.
type Body struct {
	Format Format
	JSON   json.RawMessage
	Text   string
	Bytes  []byte
}

// TransportConfig holds transport configuration.
type TransportConfig struct {
	HTTPClient *http.Client // Optional: used as-is and never closed by the transport
	Logger     Logger       // Optional: debug logging
}

// Transport performs single HTTP requests over one session.
//
// The session is created by NewTransport and released by Close. A closed
// transport refuses further requests with ErrClosed.
type Transport struct {
	mu     sync.Mutex
	client *http.Client
	owned  bool
	closed bool
	logger Logger
}

// NewTransport creates a transport with a live session.
func NewTransport(cfg TransportConfig) *Transport {
	t := &Transport{
		client: cfg.HTTPClient,
		logger: cfg.Logger,
	}
	if t.client == nil {
		base := http.DefaultTransport.(*http.Transport).Clone()
		t.client = &http.Client{Transport: base}
		t.owned = true
	}
	return t
}

// Get issues a GET request. See Request.
func (t *Transport) Get(ctx context.Context, rawURL string, format Format, opts RequestOptions) (*Body, error) {
	return t.Request(ctx, http.MethodGet, rawURL, format, opts)
}

// Post issues a POST request. See Request.
func (t *Transport) Post(ctx context.Context, rawURL string, format Format, opts RequestOptions) (*Body, error) {
	return t.Request(ctx, http.MethodPost, rawURL, format, opts)
}

// Request performs one HTTP call and decodes the body according to format.
//
// Any status other than 200 yields an *HTTPError carrying the status code and
// rawURL; the body of a failed response is not read.
func (t *Transport) Request(ctx context.Context, method, rawURL string, format Format, opts RequestOptions) (*Body, error) {
	client, err := t.session()
	if err != nil {
		return nil, err
	}

	target, err := withQuery(rawURL, opts.Query)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, method, target, opts.Body)
	if err != nil {
		return nil, fmt.Errorf("genius: failed to create request: %w", err)
	}
	for k, vs := range opts.Header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	if opts.ContentType != "" {
		req.Header.Set("Content-Type", opts.ContentType)
	}

	t.logDebugf("genius: %s %s", method, rawURL)

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("genius: http request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &HTTPError{StatusCode: resp.StatusCode, URL: rawURL}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("genius: failed to read response: %w", err)
	}

	return decodeBody(data, format)
}

// Close releases the session. It is safe to call more than once.
func (t *Transport) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return nil
	}
	t.closed = true
	if t.owned {
		t.client.CloseIdleConnections()
	}
	t.client = nil
	return nil
}

func (t *Transport) session() (*http.Client, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return nil, ErrClosed
	}
	return t.client, nil
}

// withQuery appends query to rawURL, keeping any parameters already present.
func withQuery(rawURL string, query url.Values) (string, error) {
	if len(query) == 0 {
		return rawURL, nil
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("genius: invalid url %q: %w", rawURL, err)
	}
	q := u.Query()
	for k, vs := range query {
		for _, v := range vs {
			q.Add(k, v)
		}
	}
	u.RawQuery = q.Encode()
	return u.String(), nil
}

func decodeBody(data []byte, format Format) (*Body, error) {
	switch format {
	case FormatJSON:
		if !json.Valid(data) {
			return nil, fmt.Errorf("genius: failed to parse JSON response")
		}
		return &Body{Format: FormatJSON, JSON: json.RawMessage(data)}, nil
	case FormatText:
		return &Body{Format: FormatText, Text: string(data)}, nil
	case FormatBytes:
		return &Body{Format: FormatBytes, Bytes: data}, nil
	default:
		return nil, fmt.Errorf("genius: unsupported body format %d", int(format))
	}
}

func (t *Transport) logDebugf(format string, args ...interface{}) {
	if t.logger != nil {
		t.logger.Debugf(format, args...)
	}
}
