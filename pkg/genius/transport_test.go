package genius

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"
)

// TestTransport_Request tests body decoding for each format.
func TestTransport_Request(t *testing.T) {
	tests := []struct {
		name        string
		response    string
		format      Format
		wantJSON    string
		wantText    string
		wantBytes   string
		wantErr     bool
		errContains string
	}{
		{
			name:     "json",
			response: `{"a":1,"b":[true,null]}`,
			format:   FormatJSON,
			wantJSON: `{"a":1,"b":[true,null]}`,
		},
		{
			name:     "text",
			response: "plain lyrics\nline two",
			format:   FormatText,
			wantText: "plain lyrics\nline two",
		},
		{
			name:      "bytes",
			response:  "\x00\x01binary",
			format:    FormatBytes,
			wantBytes: "\x00\x01binary",
		},
		{
			name:        "invalid json",
			response:    `{"a":`,
			format:      FormatJSON,
			wantErr:     true,
			errContains: "failed to parse JSON",
		},
		{
			name:        "unknown format",
			response:    `{}`,
			format:      Format(42),
			wantErr:     true,
			errContains: "unsupported body format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
				if _, err := w.Write([]byte(tt.response)); err != nil {
					t.Errorf("failed to write response body: %v", err)
				}
			}))
			defer server.Close()

			transport := NewTransport(TransportConfig{})
			defer transport.Close()

			body, err := transport.Get(context.Background(), server.URL, tt.format, RequestOptions{})

			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("expected error to contain %q, got %q", tt.errContains, err.Error())
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if body.Format != tt.format {
				t.Errorf("expected format %s, got %s", tt.format, body.Format)
			}
			if string(body.JSON) != tt.wantJSON {
				t.Errorf("expected JSON %q, got %q", tt.wantJSON, string(body.JSON))
			}
			if body.Text != tt.wantText {
				t.Errorf("expected text %q, got %q", tt.wantText, body.Text)
			}
			if string(body.Bytes) != tt.wantBytes {
				t.Errorf("expected bytes %q, got %q", tt.wantBytes, string(body.Bytes))
			}
		})
	}
}

// TestTransport_HTTPError tests that every non-200 status fails with the
// status code and requested URL.
func TestTransport_HTTPError(t *testing.T) {
	statuses := []int{
		http.StatusCreated,
		http.StatusNoContent,
		http.StatusMovedPermanently,
		http.StatusBadRequest,
		http.StatusUnauthorized,
		http.StatusNotFound,
		http.StatusInternalServerError,
		http.StatusServiceUnavailable,
	}

	for _, status := range statuses {
		t.Run(http.StatusText(status), func(t *testing.T) {
			var attempts atomic.Int32
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				attempts.Add(1)
				w.Header().Set("Location", "/elsewhere")
				w.WriteHeader(status)
				_, _ = w.Write([]byte(`{"meta":{"status":200},"response":{}}`))
			}))
			defer server.Close()

			client := server.Client()
			client.CheckRedirect = func(req *http.Request, via []*http.Request) error {
				return http.ErrUseLastResponse
			}
			transport := NewTransport(TransportConfig{HTTPClient: client})
			defer transport.Close()

			target := server.URL + "/songs/1"
			body, err := transport.Get(context.Background(), target, FormatJSON, RequestOptions{})
			if body != nil {
				t.Errorf("expected nil body, got %+v", body)
			}

			var httpErr *HTTPError
			if !errors.As(err, &httpErr) {
				t.Fatalf("expected *HTTPError, got %v", err)
			}
			if httpErr.StatusCode != status {
				t.Errorf("expected status %d, got %d", status, httpErr.StatusCode)
			}
			if httpErr.URL != target {
				t.Errorf("expected URL %q, got %q", target, httpErr.URL)
			}
			if n := attempts.Load(); n != 1 {
				t.Errorf("expected 1 attempt, got %d", n)
			}
		})
	}
}

// TestTransport_Options tests that method, query, headers and body are sent.
func TestTransport_Options(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "POST" {
			t.Errorf("expected POST request, got %s", r.Method)
		}
		if got := r.URL.Query().Get("existing"); got != "1" {
			t.Errorf("expected existing=1, got %q", got)
		}
		if got := r.URL.Query().Get("scopes"); got != "a+b" {
			t.Errorf("expected scopes a+b, got %q", got)
		}
		if got := r.Header.Get("X-Test"); got != "yes" {
			t.Errorf("expected X-Test yes, got %q", got)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/x-www-form-urlencoded" {
			t.Errorf("expected form Content-Type, got %q", ct)
		}
		if err := r.ParseForm(); err != nil {
			t.Errorf("failed to parse form: %v", err)
		}
		if got := r.PostForm.Get("field"); got != "value" {
			t.Errorf("expected field=value, got %q", got)
		}
		_, _ = w.Write([]byte("ok"))
	}))
	defer server.Close()

	transport := NewTransport(TransportConfig{})
	defer transport.Close()

	body, err := transport.Post(context.Background(), server.URL+"/path?existing=1", FormatText, RequestOptions{
		Query:       url.Values{"scopes": {"a+b"}},
		Header:      http.Header{"X-Test": {"yes"}},
		Body:        strings.NewReader("field=value"),
		ContentType: "application/x-www-form-urlencoded",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if body.Text != "ok" {
		t.Errorf("expected body ok, got %q", body.Text)
	}
}

// TestTransport_Close tests the session lifecycle.
func TestTransport_Close(t *testing.T) {
	var requests atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	transport := NewTransport(TransportConfig{})

	if _, err := transport.Get(context.Background(), server.URL, FormatJSON, RequestOptions{}); err != nil {
		t.Fatalf("unexpected error before close: %v", err)
	}

	if err := transport.Close(); err != nil {
		t.Fatalf("unexpected close error: %v", err)
	}
	if err := transport.Close(); err != nil {
		t.Fatalf("expected second close to be a no-op, got %v", err)
	}

	_, err := transport.Get(context.Background(), server.URL, FormatJSON, RequestOptions{})
	if !errors.Is(err, ErrClosed) {
		t.Errorf("expected ErrClosed, got %v", err)
	}
	if n := requests.Load(); n != 1 {
		t.Errorf("expected 1 request to reach the server, got %d", n)
	}
}

// TestTransport_ContextCancellation tests context cancellation.
func TestTransport_ContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	transport := NewTransport(TransportConfig{})
	defer transport.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := transport.Get(ctx, server.URL, FormatJSON, RequestOptions{})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestFormat_String(t *testing.T) {
	tests := map[Format]string{
		FormatJSON:  "json",
		FormatText:  "text",
		FormatBytes: "bytes",
		Format(9):   "unknown",
	}
	for format, want := range tests {
		if got := format.String(); got != want {
			t.Errorf("Format(%d).String() = %q, want %q", int(format), got, want)
		}
	}
}
