package cmd

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/jfmyers9/genius/internal/lookup"
	"github.com/mattn/go-runewidth"
)

func TestPadToWidth(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		width    int
		expected string
	}{
		{
			name:     "no padding when width is 0",
			input:    "Hello",
			width:    0,
			expected: "Hello",
		},
		{
			name:     "no padding when width is negative",
			input:    "Hello",
			width:    -1,
			expected: "Hello",
		},
		{
			name:     "pad short text with spaces",
			input:    "Hi",
			width:    10,
			expected: "Hi        ",
		},
		{
			name:     "exact width unchanged",
			input:    "Hello",
			width:    5,
			expected: "Hello",
		},
		{
			name:     "truncate long title with ellipsis",
			input:    "Bohemian Rhapsody (Remastered 2011)",
			width:    20,
			expected: "Bohemian Rhapsody...",
		},
		{
			name:     "handle emoji correctly",
			input:    "🎵 Music",
			width:    15,
			expected: "🎵 Music       ", // emoji is 2 columns, 8 total + 7 spaces
		},
		{
			name:     "handle CJK title",
			input:    "夜に駆ける",
			width:    12,
			expected: "夜に駆ける  ",
		},
		{
			name:     "truncate CJK title",
			input:    "日本語とても長いタイトル",
			width:    10,
			expected: "日本語... ", // 6 columns + 3 for "...", 1 space left over
		},
		{
			name:     "empty string padding",
			input:    "",
			width:    5,
			expected: "     ",
		},
		{
			name:     "minimum width for truncation",
			input:    "Hello",
			width:    3,
			expected: "...",
		},
		{
			name:     "width smaller than ellipsis",
			input:    "Hello",
			width:    2,
			expected: "..",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := padToWidth(tt.input, tt.width)
			if result != tt.expected {
				t.Errorf("padToWidth(%q, %d) = %q, expected %q",
					tt.input, tt.width, result, tt.expected)
			}

			// Verify the result has the expected display width (if width > 0)
			if tt.width > 0 {
				resultWidth := runewidth.StringWidth(result)
				if resultWidth != tt.width {
					t.Errorf("padToWidth(%q, %d) produced width %d, expected %d",
						tt.input, tt.width, resultWidth, tt.width)
				}
			}
		})
	}
}

func TestFormatHit(t *testing.T) {
	line := formatHit(378195, "夜に駆ける", "YOASOBI", 12)

	want := "378195      夜に駆ける    YOASOBI"
	if line != want {
		t.Errorf("formatHit() = %q, expected %q", line, want)
	}
}

func TestFormatEntry(t *testing.T) {
	ts := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		entry lookup.Entry
		want  string
	}{
		{
			name:  "success",
			entry: lookup.Entry{Endpoint: "/songs/1", Status: 200, Timestamp: ts},
			want:  "ok",
		},
		{
			name:  "api failure",
			entry: lookup.Entry{Endpoint: "/songs/2", Status: 404, Error: "not found", Timestamp: ts},
			want:  "failed (404)",
		},
		{
			name:  "no response",
			entry: lookup.Entry{Endpoint: "/search", Error: "connection refused", Timestamp: ts},
			want:  "failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line := formatEntry(tt.entry)
			if !strings.HasSuffix(line, "  "+tt.want) {
				t.Errorf("formatEntry() = %q, expected status %q", line, tt.want)
			}
			if !strings.Contains(line, tt.entry.Endpoint) {
				t.Errorf("formatEntry() = %q, missing endpoint", line)
			}
		})
	}
}

func TestParseParams(t *testing.T) {
	query, err := parseParams([]string{"text_format=plain", "per_page=5", "q=a=b"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if query.Get("text_format") != "plain" || query.Get("per_page") != "5" {
		t.Errorf("unexpected query %v", query)
	}
	if query.Get("q") != "a=b" {
		t.Errorf("expected value to keep later '=', got %q", query.Get("q"))
	}

	for _, bad := range []string{"novalue", "=x"} {
		if _, err := parseParams([]string{bad}); err == nil {
			t.Errorf("expected error for %q", bad)
		}
	}
}

func TestParseID(t *testing.T) {
	if id, err := parseID("42"); err != nil || id != 42 {
		t.Errorf("parseID(42) = %d, %v", id, err)
	}
	for _, bad := range []string{"0", "-1", "abc", ""} {
		if _, err := parseID(bad); err == nil {
			t.Errorf("expected error for %q", bad)
		}
	}
}

func TestPrintJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := printJSON(&buf, json.RawMessage(`{"song":{"id":1}}`)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "{\n  \"song\": {\n    \"id\": 1\n  }\n}\n"
	if buf.String() != want {
		t.Errorf("printJSON() = %q, expected %q", buf.String(), want)
	}
}
