package pipeline

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/ppiankov/credo/internal/model"
)

func testHTTPConfig() model.HTTPConfig {
	return model.HTTPConfig{
		Timeout:      5 * time.Second,
		UserAgent:    "credo-test",
		MaxBodyBytes: 1 << 20,
	}
}

func TestFetcher_Fetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/robots.txt" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if got := r.Header.Get("User-Agent"); got != "credo-test" {
			t.Errorf("Expected credo-test user agent, got %q", got)
		}
		w.Header().Set("Content-Type", "text/html")
		_, _ = fmt.Fprint(w, `<html><head><style>p{color:red}</style></head>
<body><script>alert(1)</script><p>Jean loves Paris.</p></body></html>`)
	}))
	defer server.Close()

	fetcher := NewFetcher(testHTTPConfig())

	result, err := fetcher.Fetch(context.Background(), server.URL+"/articles/jean_and_paris.html")
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}

	if !strings.Contains(result.Text, "Jean loves Paris.") {
		t.Errorf("Expected visible text, got %q", result.Text)
	}
	if strings.Contains(result.Text, "alert") || strings.Contains(result.Text, "color:red") {
		t.Errorf("Script/style content leaked: %q", result.Text)
	}
	if result.Subject != "jean and paris" {
		t.Errorf("Expected subject 'jean and paris', got %q", result.Subject)
	}
}

func TestFetcher_RobotsDisallowed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/robots.txt" {
			_, _ = fmt.Fprint(w, "User-agent: *\nDisallow: /private/\n")
			return
		}
		t.Errorf("Disallowed path must not be fetched: %s", r.URL.Path)
	}))
	defer server.Close()

	fetcher := NewFetcher(testHTTPConfig())

	_, err := fetcher.Fetch(context.Background(), server.URL+"/private/page.html")
	if err == nil {
		t.Fatal("Expected error for disallowed URL, got nil")
	}
	if !strings.Contains(err.Error(), "robots.txt") {
		t.Errorf("Expected robots.txt error, got %v", err)
	}
}

func TestFetcher_ErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/robots.txt" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	fetcher := NewFetcher(testHTTPConfig())

	if _, err := fetcher.Fetch(context.Background(), server.URL+"/missing"); err == nil {
		t.Error("Expected error for 404, got nil")
	}
}

func TestFetcher_PlainTextPassthrough(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/robots.txt" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "text/plain")
		_, _ = fmt.Fprint(w, "Jean aime Paris.\n")
	}))
	defer server.Close()

	fetcher := NewFetcher(testHTTPConfig())

	result, err := fetcher.Fetch(context.Background(), server.URL+"/notes.txt")
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if result.Text != "Jean aime Paris." {
		t.Errorf("Expected trimmed plain text, got %q", result.Text)
	}
}

func TestSubjectFromURL(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"https://en.wikipedia.org/wiki/First-order_logic", "First order logic"},
		{"https://example.com/", "example.com"},
		{"https://example.com/a/b/notes.txt", "notes"},
	}
	for _, tt := range tests {
		if got := subjectFromURL(tt.url); got != tt.want {
			t.Errorf("subjectFromURL(%q) = %q, want %q", tt.url, got, tt.want)
		}
	}
}
