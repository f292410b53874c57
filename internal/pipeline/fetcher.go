package pipeline

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/ppiankov/credo/internal/model"
	"github.com/ppiankov/credo/internal/util"
	"github.com/ppiankov/credo/internal/worker"
	"golang.org/x/net/html"
)

// Fetcher retrieves a web page and reduces it to analyzable plain text.
// It honors robots.txt (including crawl delays) and rate-limits per host.
type Fetcher struct {
	httpClient *http.Client
	robots     *util.RobotsChecker
	limiter    *worker.Limiter
	userAgent  string
	maxBytes   int64
}

// NewFetcher creates a new Fetcher with the given configuration
func NewFetcher(cfg model.HTTPConfig) *Fetcher {
	return &Fetcher{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
			Transport: &http.Transport{
				Proxy: util.NewProxyFunc(cfg.HTTPProxy, cfg.HTTPSProxy, cfg.NoProxy),
			},
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 3 {
					return fmt.Errorf("stopped after 3 redirects")
				}
				return nil
			},
		},
		robots:    util.NewRobotsChecker(cfg.UserAgent, cfg.Timeout),
		limiter:   worker.NewLimiter(1, 2), // polite default: 1 req/s per host
		userAgent: cfg.UserAgent,
		maxBytes:  cfg.MaxBodyBytes,
	}
}

// SourceText is a fetched page reduced to text
type SourceText struct {
	Text     string
	Subject  string
	FinalURL string
}

// Fetch retrieves the URL and extracts its visible text
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (*SourceText, error) {
	allowed, crawlDelay, err := f.robots.CanFetch(ctx, rawURL)
	if err != nil {
		return nil, fmt.Errorf("robots check: %w", err)
	}
	if !allowed {
		return nil, fmt.Errorf("fetch disallowed by robots.txt: %s", rawURL)
	}

	if err := f.limiter.WaitWithDelay(ctx, rawURL, crawlDelay); err != nil {
		return nil, fmt.Errorf("rate limit: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status: %d %s", resp.StatusCode, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBytes))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	text := string(body)
	if strings.Contains(resp.Header.Get("Content-Type"), "html") {
		text, err = visibleText(text)
		if err != nil {
			return nil, fmt.Errorf("extract text: %w", err)
		}
	}

	finalURL := resp.Request.URL.String()
	return &SourceText{
		Text:     strings.TrimSpace(text),
		Subject:  subjectFromURL(finalURL),
		FinalURL: finalURL,
	}, nil
}

// visibleText extracts text nodes from HTML, skipping scripts/styles
func visibleText(htmlContent string) (string, error) {
	doc, err := html.Parse(strings.NewReader(htmlContent))
	if err != nil {
		return "", err
	}

	var buf strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "noscript", "iframe":
				return
			}
		}

		if n.Type == html.TextNode {
			text := strings.TrimSpace(n.Data)
			if text != "" {
				buf.WriteString(text)
				buf.WriteString(" ")
			}
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return buf.String(), nil
}

// subjectFromURL derives a human-readable subject from the URL
func subjectFromURL(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}

	path := strings.Trim(parsed.Path, "/")
	if path == "" {
		return parsed.Host
	}

	segments := strings.Split(path, "/")
	last := segments[len(segments)-1]
	last = strings.ReplaceAll(last, "_", " ")
	last = strings.ReplaceAll(last, "-", " ")
	if idx := strings.LastIndex(last, "."); idx > 0 {
		last = last[:idx]
	}

	return last
}
