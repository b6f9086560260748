package pipeline

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/net/html"

	"github.com/avosk/discern/internal/cache"
	"github.com/avosk/discern/internal/model"
	"github.com/avosk/discern/internal/util"
)

// Fetcher retrieves a page and reduces it to visible text for analysis.
// Fetched text is cached per URL so repeated scans stay polite.
type Fetcher struct {
	httpClient *http.Client
	robots     *util.RobotsChecker // nil when robots checking is disabled
	pages      cache.Cache         // nil disables page caching
	userAgent  string
	maxBytes   int64
	cacheTTL   time.Duration
}

// NewFetcher creates a fetcher from scan configuration.
func NewFetcher(cfg model.ScanConfig, pages cache.Cache, pageTTL time.Duration) *Fetcher {
	var robots *util.RobotsChecker
	if cfg.RespectRobots {
		robots = util.NewRobotsChecker(cfg.UserAgent, cfg.Timeout)
	}

	return &Fetcher{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 3 {
					return fmt.Errorf("stopped after 3 redirects")
				}
				return nil
			},
		},
		robots:    robots,
		pages:     pages,
		userAgent: cfg.UserAgent,
		maxBytes:  cfg.MaxBodyBytes,
		cacheTTL:  pageTTL,
	}
}

// Page is the analysable content of a fetched URL.
type Page struct {
	Text     string
	FinalURL string
}

// Fetch retrieves the URL, honoring robots.txt when configured, and
// returns its visible text.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (*Page, error) {
	if f.pages != nil {
		if data, found := f.pages.Get(cache.PageKey(rawURL)); found {
			return &Page{Text: string(data), FinalURL: rawURL}, nil
		}
	}

	if f.robots != nil {
		allowed, crawlDelay, err := f.robots.CanFetch(ctx, rawURL)
		if err != nil {
			return nil, fmt.Errorf("robots check: %w", err)
		}
		if !allowed {
			return nil, fmt.Errorf("robots.txt disallows fetching %s", rawURL)
		}
		if crawlDelay > 0 {
			select {
			case <-time.After(crawlDelay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}
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
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status: %d %s", resp.StatusCode, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBytes))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	text, err := VisibleText(string(body))
	if err != nil {
		return nil, fmt.Errorf("extract text: %w", err)
	}

	if f.pages != nil {
		_ = f.pages.Set(cache.PageKey(rawURL), []byte(text), f.cacheTTL)
	}

	return &Page{
		Text:     text,
		FinalURL: resp.Request.URL.String(),
	}, nil
}

// VisibleText reduces an HTML document to its rendered text, skipping
// script, style and other non-content elements.
func VisibleText(htmlContent string) (string, error) {
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

	return strings.TrimSpace(buf.String()), nil
}
