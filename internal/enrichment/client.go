// Package enrichment builds business profiles from advertiser websites.
// It is best-effort infrastructure: callers must treat any error as "no
// profile" and fall back to their own defaults.
package enrichment

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/net/html"

	"dealfinder_backend/platform/logger"
)

const (
	defaultHTTPTimeout = 10 * time.Second
	maxBodyBytes       = 1 << 20 // pages larger than 1 MiB are cut off
	userAgent          = "DealFinderBot/1.0 (+https://dealfinder.example/bot)"
)

// Client fetches and parses one advertiser page.
type Client struct {
	httpClient *http.Client
	log        *logger.Logger
}

func NewClient(log *logger.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: defaultHTTPTimeout},
		log:        log,
	}
}

// pageContent is the distilled text of one fetched page.
type pageContent struct {
	Title           string
	MetaDescription string
	Paragraphs      []string
	ListItems       []string
}

// FetchPage downloads and parses the page at url. Only http(s) URLs are
// accepted; anything else is an error before any network call.
func (c *Client) FetchPage(ctx context.Context, pageURL string) (*pageContent, error) {
	if !strings.HasPrefix(pageURL, "http://") && !strings.HasPrefix(pageURL, "https://") {
		return nil, fmt.Errorf("unsupported url scheme: %s", pageURL)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "text/html")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch page: unexpected status %d", resp.StatusCode)
	}

	doc, err := html.Parse(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("parse page: %w", err)
	}

	return extractContent(doc), nil
}

// extractContent walks the parsed tree once, collecting the title, the meta
// description and the visible paragraph and list text.
func extractContent(doc *html.Node) *pageContent {
	content := &pageContent{}

	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "noscript":
				return
			case "title":
				if content.Title == "" {
					content.Title = nodeText(n)
				}
			case "meta":
				if attrValue(n, "name") == "description" {
					content.MetaDescription = strings.TrimSpace(attrValue(n, "content"))
				}
			case "p":
				if text := nodeText(n); text != "" {
					content.Paragraphs = append(content.Paragraphs, text)
				}
				return
			case "li":
				if text := nodeText(n); text != "" {
					content.ListItems = append(content.ListItems, text)
				}
				return
			}
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(doc)

	return content
}

func nodeText(n *html.Node) string {
	var sb strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(n)
	return strings.Join(strings.Fields(sb.String()), " ")
}

func attrValue(n *html.Node, key string) string {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}
