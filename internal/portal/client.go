package portal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/net/html"

	"github.com/legisclaro/legisclaro/internal/citations"
)

// ErrNoResult is returned by Search when the portal's result page is
// missing the expected structure: no result container, no link, or no
// heading inside the first hit.
var ErrNoResult = errors.New("portal: no usable search result")

const requestTimeout = 10 * time.Second

// Client talks to a Planalto-style legislation portal. Search results are
// expected as a listing page whose first hit is a div with class "item"
// containing an anchor and an h3 title; the anchor target is the statute
// page itself.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a portal client for the given base URL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: requestTimeout},
	}
}

// Search queries the portal and parses the first result entry.
func (c *Client) Search(ctx context.Context, query string) (*ResultRef, error) {
	searchURL := fmt.Sprintf("%s/legislacao-1/pesquisa?q=%s", c.baseURL, url.QueryEscape(query))
	doc, err := c.getHTML(ctx, searchURL)
	if err != nil {
		return nil, err
	}

	item := findByClass(doc, "div", "item")
	if item == nil {
		return nil, ErrNoResult
	}
	link := findByTag(item, "a")
	if link == nil {
		return nil, ErrNoResult
	}
	heading := findByTag(item, "h3")
	if heading == nil {
		return nil, ErrNoResult
	}
	href := attr(link, "href")
	if href == "" {
		return nil, ErrNoResult
	}

	return &ResultRef{
		Title: strings.TrimSpace(nodeText(heading)),
		Link:  href,
	}, nil
}

// FetchText retrieves a statute page and extracts its plain text.
func (c *Client) FetchText(ctx context.Context, link string) (string, error) {
	doc, err := c.getHTML(ctx, link)
	if err != nil {
		return "", err
	}
	return nodeText(doc), nil
}

// Fetch resolves a law id to its statute content. Any failure along the
// way (network, timeout, missing structure) is logged and reported as a
// nil result so the pipeline can proceed with whatever it has.
func (c *Client) Fetch(ctx context.Context, lawID citations.LawID) *StatuteContent {
	ref, err := c.Search(ctx, string(lawID))
	if err != nil {
		log.Printf("portal: search for %q failed: %v", lawID, err)
		return nil
	}

	text, err := c.FetchText(ctx, ref.Link)
	if err != nil {
		log.Printf("portal: fetching %s failed: %v", ref.Link, err)
		return nil
	}

	return &StatuteContent{
		ID:      lawID,
		Title:   ref.Title,
		URL:     ref.Link,
		Content: truncate(text, maxContentLen),
	}
}

func (c *Client) getHTML(ctx context.Context, rawURL string) (*html.Node, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("requesting %s: %w", rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("requesting %s: HTTP %d", rawURL, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 2<<20))
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", rawURL, err)
	}

	doc, err := html.Parse(strings.NewReader(string(body)))
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", rawURL, err)
	}
	return doc, nil
}

// truncate caps s at max runes. Statute text is accented Portuguese, so
// the cut must not split a multi-byte character.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
