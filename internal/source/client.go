package source

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Fetcher is the two-step feed protocol: an id listing, then the items.
type Fetcher interface {
	FetchIDs(ctx context.Context) ([]string, error)
	FetchItems(ctx context.Context, ids []string) ([]Item, error)
}

// Ensure Client implements Fetcher and Source at compile time.
var (
	_ Fetcher = (*Client)(nil)
	_ Source  = (*Client)(nil)
)

// Client reads items from an HTTP feed.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
}

const (
	idsPath          = "ids.json"
	itemsPath        = "data.json"
	defaultUserAgent = "cubecarousel/0.1"
	requestTimeout   = 5 * time.Second
)

// IDList is the body of the id listing.
type IDList struct {
	IDs []string `json:"ids"`
}

// ItemList is the body of the item payload.
type ItemList struct {
	Items []Item `json:"items"`
}

// NewClient builds a Client rooted at feedURL. Relative endpoints resolve
// against it, so "http://host/mocks" reads http://host/mocks/ids.json.
func NewClient(feedURL string) (*Client, error) {
	base, err := parseBaseURL(feedURL)
	if err != nil {
		return nil, err
	}
	return &Client{
		baseURL: base,
		http: &http.Client{
			Timeout: requestTimeout,
		},
		userAgent: defaultUserAgent,
	}, nil
}

// Fetch lists the ids and then retrieves their items.
func (c *Client) Fetch(ctx context.Context) ([]Item, error) {
	ids, err := c.FetchIDs(ctx)
	if err != nil {
		return nil, err
	}
	return c.FetchItems(ctx, ids)
}

// FetchIDs retrieves the id listing.
func (c *Client) FetchIDs(ctx context.Context) ([]string, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var payload IDList
	if err := c.doURL(ctx, http.MethodGet, &url.URL{Path: idsPath}, &payload); err != nil {
		return nil, err
	}
	return payload.IDs, nil
}

// FetchItems retrieves the items for ids. Items the feed returns without an
// id are kept; the order of the response is preserved.
func (c *Client) FetchItems(ctx context.Context, ids []string) ([]Item, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	values := url.Values{}
	if len(ids) > 0 {
		values.Set("ids", strings.Join(ids, ","))
	}
	rel := &url.URL{Path: itemsPath, RawQuery: values.Encode()}
	var payload ItemList
	if err := c.doURL(ctx, http.MethodGet, rel, &payload); err != nil {
		return nil, err
	}
	return payload.Items, nil
}

func (c *Client) doURL(ctx context.Context, method string, rel *url.URL, dest any) error {
	reqURL := c.baseURL.ResolveReference(rel)
	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("feed %s returned status %d", rel.Path, resp.StatusCode)
	}
	if dest == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func parseBaseURL(feedURL string) (*url.URL, error) {
	trimmed := strings.TrimSpace(feedURL)
	if trimmed == "" {
		return nil, fmt.Errorf("feed url is empty")
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse feed url %q: %w", feedURL, err)
	}
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
