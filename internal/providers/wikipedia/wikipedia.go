// Package wikipedia implements providers.Encyclopedia on top of the
// MediaWiki search API and the REST page summary endpoint.
package wikipedia

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/brogergvhs/starsite/internal/providers"
	"github.com/brogergvhs/starsite/internal/util"
)

const (
	DefaultAPIURL  = "https://en.wikipedia.org/w/api.php"
	DefaultRESTURL = "https://en.wikipedia.org/api/rest_v1"
)

type Client struct {
	client  *http.Client
	apiURL  string
	restURL string
}

func New(c *http.Client) *Client {
	return NewWithEndpoints(c, DefaultAPIURL, DefaultRESTURL)
}

// NewWithEndpoints points the client at another MediaWiki installation.
func NewWithEndpoints(c *http.Client, apiURL, restURL string) *Client {
	return &Client{
		client:  c,
		apiURL:  apiURL,
		restURL: strings.TrimRight(restURL, "/"),
	}
}

type searchResponse struct {
	Query struct {
		Search []struct {
			Title string `json:"title"`
		} `json:"search"`
	} `json:"query"`
}

type summaryResponse struct {
	Extract     *string `json:"extract"`
	ContentURLs struct {
		Desktop struct {
			Page string `json:"page"`
		} `json:"desktop"`
	} `json:"content_urls"`
}

// LookupSummary searches for topic and returns the summary of the best hit.
func (c *Client) LookupSummary(ctx context.Context, topic string) (providers.Summary, error) {
	notFound := providers.Summary{Text: providers.NotFoundText}

	title, err := c.topHit(ctx, topic)
	if err != nil {
		return notFound, err
	}
	if title == "" {
		return notFound, nil
	}

	target := c.restURL + "/page/summary/" + url.PathEscape(strings.ReplaceAll(title, " ", "_"))
	body, err := util.Get(ctx, c.client, target, nil)
	if err != nil {
		return notFound, fmt.Errorf("wikipedia summary %q: %w", title, err)
	}

	var sr summaryResponse
	if err := json.Unmarshal(body, &sr); err != nil {
		return notFound, fmt.Errorf("wikipedia summary %q: %w", title, err)
	}
	if sr.Extract == nil {
		return notFound, nil
	}

	return providers.Summary{
		Text: providers.CleanText(*sr.Extract),
		URL:  sr.ContentURLs.Desktop.Page,
	}, nil
}

func (c *Client) topHit(ctx context.Context, topic string) (string, error) {
	q := url.Values{}
	q.Set("action", "query")
	q.Set("list", "search")
	q.Set("srsearch", topic)
	q.Set("format", "json")

	body, err := util.Get(ctx, c.client, c.apiURL+"?"+q.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("wikipedia search %q: %w", topic, err)
	}

	var sr searchResponse
	if err := json.Unmarshal(body, &sr); err != nil {
		return "", fmt.Errorf("wikipedia search %q: %w", topic, err)
	}
	if len(sr.Query.Search) == 0 {
		return "", nil
	}

	return sr.Query.Search[0].Title, nil
}
