// Package duckduckgo implements providers.Searcher against DuckDuckGo's
// HTML results page and its image JSON endpoint.
package duckduckgo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/brogergvhs/starsite/internal/providers"
	"github.com/brogergvhs/starsite/internal/util"
)

const (
	DefaultHTMLURL  = "https://html.duckduckgo.com/html/"
	DefaultImageURL = "https://duckduckgo.com"
)

var reVQD = regexp.MustCompile(`vqd=["']?([\d-]+)["']?`)

type Client struct {
	client   *http.Client
	htmlURL  string
	imageURL string
}

func New(c *http.Client) *Client {
	return NewWithEndpoints(c, DefaultHTMLURL, DefaultImageURL)
}

func NewWithEndpoints(c *http.Client, htmlURL, imageURL string) *Client {
	return &Client{
		client:   c,
		htmlURL:  htmlURL,
		imageURL: strings.TrimRight(imageURL, "/"),
	}
}

func (c *Client) SearchText(ctx context.Context, query string, maxResults int) ([]providers.TextResult, error) {
	if maxResults <= 0 {
		return nil, nil
	}

	q := url.Values{}
	q.Set("q", query)

	body, err := util.Get(ctx, c.client, c.htmlURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("duckduckgo text %q: %w", query, err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(body)))
	if err != nil {
		return nil, fmt.Errorf("duckduckgo text %q: %w", query, err)
	}

	return parseTextResults(doc, maxResults), nil
}

func parseTextResults(doc *goquery.Document, maxResults int) []providers.TextResult {
	var out []providers.TextResult

	doc.Find("div.result").EachWithBreak(func(_ int, res *goquery.Selection) bool {
		if res.HasClass("result--ad") {
			return true
		}

		link := res.Find("a.result__a").First()
		href, ok := link.Attr("href")
		if !ok || href == "" {
			return true
		}

		snippet, _ := res.Find(".result__snippet").First().Html()

		out = append(out, providers.TextResult{
			Title: providers.CleanText(link.Text()),
			Body:  providers.CleanText(snippet),
			Href:  unwrapRedirect(href),
		})

		return len(out) < maxResults
	})

	return out
}

// unwrapRedirect turns "//duckduckgo.com/l/?uddg=<target>&rut=..." into the
// target URL. Other hrefs are returned unchanged.
func unwrapRedirect(href string) string {
	raw := href
	if strings.HasPrefix(raw, "//") {
		raw = "https:" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return href
	}

	if target := u.Query().Get("uddg"); target != "" {
		return target
	}

	return href
}

type imageResponse struct {
	Results []struct {
		Image string `json:"image"`
		Title string `json:"title"`
	} `json:"results"`
}

func (c *Client) SearchImages(ctx context.Context, query string, maxResults int) ([]providers.ImageResult, error) {
	if maxResults <= 0 {
		return nil, nil
	}

	vqd, err := c.token(ctx, query)
	if err != nil {
		return nil, err
	}

	q := url.Values{}
	q.Set("l", "wt-wt")
	q.Set("o", "json")
	q.Set("q", query)
	q.Set("vqd", vqd)
	q.Set("f", ",,,,,")
	q.Set("p", "1")

	header := http.Header{}
	header.Set("Referer", c.imageURL+"/")

	body, err := util.Get(ctx, c.client, c.imageURL+"/i.js?"+q.Encode(), header)
	if err != nil {
		return nil, fmt.Errorf("duckduckgo images %q: %w", query, err)
	}

	var ir imageResponse
	if err := json.Unmarshal(body, &ir); err != nil {
		return nil, fmt.Errorf("duckduckgo images %q: %w", query, err)
	}

	out := make([]providers.ImageResult, 0, maxResults)
	for _, r := range ir.Results {
		if r.Image == "" {
			continue
		}
		out = append(out, providers.ImageResult{Image: r.Image, Title: r.Title})
		if len(out) == maxResults {
			break
		}
	}

	return out, nil
}

// token fetches the per-query vqd value the image endpoint insists on.
func (c *Client) token(ctx context.Context, query string) (string, error) {
	q := url.Values{}
	q.Set("q", query)
	q.Set("iax", "images")
	q.Set("ia", "images")

	body, err := util.Get(ctx, c.client, c.imageURL+"/?"+q.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("duckduckgo token %q: %w", query, err)
	}

	m := reVQD.FindSubmatch(body)
	if m == nil {
		return "", fmt.Errorf("duckduckgo token %q: vqd not found", query)
	}

	return string(m[1]), nil
}
