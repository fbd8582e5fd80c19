// Package catalog implements providers.Catalog for ranking articles that
// mark each entry with a bold "#<n>:" heading.
package catalog

import (
	"context"
	"fmt"
	"net/http"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/brogergvhs/starsite/internal/util"
)

var markerRe = regexp.MustCompile(`#\d+:`)

type Scraper struct {
	client *http.Client
}

func NewScraper(c *http.Client) *Scraper {
	return &Scraper{client: c}
}

// FetchPage returns the raw HTML at pageURL. Non-2xx answers are reported
// as *util.StatusError.
func (s *Scraper) FetchPage(ctx context.Context, pageURL string) (string, error) {
	body, err := util.Get(ctx, s.client, pageURL, nil)
	if err != nil {
		return "", fmt.Errorf("fetch catalog: %w", err)
	}
	return string(body), nil
}

// ExtractNames returns the display names of every <strong> marker whose
// text matches "#<n>:", in document order, with colons removed:
// "#12: Yoda" becomes "#12 Yoda". Markers wrapping other elements are
// ignored.
func (s *Scraper) ExtractNames(html string) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	names := []string{}
	doc.Find("strong").Each(func(_ int, el *goquery.Selection) {
		if el.Children().Length() > 0 {
			return
		}

		text := strings.TrimSpace(el.Text())
		if !markerRe.MatchString(text) {
			return
		}

		names = append(names, strings.TrimSpace(strings.ReplaceAll(text, ":", "")))
	})

	return names, nil
}
