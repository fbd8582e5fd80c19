package providers

import (
	"context"
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// NotFoundText stands in for an encyclopedia summary that does not exist.
const NotFoundText = "No information found."

type Summary struct {
	Text string
	URL  string
}

// TextResult is one web search hit.
type TextResult struct {
	Title string
	Body  string
	Href  string
}

// ImageResult is one image search hit.
type ImageResult struct {
	Image string
	Title string
}

// Encyclopedia looks up a short explanatory text for a topic. A missing
// topic is not an error: it yields NotFoundText and an empty URL.
type Encyclopedia interface {
	LookupSummary(ctx context.Context, topic string) (Summary, error)
}

// Searcher runs web searches. Both methods return at most maxResults hits and
// may return none.
type Searcher interface {
	SearchText(ctx context.Context, query string, maxResults int) ([]TextResult, error)
	SearchImages(ctx context.Context, query string, maxResults int) ([]ImageResult, error)
}

// Catalog fetches the page listing the franchise characters and pulls the
// ordered character names out of it.
type Catalog interface {
	FetchPage(ctx context.Context, url string) (string, error)
	ExtractNames(html string) ([]string, error)
}

var plainText = bluemonday.StrictPolicy()

// CleanText strips markup from fetched text and decodes entities, leaving
// plain text. Length budgets count its runes, so escaping is left to the
// renderer.
func CleanText(s string) string {
	return strings.TrimSpace(html.UnescapeString(plainText.Sanitize(s)))
}
