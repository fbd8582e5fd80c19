package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRenderer(t *testing.T) *Renderer {
	t.Helper()
	r, err := New(DefaultOptions())
	require.NoError(t, err)
	return r
}

func TestLanding(t *testing.T) {
	r := newRenderer(t)

	out, err := r.Landing(LandingPage{
		Franchise:        "Star Wars",
		Background:       "https://img.example/bg.jpg",
		BackgroundSource: "https://img.example/bg.jpg",
		Intro:            Section{Text: "Star Wars is a franchise.", Source: "https://en.wikipedia.org/wiki/Star_Wars"},
		Sections: []Section{
			{Heading: "Star Wars Movies", Text: "Films.", Source: "https://w/movies"},
			{Heading: "Star Wars Games", Text: "No information found."},
		},
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "<html>\n  <head>\n    <meta charset=\"UTF-8\">\n    <title>Star Wars Introduction</title>"))
	assert.True(t, strings.HasSuffix(out, "</html>"))
	assert.Contains(t, out, "body { background: url(https://img.example/bg.jpg) no-repeat center center fixed;")
	assert.Contains(t, out, "@media (max-width: 768px) {")
	assert.Contains(t, out, "@media (max-width: 480px) {")
	assert.Contains(t, out, "      <h1>Star Wars Introduction</h1>\n      <p>Star Wars is a franchise.</p>\n")
	assert.Contains(t, out, "<em>Source: <a href=\"https://en.wikipedia.org/wiki/Star_Wars\" target=\"_blank\">https://en.wikipedia.org/wiki/Star_Wars</a></em></p>\n      <h2>Star Wars Movies</h2>\n      <p>Films.</p>\n")
	assert.Contains(t, out, "<h2>Star Wars Games</h2>\n      <p>No information found.</p>\n      <p><em>Source: <a href=\"\" target=\"_blank\"></a></em></p>\n      <h3>")
	assert.Contains(t, out, `<a href="star_wars_list">Visit the Star Wars Characters Catalog</a>`)
	assert.Contains(t, out, "      <p><em>Background Image Source:\n         <a href=\"https://img.example/bg.jpg\" target=\"_blank\">https://img.example/bg.jpg</a>\n      </em></p>\n    </div>")
}

func TestCatalog(t *testing.T) {
	r := newRenderer(t)

	out, err := r.Catalog(CatalogPage{
		Franchise:  "Star Wars",
		Background: "bg.jpg",
		Entries: []CatalogEntry{
			{Name: "#1 Luke Skywalker", Href: "characters/Luke_Skywalker"},
			{Name: "#2 Leia Organa", Href: "characters/Leia_Organa"},
		},
	})
	require.NoError(t, err)

	assert.Contains(t, out, "<title>Star Wars Characters Catalog</title>")
	assert.Contains(t, out, "      <ul>\n"+
		"        <li><a href=\"characters/Luke_Skywalker\">#1 Luke Skywalker</a></li>\n"+
		"        <li><a href=\"characters/Leia_Organa\">#2 Leia Organa</a></li>\n"+
		"      </ul>\n")
}

func TestCatalogEmpty(t *testing.T) {
	out, err := newRenderer(t).Catalog(CatalogPage{Franchise: "Star Wars"})
	require.NoError(t, err)
	assert.Contains(t, out, "      <ul>\n      </ul>\n")
}

func TestDetail(t *testing.T) {
	r := newRenderer(t)

	out, err := r.Detail(DetailPage{
		Name:             "#3 Darth Vader",
		Summary:          "A Sith Lord.",
		SummarySource:    "https://starwars.fandom.com/wiki/Darth_Vader",
		Background:       "galaxy.jpg",
		BackgroundSource: "galaxy.jpg",
	})
	require.NoError(t, err)

	assert.Contains(t, out, "<title>#3 Darth Vader</title>")
	assert.Contains(t, out, ".detail-container {\n        display: flex;")
	assert.Contains(t, out, `<img src="assets/default_star_wars.jpg" alt="#3 Darth Vader"`)
	assert.Contains(t, out, "<p>A Sith Lord.</p>")
	assert.Contains(t, out, "<p>Character Picture Source:\n            <a href=\"\" target=\"_blank\"></a>")
}

func TestDetailIsDeterministic(t *testing.T) {
	r := newRenderer(t)
	page := DetailPage{
		Name:        "#1 Luke Skywalker",
		Summary:     "Jedi.",
		Image:       "https://img.example/luke.jpg",
		ImageSource: "https://img.example/luke.jpg",
		Background:  "galaxy.jpg",
	}

	first, err := r.Render(Detail, page)
	require.NoError(t, err)
	second, err := r.Render(Detail, page)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Contains(t, first, `<img src="https://img.example/luke.jpg"`)
}

func TestRenderKindMismatch(t *testing.T) {
	r := newRenderer(t)

	_, err := r.Render(Catalog, DetailPage{})
	assert.ErrorContains(t, err, "unexpected page type")

	_, err = r.Render(Kind(9), DetailPage{})
	assert.ErrorContains(t, err, "unknown page kind")
}

func TestDetailEscapesText(t *testing.T) {
	r := newRenderer(t)

	out, err := r.Detail(DetailPage{
		Name:    `#4 "Boba" Fett`,
		Summary: "Han's ship & <Chewie>.",
	})
	require.NoError(t, err)

	assert.Contains(t, out, "<p>Han&#39;s ship &amp; &lt;Chewie&gt;.</p>")
	assert.Contains(t, out, `alt="#4 &#34;Boba&#34; Fett"`)
}
