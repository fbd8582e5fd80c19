// Package render turns page records into the HTML text written to the
// site's .md files. Rendering is pure: equal input gives identical output.
package render

import (
	"embed"
	"fmt"
	"strings"
	"text/template"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

type Kind int

const (
	Landing Kind = iota
	Catalog
	Detail
)

func (k Kind) String() string {
	switch k {
	case Landing:
		return "landing"
	case Catalog:
		return "catalog"
	case Detail:
		return "detail"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

type Options struct {
	// DefaultPortrait replaces a missing character image.
	DefaultPortrait string
	// CatalogHref is the landing page link to the catalog page.
	CatalogHref string
}

func DefaultOptions() Options {
	return Options{
		DefaultPortrait: "assets/default_star_wars.jpg",
		CatalogHref:     "star_wars_list",
	}
}

// Section is one headed block of the landing page.
type Section struct {
	Heading string
	Text    string
	Source  string
}

type LandingPage struct {
	Franchise        string
	Background       string
	BackgroundSource string
	Intro            Section
	Sections         []Section

	CatalogHref string
}

type CatalogEntry struct {
	Name string
	Href string
}

type CatalogPage struct {
	Franchise        string
	Background       string
	BackgroundSource string
	Entries          []CatalogEntry
}

type DetailPage struct {
	Name             string
	Summary          string
	SummarySource    string
	Image            string
	ImageSource      string
	Background       string
	BackgroundSource string
}

type Renderer struct {
	opts Options
	tmpl *template.Template
}

func New(opts Options) (*Renderer, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Renderer{opts: opts, tmpl: tmpl}, nil
}

// Render dispatches on kind; page must be the matching page struct.
func (r *Renderer) Render(kind Kind, page any) (string, error) {
	switch kind {
	case Landing:
		if p, ok := page.(LandingPage); ok {
			return r.Landing(p)
		}
	case Catalog:
		if p, ok := page.(CatalogPage); ok {
			return r.Catalog(p)
		}
	case Detail:
		if p, ok := page.(DetailPage); ok {
			return r.Detail(p)
		}
	default:
		return "", fmt.Errorf("render: unknown page kind %s", kind)
	}

	return "", fmt.Errorf("render %s: unexpected page type %T", kind, page)
}

func (r *Renderer) Landing(p LandingPage) (string, error) {
	if p.CatalogHref == "" {
		p.CatalogHref = r.opts.CatalogHref
	}
	return r.execute("landing", p)
}

func (r *Renderer) Catalog(p CatalogPage) (string, error) {
	return r.execute("catalog", p)
}

func (r *Renderer) Detail(p DetailPage) (string, error) {
	if p.Image == "" {
		p.Image = r.opts.DefaultPortrait
	}
	return r.execute("detail", p)
}

func (r *Renderer) execute(name string, data any) (string, error) {
	var b strings.Builder
	if err := r.tmpl.ExecuteTemplate(&b, name, data); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	return b.String(), nil
}
