// Package site drives a full build: it fetches the franchise facts and the
// character catalog, renders the landing, catalog and per-character pages,
// and writes them under the output directory.
package site

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/brogergvhs/starsite/internal/characters"
	"github.com/brogergvhs/starsite/internal/providers"
	"github.com/brogergvhs/starsite/internal/render"
	"github.com/brogergvhs/starsite/internal/summary"
	"github.com/brogergvhs/starsite/internal/ui"
	"github.com/brogergvhs/starsite/internal/util"
)

const (
	LandingFile = "star_wars.md"
	CatalogFile = "star_wars_list.md"

	// NoAdditionalInfo replaces a character blurb when the search finds nothing.
	NoAdditionalInfo = "No additional info found."

	DefaultBackground = "assets/default_star_wars_bg.jpg"
)

// ErrNoCharacters is returned when the catalog page holds no markers.
var ErrNoCharacters = errors.New("no characters found")

type Config struct {
	OutputDir     string
	CharactersDir string
	SummaryLimit  int
	MaxResults    int
	Workers       int
	Franchise     string
	Sections      []string
	CatalogURL    string

	// Range and List narrow the catalog, see characters.Filter.
	Range string
	List  string
}

type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
}

type Progress interface {
	SetTotal(total int)
	Increment()
	MarkDone()
}

type Deps struct {
	Encyclopedia providers.Encyclopedia
	Searcher     providers.Searcher
	Catalog      providers.Catalog
	Renderer     *render.Renderer
	Log          Logger
	// Progress is optional.
	Progress Progress
}

type Builder struct {
	cfg   Config
	deps  Deps
	stats *ui.Stats
}

// Result summarises what a build wrote.
type Result struct {
	Pages      int64
	Characters int64
	Bytes      int64
	Files      []string
}

func New(cfg Config, deps Deps) *Builder {
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	if cfg.CharactersDir == "" {
		cfg.CharactersDir = "characters"
	}
	if cfg.SummaryLimit <= 0 {
		cfg.SummaryLimit = summary.DefaultLimit
	}
	if cfg.MaxResults <= 0 {
		cfg.MaxResults = 1
	}
	return &Builder{cfg: cfg, deps: deps, stats: &ui.Stats{}}
}

func (b *Builder) charactersPath() string {
	return filepath.Join(b.cfg.OutputDir, b.cfg.CharactersDir)
}

// Build writes the landing page, then the catalog and one detail page per
// character. A catalog fetch failure or an empty catalog stops the build
// after the landing page; nothing else is written in that case.
func (b *Builder) Build(ctx context.Context) (Result, error) {
	var res Result

	if err := util.EnsureDir(b.cfg.OutputDir); err != nil {
		return res, err
	}
	if err := util.EnsureDir(b.charactersPath()); err != nil {
		return res, err
	}

	if err := b.buildLanding(ctx, &res); err != nil {
		return b.finish(res), err
	}

	chars, err := b.buildCatalog(ctx, &res)
	if err != nil {
		return b.finish(res), err
	}

	if err := b.buildDetails(ctx, chars, &res); err != nil {
		return b.finish(res), err
	}

	return b.finish(res), nil
}

func (b *Builder) finish(res Result) Result {
	res.Pages = b.stats.TotalPages.Load()
	res.Bytes = b.stats.TotalBytes.Load()
	res.Characters = b.stats.TotalCharacters.Load()
	return res
}

func (b *Builder) buildLanding(ctx context.Context, res *Result) error {
	franchise := b.cfg.Franchise
	bg, bgSource := b.background(ctx, franchise+" picture")

	page := render.LandingPage{
		Franchise:        franchise,
		Background:       bg,
		BackgroundSource: bgSource,
		Intro:            b.section(ctx, "", franchise),
	}
	for _, s := range b.cfg.Sections {
		page.Sections = append(page.Sections,
			b.section(ctx, franchise+" "+s, franchise+" "+strings.ToLower(s)))
	}

	out, err := b.deps.Renderer.Render(render.Landing, page)
	if err != nil {
		return err
	}
	if err := b.write(filepath.Join(b.cfg.OutputDir, LandingFile), out, res); err != nil {
		return err
	}

	b.deps.Log.Infof("Main website Markdown file (%s) generated.\n", LandingFile)
	return nil
}

func (b *Builder) section(ctx context.Context, heading, topic string) render.Section {
	sum, err := b.deps.Encyclopedia.LookupSummary(ctx, topic)
	if err != nil {
		b.deps.Log.Warnf("Lookup %q failed: %v\n", topic, err)
		sum = providers.Summary{Text: providers.NotFoundText}
	}
	return render.Section{Heading: heading, Text: sum.Text, Source: sum.URL}
}

// Preview fetches and filters the catalog without writing anything.
func (b *Builder) Preview(ctx context.Context) ([]characters.Character, error) {
	names, err := b.catalogNames(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]characters.Character, len(names))
	for i, n := range names {
		out[i] = characters.Character{Name: n}
	}
	return out, nil
}

func (b *Builder) catalogNames(ctx context.Context) ([]string, error) {
	html, err := b.deps.Catalog.FetchPage(ctx, b.cfg.CatalogURL)
	if err != nil {
		return nil, err
	}

	names, err := b.deps.Catalog.ExtractNames(html)
	if err != nil {
		return nil, err
	}
	if len(names) == 0 {
		b.deps.Log.Warnf("No characters found.\n")
		return nil, ErrNoCharacters
	}
	b.deps.Log.Debugf("Catalog lists %d characters\n", len(names))

	selected := characters.Filter(names, b.cfg.Range, b.cfg.List)
	if len(selected) == 0 {
		return nil, fmt.Errorf("no characters selected")
	}

	return selected, nil
}

func (b *Builder) buildCatalog(ctx context.Context, res *Result) ([]characters.Character, error) {
	bg, bgSource := b.background(ctx, b.cfg.Franchise+" characters")

	names, err := b.catalogNames(ctx)
	if err != nil {
		return nil, err
	}

	chars := b.fetchCharacters(ctx, names)
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	b.warnCollisions(chars)

	page := render.CatalogPage{
		Franchise:        b.cfg.Franchise,
		Background:       bg,
		BackgroundSource: bgSource,
	}
	for _, c := range chars {
		page.Entries = append(page.Entries, render.CatalogEntry{
			Name: c.Name,
			Href: c.LinkTarget(b.cfg.CharactersDir),
		})
	}

	out, err := b.deps.Renderer.Render(render.Catalog, page)
	if err != nil {
		return nil, err
	}
	if err := b.write(filepath.Join(b.cfg.OutputDir, CatalogFile), out, res); err != nil {
		return nil, err
	}

	b.deps.Log.Infof("Character list Markdown file (%s) generated.\n", CatalogFile)
	return chars, nil
}

func (b *Builder) buildDetails(ctx context.Context, chars []characters.Character, res *Result) error {
	bg, _ := b.background(ctx, "wallpaperaccess "+strings.ToLower(b.cfg.Franchise)+" galaxy")

	for _, c := range chars {
		out, err := b.deps.Renderer.Render(render.Detail, render.DetailPage{
			Name:             c.Name,
			Summary:          c.Summary,
			SummarySource:    c.SummarySource,
			Image:            c.Image,
			ImageSource:      c.ImageSource,
			Background:       bg,
			BackgroundSource: bg,
		})
		if err != nil {
			return err
		}
		if err := b.write(c.OutputPath(b.charactersPath()), out, res); err != nil {
			return err
		}
	}

	b.deps.Log.Infof("Detail subpages generated.\n")
	return nil
}

// background returns the first image hit for query, or the bundled default
// with an empty source.
func (b *Builder) background(ctx context.Context, query string) (string, string) {
	images, err := b.deps.Searcher.SearchImages(ctx, query, 1)
	if err != nil {
		b.deps.Log.Warnf("Image search %q failed: %v\n", query, err)
	}
	if len(images) == 0 {
		return DefaultBackground, ""
	}
	return images[0].Image, images[0].Image
}

// warnCollisions reports characters whose names sanitize to the same stem.
// Their detail pages overwrite each other; names are left untouched.
func (b *Builder) warnCollisions(chars []characters.Character) {
	seen := map[string]string{}
	for _, c := range chars {
		stem := c.Stem()
		if prev, ok := seen[stem]; ok {
			b.deps.Log.Warnf("%q and %q share the page %s\n", prev, c.Name, c.FileName())
			continue
		}
		seen[stem] = c.Name
	}
}

func (b *Builder) write(path, content string, res *Result) error {
	n, err := util.WriteText(path, content)
	if err != nil {
		return err
	}

	b.stats.TotalPages.Add(1)
	b.stats.TotalBytes.Add(n)
	res.Files = append(res.Files, path)
	b.deps.Log.Debugf("Wrote %s (%s)\n", path, ui.ByteSize(n))
	return nil
}
