package site

import (
	"context"
	"strings"
	"sync"

	"github.com/brogergvhs/starsite/internal/characters"
	"github.com/brogergvhs/starsite/internal/summary"
)

// fetchCharacters looks up text and an image for every name on at most
// cfg.Workers goroutines. The result keeps catalog order whatever order
// the lookups finish in.
func (b *Builder) fetchCharacters(ctx context.Context, names []string) []characters.Character {
	out := make([]characters.Character, len(names))

	workers := min(b.cfg.Workers, len(names))
	if workers < 1 {
		workers = 1
	}

	if p := b.deps.Progress; p != nil {
		p.SetTotal(len(names))
		defer p.MarkDone()
	}

	jobs := make(chan int)
	var wg sync.WaitGroup

	worker := func() {
		defer wg.Done()
		for i := range jobs {
			out[i] = b.fetchCharacter(ctx, names[i])
			b.stats.TotalCharacters.Add(1)
			if p := b.deps.Progress; p != nil {
				p.Increment()
			}
		}
	}

	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go worker()
	}

	for i := range names {
		select {
		case <-ctx.Done():
			close(jobs)
			wg.Wait()
			return out
		case jobs <- i:
		}
	}

	close(jobs)
	wg.Wait()

	return out
}

func (b *Builder) fetchCharacter(ctx context.Context, name string) characters.Character {
	c := characters.Character{
		Name:    name,
		Summary: NoAdditionalInfo,
	}
	query := c.SearchName()

	texts, err := b.deps.Searcher.SearchText(ctx, "fandom information "+query, b.cfg.MaxResults)
	if err != nil {
		b.deps.Log.Warnf("Text search for %s failed: %v\n", query, err)
	}

	images, err := b.deps.Searcher.SearchImages(ctx, "wallpaper_access "+b.franchiseToken()+" "+query, b.cfg.MaxResults)
	if err != nil {
		b.deps.Log.Warnf("Image search for %s failed: %v\n", query, err)
	}

	if len(texts) > 0 {
		var full strings.Builder
		for _, r := range texts {
			body := r.Body
			if body == "" {
				body = r.Title
			}
			full.WriteString(body)
			full.WriteString("\n\n")
		}

		c.Summary = strings.TrimSpace(summary.Summarize(full.String(), b.cfg.SummaryLimit))
		c.SummarySource = texts[0].Href
	}

	if len(images) > 0 {
		c.Image = images[0].Image
		c.ImageSource = images[0].Image
	}

	b.deps.Log.Debugf("Fetched %s\n", name)
	return c
}

// franchiseToken is the franchise as one lowercase word, "star_wars".
func (b *Builder) franchiseToken() string {
	return strings.ReplaceAll(strings.ToLower(b.cfg.Franchise), " ", "_")
}
