package summary

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplit(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want []string
	}{
		{"initials", "A. B. The Jedi fight. The Sith lose.", []string{"A.", "B.", "The Jedi fight.", "The Sith lose."}},
		{"dotted abbreviation", "U.S. forces attack. Then retreat.", []string{"U.S. forces attack.", "Then retreat."}},
		{"e.g.", "e.g. this one. And that.", []string{"e.g. this one.", "And that."}},
		{"title", "Mr. Smith went home. He slept.", []string{"Mr. Smith went home.", "He slept."}},
		{"single initial splits", "J. Smith arrived.", []string{"J.", "Smith arrived."}},
		{"question", "Really? Yes.", []string{"Really?", "Yes."}},
		{"newlines", "One.\n\nTwo.\n\n", []string{"One.", "\nTwo.", "\n"}},
		{"no boundary", "no punctuation here", []string{"no punctuation here"}},
		{"exclamation is not a boundary", "Wow! Great.", []string{"Wow! Great."}},
		{"period without space", "v1.2 release.", []string{"v1.2 release."}},
		{"empty", "", []string{""}},
		{"ascii separators", "yes.\x1cno.\x1fok", []string{"yes.", "no.", "ok"}},
		{"vulgar fraction is a word rune", "a.½. Next one.", []string{"a.½. Next one."}},
		{"superscript is a word rune", "x.². More.", []string{"x.². More."}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Split(tc.in))
		})
	}
}

func TestSummarizeAccumulatesUnderLimit(t *testing.T) {
	assert.Equal(t, "One. Two.", Summarize("One. Two. Three.", 10))
	assert.Equal(t, "One.", Summarize("One. Two. Three.", 9))
	assert.Equal(t, "One. Two. Three.", Summarize("One. Two. Three.", 300))
}

func TestSummarizeStopsAtFirstOverflow(t *testing.T) {
	assert.Equal(t, "One.", Summarize("One. Loooooooong. Two.", 12))
}

func TestSummarizeKeepsLongFirstSegment(t *testing.T) {
	first := strings.Repeat("x", 400) + "."
	got := Summarize(first+" Short.", DefaultLimit)
	assert.Equal(t, first, got)
}

func TestSummarizeEmptyAndUnsplittable(t *testing.T) {
	assert.Equal(t, "", Summarize("", DefaultLimit))
	assert.Equal(t, "just one clause", Summarize("just one clause", 3))
}

func TestSummarizeRejoinsAbbreviations(t *testing.T) {
	in := "A. B. The Jedi fight. The Sith lose."
	assert.Equal(t, in, Summarize(in, DefaultLimit))
}

func TestSummarizeIsSegmentPrefix(t *testing.T) {
	text := "Luke Skywalker is a Jedi. He was raised on Tatooine by his aunt and uncle. " +
		"He joined the Rebel Alliance. Mr. Kenobi trained him briefly. " +
		"Later, Yoda completed his training on Dagobah. He confronted Darth Vader. " +
		"He redeemed his father. He later trained a new generation of Jedi, with mixed results."

	for _, limit := range []int{1, 20, 60, 120, 300, 1000} {
		got := Summarize(text, limit)
		segs := Split(text)

		require.True(t, strings.HasPrefix(got, segs[0]), "limit %d", limit)
		assert.Positive(t, joinedPrefixLen(got, segs), "limit %d: %q is not a run of whole segments", limit, got)
		if got != segs[0] {
			assert.Less(t, utf8.RuneCountInString(got), limit, "limit %d", limit)
		}
	}
}

// joinedPrefixLen reports how many leading segments, joined by spaces,
// reproduce got exactly, or 0 when none do.
func joinedPrefixLen(got string, segs []string) int {
	acc := ""
	for i, s := range segs {
		if i == 0 {
			acc = s
		} else {
			acc += " " + s
		}
		if acc == got {
			return i + 1
		}
	}
	return 0
}
