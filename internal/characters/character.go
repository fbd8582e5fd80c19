package characters

import (
	"path/filepath"
	"regexp"
	"strings"
)

// ordinalPrefix matches catalog rank markers such as "#3 " at the start of a name.
var ordinalPrefix = regexp.MustCompile(`^#\d+\s*`)

// Character is one catalog entry together with everything fetched for it.
type Character struct {
	Name          string
	Summary       string
	SummarySource string
	Image         string
	ImageSource   string
}

// StripOrdinal removes a leading "#<digits><spaces>" marker. Anything after
// the digits that is not whitespace (a colon, for instance) is kept.
func StripOrdinal(raw string) string {
	return ordinalPrefix.ReplaceAllString(raw, "")
}

// Sanitize turns a display name into a filename and link safe token.
// Every rune outside [A-Za-z0-9_-] becomes exactly one underscore, so the
// result has as many runes as the ordinal-stripped input. Distinct names
// may collide.
func Sanitize(raw string) string {
	return strings.Map(func(r rune) rune {
		if isSafe(r) {
			return r
		}
		return '_'
	}, StripOrdinal(raw))
}

func isSafe(r rune) bool {
	return (r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z') ||
		(r >= '0' && r <= '9') ||
		r == '_' || r == '-'
}

// SearchName is the name used in search queries: no ordinal, no padding.
func (c Character) SearchName() string {
	return strings.TrimSpace(StripOrdinal(c.Name))
}

// Stem is both the detail page filename stem and the catalog link target.
func (c Character) Stem() string {
	return Sanitize(c.Name)
}

func (c Character) FileName() string {
	return c.Stem() + ".md"
}

func (c Character) OutputPath(dir string) string {
	return filepath.Join(dir, c.FileName())
}

// LinkTarget is the href used by the catalog page, relative to the site root.
func (c Character) LinkTarget(subdir string) string {
	return subdir + "/" + c.Stem()
}
