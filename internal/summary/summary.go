// Package summary cuts free text into sentence-like segments and builds a
// short multi-sentence prefix from them.
package summary

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// DefaultLimit is the soft character budget used for character blurbs.
const DefaultLimit = 300

// Split breaks text at single whitespace runes that follow '.' or '?'.
// The whitespace itself is dropped. A boundary is skipped when the text
// before it looks like an abbreviation: "x.y?" (U.S., e.g.) or "Xy."
// (Mr., Dr.). Text without boundaries comes back as one segment.
func Split(text string) []string {
	runes := []rune(text)
	var out []string
	start := 0

	for i, r := range runes {
		if !isSpace(r) || !isBoundary(runes, i) {
			continue
		}
		out = append(out, string(runes[start:i]))
		start = i + 1
	}

	return append(out, string(runes[start:]))
}

func isBoundary(runes []rune, i int) bool {
	if i < 1 {
		return false
	}
	if p := runes[i-1]; p != '.' && p != '?' {
		return false
	}

	// \w\.\w. immediately before the whitespace
	if i >= 4 && isWord(runes[i-4]) && runes[i-3] == '.' && isWord(runes[i-2]) {
		return false
	}

	// [A-Z][a-z]\. immediately before the whitespace
	if i >= 3 && isUpperASCII(runes[i-3]) && isLowerASCII(runes[i-2]) && runes[i-1] == '.' {
		return false
	}

	return true
}

// isWord accepts any numeric rune, not just decimal digits: "½" and "²"
// count as word runes.
func isWord(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}

// isSpace also accepts the ASCII separators U+001C..U+001F, which
// unicode.IsSpace does not.
func isSpace(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f)
}

func isUpperASCII(r rune) bool { return r >= 'A' && r <= 'Z' }

func isLowerASCII(r rune) bool { return r >= 'a' && r <= 'z' }

// Summarize keeps the first segment unconditionally and then appends
// further segments, space separated, while the result stays strictly
// shorter than limit runes. It stops at the first segment that does not
// fit; segments are never cut.
func Summarize(text string, limit int) string {
	if text == "" {
		return ""
	}

	segments := Split(text)

	var b strings.Builder
	b.WriteString(segments[0])
	n := utf8.RuneCountInString(segments[0])

	for _, seg := range segments[1:] {
		l := utf8.RuneCountInString(seg)
		if n+1+l >= limit {
			break
		}
		b.WriteByte(' ')
		b.WriteString(seg)
		n += 1 + l
	}

	return b.String()
}
