package slides

import (
	"regexp"
	"strings"
)

var (
	// Paragraph ends, line breaks and list item boundaries keep their
	// structure as newlines. A closing item directly followed by the next
	// opening item is a single break.
	blockBreakTag = regexp.MustCompile(`(?i)</li\s*>(?:\s*<li(?:\s[^<>]*)?>)?|</p\s*>|<br\s*/?\s*>|<li(?:\s[^<>]*)?>`)

	// Comments and anything shaped like an element tag. A bare "<" in prose
	// ("a < b") is left alone.
	markupTag = regexp.MustCompile(`(?s)<!--.*?-->|</?[A-Za-z][^<>]*>`)

	// Three or more newlines, counting whitespace-only lines.
	excessNewlines = regexp.MustCompile(`\n(?:[ \t]*\n){2,}`)

	entityDecoder = strings.NewReplacer(
		"&lt;", "<",
		"&gt;", ">",
		"&quot;", `"`,
		"&amp;", "&",
	)
)

// StripMarkup reduces HTML-like markup in s to plain text. Block-level tags
// become newlines, other tags are removed, the four standard entities are
// decoded and runs of blank lines collapse to a single blank line.
func StripMarkup(s string) string {
	if s == "" {
		return ""
	}
	s = normalizeNewlines(s)
	s = blockBreakTag.ReplaceAllString(s, "\n")
	s = markupTag.ReplaceAllString(s, "")
	s = entityDecoder.Replace(s)
	s = collapseNewlines(s)
	return strings.TrimSpace(s)
}

func collapseNewlines(s string) string {
	return excessNewlines.ReplaceAllString(s, "\n\n")
}
