package slides

import (
	"regexp"
	"strings"

	"github.com/goccy/go-yaml"
)

// Meta holds the front-matter keys deckgest understands. Everything else in
// the block is discarded along with the block itself.
type Meta struct {
	Title       string `yaml:"title"`
	Author      string `yaml:"author"`
	Description string `yaml:"description"`
}

const frontMatterDelim = "---"

var styleBlock = regexp.MustCompile(`(?is)<style\b[^>]*>.*?</style\s*>`)

// Preprocess removes one leading front-matter block and every inline
// <style> block, then trims surrounding whitespace.
func Preprocess(raw string) string {
	_, rest := SplitFrontMatter(raw)
	return StripStyles(rest)
}

// StripStyles removes every inline <style> block and trims surrounding
// whitespace. Leading "---" lines are left for the segmenter.
func StripStyles(s string) string {
	s = styleBlock.ReplaceAllString(normalizeNewlines(s), "")
	return strings.TrimSpace(s)
}

// SplitFrontMatter separates a leading "---" delimited block from the rest
// of the document. The block must open on the very first line and be closed
// by a later "---" line; otherwise nothing is removed. Metadata is parsed
// best-effort: a block that is not a YAML mapping is still removed but
// yields a zero Meta.
func SplitFrontMatter(raw string) (Meta, string) {
	text := normalizeNewlines(strings.TrimPrefix(raw, "\ufeff"))
	lines := strings.Split(text, "\n")
	if len(lines) < 2 || !isDelimiterLine(lines[0]) {
		return Meta{}, text
	}

	closing := -1
	for i := 1; i < len(lines); i++ {
		if isDelimiterLine(lines[i]) {
			closing = i
			break
		}
	}
	if closing < 0 {
		return Meta{}, text
	}

	var meta Meta
	if block := strings.Join(lines[1:closing], "\n"); strings.TrimSpace(block) != "" {
		if err := yaml.Unmarshal([]byte(block), &meta); err != nil {
			meta = Meta{}
		}
	}
	return meta, strings.Join(lines[closing+1:], "\n")
}

func isDelimiterLine(line string) bool {
	return strings.TrimRight(line, " \t") == frontMatterDelim
}
