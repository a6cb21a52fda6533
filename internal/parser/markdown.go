package parser

import (
	"io"
	"strings"
)

// MarkdownParser handles Markdown files. The text is already in the shape
// the segmenter expects, so it only needs decoding.
type MarkdownParser struct{}

func (p *MarkdownParser) Parse(r io.Reader, filename string) (*Document, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return &Document{
		Title:       baseTitle(filename),
		Source:      strings.ToValidUTF8(string(src), "\uFFFD"),
		FrontMatter: true,
	}, nil
}
