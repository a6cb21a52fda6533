// Package convert runs uploaded documents through preprocessing and
// segmentation to produce a Deck.
package convert

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dgallion1/deckgest/internal/parser"
	"github.com/dgallion1/deckgest/internal/slides"
)

// ErrNoSlides means the document produced no slide content. Callers report
// it as a content error, not a failure.
var ErrNoSlides = errors.New("no valid slide content found")

// Mode selects the segmentation strategy.
type Mode string

const (
	ModeLines      Mode = "lines"
	ModeStructured Mode = "structured"
)

// ParseMode validates a mode name. Empty selects ModeLines.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case "", ModeLines:
		return ModeLines, nil
	case ModeStructured:
		return ModeStructured, nil
	}
	return "", fmt.Errorf("unknown segment mode %q (want %q or %q)", s, ModeLines, ModeStructured)
}

// Deck is the segmented form of one document.
type Deck struct {
	Title  string          `json:"title"`
	Meta   slides.Meta     `json:"-"`
	Slides []slides.Record `json:"slides"`
}

// Converter turns parsed documents into decks. The zero value uses ModeLines.
type Converter struct {
	Mode   Mode
	Parser parser.Options
}

// Convert segments doc. It returns ErrNoSlides when nothing survives.
func (c *Converter) Convert(doc *parser.Document) (*Deck, error) {
	var (
		meta    slides.Meta
		cleaned string
	)
	if doc.FrontMatter {
		meta, _ = slides.SplitFrontMatter(doc.Source)
		cleaned = slides.Preprocess(doc.Source)
	} else {
		cleaned = slides.StripStyles(doc.Source)
	}

	var recs []slides.Record
	switch c.Mode {
	case ModeStructured:
		recs = slides.SegmentStructured(cleaned)
	default:
		recs = slides.Segment(cleaned)
	}
	if len(recs) == 0 {
		return nil, ErrNoSlides
	}

	title := doc.Title
	if t := strings.TrimSpace(meta.Title); t != "" {
		title = t
	}
	return &Deck{Title: title, Meta: meta, Slides: recs}, nil
}

// ConvertFile picks a parser by extension, parses r and converts the
// result. Unsupported extensions wrap parser.ErrUnsupported.
func (c *Converter) ConvertFile(r io.Reader, filename string) (*Deck, error) {
	p, err := parser.ForFile(filename, c.Parser)
	if err != nil {
		return nil, err
	}
	doc, err := p.Parse(r, filename)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", filename, err)
	}
	return c.Convert(doc)
}
