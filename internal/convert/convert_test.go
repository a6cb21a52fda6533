package convert

import (
	"errors"
	"strings"
	"testing"

	"github.com/dgallion1/deckgest/internal/parser"
	"github.com/dgallion1/deckgest/internal/slides"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{"", ModeLines, false},
		{"lines", ModeLines, false},
		{" Structured ", ModeStructured, false},
		{"html", "", true},
	}
	for _, tt := range tests {
		got, err := ParseMode(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseMode(%q): unexpected error state: %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseMode(%q): expected %q, got %q", tt.in, tt.want, got)
		}
	}
}

func TestConvert_FrontMatterTitle(t *testing.T) {
	c := &Converter{}
	deck, err := c.Convert(&parser.Document{
		Title:       "file-name",
		FrontMatter: true,
		Source:      "---\ntitle: Launch Plan\nmarp: true\n---\n# Goals\nship it\n\n---\n# Timeline\nQ3",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if deck.Title != "Launch Plan" {
		t.Errorf("expected title %q, got %q", "Launch Plan", deck.Title)
	}
	if len(deck.Slides) != 2 {
		t.Fatalf("expected 2 slides, got %d", len(deck.Slides))
	}
	if deck.Slides[0].Title != "Goals" || deck.Slides[1].Title != "Timeline" {
		t.Errorf("unexpected slides: %+v", deck.Slides)
	}
}

func TestConvert_DocumentTitleFallback(t *testing.T) {
	c := &Converter{}
	deck, err := c.Convert(&parser.Document{Title: "notes", Source: "# A\nb"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if deck.Title != "notes" {
		t.Errorf("expected title %q, got %q", "notes", deck.Title)
	}
}

func TestConvert_NoSlides(t *testing.T) {
	c := &Converter{}
	for _, src := range []string{"", "---\ntitle: x\n---\n", "<style>p{}</style>", "  \n\n"} {
		_, err := c.Convert(&parser.Document{Source: src, FrontMatter: true})
		if !errors.Is(err, ErrNoSlides) {
			t.Errorf("source %q: expected ErrNoSlides, got %v", src, err)
		}
	}
}

func TestConvert_StructuredMode(t *testing.T) {
	c := &Converter{Mode: ModeStructured}
	deck, err := c.Convert(&parser.Document{Source: "Intro\n---\n\nmore"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(deck.Slides) != 1 || deck.Slides[0].HeadingLevel != 2 {
		t.Errorf("expected one setext-titled slide, got %+v", deck.Slides)
	}
}

func TestConvertFile(t *testing.T) {
	c := &Converter{}
	deck, err := c.ConvertFile(strings.NewReader("# Hello\nworld"), "greeting.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if deck.Title != "greeting" {
		t.Errorf("expected title %q, got %q", "greeting", deck.Title)
	}
	if len(deck.Slides) != 1 || deck.Slides[0].Body != "world" {
		t.Errorf("unexpected slides: %+v", deck.Slides)
	}
}

func TestConvertFile_Unsupported(t *testing.T) {
	c := &Converter{}
	_, err := c.ConvertFile(strings.NewReader("x"), "image.png")
	if !errors.Is(err, parser.ErrUnsupported) {
		t.Errorf("expected ErrUnsupported, got %v", err)
	}
}

func TestConvert_GeneratedSourceKeepsLeadingBreak(t *testing.T) {
	c := &Converter{}
	deck, err := c.Convert(&parser.Document{
		Title:  "scraped",
		Source: "---\n\n# Alpha\n\nfirst\n\n---\n\n# Beta\n\nsecond",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if deck.Title != "scraped" {
		t.Errorf("expected title %q, got %q", "scraped", deck.Title)
	}
	if len(deck.Slides) != 2 {
		t.Fatalf("expected 2 slides, got %d: %+v", len(deck.Slides), deck.Slides)
	}
	if deck.Slides[0].Title != "Alpha" || deck.Slides[1].Title != "Beta" {
		t.Errorf("unexpected slides: %+v", deck.Slides)
	}
}

func TestConvertFile_HTMLLeadingRule(t *testing.T) {
	c := &Converter{}
	src := "<html><body><hr><h1>Alpha</h1><p>first</p><hr><h1>Beta</h1><p>second</p></body></html>"
	deck, err := c.ConvertFile(strings.NewReader(src), "d.html")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []slides.Record{
		{Title: "Alpha", Body: "first", HeadingLevel: 1},
		{Title: "Beta", Body: "second", HeadingLevel: 1},
	}
	if len(deck.Slides) != len(want) {
		t.Fatalf("expected %d slides, got %d: %+v", len(want), len(deck.Slides), deck.Slides)
	}
	for i := range want {
		if deck.Slides[i] != want[i] {
			t.Errorf("slide[%d]: expected %+v, got %+v", i, want[i], deck.Slides[i])
		}
	}
}

func TestConvertFile_MarkdownFrontMatterStillStripped(t *testing.T) {
	c := &Converter{}
	deck, err := c.ConvertFile(strings.NewReader("---\ntitle: Meta\n---\n# Only\nbody"), "m.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if deck.Title != "Meta" || len(deck.Slides) != 1 || deck.Slides[0].Title != "Only" {
		t.Errorf("unexpected deck: %+v", deck)
	}
}
