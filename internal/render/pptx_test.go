package render

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/dgallion1/deckgest/internal/convert"
	"github.com/dgallion1/deckgest/internal/slides"
)

func renderParts(t *testing.T, deck *convert.Deck, intro Intro) map[string]string {
	t.Helper()
	var buf bytes.Buffer
	if err := Render(&buf, deck, intro); err != nil {
		t.Fatalf("Render: %v", err)
	}
	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	if err != nil {
		t.Fatalf("open archive: %v", err)
	}
	parts := make(map[string]string, len(zr.File))
	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("open %s: %v", f.Name, err)
		}
		b, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			t.Fatalf("read %s: %v", f.Name, err)
		}
		parts[f.Name] = string(b)
	}
	return parts
}

// wellFormed decodes every token so malformed XML fails the test.
func wellFormed(t *testing.T, name, doc string) {
	t.Helper()
	dec := xml.NewDecoder(strings.NewReader(doc))
	for {
		_, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return
		}
		if err != nil {
			t.Fatalf("%s is not well-formed XML: %v", name, err)
		}
	}
}

func sampleDeck() *convert.Deck {
	return &convert.Deck{
		Title: "Quarterly",
		Slides: []slides.Record{
			{Title: "Goals", Body: "ship it\n\nthen rest", HeadingLevel: 1},
			{Title: "R&D <notes>", Body: "a < b & c", HeadingLevel: 3},
		},
	}
}

func TestRender_Parts(t *testing.T) {
	parts := renderParts(t, sampleDeck(), Intro{Title: "Welcome", Subtitle: "hello"})

	required := []string{
		"[Content_Types].xml",
		"_rels/.rels",
		"docProps/core.xml",
		"docProps/app.xml",
		"ppt/presentation.xml",
		"ppt/_rels/presentation.xml.rels",
		"ppt/slideMasters/slideMaster1.xml",
		"ppt/slideLayouts/slideLayout1.xml",
		"ppt/slideLayouts/slideLayout2.xml",
		"ppt/theme/theme1.xml",
		"ppt/slides/slide1.xml",
		"ppt/slides/slide2.xml",
		"ppt/slides/slide3.xml",
		"ppt/slides/_rels/slide3.xml.rels",
	}
	for _, name := range required {
		if _, ok := parts[name]; !ok {
			t.Errorf("missing part %s", name)
		}
	}
	if _, ok := parts["ppt/slides/slide4.xml"]; ok {
		t.Error("unexpected fourth slide")
	}
	for name, doc := range parts {
		wellFormed(t, name, doc)
	}
}

func TestRender_SlideOrderAndContent(t *testing.T) {
	parts := renderParts(t, sampleDeck(), Intro{Title: "Welcome", Subtitle: "hello"})

	intro := parts["ppt/slides/slide1.xml"]
	if !strings.Contains(intro, "<a:t>Welcome</a:t>") || !strings.Contains(intro, "<a:t>hello</a:t>") {
		t.Errorf("intro slide missing fixed text: %s", intro)
	}
	if strings.Contains(intro, "Goals") {
		t.Error("intro slide should not contain deck content")
	}

	first := parts["ppt/slides/slide2.xml"]
	if !strings.Contains(first, "<a:t>Goals</a:t>") {
		t.Errorf("slide 2 should carry the first record title")
	}
	if !strings.Contains(first, "<a:t>ship it</a:t>") || !strings.Contains(first, "<a:t>then rest</a:t>") {
		t.Errorf("slide 2 should carry body lines as paragraphs")
	}
	if !strings.Contains(first, `sz="4000"`) {
		t.Errorf("level 1 title should use size 4000")
	}

	second := parts["ppt/slides/slide3.xml"]
	if !strings.Contains(second, "<a:t>R&amp;D &lt;notes&gt;</a:t>") {
		t.Errorf("title should be escaped, got %s", second)
	}
	if !strings.Contains(second, "<a:t>a &lt; b &amp; c</a:t>") {
		t.Errorf("body should be escaped, got %s", second)
	}
	if !strings.Contains(second, `sz="3200"`) {
		t.Errorf("level 3 title should use size 3200")
	}
	if !strings.Contains(parts["ppt/slides/_rels/slide3.xml.rels"], "slideLayout2.xml") {
		t.Error("content slide should use the content layout")
	}
	if !strings.Contains(parts["ppt/slides/_rels/slide1.xml.rels"], "slideLayout1.xml") {
		t.Error("intro slide should use the title layout")
	}
}

func TestRender_PresentationLists(t *testing.T) {
	parts := renderParts(t, sampleDeck(), Intro{})

	pres := parts["ppt/presentation.xml"]
	for _, want := range []string{
		`<p:sldId id="256" r:id="rId3"/>`,
		`<p:sldId id="257" r:id="rId4"/>`,
		`<p:sldId id="258" r:id="rId5"/>`,
	} {
		if !strings.Contains(pres, want) {
			t.Errorf("presentation.xml missing %s", want)
		}
	}
	rels := parts["ppt/_rels/presentation.xml.rels"]
	if !strings.Contains(rels, `Id="rId5"`) || !strings.Contains(rels, "slides/slide3.xml") {
		t.Errorf("presentation rels missing slide 3: %s", rels)
	}
	types := parts["[Content_Types].xml"]
	if strings.Count(types, "/ppt/slides/slide") != 3 {
		t.Errorf("expected 3 slide overrides in content types")
	}
	if !strings.Contains(parts["docProps/app.xml"], "<Slides>3</Slides>") {
		t.Errorf("app.xml should count 3 slides")
	}
	if !strings.Contains(parts["docProps/core.xml"], "<dc:title>Quarterly</dc:title>") {
		t.Errorf("core.xml should carry the deck title")
	}
}

func TestRender_DefaultIntro(t *testing.T) {
	parts := renderParts(t, sampleDeck(), Intro{})
	if !strings.Contains(parts["ppt/slides/slide1.xml"], "<a:t>"+DefaultIntro.Title+"</a:t>") {
		t.Error("empty intro should fall back to the default title")
	}
}

func TestRender_EmptyBodyHasParagraph(t *testing.T) {
	deck := &convert.Deck{Slides: []slides.Record{{Title: "Only", HeadingLevel: 2}}}
	parts := renderParts(t, deck, Intro{Title: "x"})
	slide := parts["ppt/slides/slide2.xml"]
	if !strings.Contains(slide, "<a:endParaRPr") {
		t.Errorf("empty body should still emit a paragraph: %s", slide)
	}
}

func TestRender_NilDeck(t *testing.T) {
	if err := Render(io.Discard, nil, Intro{}); err == nil {
		t.Fatal("expected error for nil deck")
	}
}

func TestTitleSize(t *testing.T) {
	tests := []struct{ level, want int }{
		{0, 4000}, {1, 4000}, {2, 3600}, {3, 3200}, {7, 3200},
	}
	for _, tt := range tests {
		if got := titleSize(tt.level); got != tt.want {
			t.Errorf("titleSize(%d) = %d, want %d", tt.level, got, tt.want)
		}
	}
}
