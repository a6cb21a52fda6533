// Package render writes decks as Office Open XML presentations (.pptx).
package render

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/dgallion1/deckgest/internal/convert"
	"github.com/dgallion1/deckgest/internal/slides"
)

// ContentType is the media type of a rendered presentation.
const ContentType = "application/vnd.openxmlformats-officedocument.presentationml.presentation"

// 16:9 slide in EMU.
const (
	slideWidth  = 12192000
	slideHeight = 6858000
)

const (
	layoutTitle   = 1
	layoutContent = 2

	introTitleSize    = 4400
	introSubtitleSize = 2400
	bodySize          = 2000
)

// Intro is the fixed title slide placed before the content slides.
type Intro struct {
	Title    string
	Subtitle string
}

// DefaultIntro is used when Intro.Title is empty.
var DefaultIntro = Intro{Title: "Presentation", Subtitle: "Generated by deckgest"}

type box struct {
	X, Y, CX, CY int64
}

var (
	introTitleBox    = box{X: 838200, Y: 2130425, CX: 10515600, CY: 1470025}
	introSubtitleBox = box{X: 1676400, Y: 3886200, CX: 8839200, CY: 1752600}
	contentTitleBox  = box{X: 838200, Y: 365125, CX: 10515600, CY: 1325563}
	contentBodyBox   = box{X: 838200, Y: 1825625, CX: 10515600, CY: 4351338}
)

type slideData struct {
	Number      int
	ID          int
	RelID       string
	Layout      int
	Title       string
	TitleSize   int
	TitleAlign  string
	TitleAnchor string
	TitleBox    box
	Paragraphs  []string
	BodySize    int
	BodyAlign   string
	BodyBox     box
}

type deckData struct {
	Title   string
	Author  string
	Created string
	Width   int
	Height  int
	Slides  []slideData
}

type layoutData struct {
	Type string
	Name string
}

// Render writes deck to w as a .pptx archive: the intro slide followed by
// one slide per record, in order.
func Render(w io.Writer, deck *convert.Deck, intro Intro) error {
	if deck == nil {
		return errors.New("render: nil deck")
	}
	if strings.TrimSpace(intro.Title) == "" {
		intro = DefaultIntro
	}

	data := deckData{
		Title:   deck.Title,
		Author:  deck.Meta.Author,
		Created: time.Now().UTC().Format("2006-01-02T15:04:05Z"),
		Width:   slideWidth,
		Height:  slideHeight,
		Slides:  make([]slideData, 0, len(deck.Slides)+1),
	}
	data.Slides = append(data.Slides, introSlide(intro))
	for _, rec := range deck.Slides {
		data.Slides = append(data.Slides, contentSlide(len(data.Slides)+1, rec))
	}

	zw := zip.NewWriter(w)
	parts := []struct {
		name string
		tmpl string
		data any
	}{
		{"[Content_Types].xml", "contentTypes", data},
		{"_rels/.rels", "rootRels", nil},
		{"docProps/core.xml", "core", data},
		{"docProps/app.xml", "app", data},
		{"ppt/presentation.xml", "presentation", data},
		{"ppt/_rels/presentation.xml.rels", "presentationRels", data},
		{"ppt/slideMasters/slideMaster1.xml", "master", nil},
		{"ppt/slideMasters/_rels/slideMaster1.xml.rels", "masterRels", nil},
		{"ppt/slideLayouts/slideLayout1.xml", "layout", layoutData{Type: "title", Name: "Title Slide"}},
		{"ppt/slideLayouts/_rels/slideLayout1.xml.rels", "layoutRels", nil},
		{"ppt/slideLayouts/slideLayout2.xml", "layout", layoutData{Type: "obj", Name: "Title and Content"}},
		{"ppt/slideLayouts/_rels/slideLayout2.xml.rels", "layoutRels", nil},
		{"ppt/theme/theme1.xml", "theme", nil},
	}
	for _, p := range parts {
		if err := writePart(zw, p.name, p.tmpl, p.data); err != nil {
			return err
		}
	}
	for _, s := range data.Slides {
		name := "ppt/slides/slide" + strconv.Itoa(s.Number) + ".xml"
		if err := writePart(zw, name, "slide", s); err != nil {
			return err
		}
		rels := "ppt/slides/_rels/slide" + strconv.Itoa(s.Number) + ".xml.rels"
		if err := writePart(zw, rels, "slideRels", s); err != nil {
			return err
		}
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("render: close archive: %w", err)
	}
	return nil
}

func writePart(zw *zip.Writer, name, tmpl string, data any) error {
	f, err := zw.CreateHeader(&zip.FileHeader{Name: name, Method: zip.Deflate})
	if err != nil {
		return fmt.Errorf("render: create %s: %w", name, err)
	}
	if err := partTemplates.ExecuteTemplate(f, tmpl, data); err != nil {
		return fmt.Errorf("render: write %s: %w", name, err)
	}
	return nil
}

func introSlide(intro Intro) slideData {
	return slideData{
		Number:      1,
		ID:          256,
		RelID:       "rId3",
		Layout:      layoutTitle,
		Title:       intro.Title,
		TitleSize:   introTitleSize,
		TitleAlign:  "ctr",
		TitleAnchor: "b",
		TitleBox:    introTitleBox,
		Paragraphs:  paragraphs(intro.Subtitle),
		BodySize:    introSubtitleSize,
		BodyAlign:   "ctr",
		BodyBox:     introSubtitleBox,
	}
}

func contentSlide(number int, rec slides.Record) slideData {
	return slideData{
		Number:      number,
		ID:          255 + number,
		RelID:       "rId" + strconv.Itoa(number+2),
		Layout:      layoutContent,
		Title:       rec.Title,
		TitleSize:   titleSize(rec.HeadingLevel),
		TitleAlign:  "l",
		TitleAnchor: "ctr",
		TitleBox:    contentTitleBox,
		Paragraphs:  paragraphs(rec.Body),
		BodySize:    bodySize,
		BodyAlign:   "l",
		BodyBox:     contentBodyBox,
	}
}

// titleSize is in hundredths of a point; deeper headings render smaller.
func titleSize(level int) int {
	level = min(max(level, 1), 3)
	return 4000 - (level-1)*400
}

// paragraphs splits body text into one paragraph per line. A text body
// needs at least one paragraph, so empty text yields a single empty one.
func paragraphs(text string) []string {
	if text == "" {
		return []string{""}
	}
	return strings.Split(text, "\n")
}
