package parser

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/taylorskalyo/goreader/epub"
	"golang.org/x/net/html"
)

// EPUBParser handles EPUB books. Spine documents are read in order
// through the HTML walker and separated by slide breaks.
type EPUBParser struct{}

func (p *EPUBParser) Parse(r io.Reader, filename string) (*Document, error) {
	// goreader opens archives by path.
	tmp, err := os.CreateTemp("", "deckgest-epub-*.epub")
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	_, err = io.Copy(tmp, r)
	tmp.Close()
	if err != nil {
		return nil, fmt.Errorf("write temp file: %w", err)
	}

	rc, err := epub.OpenReader(tmpPath)
	if err != nil {
		return nil, fmt.Errorf("open epub: %w", err)
	}
	defer rc.Close()

	if len(rc.Rootfiles) == 0 {
		return nil, errors.New("open epub: no rootfiles")
	}
	book := rc.Rootfiles[0]

	doc := &Document{Title: baseTitle(filename)}
	if t := strings.TrimSpace(book.Title); t != "" {
		doc.Title = t
	}

	var chapters []string
	for _, ref := range book.Spine.Itemrefs {
		if ref.Item == nil {
			continue
		}
		text, err := epubChapter(ref.Item)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", ref.Item.HREF, err)
		}
		if text != "" {
			chapters = append(chapters, text)
		}
	}

	doc.Source = strings.Join(chapters, "\n\n---\n\n")
	return doc, nil
}

func epubChapter(item *epub.Item) (string, error) {
	rc, err := item.Open()
	if err != nil {
		return "", err
	}
	defer rc.Close()

	node, err := html.Parse(rc)
	if err != nil {
		return "", err
	}
	root := findBody(node)
	if root == nil {
		root = node
	}
	return strings.TrimSpace(strings.Join(htmlLines(root), "\n")), nil
}
