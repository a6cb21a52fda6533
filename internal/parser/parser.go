package parser

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// ErrUnsupported is returned for file extensions no parser handles.
var ErrUnsupported = errors.New("unsupported file type")

// Document is an uploaded file reduced to Markdown-style text. Headings use
// "#" markers and page or rule breaks use "---" lines, so Source can go
// straight into slides.Preprocess.
type Document struct {
	Title  string // From metadata or filename.
	Source string

	// FrontMatter is set for author-written text, where a leading "---"
	// block is metadata. Generated sources use "---" only as a slide break.
	FrontMatter bool
}

// Parser converts raw document bytes into a Document.
type Parser interface {
	Parse(r io.Reader, filename string) (*Document, error)
}

// SupportedExtensions lists file extensions this service can handle.
var SupportedExtensions = map[string]bool{
	".md":       true,
	".markdown": true,
	".txt":      true,
	".csv":      true,
	".html":     true,
	".htm":      true,
	".pdf":      true,
	".docx":     true,
	".xlsx":     true,
	".epub":     true,
}

// Options tunes parsers that shell out or fall back.
type Options struct {
	PDFFallbackPdftotext bool
}

// ForFile returns the appropriate parser for a filename.
func ForFile(filename string, opts Options) (Parser, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".md", ".markdown":
		return &MarkdownParser{}, nil
	case ".txt":
		return &TextParser{}, nil
	case ".csv":
		return &CSVParser{}, nil
	case ".html", ".htm":
		return &HTMLParser{}, nil
	case ".pdf":
		return &PDFParser{FallbackPdftotext: opts.PDFFallbackPdftotext}, nil
	case ".docx":
		return &DOCXParser{}, nil
	case ".xlsx":
		return &XLSXParser{}, nil
	case ".epub":
		return &EPUBParser{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupported, ext)
	}
}

// IsSupportedExtension checks if a file extension is supported.
func IsSupportedExtension(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return SupportedExtensions[ext]
}

// baseTitle strips the extension from a filename.
func baseTitle(filename string) string {
	name := filepath.Base(filename)
	return strings.TrimSuffix(name, filepath.Ext(name))
}

// headingMarker renders a slide heading line. Levels beyond three are not
// slide boundaries, so the text is returned bare.
func headingMarker(level int, text string) string {
	if level < 1 || level > 3 {
		return text
	}
	return strings.Repeat("#", level) + " " + text
}

var markupEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// escapeMarkup protects extracted text from the segmenter's markup
// stripping. Text pulled out of HTML, DOCX or PDF is already plain, so a
// literal "<b>" in it must survive as text.
func escapeMarkup(s string) string {
	return markupEscaper.Replace(s)
}
