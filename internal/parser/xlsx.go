package parser

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

// XLSXParser handles Excel workbooks. Each sheet is batched like a CSV
// file, with the sheet name leading every slide heading.
type XLSXParser struct{}

func (p *XLSXParser) Parse(r io.Reader, filename string) (*Document, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open xlsx: %w", err)
	}
	defer func() { _ = f.Close() }()

	doc := &Document{Title: baseTitle(filename)}
	if props, err := f.GetDocProps(); err == nil && strings.TrimSpace(props.Title) != "" {
		doc.Title = strings.TrimSpace(props.Title)
	}

	var sections []string
	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil {
			return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
		}
		sections = append(sections, tableSections(sheet, rows)...)
	}

	doc.Source = strings.TrimSpace(strings.Join(sections, "\n"))
	return doc, nil
}
