package parser

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// tableBatchSize is the number of data rows per slide.
const tableBatchSize = 10

// CSVParser handles CSV files. Rows are grouped into fixed-size batches,
// one slide per batch, each row rendered as "header: value" pairs.
type CSVParser struct{}

func (p *CSVParser) Parse(r io.Reader, filename string) (*Document, error) {
	reader := csv.NewReader(r)
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}

	return &Document{
		Title:  baseTitle(filename),
		Source: strings.TrimSpace(strings.Join(tableSections("", records), "\n")),
	}, nil
}

// tableSections renders rows as slide sections. The first row holds the
// headers; label, when set, prefixes each section heading.
func tableSections(label string, rows [][]string) []string {
	if len(rows) < 2 {
		return nil
	}
	headers := rows[0]
	dataRows := rows[1:]

	var sections []string
	for i := 0; i < len(dataRows); i += tableBatchSize {
		end := min(i+tableBatchSize, len(dataRows))

		heading := fmt.Sprintf("Rows %d-%d", i+2, end+1) // 1-indexed, skip header
		if label != "" {
			heading = label + ": " + heading
		}

		var text strings.Builder
		text.WriteString(headingMarker(2, escapeMarkup(heading)))
		text.WriteString("\n")
		for _, row := range dataRows[i:end] {
			cells := make([]string, 0, len(row))
			for j, cell := range row {
				if j < len(headers) && headers[j] != "" {
					cells = append(cells, headers[j]+": "+cell)
				} else {
					cells = append(cells, cell)
				}
			}
			text.WriteString(escapeMarkup(strings.Join(cells, ", ")))
			text.WriteString("\n")
		}
		sections = append(sections, text.String())
	}
	return sections
}
