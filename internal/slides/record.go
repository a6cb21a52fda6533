// Package slides turns Markdown-style documents into ordered slide records.
//
// The pipeline is Preprocess (front-matter and style removal) followed by
// Segment (section splitting and title extraction). Both are pure functions
// and safe for concurrent use.
package slides

import (
	"regexp"
	"strings"
)

// Record is one slide: a display title, plain-text body and heading depth.
type Record struct {
	Title        string `json:"title"`
	Body         string `json:"body"`
	HeadingLevel int    `json:"heading_level"`
}

// blankTitle is used when a section has a body but nothing usable as a title.
const blankTitle = " "

var crlfOrCR = regexp.MustCompile(`\r\n?`)

// normalizeNewlines converts \r\n and \r to \n.
func normalizeNewlines(s string) string {
	return crlfOrCR.ReplaceAllString(s, "\n")
}

// newRecord applies the emptiness rule to already-plain title and body. ok
// is false when both are blank.
func newRecord(title, body string, level int) (Record, bool) {
	title = strings.TrimSpace(title)
	body = strings.TrimSpace(body)
	if title == "" && body == "" {
		return Record{}, false
	}
	if title == "" {
		title = blankTitle
	}
	if level < 1 {
		level = 1
	}
	return Record{Title: title, Body: body, HeadingLevel: level}, true
}
