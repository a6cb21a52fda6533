package slides

import (
	"regexp"
	"strings"
)

// headingLine matches ATX headings of depth one to three. Deeper headings
// are ordinary text as far as slide boundaries are concerned.
var headingLine = regexp.MustCompile(`^(#{1,3}) (.*)$`)

// Segment splits preprocessed text into slide records in document order.
//
// A new section starts at every "---" line and at every heading line. The
// boundary line stays with the section it opens. A heading that follows a
// "---" line (blank lines aside) belongs to that same section and supplies
// its title. Sections without a heading take their first line as the title.
func Segment(cleaned string) []Record {
	lines := strings.Split(normalizeNewlines(cleaned), "\n")

	var records []Record
	for _, section := range splitSections(lines) {
		if rec, ok := buildRecord(section); ok {
			records = append(records, rec)
		}
	}
	return records
}

// splitSections performs the lookahead split.
func splitSections(lines []string) [][]string {
	var sections [][]string
	var cur []string
	for _, line := range lines {
		_, _, heading := parseHeading(line)
		boundary := heading || isDelimiterLine(line)
		if boundary && !(heading && awaitingTitle(cur)) {
			if len(cur) > 0 {
				sections = append(sections, cur)
			}
			cur = nil
		}
		cur = append(cur, line)
	}
	if len(cur) > 0 {
		sections = append(sections, cur)
	}
	return sections
}

// awaitingTitle reports whether section is a bare "---" line, optionally
// followed by blank lines, so the next heading titles it.
func awaitingTitle(section []string) bool {
	if len(section) == 0 || !isDelimiterLine(section[0]) {
		return false
	}
	for _, line := range section[1:] {
		if strings.TrimSpace(line) != "" {
			return false
		}
	}
	return true
}

func buildRecord(section []string) (Record, bool) {
	lines := trimBlankLines(section)
	if len(lines) == 0 {
		return Record{}, false
	}

	var title string
	level := 1
	rest := lines[1:]

	first := lines[0]
	if isDelimiterLine(first) {
		rest = trimBlankLines(rest)
		if len(rest) > 0 {
			if t, lvl, ok := parseHeading(rest[0]); ok {
				title, level = t, lvl
			} else {
				title = rest[0]
			}
			rest = rest[1:]
		}
	} else if t, lvl, ok := parseHeading(first); ok {
		title, level = t, lvl
	} else {
		title = first
	}

	body := strings.TrimSpace(strings.Join(rest, "\n"))
	return newRecord(StripMarkup(title), StripMarkup(body), level)
}

// parseHeading returns the marker-stripped text and depth of a heading line.
func parseHeading(line string) (string, int, bool) {
	m := headingLine.FindStringSubmatch(line)
	if m == nil {
		return "", 0, false
	}
	return strings.TrimSpace(m[2]), len(m[1]), true
}

func trimBlankLines(lines []string) []string {
	for len(lines) > 0 && strings.TrimSpace(lines[0]) == "" {
		lines = lines[1:]
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
