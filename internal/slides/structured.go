package slides

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	gmhtml "github.com/yuin/goldmark/renderer/html"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// SegmentStructured is the render-then-split alternative to Segment. The
// text is rendered to HTML with goldmark and the top-level elements are
// walked: <hr> and <h1>-<h3> open sections, everything else is body.
//
// It agrees with Segment on ordinary documents but follows CommonMark where
// the line rules do not, e.g. "text\n---" is a setext heading rather than a
// slide break, and list markers are dropped from bodies.
func SegmentStructured(cleaned string) []Record {
	src := []byte(normalizeNewlines(cleaned))

	md := goldmark.New(goldmark.WithRendererOptions(gmhtml.WithUnsafe()))
	var buf bytes.Buffer
	if err := md.Convert(src, &buf); err != nil {
		return Segment(cleaned)
	}

	nodes, err := html.ParseFragment(&buf, &html.Node{
		Type:     html.ElementNode,
		Data:     "body",
		DataAtom: atom.Body,
	})
	if err != nil {
		return Segment(cleaned)
	}

	type section struct {
		title     string
		titled    bool
		delimited bool
		level     int
		body      []string
	}

	var records []Record
	var cur *section

	flush := func() {
		if cur == nil {
			return
		}
		if rec, ok := newRecord(cur.title, strings.Join(cur.body, "\n\n"), cur.level); ok {
			records = append(records, rec)
		}
		cur = nil
	}

	for _, n := range nodes {
		if n.Type != html.ElementNode {
			if t := strings.TrimSpace(n.Data); n.Type == html.TextNode && t != "" {
				if cur == nil {
					cur = &section{level: 1}
				}
				cur.body = append(cur.body, t)
			}
			continue
		}

		if n.DataAtom == atom.Hr {
			flush()
			cur = &section{level: 1, delimited: true}
			continue
		}

		if level := headingLevel(n.DataAtom); level > 0 && level <= 3 {
			if cur == nil || cur.titled || !cur.delimited || len(cur.body) > 0 {
				flush()
				cur = &section{}
			}
			cur.title = nodeText(n)
			cur.level = level
			cur.titled = true
			continue
		}

		t := nodeText(n)
		if t == "" {
			continue
		}
		if cur == nil {
			cur = &section{level: 1}
		}
		if !cur.titled && len(cur.body) == 0 {
			first, rest, _ := strings.Cut(t, "\n")
			cur.title = first
			cur.titled = true
			t = strings.TrimSpace(rest)
			if t == "" {
				continue
			}
		}
		cur.body = append(cur.body, t)
	}
	flush()

	return records
}

func headingLevel(a atom.Atom) int {
	switch a {
	case atom.H1:
		return 1
	case atom.H2:
		return 2
	case atom.H3:
		return 3
	case atom.H4:
		return 4
	case atom.H5:
		return 5
	case atom.H6:
		return 6
	}
	return 0
}

// nodeText flattens an element to plain text, keeping paragraph, line-break
// and list-item boundaries as newlines.
func nodeText(n *html.Node) string {
	var buf strings.Builder
	newline := func() {
		if s := buf.String(); s != "" && !strings.HasSuffix(s, "\n") {
			buf.WriteByte('\n')
		}
	}

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			// Formatting whitespace between block elements.
			if strings.TrimSpace(n.Data) == "" && strings.Contains(n.Data, "\n") {
				return
			}
			buf.WriteString(n.Data)
			return
		case html.ElementNode:
			switch n.DataAtom {
			case atom.Style, atom.Script:
				return
			case atom.Br:
				buf.WriteByte('\n')
				return
			case atom.Li:
				newline()
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
		if n.Type == html.ElementNode {
			switch n.DataAtom {
			case atom.Li:
				newline()
			case atom.P:
				newline()
				buf.WriteByte('\n')
			}
		}
	}
	walk(n)
	return strings.TrimSpace(collapseNewlines(buf.String()))
}
