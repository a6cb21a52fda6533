package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dgallion1/deckgest/internal/convert"
	"github.com/olekukonko/tablewriter"
)

// printOutline writes one table row per content slide.
func printOutline(w io.Writer, deck *convert.Deck) {
	fmt.Fprintf(w, "%s (%d slides)\n", deck.Title, len(deck.Slides))

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"#", "Level", "Title", "Lines"})
	table.SetAutoWrapText(false)

	for i, rec := range deck.Slides {
		table.Append([]string{
			strconv.Itoa(i + 1),
			strings.Repeat("#", rec.HeadingLevel),
			rec.Title,
			strconv.Itoa(bodyLines(rec.Body)),
		})
	}
	table.Render()
}

func bodyLines(body string) int {
	if body == "" {
		return 0
	}
	return strings.Count(body, "\n") + 1
}
