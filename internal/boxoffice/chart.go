package boxoffice

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/iliyamo/cinema-box-office/internal/coorexpr"
	"github.com/iliyamo/cinema-box-office/internal/model"
)

// SelectedSymbol marks seats passed to RenderChart as selected.
const SelectedSymbol = '?'

// RenderChart draws the seating plan of h as text, screen on top, columns
// lettered and rows numbered on both sides:
//
//	   [Screen]
//	    _______
//	    |A|B|C|
//	    -------
//	1   | |X|!|   1
//	    -------
func RenderChart(h *model.House, screen string, selected ...coorexpr.Coordinate) string {
	marked := make(map[coorexpr.Coordinate]bool, len(selected))
	for _, c := range selected {
		marked[c] = true
	}
	lineLength := h.Columns*2 + 1
	rule := "    " + strings.Repeat("-", lineLength) + "\n"

	var b strings.Builder
	if pad := (lineLength + 8 - utf8.RuneCountInString(screen)) / 2; pad > 0 {
		b.WriteString(strings.Repeat(" ", pad))
	}
	b.WriteString(screen)
	b.WriteString("\n")
	b.WriteString("    " + strings.Repeat("_", lineLength) + "\n")
	b.WriteString("    |")
	for c := 0; c < h.Columns; c++ {
		b.WriteByte(byte('A' + c))
		b.WriteByte('|')
	}
	b.WriteString("\n")
	b.WriteString(rule)
	for r := 0; r < h.Rows; r++ {
		fmt.Fprintf(&b, "%-2d  |", r+1)
		for c := 0; c < h.Columns; c++ {
			pos := coorexpr.Coordinate{Row: r, Column: c}
			sym := h.Status(pos).Symbol()
			if marked[pos] {
				sym = SelectedSymbol
			}
			b.WriteByte(sym)
			b.WriteByte('|')
		}
		fmt.Fprintf(&b, "  %2d\n", r+1)
		b.WriteString(rule)
	}
	return b.String()
}
