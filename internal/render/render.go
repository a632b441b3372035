// Package render draws tickets and call boards as plain text for the
// terminal.
package render

import (
	"fmt"
	"strings"

	"github.com/tombola-games/minibingo/internal/ticket"
)

// Grid renders a ticket as a 3x9 table. Empty cells print as dots,
// marked cells carry a trailing asterisk. A nil marked set renders the
// bare ticket.
func Grid(t *ticket.Ticket, marked map[int]bool) string {
	var b strings.Builder
	border := "+" + strings.Repeat("-----+", ticket.Cols)

	b.WriteString(border)
	b.WriteByte('\n')
	for r := 0; r < ticket.Rows; r++ {
		b.WriteByte('|')
		for c := 0; c < ticket.Cols; c++ {
			v := t.Grid[r][c]
			switch {
			case v == 0:
				b.WriteString("  .  ")
			case marked[v]:
				fmt.Fprintf(&b, " %2d* ", v)
			default:
				fmt.Fprintf(&b, " %2d  ", v)
			}
			b.WriteByte('|')
		}
		b.WriteByte('\n')
		b.WriteString(border)
		b.WriteByte('\n')
	}
	return b.String()
}

// History renders the call history as a wrapped number list, ten calls
// per line, most recent call last.
func History(drawn []int) string {
	if len(drawn) == 0 {
		return "(no numbers called yet)\n"
	}
	var b strings.Builder
	for i, n := range drawn {
		if i > 0 {
			if i%10 == 0 {
				b.WriteByte('\n')
			} else {
				b.WriteByte(' ')
			}
		}
		fmt.Fprintf(&b, "%2d", n)
	}
	b.WriteByte('\n')
	return b.String()
}
