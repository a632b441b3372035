// Package win evaluates line and full-card completion for a ticket
// against the set of numbers marked so far. Both checks are pure
// predicates over immutable inputs.
package win

import "github.com/tombola-games/minibingo/internal/ticket"

// MarkedSet builds a membership lookup from a call history.
func MarkedSet(history []int) map[int]bool {
	marked := make(map[int]bool, len(history))
	for _, n := range history {
		marked[n] = true
	}
	return marked
}

// LineComplete reports the first row (scanning 0, 1, 2) whose filled
// cells are all marked. When several rows complete on the same call only
// the lowest index is reported; that tie-break is deliberate. The bool
// is false when no row qualifies.
func LineComplete(t *ticket.Ticket, marked map[int]bool) (int, bool) {
	for r := 0; r < ticket.Rows; r++ {
		complete := true
		for c := 0; c < ticket.Cols; c++ {
			v := t.Grid[r][c]
			if v != 0 && !marked[v] {
				complete = false
				break
			}
		}
		if complete {
			return r, true
		}
	}
	return 0, false
}

// BingoComplete reports whether every number on the ticket is marked.
func BingoComplete(t *ticket.Ticket, marked map[int]bool) bool {
	for _, n := range t.Numbers() {
		if !marked[n] {
			return false
		}
	}
	return true
}
