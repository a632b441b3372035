package ticket

import (
	"fmt"
	"hash/fnv"
	"sort"
	"strconv"
	"strings"
)

const (
	Rows = 3
	Cols = 9

	// TotalNumbers is the count of filled cells on a valid ticket.
	TotalNumbers = 15
	// RowNumbers is the count of filled cells per row.
	RowNumbers = 5
	// MaxPerColumn caps how many cells a single column may fill.
	MaxPerColumn = 3
)

// Ticket is a UK-style 9x3 bingo ticket. Empty cells hold 0; filled
// cells hold a number in 1..90 that belongs to the cell's column range
// and increases top to bottom within the column. Tickets are built by
// the Factory and never mutated afterwards.
type Ticket struct {
	SN   string          `json:"sn"`
	Grid [Rows][Cols]int `json:"grid"`
}

// ColumnRange returns the inclusive number range for column c.
// Column 0 holds 1-9, columns 1..7 hold 10c..10c+9 and column 8
// holds 80-90.
func ColumnRange(c int) (lo, hi int) {
	switch {
	case c == 0:
		return 1, 9
	case c == Cols-1:
		return 80, 90
	default:
		return 10 * c, 10*c + 9
	}
}

// Numbers returns the filled cells in row-major order.
func (t *Ticket) Numbers() []int {
	nums := make([]int, 0, TotalNumbers)
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			if t.Grid[r][c] != 0 {
				nums = append(nums, t.Grid[r][c])
			}
		}
	}
	return nums
}

// Key is the ticket's 15 numbers sorted ascending and joined as CSV.
// Two tickets with the same key are considered duplicates regardless
// of layout.
func (t *Ticket) Key() string {
	nums := t.Numbers()
	sort.Ints(nums)
	parts := make([]string, len(nums))
	for i, n := range nums {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ",")
}

// serial derives the card serial number from the number set, so the
// same numbers always yield the same SN.
func serial(key string) string {
	h := fnv.New64a()
	h.Write([]byte(key))
	return fmt.Sprintf("T-%016x", h.Sum64())
}

// Validate checks the structural invariants of a ticket: 15 filled
// cells, 5 per row, 1..3 per column, values inside the column range and
// strictly increasing top to bottom within each column.
func (t *Ticket) Validate() error {
	total := 0
	for r := 0; r < Rows; r++ {
		rowCount := 0
		for c := 0; c < Cols; c++ {
			if t.Grid[r][c] != 0 {
				rowCount++
				total++
			}
		}
		if rowCount != RowNumbers {
			return fmt.Errorf("row %d has %d numbers, want %d", r, rowCount, RowNumbers)
		}
	}
	if total != TotalNumbers {
		return fmt.Errorf("ticket has %d numbers, want %d", total, TotalNumbers)
	}

	for c := 0; c < Cols; c++ {
		lo, hi := ColumnRange(c)
		count := 0
		prev := 0
		for r := 0; r < Rows; r++ {
			v := t.Grid[r][c]
			if v == 0 {
				continue
			}
			count++
			if v < lo || v > hi {
				return fmt.Errorf("column %d value %d outside range %d-%d", c, v, lo, hi)
			}
			if prev != 0 && v <= prev {
				return fmt.Errorf("column %d not increasing: %d after %d", c, v, prev)
			}
			prev = v
		}
		if count < 1 || count > MaxPerColumn {
			return fmt.Errorf("column %d has %d numbers, want 1-%d", c, count, MaxPerColumn)
		}
	}
	return nil
}
