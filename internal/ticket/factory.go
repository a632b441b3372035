package ticket

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"

	log "github.com/sirupsen/logrus"
)

// ErrGeneration is returned when a valid ticket (or a batch of distinct
// tickets) cannot be produced within the attempt budget. The parameter
// space makes this near-impossible in practice, so callers should treat
// it as fatal rather than retry.
var ErrGeneration = errors.New("ticket generation failed")

const (
	// maxAttempts bounds the retry loop for a single ticket.
	maxAttempts = 1000
	// uniqueAttemptsPerTicket bounds the rejection loop when building a
	// batch of distinct tickets.
	uniqueAttemptsPerTicket = 50
)

// Factory generates tickets from an injected random source. Seeding the
// source makes the whole output sequence reproducible.
type Factory struct {
	rng *rand.Rand
}

func NewFactory(rng *rand.Rand) *Factory {
	return &Factory{rng: rng}
}

// NewSeededFactory is a convenience wrapper for deterministic runs.
func NewSeededFactory(seed int64) *Factory {
	return NewFactory(rand.New(rand.NewSource(seed)))
}

// Generate builds one valid ticket. Construction retries from scratch
// until validation passes or the attempt budget runs out.
func (f *Factory) Generate() (*Ticket, error) {
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		t, err := f.build()
		if err != nil {
			log.Debugf("ticket attempt %d rejected: %v", attempt, err)
			continue
		}
		if err := t.Validate(); err != nil {
			log.Debugf("ticket attempt %d invalid: %v", attempt, err)
			continue
		}
		t.SN = serial(t.Key())
		return t, nil
	}
	return nil, fmt.Errorf("%w: no valid ticket after %d attempts", ErrGeneration, maxAttempts)
}

// GenerateUnique builds count tickets whose number sets are pairwise
// distinct, all drawn from the factory's single random source so the
// batch is reproducible from one seed. A zero count returns an empty
// batch without consuming any randomness.
func (f *Factory) GenerateUnique(count int) ([]*Ticket, error) {
	tickets := make([]*Ticket, 0, count)
	if count <= 0 {
		return tickets, nil
	}

	seen := make(map[string]bool, count)
	budget := count * uniqueAttemptsPerTicket
	for attempt := 0; attempt < budget && len(tickets) < count; attempt++ {
		t, err := f.Generate()
		if err != nil {
			return nil, err
		}
		key := t.Key()
		if seen[key] {
			continue
		}
		seen[key] = true
		tickets = append(tickets, t)
	}
	if len(tickets) < count {
		return nil, fmt.Errorf("%w: only %d of %d distinct tickets within %d attempts",
			ErrGeneration, len(tickets), count, budget)
	}
	return tickets, nil
}

// build runs one generation attempt: distribute per-column counts,
// sample each column's numbers, balance rows, place.
func (f *Factory) build() (*Ticket, error) {
	counts := f.columnCounts()

	colNumbers := make([][]int, Cols)
	for c := 0; c < Cols; c++ {
		colNumbers[c] = f.sampleColumn(c, counts[c])
	}

	rowsForCol, err := balanceRows(counts)
	if err != nil {
		return nil, err
	}

	t := &Ticket{}
	for c := 0; c < Cols; c++ {
		rows := rowsForCol[c]
		sort.Ints(rows)
		// ascending row order keeps the column sorted top to bottom
		for i, r := range rows {
			t.Grid[r][c] = colNumbers[c][i]
		}
	}
	return t, nil
}

// columnCounts assigns each column 1..3 numbers summing to 15: every
// column starts at one, then the remaining six go to random columns
// still below the cap.
func (f *Factory) columnCounts() [Cols]int {
	var counts [Cols]int
	for c := range counts {
		counts[c] = 1
	}
	remaining := TotalNumbers - Cols
	for remaining > 0 {
		c := f.rng.Intn(Cols)
		if counts[c] < MaxPerColumn {
			counts[c]++
			remaining--
		}
	}
	return counts
}

// sampleColumn picks n distinct numbers from column c's range, sorted
// ascending.
func (f *Factory) sampleColumn(c, n int) []int {
	lo, hi := ColumnRange(c)
	size := hi - lo + 1
	perm := f.rng.Perm(size)
	nums := make([]int, n)
	for i := 0; i < n; i++ {
		nums[i] = lo + perm[i]
	}
	sort.Ints(nums)
	return nums
}

// balanceRows assigns each column's numbers to rows so every row ends up
// with exactly five. Columns are handled in descending count order;
// within a step the least-loaded rows win, ties going to the lowest row
// index. The greedy order makes the 5/5/5 split reachable; a row
// overflowing past five aborts the attempt.
func balanceRows(counts [Cols]int) ([][]int, error) {
	rowCounts := [Rows]int{}
	rowsForCol := make([][]int, Cols)

	for want := MaxPerColumn; want >= 1; want-- {
		for c := 0; c < Cols; c++ {
			if counts[c] != want {
				continue
			}
			rows := leastLoadedRows(rowCounts, want)
			rowsForCol[c] = rows
			for _, r := range rows {
				rowCounts[r]++
				if rowCounts[r] > RowNumbers {
					return nil, fmt.Errorf("row %d overloaded while balancing", r)
				}
			}
		}
	}

	for r, rc := range rowCounts {
		if rc != RowNumbers {
			return nil, fmt.Errorf("row %d ended with %d numbers, want %d", r, rc, RowNumbers)
		}
	}
	return rowsForCol, nil
}

// leastLoadedRows returns the n rows with the fewest assigned numbers,
// lowest index first on ties.
func leastLoadedRows(rowCounts [Rows]int, n int) []int {
	idx := []int{0, 1, 2}
	sort.SliceStable(idx, func(a, b int) bool {
		return rowCounts[idx[a]] < rowCounts[idx[b]]
	})
	return append([]int(nil), idx[:n]...)
}
