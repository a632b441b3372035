package win

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tombola-games/minibingo/internal/ticket"
)

// rowTicket builds a ticket whose middle row matches the documented
// example: [11, -, -, 34, -, -, -, 72, -] plus filler rows. Only the
// filled cells matter to the predicates.
func rowTicket() *ticket.Ticket {
	t := &ticket.Ticket{}
	t.Grid[0] = [ticket.Cols]int{1, 0, 21, 0, 41, 0, 61, 0, 81}
	t.Grid[1] = [ticket.Cols]int{0, 11, 0, 34, 0, 0, 0, 72, 0}
	t.Grid[2] = [ticket.Cols]int{0, 12, 22, 0, 0, 51, 0, 73, 82}
	return t
}

func TestLineCompleteReturnsFirstFullRow(t *testing.T) {
	tk := rowTicket()

	row, ok := LineComplete(tk, MarkedSet([]int{11, 34, 72}))
	require.True(t, ok)
	assert.Equal(t, 1, row)

	// an incomplete row does not count
	_, ok = LineComplete(tk, MarkedSet([]int{11, 34}))
	assert.False(t, ok)
}

func TestLineCompleteTieBreaksByLowestRow(t *testing.T) {
	tk := rowTicket()

	marked := MarkedSet([]int{1, 21, 41, 61, 81, 11, 34, 72})
	row, ok := LineComplete(tk, marked)
	require.True(t, ok)
	assert.Equal(t, 0, row, "row 0 wins when several rows complete")
}

func TestLineCompleteNoneMarked(t *testing.T) {
	tk := rowTicket()
	_, ok := LineComplete(tk, MarkedSet(nil))
	assert.False(t, ok)
}

func TestBingoCompleteNeedsAllFifteen(t *testing.T) {
	factory := ticket.NewSeededFactory(42)
	tk, err := factory.Generate()
	require.NoError(t, err)

	nums := tk.Numbers()
	require.Len(t, nums, ticket.TotalNumbers)

	assert.False(t, BingoComplete(tk, MarkedSet(nums[:len(nums)-1])), "14 of 15 is not bingo")
	assert.True(t, BingoComplete(tk, MarkedSet(nums)))

	// extra marked numbers do not matter
	assert.True(t, BingoComplete(tk, MarkedSet(append(nums, 89, 90, 1))))
}

func TestMarkedSet(t *testing.T) {
	marked := MarkedSet([]int{4, 4, 17})
	assert.True(t, marked[4])
	assert.True(t, marked[17])
	assert.False(t, marked[5])
}
