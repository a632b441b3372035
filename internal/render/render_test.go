package render

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tombola-games/minibingo/internal/ticket"
	"github.com/tombola-games/minibingo/internal/win"
)

func TestGridShowsNumbersAndMarks(t *testing.T) {
	tk, err := ticket.NewSeededFactory(8).Generate()
	require.NoError(t, err)

	nums := tk.Numbers()
	out := Grid(tk, win.MarkedSet(nums[:1]))

	for _, n := range nums {
		assert.Contains(t, out, strconv.Itoa(n))
	}
	assert.Contains(t, out, strconv.Itoa(nums[0])+"*", "marked cell must be flagged")

	// three rows between four borders
	assert.Equal(t, ticket.Rows*2+1, strings.Count(out, "\n"))
}

func TestGridEmptyCellsAreDots(t *testing.T) {
	tk := &ticket.Ticket{}
	tk.Grid[0][0] = 5
	out := Grid(tk, nil)
	assert.Contains(t, out, ".")
	assert.Contains(t, out, " 5")
}

func TestHistory(t *testing.T) {
	assert.Contains(t, History(nil), "no numbers called")

	out := History([]int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11})
	assert.Equal(t, 2, strings.Count(out, "\n"), "wraps after ten calls")
	assert.Contains(t, out, "11")
}
