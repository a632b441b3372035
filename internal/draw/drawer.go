// Package draw holds the number caller for a round: a shuffled deck of
// 1..90 that is drawn front to back, with a history of every call.
package draw

import (
	"errors"
	"math/rand"
)

// PoolSize is the count of callable numbers in a 90-ball game.
const PoolSize = 90

// ErrExhausted signals that every number has been drawn. It ends the
// round; it is not a retryable failure.
var ErrExhausted = errors.New("number pool exhausted")

// Drawer deals a random permutation of 1..90 one number at a time and
// never repeats a number within its lifetime.
type Drawer struct {
	pool  []int
	drawn []int
}

// NewDrawer builds a drawer over a fresh shuffle of 1..90.
func NewDrawer(rng *rand.Rand) *Drawer {
	d := &Drawer{}
	d.Reset(rng)
	return d
}

// NewFixedDrawer builds a drawer that deals the given pool in order.
// Simulations use this to front-load a ticket's own numbers.
func NewFixedDrawer(pool []int) *Drawer {
	return &Drawer{
		pool:  append([]int(nil), pool...),
		drawn: nil,
	}
}

// Reset discards any prior state and reshuffles the full 1..90 deck,
// starting a fresh independent sequence.
func (d *Drawer) Reset(rng *rand.Rand) {
	deck := rng.Perm(PoolSize)
	for i := range deck {
		deck[i]++
	}
	d.pool = deck
	d.drawn = nil
}

// DrawNext pops the next number off the pool. Returns ErrExhausted once
// the pool is empty.
func (d *Drawer) DrawNext() (int, error) {
	if len(d.pool) == 0 {
		return 0, ErrExhausted
	}
	n := d.pool[0]
	d.pool = d.pool[1:]
	d.drawn = append(d.drawn, n)
	return n, nil
}

// Drawn returns a copy of the call history, most recent last.
func (d *Drawer) Drawn() []int {
	return append([]int(nil), d.drawn...)
}

// Remaining returns a copy of the numbers still to be drawn, in order.
func (d *Drawer) Remaining() []int {
	return append([]int(nil), d.pool...)
}

func (d *Drawer) RemainingCount() int {
	return len(d.pool)
}
