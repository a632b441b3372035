// Package session runs the interactive game loop: buy tickets, call
// numbers, pay out line and bingo prizes, repeat until the player quits
// or the wallet runs dry.
package session

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/tombola-games/minibingo/internal/draw"
	"github.com/tombola-games/minibingo/internal/render"
	"github.com/tombola-games/minibingo/internal/ticket"
	"github.com/tombola-games/minibingo/internal/wallet"
	"github.com/tombola-games/minibingo/internal/win"
)

// Session wires the factory, drawer and wallet into one playable loop.
// Input and output are injected so tests can script a full game.
type Session struct {
	factory *ticket.Factory
	wallet  *wallet.Manager
	rng     *rand.Rand

	in  *bufio.Scanner
	out io.Writer

	// Auto plays rounds without pausing between calls.
	Auto bool
}

func New(factory *ticket.Factory, w *wallet.Manager, rng *rand.Rand, in io.Reader, out io.Writer) *Session {
	return &Session{
		factory: factory,
		wallet:  w,
		rng:     rng,
		in:      bufio.NewScanner(in),
		out:     out,
	}
}

// RoundResult summarises one played round.
type RoundResult struct {
	Tickets  []*ticket.Ticket
	Calls    int
	LineRow  int
	LineWon  bool
	BingoWon bool
}

// Run loops rounds until the player declines to continue or can no
// longer afford a ticket.
func (s *Session) Run() error {
	fmt.Fprintf(s.out, "Welcome to minibingo. Balance: %d credits.\n", s.wallet.Balance())

	for {
		if !s.wallet.CanAfford(1) {
			fmt.Fprintf(s.out, "Balance %d cannot cover a %d credit ticket. Deposit to keep playing.\n",
				s.wallet.Balance(), s.wallet.TicketCost)
			return nil
		}

		quantity := s.promptTicketCount()
		if quantity == 0 {
			fmt.Fprintln(s.out, "Thanks for playing.")
			return nil
		}

		if _, err := s.PlayRound(quantity); err != nil {
			return err
		}

		if !s.promptYes("Play another round? [y/N] ", false) {
			fmt.Fprintf(s.out, "Final balance: %d credits.\n", s.wallet.Balance())
			return nil
		}
	}
}

// RunRounds plays a fixed number of rounds without prompting, buying
// the same ticket count each round. Used by autoplay.
func (s *Session) RunRounds(rounds, ticketsPerRound int) error {
	auto := s.Auto
	s.Auto = true
	defer func() { s.Auto = auto }()

	for i := 0; i < rounds; i++ {
		if !s.wallet.CanAfford(ticketsPerRound) {
			fmt.Fprintf(s.out, "Balance %d cannot cover %d ticket(s), stopping after %d round(s).\n",
				s.wallet.Balance(), ticketsPerRound, i)
			return nil
		}
		if _, err := s.PlayRound(ticketsPerRound); err != nil {
			return err
		}
	}
	return nil
}

// PlayRound buys tickets, creates a fresh drawer and calls numbers until
// bingo or pool exhaustion. The line prize pays at most once per round,
// on the first completed row across all tickets.
func (s *Session) PlayRound(quantity int) (*RoundResult, error) {
	if _, err := s.wallet.SpendForTickets(quantity); err != nil {
		return nil, err
	}
	tickets, err := s.factory.GenerateUnique(quantity)
	if err != nil {
		return nil, err
	}
	fmt.Fprintf(s.out, "Bought %d ticket(s) for %d credit(s). Balance: %d.\n",
		quantity, quantity*s.wallet.TicketCost, s.wallet.Balance())
	for _, t := range tickets {
		fmt.Fprintf(s.out, "Ticket %s\n%s", t.SN, render.Grid(t, nil))
	}

	drawer := draw.NewDrawer(s.rng)
	result, err := s.CallNumbers(drawer, tickets)
	if err != nil {
		return nil, err
	}

	if result.BingoWon {
		fmt.Fprintf(s.out, "BINGO after %d calls! Balance: %d credits.\n", result.Calls, s.wallet.Balance())
	} else {
		fmt.Fprintf(s.out, "Round over after %d calls, no bingo. Balance: %d credits.\n",
			result.Calls, s.wallet.Balance())
	}
	return result, nil
}

// CallNumbers drives one drawer until a ticket completes or the pool
// runs out, paying prizes as they happen. The drawer is injected so
// simulations can front-load a known pool.
func (s *Session) CallNumbers(drawer *draw.Drawer, tickets []*ticket.Ticket) (*RoundResult, error) {
	result := &RoundResult{Tickets: tickets}

	for {
		if !s.Auto && !s.promptYes("Call next number? [Y/q] ", true) {
			fmt.Fprintln(s.out, "Round abandoned.")
			return result, nil
		}

		n, err := drawer.DrawNext()
		if errors.Is(err, draw.ErrExhausted) {
			return result, nil
		}
		if err != nil {
			return nil, err
		}
		result.Calls++
		marked := win.MarkedSet(drawer.Drawn())
		fmt.Fprintf(s.out, "Call %d: %d\n", result.Calls, n)

		for _, t := range tickets {
			if !result.LineWon {
				if row, ok := win.LineComplete(t, marked); ok {
					result.LineWon = true
					result.LineRow = row
					balance, err := s.wallet.AwardLine()
					if err != nil {
						return nil, err
					}
					log.Infof("line win on ticket %s row %d after %d calls", t.SN, row, result.Calls)
					fmt.Fprintf(s.out, "Line! Ticket %s row %d pays %d. Balance: %d.\n",
						t.SN, row+1, s.wallet.LinePrize, balance)
					fmt.Fprint(s.out, render.Grid(t, marked))
				}
			}
			if win.BingoComplete(t, marked) {
				result.BingoWon = true
				balance, err := s.wallet.AwardBingo()
				if err != nil {
					return nil, err
				}
				log.Infof("bingo on ticket %s after %d calls", t.SN, result.Calls)
				fmt.Fprintf(s.out, "Full house! Ticket %s pays %d. Balance: %d.\n",
					t.SN, s.wallet.BingoPrize, balance)
				fmt.Fprint(s.out, render.Grid(t, marked))
				return result, nil
			}
		}
	}
}

// promptTicketCount asks how many tickets to buy, capped by what the
// wallet can afford. Zero or "q" quits.
func (s *Session) promptTicketCount() int {
	if s.Auto {
		return 1
	}
	for {
		fmt.Fprintf(s.out, "Balance: %d. Tickets cost %d each. Buy how many? [1/q] ",
			s.wallet.Balance(), s.wallet.TicketCost)
		line := s.readLine()
		if line == "" {
			return 1
		}
		if line == "q" || line == "0" {
			return 0
		}
		n, err := strconv.Atoi(line)
		if err != nil || n < 0 {
			fmt.Fprintln(s.out, "Enter a ticket count or q to quit.")
			continue
		}
		if !s.wallet.CanAfford(n) {
			fmt.Fprintf(s.out, "Balance %d cannot cover %d ticket(s).\n", s.wallet.Balance(), n)
			continue
		}
		return n
	}
}

func (s *Session) promptYes(prompt string, def bool) bool {
	if s.Auto {
		return true
	}
	fmt.Fprint(s.out, prompt)
	line := strings.ToLower(s.readLine())
	if line == "" {
		return def
	}
	return line == "y" || line == "yes"
}

func (s *Session) readLine() string {
	if !s.in.Scan() {
		return "q"
	}
	return strings.TrimSpace(s.in.Text())
}
