// Package wallet persists the player's balance across sessions and
// applies the game economy: ticket purchases, line and bingo prizes,
// deposits and withdrawals. The balance never goes negative.
package wallet

import (
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
)

var ErrInsufficientFunds = errors.New("insufficient funds")

// Manager is the economy front door. The balance is loaded lazily on
// first use and written back after every mutation. A missing or corrupt
// wallet file resets to the starting balance rather than failing, so a
// damaged local file never blocks play.
type Manager struct {
	store *Store

	startingBalance int
	TicketCost      int
	LinePrize       int
	BingoPrize      int

	balance int
	loaded  bool
}

// Settings configures the economy for a Manager.
type Settings struct {
	StartingBalance int
	TicketCost      int
	LinePrize       int
	BingoPrize      int
}

func NewManager(store *Store, s Settings) *Manager {
	return &Manager{
		store:           store,
		startingBalance: clamp(s.StartingBalance),
		TicketCost:      clamp(s.TicketCost),
		LinePrize:       clamp(s.LinePrize),
		BingoPrize:      clamp(s.BingoPrize),
	}
}

func clamp(v int) int {
	if v < 0 {
		return 0
	}
	return v
}

func (m *Manager) ensureLoaded() {
	if m.loaded {
		return
	}
	balance, ok := m.store.Read()
	if !ok {
		log.Warnf("wallet %s missing or unreadable, starting at %d", m.store.Path(), m.startingBalance)
		balance = m.startingBalance
	}
	m.balance = clamp(balance)
	m.loaded = true
}

// Balance returns the current balance, loading it from disk on first
// call.
func (m *Manager) Balance() int {
	m.ensureLoaded()
	return m.balance
}

// SetBalance overwrites the balance, clamped to zero, and persists it.
func (m *Manager) SetBalance(value int) (int, error) {
	m.balance = clamp(value)
	m.loaded = true
	if err := m.store.Write(m.balance); err != nil {
		return m.balance, err
	}
	return m.balance, nil
}

// Adjust applies a signed delta, clamped at zero, and persists the
// result.
func (m *Manager) Adjust(delta int) (int, error) {
	m.ensureLoaded()
	return m.SetBalance(m.balance + delta)
}

// Reset restores the starting balance and persists it.
func (m *Manager) Reset() (int, error) {
	return m.SetBalance(m.startingBalance)
}

// CanAfford reports whether the balance covers quantity tickets.
// Quantities below one are treated as one.
func (m *Manager) CanAfford(quantity int) bool {
	if quantity < 1 {
		quantity = 1
	}
	return m.Balance() >= m.TicketCost*quantity
}

// SpendForTickets deducts the cost of quantity tickets. Callers should
// check CanAfford first; spending beyond the balance is rejected.
func (m *Manager) SpendForTickets(quantity int) (int, error) {
	if quantity < 1 {
		quantity = 1
	}
	cost := m.TicketCost * quantity
	if m.Balance() < cost {
		return m.balance, fmt.Errorf("%w: need %d for %d ticket(s), have %d",
			ErrInsufficientFunds, cost, quantity, m.balance)
	}
	return m.Adjust(-cost)
}

// AwardLine credits the line prize.
func (m *Manager) AwardLine() (int, error) {
	return m.Adjust(m.LinePrize)
}

// AwardBingo credits the full-card prize.
func (m *Manager) AwardBingo() (int, error) {
	return m.Adjust(m.BingoPrize)
}

// Deposit credits a positive amount.
func (m *Manager) Deposit(amount int) (int, error) {
	if amount <= 0 {
		return m.Balance(), fmt.Errorf("deposit amount must be positive, got %d", amount)
	}
	return m.Adjust(amount)
}

// Withdraw debits a positive amount not exceeding the balance.
func (m *Manager) Withdraw(amount int) (int, error) {
	if amount <= 0 {
		return m.Balance(), fmt.Errorf("withdraw amount must be positive, got %d", amount)
	}
	if m.Balance() < amount {
		return m.balance, fmt.Errorf("%w: have %d, want %d", ErrInsufficientFunds, m.balance, amount)
	}
	return m.Adjust(-amount)
}
