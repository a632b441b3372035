package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadSettingsDefaults(t *testing.T) {
	t.Setenv("BINGO_STARTING_BALANCE", "")
	t.Setenv("BINGO_TICKET_COST", "")
	t.Setenv("BINGO_LINE_PRIZE", "")
	t.Setenv("BINGO_BINGO_PRIZE", "")
	t.Setenv("BINGO_WALLET_PATH", "")

	s := LoadSettings()
	assert.Equal(t, DefaultStartingBalance, s.StartingBalance)
	assert.Equal(t, DefaultTicketCost, s.TicketCost)
	assert.Equal(t, DefaultLinePrize, s.LinePrize)
	assert.Equal(t, DefaultLinePrize*DefaultBingoMultiplier, s.BingoPrize)
	assert.Equal(t, DefaultWalletPath, s.WalletPath)
}

func TestLoadSettingsEnvOverrides(t *testing.T) {
	t.Setenv("BINGO_STARTING_BALANCE", "100")
	t.Setenv("BINGO_TICKET_COST", "2")
	t.Setenv("BINGO_LINE_PRIZE", "7")
	t.Setenv("BINGO_BINGO_PRIZE", "")
	t.Setenv("BINGO_WALLET_PATH", "/tmp/w.json")

	s := LoadSettings()
	assert.Equal(t, 100, s.StartingBalance)
	assert.Equal(t, 2, s.TicketCost)
	assert.Equal(t, 7, s.LinePrize)
	assert.Equal(t, 28, s.BingoPrize, "bingo prize derives from the line prize")
	assert.Equal(t, "/tmp/w.json", s.WalletPath)
}

func TestLoadSettingsRejectsGarbageAndNegatives(t *testing.T) {
	t.Setenv("BINGO_STARTING_BALANCE", "lots")
	t.Setenv("BINGO_TICKET_COST", "-3")
	t.Setenv("BINGO_LINE_PRIZE", "")
	t.Setenv("BINGO_BINGO_PRIZE", "")
	t.Setenv("BINGO_WALLET_PATH", "")

	s := LoadSettings()
	assert.Equal(t, DefaultStartingBalance, s.StartingBalance)
	assert.Equal(t, 0, s.TicketCost, "negative cost clamps to zero")
}
