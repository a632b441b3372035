package main

import (
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	config "github.com/tombola-games/minibingo/configs"
	"github.com/tombola-games/minibingo/internal/wallet"
)

var (
	flagSeed   int64
	flagWallet string
)

var rootCmd = &cobra.Command{
	Use:           "bingo",
	Short:         "Single-player 90-ball terminal bingo",
	Long:          "minibingo deals UK-style 9x3 tickets, calls numbers and pays line and full-house prizes from a persisted wallet.",
	SilenceUsage:  true,
	SilenceErrors: false,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "random seed (0 = time-based)")
	rootCmd.PersistentFlags().StringVar(&flagWallet, "wallet", "", "wallet file path (default from env or data/wallet.json)")
}

// newRNG builds the process random source; a zero seed falls back to
// the clock.
func newRNG() *rand.Rand {
	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

func loadSettings() config.Settings {
	s := config.LoadSettings()
	if flagWallet != "" {
		s.WalletPath = flagWallet
	}
	return s
}

func newWallet(s config.Settings) *wallet.Manager {
	return wallet.NewManager(wallet.NewStore(s.WalletPath), wallet.Settings{
		StartingBalance: s.StartingBalance,
		TicketCost:      s.TicketCost,
		LinePrize:       s.LinePrize,
		BingoPrize:      s.BingoPrize,
	})
}
