package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/tombola-games/minibingo/internal/session"
	"github.com/tombola-games/minibingo/internal/ticket"
)

var (
	flagRounds  int
	flagTickets int
	flagAuto    bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play rounds of bingo against the caller",
	RunE: func(cmd *cobra.Command, args []string) error {
		rng := newRNG()
		s := session.New(
			ticket.NewFactory(rng),
			newWallet(loadSettings()),
			rng,
			os.Stdin,
			cmd.OutOrStdout(),
		)
		if flagAuto {
			return s.RunRounds(flagRounds, flagTickets)
		}
		return s.Run()
	},
}

func init() {
	playCmd.Flags().BoolVar(&flagAuto, "auto", false, "play without prompts")
	playCmd.Flags().IntVar(&flagRounds, "rounds", 1, "rounds to play in auto mode")
	playCmd.Flags().IntVar(&flagTickets, "tickets", 1, "tickets per round in auto mode")
	rootCmd.AddCommand(playCmd)
}
