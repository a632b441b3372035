package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var walletCmd = &cobra.Command{
	Use:   "wallet",
	Short: "Show the persisted balance",
	RunE: func(cmd *cobra.Command, args []string) error {
		w := newWallet(loadSettings())
		fmt.Fprintf(cmd.OutOrStdout(), "Balance: %d credits\n", w.Balance())
		return nil
	},
}

var depositCmd = &cobra.Command{
	Use:   "deposit <amount>",
	Short: "Add credits to the wallet",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		amount, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid amount %q", args[0])
		}
		w := newWallet(loadSettings())
		balance, err := w.Deposit(amount)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Balance: %d credits\n", balance)
		return nil
	},
}

var withdrawCmd = &cobra.Command{
	Use:   "withdraw <amount>",
	Short: "Remove credits from the wallet",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		amount, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid amount %q", args[0])
		}
		w := newWallet(loadSettings())
		balance, err := w.Withdraw(amount)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Balance: %d credits\n", balance)
		return nil
	},
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset the wallet to the starting balance",
	RunE: func(cmd *cobra.Command, args []string) error {
		w := newWallet(loadSettings())
		balance, err := w.Reset()
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wallet reset to %d credits\n", balance)
		return nil
	},
}

func init() {
	walletCmd.AddCommand(depositCmd, withdrawCmd, resetCmd)
	rootCmd.AddCommand(walletCmd)
}
