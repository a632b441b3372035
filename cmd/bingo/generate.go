package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tombola-games/minibingo/internal/render"
	"github.com/tombola-games/minibingo/internal/ticket"
)

var flagCount int

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate and print tickets without playing",
	RunE: func(cmd *cobra.Command, args []string) error {
		factory := ticket.NewFactory(newRNG())
		tickets, err := factory.GenerateUnique(flagCount)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		for _, t := range tickets {
			fmt.Fprintf(out, "Ticket %s\n%s\n", t.SN, render.Grid(t, nil))
		}
		return nil
	},
}

func init() {
	generateCmd.Flags().IntVar(&flagCount, "count", 1, "tickets to generate")
	rootCmd.AddCommand(generateCmd)
}
