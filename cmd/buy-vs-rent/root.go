package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "buy-vs-rent",
	Short: "Project the financial outcome of buying a home versus renting and investing",
	Long: `buy-vs-rent projects, year by year, the outcome of buying a home with a
mortgage against renting the equivalent and investing the difference, and
reports which choice is cheaper at each horizon and by how much.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}
