package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var balanceCmd = &cobra.Command{
	Use:   "balance",
	Short: "Show account balances",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := buildApp()
		if err != nil {
			return err
		}
		return runBalance(cmd.Context(), app)
	},
}

func runBalance(ctx context.Context, app *app) error {
	balances, err := app.client.GetAccountBalance(ctx)
	if err != nil {
		return err
	}

	fmt.Println("\nAccount Balances:")
	shown := 0
	for _, b := range balances {
		if b.Balance.IsZero() {
			continue
		}
		fmt.Printf("  %-8s  balance=%s  availableBalance=%s\n",
			b.Asset, b.Balance, b.AvailableBalance)
		shown++
	}
	if shown == 0 {
		fmt.Println("  (no funded assets — use the testnet faucet to top up USDT)")
	}
	return nil
}

func init() {
	rootCmd.AddCommand(balanceCmd)
}
