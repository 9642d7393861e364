package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var pingCmd = &cobra.Command{
	Use:   "ping",
	Short: "Test connectivity to the testnet",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := buildApp()
		if err != nil {
			return err
		}
		return runPing(cmd.Context(), app)
	},
}

func runPing(ctx context.Context, app *app) error {
	serverTime, err := app.client.GetServerTime(ctx)
	if err != nil {
		return fmt.Errorf("connection failed: %w", err)
	}
	fmt.Printf("✔ Connected to Binance Futures Testnet.  Server time: %d\n", serverTime)
	return nil
}

func init() {
	rootCmd.AddCommand(pingCmd)
}
