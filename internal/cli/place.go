package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"tradebot/internal/orders"
)

var (
	placeSymbol     string
	placeSide       string
	placeType       string
	placeQuantity   string
	placePrice      string
	placeReduceOnly bool
)

var placeCmd = &cobra.Command{
	Use:   "place",
	Short: "Place a single order",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := buildApp()
		if err != nil {
			return err
		}

		fmt.Println("\nOrder Request:")
		fmt.Printf("  Symbol    : %s\n", placeSymbol)
		fmt.Printf("  Side      : %s\n", placeSide)
		fmt.Printf("  Type      : %s\n", placeType)
		fmt.Printf("  Quantity  : %s\n", placeQuantity)
		if placePrice != "" {
			fmt.Printf("  Price     : %s\n", placePrice)
		}
		fmt.Println()

		orchestrator := orders.NewOrchestrator(app.client,
			app.logger.With().Str("component", "orders").Logger())
		result := orchestrator.PlaceOrderOpts(cmd.Context(),
			placeSymbol, placeSide, placeType, placeQuantity, placePrice, placeReduceOnly)

		if !result.Success {
			return errors.New("order failed: " + result.ErrorMessage)
		}
		fmt.Println(result.Summary())
		return nil
	},
}

func init() {
	placeCmd.Flags().StringVar(&placeSymbol, "symbol", "", "trading pair, e.g. BTCUSDT")
	placeCmd.Flags().StringVar(&placeSide, "side", "", "order side: BUY or SELL")
	placeCmd.Flags().StringVar(&placeType, "type", "", "order type: MARKET or LIMIT")
	placeCmd.Flags().StringVar(&placeQuantity, "quantity", "", "order quantity")
	placeCmd.Flags().StringVar(&placePrice, "price", "", "limit price (required for LIMIT orders)")
	placeCmd.Flags().BoolVar(&placeReduceOnly, "reduce-only", false, "only reduce an existing position")

	placeCmd.MarkFlagRequired("symbol")
	placeCmd.MarkFlagRequired("side")
	placeCmd.MarkFlagRequired("type")
	placeCmd.MarkFlagRequired("quantity")

	rootCmd.AddCommand(placeCmd)
}
