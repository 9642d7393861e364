package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"tradebot/internal/rest"
)

var (
	orderSymbol string
	orderID     int64
)

var orderCmd = &cobra.Command{
	Use:   "order",
	Short: "Query an existing order by ID",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := buildApp()
		if err != nil {
			return err
		}

		order, err := app.client.GetOrder(cmd.Context(), orderSymbol, orderID)
		if err != nil {
			return err
		}
		printOrder(order)
		return nil
	},
}

var cancelCmd = &cobra.Command{
	Use:   "cancel",
	Short: "Cancel an open order by ID",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := buildApp()
		if err != nil {
			return err
		}

		order, err := app.client.CancelOrder(cmd.Context(), orderSymbol, orderID)
		if err != nil {
			return err
		}
		fmt.Println("✔ Order cancelled")
		printOrder(order)
		return nil
	},
}

func printOrder(order *rest.OrderResponse) {
	fmt.Printf("  Order ID     : %d\n", order.OrderID)
	fmt.Printf("  Symbol       : %s\n", order.Symbol)
	fmt.Printf("  Side         : %s\n", order.Side)
	fmt.Printf("  Type         : %s\n", order.Type)
	fmt.Printf("  Status       : %s\n", order.Status)
	fmt.Printf("  Orig Qty     : %s\n", order.OrigQty)
	fmt.Printf("  Executed Qty : %s\n", order.ExecutedQty)
	if order.Type == "LIMIT" {
		fmt.Printf("  Limit Price  : %s\n", order.Price)
	}
	if !order.AvgPrice.IsZero() {
		fmt.Printf("  Avg Price    : %s\n", order.AvgPrice)
	}
}

func addOrderFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&orderSymbol, "symbol", "", "trading pair, e.g. BTCUSDT")
	cmd.Flags().Int64Var(&orderID, "order-id", 0, "exchange order ID")
	cmd.MarkFlagRequired("symbol")
	cmd.MarkFlagRequired("order-id")
}

func init() {
	addOrderFlags(orderCmd)
	addOrderFlags(cancelCmd)
	rootCmd.AddCommand(orderCmd, cancelCmd)
}
