package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"tradebot/internal/orders"
	"tradebot/internal/validate"
)

var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Launch the interactive menu",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := buildApp()
		if err != nil {
			return err
		}
		return runInteractive(cmd.Context(), app, os.Stdin)
	},
}

func runInteractive(ctx context.Context, app *app, in io.Reader) error {
	printBanner()

	if _, err := app.client.GetServerTime(ctx); err != nil {
		return fmt.Errorf("cannot connect: %w", err)
	}
	fmt.Println("✔ Connected to Binance Futures Testnet")

	scanner := bufio.NewScanner(in)
	for {
		fmt.Println("\nMain Menu:")
		fmt.Println("  [1] Place Order")
		fmt.Println("  [2] Check Balance")
		fmt.Println("  [3] Ping / Server Time")
		fmt.Println("  [q] Quit")

		line, ok := prompt(scanner, "Enter choice", "")
		if !ok {
			// Stdin exhausted; leave the loop instead of re-printing the menu.
			fmt.Println("  Goodbye!")
			return nil
		}
		switch strings.ToLower(line) {
		case "q":
			fmt.Println("  Goodbye!")
			return nil
		case "1":
			if !interactivePlaceOrder(ctx, app, scanner) {
				fmt.Println("  Goodbye!")
				return nil
			}
		case "2":
			if err := runBalance(ctx, app); err != nil {
				fmt.Printf("  ✖ %s\n", err)
			}
		case "3":
			if err := runPing(ctx, app); err != nil {
				fmt.Printf("  ✖ %s\n", err)
			}
		default:
			fmt.Println("  ⚠ Invalid choice. Try again.")
		}
	}
}

// interactivePlaceOrder walks the order prompts. It reports false when stdin
// ran out mid-flow, so the caller can stop rather than confirm with defaults.
func interactivePlaceOrder(ctx context.Context, app *app, scanner *bufio.Scanner) bool {
	fmt.Println("\n── Place New Order ──────────────────────────────")

	symbol, ok := prompt(scanner, "Symbol (e.g. BTCUSDT)", "BTCUSDT")
	if !ok {
		return false
	}
	side, ok := prompt(scanner, "Side   [BUY / SELL]", "BUY")
	if !ok {
		return false
	}
	orderType, ok := prompt(scanner, "Type   [MARKET / LIMIT]", "MARKET")
	if !ok {
		return false
	}
	quantity, ok := prompt(scanner, "Quantity", "")
	if !ok {
		return false
	}
	price := ""
	if strings.EqualFold(strings.TrimSpace(orderType), "LIMIT") {
		if price, ok = prompt(scanner, "Price", ""); !ok {
			return false
		}
	}

	// Validate before asking for confirmation
	if _, err := validate.All(symbol, side, orderType, quantity, price); err != nil {
		fmt.Printf("\n⚠ Validation error: %s\n", err)
		return true
	}

	fmt.Println("\nSummary:")
	line := fmt.Sprintf("  %s %s %s %s", strings.ToUpper(side), strings.ToUpper(orderType), quantity, strings.ToUpper(symbol))
	if price != "" {
		line += " @ " + price
	}
	fmt.Println(line)

	confirm, ok := prompt(scanner, "Confirm? [y/N]", "n")
	if !ok {
		return false
	}
	if c := strings.ToLower(confirm); c != "y" && c != "yes" {
		fmt.Println("  Cancelled.")
		return true
	}

	orchestrator := orders.NewOrchestrator(app.client,
		app.logger.With().Str("component", "orders").Logger())
	result := orchestrator.PlaceOrder(ctx, symbol, side, orderType, quantity, price)

	if result.Success {
		fmt.Println("\n" + result.Summary())
	} else {
		fmt.Printf("\n✖ Order failed: %s\n", result.ErrorMessage)
	}
	return true
}

// prompt reads one line. ok is false once the underlying input is exhausted;
// an empty line with input still open yields the default.
func prompt(scanner *bufio.Scanner, text, defaultValue string) (value string, ok bool) {
	suffix := ""
	if defaultValue != "" {
		suffix = fmt.Sprintf(" [%s]", defaultValue)
	}
	fmt.Printf("  %s%s: ", text, suffix)
	if !scanner.Scan() {
		return "", false
	}
	value = strings.TrimSpace(scanner.Text())
	if value == "" {
		return defaultValue, true
	}
	return value, true
}

func printBanner() {
	fmt.Println(`
╔══════════════════════════════════════════════╗
║    Binance Futures Testnet — Trading Bot     ║
╚══════════════════════════════════════════════╝`)
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}
