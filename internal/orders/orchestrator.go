// Package orders sits between callers and the raw exchange client, handling
// validation, placement and structured result objects.
package orders

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"tradebot/internal/rest"
	"tradebot/internal/validate"
)

// OrderPlacer is the slice of the exchange client the orchestrator needs.
type OrderPlacer interface {
	PlaceOrder(ctx context.Context, req *rest.OrderRequest) (*rest.OrderResponse, error)
}

// OrderResult is returned for every placement attempt, success or failure.
// Exactly one of the two branches is populated; it is never accompanied by an
// error value.
type OrderResult struct {
	Success bool

	// Populated on success
	OrderID     int64
	Symbol      string
	Side        string
	OrderType   string
	Status      string
	OrigQty     string
	ExecutedQty string
	AvgPrice    string
	Price       string
	Raw         map[string]any

	// Populated on failure
	ErrorMessage string
}

// Summary renders a human-readable report of the result.
func (r *OrderResult) Summary() string {
	if !r.Success {
		return fmt.Sprintf("[FAILED] %s", r.ErrorMessage)
	}

	lines := []string{
		"╔══════════════════════════════════════╗",
		"║         ORDER PLACED SUCCESSFULLY    ║",
		"╚══════════════════════════════════════╝",
		fmt.Sprintf("  Order ID     : %d", r.OrderID),
		fmt.Sprintf("  Symbol       : %s", r.Symbol),
		fmt.Sprintf("  Side         : %s", r.Side),
		fmt.Sprintf("  Type         : %s", r.OrderType),
		fmt.Sprintf("  Status       : %s", r.Status),
		fmt.Sprintf("  Orig Qty     : %s", r.OrigQty),
		fmt.Sprintf("  Executed Qty : %s", r.ExecutedQty),
	}
	if r.OrderType == "LIMIT" {
		lines = append(lines, fmt.Sprintf("  Limit Price  : %s", r.Price))
	}
	if r.AvgPrice != "" && r.AvgPrice != "0" {
		lines = append(lines, fmt.Sprintf("  Avg Price    : %s", r.AvgPrice))
	}
	return strings.Join(lines, "\n")
}

// Orchestrator composes the validator and the exchange client behind a
// uniform result contract.
type Orchestrator struct {
	client OrderPlacer
	logger zerolog.Logger
}

// NewOrchestrator creates an orchestrator around an exchange client.
func NewOrchestrator(client OrderPlacer, logger zerolog.Logger) *Orchestrator {
	return &Orchestrator{
		client: client,
		logger: logger,
	}
}

// PlaceOrder validates raw inputs and places an order via the client. It
// never returns an error: every failure path becomes a failure-flavored
// OrderResult so callers share one code path for success and failure.
func (o *Orchestrator) PlaceOrder(ctx context.Context, symbol, side, orderType, quantity, price string) OrderResult {
	return o.PlaceOrderOpts(ctx, symbol, side, orderType, quantity, price, false)
}

// PlaceOrderOpts is PlaceOrder with the reduce-only flag exposed.
func (o *Orchestrator) PlaceOrderOpts(ctx context.Context, symbol, side, orderType, quantity, price string, reduceOnly bool) OrderResult {
	// Validation rejects before any network call
	params, err := validate.All(symbol, side, orderType, quantity, price)
	if err != nil {
		o.logger.Warn().Err(err).Msg("Validation failed")
		return OrderResult{Success: false, ErrorMessage: err.Error()}
	}

	priceLabel := "N/A (MARKET)"
	if params.Price != nil {
		priceLabel = params.Price.String()
	}
	o.logger.Info().
		Str("symbol", params.Symbol).
		Str("side", params.Side).
		Str("type", params.OrderType).
		Str("quantity", params.Quantity.String()).
		Str("price", priceLabel).
		Msg("Order request")

	resp, err := o.client.PlaceOrder(ctx, &rest.OrderRequest{
		Symbol:     params.Symbol,
		Side:       params.Side,
		Type:       params.OrderType,
		Quantity:   params.Quantity,
		Price:      params.Price,
		ReduceOnly: reduceOnly,
	})
	if err != nil {
		return o.failureResult(err)
	}

	result := OrderResult{
		Success:     true,
		OrderID:     resp.OrderID,
		Symbol:      resp.Symbol,
		Side:        resp.Side,
		OrderType:   resp.Type,
		Status:      resp.Status,
		OrigQty:     resp.OrigQty.String(),
		ExecutedQty: resp.ExecutedQty.String(),
		AvgPrice:    resp.AvgPrice.String(),
		Price:       resp.Price.String(),
		Raw:         resp.Raw,
	}

	o.logger.Info().
		Int64("order_id", result.OrderID).
		Str("status", result.Status).
		Str("executed_qty", result.ExecutedQty).
		Str("avg_price", result.AvgPrice).
		Msg("Order result")

	return result
}

// failureResult maps every error kind the client can produce into a
// descriptive failure result. Nothing propagates past this boundary.
func (o *Orchestrator) failureResult(err error) OrderResult {
	var (
		vErr   *validate.Error
		apiErr *rest.APIError
	)
	switch {
	case errors.As(err, &vErr):
		o.logger.Error().Err(err).Msg("Validation error during order placement")
		return OrderResult{Success: false, ErrorMessage: vErr.Error()}

	case errors.As(err, &apiErr):
		o.logger.Error().Err(err).Msg("Binance API error")
		return OrderResult{Success: false, ErrorMessage: apiErr.Error()}

	case errors.Is(err, rest.ErrUnreachable), errors.Is(err, rest.ErrTimeout):
		o.logger.Error().Err(err).Msg("Network error")
		return OrderResult{Success: false, ErrorMessage: fmt.Sprintf("Network error: %s", err)}

	default:
		o.logger.Error().Err(err).Msg("Unexpected error placing order")
		return OrderResult{Success: false, ErrorMessage: fmt.Sprintf("Unexpected error: %s", err)}
	}
}
