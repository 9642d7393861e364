// Package validate turns raw user-supplied strings into typed, range-checked
// order parameters. It performs no I/O and is fully deterministic.
package validate

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Error indicates user input that failed validation. It never reaches the
// network layer.
type Error struct {
	msg string
}

func (e *Error) Error() string {
	return e.msg
}

func errorf(format string, args ...any) *Error {
	return &Error{msg: fmt.Sprintf(format, args...)}
}

// OrderParams is a validated, typed order request. Price is nil exactly when
// OrderType is MARKET.
type OrderParams struct {
	Symbol    string
	Side      string
	OrderType string
	Quantity  decimal.Decimal
	Price     *decimal.Decimal
}

// Symbol trims and uppercases the trading pair. It must be non-empty and
// strictly alphabetic, e.g. BTCUSDT.
func Symbol(raw string) (string, error) {
	symbol := strings.ToUpper(strings.TrimSpace(raw))
	if symbol == "" || !isAlpha(symbol) {
		return "", errorf("invalid symbol %q: must be alphabetic, e.g. BTCUSDT", symbol)
	}
	return symbol, nil
}

// Side accepts exactly BUY or SELL, case-insensitively.
func Side(raw string) (string, error) {
	side := strings.ToUpper(strings.TrimSpace(raw))
	if side != "BUY" && side != "SELL" {
		return "", errorf("invalid side %q: must be one of: BUY, SELL", side)
	}
	return side, nil
}

// OrderType accepts exactly MARKET or LIMIT, case-insensitively.
func OrderType(raw string) (string, error) {
	orderType := strings.ToUpper(strings.TrimSpace(raw))
	if orderType != "MARKET" && orderType != "LIMIT" {
		return "", errorf("invalid order type %q: must be one of: LIMIT, MARKET", orderType)
	}
	return orderType, nil
}

// Quantity parses an exact positive decimal. Binary floating point never
// touches quantity values.
func Quantity(raw string) (decimal.Decimal, error) {
	qty, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Decimal{}, errorf("invalid quantity %q: must be a positive number", raw)
	}
	if qty.Sign() <= 0 {
		return decimal.Decimal{}, errorf("quantity must be greater than zero, got %s", qty)
	}
	return qty, nil
}

// Price is required for LIMIT orders and always absent for MARKET orders,
// where any supplied value is ignored.
func Price(raw string, orderType string) (*decimal.Decimal, error) {
	if strings.ToUpper(strings.TrimSpace(orderType)) == "MARKET" {
		return nil, nil
	}

	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, errorf("price is required for LIMIT orders")
	}
	price, err := decimal.NewFromString(trimmed)
	if err != nil {
		return nil, errorf("invalid price %q: must be a positive number", raw)
	}
	if price.Sign() <= 0 {
		return nil, errorf("price must be greater than zero, got %s", price)
	}
	return &price, nil
}

// All runs every check, short-circuiting on the first failure in
// symbol, side, type, quantity, price order.
func All(symbol, side, orderType, quantity, price string) (*OrderParams, error) {
	validSymbol, err := Symbol(symbol)
	if err != nil {
		return nil, err
	}
	validSide, err := Side(side)
	if err != nil {
		return nil, err
	}
	validType, err := OrderType(orderType)
	if err != nil {
		return nil, err
	}
	validQty, err := Quantity(quantity)
	if err != nil {
		return nil, err
	}
	validPrice, err := Price(price, validType)
	if err != nil {
		return nil, err
	}

	return &OrderParams{
		Symbol:    validSymbol,
		Side:      validSide,
		OrderType: validType,
		Quantity:  validQty,
		Price:     validPrice,
	}, nil
}

func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}
