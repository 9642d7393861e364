package rest

import (
	"github.com/shopspring/decimal"
)

// ServerTime is the /fapi/v1/time response
type ServerTime struct {
	ServerTime int64 `json:"serverTime"`
}

// ExchangeInfo represents futures exchange trading rules
type ExchangeInfo struct {
	Timezone   string       `json:"timezone"`
	ServerTime int64        `json:"serverTime"`
	Symbols    []SymbolInfo `json:"symbols"`
}

// SymbolInfo represents trading symbol information
type SymbolInfo struct {
	Symbol            string   `json:"symbol"`
	Status            string   `json:"status"`
	BaseAsset         string   `json:"baseAsset"`
	QuoteAsset        string   `json:"quoteAsset"`
	PricePrecision    int      `json:"pricePrecision"`
	QuantityPrecision int      `json:"quantityPrecision"`
	OrderTypes        []string `json:"orderTypes"`
	TimeInForce       []string `json:"timeInForce"`
}

// Balance represents one asset in the futures account balance list
type Balance struct {
	AccountAlias       string          `json:"accountAlias"`
	Asset              string          `json:"asset"`
	Balance            decimal.Decimal `json:"balance"`
	CrossWalletBalance decimal.Decimal `json:"crossWalletBalance"`
	CrossUnPnl         decimal.Decimal `json:"crossUnPnl"`
	AvailableBalance   decimal.Decimal `json:"availableBalance"`
	MaxWithdrawAmount  decimal.Decimal `json:"maxWithdrawAmount"`
	UpdateTime         int64           `json:"updateTime"`
}

// OrderRequest represents a request to place a futures order.
// Price must be set exactly when Type is LIMIT.
type OrderRequest struct {
	Symbol      string
	Side        string // BUY or SELL
	Type        string // MARKET or LIMIT
	Quantity    decimal.Decimal
	Price       *decimal.Decimal
	TimeInForce string // GTC (default), IOC, or FOK
	ReduceOnly  bool
}

// OrderResponse represents a futures order as returned by place, query and
// cancel. Raw carries the payload as an opaque mapping.
type OrderResponse struct {
	OrderID       int64           `json:"orderId"`
	Symbol        string          `json:"symbol"`
	Status        string          `json:"status"`
	ClientOrderID string          `json:"clientOrderId"`
	Price         decimal.Decimal `json:"price"`
	AvgPrice      decimal.Decimal `json:"avgPrice"`
	OrigQty       decimal.Decimal `json:"origQty"`
	ExecutedQty   decimal.Decimal `json:"executedQty"`
	CumQty        decimal.Decimal `json:"cumQty"`
	CumQuote      decimal.Decimal `json:"cumQuote"`
	TimeInForce   string          `json:"timeInForce"`
	Type          string          `json:"type"`
	ReduceOnly    bool            `json:"reduceOnly"`
	Side          string          `json:"side"`
	PositionSide  string          `json:"positionSide"`
	OrigType      string          `json:"origType"`
	UpdateTime    int64           `json:"updateTime"`

	Raw map[string]any `json:"-"`
}
