// Package rest implements the Binance Futures Testnet REST client:
// authentication, request signing and HTTP error mapping.
package rest

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	json "github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"tradebot/internal/auth"
)

// TestnetBaseURL is the futures testnet origin.
const TestnetBaseURL = "https://testnet.binancefuture.com"

// DefaultTimeout bounds a single round trip. The exchange's recvWindow is
// 5000 ms, so a hung connection is cut well after any valid response window.
const DefaultTimeout = 10 * time.Second

const maxLoggedBody = 500

// Client owns a persistent HTTP session against the futures testnet and maps
// transport and API-level failures into the package error taxonomy.
type Client struct {
	baseURL    string
	httpClient *http.Client
	signer     *auth.Signer
	recvWindow int64
	logger     zerolog.Logger
}

// Option configures the client
type Option func(*Client)

// WithBaseURL overrides the testnet origin
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithTimeout sets the HTTP timeout
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithRecvWindow sets the signed-request tolerance window in milliseconds
func WithRecvWindow(recvWindow int64) Option {
	return func(c *Client) {
		c.recvWindow = recvWindow
	}
}

// NewClient creates a new testnet client. Construction fails fast with
// ErrMissingCredentials when either credential string is empty.
func NewClient(apiKey, apiSecret string, logger zerolog.Logger, opts ...Option) (*Client, error) {
	if apiKey == "" || apiSecret == "" {
		return nil, ErrMissingCredentials
	}

	client := &Client{
		baseURL: TestnetBaseURL,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		recvWindow: auth.DefaultRecvWindow,
		logger:     logger,
	}

	for _, opt := range opts {
		opt(client)
	}

	client.baseURL = strings.TrimRight(client.baseURL, "/")
	client.signer = auth.NewSignerWithRecvWindow(apiKey, apiSecret, client.recvWindow)

	logger.Debug().Str("base_url", client.baseURL).Msg("Binance client initialised")

	return client, nil
}

// BaseURL returns the base URL
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Timeout returns the HTTP timeout
func (c *Client) Timeout() time.Duration {
	return c.httpClient.Timeout
}

// Request executes an HTTP request and returns the raw JSON body. All
// parameters travel in the query string, even for POST and DELETE; signed
// requests get timestamp, recvWindow and signature appended before encoding.
func (c *Client) Request(ctx context.Context, method, endpoint string, signed bool, params *auth.Params) (json.RawMessage, error) {
	if params == nil {
		params = auth.NewParams()
	}
	if signed {
		params = c.signer.SignedParams(params)
	}

	requestURL := c.baseURL + endpoint
	query := params.Encode()
	if query != "" {
		requestURL += "?" + query
	}

	req, err := http.NewRequestWithContext(ctx, method, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("X-MBX-APIKEY", c.signer.APIKey())
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	c.logger.Debug().
		Str("method", method).
		Str("endpoint", endpoint).
		Str("params", query).
		Msg("→ request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		mapped := mapTransportError(err)
		c.logger.Error().Err(mapped).Str("endpoint", endpoint).Msg("Transport error")
		return nil, mapped
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		// Client.Timeout also covers the body read, so a server that sends
		// headers and then stalls surfaces here, not from Do.
		mapped := mapTransportError(err)
		c.logger.Error().Err(mapped).Str("endpoint", endpoint).Msg("Transport error")
		return nil, mapped
	}

	c.logger.Debug().
		Int("status", resp.StatusCode).
		Str("body", truncate(string(body), maxLoggedBody)).
		Msg("← response")

	return c.parseResponse(resp.StatusCode, body)
}

// parseResponse applies the exchange's inconsistent error convention: a JSON
// object with a negative integer code is an error regardless of HTTP status,
// and a non-2xx status is an error even without a code.
func (c *Client) parseResponse(statusCode int, body []byte) (json.RawMessage, error) {
	var data any
	if err := json.Unmarshal(body, &data); err != nil {
		c.logger.Error().Int("status", statusCode).Str("body", truncate(string(body), 200)).Msg("Non-JSON response")
		return nil, &UnexpectedResponseError{
			StatusCode: statusCode,
			Body:       truncate(string(body), 200),
		}
	}

	obj, isObject := data.(map[string]any)

	if isObject {
		if codeVal, ok := obj["code"].(float64); ok && codeVal == math.Trunc(codeVal) && codeVal < 0 {
			msg, _ := obj["msg"].(string)
			if msg == "" {
				msg = "Unknown error"
			}
			return nil, &APIError{StatusCode: statusCode, Code: int(codeVal), Msg: msg}
		}
	}

	if statusCode < 200 || statusCode >= 300 {
		apiErr := &APIError{StatusCode: statusCode, Code: -1, Msg: string(body)}
		if isObject {
			if codeVal, ok := obj["code"].(float64); ok {
				apiErr.Code = int(codeVal)
			}
			if msg, ok := obj["msg"].(string); ok {
				apiErr.Msg = msg
			}
		}
		return nil, apiErr
	}

	return json.RawMessage(body), nil
}

// GetServerTime returns the server timestamp in milliseconds. Connectivity check.
func (c *Client) GetServerTime(ctx context.Context) (int64, error) {
	body, err := c.Request(ctx, http.MethodGet, "/fapi/v1/time", false, nil)
	if err != nil {
		return 0, err
	}

	var serverTime ServerTime
	if err := json.Unmarshal(body, &serverTime); err != nil {
		return 0, fmt.Errorf("failed to parse server time: %w", err)
	}

	return serverTime.ServerTime, nil
}

// GetExchangeInfo returns trading rules, optionally filtered to one symbol.
func (c *Client) GetExchangeInfo(ctx context.Context, symbol string) (*ExchangeInfo, error) {
	params := auth.NewParams()
	if symbol != "" {
		params.Set("symbol", symbol)
	}

	body, err := c.Request(ctx, http.MethodGet, "/fapi/v1/exchangeInfo", false, params)
	if err != nil {
		return nil, err
	}

	var exchangeInfo ExchangeInfo
	if err := json.Unmarshal(body, &exchangeInfo); err != nil {
		return nil, fmt.Errorf("failed to parse exchange info: %w", err)
	}

	return &exchangeInfo, nil
}

// GetAccountBalance returns the futures account balance list.
func (c *Client) GetAccountBalance(ctx context.Context) ([]Balance, error) {
	body, err := c.Request(ctx, http.MethodGet, "/fapi/v2/balance", true, nil)
	if err != nil {
		return nil, err
	}

	var balances []Balance
	if err := json.Unmarshal(body, &balances); err != nil {
		return nil, fmt.Errorf("failed to parse balances: %w", err)
	}

	return balances, nil
}

// PlaceOrder places a new futures order. A LIMIT order without a price fails
// before any network call is attempted.
func (c *Client) PlaceOrder(ctx context.Context, req *OrderRequest) (*OrderResponse, error) {
	if req.Symbol == "" {
		return nil, fmt.Errorf("symbol is required")
	}
	if req.Side == "" {
		return nil, fmt.Errorf("side is required")
	}
	if req.Type == "" {
		return nil, fmt.Errorf("type is required")
	}
	if req.Quantity.Sign() <= 0 {
		return nil, fmt.Errorf("quantity must be positive")
	}
	if req.Type == "LIMIT" && req.Price == nil {
		return nil, fmt.Errorf("price is required for LIMIT orders")
	}

	// Parameter order is part of the signed bytes; keep it stable.
	params := auth.NewParams()
	params.Set("symbol", req.Symbol)
	params.Set("side", req.Side)
	params.Set("type", req.Type)
	params.Set("quantity", req.Quantity.String())

	if req.Type == "LIMIT" {
		params.Set("price", req.Price.String())
		timeInForce := req.TimeInForce
		if timeInForce == "" {
			timeInForce = "GTC"
		}
		params.Set("timeInForce", timeInForce)
	}
	if req.ReduceOnly {
		params.Set("reduceOnly", "true")
	}

	priceLabel := "MARKET"
	if req.Price != nil {
		priceLabel = req.Price.String()
	}
	c.logger.Info().
		Str("symbol", req.Symbol).
		Str("side", req.Side).
		Str("type", req.Type).
		Str("quantity", req.Quantity.String()).
		Str("price", priceLabel).
		Msg("Placing order")

	body, err := c.Request(ctx, http.MethodPost, "/fapi/v1/order", true, params)
	if err != nil {
		return nil, err
	}

	order, err := decodeOrder(body)
	if err != nil {
		return nil, err
	}

	c.logger.Info().
		Int64("order_id", order.OrderID).
		Str("status", order.Status).
		Msg("Order placed successfully")

	return order, nil
}

// GetOrder queries an existing order by ID.
func (c *Client) GetOrder(ctx context.Context, symbol string, orderID int64) (*OrderResponse, error) {
	params := auth.NewParams()
	params.Set("symbol", symbol)
	params.Set("orderId", strconv.FormatInt(orderID, 10))

	body, err := c.Request(ctx, http.MethodGet, "/fapi/v1/order", true, params)
	if err != nil {
		return nil, err
	}

	return decodeOrder(body)
}

// CancelOrder cancels an open order by ID.
func (c *Client) CancelOrder(ctx context.Context, symbol string, orderID int64) (*OrderResponse, error) {
	params := auth.NewParams()
	params.Set("symbol", symbol)
	params.Set("orderId", strconv.FormatInt(orderID, 10))

	body, err := c.Request(ctx, http.MethodDelete, "/fapi/v1/order", true, params)
	if err != nil {
		return nil, err
	}

	return decodeOrder(body)
}

func decodeOrder(body []byte) (*OrderResponse, error) {
	var order OrderResponse
	if err := json.Unmarshal(body, &order); err != nil {
		return nil, fmt.Errorf("failed to parse order response: %w", err)
	}
	if err := json.Unmarshal(body, &order.Raw); err != nil {
		return nil, fmt.Errorf("failed to parse order response: %w", err)
	}
	return &order, nil
}

// mapTransportError normalizes transport failures into the taxonomy:
// timed-out vs unreachable, never a raw transport error.
func mapTransportError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	}
	return fmt.Errorf("%w: %v", ErrUnreachable, err)
}

// truncate caps s at n bytes without splitting a multi-byte rune.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
