package rest

import (
	"errors"
	"fmt"
)

// Sentinel errors for the client's failure taxonomy. Callers branch with
// errors.Is instead of inspecting transport errors.
var (
	// ErrMissingCredentials is returned at construction when either
	// credential string is empty. Not recoverable by retry.
	ErrMissingCredentials = errors.New("api key and api secret must be non-empty")

	// ErrUnreachable indicates the host could not be reached at all.
	ErrUnreachable = errors.New("cannot reach Binance testnet")

	// ErrTimeout indicates no response arrived within the transport deadline.
	ErrTimeout = errors.New("request timed out")
)

// APIError is a well-formed rejection from the exchange. Negative codes are
// errors by exchange convention, regardless of HTTP status.
type APIError struct {
	StatusCode int
	Code       int
	Msg        string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("Binance API error %d: %s (HTTP %d)", e.Code, e.Msg, e.StatusCode)
}

// IsAuthError checks if this is an authentication error
func (e *APIError) IsAuthError() bool {
	switch e.Code {
	case -1022, // Invalid signature
		-2014, // API key format invalid
		-2015: // Invalid API key, IP, or permissions
		return true
	}
	return false
}

// IsOrderError checks if this is an order-related error
func (e *APIError) IsOrderError() bool {
	switch e.Code {
	case -2010, // Account has insufficient balance
		-2011, // Unknown order sent
		-2013: // Order does not exist
		return true
	}
	return false
}

// UnexpectedResponseError indicates a body that was not valid JSON.
type UnexpectedResponseError struct {
	StatusCode int
	Body       string
}

func (e *UnexpectedResponseError) Error() string {
	return fmt.Sprintf("unexpected non-JSON response (HTTP %d): %s", e.StatusCode, e.Body)
}
