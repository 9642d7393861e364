package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"time"
)

// DefaultRecvWindow is the server-side tolerance for clock skew, in ms.
const DefaultRecvWindow int64 = 5000

// Signer handles HMAC-SHA256 signing for Binance API requests
type Signer struct {
	apiKey     string
	apiSecret  string
	recvWindow int64
}

// NewSigner creates a new signer with the default recv window
func NewSigner(apiKey, apiSecret string) *Signer {
	return NewSignerWithRecvWindow(apiKey, apiSecret, DefaultRecvWindow)
}

// NewSignerWithRecvWindow creates a new signer with a custom recv window
func NewSignerWithRecvWindow(apiKey, apiSecret string, recvWindow int64) *Signer {
	if recvWindow <= 0 {
		recvWindow = DefaultRecvWindow
	}
	return &Signer{
		apiKey:     apiKey,
		apiSecret:  apiSecret,
		recvWindow: recvWindow,
	}
}

// APIKey returns the API key
func (s *Signer) APIKey() string {
	return s.apiKey
}

// RecvWindow returns the recv window value
func (s *Signer) RecvWindow() int64 {
	return s.recvWindow
}

// Sign generates the hex-encoded HMAC-SHA256 signature over the
// insertion-order encoding of params.
func (s *Signer) Sign(params *Params) string {
	h := hmac.New(sha256.New, []byte(s.apiSecret))
	h.Write([]byte(params.Encode()))
	return hex.EncodeToString(h.Sum(nil))
}

// SignedParams returns a copy of params with timestamp and recvWindow set and
// the signature appended as the final parameter. The original is not modified.
func (s *Signer) SignedParams(params *Params) *Params {
	signed := params.Clone()

	// Always stamp a fresh timestamp
	signed.Set("timestamp", strconv.FormatInt(time.Now().UnixMilli(), 10))

	// A caller-supplied recvWindow wins over the signer default
	if !signed.Has("recvWindow") {
		signed.Set("recvWindow", strconv.FormatInt(s.recvWindow, 10))
	}

	// signature must be the trailing parameter; the server recomputes the
	// digest over everything before it
	signed.Set("signature", s.Sign(signed))

	return signed
}

// ValidateSignature verifies a signature against the given parameters
func (s *Signer) ValidateSignature(params *Params, signature string) bool {
	expected := s.Sign(params)
	return hmac.Equal([]byte(expected), []byte(signature))
}
