package auth

import (
	"fmt"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParams(t *testing.T) {
	t.Run("encodes in insertion order", func(t *testing.T) {
		params := NewParams()
		params.Set("symbol", "BTCUSDT")
		params.Set("side", "BUY")
		params.Set("type", "MARKET")

		assert.Equal(t, "symbol=BTCUSDT&side=BUY&type=MARKET", params.Encode())
	})

	t.Run("set replaces value without reordering", func(t *testing.T) {
		params := NewParams()
		params.Set("symbol", "BTCUSDT")
		params.Set("side", "BUY")
		params.Set("symbol", "ETHUSDT")

		assert.Equal(t, "symbol=ETHUSDT&side=BUY", params.Encode())
		assert.Equal(t, 2, params.Len())
	})

	t.Run("escapes values with space as plus", func(t *testing.T) {
		params := NewParams()
		params.Set("a", "b c")
		params.Set("d", "e&f=g")

		// Must match the exchange's urlencode convention byte for byte
		assert.Equal(t, "a=b+c&d=e%26f%3Dg", params.Encode())
	})

	t.Run("empty set encodes to empty string", func(t *testing.T) {
		assert.Equal(t, "", NewParams().Encode())
	})

	t.Run("clone is independent", func(t *testing.T) {
		params := NewParams()
		params.Set("symbol", "BTCUSDT")

		clone := params.Clone()
		clone.Set("symbol", "ETHUSDT")
		clone.Set("side", "SELL")

		assert.Equal(t, "BTCUSDT", params.Get("symbol"))
		assert.False(t, params.Has("side"))
		assert.Equal(t, "ETHUSDT", clone.Get("symbol"))
	})
}

func TestSign(t *testing.T) {
	// Known test vectors from the Binance API documentation
	apiKey := "vmPUZE6mv9SD5VNHk4HlWFsOr6aKE2zvsw0MuIgwCIPy6utIco14y7Ju91duEh8A"
	apiSecret := "NhqPtmdSJYdKjVHjA7PZj4Mge3R5YNiP1e3UZjInClVN65XAbvqqM6A7H5fATj0j"

	signer := NewSigner(apiKey, apiSecret)

	t.Run("matches documented signature for documented parameter order", func(t *testing.T) {
		params := NewParams()
		params.Set("symbol", "LTCBTC")
		params.Set("side", "BUY")
		params.Set("type", "LIMIT")
		params.Set("timeInForce", "GTC")
		params.Set("quantity", "1")
		params.Set("price", "0.1")
		params.Set("recvWindow", "5000")
		params.Set("timestamp", "1499827319559")

		// symbol=LTCBTC&side=BUY&type=LIMIT&timeInForce=GTC&quantity=1&price=0.1&recvWindow=5000&timestamp=1499827319559
		expected := "c8db56825ae71d6d79447849e617115f4a920fa2acdcab2b053c4b2838bd6b71"
		assert.Equal(t, expected, signer.Sign(params))
	})

	t.Run("signs timestamp-only parameters", func(t *testing.T) {
		params := NewParams()
		params.Set("timestamp", "1499827319559")

		expected := "2222d49722f6af5da13f6da6bfc0d7de19ca2815ebc98bbc49e4942268472f3f"
		assert.Equal(t, expected, signer.Sign(params))
	})

	t.Run("is deterministic for fixed inputs", func(t *testing.T) {
		params := NewParams()
		params.Set("symbol", "BTCUSDT")
		params.Set("timestamp", "1499827319559")

		assert.Equal(t, signer.Sign(params), signer.Sign(params))
	})

	t.Run("changes when any parameter value changes", func(t *testing.T) {
		params1 := NewParams()
		params1.Set("symbol", "LTCBTC")
		params1.Set("timestamp", "1499827319559")

		params2 := params1.Clone()
		params2.Set("symbol", "LTCBTD")

		assert.NotEqual(t, signer.Sign(params1), signer.Sign(params2))
	})

	t.Run("depends on parameter order", func(t *testing.T) {
		params1 := NewParams()
		params1.Set("symbol", "BTCUSDT")
		params1.Set("side", "BUY")
		params1.Set("timestamp", "1499827319559")

		params2 := NewParams()
		params2.Set("side", "BUY")
		params2.Set("symbol", "BTCUSDT")
		params2.Set("timestamp", "1499827319559")

		// Insertion order is part of the signed bytes
		assert.NotEqual(t, signer.Sign(params1), signer.Sign(params2))
	})
}

func TestSignedParams(t *testing.T) {
	signer := NewSigner("test-api-key", "test-api-secret")

	t.Run("adds timestamp, recvWindow and trailing signature", func(t *testing.T) {
		params := NewParams()
		params.Set("symbol", "BTCUSDT")
		params.Set("side", "BUY")

		signed := signer.SignedParams(params)

		assert.Equal(t, "BTCUSDT", signed.Get("symbol"))
		assert.Equal(t, "BUY", signed.Get("side"))
		assert.NotEmpty(t, signed.Get("timestamp"))
		assert.Equal(t, "5000", signed.Get("recvWindow"))
		assert.Len(t, signed.Get("signature"), 64)

		// signature must be the final parameter in the encoded string
		encoded := signed.Encode()
		assert.Contains(t, encoded, "&signature="+signed.Get("signature"))
		assert.Equal(t, "&signature="+signed.Get("signature"),
			encoded[len(encoded)-len("&signature=")-64:])
	})

	t.Run("signature covers all preceding fields", func(t *testing.T) {
		params := NewParams()
		params.Set("symbol", "BTCUSDT")

		signed := signer.SignedParams(params)

		check := NewParams()
		check.Set("symbol", signed.Get("symbol"))
		check.Set("timestamp", signed.Get("timestamp"))
		check.Set("recvWindow", signed.Get("recvWindow"))

		assert.True(t, signer.ValidateSignature(check, signed.Get("signature")))
	})

	t.Run("does not modify original parameters", func(t *testing.T) {
		params := NewParams()
		params.Set("symbol", "BTCUSDT")

		signed := signer.SignedParams(params)

		assert.Equal(t, 1, params.Len())
		assert.False(t, params.Has("timestamp"))
		assert.False(t, params.Has("signature"))
		assert.NotSame(t, params, signed)
	})

	t.Run("uses current wall clock in milliseconds", func(t *testing.T) {
		before := time.Now().UnixMilli()
		signed := signer.SignedParams(NewParams())
		after := time.Now().UnixMilli()

		ts, err := strconv.ParseInt(signed.Get("timestamp"), 10, 64)
		assert.NoError(t, err)
		assert.GreaterOrEqual(t, ts, before)
		assert.LessOrEqual(t, ts, after)
	})

	t.Run("keeps caller-supplied recvWindow", func(t *testing.T) {
		signer := NewSignerWithRecvWindow("key", "secret", 3000)

		params := NewParams()
		params.Set("recvWindow", "1000")

		signed := signer.SignedParams(params)
		assert.Equal(t, "1000", signed.Get("recvWindow"))
	})

	t.Run("applies custom recvWindow default", func(t *testing.T) {
		signer := NewSignerWithRecvWindow("key", "secret", 3000)

		signed := signer.SignedParams(NewParams())
		assert.Equal(t, "3000", signed.Get("recvWindow"))
	})
}

func TestValidateSignature(t *testing.T) {
	signer := NewSigner("test-api-key", "test-api-secret")

	t.Run("rejects incorrect signature", func(t *testing.T) {
		params := NewParams()
		params.Set("timestamp", "1499827319559")

		assert.False(t, signer.ValidateSignature(params,
			"0000000000000000000000000000000000000000000000000000000000000000"))
	})

	t.Run("rejects modified parameters", func(t *testing.T) {
		params := NewParams()
		params.Set("symbol", "LTCBTC")
		params.Set("timestamp", "1499827319559")

		signature := signer.Sign(params)
		params.Set("symbol", "BTCUSDT")

		assert.False(t, signer.ValidateSignature(params, signature))
	})

	t.Run("rejects empty signature", func(t *testing.T) {
		params := NewParams()
		params.Set("timestamp", "1499827319559")

		assert.False(t, signer.ValidateSignature(params, ""))
	})
}

func TestConcurrentSigning(t *testing.T) {
	signer := NewSigner("test-api-key", "test-api-secret")

	var wg sync.WaitGroup
	signatures := make(map[string]bool)
	mu := sync.Mutex{}

	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			params := NewParams()
			params.Set("symbol", fmt.Sprintf("SYMBOL%d", idx))
			params.Set("timestamp", strconv.FormatInt(1499827319559+int64(idx), 10))

			signature := signer.Sign(params)

			mu.Lock()
			signatures[signature] = true
			mu.Unlock()
		}(i)
	}
	wg.Wait()

	assert.Len(t, signatures, 100)
}

func BenchmarkSign(b *testing.B) {
	signer := NewSigner("test-api-key", "test-api-secret")

	params := NewParams()
	params.Set("symbol", "BTCUSDT")
	params.Set("side", "BUY")
	params.Set("type", "LIMIT")
	params.Set("quantity", "1.0")
	params.Set("price", "50000.00")
	params.Set("timestamp", "1499827319559")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = signer.Sign(params)
	}
}
