package auth

import (
	"net/url"
	"strings"
)

// Params is an ordered set of request parameters. Binance recomputes the
// signature over the query string exactly as sent, so the encoded order must
// equal insertion order; url.Values cannot be used because Encode() sorts keys.
type Params struct {
	pairs []pair
}

type pair struct {
	key   string
	value string
}

// NewParams creates an empty parameter set.
func NewParams() *Params {
	return &Params{}
}

// Set replaces the value of an existing key in place, or appends the pair.
func (p *Params) Set(key, value string) {
	for i := range p.pairs {
		if p.pairs[i].key == key {
			p.pairs[i].value = value
			return
		}
	}
	p.pairs = append(p.pairs, pair{key: key, value: value})
}

// Get returns the value for key, or "" if absent.
func (p *Params) Get(key string) string {
	for i := range p.pairs {
		if p.pairs[i].key == key {
			return p.pairs[i].value
		}
	}
	return ""
}

// Has reports whether key is present.
func (p *Params) Has(key string) bool {
	for i := range p.pairs {
		if p.pairs[i].key == key {
			return true
		}
	}
	return false
}

// Len returns the number of parameters.
func (p *Params) Len() int {
	return len(p.pairs)
}

// Clone returns an independent copy preserving order.
func (p *Params) Clone() *Params {
	clone := &Params{pairs: make([]pair, len(p.pairs))}
	copy(clone.pairs, p.pairs)
	return clone
}

// Encode returns the URL-encoded query string in insertion order.
// Spaces encode as '+', matching what the exchange signs against.
func (p *Params) Encode() string {
	if len(p.pairs) == 0 {
		return ""
	}
	var sb strings.Builder
	for i, kv := range p.pairs {
		if i > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(url.QueryEscape(kv.key))
		sb.WriteByte('=')
		sb.WriteString(url.QueryEscape(kv.value))
	}
	return sb.String()
}
