package gecko

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Number decodes the provider's loosely typed numeric fields. Depending on
// the pool, the same attribute arrives as a JSON string, a number, or null.
// Malformed values decode to the absent state rather than failing the whole
// payload; a single bad attribute must not sink an otherwise usable response.
type Number struct {
	value float64
	valid bool
}

func (n *Number) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "" || s == "null" {
		*n = Number{}
		return nil
	}
	if s[0] == '"' {
		var raw string
		if err := json.Unmarshal(data, &raw); err != nil {
			*n = Number{}
			return nil
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			*n = Number{}
			return nil
		}
		*n = Number{value: f, valid: true}
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		*n = Number{}
		return nil
	}
	*n = Number{value: f, valid: true}
	return nil
}

// Float returns the parsed value and whether it is present and finite.
func (n Number) Float() (float64, bool) {
	if !n.valid || math.IsNaN(n.value) || math.IsInf(n.value, 0) {
		return 0, false
	}
	return n.value, true
}

// Ptr returns the value as an optional float, nil when absent.
func (n Number) Ptr() *float64 {
	v, ok := n.Float()
	if !ok {
		return nil
	}
	return &v
}

// FirstPositive walks the candidates in order and returns the first that
// parses to a finite number greater than zero, or nil when none does. The
// candidate order is the precedence contract for attributes the provider
// names inconsistently across pools.
func FirstPositive(candidates ...Number) *float64 {
	for _, c := range candidates {
		if v, ok := c.Float(); ok && v > 0 {
			return &v
		}
	}
	return nil
}

// PoolAttributes mirrors the subset of the pool-detail payload the relay
// consumes. Valuation fields go through Number because the provider sometimes
// omits one spelling and fills another.
type PoolAttributes struct {
	BaseTokenPriceUSD         Number `json:"base_token_price_usd"`
	MarketCapUSD              Number `json:"market_cap_usd"`
	MarketCap                 Number `json:"market_cap"`
	FdvUSD                    Number `json:"fdv_usd"`
	Fdv                       Number `json:"fdv"`
	FullyDilutedValuationUSD  Number `json:"fully_diluted_valuation_usd"`
	FullyDilutedValuation     Number `json:"fully_diluted_valuation"`
	LockedLiquidityPercentage Number `json:"locked_liquidity_percentage"`
}

// PoolStats is the normalized pool-level view. Fields are nil when the
// provider omitted every spelling or the fetch failed outright.
type PoolStats struct {
	MarketCapUSD              *float64
	FdvUSD                    *float64
	LockedLiquidityPercentage *float64
}

// Stats reduces raw attributes to the normalized view. Market cap prefers the
// explicit USD field and degrades toward FDV; FDV walks its own spellings.
// Locked liquidity is a plain optional with no fallback chain.
func (a *PoolAttributes) Stats() *PoolStats {
	return &PoolStats{
		MarketCapUSD:              FirstPositive(a.MarketCapUSD, a.MarketCap, a.FdvUSD),
		FdvUSD:                    FirstPositive(a.FdvUSD, a.Fdv, a.FullyDilutedValuationUSD, a.FullyDilutedValuation),
		LockedLiquidityPercentage: a.LockedLiquidityPercentage.Ptr(),
	}
}

// Trade is one row of the trades endpoint. Attribute values stay as the
// provider sent them so /api/trades can pass them through untouched; the
// aggregator parses timestamp and volume itself.
type Trade struct {
	ID         string          `json:"id"`
	Type       string          `json:"type"`
	Attributes TradeAttributes `json:"attributes"`
}

// TradeAttributes carries the provider's per-trade fields verbatim.
type TradeAttributes struct {
	BlockNumber              int64  `json:"block_number"`
	BlockTimestamp           string `json:"block_timestamp"`
	TxHash                   string `json:"tx_hash"`
	TxFromAddress            string `json:"tx_from_address"`
	FromTokenAmount          string `json:"from_token_amount"`
	ToTokenAmount            string `json:"to_token_amount"`
	PriceFromInCurrencyToken string `json:"price_from_in_currency_token"`
	PriceToInCurrencyToken   string `json:"price_to_in_currency_token"`
	PriceFromInUSD           string `json:"price_from_in_usd"`
	PriceToInUSD             string `json:"price_to_in_usd"`
	Kind                     string `json:"kind"`
	VolumeInUSD              string `json:"volume_in_usd"`
	FromTokenAddress         string `json:"from_token_address"`
	ToTokenAddress           string `json:"to_token_address"`
}

// Candle is one OHLCV row. The provider encodes rows as positional arrays
// [timestamp, open, high, low, close, volume] with the timestamp in seconds.
type Candle struct {
	Timestamp int64
	Open      float64
	High      float64
	Low       float64
	Close     float64
	Volume    float64
}

func (c *Candle) UnmarshalJSON(data []byte) error {
	var raw []float64
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if len(raw) < 6 {
		return fmt.Errorf("gecko: ohlcv row has %d fields, want 6", len(raw))
	}
	c.Timestamp = int64(raw[0])
	c.Open = raw[1]
	c.High = raw[2]
	c.Low = raw[3]
	c.Close = raw[4]
	c.Volume = raw[5]
	return nil
}
