package gecko

import "context"

// Provider exposes the upstream market-data surface the relay consumes.
type Provider interface {
	// PoolStats returns the normalized pool view. It never fails: any
	// transport or decode problem degrades to all-nil fields, because pool
	// stats are enrichment rather than the primary deliverable.
	PoolStats(ctx context.Context, network, pool string) *PoolStats
	// FetchTrades returns up to limit recent trades, newest first as served
	// by the provider. Failures surface as *UpstreamError.
	FetchTrades(ctx context.Context, network, pool string, limit int) ([]Trade, error)
	// FetchOHLCV returns candles for the given timeframe (e.g. "minute").
	FetchOHLCV(ctx context.Context, network, pool, timeframe string) ([]Candle, error)
	// CurrentPrice returns the base token USD price, or 0 with a nil error
	// when the provider omits the field.
	CurrentPrice(ctx context.Context, network, pool string) (float64, error)
}
