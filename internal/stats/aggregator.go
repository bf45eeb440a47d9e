// Package stats joins pool-level attributes with a windowed trade-volume sum
// to produce the /api/stats snapshot.
package stats

import (
	"context"
	"strconv"
	"time"

	"github.com/zeromicro/go-zero/core/mr"

	"poolwatch-api/pkg/gecko"
)

const (
	// MinPeriodHours and MaxPeriodHours bound the trailing volume window.
	// Out-of-range requests are clamped, never rejected.
	MinPeriodHours = 1
	MaxPeriodHours = 168

	millisPerHour = int64(time.Hour / time.Millisecond)
)

// Snapshot is the assembled stats view returned to callers. Enrichment
// fields are nil when the pool fetch degraded; the volume figures are always
// present because a failed trades fetch fails the whole computation instead.
type Snapshot struct {
	MarketCapUSD              *float64
	FdvUSD                    *float64
	LockedLiquidityPercentage *float64
	Holders                   *int64
	TradingVolumeUSDPeriod    float64
	PeriodHours               int
	TradesConsidered          int
	LimitRequested            int
	Sources                   map[string]string
}

// Aggregator computes stats snapshots against an upstream provider.
type Aggregator struct {
	provider gecko.Provider
	holders  int64
	now      func() time.Time
}

// Option customises an Aggregator.
type Option func(*Aggregator)

// WithClock injects a deterministic clock for tests.
func WithClock(now func() time.Time) Option {
	return func(a *Aggregator) {
		if now != nil {
			a.now = now
		}
	}
}

// New constructs an Aggregator. holders is the statically configured holder
// count, pending an on-chain source; zero means unknown.
func New(provider gecko.Provider, holders int64, opts ...Option) *Aggregator {
	agg := &Aggregator{
		provider: provider,
		holders:  holders,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(agg)
	}
	return agg
}

// Compute fetches pool stats and trades concurrently, then reduces the trade
// list against the window cutoff. It fails only when the trades fetch fails;
// a pool-stats failure degrades to nil enrichment fields.
func (a *Aggregator) Compute(ctx context.Context, network, pool string, hours, limit int) (*Snapshot, error) {
	hours = clampHours(hours)
	limit = gecko.ClampTradeLimit(limit)

	var (
		poolStats *gecko.PoolStats
		trades    []gecko.Trade
	)
	err := mr.Finish(
		func() error {
			poolStats = a.provider.PoolStats(ctx, network, pool)
			return nil
		},
		func() error {
			var fetchErr error
			trades, fetchErr = a.provider.FetchTrades(ctx, network, pool, limit)
			return fetchErr
		},
	)
	if err != nil {
		return nil, err
	}

	cutoff := a.now().UnixMilli() - int64(hours)*millisPerHour
	volume, considered := sumWindow(trades, cutoff)

	snapshot := &Snapshot{
		MarketCapUSD:              poolStats.MarketCapUSD,
		FdvUSD:                    poolStats.FdvUSD,
		LockedLiquidityPercentage: poolStats.LockedLiquidityPercentage,
		TradingVolumeUSDPeriod:    volume,
		PeriodHours:               hours,
		TradesConsidered:          considered,
		LimitRequested:            limit,
		Sources: map[string]string{
			"marketCap": "pool",
			"volume":    "trades_sum",
			"holders":   "env",
		},
	}
	if a.holders > 0 {
		holders := a.holders
		snapshot.Holders = &holders
	}
	return snapshot, nil
}

// sumWindow reduces trades against the cutoff. Trades with an unparsable
// timestamp or one before the cutoff are skipped entirely. An in-window
// trade whose volume fails to parse contributes zero but still counts as
// considered: it was present in the window, only its figure was unusable.
func sumWindow(trades []gecko.Trade, cutoffMs int64) (volume float64, considered int) {
	for i := range trades {
		attrs := &trades[i].Attributes
		ts, err := time.Parse(time.RFC3339, attrs.BlockTimestamp)
		if err != nil || ts.UnixMilli() < cutoffMs {
			continue
		}
		considered++
		if v, err := strconv.ParseFloat(attrs.VolumeInUSD, 64); err == nil {
			volume += v
		}
	}
	return volume, considered
}

func clampHours(hours int) int {
	if hours < MinPeriodHours {
		return MinPeriodHours
	}
	if hours > MaxPeriodHours {
		return MaxPeriodHours
	}
	return hours
}
