package model

import (
	"context"
	"fmt"

	"github.com/zeromicro/go-zero/core/stores/sqlx"
)

// tickCap bounds the stored sample count. Eviction is by count, oldest
// timestamp first, not by age.
const tickCap = 500

const defaultRecentLimit = 100

// PriceTick is one sampled price observation.
type PriceTick struct {
	Id    int64   `db:"id"`
	Price float64 `db:"price"`
	TsMs  int64   `db:"ts_ms"`
}

type (
	// PriceTicksModel is the bounded price sample store backing the chart
	// feed.
	PriceTicksModel interface {
		// Insert appends one tick, then evicts the oldest rows when the
		// table exceeds the cap. Append and eviction commit as one unit.
		Insert(ctx context.Context, price float64, tsMs int64) error
		// RecentDesc returns the most recent ticks, newest first. Callers
		// that chart the result reverse it to oldest-first delivery order.
		RecentDesc(ctx context.Context, limit int) ([]PriceTick, error)
	}

	defaultPriceTicksModel struct {
		conn sqlx.SqlConn
		cap  int64
	}
)

// NewPriceTicksModel returns a model for the price_ticks table.
func NewPriceTicksModel(conn sqlx.SqlConn) PriceTicksModel {
	return &defaultPriceTicksModel{conn: conn, cap: tickCap}
}

func (m *defaultPriceTicksModel) Insert(ctx context.Context, price float64, tsMs int64) error {
	err := m.conn.TransactCtx(ctx, func(ctx context.Context, session sqlx.Session) error {
		if _, err := session.ExecCtx(ctx,
			`INSERT INTO public.price_ticks (price, ts_ms) VALUES ($1, $2)`,
			price, tsMs,
		); err != nil {
			return fmt.Errorf("price_ticks insert: %w", err)
		}

		var count int64
		if err := session.QueryRowCtx(ctx, &count,
			`SELECT COUNT(*) FROM public.price_ticks`,
		); err != nil {
			return fmt.Errorf("price_ticks count: %w", err)
		}
		if count <= m.cap {
			return nil
		}

		// Transactional count-then-delete: two concurrent appends cannot
		// both observe a pre-eviction count and leave the table over cap.
		if _, err := session.ExecCtx(ctx,
			`DELETE FROM public.price_ticks
			 WHERE id IN (
			     SELECT id FROM public.price_ticks ORDER BY ts_ms ASC, id ASC LIMIT $1
			 )`,
			count-m.cap,
		); err != nil {
			return fmt.Errorf("price_ticks evict: %w", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("price_ticks append: %w", err)
	}
	return nil
}

func (m *defaultPriceTicksModel) RecentDesc(ctx context.Context, limit int) ([]PriceTick, error) {
	if limit <= 0 {
		limit = defaultRecentLimit
	}

	const query = `
SELECT id, price, ts_ms
FROM public.price_ticks
ORDER BY ts_ms DESC, id DESC
LIMIT $1`

	var rows []PriceTick
	if err := m.conn.QueryRowsCtx(ctx, &rows, query, limit); err != nil {
		return nil, fmt.Errorf("price_ticks recent: %w", err)
	}
	return rows, nil
}
