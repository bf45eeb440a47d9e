package logic

import (
	"context"

	"github.com/zeromicro/go-zero/core/logx"

	"poolwatch-api/internal/svc"
	"poolwatch-api/internal/types"
	"poolwatch-api/pkg/format"
)

type StatsLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewStatsLogic(ctx context.Context, svcCtx *svc.ServiceContext) *StatsLogic {
	return &StatsLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// Stats assembles the pool snapshot for the requested window. Unset network
// and pool fall back to the configured defaults.
func (l *StatsLogic) Stats(req *types.StatsRequest) (*types.StatsResponse, error) {
	network, pool := l.resolvePool(req.Network, req.Pool)

	snap, err := l.svcCtx.Stats.Compute(l.ctx, network, pool, req.Hours, req.Limit)
	if err != nil {
		return nil, err
	}

	volume := snap.TradingVolumeUSDPeriod
	return &types.StatsResponse{
		MarketCapUSD:              snap.MarketCapUSD,
		FdvUSD:                    snap.FdvUSD,
		LockedLiquidityPercentage: snap.LockedLiquidityPercentage,
		Holders:                   snap.Holders,
		TradingVolumeUSDPeriod:    volume,
		PeriodHours:               snap.PeriodHours,
		TradesConsidered:          snap.TradesConsidered,
		LimitRequested:            snap.LimitRequested,
		Sources:                   snap.Sources,
		Formatted: types.StatsFormatted{
			MarketCapUSD:           format.Number(snap.MarketCapUSD, format.WithPrefix("$")),
			FdvUSD:                 format.Number(snap.FdvUSD, format.WithPrefix("$")),
			TradingVolumeUSDPeriod: format.Number(&volume, format.WithPrefix("$")),
		},
	}, nil
}

func (l *StatsLogic) resolvePool(network, pool string) (string, string) {
	defaults := l.svcCtx.Config.Defaults
	if network == "" {
		network = defaults.Network
	}
	if pool == "" {
		pool = defaults.Pool
	}
	return network, pool
}
