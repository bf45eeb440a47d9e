package logic

import (
	"context"

	"github.com/zeromicro/go-zero/core/logx"

	cachekeys "poolwatch-api/internal/cache"
	"poolwatch-api/internal/svc"
	"poolwatch-api/internal/types"
)

type ChartLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewChartLogic(ctx context.Context, svcCtx *svc.ServiceContext) *ChartLogic {
	return &ChartLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// Chart returns minute-candle [timestamp, close] pairs for the default pool.
func (l *ChartLogic) Chart() (*types.ChartResponse, error) {
	defaults := l.svcCtx.Config.Defaults
	key := cachekeys.ChartKey(defaults.Network, defaults.Pool)

	if l.svcCtx.Cache != nil {
		var cached types.ChartResponse
		if err := l.svcCtx.Cache.GetCtx(l.ctx, key, &cached); err == nil && len(cached.Series.Prices) > 0 {
			return &cached, nil
		}
	}

	candles, err := l.svcCtx.Gecko.FetchOHLCV(l.ctx, defaults.Network, defaults.Pool, "minute")
	if err != nil {
		return nil, err
	}

	prices := make([][2]float64, len(candles))
	for i, c := range candles {
		prices[i] = [2]float64{float64(c.Timestamp), c.Close}
	}
	resp := &types.ChartResponse{Series: types.ChartSeries{Prices: prices}}

	if l.svcCtx.Cache != nil {
		if err := l.svcCtx.Cache.SetWithExpireCtx(l.ctx, key, resp, cachekeys.ChartTTL(l.svcCtx.TTL)); err != nil {
			l.Errorf("chart cache write failed: %v", err)
		}
	}
	return resp, nil
}
