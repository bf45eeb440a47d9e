package logic

import (
	"context"
	"fmt"

	"github.com/zeromicro/go-zero/core/logx"

	cachekeys "poolwatch-api/internal/cache"
	"poolwatch-api/internal/svc"
	"poolwatch-api/internal/types"
)

type PriceLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewPriceLogic(ctx context.Context, svcCtx *svc.ServiceContext) *PriceLogic {
	return &PriceLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// Price returns the latest pool price clamped to seven decimals, or "N/A"
// when the upstream reports no usable figure. The cache is best-effort: a
// miss or a broken Redis never fails the request.
func (l *PriceLogic) Price() (*types.PriceResponse, error) {
	defaults := l.svcCtx.Config.Defaults
	key := cachekeys.PriceLatestKey(defaults.Network, defaults.Pool)

	if l.svcCtx.Cache != nil {
		var cached types.PriceResponse
		if err := l.svcCtx.Cache.GetCtx(l.ctx, key, &cached); err == nil && cached.Price != "" {
			return &cached, nil
		}
	}

	price, err := l.svcCtx.Gecko.CurrentPrice(l.ctx, defaults.Network, defaults.Pool)
	if err != nil {
		return nil, err
	}

	resp := &types.PriceResponse{Price: "N/A"}
	if price > 0 {
		resp.Price = fmt.Sprintf("$%.7f", price)
	}

	if l.svcCtx.Cache != nil {
		if err := l.svcCtx.Cache.SetWithExpireCtx(l.ctx, key, resp, cachekeys.PriceTTL(l.svcCtx.TTL)); err != nil {
			l.Errorf("price cache write failed: %v", err)
		}
	}
	return resp, nil
}
