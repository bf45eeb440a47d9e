package logic

import (
	"context"

	"github.com/zeromicro/go-zero/core/logx"

	"poolwatch-api/internal/svc"
	"poolwatch-api/internal/types"
)

type PriceTicksLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewPriceTicksLogic(ctx context.Context, svcCtx *svc.ServiceContext) *PriceTicksLogic {
	return &PriceTicksLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// PriceTicks returns the most recent samples re-ordered oldest-first for
// chart consumption. The store's natural order is newest-first.
func (l *PriceTicksLogic) PriceTicks(req *types.PriceTicksRequest) (*types.PriceTicksResponse, error) {
	if l.svcCtx.PriceTicksModel == nil {
		return nil, ErrStoreUnavailable
	}

	rows, err := l.svcCtx.PriceTicksModel.RecentDesc(l.ctx, req.Limit)
	if err != nil {
		return nil, err
	}

	ticks := make([]types.PriceTick, len(rows))
	for i, row := range rows {
		ticks[len(rows)-1-i] = types.PriceTick{
			Price:     row.Price,
			Timestamp: row.TsMs,
		}
	}
	return &types.PriceTicksResponse{Ticks: ticks}, nil
}
