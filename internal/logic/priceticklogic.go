package logic

import (
	"context"
	"errors"
	"time"

	"github.com/zeromicro/go-zero/core/logx"

	"poolwatch-api/internal/svc"
	"poolwatch-api/internal/types"
)

// ErrStoreUnavailable reports that no tick store is configured or reachable.
var ErrStoreUnavailable = errors.New("price tick store unavailable")

type PriceTickLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewPriceTickLogic(ctx context.Context, svcCtx *svc.ServiceContext) *PriceTickLogic {
	return &PriceTickLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// SavePriceTick appends one sample stamped with the server clock. The caller
// retries by next tick on failure; nothing here retries.
func (l *PriceTickLogic) SavePriceTick(req *types.PriceTickRequest) (*types.PriceTickResponse, error) {
	if l.svcCtx.PriceTicksModel == nil {
		return nil, ErrStoreUnavailable
	}
	if err := l.svcCtx.PriceTicksModel.Insert(l.ctx, req.Price, time.Now().UnixMilli()); err != nil {
		return nil, err
	}
	return &types.PriceTickResponse{Success: true}, nil
}
