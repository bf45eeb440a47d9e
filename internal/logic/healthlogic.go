package logic

import (
	"context"
	"time"

	"github.com/zeromicro/go-zero/core/logx"

	"poolwatch-api/internal/svc"
	"poolwatch-api/internal/types"
)

type HealthLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewHealthLogic(ctx context.Context, svcCtx *svc.ServiceContext) *HealthLogic {
	return &HealthLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *HealthLogic) Health() (*types.HealthResponse, error) {
	return &types.HealthResponse{
		OK:        true,
		Timestamp: time.Now().UnixMilli(),
	}, nil
}
