package logic

import (
	"context"
	"strconv"

	"github.com/zeromicro/go-zero/core/logx"

	"poolwatch-api/internal/svc"
	"poolwatch-api/internal/types"
	"poolwatch-api/pkg/gecko"
)

// maxTradesPageSize caps the public trades listing, well under the upstream
// fetch ceiling.
const maxTradesPageSize = 200

type TradesLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewTradesLogic(ctx context.Context, svcCtx *svc.ServiceContext) *TradesLogic {
	return &TradesLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// Trades relays the latest raw trades plus their summed USD volume. The sum
// runs over the whole returned page, no time window.
func (l *TradesLogic) Trades(req *types.TradesRequest) (*types.TradesResponse, error) {
	network := req.Network
	pool := req.Pool
	defaults := l.svcCtx.Config.Defaults
	if network == "" {
		network = defaults.Network
	}
	if pool == "" {
		pool = defaults.Pool
	}

	limit := req.Limit
	if limit <= 0 {
		limit = 50
	}
	if limit > maxTradesPageSize {
		limit = maxTradesPageSize
	}

	raw, err := l.svcCtx.Gecko.FetchTrades(l.ctx, network, pool, limit)
	if err != nil {
		return nil, err
	}

	trades := make([]types.Trade, len(raw))
	var volume float64
	for i, t := range raw {
		trades[i] = toTrade(t)
		if v, err := strconv.ParseFloat(t.Attributes.VolumeInUSD, 64); err == nil {
			volume += v
		}
	}
	return &types.TradesResponse{
		Trades:              trades,
		AggregatedVolumeUSD: strconv.FormatFloat(volume, 'f', 2, 64),
	}, nil
}

func toTrade(t gecko.Trade) types.Trade {
	a := t.Attributes
	return types.Trade{
		ID:   t.ID,
		Type: t.Type,
		Attributes: types.TradeAttributes{
			BlockNumber:              a.BlockNumber,
			BlockTimestamp:           a.BlockTimestamp,
			TxHash:                   a.TxHash,
			TxFromAddress:            a.TxFromAddress,
			FromTokenAmount:          a.FromTokenAmount,
			ToTokenAmount:            a.ToTokenAmount,
			PriceFromInCurrencyToken: a.PriceFromInCurrencyToken,
			PriceToInCurrencyToken:   a.PriceToInCurrencyToken,
			PriceFromInUSD:           a.PriceFromInUSD,
			PriceToInUSD:             a.PriceToInUSD,
			Kind:                     a.Kind,
			VolumeInUSD:              a.VolumeInUSD,
			FromTokenAddress:         a.FromTokenAddress,
			ToTokenAddress:           a.ToTokenAddress,
		},
	}
}
