package handler

import (
	"net/http"

	"github.com/zeromicro/go-zero/rest"

	"poolwatch-api/internal/svc"
)

func RegisterHandlers(server *rest.Server, serverCtx *svc.ServiceContext) {
	server.AddRoutes(
		[]rest.Route{
			{
				Method:  http.MethodGet,
				Path:    "/api/health",
				Handler: HealthHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/api/price",
				Handler: PriceHandler(serverCtx),
			},
			{
				Method:  http.MethodPost,
				Path:    "/api/price-tick",
				Handler: PriceTickHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/api/price-ticks",
				Handler: PriceTicksHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/api/chart",
				Handler: ChartHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/api/stats",
				Handler: StatsHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/api/trades",
				Handler: TradesHandler(serverCtx),
			},
		},
	)
}
