package handler

import (
	"net/http"

	"github.com/zeromicro/go-zero/rest/httpx"

	"poolwatch-api/internal/logic"
	"poolwatch-api/internal/svc"
)

func ChartHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		l := logic.NewChartLogic(r.Context(), svcCtx)
		resp, err := l.Chart()
		if err != nil {
			writeError(r.Context(), w, "Failed to fetch chart data", err)
			return
		}
		httpx.OkJsonCtx(r.Context(), w, resp)
	}
}
