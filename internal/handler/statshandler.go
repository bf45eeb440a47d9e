package handler

import (
	"net/http"

	"github.com/zeromicro/go-zero/rest/httpx"

	"poolwatch-api/internal/logic"
	"poolwatch-api/internal/svc"
	"poolwatch-api/internal/types"
)

func StatsHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.StatsRequest
		if err := httpx.Parse(r, &req); err != nil {
			writeBadRequest(r.Context(), w, err)
			return
		}

		l := logic.NewStatsLogic(r.Context(), svcCtx)
		resp, err := l.Stats(&req)
		if err != nil {
			writeError(r.Context(), w, "Failed to compute stats", err)
			return
		}
		httpx.OkJsonCtx(r.Context(), w, resp)
	}
}
