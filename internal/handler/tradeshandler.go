package handler

import (
	"net/http"

	"github.com/zeromicro/go-zero/rest/httpx"

	"poolwatch-api/internal/logic"
	"poolwatch-api/internal/svc"
	"poolwatch-api/internal/types"
)

func TradesHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.TradesRequest
		if err := httpx.Parse(r, &req); err != nil {
			writeBadRequest(r.Context(), w, err)
			return
		}

		l := logic.NewTradesLogic(r.Context(), svcCtx)
		resp, err := l.Trades(&req)
		if err != nil {
			writeError(r.Context(), w, "Failed to fetch trades", err)
			return
		}
		httpx.OkJsonCtx(r.Context(), w, resp)
	}
}
