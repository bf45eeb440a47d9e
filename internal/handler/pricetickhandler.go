package handler

import (
	"net/http"

	"github.com/zeromicro/go-zero/rest/httpx"

	"poolwatch-api/internal/logic"
	"poolwatch-api/internal/svc"
	"poolwatch-api/internal/types"
)

func PriceTickHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.PriceTickRequest
		if err := httpx.Parse(r, &req); err != nil {
			writeBadRequest(r.Context(), w, err)
			return
		}

		l := logic.NewPriceTickLogic(r.Context(), svcCtx)
		resp, err := l.SavePriceTick(&req)
		if err != nil {
			writeError(r.Context(), w, "Failed to save price tick", err)
			return
		}
		httpx.OkJsonCtx(r.Context(), w, resp)
	}
}
