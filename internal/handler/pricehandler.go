package handler

import (
	"net/http"

	"github.com/zeromicro/go-zero/rest/httpx"

	"poolwatch-api/internal/logic"
	"poolwatch-api/internal/svc"
)

func PriceHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		l := logic.NewPriceLogic(r.Context(), svcCtx)
		resp, err := l.Price()
		if err != nil {
			writeError(r.Context(), w, "Failed to fetch price", err)
			return
		}
		httpx.OkJsonCtx(r.Context(), w, resp)
	}
}
