package handler

import (
	"net/http"

	"github.com/zeromicro/go-zero/rest/httpx"

	"poolwatch-api/internal/logic"
	"poolwatch-api/internal/svc"
)

func HealthHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		l := logic.NewHealthLogic(r.Context(), svcCtx)
		resp, err := l.Health()
		if err != nil {
			writeError(r.Context(), w, "Health check failed", err)
			return
		}
		httpx.OkJsonCtx(r.Context(), w, resp)
	}
}
