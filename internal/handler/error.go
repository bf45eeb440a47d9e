package handler

import (
	"context"
	"net/http"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/rest/httpx"

	"poolwatch-api/internal/types"
)

// writeError emits the relay's error payload with the underlying detail
// string preserved for the front-end.
func writeError(ctx context.Context, w http.ResponseWriter, msg string, err error) {
	logx.WithContext(ctx).Errorf("%s: %v", msg, err)
	httpx.WriteJsonCtx(ctx, w, http.StatusInternalServerError, types.ErrorResponse{
		Error:   msg,
		Details: err.Error(),
	})
}

func writeBadRequest(ctx context.Context, w http.ResponseWriter, err error) {
	httpx.WriteJsonCtx(ctx, w, http.StatusBadRequest, types.ErrorResponse{
		Error:   "Invalid request",
		Details: err.Error(),
	})
}
