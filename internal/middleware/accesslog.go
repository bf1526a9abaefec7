package middleware

import (
	"encoding/json"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/fastygo/tareas/internal/infrastructure/accesslog"
	"github.com/fastygo/tareas/pkg/httpcontext"
)

// AccessLog records one entry per completed request into sink. Sink failures are
// logged and never change the response.
func AccessLog(sink accesslog.Sink, logger *zap.Logger) func(fasthttp.RequestHandler) fasthttp.RequestHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(next fasthttp.RequestHandler) fasthttp.RequestHandler {
		if sink == nil {
			return next
		}
		return func(ctx *fasthttp.RequestCtx) {
			started := time.Now()
			reqID := httpcontext.EnsureRequestID(ctx)

			next(ctx)

			entry := accesslog.NewEntry(started.UTC(), requestInfo(ctx, reqID), responseInfo(ctx), time.Since(started))
			if err := sink.Record(entry); err != nil {
				logger.Warn("access log write failed", zap.String("request_id", reqID), zap.Error(err))
			}
			logger.Debug("request completed",
				zap.String("request_id", reqID),
				zap.String("method", entry.Request.Method),
				zap.String("url", entry.Request.URL),
				zap.Int("status", entry.Response.StatusCode),
				zap.Duration("duration", entry.Duration))
		}
	}
}

func requestInfo(ctx *fasthttp.RequestCtx, reqID string) accesslog.RequestInfo {
	info := accesslog.RequestInfo{
		ID:        reqID,
		Method:    string(ctx.Method()),
		URL:       string(ctx.RequestURI()),
		UserAgent: string(ctx.Request.Header.UserAgent()),
	}
	if ip := ctx.RemoteIP(); ip != nil {
		info.IP = ip.String()
	}
	if body := ctx.PostBody(); len(body) > 0 && json.Valid(body) {
		info.Body = append(json.RawMessage(nil), body...)
	}
	return info
}

func responseInfo(ctx *fasthttp.RequestCtx) accesslog.ResponseInfo {
	status := ctx.Response.StatusCode()
	return accesslog.ResponseInfo{
		StatusCode:    status,
		StatusMessage: fasthttp.StatusMessage(status),
	}
}
