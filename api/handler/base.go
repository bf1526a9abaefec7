package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/fastygo/tareas/api/transport"
	"github.com/fastygo/tareas/domain"
	"github.com/fastygo/tareas/pkg/httpcontext"
	appLogger "github.com/fastygo/tareas/pkg/logger"
)

const (
	msgInternal      = "Error interno del servidor"
	msgInternalShort = "Algo salió mal"
)

type baseHandler struct {
	adapter *httpcontext.Adapter
	logger  *zap.Logger
	// debug exposes internal error details to clients.
	debug bool
}

func newBaseHandler(adapter *httpcontext.Adapter, logger *zap.Logger, debug bool) baseHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return baseHandler{adapter: adapter, logger: logger, debug: debug}
}

func (h baseHandler) requestContext(ctx *fasthttp.RequestCtx) (context.Context, context.CancelFunc) {
	if h.adapter != nil {
		return h.adapter.Attach(ctx)
	}
	return context.WithCancel(context.Background())
}

func (h baseHandler) respondJSON(ctx *fasthttp.RequestCtx, status int, payload transport.Envelope) {
	ctx.Response.Header.SetContentType("application/json; charset=utf-8")
	ctx.SetStatusCode(status)
	body, _ := json.Marshal(payload)
	ctx.SetBody(body)
}

func (h baseHandler) respondSuccess(ctx *fasthttp.RequestCtx, status int, data interface{}) {
	h.respondJSON(ctx, status, transport.NewSuccess(data, nil))
}

func (h baseHandler) respondError(ctx *fasthttp.RequestCtx, reqCtx context.Context, err error) {
	status, code := mapError(err)
	if status == http.StatusInternalServerError {
		appLogger.WithRequestID(reqCtx, h.logger).Error("request failed", zap.Error(err))
		h.respondInternal(ctx, err.Error())
		return
	}

	var dErr *domain.Error
	message := err.Error()
	if errors.As(err, &dErr) {
		message = dErr.Message
	}
	env := transport.NewError(code, message, nil).WithDetails(domain.DetailsOf(err))
	if ce := appLogger.WithRequestID(reqCtx, h.logger).Check(zap.DebugLevel, "request rejected"); ce != nil {
		ce.Write(zap.Int("status", status), zap.String("response", env.String()))
	}
	h.respondJSON(ctx, status, env)
}

// respondInternal hides detail unless the handler runs in development mode.
func (h baseHandler) respondInternal(ctx *fasthttp.RequestCtx, detail string) {
	env := transport.NewError(string(domain.ErrCodeInternal), msgInternal, nil)
	env.Message = msgInternalShort
	if h.debug && detail != "" {
		env.Message = detail
	}
	h.logger.Debug("internal error response",
		zap.String("request_id", httpcontext.EnsureRequestID(ctx)),
		zap.String("response", env.String()))
	h.respondJSON(ctx, http.StatusInternalServerError, env)
}

func mapError(err error) (int, string) {
	switch {
	case domain.IsDomainError(err, domain.ErrCodeInvalid):
		return http.StatusBadRequest, string(domain.ErrCodeInvalid)
	case domain.IsDomainError(err, domain.ErrCodeMalformed):
		return http.StatusBadRequest, string(domain.ErrCodeMalformed)
	case domain.IsDomainError(err, domain.ErrCodeNotFound):
		return http.StatusNotFound, string(domain.ErrCodeNotFound)
	default:
		return http.StatusInternalServerError, string(domain.ErrCodeInternal)
	}
}
