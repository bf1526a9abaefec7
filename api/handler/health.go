package handler

import (
	"net/http"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/fastygo/tareas/internal/infrastructure/monitor"
	"github.com/fastygo/tareas/pkg/httpcontext"
)

// StatusSource reports the latest service status sample.
type StatusSource interface {
	GetStatus() monitor.Status
}

type HealthHandler struct {
	baseHandler
	monitor StatusSource
}

func NewHealthHandler(mon StatusSource, adapter *httpcontext.Adapter, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{
		baseHandler: newBaseHandler(adapter, logger, false),
		monitor:     mon,
	}
}

// @Summary Health check
// @Tags health
// @Router /health [get]
func (h *HealthHandler) Check(ctx *fasthttp.RequestCtx) {
	httpcontext.EnsureRequestID(ctx)
	status := h.monitor.GetStatus()
	payload := map[string]interface{}{
		"timestamp": time.Now().UTC(),
		"tareas":    status.Tasks,
		"journal": map[string]interface{}{
			"online":  status.Journal,
			"size":    status.JournalSize,
			"read_tx": status.JournalReadTx,
			"open_tx": status.JournalOpenTx,
			"recent":  status.RecentRequests,
		},
		"last_check": status.LastCheck,
	}
	h.respondSuccess(ctx, http.StatusOK, payload)
}
