package handler

import (
	"fmt"
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/fastygo/tareas/api/transport"
	"github.com/fastygo/tareas/pkg/httpcontext"
)

const msgRouteNotFound = "Ruta no encontrada"

// ServiceInfo describes the API for the root endpoint.
type ServiceInfo struct {
	Message   string            `json:"mensaje"`
	Name      string            `json:"nombre"`
	Version   string            `json:"version"`
	Endpoints map[string]string `json:"endpoints"`
	Examples  map[string]string `json:"ejemplos"`
}

// RouteNotFound is the meta block of a 404 for an unknown route.
type RouteNotFound struct {
	Method      string   `json:"metodo"`
	Path        string   `json:"ruta"`
	Suggestions []string `json:"sugerencias"`
}

var routeSuggestions = []string{
	"GET / - Información de la API",
	"GET /tareas - Listar tareas",
	"POST /tareas - Crear tarea",
}

// SystemHandler serves the root document and the router's fallbacks.
type SystemHandler struct {
	baseHandler
	info ServiceInfo
}

func NewSystemHandler(name, version string, adapter *httpcontext.Adapter, logger *zap.Logger, debug bool) *SystemHandler {
	return &SystemHandler{
		baseHandler: newBaseHandler(adapter, logger, debug),
		info: ServiceInfo{
			Message: "API de Gestión de Tareas",
			Name:    name,
			Version: version,
			Endpoints: map[string]string{
				"GET /":                "Esta información",
				"GET /health":          "Estado del servicio",
				"GET /tareas":          "Listar tareas",
				"GET /tareas/contar":   "Contar tareas",
				"GET /tareas/exportar": "Exportar tareas en CSV",
				"GET /tareas/:id":      "Obtener tarea específica",
				"POST /tareas":         "Crear nueva tarea",
				"PUT /tareas/:id":      "Actualizar tarea completa",
				"PATCH /tareas/:id":    "Actualizar tarea parcial",
				"DELETE /tareas/:id":   "Eliminar tarea",
			},
			Examples: map[string]string{
				"crear":   `POST /tareas con body: {"titulo": "Mi tarea", "descripcion": "Descripción"}`,
				"filtrar": "GET /tareas?completada=false",
				"buscar":  "GET /tareas?q=express",
				"ordenar": "GET /tareas?ordenar=titulo",
			},
		},
	}
}

// @Summary API information
// @Tags system
// @Router / [get]
func (h *SystemHandler) Info(ctx *fasthttp.RequestCtx) {
	httpcontext.EnsureRequestID(ctx)
	h.respondSuccess(ctx, http.StatusOK, h.info)
}

// NotFound answers any unmatched method or path.
func (h *SystemHandler) NotFound(ctx *fasthttp.RequestCtx) {
	httpcontext.EnsureRequestID(ctx)
	meta := RouteNotFound{
		Method:      string(ctx.Method()),
		Path:        string(ctx.RequestURI()),
		Suggestions: routeSuggestions,
	}
	h.respondJSON(ctx, http.StatusNotFound, transport.NewError("ROUTE_NOT_FOUND", msgRouteNotFound, meta))
}

// Panic converts a handler panic into a 500 response.
func (h *SystemHandler) Panic(ctx *fasthttp.RequestCtx, recovered interface{}) {
	reqID := httpcontext.EnsureRequestID(ctx)
	h.logger.Error("panic while serving request",
		zap.String("request_id", reqID),
		zap.String("method", string(ctx.Method())),
		zap.String("url", string(ctx.RequestURI())),
		zap.Any("panic", recovered),
		zap.Stack("stack"))

	ctx.Response.Reset()
	ctx.Response.Header.Set(httpcontext.HeaderRequestID, reqID)
	h.respondInternal(ctx, fmt.Sprint(recovered))
}
