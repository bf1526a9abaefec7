package router

import (
	"github.com/fasthttp/router"
	"github.com/valyala/fasthttp"

	apiHandler "github.com/fastygo/tareas/api/handler"
)

type Handlers struct {
	System *apiHandler.SystemHandler
	Task   *apiHandler.TaskHandler
	Health *apiHandler.HealthHandler
}

// New registers every route. Unknown paths and methods share the 404 handler.
func New(handlers Handlers) *router.Router {
	r := router.New()
	r.HandleMethodNotAllowed = false
	r.HandleOPTIONS = false
	r.NotFound = handlers.System.NotFound
	r.PanicHandler = handlers.System.Panic

	r.GET("/", handlers.System.Info)
	if handlers.Health != nil {
		r.GET("/health", handlers.Health.Check)
	}

	r.GET("/tareas", handlers.Task.GetTasks)
	r.POST("/tareas", handlers.Task.CreateTask)
	r.GET("/tareas/contar", handlers.Task.CountTasks)
	r.GET("/tareas/exportar", handlers.Task.ExportTasks)
	r.GET("/tareas/{id}", handlers.Task.GetTask)
	r.PUT("/tareas/{id}", handlers.Task.ReplaceTask)
	r.PATCH("/tareas/{id}", handlers.Task.PatchTask)
	r.DELETE("/tareas/{id}", handlers.Task.DeleteTask)

	return r
}

// Wrap applies middlewares around the router, first one outermost.
func Wrap(h fasthttp.RequestHandler, middlewares ...func(fasthttp.RequestHandler) fasthttp.RequestHandler) fasthttp.RequestHandler {
	for i := len(middlewares) - 1; i >= 0; i-- {
		if middlewares[i] != nil {
			h = middlewares[i](h)
		}
	}
	return h
}
