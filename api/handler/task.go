package handler

import (
	"net/http"
	"strconv"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/fastygo/tareas/api/transport"
	"github.com/fastygo/tareas/domain"
	"github.com/fastygo/tareas/pkg/httpcontext"
	taskUC "github.com/fastygo/tareas/usecase/task"
)

const (
	msgCreated  = "Tarea creada exitosamente"
	msgReplaced = "Tarea actualizada completamente"
	msgPatched  = "Tarea actualizada parcialmente"
	msgDeleted  = "Tarea eliminada exitosamente"
)

type TaskHandler struct {
	baseHandler
	uc *taskUC.UseCase
}

func NewTaskHandler(uc *taskUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger, debug bool) *TaskHandler {
	return &TaskHandler{
		baseHandler: newBaseHandler(adapter, logger, debug),
		uc:          uc,
	}
}

// @Summary List tasks
// @Tags tareas
// @Param completada query string false "true|false"
// @Param q query string false "search text"
// @Param ordenar query string false "titulo|fecha"
// @Router /tareas [get]
func (h *TaskHandler) GetTasks(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	result, err := h.uc.ListTasks(stdCtx, parseQuery(ctx))
	if err != nil {
		h.respondError(ctx, stdCtx, err)
		return
	}
	h.respondJSON(ctx, http.StatusOK, transport.NewSuccess(result.Tasks, listMeta(ctx, result)))
}

// @Summary Count tasks (completion filter only)
// @Tags tareas
// @Router /tareas/contar [get]
func (h *TaskHandler) CountTasks(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	result, err := h.uc.CountTasks(stdCtx, parseQuery(ctx))
	if err != nil {
		h.respondError(ctx, stdCtx, err)
		return
	}
	h.respondJSON(ctx, http.StatusOK, transport.NewSuccess(result.Tasks, listMeta(ctx, result)))
}

// @Summary Export tasks as CSV
// @Tags tareas
// @Produce text/csv
// @Router /tareas/exportar [get]
func (h *TaskHandler) ExportTasks(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	body, err := h.uc.ExportCSV(stdCtx)
	if err != nil {
		h.respondError(ctx, stdCtx, err)
		return
	}
	ctx.Response.Header.SetContentType("text/csv; charset=utf-8")
	ctx.Response.Header.Set("Content-Disposition", `attachment; filename="tareas.csv"`)
	ctx.SetStatusCode(http.StatusOK)
	ctx.SetBodyString(body)
}

// @Summary Get task
// @Tags tareas
// @Router /tareas/{id} [get]
func (h *TaskHandler) GetTask(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	id, err := taskID(ctx)
	if err != nil {
		h.respondError(ctx, stdCtx, err)
		return
	}

	task, err := h.uc.GetTask(stdCtx, id)
	if err != nil {
		h.respondError(ctx, stdCtx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, task)
}

// @Summary Create task
// @Tags tareas
// @Accept json
// @Router /tareas [post]
func (h *TaskHandler) CreateTask(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	payload, err := transport.DecodePayload(ctx.PostBody())
	if err != nil {
		h.respondError(ctx, stdCtx, err)
		return
	}

	created, err := h.uc.CreateTask(stdCtx, payload)
	if err != nil {
		h.respondError(ctx, stdCtx, err)
		return
	}
	h.respondJSON(ctx, http.StatusCreated, transport.NewMessage(msgCreated, created))
}

// @Summary Replace task
// @Tags tareas
// @Accept json
// @Router /tareas/{id} [put]
func (h *TaskHandler) ReplaceTask(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	payload, err := transport.DecodePayload(ctx.PostBody())
	if err != nil {
		h.respondError(ctx, stdCtx, err)
		return
	}
	updated, err := h.uc.ReplaceTask(stdCtx, payloadTaskID(ctx), payload)
	if err != nil {
		h.respondError(ctx, stdCtx, err)
		return
	}
	h.respondJSON(ctx, http.StatusOK, transport.NewMessage(msgReplaced, updated))
}

// @Summary Patch task
// @Tags tareas
// @Accept json
// @Router /tareas/{id} [patch]
func (h *TaskHandler) PatchTask(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	payload, err := transport.DecodePayload(ctx.PostBody())
	if err != nil {
		h.respondError(ctx, stdCtx, err)
		return
	}
	updated, err := h.uc.PatchTask(stdCtx, payloadTaskID(ctx), payload)
	if err != nil {
		h.respondError(ctx, stdCtx, err)
		return
	}
	h.respondJSON(ctx, http.StatusOK, transport.NewMessage(msgPatched, updated))
}

// @Summary Delete task
// @Tags tareas
// @Router /tareas/{id} [delete]
func (h *TaskHandler) DeleteTask(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	id, err := taskID(ctx)
	if err != nil {
		h.respondError(ctx, stdCtx, err)
		return
	}

	removed, err := h.uc.DeleteTask(stdCtx, id)
	if err != nil {
		h.respondError(ctx, stdCtx, err)
		return
	}
	h.respondJSON(ctx, http.StatusOK, transport.NewMessage(msgDeleted, removed))
}

// taskID reads the {id} segment. Anything that is not an integer cannot match a task.
func taskID(ctx *fasthttp.RequestCtx) (int, error) {
	raw, _ := ctx.UserValue("id").(string)
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, domain.ErrTaskNotFound
	}
	return id, nil
}

// payloadTaskID is used by PUT and PATCH, where the body is validated before the id is
// resolved. Ids start at 1, so an unparsable id maps to 0 and ends up as not found.
func payloadTaskID(ctx *fasthttp.RequestCtx) int {
	id, err := taskID(ctx)
	if err != nil {
		return 0
	}
	return id
}

func parseQuery(ctx *fasthttp.RequestCtx) taskUC.Query {
	args := ctx.QueryArgs()
	return taskUC.Query{
		Completed: string(args.Peek("completada")),
		Search:    string(args.Peek("q")),
		Sort:      string(args.Peek("ordenar")),
	}
}

func listMeta(ctx *fasthttp.RequestCtx, result *taskUC.ListResult) transport.ListMeta {
	filters := make(map[string]string)
	ctx.QueryArgs().VisitAll(func(key, value []byte) {
		filters[string(key)] = string(value)
	})
	return transport.ListMeta{Total: result.Total, Filters: filters}
}
