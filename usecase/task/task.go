package task

import (
	"context"

	"go.uber.org/zap"

	"github.com/fastygo/tareas/domain"
	"github.com/fastygo/tareas/pkg/csvexport"
	appLogger "github.com/fastygo/tareas/pkg/logger"
	"github.com/fastygo/tareas/repository"
)

type UseCase struct {
	tasks  repository.TaskRepository
	logger *zap.Logger
}

func New(tasks repository.TaskRepository, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		tasks:  tasks,
		logger: logger,
	}
}

// ListResult is a filtered task set together with its size.
type ListResult struct {
	Total int
	Tasks []domain.Task
}

func (uc *UseCase) ListTasks(ctx context.Context, q Query) (*ListResult, error) {
	snapshot, err := uc.tasks.List(ctx)
	if err != nil {
		return nil, err
	}
	tasks := ApplyQuery(snapshot, q)
	return &ListResult{Total: len(tasks), Tasks: tasks}, nil
}

// CountTasks applies only the completion filter, unlike ListTasks.
func (uc *UseCase) CountTasks(ctx context.Context, q Query) (*ListResult, error) {
	snapshot, err := uc.tasks.List(ctx)
	if err != nil {
		return nil, err
	}
	tasks := ApplyCountFilter(snapshot, q)
	return &ListResult{Total: len(tasks), Tasks: tasks}, nil
}

func (uc *UseCase) GetTask(ctx context.Context, id int) (*domain.Task, error) {
	return uc.tasks.GetByID(ctx, id)
}

func (uc *UseCase) CreateTask(ctx context.Context, payload map[string]any) (*domain.Task, error) {
	if err := uc.validate(ctx, domain.CreateTaskSchema.Name, domain.CreateTaskSchema.Validate(payload)); err != nil {
		return nil, err
	}
	created, err := uc.tasks.Create(ctx, domain.FieldsFromPayload(payload))
	if err != nil {
		return nil, err
	}
	appLogger.WithRequestID(ctx, uc.logger).Debug("task created", zap.Int("task_id", created.ID))
	return created, nil
}

func (uc *UseCase) ReplaceTask(ctx context.Context, id int, payload map[string]any) (*domain.Task, error) {
	if err := uc.validate(ctx, domain.ReplaceTaskSchema.Name, domain.ReplaceTaskSchema.Validate(payload)); err != nil {
		return nil, err
	}
	return uc.tasks.Replace(ctx, id, domain.FieldsFromPayload(payload))
}

func (uc *UseCase) PatchTask(ctx context.Context, id int, payload map[string]any) (*domain.Task, error) {
	if err := uc.validate(ctx, domain.PatchTaskSchema.Name, domain.PatchTaskSchema.Validate(payload)); err != nil {
		return nil, err
	}
	patch := domain.PatchFromPayload(payload)
	if patch.IsEmpty() {
		appLogger.WithRequestID(ctx, uc.logger).Debug("empty patch, only the update time changes", zap.Int("task_id", id))
	}
	return uc.tasks.Patch(ctx, id, patch)
}

func (uc *UseCase) DeleteTask(ctx context.Context, id int) (*domain.Task, error) {
	removed, err := uc.tasks.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	appLogger.WithRequestID(ctx, uc.logger).Debug("task deleted", zap.Int("task_id", removed.ID))
	return removed, nil
}

// ExportCSV renders the whole store as CSV.
func (uc *UseCase) ExportCSV(ctx context.Context) (string, error) {
	snapshot, err := uc.tasks.List(ctx)
	if err != nil {
		return "", err
	}
	return csvexport.Tasks(snapshot), nil
}

func (uc *UseCase) validate(ctx context.Context, schema string, violations []string) error {
	if len(violations) == 0 {
		return nil
	}
	appLogger.WithRequestID(ctx, uc.logger).Debug("payload rejected",
		zap.String("schema", schema),
		zap.Strings("violations", violations))
	return domain.NewValidationError(violations)
}
