package repository

import (
	"context"

	"github.com/fastygo/tareas/domain"
)

// TaskRepository is the ordered task collection. Every returned task is a copy.
type TaskRepository interface {
	GetByID(ctx context.Context, id int) (*domain.Task, error)
	List(ctx context.Context) ([]domain.Task, error)
	Count(ctx context.Context) (int, error)
	Create(ctx context.Context, fields domain.TaskFields) (*domain.Task, error)
	Replace(ctx context.Context, id int, fields domain.TaskFields) (*domain.Task, error)
	Patch(ctx context.Context, id int, patch domain.TaskPatch) (*domain.Task, error)
	Delete(ctx context.Context, id int) (*domain.Task, error)
}
