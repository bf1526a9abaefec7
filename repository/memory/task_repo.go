package memory

import (
	"context"
	"sync"
	"time"

	"github.com/fastygo/tareas/domain"
	"github.com/fastygo/tareas/repository"
)

// Option customizes a task repository.
type Option func(*taskRepository)

// WithClock overrides the timestamp source.
func WithClock(now func() time.Time) Option {
	return func(r *taskRepository) {
		if now != nil {
			r.now = now
		}
	}
}

// WithStartID sets the first id handed out by Create.
func WithStartID(id int) Option {
	return func(r *taskRepository) {
		if id > 0 {
			r.nextID = id
		}
	}
}

// WithSeed preloads tasks in the given order. Ids are kept and the counter moves past the largest one.
func WithSeed(tasks ...domain.Task) Option {
	return func(r *taskRepository) {
		for _, t := range tasks {
			r.tasks = append(r.tasks, t.Clone())
			if t.ID >= r.nextID {
				r.nextID = t.ID + 1
			}
		}
	}
}

type taskRepository struct {
	mu     sync.RWMutex
	tasks  []domain.Task
	nextID int
	now    func() time.Time
}

// NewTaskRepository returns an in-memory, insertion-ordered TaskRepository.
// Mutations are serialized; reads work on copies.
func NewTaskRepository(opts ...Option) repository.TaskRepository {
	r := &taskRepository{
		nextID: 1,
		now:    func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *taskRepository) GetByID(ctx context.Context, id int) (*domain.Task, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx := r.indexOf(id)
	if idx < 0 {
		return nil, domain.ErrTaskNotFound
	}
	task := r.tasks[idx].Clone()
	return &task, nil
}

func (r *taskRepository) List(ctx context.Context) ([]domain.Task, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	tasks := make([]domain.Task, 0, len(r.tasks))
	for _, t := range r.tasks {
		tasks = append(tasks, t.Clone())
	}
	return tasks, nil
}

func (r *taskRepository) Count(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.tasks), nil
}

func (r *taskRepository) Create(ctx context.Context, fields domain.TaskFields) (*domain.Task, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	task := domain.Task{
		ID:          r.nextID,
		Title:       fields.Title,
		Description: fields.Description,
		Completed:   false,
		CreatedAt:   r.now(),
	}
	r.nextID++
	r.tasks = append(r.tasks, task)

	created := task.Clone()
	return &created, nil
}

func (r *taskRepository) Replace(ctx context.Context, id int, fields domain.TaskFields) (*domain.Task, error) {
	return r.mutate(ctx, id, func(t *domain.Task) {
		t.Apply(fields)
	})
}

func (r *taskRepository) Patch(ctx context.Context, id int, patch domain.TaskPatch) (*domain.Task, error) {
	return r.mutate(ctx, id, func(t *domain.Task) {
		t.Merge(patch)
	})
}

func (r *taskRepository) Delete(ctx context.Context, id int) (*domain.Task, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(id)
	if idx < 0 {
		return nil, domain.ErrTaskNotFound
	}
	removed := r.tasks[idx].Clone()
	r.tasks = append(r.tasks[:idx], r.tasks[idx+1:]...)
	return &removed, nil
}

func (r *taskRepository) mutate(ctx context.Context, id int, apply func(*domain.Task)) (*domain.Task, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(id)
	if idx < 0 {
		return nil, domain.ErrTaskNotFound
	}
	task := &r.tasks[idx]
	apply(task)
	task.Touch(r.now())

	updated := task.Clone()
	return &updated, nil
}

// indexOf scans linearly; callers hold the lock.
func (r *taskRepository) indexOf(id int) int {
	for i := range r.tasks {
		if r.tasks[i].ID == id {
			return i
		}
	}
	return -1
}
