package task

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/fastygo/tareas/domain"
	"github.com/fastygo/tareas/repository/memory"
)

func newUseCase(t *testing.T, seed ...domain.Task) *UseCase {
	t.Helper()
	return New(memory.NewTaskRepository(memory.WithSeed(seed...)), nil)
}

func TestUseCase_CreateTask(t *testing.T) {
	uc := newUseCase(t, SampleTasks(time.Now())...)
	ctx := context.Background()

	created, err := uc.CreateTask(ctx, map[string]any{"titulo": "Nueva tarea", "descripcion": "algo"})
	require.NoError(t, err)
	assert.Equal(t, 4, created.ID)
	assert.False(t, created.Completed)
	assert.Equal(t, "algo", created.Description)

	next, err := uc.CreateTask(ctx, map[string]any{"titulo": "Otra más"})
	require.NoError(t, err)
	assert.Equal(t, created.ID+1, next.ID)
	assert.Equal(t, "", next.Description)
}

func TestUseCase_CreateTaskRejectsInvalidTitle(t *testing.T) {
	uc := newUseCase(t)
	ctx := context.Background()

	for _, title := range []string{"", "ab", strings.Repeat("x", 101)} {
		_, err := uc.CreateTask(ctx, map[string]any{"titulo": title})
		require.Error(t, err)
		assert.True(t, domain.IsDomainError(err, domain.ErrCodeInvalid))
		assert.Len(t, domain.DetailsOf(err), 1)
	}

	result, err := uc.ListTasks(ctx, Query{})
	require.NoError(t, err)
	assert.Zero(t, result.Total, "store must not change on validation failure")
}

func TestUseCase_ReplaceTask(t *testing.T) {
	uc := newUseCase(t, SampleTasks(time.Now())...)
	ctx := context.Background()

	_, err := uc.ReplaceTask(ctx, 1, map[string]any{"titulo": "Sin estado"})
	require.Error(t, err)
	assert.Equal(t, []string{`El campo "completada" es requerido para una actualización completa.`}, domain.DetailsOf(err))

	updated, err := uc.ReplaceTask(ctx, 1, map[string]any{"titulo": "Reemplazada", "completada": true})
	require.NoError(t, err)
	assert.Equal(t, "Reemplazada", updated.Title)
	assert.Equal(t, "", updated.Description)
	assert.True(t, updated.Completed)
	assert.NotNil(t, updated.UpdatedAt)

	_, err = uc.ReplaceTask(ctx, 99, map[string]any{"titulo": "Reemplazada", "completada": true})
	assert.ErrorIs(t, err, domain.ErrTaskNotFound)
}

func TestUseCase_ValidationRunsBeforeLookup(t *testing.T) {
	uc := newUseCase(t)
	_, err := uc.PatchTask(context.Background(), 99, map[string]any{"titulo": "x"})
	assert.True(t, domain.IsDomainError(err, domain.ErrCodeInvalid))
}

func TestUseCase_PatchTask(t *testing.T) {
	uc := newUseCase(t, domain.Task{ID: 1, Title: "A", Description: "B"})
	ctx := context.Background()

	patched, err := uc.PatchTask(ctx, 1, map[string]any{"completada": true, "id": 500, "extra": "x"})
	require.NoError(t, err)
	assert.Equal(t, 1, patched.ID)
	assert.Equal(t, "A", patched.Title)
	assert.Equal(t, "B", patched.Description)
	assert.True(t, patched.Completed)
	assert.NotNil(t, patched.UpdatedAt)
}

func TestUseCase_EmptyPatchOnlyTouchesUpdateTime(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	uc := New(memory.NewTaskRepository(memory.WithSeed(domain.Task{ID: 1, Title: "A", Description: "B"})), zap.New(core))

	patched, err := uc.PatchTask(context.Background(), 1, map[string]any{"extra": true})
	require.NoError(t, err)
	assert.Equal(t, "A", patched.Title)
	assert.False(t, patched.Completed)
	assert.NotNil(t, patched.UpdatedAt)
	assert.Equal(t, 1, logs.FilterMessage("empty patch, only the update time changes").Len())

	_, err = uc.PatchTask(context.Background(), 1, map[string]any{"completada": true})
	require.NoError(t, err)
	assert.Equal(t, 1, logs.FilterMessage("empty patch, only the update time changes").Len())
}

func TestUseCase_DeleteTask(t *testing.T) {
	uc := newUseCase(t, SampleTasks(time.Now())...)
	ctx := context.Background()

	removed, err := uc.DeleteTask(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "Crear API", removed.Title)

	_, err = uc.DeleteTask(ctx, 2)
	assert.ErrorIs(t, err, domain.ErrTaskNotFound)

	_, err = uc.GetTask(ctx, 2)
	assert.ErrorIs(t, err, domain.ErrTaskNotFound)
}

func TestUseCase_ListAndCountDiffer(t *testing.T) {
	uc := newUseCase(t, SampleTasks(time.Now())...)
	ctx := context.Background()
	q := Query{Completed: "false", Search: "postman"}

	listed, err := uc.ListTasks(ctx, q)
	require.NoError(t, err)
	assert.Equal(t, 1, listed.Total)
	assert.Equal(t, "Testing", listed.Tasks[0].Title)

	counted, err := uc.CountTasks(ctx, q)
	require.NoError(t, err)
	assert.Equal(t, 2, counted.Total)
	assert.Len(t, counted.Tasks, 2)
}

func TestUseCase_ExportCSV(t *testing.T) {
	empty := newUseCase(t)
	out, err := empty.ExportCSV(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "", out)

	uc := newUseCase(t, domain.Task{ID: 1, Title: `Di "hola"`, Description: "x"})
	out, err = uc.ExportCSV(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "id,titulo,descripcion,completada\n\"1\",\"Di \"\"hola\"\"\",\"x\",\"false\"", out)
}
