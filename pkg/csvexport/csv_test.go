package csvexport

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/fastygo/tareas/domain"
)

func TestTasks_Empty(t *testing.T) {
	assert.Equal(t, "", Tasks(nil))
	assert.Equal(t, "", Tasks([]domain.Task{}))
}

func TestTasks_OmitsTimestampsAndEscapesQuotes(t *testing.T) {
	updated := time.Now()
	tasks := []domain.Task{{
		ID:          7,
		Title:       `Leer "Rayuela"`,
		Description: "capítulo 1, 2",
		Completed:   true,
		CreatedAt:   time.Now(),
		UpdatedAt:   &updated,
	}}

	got := Tasks(tasks)
	lines := strings.Split(got, "\n")

	assert.Len(t, lines, 2)
	assert.Equal(t, "id,titulo,descripcion,completada", lines[0])
	assert.Equal(t, `"7","Leer ""Rayuela""","capítulo 1, 2","true"`, lines[1])
	assert.NotContains(t, got, "fechaCreacion")
	assert.NotContains(t, got, "fechaActualizacion")
}

func TestTasks_NoTrailingNewline(t *testing.T) {
	got := Tasks([]domain.Task{{ID: 1, Title: "uno"}, {ID: 2, Title: "dos"}})
	assert.False(t, strings.HasSuffix(got, "\n"))
	assert.Equal(t, 2, strings.Count(got, "\n"))
}

func TestRow(t *testing.T) {
	assert.Equal(t, `"","a""b"`, Row([]string{"", `a"b`}))
}

func TestColumns_FollowTaskSchema(t *testing.T) {
	assert.Equal(t, []string{"id", domain.FieldTitle, domain.FieldDescription, domain.FieldCompleted}, Columns)
}

// Both boolean values are written out; an incomplete task exports "false", not an empty cell.
func TestTasks_IncompleteTaskExportsFalse(t *testing.T) {
	got := Tasks([]domain.Task{{ID: 3, Title: "Testing", Completed: false}})
	assert.Equal(t, "id,titulo,descripcion,completada\n\"3\",\"Testing\",\"\",\"false\"", got)
}
