package task

import (
	"time"

	"github.com/fastygo/tareas/domain"
)

// SampleTasks returns the three demo tasks the service boots with.
func SampleTasks(now time.Time) []domain.Task {
	return []domain.Task{
		{ID: 1, Title: "Aprender Express", Description: "Completar tutorial", CreatedAt: now},
		{ID: 2, Title: "Crear API", Description: "Implementar endpoints REST", Completed: true, CreatedAt: now},
		{ID: 3, Title: "Testing", Description: "Probar con Postman", CreatedAt: now},
	}
}
