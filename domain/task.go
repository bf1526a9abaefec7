package domain

import "time"

// Task represents a single to-do item held by the task store.
type Task struct {
	ID          int        `json:"id"`
	Title       string     `json:"titulo"`
	Description string     `json:"descripcion"`
	Completed   bool       `json:"completada"`
	CreatedAt   time.Time  `json:"fechaCreacion"`
	UpdatedAt   *time.Time `json:"fechaActualizacion,omitempty"`
}

// TaskFields carries validated values for create and full-update operations.
type TaskFields struct {
	Title       string
	Description string
	Completed   bool
}

// TaskPatch carries validated values for a partial update. Nil fields are left untouched.
type TaskPatch struct {
	Title       *string
	Description *string
	Completed   *bool
}

// IsEmpty reports whether the patch would change nothing.
func (p TaskPatch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.Completed == nil
}

// Apply overwrites every mutable field with the provided values.
func (t *Task) Apply(fields TaskFields) {
	if t == nil {
		return
	}
	t.Title = fields.Title
	t.Description = fields.Description
	t.Completed = fields.Completed
}

// Merge copies only the supplied patch fields onto the task.
func (t *Task) Merge(patch TaskPatch) {
	if t == nil {
		return
	}
	if patch.Title != nil {
		t.Title = *patch.Title
	}
	if patch.Description != nil {
		t.Description = *patch.Description
	}
	if patch.Completed != nil {
		t.Completed = *patch.Completed
	}
}

// Touch stamps the update timestamp.
func (t *Task) Touch(now time.Time) {
	if t == nil {
		return
	}
	stamp := now
	t.UpdatedAt = &stamp
}

// Clone returns a copy that shares no memory with the receiver.
func (t Task) Clone() Task {
	if t.UpdatedAt != nil {
		stamp := *t.UpdatedAt
		t.UpdatedAt = &stamp
	}
	return t
}
