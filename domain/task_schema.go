package domain

import "github.com/fastygo/tareas/pkg/validation"

const (
	FieldTitle       = "titulo"
	FieldDescription = "descripcion"
	FieldCompleted   = "completada"

	TitleMinLength       = 3
	TitleMaxLength       = 100
	DescriptionMaxLength = 255
)

var titleMessages = validation.Messages{
	Type:     "El título debe ser texto.",
	Empty:    "El título no puede estar vacío.",
	Min:      "El título debe tener al menos {limit} caracteres.",
	Max:      "El título no puede tener más de {limit} caracteres.",
	Required: "El título es un campo requerido.",
}

var descriptionMessages = validation.Messages{
	Type: "La descripción debe ser texto.",
	Max:  "La descripción no puede tener más de {limit} caracteres.",
}

var completedMessages = validation.Messages{
	Type:     `El campo "completada" debe ser un valor booleano.`,
	Required: `El campo "completada" es requerido para una actualización completa.`,
}

func titleField(required bool) validation.Field {
	return validation.Field{
		Name:     FieldTitle,
		Kind:     validation.String,
		Required: required,
		Min:      TitleMinLength,
		Max:      TitleMaxLength,
		Messages: titleMessages,
	}
}

func descriptionField() validation.Field {
	return validation.Field{
		Name:       FieldDescription,
		Kind:       validation.String,
		AllowEmpty: true,
		Max:        DescriptionMaxLength,
		Messages:   descriptionMessages,
	}
}

func completedField(required bool) validation.Field {
	return validation.Field{
		Name:     FieldCompleted,
		Kind:     validation.Boolean,
		Required: required,
		Messages: completedMessages,
	}
}

// Task payload schemas for create, full update (PUT) and partial update (PATCH).
var (
	CreateTaskSchema = validation.Schema{
		Name:   "create",
		Fields: []validation.Field{titleField(true), descriptionField()},
	}
	ReplaceTaskSchema = validation.Schema{
		Name:   "replace",
		Fields: []validation.Field{titleField(true), descriptionField(), completedField(true)},
	}
	PatchTaskSchema = validation.Schema{
		Name:   "patch",
		Fields: []validation.Field{titleField(false), descriptionField(), completedField(false)},
	}
)

// FieldsFromPayload converts a payload already accepted by CreateTaskSchema or
// ReplaceTaskSchema. A missing description becomes the empty string.
func FieldsFromPayload(payload map[string]any) TaskFields {
	var fields TaskFields
	fields.Title, _ = payload[FieldTitle].(string)
	fields.Description, _ = payload[FieldDescription].(string)
	fields.Completed, _ = payload[FieldCompleted].(bool)
	return fields
}

// PatchFromPayload converts a payload already accepted by PatchTaskSchema.
func PatchFromPayload(payload map[string]any) TaskPatch {
	var patch TaskPatch
	if v, ok := payload[FieldTitle].(string); ok {
		patch.Title = &v
	}
	if v, ok := payload[FieldDescription].(string); ok {
		patch.Description = &v
	}
	if v, ok := payload[FieldCompleted].(bool); ok {
		patch.Completed = &v
	}
	return patch
}
