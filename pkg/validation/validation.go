// Package validation checks decoded JSON payloads against declarative field rules.
package validation

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// Kind is the JSON type a field must carry.
type Kind int

const (
	String Kind = iota
	Boolean
)

// Messages holds the violation texts for a field. "{limit}" is replaced with the bound.
type Messages struct {
	Type     string
	Empty    string
	Min      string
	Max      string
	Required string
}

// Field describes the constraints on a single payload key.
type Field struct {
	Name       string
	Kind       Kind
	Required   bool
	AllowEmpty bool
	Min        int
	Max        int
	Messages   Messages
}

// Schema is an ordered set of field rules. Violations are reported in field order.
type Schema struct {
	Name   string
	Fields []Field
}

// Validate checks every field and returns all violations found. A nil result means the
// payload is valid. Keys not declared in the schema are ignored.
func (s Schema) Validate(payload map[string]any) []string {
	var violations []string
	for _, field := range s.Fields {
		if msg, ok := field.check(payload); !ok {
			violations = append(violations, msg)
		}
	}
	return violations
}

// FieldNames returns the declared field names in order.
func (s Schema) FieldNames() []string {
	names := make([]string, 0, len(s.Fields))
	for _, f := range s.Fields {
		names = append(names, f.Name)
	}
	return names
}

func (f Field) check(payload map[string]any) (string, bool) {
	value, present := payload[f.Name]
	if !present {
		if f.Required {
			return f.message(f.Messages.Required, "required", 0), false
		}
		return "", true
	}

	switch f.Kind {
	case Boolean:
		if _, ok := value.(bool); !ok {
			return f.message(f.Messages.Type, "type", 0), false
		}
		return "", true
	case String:
		text, ok := value.(string)
		if !ok {
			return f.message(f.Messages.Type, "type", 0), false
		}
		return f.checkLength(text)
	default:
		return f.message(f.Messages.Type, "type", 0), false
	}
}

func (f Field) checkLength(text string) (string, bool) {
	if text == "" {
		if f.AllowEmpty {
			return "", true
		}
		return f.message(f.Messages.Empty, "empty", 0), false
	}
	length := utf8.RuneCountInString(text)
	if f.Min > 0 && length < f.Min {
		return f.message(f.Messages.Min, "min", f.Min), false
	}
	if f.Max > 0 && length > f.Max {
		return f.message(f.Messages.Max, "max", f.Max), false
	}
	return "", true
}

func (f Field) message(template, rule string, limit int) string {
	if template == "" {
		template = defaultMessage(f.Name, rule)
	}
	return strings.ReplaceAll(template, "{limit}", strconv.Itoa(limit))
}

func defaultMessage(name, rule string) string {
	switch rule {
	case "required":
		return `"` + name + `" is required`
	case "empty":
		return `"` + name + `" is not allowed to be empty`
	case "min":
		return `"` + name + `" length must be at least {limit} characters long`
	case "max":
		return `"` + name + `" length must be less than or equal to {limit} characters long`
	default:
		return `"` + name + `" has an invalid type`
	}
}
