// Package csvexport renders tasks as comma-separated text with every value quoted.
package csvexport

import (
	"strconv"
	"strings"

	"github.com/fastygo/tareas/domain"
)

// Columns lists the exported task fields: the id followed by every field a full
// update accepts. Timestamps are left out.
var Columns = append([]string{"id"}, domain.ReplaceTaskSchema.FieldNames()...)

// Tasks returns a header line followed by one row per task, joined by "\n".
// An empty input yields an empty string.
func Tasks(tasks []domain.Task) string {
	if len(tasks) == 0 {
		return ""
	}

	rows := make([]string, 0, len(tasks)+1)
	rows = append(rows, strings.Join(Columns, ","))
	for _, t := range tasks {
		rows = append(rows, Row([]string{
			strconv.Itoa(t.ID),
			t.Title,
			t.Description,
			strconv.FormatBool(t.Completed),
		}))
	}
	return strings.Join(rows, "\n")
}

// Row quotes each value, doubling embedded quotes, and joins them with commas.
func Row(values []string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = `"` + strings.ReplaceAll(v, `"`, `""`) + `"`
	}
	return strings.Join(quoted, ",")
}
