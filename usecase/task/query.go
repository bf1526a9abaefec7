package task

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/fastygo/tareas/domain"
)

const (
	SortByTitle = "titulo"
	SortByDate  = "fecha"
)

// Query holds the raw list parameters: completada, q and ordenar.
type Query struct {
	Completed string
	Search    string
	Sort      string
}

// completedFilter returns the requested state and whether the filter applies.
// Only the literal strings "true" and "false" enable it.
func (q Query) completedFilter() (bool, bool) {
	switch q.Completed {
	case "true":
		return true, true
	case "false":
		return false, true
	default:
		return false, false
	}
}

// ApplyQuery filters by completion state, then by search text, then sorts.
// The input slice is never modified.
func ApplyQuery(tasks []domain.Task, q Query) []domain.Task {
	result := ApplyCountFilter(tasks, q)
	result = filterSearch(result, q.Search)

	switch q.Sort {
	case SortByTitle:
		sortByTitle(result)
	case SortByDate:
		reverse(result)
	}
	return result
}

// ApplyCountFilter applies only the completion filter.
func ApplyCountFilter(tasks []domain.Task, q Query) []domain.Task {
	want, ok := q.completedFilter()
	result := make([]domain.Task, 0, len(tasks))
	for _, t := range tasks {
		if ok && t.Completed != want {
			continue
		}
		result = append(result, t)
	}
	return result
}

func filterSearch(tasks []domain.Task, search string) []domain.Task {
	if search == "" {
		return tasks
	}
	term := strings.ToLower(search)
	kept := tasks[:0]
	for _, t := range tasks {
		if strings.Contains(strings.ToLower(t.Title), term) ||
			strings.Contains(strings.ToLower(t.Description), term) {
			kept = append(kept, t)
		}
	}
	return kept
}

func sortByTitle(tasks []domain.Task) {
	// Collators keep internal buffers, so one per call.
	c := collate.New(language.Spanish)
	sort.SliceStable(tasks, func(i, j int) bool {
		return c.CompareString(tasks[i].Title, tasks[j].Title) < 0
	})
}

func reverse(tasks []domain.Task) {
	for i, j := 0, len(tasks)-1; i < j; i, j = i+1, j-1 {
		tasks[i], tasks[j] = tasks[j], tasks[i]
	}
}
