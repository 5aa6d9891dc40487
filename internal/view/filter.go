package view

import (
	"iter"
	"strings"

	"github.com/balkashynov/taskflow/internal/models"
)

// Filter holds the board's current selection criteria.
// Zero values match everything.
type Filter struct {
	SearchTerm string
	Category   string              // "All" or "" matches every category
	Priority   string              // "all" or "" matches every priority
	Status     models.StatusFilter // all, active, completed
}

// Matches reports whether a single task passes every criterion
func (f Filter) Matches(t models.Task) bool {
	if f.SearchTerm != "" && !strings.Contains(strings.ToLower(t.Text), strings.ToLower(f.SearchTerm)) {
		return false
	}
	if f.Category != "" && f.Category != models.AllCategories && t.Category != f.Category {
		return false
	}
	if f.Priority != "" && f.Priority != models.AllPriorities && string(t.Priority) != f.Priority {
		return false
	}
	switch f.Status {
	case models.StatusActive:
		return !t.Completed
	case models.StatusCompleted:
		return t.Completed
	}
	return true
}

// Filtered yields the matching tasks lazily, in store order
func Filtered(tasks []models.Task, f Filter) iter.Seq[models.Task] {
	return func(yield func(models.Task) bool) {
		for _, t := range tasks {
			if f.Matches(t) && !yield(t) {
				return
			}
		}
	}
}

// FilteredTasks collects the matching subsequence
func FilteredTasks(tasks []models.Task, f Filter) []models.Task {
	out := []models.Task{}
	for t := range Filtered(tasks, f) {
		out = append(out, t)
	}
	return out
}
