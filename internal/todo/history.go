package todo

import "github.com/balkashynov/taskflow/internal/models"

// History is a linear undo/redo log of task-sequence snapshots.
// Entries are deep copies; callers never share memory with the log.
type History struct {
	entries [][]models.Task
	cursor  int
}

func NewHistory() *History {
	return &History{cursor: -1}
}

// Record drops everything after the cursor and appends snapshot
func (h *History) Record(snapshot []models.Task) {
	h.entries = append(h.entries[:h.cursor+1], models.CloneTasks(snapshot))
	h.cursor = len(h.entries) - 1
}

// Undo steps back one entry. ok is false when there is nothing to undo.
func (h *History) Undo() ([]models.Task, bool) {
	if h.cursor <= 0 {
		return nil, false
	}
	h.cursor--
	return models.CloneTasks(h.entries[h.cursor]), true
}

// Redo steps forward one entry. ok is false at the newest entry.
func (h *History) Redo() ([]models.Task, bool) {
	if h.cursor >= len(h.entries)-1 {
		return nil, false
	}
	h.cursor++
	return models.CloneTasks(h.entries[h.cursor]), true
}

func (h *History) CanUndo() bool { return h.cursor > 0 }
func (h *History) CanRedo() bool { return h.cursor < len(h.entries)-1 }
func (h *History) Len() int      { return len(h.entries) }
func (h *History) Cursor() int   { return h.cursor }

// Clear empties the log
func (h *History) Clear() {
	h.entries = nil
	h.cursor = -1
}
