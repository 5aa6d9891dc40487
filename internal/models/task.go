package models

import (
	"strings"
	"time"
)

// Priority is the urgency of a task
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityNormal Priority = "normal"
	PriorityHigh   Priority = "high"
)

// Priorities lists every priority in display order
var Priorities = []Priority{PriorityLow, PriorityNormal, PriorityHigh}

// ParsePriority converts user input to a Priority.
// Accepts "low/normal/high", "1/2/3" and the "medium"/"med" aliases.
func ParsePriority(s string) (Priority, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low", "1":
		return PriorityLow, true
	case "normal", "medium", "med", "2":
		return PriorityNormal, true
	case "high", "3":
		return PriorityHigh, true
	default:
		return PriorityNormal, false
	}
}

// Task represents a todo item
type Task struct {
	ID          uint       `json:"id" yaml:"id"`
	Text        string     `json:"text" yaml:"text"`
	Completed   bool       `json:"completed" yaml:"completed"`
	CreatedAt   time.Time  `json:"createdAt" yaml:"createdAt"`
	CompletedAt *time.Time `json:"completedAt" yaml:"completedAt"`
	Priority    Priority   `json:"priority" yaml:"priority"`
	Category    string     `json:"category" yaml:"category"`
	DueDateTime *time.Time `json:"dueDateTime" yaml:"dueDateTime"`

	// Set once a reminder was surfaced or dismissed for the current due date
	ReminderShown bool `json:"reminderShown" yaml:"reminderShown"`
}

// Clone returns a copy that shares no pointers with t
func (t Task) Clone() Task {
	c := t
	if t.CompletedAt != nil {
		at := *t.CompletedAt
		c.CompletedAt = &at
	}
	if t.DueDateTime != nil {
		due := *t.DueDateTime
		c.DueDateTime = &due
	}
	return c
}

// CloneTasks deep-copies a task sequence
func CloneTasks(tasks []Task) []Task {
	if tasks == nil {
		return nil
	}
	out := make([]Task, len(tasks))
	for i, t := range tasks {
		out[i] = t.Clone()
	}
	return out
}
