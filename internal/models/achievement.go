package models

import (
	"slices"
	"time"
)

// UnlockedAchievement records when a catalog achievement was earned.
// Once stored it is never revoked, only wiped by a full reset.
type UnlockedAchievement struct {
	ID         string    `json:"id" yaml:"id"`
	UnlockedAt time.Time `json:"unlockedAt" yaml:"unlockedAt"`
}

// StatusFilter selects tasks by completion state
type StatusFilter string

const (
	StatusAll       StatusFilter = "all"
	StatusActive    StatusFilter = "active"
	StatusCompleted StatusFilter = "completed"
)

// AllCategories is the category filter value that matches every task
const AllCategories = "All"

// AllPriorities is the priority filter value that matches every task
const AllPriorities = "all"

// DefaultCategories is the built-in managed category set
var DefaultCategories = []string{"Work", "Personal", "Shopping", "Health", "Fitness"}

// DefaultCategory is assigned when a task is added without a concrete category
const DefaultCategory = "Personal"

// Usage remembers what was ever created. Deleting or clearing tasks never
// shrinks it; only a reset does.
type Usage struct {
	Categories []string `json:"categories" yaml:"categories"`
	DueTaskIDs []uint   `json:"dueTaskIds" yaml:"dueTaskIds"`
}

// Observe records the category of every task and the id of every task
// carrying a due date
func (u *Usage) Observe(tasks []Task) {
	for _, t := range tasks {
		if t.Category != "" && !slices.Contains(u.Categories, t.Category) {
			u.Categories = append(u.Categories, t.Category)
		}
		if t.DueDateTime != nil && !slices.Contains(u.DueTaskIDs, t.ID) {
			u.DueTaskIDs = append(u.DueTaskIDs, t.ID)
		}
	}
}

// Clone returns a copy that shares no slices with u
func (u Usage) Clone() Usage {
	return Usage{
		Categories: slices.Clone(u.Categories),
		DueTaskIDs: slices.Clone(u.DueTaskIDs),
	}
}
