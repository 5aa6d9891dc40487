package view

import (
	"math"
	"time"

	"github.com/balkashynov/taskflow/internal/models"
)

// Stats is the aggregate shown in the board header
type Stats struct {
	Total              int `json:"total"`
	CompletedCount     int `json:"completed"`
	ActiveCount        int `json:"active"`
	ProgressPercentage int `json:"progress"`
	Upcoming           int `json:"upcoming"` // incomplete tasks due after now
}

// ComputeStats summarises tasks. An empty list reports 0% progress.
func ComputeStats(tasks []models.Task, now time.Time) Stats {
	s := Stats{Total: len(tasks)}
	for _, t := range tasks {
		if t.Completed {
			s.CompletedCount++
			continue
		}
		if t.DueDateTime != nil && t.DueDateTime.After(now) {
			s.Upcoming++
		}
	}
	s.ActiveCount = s.Total - s.CompletedCount
	if s.Total > 0 {
		s.ProgressPercentage = int(math.Round(100 * float64(s.CompletedCount) / float64(s.Total)))
	}
	return s
}
