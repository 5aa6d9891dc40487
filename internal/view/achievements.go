package view

import (
	"sort"
	"time"

	"github.com/balkashynov/taskflow/internal/models"
)

// Progress is what achievement predicates are evaluated against: the live
// tasks plus the record of everything ever created.
type Progress struct {
	Tasks []models.Task
	Usage models.Usage
}

// Achievement is a catalog entry: a one-time unlock driven by a pure
// predicate over the user's progress.
type Achievement struct {
	ID          string
	Title       string
	Description string
	Icon        string
	Major       bool // celebrated louder when unlocked
	Predicate   func(p Progress) bool
}

// Catalog is the fixed achievement table, in display order
var Catalog = []Achievement{
	completedCountAchievement("first_task", "First Step", "Complete your first task", "🎯", 1),
	completedCountAchievement("task_master", "Task Master", "Complete 10 tasks", "🏆", 10),
	completedCountAchievement("productivity_guru", "Productivity Guru", "Complete 25 tasks", "📈", 25).major(),
	completedCountAchievement("completionist", "Completionist", "Complete 50 tasks", "👑", 50).major(),
	{
		ID:          "early_bird",
		Title:       "Early Bird",
		Description: "Complete 5 tasks before 7 AM",
		Icon:        "🌅",
		Predicate: func(p Progress) bool {
			return countCompleted(p.Tasks, func(at time.Time) bool { return at.Hour() < 7 }) >= 5
		},
	},
	{
		ID:          "weekend_warrior",
		Title:       "Weekend Warrior",
		Description: "Complete 10 tasks on weekends",
		Icon:        "🏅",
		Predicate: func(p Progress) bool {
			return countCompleted(p.Tasks, func(at time.Time) bool {
				return at.Weekday() == time.Saturday || at.Weekday() == time.Sunday
			}) >= 10
		},
	},
	{
		ID:          "speed_demon",
		Title:       "Speed Demon",
		Description: "Complete 3 tasks within an hour",
		Icon:        "⚡",
		Predicate:   func(p Progress) bool { return burstWithin(p.Tasks, 3, time.Hour) },
	},
	{
		ID:          "category_explorer",
		Title:       "Category Explorer",
		Description: "Use 5 different categories",
		Icon:        "🏷️",
		Predicate:   func(p Progress) bool { return len(p.Usage.Categories) >= 5 },
	},
	{
		ID:          "reminder_pro",
		Title:       "Reminder Pro",
		Description: "Set reminders for 5 different tasks",
		Icon:        "⏰",
		Predicate:   func(p Progress) bool { return len(p.Usage.DueTaskIDs) >= 5 },
	},
}

func (a Achievement) major() Achievement {
	a.Major = true
	return a
}

// Lookup finds a catalog entry by id
func Lookup(id string) (Achievement, bool) {
	for _, a := range Catalog {
		if a.ID == id {
			return a, true
		}
	}
	return Achievement{}, false
}

// EvaluateAchievements returns the catalog entries that unlock now: those
// not already unlocked whose predicate holds. Re-running on unchanged
// progress returns nothing, and nothing already unlocked is ever dropped.
func EvaluateAchievements(p Progress, unlocked []models.UnlockedAchievement, now time.Time) []models.UnlockedAchievement {
	have := make(map[string]bool, len(unlocked))
	for _, u := range unlocked {
		have[u.ID] = true
	}

	var fresh []models.UnlockedAchievement
	for _, a := range Catalog {
		if have[a.ID] {
			continue
		}
		if a.Predicate(p) {
			fresh = append(fresh, models.UnlockedAchievement{ID: a.ID, UnlockedAt: now})
		}
	}
	return fresh
}

func completedCountAchievement(id, title, desc, icon string, count int) Achievement {
	return Achievement{
		ID:          id,
		Title:       title,
		Description: desc,
		Icon:        icon,
		Predicate: func(p Progress) bool {
			return countCompleted(p.Tasks, nil) >= count
		},
	}
}

// countCompleted counts completed tasks whose completion time (local) passes match
func countCompleted(tasks []models.Task, match func(time.Time) bool) int {
	n := 0
	for _, t := range tasks {
		if !t.Completed {
			continue
		}
		if match == nil {
			n++
			continue
		}
		if t.CompletedAt != nil && match(t.CompletedAt.Local()) {
			n++
		}
	}
	return n
}

// burstWithin reports whether n completions fall inside one window,
// looking at completions ordered by time.
func burstWithin(tasks []models.Task, n int, window time.Duration) bool {
	var times []time.Time
	for _, t := range tasks {
		if t.Completed && t.CompletedAt != nil {
			times = append(times, *t.CompletedAt)
		}
	}
	sort.Slice(times, func(i, j int) bool { return times[i].Before(times[j]) })

	for i := 0; i+n-1 < len(times); i++ {
		if times[i+n-1].Sub(times[i]) <= window {
			return true
		}
	}
	return false
}
