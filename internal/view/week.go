package view

import (
	"sort"
	"time"

	"github.com/balkashynov/taskflow/internal/models"
)

// DayNames are the week columns, Monday first
var DayNames = [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// WeekRow holds completions for one category, indexed Monday=0
type WeekRow struct {
	Category string
	PerDay   [7]int
	Total    int
}

// Week is a completion summary for one calendar week
type Week struct {
	Start     time.Time
	Rows      []WeekRow
	DayTotals [7]int
	Total     int
}

// WeekStart returns the start of the calendar week (Monday) for the given time
func WeekStart(t time.Time) time.Time {
	weekday := t.Weekday()
	daysFromMonday := int(weekday - time.Monday)
	if weekday == time.Sunday {
		daysFromMonday = 6 // Sunday is 6 days from Monday
	}

	weekStart := t.AddDate(0, 0, -daysFromMonday)
	return time.Date(weekStart.Year(), weekStart.Month(), weekStart.Day(), 0, 0, 0, 0, weekStart.Location())
}

// WeekSummary groups this week's completions by category and weekday
func WeekSummary(tasks []models.Task, now time.Time) Week {
	start := WeekStart(now)
	end := start.AddDate(0, 0, 7)
	w := Week{Start: start}

	rows := map[string]*WeekRow{}
	for _, t := range tasks {
		if !t.Completed || t.CompletedAt == nil {
			continue
		}
		at := t.CompletedAt.In(now.Location())
		if at.Before(start) || !at.Before(end) {
			continue
		}
		day := (int(at.Weekday()) + 6) % 7 // Monday=0
		row, ok := rows[t.Category]
		if !ok {
			row = &WeekRow{Category: t.Category}
			rows[t.Category] = row
		}
		row.PerDay[day]++
		row.Total++
		w.DayTotals[day]++
		w.Total++
	}

	for _, r := range rows {
		w.Rows = append(w.Rows, *r)
	}
	sort.Slice(w.Rows, func(i, j int) bool {
		if w.Rows[i].Total != w.Rows[j].Total {
			return w.Rows[i].Total > w.Rows[j].Total
		}
		return w.Rows[i].Category < w.Rows[j].Category
	})
	return w
}
