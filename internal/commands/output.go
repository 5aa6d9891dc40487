package commands

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/balkashynov/taskflow/internal/logging"
	"github.com/balkashynov/taskflow/internal/models"
	"github.com/balkashynov/taskflow/internal/parser"
	"github.com/balkashynov/taskflow/internal/reminder"
	"github.com/balkashynov/taskflow/internal/todo"
	"github.com/balkashynov/taskflow/internal/view"
)

func parseID(arg string) (uint, error) {
	id, err := strconv.ParseUint(arg, 10, 32)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid task ID '%s'", arg)
	}
	return uint(id), nil
}

// announce prints achievements and streak milestones produced by a change
func announce(w io.Writer, ch todo.Change) {
	for _, u := range ch.Unlocked {
		if a, ok := view.Lookup(u.ID); ok {
			if a.Major {
				fmt.Fprintln(w, "🎉🎉🎉")
			}
			fmt.Fprintf(w, "%s Achievement unlocked: %s (%s)\n", a.Icon, a.Title, a.Description)
		}
	}
	if ch.Milestone() {
		fmt.Fprintf(w, "🔥 %d day streak! Keep it up!\n", ch.Streak)
	}
}

// cue rings the bell once for an add or completion (celebrate) or any
// unlocked achievement, when sound is on
func cue(w io.Writer, s *todo.Store, ch todo.Change, celebrate bool) {
	if !ch.Changed || !(celebrate || len(ch.Unlocked) > 0) || !s.SoundEnabled() {
		return
	}
	if err := reminder.Chime(w); err != nil {
		logging.L().Debugw("failed to ring bell", "error", err)
	}
}

func statusLabel(t models.Task) string {
	if t.Completed {
		return "done"
	}
	return "todo"
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}

// renderTable prints tasks as a fixed-width table for 80-column terminals
func renderTable(w io.Writer, tasks []models.Task) {
	now := appClock.Now()
	fmt.Fprintf(w, "%-4s %-6s %-32s %-10s %-8s %s\n", "ID", "STATUS", "TASK", "CATEGORY", "PRIORITY", "DUE")
	fmt.Fprintln(w, strings.Repeat("-", 80))
	for _, t := range tasks {
		due := ""
		if t.DueDateTime != nil && !t.Completed {
			due = parser.FormatDueDate(t.DueDateTime, now)
		}
		fmt.Fprintf(w, "%-4d %-6s %-32s %-10s %-8s %s\n",
			t.ID,
			statusLabel(t),
			truncate(t.Text, 32),
			truncate(t.Category, 10),
			t.Priority,
			due)
	}
}

func printTask(w io.Writer, t models.Task) {
	fmt.Fprintf(w, "  Category: %s\n", t.Category)
	fmt.Fprintf(w, "  Priority: %s\n", t.Priority)
	if t.DueDateTime != nil {
		fmt.Fprintf(w, "  Due: %s\n", parser.FormatDueDate(t.DueDateTime, appClock.Now()))
	}
}
