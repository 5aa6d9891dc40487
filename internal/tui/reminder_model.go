package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/balkashynov/taskflow/internal/reminder"
)

// reminderMsg carries a reminder raised by the scheduler
type reminderMsg reminder.Reminder

// pulseTickMsg animates the open reminder modal
type pulseTickMsg struct{}

const pulseInterval = 500 * time.Millisecond

// waitForReminder blocks until the scheduler raises a reminder or ctx ends
func waitForReminder(ctx context.Context, ch <-chan reminder.Reminder) tea.Cmd {
	return func() tea.Msg {
		select {
		case r := <-ch:
			return reminderMsg(r)
		case <-ctx.Done():
			return nil
		}
	}
}

func pulseTick() tea.Cmd {
	return tea.Tick(pulseInterval, func(time.Time) tea.Msg {
		return pulseTickMsg{}
	})
}

// ReminderModal is the overlay shown while a reminder is active
type ReminderModal struct {
	reminder reminder.Reminder
	choice   int // index into reminder.SnoozeChoices
	pulse    int
}

// ReminderAction is what the user chose in the modal
type ReminderAction int

const (
	ReminderNone ReminderAction = iota
	ReminderSnooze
	ReminderStop
)

func newReminderModal(r reminder.Reminder) *ReminderModal {
	return &ReminderModal{reminder: r}
}

// SnoozeMinutes is the currently selected snooze length
func (m *ReminderModal) SnoozeMinutes() int {
	return reminder.SnoozeChoices[m.choice]
}

// handleKey moves the selection or returns the chosen action
func (m *ReminderModal) handleKey(key string) ReminderAction {
	switch key {
	case "left", "h":
		if m.choice > 0 {
			m.choice--
		}
	case "right", "l", "tab":
		if m.choice < len(reminder.SnoozeChoices)-1 {
			m.choice++
		}
	case "enter":
		return ReminderSnooze
	case "x", "esc":
		return ReminderStop
	}
	return ReminderNone
}

func (m *ReminderModal) View(theme Theme, width int, now time.Time) string {
	var b strings.Builder

	bells := []string{"🔔", "🔕"}
	titleStyle := theme.fg(theme.Warning).Bold(true)
	b.WriteString(titleStyle.Render(bells[m.pulse%2] + " Reminder"))
	b.WriteString("\n\n")

	task := m.reminder.Task
	textStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.PrimaryText)).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.AccentMain)).
		Padding(0, 1).
		Width(min(50, max(20, width-16)))
	b.WriteString(textStyle.Render(task.Text))
	b.WriteString("\n\n")

	if task.DueDateTime != nil {
		left := task.DueDateTime.Sub(now)
		due := fmt.Sprintf("Due at %s", task.DueDateTime.Format("15:04"))
		if left > 0 {
			due += fmt.Sprintf(" (in %s)", left.Round(time.Second))
		}
		b.WriteString(theme.fg(theme.SecondaryText).Render(due))
		b.WriteString("\n")
	}
	b.WriteString(theme.fg(theme.SecondaryText).Render(fmt.Sprintf("#%d · %s · %s", task.ID, task.Category, task.Priority)))
	b.WriteString("\n\n")

	b.WriteString(theme.fg(theme.PrimaryText).Render("Snooze: "))
	for i, minutes := range reminder.SnoozeChoices {
		label := fmt.Sprintf(" %dm ", minutes)
		if i == m.choice {
			b.WriteString(lipgloss.NewStyle().
				Foreground(lipgloss.Color(theme.PrimaryText)).
				Background(lipgloss.Color(theme.AccentMain)).
				Bold(true).
				Render(label))
		} else {
			b.WriteString(theme.fg(theme.SecondaryText).Render(label))
		}
		b.WriteString(" ")
	}
	b.WriteString("\n\n")
	b.WriteString(theme.fg(theme.HelpText).Italic(true).Render("←/→ choose · enter snooze · x/esc stop"))

	return lipgloss.NewStyle().
		Border(lipgloss.ThickBorder()).
		BorderForeground(lipgloss.Color(theme.Warning)).
		Padding(1, 3).
		Render(b.String())
}
