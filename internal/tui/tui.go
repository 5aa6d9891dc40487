package tui

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/balkashynov/taskflow/internal/clock"
	"github.com/balkashynov/taskflow/internal/models"
	"github.com/balkashynov/taskflow/internal/reminder"
	"github.com/balkashynov/taskflow/internal/todo"
)

// RunBoard runs the interactive board with the reminder scheduler polling
// in the background. The scheduler is stopped when the board exits.
func RunBoard(ctx context.Context, s *todo.Store, sched *reminder.Scheduler, clk clock.Clock) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if err := sched.Start(ctx); err != nil {
		return fmt.Errorf("failed to start reminders: %w", err)
	}
	defer sched.Stop()

	model := NewBoardModel(ctx, s, sched, clk)
	model.chime = os.Stderr
	if _, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run(); err != nil {
		return err
	}
	return nil
}

// RunAdd starts the interactive add TUI pre-filled with text
func RunAdd(s *todo.Store, text string) error {
	return runInput(s, NewAddInput(text, ThemeFor(s.DarkMode()), clock.RealClock{}.Now), "❌ Task creation cancelled.")
}

// RunEdit starts the interactive edit TUI for task
func RunEdit(s *todo.Store, task models.Task) error {
	return runInput(s, NewEditInput(task, ThemeFor(s.DarkMode()), clock.RealClock{}.Now), "❌ Edit cancelled.")
}

func runInput(s *todo.Store, m InputModel, cancelled string) error {
	m.standalone = true

	finalModel, err := tea.NewProgram(m).Run()
	if err != nil {
		return err
	}

	// Handle exit messages after TUI closes
	if m, ok := finalModel.(InputModel); ok {
		if m.cancelled {
			fmt.Println(cancelled)
			return nil
		}
		ch, text := m.Apply(s)
		if text != "" {
			fmt.Println(text)
		}
		if toast := toastFor(ch, ""); toast != "" {
			fmt.Println(toast)
		}
		if ch.Changed && (m.kind == InputAdd || len(ch.Unlocked) > 0) && s.SoundEnabled() {
			_ = reminder.Chime(os.Stderr)
		}
	}
	return nil
}
