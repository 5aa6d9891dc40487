package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/balkashynov/taskflow/internal/parser"
	"github.com/balkashynov/taskflow/internal/todo"
	"github.com/balkashynov/taskflow/internal/tui"
)

var editCmd = &cobra.Command{
	Use:   "edit <task_id> [new text]",
	Short: "Edit an existing task",
	Long: `Edit the text or due date of an existing task.

With no new text and no --due flag, opens an interactive editor pre-filled
with the current text.

Usage:
  taskflow edit 42                  - Edit task 42 interactively
  taskflow edit 42 Buy oat milk     - Replace the text
  taskflow edit 42 --due 2h         - Move the due date (re-arms the reminder)
  taskflow edit 42 --due none       - Clear the due date`,
	Args: cobra.MinimumNArgs(1),
	RunE: withStore(func(cmd *cobra.Command, args []string, s *todo.Store) error {
		taskID, err := parseID(args[0])
		if err != nil {
			return err
		}
		task, ok := s.Task(taskID)
		if !ok {
			return fmt.Errorf("task #%d not found", taskID)
		}

		text := strings.Join(args[1:], " ")
		dueFlag, _ := cmd.Flags().GetString("due")
		if text == "" && !cmd.Flags().Changed("due") {
			return tui.RunEdit(s, task)
		}

		out := cmd.OutOrStdout()
		if cmd.Flags().Changed("due") {
			var due *time.Time
			if dueFlag != "" && !strings.EqualFold(dueFlag, "none") {
				if due, err = parser.ParseDueDateAt(dueFlag, appClock.Now()); err != nil {
					return fmt.Errorf("error parsing due date: %w", err)
				}
			}
			ch := s.SetDue(taskID, due)
			announce(out, ch)
			cue(cmd.ErrOrStderr(), s, ch, false)
		}
		if text != "" {
			ch := s.Edit(taskID, text)
			if !ch.Changed {
				fmt.Fprintln(out, "Text unchanged: new text is empty.")
			}
			announce(out, ch)
			cue(cmd.ErrOrStderr(), s, ch, false)
		}

		task, _ = s.Task(taskID)
		fmt.Fprintf(out, "✏️  Updated task #%d: %s\n", task.ID, task.Text)
		printTask(out, task)
		return nil
	}),
}

func init() {
	editCmd.Flags().StringP("due", "d", "", "New due date (30m, 2h, 3d, dd/mm/yyyy[ hh:mm]) or 'none'")
}
