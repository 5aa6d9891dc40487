package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/balkashynov/taskflow/internal/todo"
)

var doneCmd = &cobra.Command{
	Use:     "done [task-id]",
	Aliases: []string{"undone", "toggle"},
	Short:   "Toggle a task between done and todo",
	Args:    cobra.ExactArgs(1),
	RunE: withStore(func(cmd *cobra.Command, args []string, s *todo.Store) error {
		taskID, err := parseID(args[0])
		if err != nil {
			return err
		}

		ch := s.Toggle(taskID)
		if !ch.Changed {
			return fmt.Errorf("task #%d not found", taskID)
		}

		out := cmd.OutOrStdout()
		task := ch.Task
		if task.Completed {
			fmt.Fprintf(out, "✅ Marked task #%d as done: %s\n", task.ID, task.Text)
			fmt.Fprintf(out, "Completed at: %s\n", task.CompletedAt.Format("15:04:05"))
		} else {
			fmt.Fprintf(out, "↩️  Marked task #%d back to todo: %s\n", task.ID, task.Text)
		}
		if ch.StreakBumped {
			fmt.Fprintf(out, "Streak: %d day(s)\n", ch.Streak)
		}
		announce(out, ch)
		cue(cmd.ErrOrStderr(), s, ch, task.Completed)
		return nil
	}),
}
