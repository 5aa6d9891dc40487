package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/balkashynov/taskflow/internal/todo"
)

var removeCmd = &cobra.Command{
	Use:     "rm [task-id]",
	Aliases: []string{"delete"},
	Short:   "Delete a task",
	Args:    cobra.ExactArgs(1),
	RunE: withStore(func(cmd *cobra.Command, args []string, s *todo.Store) error {
		taskID, err := parseID(args[0])
		if err != nil {
			return err
		}

		ch := s.Delete(taskID)
		if !ch.Changed {
			return fmt.Errorf("task #%d not found", taskID)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "🗑️  Deleted task #%d: %s\n", ch.Task.ID, ch.Task.Text)
		return nil
	}),
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete every completed task",
	Args:  cobra.NoArgs,
	RunE: withStore(func(cmd *cobra.Command, args []string, s *todo.Store) error {
		before := len(s.Tasks())
		s.ClearCompleted()
		removed := before - len(s.Tasks())
		fmt.Fprintf(cmd.OutOrStdout(), "🧹 Cleared %d completed task(s)\n", removed)
		return nil
	}),
}
