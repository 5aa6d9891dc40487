package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/balkashynov/taskflow/internal/todo"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all tasks, achievements, streak and settings",
	Args:  cobra.NoArgs,
	RunE: withStore(func(cmd *cobra.Command, args []string, s *todo.Store) error {
		if yes, _ := cmd.Flags().GetBool("yes"); !yes {
			return errors.New("refusing to reset without --yes")
		}
		s.Reset()
		fmt.Fprintln(cmd.OutOrStdout(), "All data has been reset.")
		return nil
	}),
}

func init() {
	resetCmd.Flags().BoolP("yes", "y", false, "Confirm the reset")
}
