package commands

import (
	"github.com/spf13/cobra"

	"github.com/balkashynov/taskflow/internal/reminder"
	"github.com/balkashynov/taskflow/internal/todo"
	"github.com/balkashynov/taskflow/internal/tui"
)

var boardCmd = &cobra.Command{
	Use:     "board",
	Aliases: []string{"ui"},
	Short:   "Open the interactive task board",
	Long: `Open the interactive board: browse, filter, add, edit and complete tasks,
undo and redo changes, and answer reminders as they come due.

Keys:
  ↑/↓ navigate   / search   c category   p priority   f status
  a add   e edit   space/d toggle   x delete   C clear completed
  u undo   r redo   s sound   q quit`,
	Args: cobra.NoArgs,
	RunE: withStore(func(cmd *cobra.Command, args []string, s *todo.Store) error {
		sched := newScheduler(s, reminder.NewBell(cmd.ErrOrStderr(), cfg.BellInterval))
		return tui.RunBoard(cmd.Context(), s, sched, appClock)
	}),
}
