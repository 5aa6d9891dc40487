package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/balkashynov/taskflow/internal/models"
	"github.com/balkashynov/taskflow/internal/parser"
	"github.com/balkashynov/taskflow/internal/todo"
	"github.com/balkashynov/taskflow/internal/tui"
)

var addCmd = &cobra.Command{
	Use:   "add [task description]",
	Short: "Add a new task",
	Long: `Add a new task with optional metadata.

Modes:
  Interactive: taskflow add (no arguments)
  Quick: taskflow add "Task text" (with optional flags)
  Smart parsing: taskflow add "Buy milk #Shopping +high due:30m"

Smart parsing syntax:
  #Category   - Category (Work, Personal, Shopping, ...)
  +priority   - Priority (low/normal/high or 1/2/3)
  due:30m     - Due date (30m, 2h, 3d, 1w, dd/mm/yyyy, dd/mm/yyyy@hh:mm)

Flags take precedence over smart syntax.`,
	Args: cobra.ArbitraryArgs,
	RunE: withStore(func(cmd *cobra.Command, args []string, s *todo.Store) error {
		if len(args) == 0 {
			return tui.RunAdd(s, "")
		}

		parsed := parser.ParseTitle(strings.Join(args, " "), appClock.Now())
		if len(parsed.Errors) > 0 {
			fmt.Fprintf(cmd.ErrOrStderr(), "⚠️  Found issues with parsing: %s\n", strings.Join(parsed.Errors, ", "))
			fmt.Fprintln(cmd.ErrOrStderr(), "Opening interactive mode for confirmation...")
			return tui.RunAdd(s, strings.Join(args, " "))
		}
		return runDirectAdd(cmd, s, parsed)
	}),
}

// runDirectAdd creates the task without a TUI
func runDirectAdd(cmd *cobra.Command, s *todo.Store, parsed parser.ParsedTask) error {
	priority := parsed.Priority
	category := parsed.Category
	dueDate := parsed.DueDate

	if flagCategory, _ := cmd.Flags().GetString("category"); flagCategory != "" {
		category = flagCategory
	}
	if flagPriority, _ := cmd.Flags().GetString("priority"); flagPriority != "" {
		p, ok := models.ParsePriority(flagPriority)
		if !ok {
			return fmt.Errorf("invalid priority '%s'. Use: low, normal, high, 1, 2, or 3", flagPriority)
		}
		priority = p
	}
	if flagDue, _ := cmd.Flags().GetString("due"); flagDue != "" {
		d, err := parser.ParseDueDateAt(flagDue, appClock.Now())
		if err != nil {
			return fmt.Errorf("error parsing due date: %w", err)
		}
		dueDate = d
	}

	ch := s.Add(parsed.Text, priority, category, dueDate)
	out := cmd.OutOrStdout()
	if !ch.Changed {
		fmt.Fprintln(out, "Nothing added: task text is empty.")
		return nil
	}

	fmt.Fprintf(out, "Created task #%d: %s\n", ch.Task.ID, ch.Task.Text)
	printTask(out, *ch.Task)
	announce(out, ch)
	cue(cmd.ErrOrStderr(), s, ch, true)
	return nil
}

func init() {
	addCmd.Flags().StringP("category", "c", "", "Category (default Personal)")
	addCmd.Flags().StringP("priority", "p", "", "Priority: low, normal, high, or 1-3")
	addCmd.Flags().StringP("due", "d", "", "Due date: 30m, 2h, 3d, 1w, dd/mm/yyyy[ hh:mm]")
}
