package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/balkashynov/taskflow/internal/todo"
	"github.com/balkashynov/taskflow/internal/view"
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search tasks by text",
	Long: `Search tasks by text. Matching is a case insensitive substring match
and can be combined with the category, priority and status filters of 'ls'.`,
	Args: cobra.MinimumNArgs(1),
	RunE: withStore(func(cmd *cobra.Command, args []string, s *todo.Store) error {
		query := strings.Join(args, " ")
		f, err := filterFromFlags(cmd)
		if err != nil {
			return err
		}
		f.SearchTerm = query
		tasks := view.FilteredTasks(s.Tasks(), f)

		if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
			return renderJSON(cmd.OutOrStdout(), f, tasks)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Search results for '%s' (%d found):\n", query, len(tasks))
		if len(tasks) == 0 {
			fmt.Fprintln(out, "No tasks found matching your search.")
			return nil
		}
		fmt.Fprintln(out)
		renderTable(out, tasks)
		return nil
	}),
}

func init() {
	addFilterFlags(searchCmd)
}
