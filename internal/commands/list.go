package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"

	"github.com/spf13/cobra"

	"github.com/balkashynov/taskflow/internal/models"
	"github.com/balkashynov/taskflow/internal/todo"
	"github.com/balkashynov/taskflow/internal/view"
)

var listCmd = &cobra.Command{
	Use:     "ls",
	Aliases: []string{"list"},
	Short:   "List tasks",
	Long:    "List tasks with optional filters for text, category, priority and status",
	Args:    cobra.NoArgs,
	RunE: withStore(func(cmd *cobra.Command, args []string, s *todo.Store) error {
		f, err := filterFromFlags(cmd)
		if err != nil {
			return err
		}
		tasks := s.Tasks()
		filtered := view.FilteredTasks(tasks, f)

		if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
			return renderJSON(cmd.OutOrStdout(), f, filtered)
		}

		out := cmd.OutOrStdout()
		if len(tasks) == 0 {
			fmt.Fprintln(out, `No tasks found. Use 'taskflow add "task description"' to create your first task.`)
			return nil
		}
		if len(filtered) == 0 {
			fmt.Fprintln(out, "No tasks match the current filters.")
			return nil
		}
		renderTable(out, filtered)
		return nil
	}),
}

// filterFromFlags builds a view filter from the shared filter flags
func filterFromFlags(cmd *cobra.Command) (view.Filter, error) {
	search, _ := cmd.Flags().GetString("search")
	category, _ := cmd.Flags().GetString("category")
	priority, _ := cmd.Flags().GetString("priority")
	status, _ := cmd.Flags().GetString("status")

	f := view.Filter{
		SearchTerm: search,
		Category:   category,
		Priority:   models.AllPriorities,
		Status:     models.StatusAll,
	}
	if priority != "" && priority != models.AllPriorities {
		p, ok := models.ParsePriority(priority)
		if !ok {
			return f, fmt.Errorf("invalid priority '%s'. Use: all, low, normal, high", priority)
		}
		f.Priority = string(p)
	}
	if status != "" {
		st := models.StatusFilter(status)
		if !slices.Contains([]models.StatusFilter{models.StatusAll, models.StatusActive, models.StatusCompleted}, st) {
			return f, fmt.Errorf("invalid status '%s'. Use: all, active, completed", status)
		}
		f.Status = st
	}
	return f, nil
}

// renderJSON outputs tasks as JSON along with the filter that produced them
func renderJSON(w io.Writer, f view.Filter, tasks []models.Task) error {
	type listResult struct {
		Search   string              `json:"search,omitempty"`
		Category string              `json:"category,omitempty"`
		Priority string              `json:"priority"`
		Status   models.StatusFilter `json:"status"`
		Count    int                 `json:"count"`
		Tasks    []models.Task       `json:"tasks"`
	}

	jsonBytes, err := json.MarshalIndent(listResult{
		Search:   f.SearchTerm,
		Category: f.Category,
		Priority: f.Priority,
		Status:   f.Status,
		Count:    len(tasks),
		Tasks:    tasks,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("error marshaling JSON: %w", err)
	}
	fmt.Fprintln(w, string(jsonBytes))
	return nil
}

func addFilterFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("category", "c", "", "Filter by category (All for every category)")
	cmd.Flags().StringP("priority", "p", "", "Filter by priority: all, low, normal, high")
	cmd.Flags().StringP("status", "s", "", "Filter by status: all, active, completed")
	cmd.Flags().Bool("json", false, "Output as JSON")
}

func init() {
	addFilterFlags(listCmd)
	listCmd.Flags().StringP("search", "q", "", "Filter by text (case insensitive)")
}
