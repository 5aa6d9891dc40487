package commands

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/balkashynov/taskflow/internal/todo"
	"github.com/balkashynov/taskflow/internal/view"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show progress, streak and achievement count",
	Args:  cobra.NoArgs,
	RunE: withStore(func(cmd *cobra.Command, args []string, s *todo.Store) error {
		st := view.ComputeStats(s.Tasks(), appClock.Now())
		out := cmd.OutOrStdout()

		fmt.Fprintf(out, "Total:      %d\n", st.Total)
		fmt.Fprintf(out, "Completed:  %d\n", st.CompletedCount)
		fmt.Fprintf(out, "Active:     %d\n", st.ActiveCount)
		fmt.Fprintf(out, "Upcoming:   %d\n", st.Upcoming)
		fmt.Fprintf(out, "Progress:   %s %d%%\n", progressBar(st.ProgressPercentage, 20), st.ProgressPercentage)
		fmt.Fprintf(out, "Streak:     %d day(s)\n", s.Streak())
		fmt.Fprintf(out, "Achievements: %d/%d\n", len(s.Achievements()), len(view.Catalog))
		return nil
	}),
}

var achievementsCmd = &cobra.Command{
	Use:   "achievements",
	Short: "List achievements and which ones are unlocked",
	Args:  cobra.NoArgs,
	RunE: withStore(func(cmd *cobra.Command, args []string, s *todo.Store) error {
		unlocked := map[string]time.Time{}
		for _, a := range s.Achievements() {
			unlocked[a.ID] = a.UnlockedAt
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Achievements (%d/%d unlocked)\n\n", len(unlocked), len(view.Catalog))
		for _, a := range view.Catalog {
			if at, ok := unlocked[a.ID]; ok {
				fmt.Fprintf(out, "%s  %-20s %s (unlocked %s)\n", a.Icon, a.Title, a.Description, at.Local().Format("02/01/2006"))
			} else {
				fmt.Fprintf(out, "🔒  %-20s %s\n", a.Title, a.Description)
			}
		}
		return nil
	}),
}

var weekCmd = &cobra.Command{
	Use:   "week",
	Short: "Show this week's completions by category",
	Long: `Show a table of tasks completed this calendar week, grouped by category
and weekday.

Example output:
  Category        Mon  Tue  Wed  Thu  Fri  Sat  Sun  Total
  Work              2    3    1    -    -    -    -      6
  Shopping          -    1    -    -    -    -    -      1
  Total             2    4    1    0    0    0    0      7`,
	Args: cobra.NoArgs,
	RunE: withStore(func(cmd *cobra.Command, args []string, s *todo.Store) error {
		w := view.WeekSummary(s.Tasks(), appClock.Now())
		out := cmd.OutOrStdout()
		if w.Total == 0 {
			fmt.Fprintln(out, "No tasks completed this week.")
			return nil
		}
		displayWeek(out, w)
		return nil
	}),
}

// displayWeek outputs the formatted weekly table
func displayWeek(out io.Writer, w view.Week) {
	nameWidth := 15
	for _, r := range w.Rows {
		if len(r.Category) > nameWidth {
			nameWidth = len(r.Category)
		}
	}
	if nameWidth > 30 {
		nameWidth = 30
	}
	dayColumnWidth := 5
	totalColumnWidth := 7

	separator := func() {
		fmt.Fprint(out, strings.Repeat("-", nameWidth))
		for range view.DayNames {
			fmt.Fprint(out, "  "+strings.Repeat("-", dayColumnWidth-2))
		}
		fmt.Fprintln(out, "  "+strings.Repeat("-", totalColumnWidth-2))
	}

	fmt.Fprintf(out, "%-*s", nameWidth, "Category")
	for _, name := range view.DayNames {
		fmt.Fprintf(out, "  %*s", dayColumnWidth-2, name)
	}
	fmt.Fprintf(out, "  %*s\n", totalColumnWidth-2, "Total")
	separator()

	for _, r := range w.Rows {
		fmt.Fprintf(out, "%-*s", nameWidth, truncate(r.Category, nameWidth))
		for _, n := range r.PerDay {
			if n > 0 {
				fmt.Fprintf(out, "  %*d", dayColumnWidth-2, n)
			} else {
				fmt.Fprintf(out, "  %*s", dayColumnWidth-2, "-")
			}
		}
		fmt.Fprintf(out, "  %*d\n", totalColumnWidth-2, r.Total)
	}

	separator()
	fmt.Fprintf(out, "%-*s", nameWidth, "Total")
	for _, n := range w.DayTotals {
		fmt.Fprintf(out, "  %*d", dayColumnWidth-2, n)
	}
	fmt.Fprintf(out, "  %*d\n", totalColumnWidth-2, w.Total)

	fmt.Fprintf(out, "\nWeek of %s to %s\n",
		w.Start.Format("Jan 2"),
		w.Start.AddDate(0, 0, 6).Format("Jan 2, 2006"))
}

func progressBar(percent, width int) string {
	filled := percent * width / 100
	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", width-filled) + "]"
}
