package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/balkashynov/taskflow/internal/logging"
	"github.com/balkashynov/taskflow/internal/reminder"
	"github.com/balkashynov/taskflow/internal/todo"
)

// newScheduler builds a scheduler over s using the configured timings
func newScheduler(s *todo.Store, tone reminder.Tone) *reminder.Scheduler {
	return reminder.New(s, tone,
		reminder.WithClock(appClock),
		reminder.WithInterval(cfg.PollInterval),
		reminder.WithLeadTime(cfg.LeadTime),
		reminder.WithLogger(logging.Component("reminder")),
	)
}

var snoozeCmd = &cobra.Command{
	Use:   "snooze [task-id] [minutes]",
	Short: "Push a task's due date back and re-arm its reminder",
	Long: `Push a task's due date back by the given number of minutes (default 5)
and re-arm its reminder so it fires again before the new due time.

Examples:
  taskflow snooze 42       # 5 more minutes
  taskflow snooze 42 15    # 15 more minutes`,
	Args: cobra.RangeArgs(1, 2),
	RunE: withStore(func(cmd *cobra.Command, args []string, s *todo.Store) error {
		taskID, err := parseID(args[0])
		if err != nil {
			return err
		}
		minutes := reminder.SnoozeChoices[0]
		if len(args) == 2 {
			minutes, err = strconv.Atoi(args[1])
			if err != nil || minutes < 1 {
				return fmt.Errorf("invalid minutes '%s'", args[1])
			}
		}

		task, ok := newScheduler(s, reminder.Silent{}).Snooze(taskID, minutes)
		if !ok {
			return fmt.Errorf("task #%d not found or has no due date", taskID)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "😴 Snoozed task #%d for %d minutes: %s\n", task.ID, minutes, task.Text)
		fmt.Fprintf(cmd.OutOrStdout(), "New due time: %s\n", task.DueDateTime.Format("02/01/2006 15:04"))
		return nil
	}),
}

var dismissCmd = &cobra.Command{
	Use:     "dismiss [task-id]",
	Aliases: []string{"stop"},
	Short:   "Silence a task's reminder for its current due date",
	Args:    cobra.ExactArgs(1),
	RunE: withStore(func(cmd *cobra.Command, args []string, s *todo.Store) error {
		taskID, err := parseID(args[0])
		if err != nil {
			return err
		}
		if !newScheduler(s, reminder.Silent{}).Dismiss(taskID) {
			return fmt.Errorf("task #%d not found", taskID)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "🔕 Reminder dismissed for task #%d\n", taskID)
		return nil
	}),
}

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch for due tasks and ring the terminal bell",
	Long: `Run the reminder scheduler in the foreground. Every poll interval the task
list is checked; a task becomes due one lead time before its due date. Each
reminder is printed and the bell rings for --ring before the reminder is
dismissed and the next one can fire. Stop with Ctrl+C.`,
	Args: cobra.NoArgs,
	RunE: withStore(func(cmd *cobra.Command, args []string, s *todo.Store) error {
		ring, _ := cmd.Flags().GetDuration("ring")
		out := cmd.OutOrStdout()

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return watch(ctx, s, reminder.NewBell(out, cfg.BellInterval), ring, func(r reminder.Reminder) {
			due := r.Task.DueDateTime.Sub(r.RaisedAt)
			fmt.Fprintf(out, "🔔 [%s] Task #%d due in %s: %s\n",
				r.RaisedAt.Format("15:04:05"), r.Task.ID, formatDuration(due), r.Task.Text)
		})
	}),
}

// watch runs a scheduler until ctx is done, reporting each reminder and
// dismissing it after ring
func watch(ctx context.Context, s *todo.Store, tone reminder.Tone, ring time.Duration, report func(reminder.Reminder)) error {
	sched := newScheduler(s, tone)
	if err := sched.Start(ctx); err != nil {
		return err
	}
	defer sched.Stop()

	logging.L().Infow("watching for reminders", "interval", cfg.PollInterval, "lead", cfg.LeadTime)
	for {
		select {
		case <-ctx.Done():
			return nil
		case r := <-sched.Reminders():
			report(r)
			select {
			case <-ctx.Done():
				return nil
			case <-time.After(ring):
			}
			sched.Dismiss(r.Task.ID)
		}
	}
}

// formatDuration formats a duration in a human-readable way
func formatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	if d.Hours() >= 1 {
		return fmt.Sprintf("%.1fh", d.Hours())
	} else if d.Minutes() >= 1 {
		return fmt.Sprintf("%.0fm", d.Minutes())
	}
	return fmt.Sprintf("%.0fs", d.Seconds())
}

func init() {
	watchCmd.Flags().Duration("ring", 5*time.Second, "How long the bell rings for each reminder")
}
