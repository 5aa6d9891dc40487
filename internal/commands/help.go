package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

var helpCmd = &cobra.Command{
	Use:   "help",
	Short: "Show comprehensive help for taskflow",
	Long:  `Display detailed help for all taskflow commands and flags.`,
	Run: func(cmd *cobra.Command, args []string) {
		showCustomHelp(cmd.OutOrStdout())
	},
}

func showCustomHelp(w io.Writer) {
	fmt.Fprint(w, `
 _            _     __ _
| |_ __ _ ___| | __/ _| | _____      __
| __/ _' / __| |/ / |_| |/ _ \ \ /\ / /
| || (_| \__ \   <|  _| | (_) \ V  V /
 \__\__,_|___/_|\_\_| |_|\___/ \_/\_/

taskflow - terminal todo list with reminders and achievements

COMMANDS:

  add <task>              Create a new task with smart parsing
    -c, --category        Category (default Personal)
    -p, --priority        Priority: low|normal|high
    -d, --due             Due date (30m, 2h, 3d, 1w, dd/mm/yyyy[ hh:mm])

    Smart syntax:
      #Category     Set category
      +priority     Set priority (low/normal/high)
      due:30m       Set due date (30 minutes from now)

    Example:
      taskflow add "Buy milk #Shopping +high due:30m"

  ls                      List tasks
    -q, --search          Filter by text
    -c, --category        Filter by category
    -p, --priority        Filter by priority: all|low|normal|high
    -s, --status          Filter by status: all|active|completed
    --json                JSON output

  search <query>          Search tasks by text (same filters as ls)
  done <id>               Toggle a task between done and todo
  edit <id> [text]        Edit a task's text
    -d, --due             New due date, or 'none' to clear
  rm <id>                 Delete a task
  clear                   Delete every completed task

  snooze <id> [minutes]   Push the due date back (default 5 minutes)
  dismiss <id>            Silence the reminder for the current due date
  watch                   Ring the bell for due tasks until Ctrl+C
    --ring                How long each reminder rings

  stats                   Progress, streak and achievement count
  achievements            Unlocked and locked achievements
  week                    This week's completions by category
  categories              List categories
    add <name>            Add a category
    rm <name>             Remove a category
  settings                Show settings
    --dark                Dark board theme
    --sound               Reminder bell on/off
  export                  Export everything
    -f, --format          json|yaml
    -o, --output          Write to a file
  reset --yes             Delete all data

  board                   Interactive board
    Quick actions:
      ↑/↓           Navigate tasks
      /             Search
      c / p / f     Cycle category / priority / status filter
      a             Add a task
      e             Edit selected task
      space / d     Toggle done
      x             Delete
      C             Clear completed
      u / r         Undo / redo
      s             Sound on/off
      q             Quit

  help                    Show this help
  version                 Show version information

GLOBAL FLAGS:
  --data-dir              Data directory (default ~/.taskflow)
  --db                    Database path
  --ephemeral             Keep state in memory only
  -v, --verbose           Log to stderr
  --log-level             debug|info|warn|error

Settings can also come from ~/.taskflow/config.yaml or TASKFLOW_* variables.

`)
}
