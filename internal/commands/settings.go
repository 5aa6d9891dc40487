package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/balkashynov/taskflow/internal/todo"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or change the theme and sound settings",
	Long: `Show the current settings, or change them with flags.

Examples:
  taskflow settings               # show
  taskflow settings --dark        # dark board theme
  taskflow settings --sound=false # silence reminder bells`,
	Args: cobra.NoArgs,
	RunE: withStore(func(cmd *cobra.Command, args []string, s *todo.Store) error {
		if cmd.Flags().Changed("dark") {
			dark, _ := cmd.Flags().GetBool("dark")
			s.SetDarkMode(dark)
		}
		if cmd.Flags().Changed("sound") {
			sound, _ := cmd.Flags().GetBool("sound")
			s.SetSoundEnabled(sound)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Dark mode: %s\n", onOff(s.DarkMode()))
		fmt.Fprintf(out, "Sound:     %s\n", onOff(s.SoundEnabled()))
		return nil
	}),
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func init() {
	settingsCmd.Flags().Bool("dark", false, "Use the dark board theme")
	settingsCmd.Flags().Bool("sound", true, "Ring the bell for reminders")
}
