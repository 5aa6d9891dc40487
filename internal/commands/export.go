package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/balkashynov/taskflow/internal/todo"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export tasks, achievements and settings",
	Long: `Export the complete state as JSON or YAML, to stdout or a file.

Examples:
  taskflow export
  taskflow export --format yaml -o backup.yaml`,
	Args: cobra.NoArgs,
	RunE: withStore(func(cmd *cobra.Command, args []string, s *todo.Store) error {
		format, _ := cmd.Flags().GetString("format")
		output, _ := cmd.Flags().GetString("output")

		var w io.Writer = cmd.OutOrStdout()
		if output != "" {
			f, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", output, err)
			}
			defer f.Close()
			w = f
		}
		return exportState(w, s.Snapshot(), format)
	}),
}

func exportState(w io.Writer, state todo.State, format string) error {
	switch format {
	case "json", "":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(state); err != nil {
			return fmt.Errorf("error marshaling JSON: %w", err)
		}
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(state); err != nil {
			return fmt.Errorf("error marshaling YAML: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported format '%s'. Use: json, yaml", format)
	}
	return nil
}

func init() {
	exportCmd.Flags().StringP("format", "f", "json", "Output format: json, yaml")
	exportCmd.Flags().StringP("output", "o", "", "Write to a file instead of stdout")
}
