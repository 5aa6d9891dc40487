package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/balkashynov/taskflow/internal/todo"
)

var categoriesCmd = &cobra.Command{
	Use:     "categories",
	Aliases: []string{"cat"},
	Short:   "List the managed categories",
	Args:    cobra.NoArgs,
	RunE: withStore(func(cmd *cobra.Command, args []string, s *todo.Store) error {
		counts := map[string]int{}
		for _, t := range s.Tasks() {
			counts[t.Category]++
		}
		out := cmd.OutOrStdout()
		for _, c := range s.Categories() {
			fmt.Fprintf(out, "%-15s %d task(s)\n", c, counts[c])
		}
		return nil
	}),
}

var categoriesAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a category",
	Args:  cobra.MinimumNArgs(1),
	RunE: withStore(func(cmd *cobra.Command, args []string, s *todo.Store) error {
		name := strings.TrimSpace(strings.Join(args, " "))
		if !s.AddCategory(name) {
			return fmt.Errorf("category '%s' is blank, reserved or already exists", name)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Added category %s\n", name)
		return nil
	}),
}

var categoriesRemoveCmd = &cobra.Command{
	Use:     "rm <name>",
	Aliases: []string{"remove"},
	Short:   "Remove a category (tasks keep their category)",
	Args:    cobra.MinimumNArgs(1),
	RunE: withStore(func(cmd *cobra.Command, args []string, s *todo.Store) error {
		name := strings.TrimSpace(strings.Join(args, " "))
		if !s.RemoveCategory(name) {
			return fmt.Errorf("category '%s' not found", name)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Removed category %s\n", name)
		return nil
	}),
}

func init() {
	categoriesCmd.AddCommand(categoriesAddCmd)
	categoriesCmd.AddCommand(categoriesRemoveCmd)
}
