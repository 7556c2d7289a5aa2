package cli

import (
	"github.com/spf13/cobra"
)

var projectCreateCmd = &cobra.Command{
	Use:   "create [path]",
	Short: "Create a new filter project structure",
	Long: `Create a .filter directory with kanban workflow directories.

This creates:
  - stories/ for markdown story files
  - kanban/ with planning, in-progress, testing, pr, complete stages
  - config.yml with the project name, story prefix, and stage list
  - README.md describing the layout`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := "."
		if len(args) > 0 {
			path = args[0]
		}

		mgr, err := newProjectManager(path)
		if err != nil {
			return err
		}

		msg, err := mgr.Create()
		if err != nil {
			return err
		}

		PrintSuccess(msg)
		return nil
	},
}
