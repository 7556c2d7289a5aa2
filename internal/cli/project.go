package cli

import (
	"github.com/spf13/cobra"
)

// projectCmd is the parent command for project lifecycle operations.
var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Manage filter projects with kanban workflow directories",
	Long: `Manage the .filter state directory of a project.

A filter project is a .filter directory holding story markdown files,
kanban stage directories, and a config.yml configuration record.`,
}

func init() {
	projectCmd.AddCommand(projectCreateCmd)
	projectCmd.AddCommand(projectDeleteCmd)
	projectCmd.AddCommand(projectInfoCmd)
}
