package cli

import (
	"github.com/spf13/cobra"
)

// storyProjectPath is shared by all story subcommands.
var storyProjectPath string

// storyCmd is the parent command for story workflow operations.
var storyCmd = &cobra.Command{
	Use:   "story",
	Short: "Manage stories in the kanban workflow",
	Long: `Create, list, move, and delete stories.

Each story is a markdown file named by its auto-generated ID
(e.g. FILTE-1); its current kanban stage is the stage directory
holding its symlink.`,
}

func init() {
	storyCmd.PersistentFlags().StringVarP(&storyProjectPath, "project-path", "p", ".", "Path to the project directory")

	storyCmd.AddCommand(storyCreateCmd)
	storyCmd.AddCommand(storyDeleteCmd)
	storyCmd.AddCommand(storyListCmd)
	storyCmd.AddCommand(storyMoveCmd)
}
