package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var storyDeleteForce bool

var storyDeleteCmd = &cobra.Command{
	Use:   "delete <story-id>",
	Short: "Delete a story and its kanban symlinks",
	Long: `Remove a story file and clean up all of its kanban stage symlinks.

Prompts for confirmation unless --force is given.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		storyID := args[0]

		mgr, err := newStoryManager(storyProjectPath)
		if err != nil {
			return err
		}

		if !storyDeleteForce && !promptConfirm(fmt.Sprintf("Are you sure you want to delete story %s?", storyID)) {
			PrintInfo("Deletion cancelled.")
			return nil
		}

		msg, err := mgr.Delete(storyID)
		if err != nil {
			return err
		}

		PrintSuccess(msg)
		return nil
	},
}

func init() {
	storyDeleteCmd.Flags().BoolVarP(&storyDeleteForce, "force", "f", false, "Force deletion without confirmation")
}
