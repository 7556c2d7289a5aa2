package cli

import (
	"github.com/spf13/cobra"
)

var storyMoveCmd = &cobra.Command{
	Use:   "move <story-id> <target-stage>",
	Short: "Move a story to a different kanban stage",
	Long: `Relocate a story's kanban symlink to the target stage.

The story is removed from every stage it currently appears in, so a
story is always in exactly one stage afterwards.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		mgr, err := newStoryManager(storyProjectPath)
		if err != nil {
			return err
		}

		msg, err := mgr.Move(args[0], args[1])
		if err != nil {
			return err
		}

		PrintSuccess(msg)
		return nil
	},
}
