package cli

import (
	"github.com/spf13/cobra"
)

var (
	storyCreateDescription string
	storyCreateStage       string
)

var storyCreateCmd = &cobra.Command{
	Use:   "create <title>",
	Short: "Create a new story with an auto-generated ID",
	Long: `Create a story in the project's .filter directory.

The story ID is generated from the project prefix and a sequential
counter (e.g. FILTE-1, FILTE-2); the counter is never reused, even
after a story is deleted.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		mgr, err := newStoryManager(storyProjectPath)
		if err != nil {
			return err
		}

		msg, err := mgr.Create(args[0], storyCreateDescription, storyCreateStage)
		if err != nil {
			return err
		}

		PrintSuccess(msg)
		return nil
	},
}

func init() {
	storyCreateCmd.Flags().StringVarP(&storyCreateDescription, "description", "d", "", "Story description")
	storyCreateCmd.Flags().StringVarP(&storyCreateStage, "stage", "s", "planning", "Initial kanban stage")
}
