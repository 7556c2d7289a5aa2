package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var storyListStage string

var storyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stories, optionally filtered by stage",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		mgr, err := newStoryManager(storyProjectPath)
		if err != nil {
			return err
		}

		stories := mgr.List(storyListStage)

		if jsonOutput {
			return outputJSON(stories)
		}

		if len(stories) == 0 {
			stageMsg := ""
			if storyListStage != "" {
				stageMsg = fmt.Sprintf(" in stage '%s'", storyListStage)
			}
			PrintEmptyState(fmt.Sprintf("No stories found%s.", stageMsg))
			return nil
		}

		header := "Stories"
		if storyListStage != "" {
			header = fmt.Sprintf("Stories (stage: %s)", storyListStage)
		}
		PrintSection(header)

		for _, s := range stories {
			line := fmt.Sprintf("%s: %s", s.ID, s.Title)
			if storyListStage == "" {
				line += fmt.Sprintf(" [%s]", s.Stage)
			}
			PrintInfo(line)
		}

		fmt.Println()
		PrintInfo(fmt.Sprintf("Total: %s", PrintCount(len(stories), "story", "stories")))
		return nil
	},
}

func init() {
	storyListCmd.Flags().StringVarP(&storyListStage, "stage", "s", "", "Filter by kanban stage")
}
