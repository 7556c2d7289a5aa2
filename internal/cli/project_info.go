package cli

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/spf13/cobra"
)

var projectInfoCmd = &cobra.Command{
	Use:   "info [path]",
	Short: "Show information about a filter project",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := "."
		if len(args) > 0 {
			path = args[0]
		}

		mgr, err := newProjectManager(path)
		if err != nil {
			return err
		}

		info := mgr.Info()
		if info == nil {
			return fmt.Errorf("no filter project found at %s", mgr.Layout().ProjectPath)
		}

		if jsonOutput {
			return outputJSON(info)
		}

		PrintSection("Filter Project")
		PrintLabelValue("Project", info.ProjectPath)
		PrintLabelValue("Filter Directory", info.FilterPath)
		PrintLabelValue("Total Stories", strconv.Itoa(info.TotalStories))
		PrintLabelValue("Created", info.CreatedAt.Format("2006-01-02 15:04:05"))

		if len(info.StageCounts) > 0 {
			fmt.Println()
			stages := make([]string, 0, len(info.StageCounts))
			for stage := range info.StageCounts {
				stages = append(stages, stage)
			}
			slices.Sort(stages)

			rows := make([][]string, 0, len(stages))
			for _, stage := range stages {
				rows = append(rows, []string{stage, strconv.Itoa(info.StageCounts[stage])})
			}
			PrintTable([]string{"Stage", "Stories"}, rows)
		}

		return nil
	},
}
