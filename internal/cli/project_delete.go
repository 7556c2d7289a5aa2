package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var projectDeleteForce bool

var projectDeleteCmd = &cobra.Command{
	Use:   "delete [path]",
	Short: "Delete a filter project structure",
	Long: `Remove the .filter directory and all its contents.

Deletion is refused when the project still contains stories;
use --force to delete anyway.`,
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

		// Show story count before attempting a refusable delete.
		if info := mgr.Info(); info != nil && info.TotalStories > 0 {
			PrintWarning(fmt.Sprintf("Project contains %s", PrintCount(info.TotalStories, "story", "stories")))
			if !projectDeleteForce {
				PrintInfo("Use --force to delete anyway")
			}
		}

		msg, err := mgr.Delete(projectDeleteForce)
		if err != nil {
			return err
		}

		PrintSuccess(msg)
		return nil
	},
}

func init() {
	projectDeleteCmd.Flags().BoolVar(&projectDeleteForce, "force", false, "Delete project even if it contains stories")
}
