package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Check the status of the tools filter uses",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ok, msg := newGHClient().IsInstalled()
		if !ok {
			return fmt.Errorf("%s", msg)
		}

		PrintSuccess(msg)
		return nil
	},
}
