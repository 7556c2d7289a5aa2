package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var cloneCmd = &cobra.Command{
	Use:   "clone <url> [dest]",
	Short: "Clone a repository using the GitHub CLI",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		dest := "."
		if len(args) > 1 {
			dest = args[1]
		}

		ok, msg := newGHClient().Clone(args[0], dest)
		if !ok {
			return fmt.Errorf("%s", msg)
		}

		PrintSuccess(msg)
		return nil
	},
}
