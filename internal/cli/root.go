package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	jsonOutput bool
	verbose    bool

	// Colors for help output sections
	groupTitleColor   = color.New(color.FgCyan, color.Bold)
	sectionTitleColor = color.New(color.FgBlue, color.Bold)
)

// rootCmd is the root command for filter.
var rootCmd = &cobra.Command{
	Use:     "filter",
	Version: "dev",
	Short:   "Filesystem-backed kanban board for project stories",
	Long: `filter overlays a lightweight kanban workflow on top of a directory tree.

Stories are plain markdown files under .filter/stories, and their kanban
stage is recorded by a symlink under .filter/kanban/<stage> - no server,
no database.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
}

func SetVersion(v string) {
	if v == "" {
		return
	}
	rootCmd.Version = v
	rootCmd.SetVersionTemplate("{{.Version}}\n")
}

// groupedHelpFunc renders help with commands listed under colored group
// titles instead of cobra's single flat list.
func groupedHelpFunc(cmd *cobra.Command, args []string) {
	var b strings.Builder

	if cmd.Long != "" {
		fmt.Fprintf(&b, "%s\n\n", cmd.Long)
	}
	fmt.Fprintf(&b, "%s\n  %s\n\n", sectionTitleColor.Sprint("Usage:"), cmd.UseLine())

	for _, group := range cmd.Groups() {
		fmt.Fprintf(&b, "%s\n", groupTitleColor.Sprint(group.Title))
		writeCommandLines(&b, cmd, group.ID)
		b.WriteString("\n")
	}

	if hasUngroupedCommands(cmd) {
		fmt.Fprintf(&b, "%s\n", sectionTitleColor.Sprint("Additional Commands:"))
		writeCommandLines(&b, cmd, "")
		b.WriteString("\n")
	}

	if cmd.HasAvailableLocalFlags() || cmd.HasAvailablePersistentFlags() {
		fmt.Fprintf(&b, "%s\n", sectionTitleColor.Sprint("Flags:"))
		b.WriteString(cmd.LocalFlags().FlagUsages())
		b.WriteString(cmd.InheritedFlags().FlagUsages())
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "Use \"%s [command] --help\" for more information about a command.\n", cmd.CommandPath())

	fmt.Fprint(cmd.OutOrStdout(), b.String())
}

func writeCommandLines(b *strings.Builder, cmd *cobra.Command, groupID string) {
	for _, c := range cmd.Commands() {
		if c.GroupID == groupID && !c.Hidden {
			fmt.Fprintf(b, "  %-11s %s\n", c.Name(), c.Short)
		}
	}
}

func hasUngroupedCommands(cmd *cobra.Command) bool {
	for _, c := range cmd.Commands() {
		if c.GroupID == "" && !c.Hidden {
			return true
		}
	}
	return false
}

func init() {
	rootCmd.SetHelpFunc(groupedHelpFunc)

	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddGroup(&cobra.Group{
		ID:    "project-management",
		Title: "Project Management:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "story-workflow",
		Title: "Story Workflow:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "repo-tooling",
		Title: "Repository Tooling:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "cli-tooling",
		Title: "CLI & Tooling:",
	})

	versionCmd := &cobra.Command{
		Use:     "version",
		Short:   "Print the filter CLI version",
		Args:    cobra.NoArgs,
		GroupID: "cli-tooling",
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintln(os.Stdout, rootCmd.Version)
		},
	}
	rootCmd.AddCommand(versionCmd)

	helpCmd := &cobra.Command{
		Use:     "help [command]",
		Short:   "Help about any command",
		GroupID: "cli-tooling",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Root().Help()
		},
	}
	rootCmd.SetHelpCommand(helpCmd)

	completionCmd := &cobra.Command{
		Use:     "completion",
		Short:   "Generate the autocompletion script for the specified shell",
		GroupID: "cli-tooling",
		Long: `Generate the autocompletion script for filter for the specified shell.
See each sub-command's help for details on how to use the generated script.`,
	}
	shells := map[string]func(*cobra.Command) error{
		"bash": func(c *cobra.Command) error { return c.Root().GenBashCompletion(os.Stdout) },
		"zsh":  func(c *cobra.Command) error { return c.Root().GenZshCompletion(os.Stdout) },
		"fish": func(c *cobra.Command) error { return c.Root().GenFishCompletion(os.Stdout, true) },
		"powershell": func(c *cobra.Command) error {
			return c.Root().GenPowerShellCompletionWithDesc(os.Stdout)
		},
	}
	for shell, gen := range shells {
		completionCmd.AddCommand(&cobra.Command{
			Use:                   shell,
			Short:                 "Generate the autocompletion script for " + shell,
			DisableFlagsInUseLine: true,
			RunE: func(cmd *cobra.Command, args []string) error {
				return gen(cmd)
			},
		})
	}
	rootCmd.AddCommand(completionCmd)

	projectCmd.GroupID = "project-management"
	rootCmd.AddCommand(projectCmd)

	storyCmd.GroupID = "story-workflow"
	rootCmd.AddCommand(storyCmd)

	cloneCmd.GroupID = "repo-tooling"
	statusCmd.GroupID = "repo-tooling"
	rootCmd.AddCommand(cloneCmd)
	rootCmd.AddCommand(statusCmd)
}

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}
