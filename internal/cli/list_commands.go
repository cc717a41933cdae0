// internal/cli/list_commands.go
package llmboard

import "github.com/spf13/cobra"

// listCmd represents the 'list' command group.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Group commands for listing resources",
	Long:  `The 'list' command groups subcommands that list resources related to llmboard.`,
}

// commandsCmd implements 'list commands', which prints the available
// commands and subcommands in a hierarchical, indented, two-column format.
var commandsCmd = &cobra.Command{
	Use:   "commands",
	Short: "List all commands and subcommands in two columns",
	Long:  `The 'commands' subcommand lists all commands and subcommands in a hierarchical, indented format, with the command path in the first column and its short description in the second column.`,
	Run: func(cmd *cobra.Command, args []string) {
		runListCommands(cmd.OutOrStdout(), rootCmd)
	},
}

// datasetsCmd implements 'list datasets', which prints every dataset group
// with its reference link and row count.
var datasetsCmd = &cobra.Command{
	Use:   "datasets",
	Short: "List dataset groups with their reference links",
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := loadBoard(GetConfig())
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		for _, g := range b.Datasets {
			printLabel(out, g.Name, g.URL)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.AddCommand(commandsCmd)
	listCmd.AddCommand(datasetsCmd)
}
