// internal/cli/open.go
package llmboard

import (
	"fmt"

	"github.com/mwiater/llmboard/internal/board"
	"github.com/mwiater/llmboard/internal/browser"
	"github.com/spf13/cobra"
)

// openCmd represents the 'open' command group for external links.
var openCmd = &cobra.Command{
	Use:   "open",
	Short: "Open leaderboard links in the browser",
	Long:  `The 'open' command groups subcommands that hand one of the page's external links to the default browser.`,
}

// openSubmitCmd implements 'open submit'.
var openSubmitCmd = &cobra.Command{
	Use:   "submit",
	Short: "Open the model submission form",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := loadBoard(GetConfig())
		if err != nil {
			return err
		}
		browser.NewDispatcher(newOpener()).OpenSubmission(b)
		printLabel(cmd.OutOrStdout(), "Opening", b.SubmitURL())
		return nil
	},
}

// openDatasetCmd implements 'open dataset <name>'.
var openDatasetCmd = &cobra.Command{
	Use:   "dataset <name>",
	Short: "Open a dataset's reference page",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := loadBoard(GetConfig())
		if err != nil {
			return err
		}
		g, ok := b.Dataset(args[0])
		if !ok {
			return fmt.Errorf("%w: %q (see 'llmboard list datasets')", board.ErrDatasetNotFound, args[0])
		}
		browser.NewDispatcher(newOpener()).OpenDataset(g)
		printLabel(cmd.OutOrStdout(), "Opening", g.URL)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(openCmd)
	openCmd.AddCommand(openSubmitCmd)
	openCmd.AddCommand(openDatasetCmd)
}
