// internal/cli/validate.go
package llmboard

import (
	"github.com/mwiater/llmboard/internal/board"
	"github.com/spf13/cobra"
)

// validateCmd implements 'validate [file]', which checks a board file's
// shape and reports what it contains.
var validateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Check a board file and summarize its contents",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := GetConfig().DataFile
		if len(args) == 1 {
			path = args[0]
		}

		var (
			b   *board.Board
			err error
		)
		if path == "" {
			path = "(built-in)"
			b, err = board.Default()
		} else {
			b, err = board.Load(path)
		}
		if err != nil {
			return err
		}

		printSuccess(cmd.OutOrStdout(), "%s: %d datasets, %d results, %d FAQ entries", path, len(b.Datasets), b.RowCount(), len(b.FAQs))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
