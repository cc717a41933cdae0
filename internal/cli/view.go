// internal/cli/view.go
package llmboard

import (
	"github.com/mwiater/llmboard/internal/browser"
	"github.com/mwiater/llmboard/internal/logging"
	"github.com/mwiater/llmboard/internal/tui"
	"github.com/spf13/cobra"
)

// runView starts the interactive view; tests replace it.
var runView = tui.Run

// newOpener returns the opener used for external links; tests replace it.
var newOpener = func() browser.Opener {
	return browser.NewSystemOpener()
}

// viewCmd implements 'view', the interactive leaderboard.
var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Browse the leaderboard and FAQs interactively",
	Long:  `Opens a full-screen view of every dataset table and the FAQ list. Move with the arrow keys, press enter to open a link in the browser or to expand an FAQ answer.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		b, err := loadBoard(cfg)
		if err != nil {
			return err
		}
		if err := logging.InitQuiet(cfg.LogFilePath()); err != nil {
			return err
		}
		logging.LogEvent("view started: %d datasets, %d FAQ entries", len(b.Datasets), len(b.FAQs))

		dispatcher := browser.NewDispatcher(newOpener())
		return runView(cmd.Context(), b, dispatcher, tui.Options{NoColor: cfg.NoColor})
	},
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
