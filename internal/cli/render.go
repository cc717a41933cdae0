// internal/cli/render.go
package llmboard

import (
	"bytes"
	"fmt"

	"github.com/mwiater/llmboard/internal/accordion"
	"github.com/mwiater/llmboard/internal/logging"
	"github.com/mwiater/llmboard/internal/render"
	"github.com/mwiater/llmboard/internal/util"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	renderOutput string
	renderWidth  int
)

// renderCmd implements 'render', the static export of the leaderboard.
var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the leaderboard as text, Markdown, HTML or JSON",
	Long:  `Writes the dataset tables and FAQ list once. --expand selects which FAQ answer is shown; by default every entry is collapsed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		format, err := render.ParseFormat(cfg.RenderFormat())
		if err != nil {
			return err
		}
		b, err := loadBoard(cfg)
		if err != nil {
			return err
		}
		if cfg.ExpandFAQ >= len(b.FAQs) {
			return fmt.Errorf("--expand %d is out of range: the board has %d FAQ entries", cfg.ExpandFAQ, len(b.FAQs))
		}

		opts := render.Options{NoColor: cfg.NoColor || renderOutput != "", Width: renderWidth}
		var buf bytes.Buffer
		if err := render.Write(&buf, format, b, accordion.New(cfg.ExpandFAQ), opts); err != nil {
			return fmt.Errorf("render %s: %w", format, err)
		}

		if renderOutput == "" {
			_, err := cmd.OutOrStdout().Write(buf.Bytes())
			return err
		}
		if err := util.WriteFile(renderOutput, buf.Bytes()); err != nil {
			return fmt.Errorf("write %s: %w", renderOutput, err)
		}
		logging.LogEvent("rendered %s to %s", format, renderOutput)
		printSuccess(cmd.OutOrStdout(), "Wrote %s leaderboard to %s", format, renderOutput)
		return nil
	},
}

func init() {
	renderCmd.Flags().StringP("format", "f", "text", "output format: text, markdown, html or json")
	renderCmd.Flags().Int("expand", -1, "index of the FAQ entry to show expanded (-1 for none)")
	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "", "write to this file instead of stdout")
	renderCmd.Flags().IntVar(&renderWidth, "width", 0, "wrap width for text output (0 = 80)")

	_ = viper.BindPFlag("format", renderCmd.Flags().Lookup("format"))
	_ = viper.BindPFlag("expandFaq", renderCmd.Flags().Lookup("expand"))

	rootCmd.AddCommand(renderCmd)
}
