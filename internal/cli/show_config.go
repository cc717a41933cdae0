// internal/cli/show_config.go
package llmboard

import (
	"github.com/k0kubun/pp"
	"github.com/mwiater/llmboard/internal/appconfig"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// showConfigCmd implements 'show config', which prints the merged
// configuration after file, environment and flags have been applied.
var showConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Show config settings",
	Long:  `Show config settings ensuring that the JSON configs are loaded properly and overridden by environment variables and flags accordingly.`,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		cfg := GetConfig()
		appconfig.ShowConfig(out, viper.ConfigFileUsed(), cfg)
		if cfg.Debug {
			_, _ = pp.Fprintln(out, cfg)
		}
	},
}

func init() {
	showCmd.AddCommand(showConfigCmd)
}
