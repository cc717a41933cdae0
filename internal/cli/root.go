// internal/cli/root.go
package llmboard

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/joho/godotenv"
	"github.com/mwiater/llmboard/internal/appconfig"
	"github.com/mwiater/llmboard/internal/board"
	"github.com/mwiater/llmboard/internal/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile       string
	currentConfig *appconfig.Config
	appVersion    = "dev"
	appCommit     = "none"
	appDate       = "unknown"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:           "llmboard",
	Short:         "llmboard: LLM benchmark leaderboard for the terminal",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := ensureConfigLoaded(); err != nil {
			return err
		}

		cfg := appconfig.Defaults()
		if err := viper.Unmarshal(&cfg); err != nil {
			return fmt.Errorf("unmarshal config: %w", err)
		}
		cfg.ConfigPath = viper.ConfigFileUsed()
		currentConfig = &cfg
		applyColor(cfg.NoColor)

		initLog := logging.InitQuiet
		if cfg.Debug {
			initLog = logging.Init
		}
		if err := initLog(cfg.LogFilePath()); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", appVersion, appCommit, appDate)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	_ = logging.Close()
	if err != nil {
		printFailure(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", appconfig.DefaultConfigPath, "config file (e.g., config/config.json)")

	rootCmd.PersistentFlags().Bool("debug", false, "enable debug output")
	rootCmd.PersistentFlags().Bool("noColor", false, "disable colored output")
	rootCmd.PersistentFlags().String("data", "", "board file (YAML or JSON); defaults to the built-in leaderboard")
	rootCmd.PersistentFlags().String("logFile", "", "path to the log file")

	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	_ = viper.BindPFlag("noColor", rootCmd.PersistentFlags().Lookup("noColor"))
	_ = viper.BindPFlag("dataFile", rootCmd.PersistentFlags().Lookup("data"))
	_ = viper.BindPFlag("logFile", rootCmd.PersistentFlags().Lookup("logFile"))
}

// initConfig wires the config sources: an optional .env file, LLMBOARD_*
// environment variables, and the config file resolved by appconfig.
func initConfig() {
	_ = godotenv.Load()

	viper.SetEnvPrefix("LLMBOARD")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("format", "text")
	viper.SetDefault("expandFaq", -1)

	if path := appconfig.ResolvePath(cfgFile); path != "" {
		viper.SetConfigFile(path)
	}
}

// ensureConfigLoaded reads the config file if one was resolved.
func ensureConfigLoaded() error {
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("failed to load config: %w", err)
	}
	return nil
}

// GetConfig returns the loaded application configuration for other packages.
func GetConfig() *appconfig.Config {
	if currentConfig == nil {
		cfg := appconfig.Defaults()
		return &cfg
	}
	return currentConfig
}

// SetVersionInfo allows the main package to inject build-time variables.
func SetVersionInfo(version, commit, date string) {
	appVersion = version
	appCommit = commit
	appDate = date
}

// loadBoard returns the configured board file, or the built-in leaderboard
// when none is set.
func loadBoard(cfg *appconfig.Config) (*board.Board, error) {
	if cfg.DataFile != "" {
		return board.Load(cfg.DataFile)
	}
	return board.Default()
}
