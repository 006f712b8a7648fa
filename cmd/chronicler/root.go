package main

import (
	"fmt"
	"os"

	"github.com/chroniclerhq/chronicler/internal/auth"
	"github.com/chroniclerhq/chronicler/internal/config"
	"github.com/chroniclerhq/chronicler/internal/logger"

	"github.com/spf13/cobra"
)

var (
	cfgFile string
	cfg     *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "chronicler",
	Short: "Chronicler writes your git commit messages",
	Long: `Chronicler turns the state of the local git tree into a commit
message by asking an LLM provider: write a new commit, fix up the last
commit's message, check it against its patch, or summarize a range for
a pull request.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cmd)
		if err != nil {
			return err
		}

		logger.Setup(cfg.LogLevel)
		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.chronicler/config.yaml)")
	rootCmd.PersistentFlags().String("provider", config.DefaultProvider, "LLM provider (anthropic, openai)")
	rootCmd.PersistentFlags().String("model", "", "model identifier")
	rootCmd.PersistentFlags().Int("max-tokens", config.DefaultMaxTokens, "maximum tokens per completion")
	rootCmd.PersistentFlags().String("endpoint", "", "provider endpoint URL")
	rootCmd.PersistentFlags().String("log-level", config.DefaultLogLevel, "log level (debug, info, warn, error)")
}

// readKey resolves the API key for the configured provider before any
// repository or network work happens.
func readKey() (string, error) {
	return auth.ReadKey(cfg.Provider)
}
