package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
)

type Config struct {
	Provider     string `koanf:"provider"`
	Model        string `koanf:"model"`
	MaxTokens    int    `koanf:"max_tokens"`
	Endpoint     string `koanf:"endpoint"`
	LogLevel     string `koanf:"log_level"`
	StyleSamples int    `koanf:"style_samples"`
	MaxToolRound int    `koanf:"max_tool_rounds"`
}

const (
	DefaultProvider      = "anthropic"
	DefaultModel         = "claude-3-7-sonnet-20250219"
	DefaultOpenAIModel   = "gpt-4o"
	DefaultMaxTokens     = 16384
	DefaultLogLevel      = "warn"
	DefaultStyleSamples  = 10
	DefaultMaxToolRounds = 16

	DefaultAnthropicEndpoint = "https://api.anthropic.com"
	DefaultOpenAIEndpoint    = "https://api.openai.com/v1"
)

// Load resolves configuration with the precedence defaults < config file
// < CHRONICLER_* environment < command-line flags.
func Load(cmd *cobra.Command) (*Config, error) {
	k := koanf.New(".")

	defaults := map[string]interface{}{
		"provider":        DefaultProvider,
		"model":           "",
		"max_tokens":      DefaultMaxTokens,
		"endpoint":        "",
		"log_level":       DefaultLogLevel,
		"style_samples":   DefaultStyleSamples,
		"max_tool_rounds": DefaultMaxToolRounds,
	}
	for key, value := range defaults {
		k.Set(key, value)
	}

	configPath := ""
	if cmd != nil {
		if flag := cmd.Flags().Lookup("config"); flag != nil {
			configPath = strings.TrimSpace(flag.Value.String())
		}
	}

	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, err
		}
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			globalPath := filepath.Join(home, ".chronicler", "config.yaml")
			if err := k.Load(file.Provider(globalPath), yaml.Parser()); err != nil {
				slog.Debug("Global config not found or invalid", "path", globalPath, "error", err)
			}
		}
	}

	k.Load(env.Provider("CHRONICLER_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "CHRONICLER_"))
	}), nil)

	if cmd != nil {
		// Flag names are spelled --max-tokens style; config keys use
		// underscores.
		k.Load(posflag.ProviderWithValue(cmd.Flags(), ".", k, func(key, value string) (string, interface{}) {
			return strings.Replace(key, "-", "_", -1), value
		}), nil)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, err
	}

	if cfg.Model == "" {
		switch cfg.Provider {
		case "openai":
			cfg.Model = DefaultOpenAIModel
		default:
			cfg.Model = DefaultModel
		}
	}
	if cfg.Endpoint == "" {
		switch cfg.Provider {
		case "openai":
			cfg.Endpoint = DefaultOpenAIEndpoint
		default:
			cfg.Endpoint = DefaultAnthropicEndpoint
		}
	}

	return &cfg, nil
}
