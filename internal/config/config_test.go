package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

func testCommand() *cobra.Command {
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().String("config", "", "")
	cmd.Flags().String("provider", DefaultProvider, "")
	cmd.Flags().String("model", "", "")
	cmd.Flags().Int("max-tokens", DefaultMaxTokens, "")
	cmd.Flags().String("endpoint", "", "")
	cmd.Flags().String("log-level", DefaultLogLevel, "")
	return cmd
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load(nil)
	require.NoError(t, err)
	require.Equal(t, DefaultProvider, cfg.Provider)
	require.Equal(t, DefaultModel, cfg.Model)
	require.Equal(t, DefaultMaxTokens, cfg.MaxTokens)
	require.Equal(t, DefaultAnthropicEndpoint, cfg.Endpoint)
	require.Equal(t, DefaultStyleSamples, cfg.StyleSamples)
	require.Equal(t, DefaultMaxToolRounds, cfg.MaxToolRound)
}

func TestLoadProviderDefaultsFollowProvider(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("CHRONICLER_PROVIDER", "openai")

	cfg, err := Load(nil)
	require.NoError(t, err)
	require.Equal(t, "openai", cfg.Provider)
	require.Equal(t, DefaultOpenAIModel, cfg.Model)
	require.Equal(t, DefaultOpenAIEndpoint, cfg.Endpoint)
}

func TestLoadFlagsWin(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("CHRONICLER_MODEL", "from-env")

	cmd := testCommand()
	require.NoError(t, cmd.Flags().Set("model", "from-flag"))
	require.NoError(t, cmd.Flags().Set("max-tokens", "2048"))

	cfg, err := Load(cmd)
	require.NoError(t, err)
	require.Equal(t, "from-flag", cfg.Model)
	require.Equal(t, 2048, cfg.MaxTokens)
}

func TestLoadConfigFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("model: from-file\nmax_tokens: 4096\n"), 0o600))

	cmd := testCommand()
	require.NoError(t, cmd.Flags().Set("config", path))

	cfg, err := Load(cmd)
	require.NoError(t, err)
	require.Equal(t, "from-file", cfg.Model)
	require.Equal(t, 4096, cfg.MaxTokens)
}

func TestLoadGlobalConfigFromHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".chronicler")
	require.NoError(t, os.MkdirAll(dir, 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("provider: openai\n"), 0o600))

	cfg, err := Load(nil)
	require.NoError(t, err)
	require.Equal(t, "openai", cfg.Provider)
}
