package auth

import (
	"os"
	"path/filepath"
	"testing"

	chroniclerErrors "github.com/chroniclerhq/chronicler/internal/errors"

	"github.com/stretchr/testify/require"
)

func TestReadKeyFromFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("ANTHROPIC_API_KEY", "")

	dir := filepath.Join(home, ".anthropic")
	require.NoError(t, os.MkdirAll(dir, 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "key"), []byte("sk-test-123\n"), 0o600))

	key, err := ReadKey("anthropic")
	require.NoError(t, err)
	require.Equal(t, "sk-test-123", key)
}

func TestReadKeyEnvWins(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("OPENAI_API_KEY", "sk-env")

	key, err := ReadKey("openai")
	require.NoError(t, err)
	require.Equal(t, "sk-env", key)
}

func TestReadKeyMissingFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("ANTHROPIC_API_KEY", "")

	_, err := ReadKey("anthropic")
	require.ErrorIs(t, err, chroniclerErrors.ErrCredentialMissing)
}

func TestReadKeyEmptyFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("ANTHROPIC_API_KEY", "")

	dir := filepath.Join(home, ".anthropic")
	require.NoError(t, os.MkdirAll(dir, 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "key"), []byte("  \n"), 0o600))

	_, err := ReadKey("anthropic")
	require.ErrorIs(t, err, chroniclerErrors.ErrCredentialMissing)
}
