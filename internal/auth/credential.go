// Package auth resolves the provider API key from the conventional
// per-user key file, read once at startup.
package auth

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	chroniclerErrors "github.com/chroniclerhq/chronicler/internal/errors"
)

// envVar maps a provider name to its conventional API key variable.
func envVar(provider string) string {
	return strings.ToUpper(provider) + "_API_KEY"
}

// ReadKey returns the API key for the given provider. The environment
// variable wins; otherwise the key is read from <home>/.<provider>/key.
// An absent or empty key is a startup-fatal ErrCredentialMissing.
func ReadKey(provider string) (string, error) {
	if key := strings.TrimSpace(os.Getenv(envVar(provider))); key != "" {
		return key, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("%w: resolve home directory: %v", chroniclerErrors.ErrCredentialMissing, err)
	}

	keyPath := filepath.Join(home, "."+provider, "key")
	data, err := os.ReadFile(keyPath)
	if err != nil {
		return "", fmt.Errorf("%w: read %s: %v", chroniclerErrors.ErrCredentialMissing, keyPath, err)
	}

	key := strings.TrimSpace(string(data))
	if key == "" {
		return "", fmt.Errorf("%w: %s is empty", chroniclerErrors.ErrCredentialMissing, keyPath)
	}
	return key, nil
}
