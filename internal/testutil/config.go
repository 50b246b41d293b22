package testutil

import (
	"testing"

	"github.com/spf13/viper"

	"github.com/lepinkainen/movieinfo/internal/config"
)

// ResetConfig resets viper and restores a clean state when the test completes.
func ResetConfig(t *testing.T) {
	t.Helper()

	viper.Reset()
	t.Cleanup(viper.Reset)
}

// SetTestConfig resets viper and installs defaults plus a test API key
// pointing at baseURL.
func SetTestConfig(t *testing.T, baseURL string) {
	t.Helper()

	ResetConfig(t)
	config.SetDefaults()
	viper.Set(config.KeyAPIKey, "test-omdb-key")
	if baseURL != "" {
		viper.Set(config.KeyBaseURL, baseURL)
	}
}
