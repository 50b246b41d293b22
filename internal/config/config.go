// Package config resolves runtime settings from viper.
package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/lepinkainen/movieinfo/internal/omdb"
)

// Viper keys.
const (
	KeyAPIKey       = "omdb.api_key"
	KeyBaseURL      = "omdb.base_url"
	KeyPosterWidth  = "poster.width"
	KeyPosterHeight = "poster.height"
	KeyLogFile      = "log.file"
)

const (
	// DefaultPosterWidth and DefaultPosterHeight are the poster area in terminal cells.
	DefaultPosterWidth  = 32
	DefaultPosterHeight = 24
)

// Config holds the resolved settings.
type Config struct {
	APIKey       string
	BaseURL      string
	PosterWidth  int // cells
	PosterHeight int // cells
	LogFile      string
}

// SetDefaults registers default values for every key.
func SetDefaults() {
	viper.SetDefault(KeyBaseURL, omdb.DefaultBaseURL)
	viper.SetDefault(KeyPosterWidth, DefaultPosterWidth)
	viper.SetDefault(KeyPosterHeight, DefaultPosterHeight)
}

// Load reads the current viper state into a Config.
func Load() Config {
	return Config{
		APIKey:       viper.GetString(KeyAPIKey),
		BaseURL:      viper.GetString(KeyBaseURL),
		PosterWidth:  viper.GetInt(KeyPosterWidth),
		PosterHeight: viper.GetInt(KeyPosterHeight),
		LogFile:      viper.GetString(KeyLogFile),
	}
}

// Validate checks that the settings needed for a lookup are present.
func (c Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("OMDB API key is required (provide via --api-key flag, OMDB_API_KEY or %s in config)", KeyAPIKey)
	}
	if c.PosterWidth <= 0 || c.PosterHeight <= 0 {
		return fmt.Errorf("poster area must be positive, got %dx%d", c.PosterWidth, c.PosterHeight)
	}
	return nil
}

// PosterBox returns the poster area in pixels. Each cell holds two pixel rows.
func (c Config) PosterBox() (width, height int) {
	return c.PosterWidth, c.PosterHeight * 2
}
