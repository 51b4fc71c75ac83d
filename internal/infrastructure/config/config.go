package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the client.
type Config struct {
	API     APIConfig     `mapstructure:"api"`
	Storage StorageConfig `mapstructure:"storage"`
	Guest   GuestConfig   `mapstructure:"guest"`
	Log     LogConfig     `mapstructure:"log"`
}

// APIConfig holds backend connection settings.
type APIConfig struct {
	// BaseURL is the backend's /api base path.
	BaseURL string `mapstructure:"base_url"`
	// Timeout bounds each request; zero means none, matching the web
	// client's bare fetch.
	Timeout time.Duration `mapstructure:"timeout"`
}

// StorageConfig holds local file locations.
type StorageConfig struct {
	TokenFile   string `mapstructure:"token_file"`
	HistoryFile string `mapstructure:"history_file"`
}

// GuestConfig tunes the anonymous-usage nudge.
type GuestConfig struct {
	LookupCap int `mapstructure:"lookup_cap"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from file and environment variables.
func Load() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	setDefaults()

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	dataDir := defaultDataDir()

	viper.SetDefault("api.base_url", "http://localhost:8080/api")
	viper.SetDefault("api.timeout", time.Duration(0))

	viper.SetDefault("storage.token_file", filepath.Join(dataDir, "token.json"))
	viper.SetDefault("storage.history_file", filepath.Join(dataDir, "history.db"))

	viper.SetDefault("guest.lookup_cap", 5)

	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.format", "text")
}

func defaultDataDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return ".vocabcli"
	}
	return filepath.Join(base, "vocabcli")
}
