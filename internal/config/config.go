package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration
type Config struct {
	// Genius API credentials and endpoint overrides
	Genius GeniusConfig

	// Path to the lookup history database
	// Default: ~/.local/share/genius/history.db
	HistoryDB string

	// HTTP timeout for CLI requests (in seconds, 0 disables it)
	Timeout int

	// Column width for titles in search output
	// Default: 40
	TitleWidth int
}

// GeniusConfig holds Genius specific configuration
type GeniusConfig struct {
	ClientID     string
	ClientSecret string
	AccessToken  string
	BaseURL      string
	UserAgent    string
}

// Load reads configuration from file and environment
func Load() (*Config, error) {
	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	// Config file locations (in order of precedence)
	configDir := getConfigDir()
	v.AddConfigPath(configDir)
	v.AddConfigPath(".")

	// Set defaults
	v.SetDefault("history_db", filepath.Join(getDataDir(), "history.db"))
	v.SetDefault("timeout", 10)
	v.SetDefault("title_width", 40)

	// Read config file (optional - don't fail if missing)
	_ = v.ReadInConfig()

	// Read from environment variables, GENIUS_CLIENT_ID -> genius.client_id
	v.SetEnvPrefix("GENIUS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	_ = v.BindEnv("genius.client_id", "GENIUS_CLIENT_ID")
	_ = v.BindEnv("genius.client_secret", "GENIUS_CLIENT_SECRET")
	_ = v.BindEnv("genius.access_token", "GENIUS_ACCESS_TOKEN")
	_ = v.BindEnv("genius.base_url", "GENIUS_BASE_URL")
	_ = v.BindEnv("genius.user_agent", "GENIUS_USER_AGENT")

	// Map config to struct
	cfg := &Config{
		HistoryDB:  v.GetString("history_db"),
		Timeout:    v.GetInt("timeout"),
		TitleWidth: v.GetInt("title_width"),
		Genius: GeniusConfig{
			ClientID:     v.GetString("genius.client_id"),
			ClientSecret: v.GetString("genius.client_secret"),
			AccessToken:  v.GetString("genius.access_token"),
			BaseURL:      v.GetString("genius.base_url"),
			UserAgent:    v.GetString("genius.user_agent"),
		},
	}

	return cfg, nil
}

// getConfigDir returns the configuration directory path
// Creates the directory if it doesn't exist
func getConfigDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "."
	}

	configDir := filepath.Join(homeDir, ".config", "genius")

	// Create config directory if it doesn't exist
	_ = os.MkdirAll(configDir, 0755)

	return configDir
}

// getDataDir returns the data directory path without creating it
func getDataDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(homeDir, ".local", "share", "genius")
}

// GetConfigDir returns the configuration directory path (public helper)
func GetConfigDir() string {
	return getConfigDir()
}

// HasCredentials reports whether both client credentials are set
func (c *Config) HasCredentials() bool {
	return c.Genius.ClientID != "" && c.Genius.ClientSecret != ""
}

// Save writes configuration to file
func (c *Config) Save() error {
	return c.SaveTo(filepath.Join(getConfigDir(), "config.yaml"))
}

// SaveTo writes configuration to the given file
func (c *Config) SaveTo(configFile string) error {
	v := viper.New()

	// Set values in viper
	v.Set("history_db", c.HistoryDB)
	v.Set("timeout", c.Timeout)
	v.Set("title_width", c.TitleWidth)
	v.Set("genius.client_id", c.Genius.ClientID)
	v.Set("genius.client_secret", c.Genius.ClientSecret)
	v.Set("genius.access_token", c.Genius.AccessToken)
	if c.Genius.BaseURL != "" {
		v.Set("genius.base_url", c.Genius.BaseURL)
	}
	if c.Genius.UserAgent != "" {
		v.Set("genius.user_agent", c.Genius.UserAgent)
	}

	// Write to file
	return v.WriteConfigAs(configFile)
}
