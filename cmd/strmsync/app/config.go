package app

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/strmsync/strmsync/pkg/constants"
	"github.com/strmsync/strmsync/pkg/errors"
)

// Config holds the application configuration loaded from various sources
// including config files, environment variables, and .env files.
type Config struct {
	// Global flags
	Verbose bool
	Quiet   bool
	NoColor bool
	Format  string

	// Config file
	ConfigFile string

	// Reconciliation configuration
	MediaRoot     string
	UpstreamURL   string
	UpstreamToken string
	Interval      time.Duration
	Libraries     []string

	// Logging configuration
	LogLevel  string
	LogFormat string
	LogOutput string
}

// LoadConfig loads configuration from all sources in order of precedence:
// 1. Command-line flags (handled by cobra)
// 2. Environment variables (STRMSYNC_*)
// 3. .env files
// 4. Config file (~/.strmsync.yaml)
// 5. Defaults
func LoadConfig() (*Config, error) {
	// Load .env files first (before Viper env binding)
	loadEnvFiles()

	viper.SetEnvPrefix("strmsync")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	// Try to read config file if it exists
	configFile := viper.GetString("config")
	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
			viper.AddConfigPath(".")
			viper.SetConfigType("yaml")
			viper.SetConfigName(".strmsync")
		}
	}

	// Read config file (ignore error if not found)
	_ = viper.ReadInConfig()

	config := &Config{
		Verbose: viper.GetBool("verbose"),
		Quiet:   viper.GetBool("quiet"),
		NoColor: viper.GetBool("no-color"),
		Format:  viper.GetString("format"),

		ConfigFile: viper.ConfigFileUsed(),

		MediaRoot:     viper.GetString("media_root"),
		UpstreamURL:   viper.GetString("upstream_url"),
		UpstreamToken: viper.GetString("upstream_token"),
		Interval:      viper.GetDuration("interval"),
		Libraries:     viper.GetStringSlice("libraries"),

		LogLevel:  getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat: getEnvOrDefault("LOG_FORMAT", "auto"),
		LogOutput: getEnvOrDefault("LOG_OUTPUT", "stderr"),
	}

	// Set defaults
	if config.MediaRoot == "" {
		config.MediaRoot = constants.DefaultMediaRoot
	}
	if config.Interval == 0 {
		config.Interval = constants.DefaultSyncInterval
	}
	if len(config.Libraries) == 0 {
		config.Libraries = []string{"movies", "shows"}
	}

	return config, nil
}

// Validate checks that the required upstream settings are present. It is
// called before any run attempt; a failure here exits the process.
func (c *Config) Validate() error {
	if c.UpstreamURL == "" {
		return errors.NewConfigError("upstream", "upstream URL is required (set STRMSYNC_UPSTREAM_URL)", nil)
	}
	if c.UpstreamToken == "" {
		return errors.NewConfigError("upstream", "upstream token is required (set STRMSYNC_UPSTREAM_TOKEN)", errors.ErrTokenRequired)
	}
	return nil
}

// UpdateFromFlags updates config values from parsed command flags.
// This should be called after cobra parses flags to ensure flag
// values take precedence over config file and env vars.
func (c *Config) UpdateFromFlags(verbose, quiet, noColor bool, format, logLevel string) {
	c.Verbose = verbose
	c.Quiet = quiet
	c.NoColor = noColor
	if format != "" {
		c.Format = format
	}
	if logLevel != "" {
		c.LogLevel = logLevel
	}
}

// loadEnvFiles loads environment variables from .env files.
// .env.local overrides .env.
func loadEnvFiles() {
	envFiles := []string{
		".env",
		".env.local",
	}

	for _, envFile := range envFiles {
		_ = godotenv.Load(envFile)
	}
}

// getEnvOrDefault returns the environment variable value or the default if not set.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
