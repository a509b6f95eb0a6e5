package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds the complete application configuration
type Config struct {
	Explorer ExplorerConfig `mapstructure:"explorer"`
	Report   ReportConfig   `mapstructure:"report"`
	Log      LogConfig      `mapstructure:"log"`
	UI       UIConfig       `mapstructure:"ui"`
}

// ExplorerConfig holds filesystem navigation configuration.
// It is set once at startup and immutable afterwards.
type ExplorerConfig struct {
	RootPath        string `mapstructure:"root_path"`
	AppPath         string `mapstructure:"app_path"`
	Glob            string `mapstructure:"glob"`
	PreviewMaxBytes int64  `mapstructure:"preview_max_bytes"`
}

// ReportConfig holds environment report configuration
type ReportConfig struct {
	PackagesCommand []string `mapstructure:"packages_command"`
	DiskCommand     []string `mapstructure:"disk_command"`
	TimeoutSeconds  int      `mapstructure:"timeout_seconds"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// UIConfig holds user interface configuration
type UIConfig struct {
	InteractiveMode bool   `mapstructure:"interactive_mode"`
	ImagePreview    string `mapstructure:"image_preview"`
}

// Load loads configuration from multiple sources with priority:
// 1. Command line flags (highest)
// 2. Environment variables
// 3. Configuration file
// 4. Defaults (lowest)
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Set defaults
	setDefaults(v)

	// Set environment variable prefix
	v.SetEnvPrefix("FSINSPECT")
	v.AutomaticEnv()

	// Environment variable mappings
	v.BindEnv("explorer.root_path", "FSINSPECT_ROOT_PATH")
	v.BindEnv("explorer.app_path", "FSINSPECT_APP_PATH")
	v.BindEnv("explorer.glob", "FSINSPECT_GLOB")
	v.BindEnv("explorer.preview_max_bytes", "FSINSPECT_PREVIEW_MAX_BYTES")
	v.BindEnv("report.timeout_seconds", "FSINSPECT_REPORT_TIMEOUT_SECONDS")
	v.BindEnv("log.level", "FSINSPECT_LOG_LEVEL")
	v.BindEnv("log.format", "FSINSPECT_LOG_FORMAT")
	v.BindEnv("ui.interactive_mode", "FSINSPECT_UI_INTERACTIVE_MODE")
	v.BindEnv("ui.image_preview", "FSINSPECT_UI_IMAGE_PREVIEW")

	// Configuration file handling
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		// Look for config in common locations
		v.SetConfigName("config")
		v.SetConfigType("toml")

		// Add config search paths
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.fsinspect")
		v.AddConfigPath("/etc/fsinspect/")
	}

	// Read configuration file if it exists
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Config file not found is not an error - we can use defaults and env vars
	}

	// Unmarshal configuration
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate configuration
	if err := Validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

// setDefaults sets default values for configuration
func setDefaults(v *viper.Viper) {
	// Explorer defaults
	v.SetDefault("explorer.root_path", "/")
	v.SetDefault("explorer.app_path", defaultAppPath())
	v.SetDefault("explorer.glob", "*")
	v.SetDefault("explorer.preview_max_bytes", 1024*1024)

	// Report defaults
	v.SetDefault("report.packages_command", []string{"pip", "freeze"})
	v.SetDefault("report.disk_command", []string{"df", "-h"})
	v.SetDefault("report.timeout_seconds", 10)

	// Log defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	// UI defaults
	v.SetDefault("ui.interactive_mode", true)
	v.SetDefault("ui.image_preview", "auto")
}

// defaultAppPath is the working directory, the "home" shortcut of the browser
func defaultAppPath() string {
	wd, err := os.Getwd()
	if err != nil {
		return "/"
	}
	return wd
}

// GetDefaultConfigPath returns the default configuration file path
func GetDefaultConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "./config.toml"
	}
	return filepath.Join(homeDir, ".fsinspect", "config.toml")
}

// EnsureConfigDir creates the configuration directory if it doesn't exist
func EnsureConfigDir() error {
	configPath := GetDefaultConfigPath()
	dir := filepath.Dir(configPath)
	return os.MkdirAll(dir, 0700)
}
