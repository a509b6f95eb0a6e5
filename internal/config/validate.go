package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Validate validates the configuration and returns an error if invalid
func Validate(config *Config) error {
	if err := validateExplorerConfig(&config.Explorer); err != nil {
		return fmt.Errorf("explorer config validation failed: %w", err)
	}

	if err := validateReportConfig(&config.Report); err != nil {
		return fmt.Errorf("report config validation failed: %w", err)
	}

	if err := validateLogConfig(&config.Log); err != nil {
		return fmt.Errorf("log config validation failed: %w", err)
	}

	if err := validateUIConfig(&config.UI); err != nil {
		return fmt.Errorf("ui config validation failed: %w", err)
	}

	return nil
}

// validateExplorerConfig validates filesystem navigation configuration
func validateExplorerConfig(config *ExplorerConfig) error {
	if strings.TrimSpace(config.RootPath) == "" {
		return fmt.Errorf("root_path is required")
	}

	if !filepath.IsAbs(config.RootPath) {
		return fmt.Errorf("root_path must be absolute, got: %s", config.RootPath)
	}

	if config.AppPath != "" && !filepath.IsAbs(config.AppPath) {
		return fmt.Errorf("app_path must be absolute, got: %s", config.AppPath)
	}

	if config.Glob != "" && !doublestar.ValidatePattern(config.Glob) {
		return fmt.Errorf("invalid glob pattern: %s", config.Glob)
	}

	if config.PreviewMaxBytes < 0 {
		return fmt.Errorf("preview_max_bytes must be non-negative, got: %d", config.PreviewMaxBytes)
	}

	return nil
}

// validateReportConfig validates environment report configuration
func validateReportConfig(config *ReportConfig) error {
	if config.TimeoutSeconds <= 0 {
		return fmt.Errorf("timeout_seconds must be positive, got: %d", config.TimeoutSeconds)
	}

	return nil
}

// validateLogConfig validates log configuration
func validateLogConfig(config *LogConfig) error {
	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
		"fatal": true,
		"panic": true,
	}

	level := strings.ToLower(config.Level)
	if !validLevels[level] {
		return fmt.Errorf("invalid log level: %s (valid: debug, info, warn, error, fatal, panic)", config.Level)
	}

	validFormats := map[string]bool{
		"text": true,
		"json": true,
	}

	format := strings.ToLower(config.Format)
	if !validFormats[format] {
		return fmt.Errorf("invalid log format: %s (valid: text, json)", config.Format)
	}

	return nil
}

// validateUIConfig validates user interface configuration
func validateUIConfig(config *UIConfig) error {
	validPreview := map[string]bool{
		"auto": true,
		"off":  true,
	}

	mode := strings.ToLower(config.ImagePreview)
	if !validPreview[mode] {
		return fmt.Errorf("invalid image_preview mode: %s (valid: auto, off)", config.ImagePreview)
	}

	return nil
}
