package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "/", cfg.Explorer.RootPath)
	assert.Equal(t, "*", cfg.Explorer.Glob)
	assert.Equal(t, int64(1024*1024), cfg.Explorer.PreviewMaxBytes)
	assert.Equal(t, []string{"pip", "freeze"}, cfg.Report.PackagesCommand)
	assert.Equal(t, []string{"df", "-h"}, cfg.Report.DiskCommand)
	assert.Equal(t, 10, cfg.Report.TimeoutSeconds)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.True(t, cfg.UI.InteractiveMode)
}

func TestLoad_FromFile(t *testing.T) {
	dir := t.TempDir()
	cfgFile := filepath.Join(dir, "config.toml")
	content := `
[explorer]
root_path = "/srv/data"
glob = "*.log"
preview_max_bytes = 4096

[report]
timeout_seconds = 3

[log]
level = "debug"
format = "json"
`
	require.NoError(t, os.WriteFile(cfgFile, []byte(content), 0644))

	cfg, err := Load(cfgFile)
	require.NoError(t, err)

	assert.Equal(t, "/srv/data", cfg.Explorer.RootPath)
	assert.Equal(t, "*.log", cfg.Explorer.Glob)
	assert.Equal(t, int64(4096), cfg.Explorer.PreviewMaxBytes)
	assert.Equal(t, 3, cfg.Report.TimeoutSeconds)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("FSINSPECT_ROOT_PATH", "/opt")
	t.Setenv("FSINSPECT_LOG_LEVEL", "error")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "/opt", cfg.Explorer.RootPath)
	assert.Equal(t, "error", cfg.Log.Level)
}

func TestValidate_RejectsRelativeRoot(t *testing.T) {
	cfg := validConfig()
	cfg.Explorer.RootPath = "relative/root"

	err := Validate(cfg)
	assert.ErrorContains(t, err, "root_path must be absolute")
}

func TestValidate_RejectsEmptyRoot(t *testing.T) {
	cfg := validConfig()
	cfg.Explorer.RootPath = "  "

	err := Validate(cfg)
	assert.ErrorContains(t, err, "root_path is required")
}

func TestValidate_RejectsBadGlob(t *testing.T) {
	cfg := validConfig()
	cfg.Explorer.Glob = "[unclosed"

	err := Validate(cfg)
	assert.ErrorContains(t, err, "invalid glob pattern")
}

func TestValidate_RejectsNonPositiveTimeout(t *testing.T) {
	cfg := validConfig()
	cfg.Report.TimeoutSeconds = 0

	err := Validate(cfg)
	assert.ErrorContains(t, err, "timeout_seconds must be positive")
}

func TestValidate_RejectsBadLogLevel(t *testing.T) {
	cfg := validConfig()
	cfg.Log.Level = "loud"

	err := Validate(cfg)
	assert.ErrorContains(t, err, "invalid log level")
}

func TestValidate_RejectsBadImagePreviewMode(t *testing.T) {
	cfg := validConfig()
	cfg.UI.ImagePreview = "sometimes"

	err := Validate(cfg)
	assert.ErrorContains(t, err, "invalid image_preview mode")
}

func validConfig() *Config {
	return &Config{
		Explorer: ExplorerConfig{
			RootPath:        "/",
			AppPath:         "/tmp",
			Glob:            "*",
			PreviewMaxBytes: 1024,
		},
		Report: ReportConfig{
			PackagesCommand: []string{"pip", "freeze"},
			DiskCommand:     []string{"df", "-h"},
			TimeoutSeconds:  10,
		},
		Log: LogConfig{Level: "info", Format: "text"},
		UI:  UIConfig{InteractiveMode: true, ImagePreview: "auto"},
	}
}
