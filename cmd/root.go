package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/fsinspect/fsinspect/internal/config"
	"github.com/fsinspect/fsinspect/internal/explorer"
	"github.com/fsinspect/fsinspect/internal/sysinfo"
	"github.com/fsinspect/fsinspect/internal/tui"
)

var (
	cfgFile      string
	rootOverride string
	verbose      bool
	quiet        bool
	globalConfig *config.Config
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "fsinspect",
	Short: "A terminal inspector for a sandboxed filesystem and its environment",
	Long: `fsinspect browses a directory tree confined to a configured root
boundary, previews text files with MIME-based binary detection, and reports
on the runtime environment (installed packages, disk usage, environment
variables). Configuration comes from TOML files, environment variables, and
CLI flags.

Example usage:
  fsinspect                       # Interactive browser rooted at /
  fsinspect --root /srv/app       # Browse under a different boundary
  fsinspect list data/            # Table listing of a directory
  fsinspect preview notes.txt     # Print a file preview
  fsinspect env --disk            # Disk usage report`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInteractiveBrowser()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default is ~/.fsinspect/config.toml)")
	rootCmd.PersistentFlags().StringVar(&rootOverride, "root", "", "root boundary path (overrides config)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "enable quiet mode")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() error {
	var err error
	globalConfig, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if rootOverride != "" {
		globalConfig.Explorer.RootPath = rootOverride
		if err := config.Validate(globalConfig); err != nil {
			return fmt.Errorf("config validation failed: %w", err)
		}
	}

	setupLogging()

	return nil
}

// setupLogging configures the global logger based on config and flags
func setupLogging() {
	level := globalConfig.Log.Level
	if verbose {
		level = "debug"
	} else if quiet {
		level = "error"
	}

	logLevel, err := logrus.ParseLevel(level)
	if err != nil {
		logrus.Warnf("Invalid log level %s, using info", level)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	// Redirect all logs to file to prevent UI interference
	logDir := "/tmp/fsinspect"
	if err := os.MkdirAll(logDir, 0755); err != nil {
		logrus.Warnf("Failed to create log directory %s: %v", logDir, err)
	} else {
		logFile := filepath.Join(logDir, "app.log")
		file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			logrus.Warnf("Failed to open log file %s: %v", logFile, err)
		} else {
			logrus.SetOutput(file)
		}
	}

	if globalConfig.Log.Format == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{
			DisableTimestamp: quiet,
			FullTimestamp:    verbose,
		})
	}
}

// GetConfig returns the global configuration
func GetConfig() *config.Config {
	return globalConfig
}

// buildComponents wires the explorer and sysinfo components from config
func buildComponents(cfg *config.Config) (*explorer.Resolver, *explorer.Lister, *explorer.Previewer, *sysinfo.Reporter, error) {
	resolver, err := explorer.NewResolver(cfg.Explorer.RootPath)
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("invalid root boundary: %w", err)
	}

	runner := sysinfo.NewExecRunner(time.Duration(cfg.Report.TimeoutSeconds) * time.Second)
	lister := explorer.NewLister(resolver, cfg.Explorer.Glob)
	previewer := explorer.NewPreviewer(resolver, runner, cfg.Explorer.PreviewMaxBytes)
	reporter := sysinfo.NewReporter(runner, cfg.Report.PackagesCommand, cfg.Report.DiskCommand)

	return resolver, lister, previewer, reporter, nil
}

// startDirectory picks the initial browser directory: the last visited
// directory when it is still inside the boundary, otherwise the app path,
// otherwise the root itself.
func startDirectory(resolver *explorer.Resolver, cfg *config.Config) string {
	if userData, err := config.LoadUserData(); err == nil && userData.LastDirectory != "" {
		if resolved, err := resolver.ResolveDir(userData.LastDirectory); err == nil {
			return resolved
		}
		logrus.Debugf("Last directory %s no longer valid, falling back", userData.LastDirectory)
	}

	if resolved, err := resolver.ResolveDir(cfg.Explorer.AppPath); err == nil {
		return resolved
	}
	return resolver.Root()
}

// runInteractiveBrowser runs the interactive filesystem browser starting at
// the remembered or configured directory
func runInteractiveBrowser() error {
	resolver, _, _, _, err := buildComponents(globalConfig)
	if err != nil {
		return err
	}
	return launchBrowser(startDirectory(resolver, globalConfig))
}

// launchBrowser starts the bubbletea program at the given directory
func launchBrowser(startDir string) error {
	cfg := globalConfig

	resolver, lister, previewer, reporter, err := buildComponents(cfg)
	if err != nil {
		return err
	}

	model := tui.NewBrowserModel(cfg, resolver, lister, previewer, reporter, startDir)

	watcher, err := tui.NewDirWatcher()
	if err != nil {
		logrus.Warnf("Directory watching unavailable: %v", err)
	} else {
		model.SetWatcher(watcher)
		defer watcher.Close()
	}

	program := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	// Set program reference in model for direct messaging
	model.SetProgram(program)

	_, err = program.Run()
	return err
}
