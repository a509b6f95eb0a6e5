package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	envPackages bool
	envDisk     bool
	envVars     bool
)

// envCmd represents the env command
var envCmd = &cobra.Command{
	Use:   "env",
	Short: "Print a report on the runtime environment",
	Long: `Print a report on the runtime environment: installed packages, disk
usage, and environment variables. Sections that rely on external tools degrade
to a short notice when the tool is missing or times out.

Examples:
  fsinspect env               # All sections
  fsinspect env --packages    # Installed packages only
  fsinspect env --disk        # Disk usage only
  fsinspect env --vars        # Environment variables only`,
	RunE: reportEnv,
}

func init() {
	rootCmd.AddCommand(envCmd)

	envCmd.Flags().BoolVar(&envPackages, "packages", false, "show installed packages")
	envCmd.Flags().BoolVar(&envDisk, "disk", false, "show disk usage")
	envCmd.Flags().BoolVar(&envVars, "vars", false, "show environment variables")
}

func reportEnv(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()

	_, _, _, reporter, err := buildComponents(cfg)
	if err != nil {
		return err
	}

	// No section flags means all sections
	all := !envPackages && !envDisk && !envVars
	ctx := context.Background()

	if all || envPackages {
		printSection("Packages", reporter.Packages(ctx))
	}
	if all || envDisk {
		printSection("Disk Usage", reporter.DiskUsage(ctx))
	}
	if all || envVars {
		printSection("Environment Variables", reporter.EnvVars())
	}
	return nil
}

func printSection(title, content string) {
	fmt.Printf("=== %s ===\n%s\n\n", title, content)
}
