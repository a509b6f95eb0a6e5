package sysinfo

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
)

// Reporter collects environment information: installed packages, disk
// usage and process environment variables. Each section is independent
// and degrades to an explanatory message on failure.
type Reporter struct {
	runner      CommandRunner
	packagesCmd []string
	diskCmd     []string
}

// NewReporter creates a reporter. Empty command slices select the
// defaults (`pip freeze` and `df -h`).
func NewReporter(runner CommandRunner, packagesCmd, diskCmd []string) *Reporter {
	if len(packagesCmd) == 0 {
		packagesCmd = []string{"pip", "freeze"}
	}
	if len(diskCmd) == 0 {
		diskCmd = []string{"df", "-h"}
	}
	return &Reporter{runner: runner, packagesCmd: packagesCmd, diskCmd: diskCmd}
}

// Packages returns the raw output of the package-list command, or a
// degraded message when the tool is missing or slow
func (r *Reporter) Packages(ctx context.Context) string {
	return r.runSection(ctx, r.packagesCmd)
}

// DiskUsage returns the raw output of the disk-usage command, or a
// degraded message when the tool is missing or slow
func (r *Reporter) DiskUsage(ctx context.Context) string {
	return r.runSection(ctx, r.diskCmd)
}

// EnvVars returns the process environment as sorted KEY=value lines
func (r *Reporter) EnvVars() string {
	vars := os.Environ()
	sort.Strings(vars)
	return strings.Join(vars, "\n")
}

// runSection runs one fixed command and converts failures into
// user-facing text
func (r *Reporter) runSection(ctx context.Context, cmd []string) string {
	out, err := r.runner.Run(ctx, cmd[0], cmd[1:]...)
	if err != nil {
		logrus.Warnf("Report command %q failed: %v", strings.Join(cmd, " "), err)
		switch {
		case errors.Is(err, ErrToolMissing):
			return fmt.Sprintf("'%s' is not available on this system.", strings.Join(cmd, " "))
		case errors.Is(err, ErrToolTimeout):
			return fmt.Sprintf("'%s' timed out.", strings.Join(cmd, " "))
		default:
			return fmt.Sprintf("Error running '%s': %v", strings.Join(cmd, " "), err)
		}
	}
	return out
}
