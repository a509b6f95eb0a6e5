package sysinfo

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"time"

	"github.com/sirupsen/logrus"
)

// Errors for external command failures
var (
	// ErrToolMissing means the external binary is not installed
	ErrToolMissing = errors.New("external tool not found")

	// ErrToolTimeout means the command did not finish within the timeout
	ErrToolTimeout = errors.New("external tool timed out")
)

// CommandRunner abstracts external command execution so tests can
// substitute a fake instead of invoking real system binaries.
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) (string, error)
}

// ExecRunner runs commands through os/exec with a bounded timeout per call
type ExecRunner struct {
	Timeout time.Duration
}

// DefaultCommandTimeout bounds every external command invocation
const DefaultCommandTimeout = 10 * time.Second

// NewExecRunner creates a runner with the given timeout. A non-positive
// timeout selects the default.
func NewExecRunner(timeout time.Duration) *ExecRunner {
	if timeout <= 0 {
		timeout = DefaultCommandTimeout
	}
	return &ExecRunner{Timeout: timeout}
}

// Run executes the command and captures its standard output. A missing
// binary maps to ErrToolMissing, a deadline hit to ErrToolTimeout. No
// retries: a single failure is final.
func (r *ExecRunner) Run(ctx context.Context, name string, args ...string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, r.Timeout)
	defer cancel()

	logrus.Debugf("Running command: %s %v", name, args)

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return "", fmt.Errorf("%s: %w", name, ErrToolTimeout)
		}
		if errors.Is(err, exec.ErrNotFound) {
			return "", fmt.Errorf("%s: %w", name, ErrToolMissing)
		}
		return "", fmt.Errorf("%s failed: %w (stderr: %s)", name, err, stderr.String())
	}

	return stdout.String(), nil
}
