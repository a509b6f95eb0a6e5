package sysinfo

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRunner records invocations and returns canned results per command name
type fakeRunner struct {
	outputs map[string]string
	errs    map[string]error
	calls   []string
}

func (f *fakeRunner) Run(ctx context.Context, name string, args ...string) (string, error) {
	f.calls = append(f.calls, strings.Join(append([]string{name}, args...), " "))
	if err, ok := f.errs[name]; ok {
		return "", err
	}
	return f.outputs[name], nil
}

func TestReporter_Packages(t *testing.T) {
	runner := &fakeRunner{outputs: map[string]string{"pip": "requests==2.31.0\nflask==3.0.0\n"}}
	r := NewReporter(runner, nil, nil)

	out := r.Packages(context.Background())

	assert.Contains(t, out, "requests==2.31.0")
	require.Len(t, runner.calls, 1)
	assert.Equal(t, "pip freeze", runner.calls[0])
}

func TestReporter_DiskUsage(t *testing.T) {
	runner := &fakeRunner{outputs: map[string]string{"df": "Filesystem Size Used\n/dev/sda1 80G 41G\n"}}
	r := NewReporter(runner, nil, nil)

	out := r.DiskUsage(context.Background())

	assert.Contains(t, out, "/dev/sda1")
	assert.Equal(t, []string{"df -h"}, runner.calls)
}

func TestReporter_CustomCommands(t *testing.T) {
	runner := &fakeRunner{outputs: map[string]string{"go": "github.com/spf13/cobra v1.10.1\n"}}
	r := NewReporter(runner, []string{"go", "list", "-m", "all"}, []string{"df", "-k"})

	r.Packages(context.Background())
	r.DiskUsage(context.Background())

	assert.Equal(t, []string{"go list -m all", "df -k"}, runner.calls)
}

func TestReporter_MissingToolDegrades(t *testing.T) {
	runner := &fakeRunner{errs: map[string]error{"df": fmt.Errorf("df: %w", ErrToolMissing)}}
	r := NewReporter(runner, nil, nil)

	out := r.DiskUsage(context.Background())

	assert.Contains(t, out, "not available")
	assert.Contains(t, out, "df -h")
}

func TestReporter_TimeoutDegrades(t *testing.T) {
	runner := &fakeRunner{errs: map[string]error{"pip": fmt.Errorf("pip: %w", ErrToolTimeout)}}
	r := NewReporter(runner, nil, nil)

	out := r.Packages(context.Background())

	assert.Contains(t, out, "timed out")
}

func TestReporter_GenericFailureDegrades(t *testing.T) {
	runner := &fakeRunner{errs: map[string]error{"pip": fmt.Errorf("exit status 1")}}
	r := NewReporter(runner, nil, nil)

	out := r.Packages(context.Background())

	assert.Contains(t, out, "Error running 'pip freeze'")
}

func TestReporter_EnvVarsSorted(t *testing.T) {
	t.Setenv("FSINSPECT_TEST_ZZ", "last")
	t.Setenv("FSINSPECT_TEST_AA", "first")

	r := NewReporter(&fakeRunner{}, nil, nil)
	out := r.EnvVars()

	lines := strings.Split(out, "\n")
	assert.True(t, sort.StringsAreSorted(lines))
	assert.Contains(t, lines, "FSINSPECT_TEST_AA=first")
	assert.Contains(t, lines, "FSINSPECT_TEST_ZZ=last")
}

func TestExecRunner_MissingBinary(t *testing.T) {
	runner := NewExecRunner(0)

	_, err := runner.Run(context.Background(), "fsinspect-no-such-binary-xyz")

	assert.ErrorIs(t, err, ErrToolMissing)
}

func TestExecRunner_CapturesStdout(t *testing.T) {
	if _, err := os.Stat("/bin/echo"); err != nil {
		t.Skip("no /bin/echo on this system")
	}
	runner := NewExecRunner(0)

	out, err := runner.Run(context.Background(), "/bin/echo", "hello")

	require.NoError(t, err)
	assert.Equal(t, "hello\n", out)
}
