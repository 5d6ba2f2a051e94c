// Package shell provides the checker process runner adapter.
package shell

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"time"

	"go.trai.ch/memo/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Runner = (*Runner)(nil)

// Runner implements ports.Runner using os/exec. Checker processes run to
// completion; cancellation and timeouts are enforced through ctx by the
// caller.
type Runner struct {
	logger ports.Logger
}

// NewRunner creates a new Runner.
func NewRunner(logger ports.Logger) *Runner {
	return &Runner{logger: logger}
}

// Run executes command in dir, capturing stdout, stderr and the exit status.
// A non-zero exit is a normal result, not an error; the error return is
// reserved for failing to start the process at all.
func (r *Runner) Run(ctx context.Context, dir string, command []string) (ports.RunResult, error) {
	if len(command) == 0 {
		return ports.RunResult{ExitCode: -1}, zerr.New("empty command")
	}

	cmd := exec.CommandContext(ctx, command[0], command[1:]...) //nolint:gosec // command comes from configuration
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	err := cmd.Run()
	res := ports.RunResult{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		ExitCode: 0,
		Duration: time.Since(start),
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			// The process ran and failed; its output is the result.
			res.ExitCode = exitErr.ExitCode()
			return res, nil
		}
		res.ExitCode = -1
		return res, zerr.With(zerr.Wrap(err, "failed to start checker"), "command", command[0])
	}

	return res, nil
}
