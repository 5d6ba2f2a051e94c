package ports

import (
	"context"
	"time"
)

// RunResult captures everything an external checker produced. ExitCode is -1
// when the process could not be started or was killed by a signal.
type RunResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
	Duration time.Duration
}

// Runner executes an external checker process and captures its output. A
// non-zero exit status is not an error; the error return is reserved for
// failures to spawn the process at all. Timeout enforcement is the caller's
// concern via ctx.
//
//go:generate go run go.uber.org/mock/mockgen -source=runner.go -destination=mocks/mock_runner.go -package=mocks
type Runner interface {
	Run(ctx context.Context, dir string, command []string) (RunResult, error)
}
