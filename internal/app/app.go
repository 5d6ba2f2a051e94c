// Package app implements the application layer for memo.
package app

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"go.trai.ch/memo/internal/adapters/config"
	"go.trai.ch/memo/internal/adapters/monitor"
	"go.trai.ch/memo/internal/adapters/resource"
	"go.trai.ch/memo/internal/core/domain"
	"go.trai.ch/memo/internal/core/ports"
	"go.trai.ch/memo/internal/engine/checks"
	"go.trai.ch/memo/internal/engine/results"
	"go.trai.ch/zerr"
)

// App wires the cached check engine to the CLI surface.
type App struct {
	checker   *checks.Checker
	results   *results.Cache
	fp        ports.Fingerprinter
	monitor   *monitor.Monitor
	projector *resource.Projector
	watcher   ports.Watcher
	logger    ports.Logger
	cfg       *config.Config
	out       io.Writer
}

// New creates a new App instance.
func New(
	checker *checks.Checker,
	res *results.Cache,
	fp ports.Fingerprinter,
	mon *monitor.Monitor,
	projector *resource.Projector,
	watcher ports.Watcher,
	log ports.Logger,
	cfg *config.Config,
) *App {
	return &App{
		checker:   checker,
		results:   res,
		fp:        fp,
		monitor:   mon,
		projector: projector,
		watcher:   watcher,
		logger:    log,
		cfg:       cfg,
		out:       os.Stdout,
	}
}

// WithOutput redirects command output. Used for testing.
func (a *App) WithOutput(w io.Writer) *App {
	a.out = w
	return a
}

// CheckOptions configures how check results are rendered.
type CheckOptions struct {
	JSON bool
}

// Check runs the cached operation of the given type and renders the result.
// A failed check returns ErrCheckFailed so the CLI can map it to exit code 1
// without logging it as an internal error.
func (a *App) Check(ctx context.Context, op domain.OperationType, opts CheckOptions) error {
	var (
		rec domain.OperationRecord
		err error
	)
	switch op {
	case domain.OpCompile:
		rec, err = a.checker.Compile(ctx)
	case domain.OpStyle:
		rec, err = a.checker.Style(ctx)
	case domain.OpTest:
		rec, err = a.checker.Test(ctx, "")
	default:
		return zerr.With(domain.ErrUnknownOperation, "operation", string(op))
	}
	if err != nil {
		return err
	}
	return a.render(rec, opts)
}

// Test runs the cached test operation, optionally narrowed to tests whose
// name matches filter.
func (a *App) Test(ctx context.Context, filter string, opts CheckOptions) error {
	rec, err := a.checker.Test(ctx, filter)
	if err != nil {
		return err
	}
	return a.render(rec, opts)
}

// Watch starts the monitor and the file watcher and keeps the cache in sync
// with the working tree until the context is cancelled. After each change
// batch the compile check is re-run; the test check is re-run only when the
// changed files map to test files.
func (a *App) Watch(ctx context.Context) error {
	a.monitor.StartMonitoring()
	a.monitor.StartAutoCleanup()
	defer a.monitor.StopMonitoring()
	defer a.monitor.StopAutoCleanup()

	if err := a.watcher.Start(ctx, a.cfg.Root); err != nil {
		return err
	}
	defer func() {
		if err := a.watcher.Stop(); err != nil {
			a.logger.Error(zerr.Wrap(err, "stopping watcher"))
		}
	}()

	fmt.Fprintf(a.out, "watching %s for changes\n", a.cfg.Root)

	for {
		select {
		case <-ctx.Done():
			return nil
		case batch, ok := <-a.watcher.Events():
			if !ok {
				return nil
			}
			a.handleChanges(ctx, batch)
		}
	}
}

func (a *App) handleChanges(ctx context.Context, changed []string) {
	a.fp.Invalidate(changed)
	dropped := a.results.InvalidateByPaths(changed)
	fmt.Fprintf(a.out, "%d file(s) changed, %d cached result(s) invalidated\n",
		len(changed), dropped)

	rec, err := a.checker.Compile(ctx)
	if err != nil {
		a.logger.Error(zerr.Wrap(err, "compile check after change"))
		return
	}
	a.printStatus(domain.OpCompile, rec)

	if affected := a.checker.AffectedTests(changed); len(affected) > 0 {
		rec, err := a.checker.Test(ctx, "")
		if err != nil {
			a.logger.Error(zerr.Wrap(err, "test check after change"))
			return
		}
		a.printStatus(domain.OpTest, rec)
	}
}

// Stats renders the current health snapshot, or a projected view when view
// names one.
func (a *App) Stats(view string, opts CheckOptions) error {
	if view == "" {
		return a.renderHealth(opts)
	}
	return a.renderView(view, opts)
}

// Clean runs one cleanup strategy against the store and reports how many
// entries were removed. An empty pattern falls back to the strategy default.
func (a *App) Clean(strategy, pattern string) error {
	var re *regexp.Regexp
	if pattern != "" {
		var err error
		re, err = regexp.Compile(pattern)
		if err != nil {
			return zerr.Wrap(err, "invalid cleanup pattern")
		}
	}
	removed, err := a.monitor.RunCleanup(monitor.Strategy(strategy), re)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "removed %d cache entries\n", removed)
	return nil
}

func (a *App) render(rec domain.OperationRecord, opts CheckOptions) error {
	if opts.JSON {
		data, err := json.MarshalIndent(rec, "", "  ")
		if err != nil {
			return zerr.Wrap(err, "encoding record")
		}
		fmt.Fprintln(a.out, string(data))
	} else {
		a.printStatus(rec.Type, rec)
		for _, d := range rec.Diagnostics {
			if d.File != "" {
				fmt.Fprintf(a.out, "  %s:%d:%d %s: %s\n", d.File, d.Line, d.Column, d.Severity, d.Message)
			} else {
				fmt.Fprintf(a.out, "  %s: %s\n", d.Severity, d.Message)
			}
		}
		if rec.Tests != nil {
			fmt.Fprintf(a.out, "  %d passed, %d failed, %d skipped (%s)\n",
				rec.Tests.Passed, rec.Tests.Failed, rec.Tests.Skipped, rec.Tests.Duration.Std())
		}
	}

	if !rec.Success {
		return zerr.With(domain.ErrCheckFailed, "operation", string(rec.Type))
	}
	return nil
}

func (a *App) printStatus(op domain.OperationType, rec domain.OperationRecord) {
	status := "ok"
	if !rec.Success {
		status = "failed"
	}
	fmt.Fprintf(a.out, "%s: %s\n", op, status)
}

func (a *App) renderHealth(opts CheckOptions) error {
	snap := a.monitor.Snapshot()
	if opts.JSON {
		data, err := json.MarshalIndent(snap, "", "  ")
		if err != nil {
			return zerr.Wrap(err, "encoding snapshot")
		}
		fmt.Fprintln(a.out, string(data))
		return nil
	}

	fmt.Fprintf(a.out, "status:     %s\n", snap.Status)
	fmt.Fprintf(a.out, "efficiency: %.2f\n", snap.Efficiency)
	fmt.Fprintf(a.out, "memory:     %.2f\n", snap.MemoryUsage)
	fmt.Fprintf(a.out, "keys:       %d\n", snap.KeyCount)
	fmt.Fprintf(a.out, "uptime:     %s\n", snap.Uptime)
	for _, rec := range snap.Recommendations {
		fmt.Fprintf(a.out, "  - %s\n", rec)
	}
	return nil
}

func (a *App) renderView(kind string, opts CheckOptions) error {
	var (
		view resource.View
		err  error
	)
	switch kind {
	case string(domain.OpCompile), string(domain.OpStyle), string(domain.OpTest):
		view = a.projector.OperationView(domain.OperationType(kind))
	default:
		view, err = a.projector.MetadataView(kind)
		if err != nil {
			return err
		}
	}

	if opts.JSON {
		data, err := json.MarshalIndent(view, "", "  ")
		if err != nil {
			return zerr.Wrap(err, "encoding view")
		}
		fmt.Fprintln(a.out, string(data))
		return nil
	}

	fmt.Fprintf(a.out, "version: %s\n", view.Version)
	if view.Note != "" {
		fmt.Fprintf(a.out, "note: %s\n", view.Note)
		return nil
	}
	data, err := json.MarshalIndent(view.Data, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "encoding view data")
	}
	fmt.Fprintln(a.out, strings.TrimSpace(string(data)))
	return nil
}
