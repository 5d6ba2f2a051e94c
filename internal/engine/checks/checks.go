// Package checks implements the cached compile, style and test operations.
// Each check discovers its relevant input files, derives a deterministic key,
// serves a stored record while every input is unchanged, and otherwise runs
// the external checker and parses its output into a structured record.
package checks

import (
	"context"
	"strconv"
	"strings"
	"time"

	"go.trai.ch/memo/internal/adapters/fs"
	"go.trai.ch/memo/internal/core/domain"
	"go.trai.ch/memo/internal/core/ports"
	"go.trai.ch/memo/internal/engine/results"
)

// Config holds discovery and checker settings.
type Config struct {
	Root     string
	Excludes []string

	CompileCommand []string
	StyleCommand   []string
	TestCommand    []string
}

// Checker runs the three cached operations. It holds no data of its own;
// all state lives in the shared store behind the result cache.
type Checker struct {
	results *results.Cache
	fp      ports.Fingerprinter
	walker  *fs.Walker
	runner  ports.Runner
	logger  ports.Logger
	tracer  ports.Tracer
	cfg     Config
}

// NewChecker creates a Checker.
func NewChecker(
	res *results.Cache,
	fp ports.Fingerprinter,
	walker *fs.Walker,
	runner ports.Runner,
	logger ports.Logger,
	tracer ports.Tracer,
	cfg Config,
) *Checker {
	return &Checker{
		results: res,
		fp:      fp,
		walker:  walker,
		runner:  runner,
		logger:  logger,
		tracer:  tracer,
		cfg:     cfg,
	}
}

// operation describes one cached check: how to discover inputs, what to run
// and how to shape the record.
type operation struct {
	op          domain.OperationType
	configNames []string
	command     []string
	keySuffix   string
	discover    func() []string
	parse       func(res ports.RunResult, runErr error, rec *domain.OperationRecord)
}

func (c *Checker) runCached(ctx context.Context, op operation) (domain.OperationRecord, error) {
	files := op.discover()
	configs := c.walker.ConfigFiles(c.cfg.Root, op.configNames)

	key := results.BuildKey(files, configs)
	if op.keySuffix != "" {
		// Distinct filtered runs must not collide with the unfiltered slot.
		key += ":" + op.keySuffix
	}

	if rec, ok := c.results.GetRaw(op.op, key); ok && c.results.IsValid(rec) {
		return rec, nil
	}

	ctx, span := c.tracer.Start(ctx, "checks."+string(op.op))
	defer span.End()
	span.SetAttr("inputs", strconv.Itoa(len(files)+len(configs)))

	runRes, runErr := c.runner.Run(ctx, c.cfg.Root, op.command)
	if runErr != nil {
		span.SetError(runErr)
		c.logger.Error(runErr)
	}

	rec := domain.OperationRecord{
		Type:       op.op,
		Success:    runErr == nil && runRes.ExitCode == 0,
		RawOutput:  combinedOutput(runRes),
		ProducedAt: time.Now(),
		// Fingerprint the exact set discovered above, not a re-discovery,
		// so the record's validity window matches what actually ran.
		FileFingerprints: c.fingerprintSet(files, configs),
	}
	if runErr != nil {
		rec.Error = runErr.Error()
	}
	op.parse(runRes, runErr, &rec)

	c.results.Put(op.op, key, rec)
	return rec, nil
}

func (c *Checker) fingerprintSet(files, configs []string) map[string]string {
	set := make(map[string]string, len(files)+len(configs))
	for _, f := range files {
		set[f] = c.fp.Hash(f)
	}
	for _, f := range configs {
		set[f] = c.fp.Hash(f)
	}
	return set
}

func combinedOutput(res ports.RunResult) string {
	if res.Stderr == "" {
		return res.Stdout
	}
	if res.Stdout == "" {
		return res.Stderr
	}
	return res.Stdout + "\n" + res.Stderr
}

// sourceFiles returns the project's source files, test files included.
func (c *Checker) sourceFiles() []string {
	return c.walker.SourceFiles(c.cfg.Root, fs.SourceExtensions, c.cfg.Excludes)
}

// testFiles returns the subset of source files that are test files by the
// usual naming conventions. Always non-nil so the summary payload publishes
// an empty list, not null.
func (c *Checker) testFiles() []string {
	tests := []string{}
	for _, f := range c.sourceFiles() {
		if isTestFile(f) {
			tests = append(tests, f)
		}
	}
	return tests
}

func isTestFile(path string) bool {
	base := strings.ToLower(path)
	return strings.Contains(base, ".test.") ||
		strings.Contains(base, ".spec.") ||
		strings.Contains(base, "__tests__/")
}
