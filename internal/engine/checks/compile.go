package checks

import (
	"context"

	"go.trai.ch/memo/internal/core/domain"
	"go.trai.ch/memo/internal/core/ports"
)

// compileConfigNames are the configuration files that influence a compile
// check in addition to the sources themselves.
var compileConfigNames = []string{"tsconfig.json", "tsconfig.*.json", "package.json"}

// Compile runs the cached compilation check.
func (c *Checker) Compile(ctx context.Context) (domain.OperationRecord, error) {
	return c.runCached(ctx, operation{
		op:          domain.OpCompile,
		configNames: compileConfigNames,
		command:     c.cfg.CompileCommand,
		discover:    c.sourceFiles,
		parse: func(res ports.RunResult, runErr error, rec *domain.OperationRecord) {
			rec.Diagnostics = parseDiagnostics(rec.RawOutput, !rec.Success)
		},
	})
}
