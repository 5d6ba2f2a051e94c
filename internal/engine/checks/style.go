package checks

import (
	"context"

	"go.trai.ch/memo/internal/core/domain"
	"go.trai.ch/memo/internal/core/ports"
)

// styleConfigNames are the configuration files that influence a style check.
var styleConfigNames = []string{
	".eslintrc*", "eslint.config.*", ".prettierrc*", "package.json",
}

// Style runs the cached style check.
func (c *Checker) Style(ctx context.Context) (domain.OperationRecord, error) {
	return c.runCached(ctx, operation{
		op:          domain.OpStyle,
		configNames: styleConfigNames,
		command:     c.cfg.StyleCommand,
		discover:    c.sourceFiles,
		parse: func(res ports.RunResult, runErr error, rec *domain.OperationRecord) {
			rec.Diagnostics = parseDiagnostics(rec.RawOutput, !rec.Success)
		},
	})
}
