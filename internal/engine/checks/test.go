package checks

import (
	"context"
	"path/filepath"
	"strings"

	"go.trai.ch/memo/internal/core/domain"
	"go.trai.ch/memo/internal/core/ports"
)

// testConfigNames are the configuration files that influence a test run.
var testConfigNames = []string{
	"jest.config.*", "vitest.config.*", ".mocharc*", "package.json",
}

// Test runs the cached test operation. A non-empty nameFilter restricts the
// run to matching tests and keys the result separately, so filtered runs do
// not collide with the full-suite slot.
func (c *Checker) Test(ctx context.Context, nameFilter string) (domain.OperationRecord, error) {
	command := c.cfg.TestCommand
	if nameFilter != "" {
		command = append(append([]string{}, command...), "-t", nameFilter)
	}

	return c.runCached(ctx, operation{
		op:          domain.OpTest,
		configNames: testConfigNames,
		command:     command,
		keySuffix:   nameFilter,
		discover:    c.sourceFiles,
		parse: func(res ports.RunResult, runErr error, rec *domain.OperationRecord) {
			sum := parseTestSummary(rec.RawOutput, rec.Success, res.Duration)
			sum.TestFiles = c.testFiles()
			rec.Tests = &sum
		},
	})
}

// AffectedTests maps changed files to the test files likely to cover them:
// a test file is affected when its basename contains the changed file's
// basename. When any changed file has no match the policy falls back to
// treating the whole suite as affected; a false positive only costs a rerun,
// a false negative hides a regression.
func (c *Checker) AffectedTests(changed []string) []string {
	tests := c.testFiles()
	if len(changed) == 0 {
		return nil
	}

	matched := make(map[string]struct{})
	for _, ch := range changed {
		base := stripExt(filepath.Base(ch))
		if base == "" {
			return tests
		}
		if isTestFile(ch) {
			matched[filepath.ToSlash(ch)] = struct{}{}
			continue
		}

		found := false
		for _, t := range tests {
			if strings.Contains(stripExt(filepath.Base(t)), base) {
				matched[t] = struct{}{}
				found = true
			}
		}
		if !found {
			return tests
		}
	}

	affected := make([]string, 0, len(matched))
	for _, t := range tests {
		if _, ok := matched[t]; ok {
			affected = append(affected, t)
		}
	}
	return affected
}

func stripExt(name string) string {
	return strings.TrimSuffix(name, filepath.Ext(name))
}
