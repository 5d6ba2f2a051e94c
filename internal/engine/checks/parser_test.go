package checks

import (
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/memo/internal/core/domain"
)

func TestParseDiagnostics_TscParen(t *testing.T) {
	output := "src/app.ts(12,5): error TS2322: Type 'string' is not assignable to type 'number'.\n" +
		"src/util.ts(3,1): warning TS6133: 'x' is declared but its value is never read.\n"

	diags := parseDiagnostics(output, true)

	g := goldie.New(t)
	g.AssertJson(t, "diagnostics_tsc_paren", diags)
}

func TestParseDiagnostics_TscPretty(t *testing.T) {
	output := "src/app.ts:12:5 - error TS2322: Type 'string' is not assignable to type 'number'.\n"

	diags := parseDiagnostics(output, true)

	g := goldie.New(t)
	g.AssertJson(t, "diagnostics_tsc_pretty", diags)
}

func TestParseDiagnostics_EslintUnix(t *testing.T) {
	output := "src/app.ts:4:1: Unexpected var, use let or const instead. [Error/no-var]\n" +
		"src/app.ts:9:10: 'y' is assigned a value but never used. [Warning/no-unused-vars]\n"

	diags := parseDiagnostics(output, true)

	g := goldie.New(t)
	g.AssertJson(t, "diagnostics_eslint_unix", diags)
}

func TestParseDiagnostics_UnrecognizedFailure(t *testing.T) {
	diags := parseDiagnostics("segmentation fault\n", true)

	assert.Len(t, diags, 1)
	assert.Equal(t, domain.SeverityError, diags[0].Severity)
	assert.Equal(t, "unrecognized checker output: segmentation fault", diags[0].Message)
}

func TestParseDiagnostics_FailureWithNoOutput(t *testing.T) {
	diags := parseDiagnostics("", true)

	assert.Len(t, diags, 1)
	assert.Equal(t, "checker failed with no output", diags[0].Message)
}

func TestParseDiagnostics_CleanSuccess(t *testing.T) {
	assert.Empty(t, parseDiagnostics("Done in 1.2s\n", false))
}

func TestParseTestSummary_Jest(t *testing.T) {
	output := "Tests:       2 failed, 1 skipped, 7 passed, 10 total\nTime:        3.4 s\n"

	sum := parseTestSummary(output, false, 3*time.Second)

	assert.Equal(t, 7, sum.Passed)
	assert.Equal(t, 2, sum.Failed)
	assert.Equal(t, 1, sum.Skipped)
	assert.Equal(t, domain.Millis(3*time.Second), sum.Duration)
}

func TestParseTestSummary_JestTotalOnly(t *testing.T) {
	sum := parseTestSummary("Tests:       10 total\n", true, 0)

	assert.Equal(t, 10, sum.Passed)
}

func TestParseTestSummary_Mocha(t *testing.T) {
	output := "  14 passing (230ms)\n  2 failing\n  1 pending\n"

	sum := parseTestSummary(output, false, 0)

	assert.Equal(t, 14, sum.Passed)
	assert.Equal(t, 2, sum.Failed)
	assert.Equal(t, 1, sum.Skipped)
}

func TestParseTestSummary_GenericWords(t *testing.T) {
	sum := parseTestSummary("5 passed | 1 failed | 2 skipped\n", false, 0)

	assert.Equal(t, 5, sum.Passed)
	assert.Equal(t, 1, sum.Failed)
	assert.Equal(t, 2, sum.Skipped)
}

func TestParseTestSummary_BareNumberFallback(t *testing.T) {
	// With no named pattern the first bare number is attributed by exit
	// status.
	passed := parseTestSummary("ran 8 specs\n", true, 0)
	assert.Equal(t, 8, passed.Passed)
	assert.Zero(t, passed.Failed)

	failed := parseTestSummary("ran 8 specs\n", false, 0)
	assert.Equal(t, 8, failed.Failed)
	assert.Zero(t, failed.Passed)
}

func TestParseTestSummary_NoNumbers(t *testing.T) {
	sum := parseTestSummary("nothing to report\n", true, 0)

	assert.Zero(t, sum.Passed)
	assert.Zero(t, sum.Failed)
	assert.Zero(t, sum.Skipped)
}
