package checks

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"go.trai.ch/memo/internal/core/domain"
)

// Diagnostic line shapes emitted by the common TypeScript toolchain. The
// parser must never fail on unexpected output: anything unrecognized
// degrades to a single synthetic error diagnostic.
var (
	// src/app.ts(12,5): error TS2322: Type 'string' is not assignable...
	tscParenLine = regexp.MustCompile(`^(.+?)\((\d+),(\d+)\): (error|warning|info)(?: TS\d+)?: (.+)$`)

	// src/app.ts:12:5 - error TS2322: Type 'string' is not assignable...
	tscPrettyLine = regexp.MustCompile(`^(.+?):(\d+):(\d+) - (error|warning|info)(?: TS\d+)?: (.+)$`)

	// src/app.ts:12:5: Unexpected var. [Error/no-var]
	eslintUnixLine = regexp.MustCompile(`^(.+?):(\d+):(\d+): (.+?) \[(Error|Warning)/[^\]]+\]$`)
)

// parseDiagnostics extracts structured findings from checker output. When
// the output matches no known pattern and the run failed, a single synthetic
// error entry describes the parse failure instead of raising one.
func parseDiagnostics(output string, failed bool) []domain.Diagnostic {
	var diags []domain.Diagnostic

	for line := range strings.Lines(output) {
		line = strings.TrimRight(line, "\r\n")
		if line == "" {
			continue
		}

		if m := tscParenLine.FindStringSubmatch(line); m != nil {
			diags = append(diags, locatedDiagnostic(m[1], m[2], m[3], domain.Severity(m[4]), m[5]))
			continue
		}
		if m := tscPrettyLine.FindStringSubmatch(line); m != nil {
			diags = append(diags, locatedDiagnostic(m[1], m[2], m[3], domain.Severity(m[4]), m[5]))
			continue
		}
		if m := eslintUnixLine.FindStringSubmatch(line); m != nil {
			sev := domain.SeverityWarning
			if m[5] == "Error" {
				sev = domain.SeverityError
			}
			diags = append(diags, locatedDiagnostic(m[1], m[2], m[3], sev, m[4]))
			continue
		}
	}

	if len(diags) == 0 && failed {
		diags = append(diags, domain.Diagnostic{
			Message:  syntheticMessage(output),
			Severity: domain.SeverityError,
		})
	}
	return diags
}

func locatedDiagnostic(file, line, col string, sev domain.Severity, msg string) domain.Diagnostic {
	l, _ := strconv.Atoi(line)
	c, _ := strconv.Atoi(col)
	return domain.Diagnostic{
		File:     file,
		Line:     l,
		Column:   c,
		Message:  msg,
		Severity: sev,
	}
}

func syntheticMessage(output string) string {
	for line := range strings.Lines(output) {
		line = strings.TrimSpace(line)
		if line != "" {
			return "unrecognized checker output: " + line
		}
	}
	return "checker failed with no output"
}

// Test reporter summary shapes (jest, mocha, vitest).
var (
	jestSummary  = regexp.MustCompile(`Tests:\s+(?:(\d+) failed,\s*)?(?:(\d+) skipped,\s*)?(?:(\d+) passed,\s*)?(\d+) total`)
	mochaPassing = regexp.MustCompile(`(\d+) passing`)
	mochaFailing = regexp.MustCompile(`(\d+) failing`)
	mochaPending = regexp.MustCompile(`(\d+) pending`)
	wordPassed   = regexp.MustCompile(`(\d+) passed`)
	wordFailed   = regexp.MustCompile(`(\d+) failed`)
	wordSkipped  = regexp.MustCompile(`(\d+) skipped`)
	anyNumber    = regexp.MustCompile(`\d+`)
)

// parseTestSummary extracts pass/fail/skip counts from reporter output by
// pattern-matching common phrasings, with a bare-number heuristic when no
// named pattern matches.
func parseTestSummary(output string, passed bool, duration time.Duration) domain.TestSummary {
	sum := domain.TestSummary{Duration: domain.Millis(duration)}

	if m := jestSummary.FindStringSubmatch(output); m != nil {
		sum.Failed = atoiOrZero(m[1])
		sum.Skipped = atoiOrZero(m[2])
		sum.Passed = atoiOrZero(m[3])
		if sum.Passed == 0 && sum.Failed == 0 && sum.Skipped == 0 {
			sum.Passed = atoiOrZero(m[4])
		}
		return sum
	}

	if m := mochaPassing.FindStringSubmatch(output); m != nil {
		sum.Passed = atoiOrZero(m[1])
		if f := mochaFailing.FindStringSubmatch(output); f != nil {
			sum.Failed = atoiOrZero(f[1])
		}
		if p := mochaPending.FindStringSubmatch(output); p != nil {
			sum.Skipped = atoiOrZero(p[1])
		}
		return sum
	}

	matched := false
	if m := wordPassed.FindStringSubmatch(output); m != nil {
		sum.Passed = atoiOrZero(m[1])
		matched = true
	}
	if m := wordFailed.FindStringSubmatch(output); m != nil {
		sum.Failed = atoiOrZero(m[1])
		matched = true
	}
	if m := wordSkipped.FindStringSubmatch(output); m != nil {
		sum.Skipped = atoiOrZero(m[1])
		matched = true
	}
	if matched {
		return sum
	}

	// No named pattern matched. Fall back to the first bare number and
	// attribute it by exit status.
	if m := anyNumber.FindString(output); m != "" {
		n := atoiOrZero(m)
		if passed {
			sum.Passed = n
		} else {
			sum.Failed = n
		}
	}
	return sum
}

func atoiOrZero(s string) int {
	if s == "" {
		return 0
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
