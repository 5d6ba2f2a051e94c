package domain

import (
	"encoding/json"
	"time"
)

// OperationType identifies the kind of cached operation.
type OperationType string

const (
	OpCompile OperationType = "compile"
	OpStyle   OperationType = "style"
	OpTest    OperationType = "test"
)

// Severity of a diagnostic reported by an external checker.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// Diagnostic is a single finding parsed from checker output. File, Line and
// Column are zero when the output carried no location.
type Diagnostic struct {
	File     string   `json:"file,omitempty"`
	Line     int      `json:"line,omitempty"`
	Column   int      `json:"column,omitempty"`
	Message  string   `json:"message"`
	Severity Severity `json:"severity"`
}

// Millis is a duration that travels over JSON as integer milliseconds.
type Millis time.Duration

// MarshalJSON implements json.Marshaler.
func (m Millis) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(m).Milliseconds())
}

// UnmarshalJSON implements json.Unmarshaler.
func (m *Millis) UnmarshalJSON(data []byte) error {
	var ms int64
	if err := json.Unmarshal(data, &ms); err != nil {
		return err
	}
	*m = Millis(time.Duration(ms) * time.Millisecond)
	return nil
}

// Std returns the duration as a time.Duration.
func (m Millis) Std() time.Duration {
	return time.Duration(m)
}

// TestSummary is the structured payload of a cached test run.
type TestSummary struct {
	TestFiles []string `json:"testFiles"`
	Passed    int      `json:"passed"`
	Failed    int      `json:"failed"`
	Skipped   int      `json:"skipped"`
	Duration  Millis   `json:"durationMs"`
}

// OperationRecord binds an operation's result to the exact set of file
// fingerprints that produced it. FileFingerprints must contain an entry for
// every file that influenced RawOutput; a file missing from the set silently
// widens the record's validity window. A nil map marks the record as
// corrupted and permanently invalid, while an empty non-nil map is a record
// with no file dependencies and is trivially valid.
//
// The payload is a tagged union on Type: Diagnostics for compile and style
// checks, Tests for test runs.
type OperationRecord struct {
	Type             OperationType     `json:"type"`
	Success          bool              `json:"success"`
	RawOutput        string            `json:"rawOutput"`
	Error            string            `json:"error,omitempty"`
	ProducedAt       time.Time         `json:"producedAt"`
	FileFingerprints map[string]string `json:"fileFingerprints"`

	Diagnostics []Diagnostic `json:"diagnostics,omitempty"`
	Tests       *TestSummary `json:"tests,omitempty"`
}
