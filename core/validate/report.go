// core/validate/report.go
package validate

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// Mode selects how Finalize treats a record that has findings.
type Mode uint8

const (
	// FailFast writes the findings, then fails the record with an *AggregatedError.
	FailFast Mode = iota
	// ReportAndContinue writes the findings and always succeeds.
	ReportAndContinue
)

// ErrInvalidMode is returned by ParseMode for unrecognized names.
var ErrInvalidMode = errors.New("invalid error mode")

// ParseMode accepts "report", "omit" and its alias "fail-fast".
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "report":
		return ReportAndContinue, nil
	case "omit", "fail-fast":
		return FailFast, nil
	}
	return FailFast, fmt.Errorf("%w %q (want report | omit)", ErrInvalidMode, s)
}

func (m Mode) String() string {
	if m == ReportAndContinue {
		return "report"
	}
	return "omit"
}

// AggregatedError carries every finding of a failed record.
type AggregatedError struct {
	Findings []Finding
}

func (e *AggregatedError) Error() string {
	if len(e.Findings) == 1 {
		return "1 validation error: " + e.Findings[0].Line()
	}
	return fmt.Sprintf("%d validation errors, first: %s", len(e.Findings), e.Findings[0].Line())
}

// Finalize writes each finding to sink as "<Kind>: <message>", in order, and
// applies mode. A sink write failure is returned as-is (wrapped).
func Finalize(findings []Finding, mode Mode, sink io.Writer) error {
	for _, f := range findings {
		if _, err := io.WriteString(sink, f.Line()+"\n"); err != nil {
			return fmt.Errorf("write finding: %w", err)
		}
	}
	if mode == ReportAndContinue || len(findings) == 0 {
		return nil
	}
	return &AggregatedError{Findings: findings}
}
