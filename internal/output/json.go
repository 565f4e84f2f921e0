// internal/output/json.go
package output

import (
	"encoding/json"
	"io"

	"pafcheck-core/validate"
	"pafcheck/internal/paf"
	"pafcheck/internal/report"
	"pafcheck/pkg/api"
)

// ToAPIFinding converts a finding of the record at PAF line to the stable
// wire schema (v1).
func ToAPIFinding(line int, rec paf.Record, f validate.Finding, failed bool) api.FindingV1 {
	v := api.FindingV1{
		Line:       line,
		QueryName:  rec.QueryName,
		TargetName: rec.TargetName,
		Strand:     rec.Strand.String(),
		Kind:       f.Kind.String(),
		Message:    f.Line(),
		Failed:     failed,
	}
	if f.HasPos {
		idx := f.OpIndex
		qp, qf, tp := int64(f.QueryPos), int64(f.QueryFwdPos), int64(f.TargetPos)
		v.OpIndex = &idx
		v.Op = f.Op.String()
		v.QueryPos = &qp
		v.QueryFwdPos = &qf
		v.TargetPos = &tp
		v.QueryBase = string(f.QueryBase)
		v.TargetBase = string(f.TargetBase)
	}
	if f.Kind == validate.LengthMismatch {
		c, e := f.Consumed, f.Expected
		v.Side = f.Side.String()
		v.Consumed = &c
		v.Expected = &e
	}
	return v
}

// ToAPIRecordError converts a record-level failure. rec may be the zero
// Record when the line did not parse.
func ToAPIRecordError(line int, rec paf.Record, err error) api.RecordErrorV1 {
	return api.RecordErrorV1{
		Line:       line,
		Class:      report.ClassOf(err),
		Message:    err.Error(),
		QueryName:  rec.QueryName,
		TargetName: rec.TargetName,
	}
}

// ToAPISummary converts the run census.
func ToAPISummary(runID string, mode validate.Mode, inputs []string, c *report.Census) api.SummaryV1 {
	s := api.SummaryV1{
		RunID:        runID,
		Mode:         mode.String(),
		Inputs:       append([]string{}, inputs...),
		Records:      c.Records,
		Clean:        c.Clean,
		WithFindings: c.WithFindings,
		Failed:       c.Failed,
		Fatal:        c.Fatal,
		Findings:     map[string]int{},
		Errors:       map[string]int{},
		TotalErrors:  c.Total(),
		OK:           c.OK(),
	}
	for k, n := range c.Findings {
		s.Findings[k] = n
	}
	for k, n := range c.Errors {
		s.Errors[k] = n
	}
	return s
}

// EncodePretty writes v as indented JSON to w.
func EncodePretty(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// WriteReport writes a single pretty-printed v1 report document.
func WriteReport(w io.Writer, r api.ReportV1) error {
	if r.Findings == nil {
		r.Findings = []api.FindingV1{}
	}
	if r.RecordErrors == nil {
		r.RecordErrors = []api.RecordErrorV1{}
	}
	return EncodePretty(w, r)
}
