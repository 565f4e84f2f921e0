// pkg/api/report_v1.go
package api

// FindingV1 is the stable JSON/JSONL schema for one content finding.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type FindingV1 struct {
	Line       int    `json:"line"` // 1-based PAF line
	QueryName  string `json:"query_name"`
	TargetName string `json:"target_name"`
	Strand     string `json:"strand"` // "+" | "-"
	Kind       string `json:"kind"`
	Message    string `json:"message"` // "<kind>: <detail>", as written in text mode

	OpIndex     *int   `json:"op_index,omitempty"`
	Op          string `json:"op,omitempty"` // e.g. "12="
	QueryPos    *int64 `json:"query_pos,omitempty"`
	QueryFwdPos *int64 `json:"query_fwd_pos,omitempty"` // forward-strand query coordinate
	TargetPos   *int64 `json:"target_pos,omitempty"`
	QueryBase   string `json:"query_base,omitempty"`
	TargetBase  string `json:"target_base,omitempty"`

	Side     string  `json:"side,omitempty"` // LengthMismatch only
	Consumed *uint64 `json:"consumed,omitempty"`
	Expected *uint64 `json:"expected,omitempty"`

	Failed     bool   `json:"failed,omitempty"` // record failed under the omit mode
	SourceFile string `json:"source_file,omitempty"`
}

// RecordErrorV1 describes a record that could not be checked.
type RecordErrorV1 struct {
	Line       int    `json:"line"`
	Class      string `json:"class"`
	Message    string `json:"message"`
	QueryName  string `json:"query_name,omitempty"`
	TargetName string `json:"target_name,omitempty"`
	SourceFile string `json:"source_file,omitempty"`
}

// SummaryV1 closes a run.
type SummaryV1 struct {
	RunID        string         `json:"run_id"`
	Mode         string         `json:"mode"` // "report" | "omit"
	Inputs       []string       `json:"inputs"`
	Records      int            `json:"records"`
	Clean        int            `json:"clean"`
	WithFindings int            `json:"with_findings"`
	Failed       int            `json:"failed"`
	Fatal        int            `json:"fatal"`
	Findings     map[string]int `json:"findings"`
	Errors       map[string]int `json:"errors"`
	TotalErrors  int            `json:"total_errors"`
	OK           bool           `json:"ok"`
}

// EventV1 is one JSONL line. Exactly one payload field is set, matching Type.
type EventV1 struct {
	Type        string         `json:"type"` // "finding" | "record_error" | "summary"
	Finding     *FindingV1     `json:"finding,omitempty"`
	RecordError *RecordErrorV1 `json:"record_error,omitempty"`
	Summary     *SummaryV1     `json:"summary,omitempty"`
}

// ReportV1 is the single document written by the json format.
type ReportV1 struct {
	Findings     []FindingV1     `json:"findings"`
	RecordErrors []RecordErrorV1 `json:"record_errors"`
	Summary      SummaryV1       `json:"summary"`
}
