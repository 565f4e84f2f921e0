// internal/writers/event.go
package writers

import (
	"pafcheck-core/validate"
	"pafcheck/internal/paf"
	"pafcheck/internal/pretty"
	"pafcheck/internal/report"
)

// Event is one unit of output: a checked record, or the run summary.
type Event struct {
	Source string // PAF path, "-" for stdin
	Line   int    // 1-based line in Source
	Record paf.Record
	Result *validate.Result // nil when the record was aborted
	Report string           // finding lines as written by validate.Finalize
	Failed bool             // Err is the error mode's *validate.AggregatedError
	Err    error            // fatal record error, or the aggregated failure

	Summary *Summary // set only on the final event
}

// Summary closes the run.
type Summary struct {
	RunID  string
	Mode   validate.Mode
	Inputs []string
	Census *report.Census
}

// Fatal reports whether the record was aborted before its findings were known.
func (e Event) Fatal() bool { return e.Err != nil && !e.Failed }

// Options shared by all writers.
type Options struct {
	Pretty     bool
	PrettyOpts pretty.Options
}
