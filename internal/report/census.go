// internal/report/census.go
package report

import (
	"errors"
	"fmt"
	"io"
	"sort"

	"pafcheck-core/validate"
	"pafcheck/internal/paf"
)

// Error classes that validate.Classify does not produce.
const (
	ClassRecordParse = "RecordParseError"
	ClassRecord      = "RecordError"
)

// ClassOf names the class of a record-level error.
func ClassOf(err error) string {
	if class, ok := validate.Classify(err); ok {
		return class
	}
	var pe *paf.ParseError
	if errors.As(err, &pe) {
		return ClassRecordParse
	}
	return ClassRecord
}

// Census folds per-record outcomes into run totals.
type Census struct {
	Records      int // data lines seen
	Clean        int // checked without findings
	WithFindings int // checked, at least one finding
	Failed       int // records failed by the error mode (fail-fast with findings)
	Fatal        int // aborted by a parse, fetch, grammar or bounds error

	Findings map[string]int // per finding kind
	Errors   map[string]int // fatal errors per class
}

func NewCensus() *Census {
	return &Census{Findings: map[string]int{}, Errors: map[string]int{}}
}

// Add records one outcome. res is nil when fatal is set; failed reports
// whether the error mode turned the findings into a record failure.
func (c *Census) Add(res *validate.Result, fatal error, failed bool) {
	c.Records++
	if fatal != nil {
		c.Fatal++
		c.Errors[ClassOf(fatal)]++
		return
	}
	if res == nil || res.Clean() {
		c.Clean++
		return
	}
	c.WithFindings++
	if failed {
		c.Failed++
	}
	for _, f := range res.Findings {
		c.Findings[f.Kind.String()]++
	}
}

// Merge adds o's totals into c.
func (c *Census) Merge(o *Census) {
	c.Records += o.Records
	c.Clean += o.Clean
	c.WithFindings += o.WithFindings
	c.Failed += o.Failed
	c.Fatal += o.Fatal
	for k, n := range o.Findings {
		c.Findings[k] += n
	}
	for k, n := range o.Errors {
		c.Errors[k] += n
	}
}

func (c *Census) TotalFindings() int {
	n := 0
	for _, v := range c.Findings {
		n += v
	}
	return n
}

func (c *Census) TotalErrors() int {
	n := 0
	for _, v := range c.Errors {
		n += v
	}
	return n
}

// OK reports whether the run saw neither findings nor fatal records.
func (c *Census) OK() bool { return c.TotalFindings() == 0 && c.Fatal == 0 }

// Total is every finding plus every fatal record.
func (c *Census) Total() int { return c.TotalFindings() + c.TotalErrors() }

// Summary returns the closing lines of a text report. Finding kinds come
// first in their stable order, then error classes alphabetically.
func (c *Census) Summary() []string {
	const p = "[pafcheck] "
	if c.OK() {
		return []string{p + "PAF validation completed successfully. No errors found."}
	}
	out := []string{p + "PAF validation completed with errors:"}
	for _, k := range validate.FindingKinds {
		if n := c.Findings[k.String()]; n > 0 {
			out = append(out, fmt.Sprintf("%s  - %s: %d errors", p, k, n))
		}
	}
	classes := make([]string, 0, len(c.Errors))
	for k := range c.Errors {
		classes = append(classes, k)
	}
	sort.Strings(classes)
	for _, k := range classes {
		out = append(out, fmt.Sprintf("%s  - %s: %d errors", p, k, c.Errors[k]))
	}
	return append(out, fmt.Sprintf("%sTotal errors: %d", p, c.Total()))
}

func (c *Census) WriteSummary(w io.Writer) error {
	for _, l := range c.Summary() {
		if _, err := fmt.Fprintln(w, l); err != nil {
			return err
		}
	}
	return nil
}
