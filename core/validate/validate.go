// core/validate/validate.go
package validate

import (
	"errors"
	"fmt"
	"io"

	"pafcheck-core/cigar"
	"pafcheck-core/strand"
)

// Result is what Check learned about one record.
type Result struct {
	Ops      []cigar.Op
	Query    []byte // normalized query window
	Target   []byte // normalized target window
	Findings []Finding
}

// Clean reports whether the record had no findings.
func (r *Result) Clean() bool { return len(r.Findings) == 0 }

// Check fetches both windows, normalizes them, parses the operator string
// and walks it. Grammar, fetch and bounds failures abort the record and are
// returned as errors; content disagreements come back as findings.
func Check(rec Record, p WindowProvider) (*Result, error) {
	qw, err := fetchWindow(p, Query, rec.QueryName, rec.QueryStart, rec.QueryEnd)
	if err != nil {
		return nil, err
	}
	tw, err := fetchWindow(p, Target, rec.TargetName, rec.TargetStart, rec.TargetEnd)
	if err != nil {
		return nil, err
	}
	res := &Result{
		Query:  strand.Normalize(qw, rec.Strand == Reverse),
		Target: strand.Normalize(tw, false),
	}
	res.Ops, err = cigar.Parse(rec.Cigar)
	if err != nil {
		return nil, fmt.Errorf("operator string: %w", err)
	}
	res.Findings, err = Walk(res.Ops, res.Query, res.Target, OriginOf(rec))
	if err != nil {
		return nil, err
	}
	return res, nil
}

// Validate checks rec and reports its findings to sink under mode.
func Validate(rec Record, p WindowProvider, mode Mode, sink io.Writer) error {
	res, err := Check(rec, p)
	if err != nil {
		return err
	}
	return Finalize(res.Findings, mode, sink)
}

func fetchWindow(p WindowProvider, side Side, name string, start, end uint64) ([]byte, error) {
	wrap := func(err error) error {
		var fe *FetchError
		if errors.As(err, &fe) {
			return err
		}
		return &FetchError{Side: side, Name: name, Start: start, End: end, Err: err}
	}
	if end < start {
		return nil, wrap(fmt.Errorf("%w: end before start", ErrOutOfRange))
	}
	w, err := p.Fetch(side, name, start, end)
	if err != nil {
		return nil, wrap(err)
	}
	if got := uint64(len(w)); got != end-start {
		return nil, wrap(fmt.Errorf("%w: got %d bases, want %d", ErrOutOfRange, got, end-start))
	}
	return w, nil
}

// Classify names the class of a record-level error for tallies and
// structured output. ok is false for errors this package did not produce.
func Classify(err error) (class string, ok bool) {
	var (
		ge *cigar.GrammarError
		fe *FetchError
		be *BoundsError
		ae *AggregatedError
	)
	switch {
	case errors.As(err, &ae):
		return "AggregatedError", true
	case errors.As(err, &ge):
		return "GrammarError", true
	case errors.As(err, &fe):
		return "SequenceFetchError", true
	case errors.As(err, &be):
		return "WindowBoundsError", true
	}
	return "", false
}
