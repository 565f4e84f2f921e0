package report

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pafcheck-core/cigar"
	"pafcheck-core/validate"
	"pafcheck/internal/paf"
)

func findings(kinds ...validate.FindingKind) *validate.Result {
	r := &validate.Result{}
	for _, k := range kinds {
		r.Findings = append(r.Findings, validate.Finding{Kind: k})
	}
	return r
}

func TestClassOf(t *testing.T) {
	_, perr := paf.ParseLine("too\tshort")
	assert.Equal(t, ClassRecordParse, ClassOf(perr))
	assert.Equal(t, "GrammarError", ClassOf(&cigar.GrammarError{Kind: cigar.UnknownOperator}))
	assert.Equal(t, "SequenceFetchError", ClassOf(&validate.FetchError{Err: validate.ErrUnknownName}))
	assert.Equal(t, "WindowBoundsError", ClassOf(&validate.BoundsError{}))
	assert.Equal(t, ClassRecord, ClassOf(errors.New("other")))
}

func TestCensusAdd(t *testing.T) {
	c := NewCensus()
	c.Add(&validate.Result{}, nil, false)
	c.Add(findings(validate.ClaimedEqualButDiffers, validate.ClaimedEqualButDiffers, validate.LengthMismatch), nil, true)
	c.Add(findings(validate.ClaimedDifferButEqual), nil, false)
	c.Add(nil, &validate.BoundsError{}, false)

	assert.Equal(t, 4, c.Records)
	assert.Equal(t, 1, c.Clean)
	assert.Equal(t, 2, c.WithFindings)
	assert.Equal(t, 1, c.Failed)
	assert.Equal(t, 1, c.Fatal)
	assert.Equal(t, 4, c.TotalFindings())
	assert.Equal(t, 1, c.TotalErrors())
	assert.Equal(t, 5, c.Total())
	assert.False(t, c.OK())
}

func TestSummaryClean(t *testing.T) {
	c := NewCensus()
	c.Add(&validate.Result{}, nil, false)
	var b bytes.Buffer
	require.NoError(t, c.WriteSummary(&b))
	assert.Equal(t, "[pafcheck] PAF validation completed successfully. No errors found.\n", b.String())
}

func TestSummaryWithErrors(t *testing.T) {
	c := NewCensus()
	c.Add(findings(validate.LengthMismatch, validate.ClaimedEqualButDiffers, validate.ClaimedEqualButDiffers), nil, false)
	c.Add(nil, &validate.FetchError{Err: validate.ErrOutOfRange}, false)
	c.Add(nil, &cigar.GrammarError{}, false)

	want := []string{
		"[pafcheck] PAF validation completed with errors:",
		"[pafcheck]   - ClaimedEqualButDiffers: 2 errors",
		"[pafcheck]   - LengthMismatch: 1 errors",
		"[pafcheck]   - GrammarError: 1 errors",
		"[pafcheck]   - SequenceFetchError: 1 errors",
		"[pafcheck] Total errors: 5",
	}
	assert.Equal(t, want, c.Summary())
}

func TestMerge(t *testing.T) {
	a, b := NewCensus(), NewCensus()
	a.Add(findings(validate.LengthMismatch), nil, true)
	b.Add(findings(validate.LengthMismatch), nil, false)
	b.Add(nil, errors.New("x"), false)
	a.Merge(b)
	assert.Equal(t, 3, a.Records)
	assert.Equal(t, 2, a.Findings["LengthMismatch"])
	assert.Equal(t, 1, a.Errors[ClassRecord])
	assert.Equal(t, 1, a.Failed)
}
