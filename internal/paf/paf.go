// internal/paf/paf.go
package paf

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"pafcheck-core/validate"
)

// MandatoryFields is the number of fixed PAF columns.
const MandatoryFields = 12

// OperatorTag prefixes the extended CIGAR in the optional columns.
const OperatorTag = "cg:Z:"

// ErrNoOperatorString is returned for a record without a cg:Z: tag.
var ErrNoOperatorString = errors.New("no cg:Z: operator string")

// Record is one PAF line. The embedded validate.Record carries everything
// the checker needs; the remaining mandatory columns are kept for output.
type Record struct {
	validate.Record
	Matches  uint64 // column 10: residue matches
	BlockLen uint64 // column 11: alignment block length
	MapQ     uint64 // column 12: mapping quality
}

// ParseError reports a malformed PAF line.
type ParseError struct {
	Field string // column name, empty for line-level problems
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	if e.Field == "" {
		return "parse PAF record: " + e.Err.Error()
	}
	return fmt.Sprintf("parse PAF record: %s %q: %v", e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ParseLine parses one tab-separated PAF line (without the newline).
func ParseLine(line string) (Record, error) {
	f := strings.Split(strings.TrimRight(line, "\r"), "\t")
	if len(f) < MandatoryFields {
		return Record{}, &ParseError{Err: fmt.Errorf("%d fields, want at least %d", len(f), MandatoryFields)}
	}

	var (
		rec Record
		err error
	)
	num := func(name, s string) uint64 {
		if err != nil {
			return 0
		}
		n, perr := strconv.ParseUint(s, 10, 64)
		if perr != nil {
			err = &ParseError{Field: name, Value: s, Err: perr}
		}
		return n
	}

	rec.QueryName = f[0]
	rec.QueryLen = num("query length", f[1])
	rec.QueryStart = num("query start", f[2])
	rec.QueryEnd = num("query end", f[3])
	rec.TargetName = f[5]
	rec.TargetLen = num("target length", f[6])
	rec.TargetStart = num("target start", f[7])
	rec.TargetEnd = num("target end", f[8])
	rec.Matches = num("residue matches", f[9])
	rec.BlockLen = num("block length", f[10])
	rec.MapQ = num("mapping quality", f[11])
	if err != nil {
		return Record{}, err
	}

	switch f[4] {
	case "+":
		rec.Strand = validate.Forward
	case "-":
		rec.Strand = validate.Reverse
	default:
		return Record{}, &ParseError{Field: "strand", Value: f[4], Err: errors.New("want + or -")}
	}
	if rec.QueryName == "" {
		return Record{}, &ParseError{Field: "query name", Err: errors.New("empty")}
	}
	if rec.TargetName == "" {
		return Record{}, &ParseError{Field: "target name", Err: errors.New("empty")}
	}
	if err := checkSpan("query", rec.QueryStart, rec.QueryEnd, rec.QueryLen); err != nil {
		return Record{}, err
	}
	if err := checkSpan("target", rec.TargetStart, rec.TargetEnd, rec.TargetLen); err != nil {
		return Record{}, err
	}

	found := false
	for _, tag := range f[MandatoryFields:] {
		if strings.HasPrefix(tag, OperatorTag) {
			rec.Cigar = tag[len(OperatorTag):]
			found = true
			break
		}
	}
	if !found {
		return Record{}, &ParseError{Err: ErrNoOperatorString}
	}
	return rec, nil
}

func checkSpan(side string, start, end, length uint64) error {
	if start > end || end > length {
		return &ParseError{
			Field: side + " span",
			Value: fmt.Sprintf("%d-%d", start, end),
			Err:   fmt.Errorf("want start <= end <= %d", length),
		}
	}
	return nil
}
