// core/cigar/parse.go
package cigar

import (
	"fmt"
	"strconv"
)

// GrammarErrorKind classifies a malformed operator string.
type GrammarErrorKind uint8

const (
	InvalidCount      GrammarErrorKind = iota // no digits before a letter, or count overflow
	UnknownOperator                           // letter outside {=,X,I,D}
	TruncatedOperator                         // trailing digits with no letter
	ZeroLength                                // a run of length 0
)

func (k GrammarErrorKind) String() string {
	switch k {
	case InvalidCount:
		return "InvalidCount"
	case UnknownOperator:
		return "UnknownOperator"
	case TruncatedOperator:
		return "TruncatedOperator"
	case ZeroLength:
		return "ZeroLength"
	}
	return "GrammarErrorKind(" + strconv.Itoa(int(k)) + ")"
}

// GrammarError reports where and why an operator string failed to parse.
// Offset is the byte offset of the offending character (or of the trailing
// count for TruncatedOperator).
type GrammarError struct {
	Kind   GrammarErrorKind
	Offset int
	Char   byte   // offending letter (UnknownOperator, InvalidCount)
	Count  string // pending digits, if any
}

func (e *GrammarError) Error() string {
	switch e.Kind {
	case UnknownOperator:
		return fmt.Sprintf("cigar: unknown operator %q at offset %d", e.Char, e.Offset)
	case TruncatedOperator:
		return fmt.Sprintf("cigar: truncated operator: count %q at offset %d has no operator letter", e.Count, e.Offset)
	case ZeroLength:
		return fmt.Sprintf("cigar: zero-length %q run at offset %d", e.Char, e.Offset)
	}
	if e.Count == "" {
		return fmt.Sprintf("cigar: invalid count: operator %q at offset %d has no preceding digits", e.Char, e.Offset)
	}
	return fmt.Sprintf("cigar: invalid count %q before %q at offset %d", e.Count, e.Char, e.Offset)
}

// Parse turns an operator string like "5=1X6=" into ops.
// The empty string parses to an empty (nil) slice.
func Parse(s string) ([]Op, error) {
	var ops []Op
	start := -1 // offset of the first pending digit, -1 when none
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= '0' && c <= '9' {
			if start < 0 {
				start = i
			}
			continue
		}
		var digits string
		if start >= 0 {
			digits = s[start:i]
		}
		if digits == "" {
			return nil, &GrammarError{Kind: InvalidCount, Offset: i, Char: c}
		}
		n, err := strconv.ParseUint(digits, 10, 64)
		if err != nil {
			return nil, &GrammarError{Kind: InvalidCount, Offset: i, Char: c, Count: digits}
		}
		var k Kind
		switch c {
		case '=':
			k = Equal
		case 'X':
			k = Diff
		case 'I':
			k = QueryOnly
		case 'D':
			k = TargetOnly
		default:
			return nil, &GrammarError{Kind: UnknownOperator, Offset: i, Char: c, Count: digits}
		}
		if n == 0 {
			return nil, &GrammarError{Kind: ZeroLength, Offset: i, Char: c, Count: digits}
		}
		ops = append(ops, Op{Kind: k, Len: n})
		start = -1
	}
	if start >= 0 {
		return nil, &GrammarError{Kind: TruncatedOperator, Offset: start, Count: s[start:]}
	}
	return ops, nil
}
