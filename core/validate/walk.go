// core/validate/walk.go
package validate

import (
	"fmt"

	"pafcheck-core/cigar"
)

// BoundsError means an Equal/Diff run reaches past the end of a fetched
// window: the record's declared span does not match what was fetched.
type BoundsError struct {
	OpIndex   int
	Op        cigar.Op
	QueryIdx  uint64
	TargetIdx uint64
	QueryLen  uint64
	TargetLen uint64
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("op %d (%s) at query offset %d/target offset %d runs past the windows (query %d bases, target %d bases)",
		e.OpIndex, e.Op, e.QueryIdx, e.TargetIdx, e.QueryLen, e.TargetLen)
}

// fits reports whether a run of n starting at idx stays inside a window of size size.
func fits(idx, n, size uint64) bool {
	return idx <= size && n <= size-idx
}

// Walk consumes ops against the normalized query and target windows and
// returns every disagreement it finds, in traversal order, followed by the
// end-of-walk length checks. It never stops at the first finding; the only
// early exit is a *BoundsError. Cursors saturate at math.MaxUint64, so an
// overlong insertion or deletion surfaces as a LengthMismatch or a
// *BoundsError rather than wrapping.
func Walk(ops []cigar.Op, query, target []byte, origin Origin) ([]Finding, error) {
	var (
		findings []Finding
		q, t     uint64
		qLen     = uint64(len(query))
		tLen     = uint64(len(target))
	)
	for idx, op := range ops {
		switch op.Kind {
		case cigar.Equal, cigar.Diff:
			if !fits(q, op.Len, qLen) || !fits(t, op.Len, tLen) {
				return nil, &BoundsError{OpIndex: idx, Op: op, QueryIdx: q, TargetIdx: t, QueryLen: qLen, TargetLen: tLen}
			}
			wantEqual := op.Kind == cigar.Equal
			for i := uint64(0); i < op.Len; i++ {
				qb, tb := query[q+i], target[t+i]
				if (qb == tb) == wantEqual {
					continue
				}
				findings = append(findings, baseFinding(idx, op, q+i, t+i, qb, tb, origin))
			}
			q += op.Len
			t += op.Len
		case cigar.QueryOnly:
			q = cigar.Advance(q, op.Len)
		case cigar.TargetOnly:
			t = cigar.Advance(t, op.Len)
		}
	}
	if q != qLen {
		findings = append(findings, lengthFinding(Query, q, qLen, origin.QueryName, origin.QueryStart))
	}
	if t != tLen {
		findings = append(findings, lengthFinding(Target, t, tLen, origin.TargetName, origin.TargetStart))
	}
	return findings, nil
}

func baseFinding(idx int, op cigar.Op, qOff, tOff uint64, qb, tb byte, o Origin) Finding {
	f := Finding{
		HasPos:       true,
		OpIndex:      idx,
		Op:           op,
		QueryOffset:  qOff,
		TargetOffset: tOff,
		QueryPos:     o.QueryPos(qOff),
		QueryFwdPos:  o.QueryFwdPos(qOff),
		TargetPos:    o.TargetPos(tOff),
		QueryBase:    qb,
		TargetBase:   tb,
	}
	if op.Kind == cigar.Equal {
		f.Kind = ClaimedEqualButDiffers
		f.Message = fmt.Sprintf("op %d (%s) claims equal at query %s:%d / target %s:%d but query %c != target %c",
			idx, op, o.QueryName, f.QueryPos, o.TargetName, f.TargetPos, qb, tb)
	} else {
		f.Kind = ClaimedDifferButEqual
		f.Message = fmt.Sprintf("op %d (%s) claims mismatch at query %s:%d / target %s:%d but query %c == target %c",
			idx, op, o.QueryName, f.QueryPos, o.TargetName, f.TargetPos, qb, tb)
	}
	return f
}

func lengthFinding(side Side, consumed, expected uint64, name string, start uint64) Finding {
	return Finding{
		Kind:     LengthMismatch,
		OpIndex:  -1,
		Side:     side,
		Consumed: consumed,
		Expected: expected,
		Message: fmt.Sprintf("%s %s:%d-%d: operations consume %d bases but the window holds %d",
			side, name, start, start+expected, consumed, expected),
	}
}
