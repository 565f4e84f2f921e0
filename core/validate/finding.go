// core/validate/finding.go
package validate

import (
	"strconv"

	"pafcheck-core/cigar"
)

// FindingKind is the stable class of a content disagreement.
// The names are part of the output format; do not rename.
type FindingKind uint8

const (
	ClaimedEqualButDiffers FindingKind = iota
	ClaimedDifferButEqual
	LengthMismatch
)

// FindingKinds lists every kind in reporting order.
var FindingKinds = []FindingKind{ClaimedEqualButDiffers, ClaimedDifferButEqual, LengthMismatch}

func (k FindingKind) String() string {
	switch k {
	case ClaimedEqualButDiffers:
		return "ClaimedEqualButDiffers"
	case ClaimedDifferButEqual:
		return "ClaimedDifferButEqual"
	case LengthMismatch:
		return "LengthMismatch"
	}
	return "FindingKind(" + strconv.Itoa(int(k)) + ")"
}

// Finding is one disagreement between the operator string and the sequences.
//
// Base-level findings (HasPos) carry the op that made the claim, the window
// offsets, the absolute coordinates and both observed bases. QueryPos is
// QueryStart plus the walk offset; QueryFwdPos maps reverse records back to
// the forward strand of the query. LengthMismatch
// findings carry Side plus Consumed (cursor) and Expected (window length).
type Finding struct {
	Kind    FindingKind
	Message string

	HasPos       bool
	OpIndex      int
	Op           cigar.Op
	QueryOffset  uint64
	TargetOffset uint64
	QueryPos     uint64
	QueryFwdPos  uint64
	TargetPos    uint64
	QueryBase    byte
	TargetBase   byte

	Side     Side
	Consumed uint64
	Expected uint64
}

// Line renders the finding as "<Kind>: <message>".
func (f Finding) Line() string { return f.Kind.String() + ": " + f.Message }
