// core/cigar/op.go
package cigar

import (
	"math"
	"strconv"
)

// Kind identifies one of the four extended-CIGAR operations pafcheck understands.
type Kind uint8

const (
	Equal      Kind = iota // '=' run of identical bases
	Diff                   // 'X' run of differing bases
	QueryOnly              // 'I' bases present in the query only
	TargetOnly             // 'D' bases present in the target only
)

var kindLetters = [...]byte{Equal: '=', Diff: 'X', QueryOnly: 'I', TargetOnly: 'D'}

// Letter returns the operator letter for k.
func (k Kind) Letter() byte {
	if int(k) < len(kindLetters) {
		return kindLetters[k]
	}
	return '?'
}

func (k Kind) String() string {
	switch k {
	case Equal:
		return "Equal"
	case Diff:
		return "Diff"
	case QueryOnly:
		return "QueryOnly"
	case TargetOnly:
		return "TargetOnly"
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// ConsumesQuery reports whether k advances the query cursor.
func (k Kind) ConsumesQuery() bool { return k == Equal || k == Diff || k == QueryOnly }

// ConsumesTarget reports whether k advances the target cursor.
func (k Kind) ConsumesTarget() bool { return k == Equal || k == Diff || k == TargetOnly }

// Op is a single run-length operation.
type Op struct {
	Kind Kind
	Len  uint64
}

// String renders the op in CIGAR form, e.g. "12=".
func (o Op) String() string {
	return strconv.FormatUint(o.Len, 10) + string(o.Kind.Letter())
}

// Format renders ops back to a compact operator string.
func Format(ops []Op) string {
	b := make([]byte, 0, len(ops)*4)
	for _, o := range ops {
		b = strconv.AppendUint(b, o.Len, 10)
		b = append(b, o.Kind.Letter())
	}
	return string(b)
}

// Span returns how many query and target bases ops consume. A total that
// does not fit in 64 bits is reported as math.MaxUint64.
func Span(ops []Op) (query, target uint64) {
	for _, o := range ops {
		if o.Kind.ConsumesQuery() {
			query = Advance(query, o.Len)
		}
		if o.Kind.ConsumesTarget() {
			target = Advance(target, o.Len)
		}
	}
	return query, target
}

// Advance returns pos+n, stopping at math.MaxUint64 instead of wrapping.
func Advance(pos, n uint64) uint64 {
	if n > math.MaxUint64-pos {
		return math.MaxUint64
	}
	return pos + n
}
