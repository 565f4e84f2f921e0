// core/validate/record.go
package validate

// Side names one of the two sequence collections.
type Side uint8

const (
	Query Side = iota
	Target
)

func (s Side) String() string {
	if s == Target {
		return "target"
	}
	return "query"
}

// Strand is the relative orientation of query and target.
type Strand uint8

const (
	Forward Strand = iota
	Reverse
)

// Rune returns '+' or '-'.
func (s Strand) Rune() rune {
	if s == Reverse {
		return '-'
	}
	return '+'
}

func (s Strand) String() string { return string(s.Rune()) }

// Record is one alignment to verify. Coordinates are 0-based, half-open.
type Record struct {
	QueryName   string
	QueryLen    uint64
	QueryStart  uint64
	QueryEnd    uint64
	Strand      Strand
	TargetName  string
	TargetLen   uint64
	TargetStart uint64
	TargetEnd   uint64
	Cigar       string
}

// Origin maps window offsets back to absolute sequence coordinates.
type Origin struct {
	QueryName   string
	QueryStart  uint64
	QueryEnd    uint64
	Reverse     bool // query window was reverse-complemented
	TargetName  string
	TargetStart uint64
}

// OriginOf returns the Origin for rec.
func OriginOf(rec Record) Origin {
	return Origin{
		QueryName:   rec.QueryName,
		QueryStart:  rec.QueryStart,
		QueryEnd:    rec.QueryEnd,
		Reverse:     rec.Strand == Reverse,
		TargetName:  rec.TargetName,
		TargetStart: rec.TargetStart,
	}
}

// QueryPos is the absolute query coordinate of window offset k, counted
// from QueryStart in walk order on both strands.
func (o Origin) QueryPos(k uint64) uint64 { return o.QueryStart + k }

// QueryFwdPos is the forward-strand query coordinate of window offset k.
// It differs from QueryPos only for reverse records.
func (o Origin) QueryFwdPos(k uint64) uint64 {
	if o.Reverse {
		return o.QueryEnd - 1 - k
	}
	return o.QueryStart + k
}

// TargetPos is the target coordinate of window offset k.
func (o Origin) TargetPos(k uint64) uint64 { return o.TargetStart + k }
