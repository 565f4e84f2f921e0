package pretty

import (
	"fmt"
	"strings"

	"pafcheck-core/validate"
)

// Options control the ASCII rendering.
type Options struct {
	// Bases shown on each side of the finding column. If <0, use 0.
	Flank int

	// Glyphs
	EqualGlyph string // default "|"
	DiffGlyph  string // default "x"
}

// DefaultOptions is the look used by --pretty.
var DefaultOptions = Options{
	Flank:      10,
	EqualGlyph: "|",
	DiffGlyph:  "x",
}

const linePrefix = "# "

// RenderFinding draws the bases around a positional finding: a header, the
// query slice, a marker row and the target slice. Both slices are cut so
// the finding sits in the same column; the rows are not gap-aware. Findings
// without a position (LengthMismatch) render as "".
func RenderFinding(res *validate.Result, f validate.Finding, opt Options) string {
	if res == nil || !f.HasPos {
		return ""
	}
	if opt.EqualGlyph == "" {
		opt.EqualGlyph = DefaultOptions.EqualGlyph
	}
	if opt.DiffGlyph == "" {
		opt.DiffGlyph = DefaultOptions.DiffGlyph
	}
	flank := opt.Flank
	if flank < 0 {
		flank = 0
	}
	q, t := res.Query, res.Target
	qo, to := int(f.QueryOffset), int(f.TargetOffset)
	if qo >= len(q) || to >= len(t) {
		return ""
	}

	left := min(flank, qo, to)
	right := min(flank, len(q)-1-qo, len(t)-1-to)
	qs := q[qo-left : qo+right+1]
	ts := t[to-left : to+right+1]

	var marks strings.Builder
	for i := range qs {
		if qs[i] == ts[i] {
			marks.WriteString(opt.EqualGlyph)
		} else {
			marks.WriteString(opt.DiffGlyph)
		}
	}

	qLabel := fmt.Sprintf("query  %d", f.QueryPos)
	tLabel := fmt.Sprintf("target %d", f.TargetPos)
	w := max(len(qLabel), len(tLabel))

	var b strings.Builder
	fmt.Fprintf(&b, "%sop %d (%s) %s\n", linePrefix, f.OpIndex, f.Op, f.Kind)
	fmt.Fprintf(&b, "%s%-*s  %s\n", linePrefix, w, qLabel, qs)
	fmt.Fprintf(&b, "%s%-*s  %s\n", linePrefix, w, "", marks.String())
	fmt.Fprintf(&b, "%s%-*s  %s\n", linePrefix, w, tLabel, ts)
	fmt.Fprintf(&b, "%s%-*s  %s^\n", linePrefix, w, "", strings.Repeat(" ", left))
	return b.String()
}
