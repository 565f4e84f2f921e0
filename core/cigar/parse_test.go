// core/cigar/parse_test.go
package cigar

import (
	"errors"
	"math"
	"reflect"
	"testing"
)

func TestParseSimple(t *testing.T) {
	got, err := Parse("5=1X6=")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	want := []Op{{Equal, 5}, {Diff, 1}, {Equal, 6}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Parse(5=1X6=) = %v, want %v", got, want)
	}
}

func TestParseAllKinds(t *testing.T) {
	got, err := Parse("10=2I3D1X")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	want := []Op{{Equal, 10}, {QueryOnly, 2}, {TargetOnly, 3}, {Diff, 1}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestParseEmpty(t *testing.T) {
	got, err := Parse("")
	if err != nil {
		t.Fatalf("empty input should parse, got %v", err)
	}
	if len(got) != 0 {
		t.Errorf("empty input gave %d ops", len(got))
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		in     string
		kind   GrammarErrorKind
		offset int
	}{
		{"=", InvalidCount, 0},
		{"5=X", InvalidCount, 2},
		{"5M", UnknownOperator, 1},
		{"5x", UnknownOperator, 1},
		{"3=4S", UnknownOperator, 3},
		{"5= 3X", InvalidCount, 2},
		{"12=34", TruncatedOperator, 3},
		{"7", TruncatedOperator, 0},
		{"0=", ZeroLength, 1},
		{"99999999999999999999=", InvalidCount, 20},
	}
	for _, c := range cases {
		_, err := Parse(c.in)
		var ge *GrammarError
		if !errors.As(err, &ge) {
			t.Errorf("Parse(%q) err = %v, want *GrammarError", c.in, err)
			continue
		}
		if ge.Kind != c.kind || ge.Offset != c.offset {
			t.Errorf("Parse(%q) = %v/%d, want %v/%d", c.in, ge.Kind, ge.Offset, c.kind, c.offset)
		}
		if ge.Error() == "" {
			t.Errorf("Parse(%q): empty error message", c.in)
		}
	}
}

func TestUnknownOperatorCarriesChar(t *testing.T) {
	_, err := Parse("4N")
	var ge *GrammarError
	if !errors.As(err, &ge) || ge.Char != 'N' {
		t.Fatalf("want UnknownOperator('N'), got %v", err)
	}
}

func TestFormatRoundTrip(t *testing.T) {
	for _, s := range []string{"", "1=", "5=1X6=", "6=2D6=", "100=3I7X"} {
		ops, err := Parse(s)
		if err != nil {
			t.Fatalf("Parse(%q): %v", s, err)
		}
		if got := Format(ops); got != s {
			t.Errorf("Format(Parse(%q)) = %q", s, got)
		}
	}
}

func TestSpan(t *testing.T) {
	ops, _ := Parse("6=1I6=2D1X")
	q, tg := Span(ops)
	if q != 14 || tg != 15 {
		t.Errorf("Span = (%d,%d), want (14,15)", q, tg)
	}
}

func TestSpanSaturates(t *testing.T) {
	ops, err := Parse("18446744073709551615I1I2=")
	if err != nil {
		t.Fatal(err)
	}
	q, tg := Span(ops)
	if q != math.MaxUint64 || tg != 2 {
		t.Errorf("Span = (%d,%d), want (MaxUint64,2)", q, tg)
	}
	if Advance(math.MaxUint64-1, 1) != math.MaxUint64 || Advance(3, 4) != 7 {
		t.Errorf("Advance should add exactly below the limit")
	}
}

func TestOpString(t *testing.T) {
	if s := (Op{TargetOnly, 42}).String(); s != "42D" {
		t.Errorf("Op.String = %q", s)
	}
	if Kind(9).Letter() != '?' {
		t.Errorf("unknown kind should render '?'")
	}
}
