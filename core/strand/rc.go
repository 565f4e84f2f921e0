// core/strand/rc.go
package strand

var complement [256]byte

func init() {
	for i := range complement {
		complement[i] = 'N'
	}
	for _, p := range [...][2]byte{{'A', 'T'}, {'C', 'G'}, {'G', 'C'}, {'T', 'A'}} {
		complement[p[0]] = p[1]
		complement[p[0]+'a'-'A'] = p[1]
	}
}

// RevComp returns the upper-case reverse complement of seq.
// Anything outside ACGT (ambiguity codes included) becomes 'N'.
func RevComp(seq []byte) []byte {
	n := len(seq)
	if n == 0 {
		return nil
	}
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		out[i] = complement[seq[n-1-i]]
	}
	return out
}

// Upper returns an upper-cased copy of seq.
func Upper(seq []byte) []byte {
	out := make([]byte, len(seq))
	for i, b := range seq {
		if b >= 'a' && b <= 'z' {
			b -= 'a' - 'A'
		}
		out[i] = b
	}
	return out
}

// Normalize orients a fetched window for comparison: always upper-cased,
// and reverse-complemented when reverse is set.
func Normalize(window []byte, reverse bool) []byte {
	if reverse {
		return RevComp(window)
	}
	return Upper(window)
}
