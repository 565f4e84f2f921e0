// internal/paf/scanner.go
package paf

import (
	"bufio"
	"io"
)

const maxLine = 64 * 1024 * 1024 // long cg:Z: tags on chromosome-scale alignments

// Scanner yields the non-blank, non-comment lines of a PAF stream together
// with their 1-based line numbers.
type Scanner struct {
	sc   *bufio.Scanner
	text string
	line int
}

func NewScanner(r io.Reader) *Scanner {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), maxLine)
	return &Scanner{sc: sc}
}

// Scan advances to the next data line.
func (s *Scanner) Scan() bool {
	for s.sc.Scan() {
		s.line++
		t := s.sc.Text()
		if len(t) == 0 || t == "\r" || t[0] == '#' {
			continue
		}
		s.text = t
		return true
	}
	return false
}

// Text is the current line without its terminator.
func (s *Scanner) Text() string { return s.text }

// Line is the 1-based line number of Text in the input.
func (s *Scanner) Line() int { return s.line }

func (s *Scanner) Err() error { return s.sc.Err() }
