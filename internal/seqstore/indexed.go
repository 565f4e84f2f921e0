// internal/seqstore/indexed.go
package seqstore

import (
	"fmt"
	"io"
	"os"

	"github.com/biogo/hts/fai"

	"pafcheck-core/validate"
)

// Indexed reads windows straight from disk through a samtools .fai index.
// Reads go through io.ReaderAt, so it is safe for concurrent use.
type Indexed struct {
	path string
	fh   *os.File
	idx  fai.Index
	file *fai.File
}

// OpenIndexed opens path and its .fai index.
func OpenIndexed(path string) (*Indexed, error) {
	ifh, err := os.Open(IndexPath(path))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", validate.ErrIndexUnavailable, err)
	}
	idx, err := fai.ReadFrom(ifh)
	_ = ifh.Close()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", validate.ErrIndexUnavailable, IndexPath(path), err)
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	return &Indexed{path: path, fh: fh, idx: idx, file: fai.NewFile(fh, idx)}, nil
}

func (s *Indexed) Kind() string { return "faidx" }

func (s *Indexed) Len(name string) (uint64, bool) {
	rec, ok := s.idx[name]
	if !ok {
		return 0, false
	}
	return uint64(rec.Length), true
}

func (s *Indexed) Window(name string, start, end uint64) ([]byte, error) {
	rec, ok := s.idx[name]
	if !ok {
		return nil, unknown(name)
	}
	if err := checkRange(name, start, end, uint64(rec.Length)); err != nil {
		return nil, err
	}
	if start == end {
		return []byte{}, nil
	}
	seq, err := s.file.SeqRange(name, int(start), int(end))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", validate.ErrOutOfRange, s.path, err)
	}
	b, err := io.ReadAll(seq)
	if err != nil {
		return nil, fmt.Errorf("read %s:%d-%d from %s: %w", name, start, end, s.path, err)
	}
	return b, nil
}

func (s *Indexed) Close() error { return s.fh.Close() }
