// internal/seqstore/memory.go
package seqstore

import (
	"context"

	"pafcheck-core/fasta"
)

// Memory holds every sequence of a FASTA file in memory. It is read-only
// after loading and safe for concurrent use.
type Memory struct {
	seqs map[string][]byte
}

// LoadMemory reads a plain or gzip FASTA (or stdin for "-").
func LoadMemory(ctx context.Context, path string) (*Memory, error) {
	seqs, err := fasta.ReadAll(ctx, path)
	if err != nil {
		return nil, err
	}
	return &Memory{seqs: seqs}, nil
}

// NewMemory wraps already-loaded sequences.
func NewMemory(seqs map[string][]byte) *Memory { return &Memory{seqs: seqs} }

func (m *Memory) Kind() string { return "memory" }

func (m *Memory) Len(name string) (uint64, bool) {
	s, ok := m.seqs[name]
	return uint64(len(s)), ok
}

func (m *Memory) Window(name string, start, end uint64) ([]byte, error) {
	s, ok := m.seqs[name]
	if !ok {
		return nil, unknown(name)
	}
	if err := checkRange(name, start, end, uint64(len(s))); err != nil {
		return nil, err
	}
	return append([]byte(nil), s[start:end]...), nil
}

func (m *Memory) Close() error { return nil }
