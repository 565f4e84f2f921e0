// core/fasta/reader.go
package fasta

import (
	"context"
	"fmt"
)

// Record is one parsed FASTA sequence.
type Record struct {
	ID  string
	Seq []byte
}

// ReadAll loads every record of the FASTA at path (plain, gzip, or "-")
// into memory, keyed by ID. Duplicate IDs are an error, since a name must
// resolve to exactly one sequence.
func ReadAll(ctx context.Context, path string) (map[string][]byte, error) {
	rc, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	seqs := make(map[string][]byte)
	err = Scan(ctx, rc, func(r Record) error {
		if _, dup := seqs[r.ID]; dup {
			return fmt.Errorf("fasta: %s: duplicate sequence name %q", path, r.ID)
		}
		seqs[r.ID] = r.Seq
		return nil
	})
	if err != nil {
		return nil, err
	}
	return seqs, nil
}
