// internal/seqstore/pair.go
package seqstore

import (
	"context"
	"errors"

	"pafcheck-core/validate"
)

// Pair serves the query and target collections; it is the
// validate.WindowProvider the pipeline hands to validate.Check.
type Pair struct {
	Query  Store
	Target Store
}

// OpenPair opens both FASTA files. When the paths are equal a single store
// is shared, so a self-alignment does not load the file twice.
func OpenPair(ctx context.Context, queryPath, targetPath string) (*Pair, error) {
	q, err := Open(ctx, queryPath)
	if err != nil {
		return nil, err
	}
	if targetPath == "" || targetPath == queryPath {
		return &Pair{Query: q, Target: q}, nil
	}
	t, err := Open(ctx, targetPath)
	if err != nil {
		_ = q.Close()
		return nil, err
	}
	return &Pair{Query: q, Target: t}, nil
}

func (p *Pair) store(side validate.Side) Store {
	if side == validate.Target {
		return p.Target
	}
	return p.Query
}

// Fetch implements validate.WindowProvider.
func (p *Pair) Fetch(side validate.Side, name string, start, end uint64) ([]byte, error) {
	return p.store(side).Window(name, start, end)
}

// Len reports the full length of a named sequence on one side.
func (p *Pair) Len(side validate.Side, name string) (uint64, bool) {
	return p.store(side).Len(name)
}

// Shared reports whether query and target come from the same store.
func (p *Pair) Shared() bool { return p.Query == p.Target }

func (p *Pair) Close() error {
	err := p.Query.Close()
	if !p.Shared() {
		err = errors.Join(err, p.Target.Close())
	}
	return err
}
