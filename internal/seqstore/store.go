// internal/seqstore/store.go
package seqstore

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"pafcheck-core/fasta"
	"pafcheck-core/validate"
)

// Store serves half-open windows of named sequences from one FASTA file.
// Errors wrap validate.ErrUnknownName, validate.ErrOutOfRange or
// validate.ErrIndexUnavailable so callers can tell them apart.
type Store interface {
	Window(name string, start, end uint64) ([]byte, error)
	Len(name string) (uint64, bool)
	Kind() string
	Close() error
}

// Open picks the store for path: Indexed when an uncompressed file has a
// .fai next to it, Memory otherwise (gzip, stdin, or no index).
func Open(ctx context.Context, path string) (Store, error) {
	if path != "-" {
		gz, err := fasta.IsGzip(path)
		if err != nil {
			return nil, err
		}
		if !gz {
			if _, err := os.Stat(IndexPath(path)); err == nil {
				return OpenIndexed(path)
			} else if !errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("%w: %v", validate.ErrIndexUnavailable, err)
			}
		}
	}
	return LoadMemory(ctx, path)
}

// IndexPath is the samtools faidx location for a FASTA file.
func IndexPath(path string) string { return path + ".fai" }

func checkRange(name string, start, end, length uint64) error {
	if start > end || end > length {
		return fmt.Errorf("%w: %s:%d-%d (sequence length %d)", validate.ErrOutOfRange, name, start, end, length)
	}
	return nil
}

func unknown(name string) error {
	return fmt.Errorf("%w: %q", validate.ErrUnknownName, name)
}
