// core/fasta/stream.go
package fasta

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
)

// Scan parses FASTA from r and calls emit once per record with its whole
// sequence. Sequence lines are concatenated with surrounding whitespace
// removed; case is preserved. Bytes before the first header are an error.
//
// It is cancelable: returning promptly when ctx is Done, even mid-record.
func Scan(ctx context.Context, r io.Reader, emit func(Record) error) error {
	sc := bufio.NewScanner(r)
	const maxLine = 64 * 1024 * 1024 // allow very long single-line sequences (64 MiB)
	buf := make([]byte, 64*1024)
	sc.Buffer(buf, maxLine)

	var (
		id     string
		inRec  bool
		seq    = make([]byte, 0, 1<<20)
		lineNo int
	)

	flush := func() error {
		if !inRec {
			return nil
		}
		return emit(Record{ID: id, Seq: append([]byte(nil), seq...)})
	}

	for sc.Scan() {
		lineNo++
		if lineNo%4096 == 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
		}
		line := sc.Bytes()
		if len(line) == 0 {
			continue
		}
		if line[0] == '>' {
			if err := flush(); err != nil {
				return err
			}
			seq = seq[:0]
			id = parseHeaderID(line[1:])
			inRec = true
			continue
		}
		line = bytes.TrimSpace(line)
		if len(line) == 0 {
			continue
		}
		if !inRec {
			return fmt.Errorf("fasta: line %d: sequence data before first header", lineNo)
		}
		seq = append(seq, line...)
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("fasta scan: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return flush()
}

func parseHeaderID(hdr []byte) string {
	hdr = bytes.TrimSpace(hdr)
	if i := bytes.IndexAny(hdr, " \t"); i >= 0 {
		return string(hdr[:i])
	}
	return string(hdr)
}
