// core/fasta/open.go
package fasta

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"
)

// multiReadCloser closes multiple io.Closers when Close() is called.
type multiReadCloser struct {
	io.Reader
	closers []io.Closer
}

func (m *multiReadCloser) Close() error {
	var err error
	for _, c := range m.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

// IsGzip reports whether path looks gzip-compressed, by magic number
// (1F 8B) or by .gz suffix. "-" is never treated as gzip.
func IsGzip(path string) (bool, error) {
	if path == "-" {
		return false, nil
	}
	if strings.HasSuffix(path, ".gz") {
		return true, nil
	}
	fh, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer fh.Close()
	var sig [2]byte
	n, _ := io.ReadFull(fh, sig[:])
	return n == 2 && sig[0] == 0x1f && sig[1] == 0x8b, nil
}

// Open returns a reader over a plain or gzip text file (FASTA or PAF);
// "-" reads stdin.
func Open(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	if st, err := fh.Stat(); err == nil && st.IsDir() {
		_ = fh.Close()
		return nil, fmt.Errorf("open %s: is a directory", path)
	}
	var sig [2]byte
	n, _ := io.ReadFull(fh, sig[:])
	if _, err := fh.Seek(0, io.SeekStart); err != nil {
		_ = fh.Close()
		return nil, err
	}
	if (n == 2 && sig[0] == 0x1f && sig[1] == 0x8b) || strings.HasSuffix(path, ".gz") {
		gr, err := gzip.NewReader(fh)
		if err != nil {
			_ = fh.Close()
			return nil, fmt.Errorf("open %s: %w", path, err)
		}
		return &multiReadCloser{Reader: gr, closers: []io.Closer{gr, fh}}, nil
	}
	return fh, nil
}
