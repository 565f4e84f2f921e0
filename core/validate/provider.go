// core/validate/provider.go
package validate

import (
	"errors"
	"fmt"
)

// WindowProvider fetches sequence windows by name and half-open range.
// Implementations used from several goroutines must be safe for concurrent reads.
type WindowProvider interface {
	Fetch(side Side, name string, start, end uint64) ([]byte, error)
}

// Conditions a WindowProvider reports; test with errors.Is.
var (
	ErrUnknownName      = errors.New("unknown sequence name")
	ErrOutOfRange       = errors.New("window out of range")
	ErrIndexUnavailable = errors.New("sequence index unavailable")
)

// FetchError wraps a provider failure with the window that was asked for.
type FetchError struct {
	Side       Side
	Name       string
	Start, End uint64
	Err        error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s %s:%d-%d: %v", e.Side, e.Name, e.Start, e.End, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }
