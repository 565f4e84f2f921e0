// internal/writers/registry.go
package writers

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"syscall"
)

// StartFunc spins up a writer goroutine. The caller sends events, closes
// the channel, then waits for the single error value.
type StartFunc func(out io.Writer, opt Options, bufSize int) (chan<- Event, <-chan error)

// Writer registry (format → handler). Register in init() blocks of the
// format files.
var registry = map[string]StartFunc{}

// Register adds a format (idempotent, last wins).
func Register(format string, fn StartFunc) { registry[format] = fn }

// Formats lists the registered format names, sorted.
func Formats() []string {
	out := make([]string, 0, len(registry))
	for k := range registry {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Known reports whether a writer is registered for format.
func Known(format string) bool {
	_, ok := registry[format]
	return ok
}

// Start dispatches to the writer registered for format. An unknown format
// yields a writer that drains its input and reports the error.
func Start(format string, out io.Writer, opt Options, bufSize int) (chan<- Event, <-chan error) {
	if fn, ok := registry[format]; ok {
		return fn(out, opt, bufSize)
	}
	in := make(chan Event, 1)
	done := make(chan error, 1)
	go func() {
		for range in {
		}
		done <- fmt.Errorf("unknown output format %q (no writer registered)", format)
	}()
	return in, done
}

// IsBrokenPipe reports whether an error is a broken pipe / closed pipe.
// Useful when downstream consumers (like `head`) close early.
func IsBrokenPipe(err error) bool {
	return err != nil && (errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe))
}
