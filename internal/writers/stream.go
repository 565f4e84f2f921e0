// internal/writers/stream.go
package writers

import (
	"bufio"
	"io"
)

// startBuffered runs handle for each event on a buffered writer and finish
// once the input closes. Errors stop output but not draining.
func startBuffered(out io.Writer, bufSize int, handle func(*bufio.Writer, Event) error, finish func(*bufio.Writer) error) (chan<- Event, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan Event, bufSize)
	done := make(chan error, 1)
	go func() {
		bw := bufio.NewWriterSize(out, 64<<10)
		var err error
		for ev := range in {
			if err != nil {
				continue
			}
			err = handle(bw, ev)
		}
		if err == nil && finish != nil {
			err = finish(bw)
		}
		if err == nil {
			err = bw.Flush()
		}
		done <- err
	}()
	return in, done
}
