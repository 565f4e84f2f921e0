// internal/writers/text.go
package writers

import (
	"bufio"
	"io"

	"pafcheck/internal/output"
	"pafcheck/internal/pretty"
)

func init() { Register(output.FormatText, StartTextWriter) }

// StartTextWriter streams the human-readable report: the finding lines of
// each record, a "[pafcheck] Error at line" line per failed record, optional
// pretty blocks, and the summary.
func StartTextWriter(out io.Writer, opt Options, bufSize int) (chan<- Event, <-chan error) {
	return startBuffered(out, bufSize, func(w *bufio.Writer, ev Event) error {
		if ev.Summary != nil {
			return ev.Summary.Census.WriteSummary(w)
		}
		if _, err := io.WriteString(w, ev.Report); err != nil {
			return err
		}
		if opt.Pretty && ev.Result != nil {
			for _, f := range ev.Result.Findings {
				if s := pretty.RenderFinding(ev.Result, f, opt.PrettyOpts); s != "" {
					if _, err := io.WriteString(w, s); err != nil {
						return err
					}
				}
			}
		}
		if ev.Err != nil {
			return output.WriteLines(w, []string{output.ErrorLine(ev.Line, ev.Err)})
		}
		return nil
	}, nil)
}
