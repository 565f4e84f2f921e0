// internal/writers/json.go
package writers

import (
	"bufio"
	"io"

	"pafcheck/internal/output"
	"pafcheck/pkg/api"
)

func init() { Register(output.FormatJSON, StartJSONWriter) }

// StartJSONWriter buffers the whole run and writes one api.ReportV1 when
// the input closes.
func StartJSONWriter(out io.Writer, _ Options, bufSize int) (chan<- Event, <-chan error) {
	var doc api.ReportV1
	return startBuffered(out, bufSize, func(_ *bufio.Writer, ev Event) error {
		if ev.Summary != nil {
			doc.Summary = output.ToAPISummary(ev.Summary.RunID, ev.Summary.Mode, ev.Summary.Inputs, ev.Summary.Census)
			return nil
		}
		if ev.Result != nil {
			for _, f := range ev.Result.Findings {
				v := output.ToAPIFinding(ev.Line, ev.Record, f, ev.Failed)
				v.SourceFile = ev.Source
				doc.Findings = append(doc.Findings, v)
			}
		}
		if ev.Fatal() {
			v := output.ToAPIRecordError(ev.Line, ev.Record, ev.Err)
			v.SourceFile = ev.Source
			doc.RecordErrors = append(doc.RecordErrors, v)
		}
		return nil
	}, func(w *bufio.Writer) error {
		return output.WriteReport(w, doc)
	})
}
