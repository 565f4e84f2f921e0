// internal/writers/jsonl.go
package writers

import (
	"encoding/json"
	"io"

	"pafcheck/internal/jsonlutil"
	"pafcheck/internal/output"
	"pafcheck/pkg/api"
)

func init() {
	Register(output.FormatJSONL, func(out io.Writer, _ Options, bufSize int) (chan<- Event, <-chan error) {
		return StartJSONLWriter(out, bufSize)
	})
}

// StartJSONLWriter streams one api.EventV1 per line: every finding, every
// fatal record, then the summary.
func StartJSONLWriter(out io.Writer, bufSize int) (chan<- Event, <-chan error) {
	return jsonlutil.Start[Event](out, bufSize,
		func(enc *json.Encoder, ev Event) error {
			if ev.Summary != nil {
				s := output.ToAPISummary(ev.Summary.RunID, ev.Summary.Mode, ev.Summary.Inputs, ev.Summary.Census)
				return enc.Encode(api.EventV1{Type: "summary", Summary: &s})
			}
			if ev.Result != nil {
				for _, f := range ev.Result.Findings {
					v := output.ToAPIFinding(ev.Line, ev.Record, f, ev.Failed)
					v.SourceFile = ev.Source
					if err := enc.Encode(api.EventV1{Type: "finding", Finding: &v}); err != nil {
						return err
					}
				}
			}
			if ev.Fatal() {
				v := output.ToAPIRecordError(ev.Line, ev.Record, ev.Err)
				v.SourceFile = ev.Source
				return enc.Encode(api.EventV1{Type: "record_error", RecordError: &v})
			}
			return nil
		},
		IsBrokenPipe,
	)
}
