// Package validate checks an extended-CIGAR operator string against the two
// sequence windows it claims to align. It never imports app, writers, cli or
// pipeline; keep it domain-only.
//
// Check does the per-record work (fetch, normalize, parse, walk) and is safe
// to call from several goroutines when the WindowProvider is. Finalize applies
// the reporting mode and is called by whoever owns the output sink.
package validate
