// internal/cli/options.go
package cli

import (
	"errors"
	"fmt"
	"runtime"

	"pafcheck-core/validate"
	"pafcheck/internal/config"
	"pafcheck/internal/logging"
	"pafcheck/internal/writers"
)

// Options holds all CLI flags and arguments.
type Options struct {
	// Input
	QueryFasta  string
	TargetFasta string // empty: same as QueryFasta
	PafFiles    []string

	// Checking
	ErrorMode     string
	Mode          validate.Mode // resolved from ErrorMode by Validate
	HaltOnFailure bool
	Threads       int

	// Output
	Output      string
	Pretty      bool
	Flank       int
	MetricsFile string

	// Diagnostics
	ConfigFile string
	LogFormat  string
	Quiet      bool
	Verbose    bool
}

// Defaults returns the options before flags and config are applied.
func Defaults() Options {
	return Options{
		ErrorMode: "omit",
		Output:    "text",
		Flank:     10,
		LogFormat: logging.FormatText,
	}
}

// Target is the target FASTA path after defaulting to the query.
func (o Options) Target() string {
	if o.TargetFasta == "" {
		return o.QueryFasta
	}
	return o.TargetFasta
}

// UsageError marks bad invocations (exit code 2).
type UsageError struct{ Err error }

func (e *UsageError) Error() string { return e.Err.Error() }
func (e *UsageError) Unwrap() error { return e.Err }

func usagef(format string, a ...any) error {
	return &UsageError{Err: fmt.Errorf(format, a...)}
}

// ApplyConfig fills every option whose flag was not set on the command line
// from the config file.
func (o *Options) ApplyConfig(f *config.File, changed func(flag string) bool) {
	str := func(dst *string, v *string, flag string) {
		if v != nil && !changed(flag) {
			*dst = *v
		}
	}
	boolean := func(dst *bool, v *bool, flag string) {
		if v != nil && !changed(flag) {
			*dst = *v
		}
	}
	num := func(dst *int, v *int, flag string) {
		if v != nil && !changed(flag) {
			*dst = *v
		}
	}
	str(&o.QueryFasta, f.QueryFasta, "query-fasta")
	str(&o.TargetFasta, f.TargetFasta, "target-fasta")
	if len(f.Paf) > 0 && !changed("paf") {
		o.PafFiles = append([]string(nil), f.Paf...)
	}
	str(&o.ErrorMode, f.ErrorMode, "error-mode")
	str(&o.Output, f.Output, "output")
	boolean(&o.Pretty, f.Pretty, "pretty")
	num(&o.Flank, f.Flank, "flank")
	num(&o.Threads, f.Threads, "threads")
	boolean(&o.HaltOnFailure, f.HaltOnFailure, "halt-on-failure")
	str(&o.MetricsFile, f.MetricsFile, "metrics-file")
	str(&o.LogFormat, f.LogFormat, "log-format")
	boolean(&o.Quiet, f.Quiet, "quiet")
	boolean(&o.Verbose, f.Verbose, "verbose")
}

// Validate checks and resolves the options. Errors are *UsageError.
func (o *Options) Validate() error {
	if o.QueryFasta == "" {
		return usagef("--query-fasta is required")
	}
	if len(o.PafFiles) == 0 {
		return usagef("provide --paf or PAF paths as arguments")
	}
	mode, err := validate.ParseMode(o.ErrorMode)
	if err != nil {
		return &UsageError{Err: err}
	}
	o.Mode = mode
	if !writers.Known(o.Output) {
		return usagef("invalid --output %q (want text | jsonl | json)", o.Output)
	}
	if o.Pretty && o.Output != "text" {
		return usagef("--pretty requires --output text")
	}
	if o.Flank < 0 {
		return usagef("--flank must be ≥ 0")
	}
	if o.Threads < 0 {
		return usagef("--threads must be ≥ 0")
	}
	if o.Threads == 0 {
		o.Threads = runtime.NumCPU()
	}
	if o.LogFormat, err = logging.ParseFormat(o.LogFormat); err != nil {
		return &UsageError{Err: err}
	}

	stdin := 0
	if o.QueryFasta == "-" {
		stdin++
	}
	if o.TargetFasta == "-" && o.TargetFasta != o.QueryFasta {
		stdin++
	}
	for _, p := range o.PafFiles {
		if p == "-" {
			stdin++
		}
	}
	if stdin > 1 {
		return &UsageError{Err: errors.New("stdin ('-') can feed only one input")}
	}
	return nil
}
