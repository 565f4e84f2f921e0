// internal/app/app.go
package app

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"pafcheck-core/cigar"
	"pafcheck-core/fasta"
	"pafcheck-core/validate"
	"pafcheck/internal/cli"
	"pafcheck/internal/logging"
	"pafcheck/internal/metrics"
	"pafcheck/internal/pipeline"
	"pafcheck/internal/pretty"
	"pafcheck/internal/report"
	"pafcheck/internal/seqstore"
	"pafcheck/internal/writers"
)

// Exit codes.
const (
	ExitOK       = 0
	ExitFailed   = 1 // failed or aborted records
	ExitUsage    = 2 // bad flags, config or inputs
	ExitIO       = 3 // read or output failure
	ExitCanceled = 130
)

// errHalt stops the pipeline after the first failed record (--halt-on-failure).
var errHalt = errors.New("halted on failure")

// Run is the testable entry point (no os.Exit).
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

// RunContext parses argv and checks every PAF file, honoring ctx cancellation.
func RunContext(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	if len(argv) == 0 {
		argv = []string{"--help"}
	}
	code := ExitOK
	cmd := cli.NewCommand(func(_ *cobra.Command, opt cli.Options) error {
		code = run(ctx, opt, stdout, stderr)
		return nil
	})
	cmd.SetArgs(argv)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		var ue *cli.UsageError
		if errors.As(err, &ue) {
			fmt.Fprintln(stderr, "Run 'pafcheck --help' for usage.")
			return ExitUsage
		}
		return ExitFailed
	}
	return code
}

func run(parent context.Context, opt cli.Options, stdout, stderr io.Writer) int {
	log := logging.New(stderr, logging.Config{Format: opt.LogFormat, Quiet: opt.Quiet, Verbose: opt.Verbose})

	pair, err := seqstore.OpenPair(parent, opt.QueryFasta, opt.Target())
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return ExitCanceled
		}
		log.Error("open FASTA", "err", err)
		return ExitUsage
	}
	defer pair.Close()
	log.Info("using query FASTA", "path", opt.QueryFasta, "store", pair.Query.Kind())
	log.Info("using target FASTA", "path", opt.Target(), "store", pair.Target.Kind(), "shared", pair.Shared())

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	var (
		census = report.NewCensus()
		rec    = metrics.New()
		runID  = uuid.NewString()
	)
	popt := pretty.DefaultOptions
	popt.Flank = opt.Flank
	in, writeErr := writers.Start(opt.Output, stdout, writers.Options{Pretty: opt.Pretty, PrettyOpts: popt}, opt.Threads*4)
	send := func(ev writers.Event) error {
		select {
		case in <- ev:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	chk := checker{opt: opt, pair: pair, census: census, metrics: rec, log: log, send: send}
	var perr error
	for _, path := range opt.PafFiles {
		if perr = chk.checkFile(ctx, path); perr != nil {
			break
		}
	}
	if perr == nil || errors.Is(perr, errHalt) {
		perr = send(writers.Event{Summary: &writers.Summary{
			RunID: runID, Mode: opt.Mode, Inputs: opt.PafFiles, Census: census,
		}})
	}
	close(in)

	if werr := <-writeErr; writers.IsBrokenPipe(werr) {
		return ExitOK
	} else if werr != nil {
		log.Error("write output", "err", werr)
		return ExitIO
	}

	var inErr *inputError
	switch {
	case perr == nil:
	case errors.Is(perr, context.Canceled):
		return ExitCanceled
	case errors.As(perr, &inErr):
		log.Error("open PAF", "err", perr)
		return ExitUsage
	default:
		log.Error("read PAF", "err", perr)
		return ExitIO
	}

	if opt.MetricsFile != "" {
		rec.Publish(census)
		if err := rec.WriteTextfile(opt.MetricsFile); err != nil {
			log.Error("write metrics", "path", opt.MetricsFile, "err", err)
			return ExitIO
		}
	}
	log.Debug("run complete", "run_id", runID, "records", census.Records, "findings", census.TotalFindings(), "fatal", census.Fatal)

	if census.Fatal > 0 || census.Failed > 0 {
		return ExitFailed
	}
	return ExitOK
}

// inputError marks a PAF input that could not be opened.
type inputError struct{ err error }

func (e *inputError) Error() string { return e.err.Error() }
func (e *inputError) Unwrap() error { return e.err }

type checker struct {
	opt     cli.Options
	pair    *seqstore.Pair
	census  *report.Census // run totals
	file    *report.Census // current PAF file, merged into census when it ends
	metrics *metrics.Recorder
	log     *slog.Logger
	send    func(writers.Event) error
}

func (c *checker) checkFile(ctx context.Context, path string) error {
	rc, err := fasta.Open(path)
	if err != nil {
		return &inputError{err: err}
	}
	defer rc.Close()
	c.log.Debug("checking PAF", "path", path, "threads", c.opt.Threads, "mode", c.opt.Mode.String())

	c.file = report.NewCensus()
	err = pipeline.ForEachRecord(ctx, pipeline.Config{Threads: c.opt.Threads}, rc, c.pair,
		func(it pipeline.Item) error { return c.visit(path, it) })
	c.census.Merge(c.file)
	c.log.Info("PAF checked", "path", path, "records", c.file.Records, "clean", c.file.Clean,
		"with_findings", c.file.WithFindings, "fatal", c.file.Fatal)
	return err
}

func (c *checker) visit(path string, it pipeline.Item) error {
	c.metrics.ObserveCheck(it.Elapsed)
	for _, w := range it.Warnings {
		c.log.Warn("declared length differs", "file", path, "line", it.Line, "detail", w)
	}

	ev := writers.Event{Source: path, Line: it.Line, Record: it.Record, Result: it.Result, Err: it.Err}
	if it.Err != nil {
		c.file.Add(nil, it.Err, false)
		c.log.Debug("record aborted", "file", path, "line", it.Line, "class", report.ClassOf(it.Err), "err", it.Err)
	} else {
		var buf bytes.Buffer
		if ferr := validate.Finalize(it.Result.Findings, c.opt.Mode, &buf); ferr != nil {
			ev.Err, ev.Failed = ferr, true
		}
		ev.Report = buf.String()
		c.file.Add(it.Result, nil, ev.Failed)
		if !it.Result.Clean() {
			c.log.Debug("record has findings", "file", path, "line", it.Line,
				"findings", len(it.Result.Findings), "ops", cigar.Format(it.Result.Ops))
		}
	}
	if err := c.send(ev); err != nil {
		return err
	}
	if c.opt.HaltOnFailure && ev.Err != nil {
		return errHalt
	}
	return nil
}
