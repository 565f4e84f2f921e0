// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"fmt"
	"io"
	"time"

	"golang.org/x/sync/errgroup"

	"pafcheck-core/validate"
	"pafcheck/internal/paf"
)

// Config controls the checking pipeline.
type Config struct {
	Threads int // number of worker goroutines (>=1)
	Window  int // records in flight ahead of the collector; 0 means Threads*4
}

// Item is the outcome for one PAF line.
type Item struct {
	Seq      int // 0-based position among data lines
	Line     int // 1-based line number in the input
	Record   paf.Record
	Result   *validate.Result // nil when Err is set
	Err      error            // parse, fetch, grammar or bounds failure
	Elapsed  time.Duration
	Warnings []string
}

// Lengther is optionally implemented by a provider that knows full
// sequence lengths; declared PAF lengths are then cross-checked.
type Lengther interface {
	Len(side validate.Side, name string) (uint64, bool)
}

type job struct {
	seq  int
	line int
	text string
}

// ForEachRecord reads PAF lines from r, checks each against prov and calls
// visit once per line in input order. Record-level failures are carried in
// Item.Err; ForEachRecord itself returns the first visit error, read error
// or context cancellation.
func ForEachRecord(
	ctx context.Context,
	cfg Config,
	r io.Reader,
	prov validate.WindowProvider,
	visit func(Item) error,
) error {
	if cfg.Threads < 1 {
		cfg.Threads = 1
	}
	if cfg.Window < cfg.Threads {
		cfg.Window = cfg.Threads * 4
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, gctx := errgroup.WithContext(ctx)

	jobs := make(chan job, cfg.Threads*2)
	results := make(chan Item, cfg.Threads*2)
	// Bounds how far workers may run ahead of an in-order collector.
	tokens := make(chan struct{}, cfg.Window)

	// Feed work
	g.Go(func() error {
		defer close(jobs)
		sc := paf.NewScanner(r)
		seq := 0
		for sc.Scan() {
			select {
			case tokens <- struct{}{}:
			case <-gctx.Done():
				return nil
			}
			select {
			case jobs <- job{seq: seq, line: sc.Line(), text: sc.Text()}:
			case <-gctx.Done():
				return nil
			}
			seq++
		}
		if err := sc.Err(); err != nil {
			return fmt.Errorf("read PAF: %w", err)
		}
		return nil
	})

	// Workers
	lens, _ := prov.(Lengther)
	for w := 0; w < cfg.Threads; w++ {
		g.Go(func() error {
			for j := range jobs {
				it := check(j, prov, lens)
				select {
				case results <- it:
				case <-gctx.Done():
					return nil
				}
			}
			return nil
		})
	}
	var gerr error
	go func() {
		gerr = g.Wait()
		close(results)
	}()

	// Collector: reassemble input order.
	var (
		verr    error
		next    int
		pending = make(map[int]Item)
	)
	for it := range results {
		if verr != nil {
			continue
		}
		pending[it.Seq] = it
		for {
			cur, ok := pending[next]
			if !ok {
				break
			}
			delete(pending, next)
			next++
			<-tokens
			if err := visit(cur); err != nil {
				verr = err
				cancel()
				break
			}
		}
	}

	if verr != nil {
		return verr
	}
	if gerr != nil {
		return gerr
	}
	return ctx.Err()
}

func check(j job, prov validate.WindowProvider, lens Lengther) Item {
	it := Item{Seq: j.seq, Line: j.line}
	start := time.Now()

	rec, err := paf.ParseLine(j.text)
	if err != nil {
		it.Err = err
		it.Elapsed = time.Since(start)
		return it
	}
	it.Record = rec
	if lens != nil {
		it.Warnings = lengthWarnings(rec, lens)
	}
	it.Result, it.Err = validate.Check(rec.Record, prov)
	it.Elapsed = time.Since(start)
	return it
}

func lengthWarnings(rec paf.Record, lens Lengther) []string {
	var out []string
	if n, ok := lens.Len(validate.Query, rec.QueryName); ok && n != rec.QueryLen {
		out = append(out, fmt.Sprintf("query %s: PAF length %d, FASTA length %d", rec.QueryName, rec.QueryLen, n))
	}
	if n, ok := lens.Len(validate.Target, rec.TargetName); ok && n != rec.TargetLen {
		out = append(out, fmt.Sprintf("target %s: PAF length %d, FASTA length %d", rec.TargetName, rec.TargetLen, n))
	}
	return out
}
