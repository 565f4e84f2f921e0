// internal/metrics/metrics.go
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"pafcheck/internal/report"
)

// Record outcomes used as the "outcome" label.
const (
	OutcomeClean    = "clean"
	OutcomeFindings = "findings"
	OutcomeFatal    = "fatal"
)

// Recorder holds one run's metrics on a private registry, so runs in the
// same process (tests, embedding) never share counters.
type Recorder struct {
	reg      *prometheus.Registry
	records  *prometheus.CounterVec
	findings *prometheus.CounterVec
	errors   *prometheus.CounterVec
	check    prometheus.Histogram
}

func New() *Recorder {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)
	return &Recorder{
		reg: reg,
		records: f.NewCounterVec(prometheus.CounterOpts{
			Name: "pafcheck_records_total",
			Help: "PAF records checked, by outcome",
		}, []string{"outcome"}),
		findings: f.NewCounterVec(prometheus.CounterOpts{
			Name: "pafcheck_findings_total",
			Help: "Content findings, by kind",
		}, []string{"kind"}),
		errors: f.NewCounterVec(prometheus.CounterOpts{
			Name: "pafcheck_record_errors_total",
			Help: "Records aborted by an error, by class",
		}, []string{"class"}),
		check: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "pafcheck_record_check_seconds",
			Help:    "Time to parse, fetch and walk one record",
			Buckets: []float64{0.00001, 0.0001, 0.001, 0.01, 0.1, 1},
		}),
	}
}

// ObserveCheck records the duration of one record check.
func (r *Recorder) ObserveCheck(d time.Duration) { r.check.Observe(d.Seconds()) }

// Publish copies the census totals into the counters. Call it once per run.
func (r *Recorder) Publish(c *report.Census) {
	r.records.WithLabelValues(OutcomeClean).Add(float64(c.Clean))
	r.records.WithLabelValues(OutcomeFindings).Add(float64(c.WithFindings))
	r.records.WithLabelValues(OutcomeFatal).Add(float64(c.Fatal))
	for k, n := range c.Findings {
		r.findings.WithLabelValues(k).Add(float64(n))
	}
	for k, n := range c.Errors {
		r.errors.WithLabelValues(k).Add(float64(n))
	}
}

// WriteTextfile writes the metrics in the node-exporter textfile format.
func (r *Recorder) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.reg)
}
