// internal/integration/integration_test.go
package integration

import (
	"bytes"
	"compress/gzip"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pafcheck/internal/app"
	"pafcheck/pkg/api"
)

const (
	queryFa  = ">q1 sample\nACGTACGTAC\n>q2\nGGGGCCCCAA\n"
	targetFa = ">t1\nACGTTCGTAC\n>t2\nTTGGGGCCCC\n"

	lineClean    = "q1\t10\t0\t4\t+\tt1\t10\t0\t4\t4\t4\t60\tcg:Z:4="
	lineEqDiff   = "q1\t10\t0\t10\t+\tt1\t10\t0\t10\t9\t10\t60\tcg:Z:10="
	lineMismatch = "q1\t10\t0\t10\t+\tt1\t10\t0\t10\t9\t10\t60\tcg:Z:4=1X5="
	lineReverse  = "q2\t10\t0\t10\t-\tt2\t10\t0\t10\t10\t10\t60\tcg:Z:10="
	lineUnknown  = "q9\t10\t0\t4\t+\tt1\t10\t0\t4\t4\t4\t60\tcg:Z:4="
)

type fixture struct {
	dir, query, target string
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	dir := t.TempDir()
	return fixture{
		dir:    dir,
		query:  write(t, dir, "query.fa", queryFa),
		target: write(t, dir, "target.fa", targetFa),
	}
}

func write(t *testing.T, dir, name, data string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(data), 0o644))
	return p
}

func (f fixture) paf(t *testing.T, lines ...string) string {
	t.Helper()
	return write(t, f.dir, fmt.Sprintf("aln%d.paf", len(lines)), strings.Join(lines, "\n")+"\n")
}

func run(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var out, errBuf bytes.Buffer
	code := app.Run(args, &out, &errBuf)
	return code, out.String(), errBuf.String()
}

func TestCleanRun(t *testing.T) {
	f := newFixture(t)
	code, out, stderr := run(t, "-q", f.query, "-t", f.target, "-p", f.paf(t, lineClean, lineMismatch, lineReverse))
	require.Equal(t, 0, code, stderr)
	assert.Equal(t, "[pafcheck] PAF validation completed successfully. No errors found.\n", out)
	assert.Empty(t, stderr)
}

func TestReportModeContinues(t *testing.T) {
	f := newFixture(t)
	code, out, stderr := run(t, "-q", f.query, "-t", f.target, "-e", "report", f.paf(t, lineClean, lineEqDiff, lineMismatch))
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, out, "ClaimedEqualButDiffers: op 0 (10=) claims equal at query q1:4 / target t1:4 but query A != target T\n")
	assert.NotContains(t, out, "Error at line")
	assert.Contains(t, out, "[pafcheck]   - ClaimedEqualButDiffers: 1 errors\n")
	assert.True(t, strings.HasSuffix(out, "[pafcheck] Total errors: 1\n"), out)
}

func TestOmitModeFailsRecord(t *testing.T) {
	f := newFixture(t)
	code, out, _ := run(t, "-q", f.query, "-t", f.target, "-p", f.paf(t, lineClean, lineEqDiff))
	assert.Equal(t, 1, code)
	assert.Contains(t, out, "[pafcheck] Error at line 2: 1 validation error: ClaimedEqualButDiffers: op 0 (10=)")
}

func TestFatalRecordIsReportedAndRunContinues(t *testing.T) {
	f := newFixture(t)
	code, out, _ := run(t, "-q", f.query, "-t", f.target, "-e", "report", "-p", f.paf(t, lineUnknown, "bad\tline", lineClean))
	assert.Equal(t, 1, code)
	assert.Contains(t, out, "[pafcheck] Error at line 1: fetch query q9:0-4: unknown sequence name")
	assert.Contains(t, out, "[pafcheck] Error at line 2: parse PAF record:")
	assert.Contains(t, out, "[pafcheck]   - RecordParseError: 1 errors\n")
	assert.Contains(t, out, "[pafcheck]   - SequenceFetchError: 1 errors\n")
}

func TestSelfAlignmentDefaultsTargetToQuery(t *testing.T) {
	f := newFixture(t)
	self := "q1\t10\t2\t6\t+\tq1\t10\t2\t6\t4\t4\t60\tcg:Z:4="
	code, out, stderr := run(t, "-q", f.query, f.paf(t, self))
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, out, "No errors found")
}

func TestJSONLOutput(t *testing.T) {
	f := newFixture(t)
	code, out, _ := run(t, "-q", f.query, "-t", f.target, "-o", "jsonl", "-p", f.paf(t, lineEqDiff, lineUnknown))
	assert.Equal(t, 1, code)

	var evs []api.EventV1
	for _, l := range strings.Split(strings.TrimSpace(out), "\n") {
		var ev api.EventV1
		require.NoError(t, json.Unmarshal([]byte(l), &ev), l)
		evs = append(evs, ev)
	}
	require.Len(t, evs, 3)
	assert.Equal(t, "finding", evs[0].Type)
	assert.Equal(t, "ClaimedEqualButDiffers", evs[0].Finding.Kind)
	assert.EqualValues(t, 4, *evs[0].Finding.TargetPos)
	assert.True(t, strings.HasPrefix(evs[0].Finding.Message, "ClaimedEqualButDiffers: op 0 (10=) claims equal"), evs[0].Finding.Message)
	assert.True(t, evs[0].Finding.Failed)
	assert.Equal(t, "record_error", evs[1].Type)
	assert.Equal(t, 2, evs[1].RecordError.Line)
	assert.Equal(t, "summary", evs[2].Type)
	assert.Equal(t, 2, evs[2].Summary.Records)
	assert.NotEmpty(t, evs[2].Summary.RunID)
}

func TestParallelMatchesSerial(t *testing.T) {
	f := newFixture(t)
	pool := []string{lineClean, lineEqDiff, lineMismatch, lineReverse, lineUnknown}
	var lines []string
	for i := 0; i < 400; i++ {
		lines = append(lines, pool[(i*7)%len(pool)])
	}
	p := f.paf(t, lines...)

	report := func(threads int) api.ReportV1 {
		code, out, stderr := run(t, "-q", f.query, "-t", f.target, "-e", "report", "-o", "json",
			"--threads", fmt.Sprint(threads), "-p", p)
		require.Equal(t, 1, code, stderr)
		var doc api.ReportV1
		require.NoError(t, json.Unmarshal([]byte(out), &doc))
		doc.Summary.RunID = ""
		return doc
	}
	serial := report(1)
	parallel := report(8)
	assert.Equal(t, serial, parallel)
	assert.Equal(t, 400, serial.Summary.Records)
	assert.Len(t, serial.RecordErrors, 80)
}

func TestHaltOnFailure(t *testing.T) {
	f := newFixture(t)
	code, out, _ := run(t, "-q", f.query, "-t", f.target, "--halt-on-failure", "-o", "json",
		"-p", f.paf(t, lineClean, lineEqDiff, lineEqDiff, lineClean))
	assert.Equal(t, 1, code)
	var doc api.ReportV1
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, 2, doc.Summary.Records)
	assert.Len(t, doc.Findings, 1)
}

func TestMultipleFilesAndGzipPAF(t *testing.T) {
	f := newFixture(t)
	plain := f.paf(t, lineClean)

	gzPath := filepath.Join(f.dir, "more.paf.gz")
	fh, err := os.Create(gzPath)
	require.NoError(t, err)
	gw := gzip.NewWriter(fh)
	_, err = gw.Write([]byte(lineEqDiff + "\n"))
	require.NoError(t, err)
	require.NoError(t, gw.Close())
	require.NoError(t, fh.Close())

	code, out, stderr := run(t, "-q", f.query, "-t", f.target, "-o", "json", "--verbose", plain, gzPath)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "path="+plain+" records=1 clean=1 with_findings=0 fatal=0")
	assert.Contains(t, stderr, "path="+gzPath+" records=1 clean=0 with_findings=1 fatal=0")
	var doc api.ReportV1
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, []string{plain, gzPath}, doc.Summary.Inputs)
	require.Len(t, doc.Findings, 1)
	assert.Equal(t, gzPath, doc.Findings[0].SourceFile)
	assert.Equal(t, 1, doc.Findings[0].Line)
}

func TestIndexedTargetAndPretty(t *testing.T) {
	f := newFixture(t)
	// samtools faidx of targetFa
	write(t, f.dir, "target.fa.fai", "t1\t10\t4\t10\t11\nt2\t10\t19\t10\t11\n")

	code, out, stderr := run(t, "-q", f.query, "-t", f.target, "-e", "report", "--pretty", "--flank", "2",
		"--verbose", f.paf(t, lineEqDiff))
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stderr, "store=faidx")
	assert.Contains(t, stderr, `ops="10="`)
	assert.Contains(t, out, "# op 0 (10=) ClaimedEqualButDiffers\n")
	assert.Contains(t, out, "||x||\n")
}

func TestMetricsFile(t *testing.T) {
	f := newFixture(t)
	mpath := filepath.Join(f.dir, "pafcheck.prom")
	code, _, stderr := run(t, "-q", f.query, "-t", f.target, "-e", "report", "--metrics-file", mpath,
		f.paf(t, lineClean, lineEqDiff))
	require.Equal(t, 0, code, stderr)
	b, err := os.ReadFile(mpath)
	require.NoError(t, err)
	assert.Contains(t, string(b), `pafcheck_records_total{outcome="findings"} 1`)
	assert.Contains(t, string(b), "pafcheck_record_check_seconds_count 2")
}

func TestConfigFile(t *testing.T) {
	f := newFixture(t)
	p := f.paf(t, lineEqDiff)
	cfg := write(t, f.dir, "pafcheck.yaml", fmt.Sprintf("query_fasta: %s\ntarget_fasta: %s\npaf: [%s]\nerror_mode: report\n", f.query, f.target, p))
	code, out, stderr := run(t, "--config", cfg)
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, out, "ClaimedEqualButDiffers: 1 errors")
}

func TestUsageAndInputErrors(t *testing.T) {
	f := newFixture(t)
	p := f.paf(t, lineClean)

	code, out, _ := run(t)
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "Usage:")

	code, _, stderr := run(t, "-q", f.query, "-e", "strict", p)
	assert.Equal(t, 2, code)
	assert.Contains(t, stderr, "invalid error mode")

	code, _, _ = run(t, "-q", f.query, filepath.Join(f.dir, "missing.paf"))
	assert.Equal(t, 2, code)

	code, _, _ = run(t, "-q", filepath.Join(f.dir, "missing.fa"), p)
	assert.Equal(t, 2, code)
}

func TestVersion(t *testing.T) {
	code, out, _ := run(t, "--version")
	assert.Equal(t, 0, code)
	assert.True(t, strings.HasPrefix(out, "pafcheck "), out)
}
