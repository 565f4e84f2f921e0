// internal/cli/command.go
package cli

import (
	"github.com/spf13/cobra"

	"pafcheck/internal/config"
	"pafcheck/internal/version"
)

const longHelp = `pafcheck: verify PAF extended CIGAR strings (cg:Z:) against FASTA

Every '=' run must match base for base and every 'X' run must differ, on the
coordinates the PAF record declares. Reverse-strand records are checked
against the reverse complement of the query window.

A FASTA with a samtools .fai index next to it is read by random access;
other inputs (gzip, stdin) are loaded into memory.`

const examples = `  # list every finding without failing records
  pafcheck -q asm1.fa.gz -t asm2.fa -e report aln.paf

  # self-alignment, several PAF files, machine-readable output
  pafcheck -q genome.fa -o jsonl 'runs/*.paf' > findings.jsonl

  # show the bases around each finding
  pafcheck -q q.fa -t t.fa --pretty --flank 15 -p aln.paf`

// NewCommand builds the root command. run receives validated options.
func NewCommand(run func(cmd *cobra.Command, opt Options) error) *cobra.Command {
	opt := Defaults()
	cmd := &cobra.Command{
		Use:           "pafcheck -q query.fa [-t target.fa] (-p aln.paf | aln.paf...)",
		Short:         "Validate PAF extended CIGAR strings against FASTA sequences",
		Long:          longHelp,
		Example:       examples,
		Version:       version.Version,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opt.ConfigFile != "" {
				f, err := config.Load(opt.ConfigFile)
				if err != nil {
					return &UsageError{Err: err}
				}
				// Positional PAF paths count as setting --paf.
				opt.ApplyConfig(f, func(name string) bool {
					if name == "paf" && len(args) > 0 {
						return true
					}
					return cmd.Flags().Changed(name)
				})
			}
			paths, err := ExpandPaths(append(opt.PafFiles, args...))
			if err != nil {
				return &UsageError{Err: err}
			}
			opt.PafFiles = paths
			if err := opt.Validate(); err != nil {
				return err
			}
			return run(cmd, opt)
		},
	}
	cmd.SetVersionTemplate("pafcheck {{.Version}}\n")
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &UsageError{Err: err}
	})

	fs := cmd.Flags()
	fs.SortFlags = false
	fs.StringVarP(&opt.QueryFasta, "query-fasta", "q", opt.QueryFasta, "query FASTA (plain, gzip, or '-') [*]")
	fs.StringVarP(&opt.TargetFasta, "target-fasta", "t", opt.TargetFasta, "target FASTA (defaults to the query FASTA)")
	fs.StringSliceVarP(&opt.PafFiles, "paf", "p", nil, "PAF file(s) (repeatable, globs, or '-') [*]")
	fs.StringVarP(&opt.ErrorMode, "error-mode", "e", opt.ErrorMode, "report | omit (alias fail-fast)")
	fs.StringVarP(&opt.Output, "output", "o", opt.Output, "output format: text | jsonl | json")
	fs.BoolVar(&opt.Pretty, "pretty", opt.Pretty, "draw the bases around each finding (text)")
	fs.IntVar(&opt.Flank, "flank", opt.Flank, "bases of context on each side for --pretty")
	fs.IntVar(&opt.Threads, "threads", opt.Threads, "number of worker threads (0 = all CPUs)")
	fs.BoolVar(&opt.HaltOnFailure, "halt-on-failure", opt.HaltOnFailure, "stop at the first failed record")
	fs.StringVar(&opt.MetricsFile, "metrics-file", opt.MetricsFile, "write Prometheus textfile metrics to PATH")
	fs.StringVar(&opt.ConfigFile, "config", opt.ConfigFile, "YAML config file (flags win)")
	fs.StringVar(&opt.LogFormat, "log-format", opt.LogFormat, "diagnostics format: text | json")
	fs.BoolVar(&opt.Quiet, "quiet", opt.Quiet, "log errors only")
	fs.BoolVar(&opt.Verbose, "verbose", opt.Verbose, "log debug detail")
	return cmd
}
