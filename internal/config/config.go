// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// File is the optional YAML run configuration. Unset keys stay nil so the
// CLI can tell "absent" from a zero value.
type File struct {
	QueryFasta    *string  `yaml:"query_fasta"`
	TargetFasta   *string  `yaml:"target_fasta"`
	Paf           []string `yaml:"paf"`
	ErrorMode     *string  `yaml:"error_mode"`
	Output        *string  `yaml:"output"`
	Pretty        *bool    `yaml:"pretty"`
	Flank         *int     `yaml:"flank"`
	Threads       *int     `yaml:"threads"`
	HaltOnFailure *bool    `yaml:"halt_on_failure"`
	MetricsFile   *string  `yaml:"metrics_file"`
	LogFormat     *string  `yaml:"log_format"`
	Quiet         *bool    `yaml:"quiet"`
	Verbose       *bool    `yaml:"verbose"`
}

// Load reads path. Unknown keys are an error; an empty file is an empty config.
func Load(path string) (*File, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	defer fh.Close()
	return Decode(fh)
}

// Decode parses a YAML config document from r.
func Decode(r io.Reader) (*File, error) {
	var f File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &f, nil
}
