// Package output writes and reports fragment designs.
package output

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jjtimmons/gibfrag/internal/frag"
)

// Format is an output file format.
type Format string

const (
	// JSON is the default output format
	JSON Format = "json"

	// YAML output
	YAML Format = "yaml"

	// Genbank output, one misc_feature per fragment
	Genbank Format = "genbank"
)

// Result is the fragment design for a single target sequence.
type Result struct {
	// ID is unique to each design
	ID string `json:"id" yaml:"id"`

	// Target's name. In >pET28a_SHRT FASTA its "pET28a_SHRT"
	Target string `json:"target" yaml:"target"`

	// Target's sequence
	TargetSeq string `json:"seq" yaml:"seq"`

	// Length of the target sequence
	Length int `json:"length" yaml:"length"`

	// Time, ex: "2018/01/01 20:41:00"
	Time string `json:"time" yaml:"time"`

	// Execution is the number of seconds it took to partition the target
	Execution float64 `json:"execution" yaml:"execution"`

	// Params the target was partitioned with
	Params frag.Params `json:"params" yaml:"params"`

	// Fragments of the target, in order
	Fragments []frag.Fragment `json:"fragments" yaml:"fragments"`

	// Junctions between neighboring fragments
	Junctions []frag.Junction `json:"junctions,omitempty" yaml:"junctions,omitempty"`
}

// NewResult gathers a design and re-checks its junctions.
func NewResult(target, seq string, params frag.Params, frags []frag.Fragment, elapsed time.Duration) *Result {
	// same format as log.Println
	t := time.Now()
	stamp := fmt.Sprintf(
		"%d/%02d/%02d %02d:%02d:%02d",
		t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(),
	)

	return &Result{
		ID:        uuid.NewString(),
		Target:    target,
		TargetSeq: seq,
		Length:    len(seq),
		Time:      stamp,
		Execution: elapsed.Seconds(),
		Params:    params,
		Fragments: frags,
		Junctions: frag.Junctions(frags, params.Overlap),
	}
}

// Verified is whether every junction has an exact overlap.
func (r *Result) Verified() bool {
	for _, j := range r.Junctions {
		if !j.Match {
			return false
		}
	}
	return true
}

// ParseFormat returns the Format named by a flag value.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(name, ".")) {
	case "json":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	case "gb", "gbk", "genbank":
		return Genbank, nil
	}
	return "", fmt.Errorf("unrecognized output format %q: use json, yaml, or genbank", name)
}

// FormatFromPath guesses the Format from an output file's extension, JSON by default.
func FormatFromPath(path string) Format {
	if f, err := ParseFormat(filepath.Ext(path)); err == nil {
		return f
	}
	return JSON
}
