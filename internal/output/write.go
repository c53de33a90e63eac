package output

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Output is the serialized form of one or more designs.
type Output struct {
	// Designs, one per target sequence
	Designs []*Result `json:"designs" yaml:"designs"`
}

// Marshal serializes the results in the format requested.
func Marshal(format Format, results []*Result) (output []byte, err error) {
	switch format {
	case JSON:
		output, err = json.MarshalIndent(Output{Designs: results}, "", "  ")
	case YAML:
		output, err = yaml.Marshal(Output{Designs: results})
	case Genbank:
		var sb strings.Builder
		for _, r := range results {
			sb.WriteString(genbank(r))
		}
		output = []byte(sb.String())
	default:
		return nil, fmt.Errorf("unrecognized output format %q", format)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to serialize output: %w", err)
	}
	return output, nil
}

// Write serializes the results and writes them to filename.
func Write(filename string, format Format, results []*Result) ([]byte, error) {
	output, err := Marshal(format, results)
	if err != nil {
		return nil, err
	}

	if err = os.WriteFile(filename, output, 0666); err != nil {
		return output, fmt.Errorf("failed to write the output: %w", err)
	}

	return output, nil
}

// genbank formats a design as a linear Genbank record with a misc_feature per fragment.
func genbank(r *Result) string {
	seq := strings.ToLower(r.TargetSeq)

	// header row
	d := time.Now().Local()
	h1 := fmt.Sprintf("LOCUS       %s", r.Target)
	h2 := fmt.Sprintf("%d bp DNA      linear      %s\n", len(seq), strings.ToUpper(d.Format("02-Jan-2006")))
	space := " "
	if pad := 81 - len(h1+h2); pad > 0 {
		space = strings.Repeat(" ", pad)
	}
	header := h1 + space + h2

	// feature rows
	var fsb strings.Builder
	fsb.WriteString("DEFINITION  .\nACCESSION   .\nFEATURES             Location/Qualifiers\n")
	for _, f := range r.Fragments {
		fsb.WriteString(
			fmt.Sprintf("     misc_feature    %d..%d\n", f.Start+1, f.End) +
				fmt.Sprintf("                     /label=\"%s\"\n", f.Name),
		)
	}

	// origin row
	var ori strings.Builder
	ori.WriteString("ORIGIN\n")
	for i := 0; i < len(seq); i += 60 {
		n := strconv.Itoa(i + 1)
		ori.WriteString(strings.Repeat(" ", 9-len(n)) + n)
		for s := i; s < i+60 && s < len(seq); s += 10 {
			e := s + 10
			if e > len(seq) {
				e = len(seq)
			}
			ori.WriteString(fmt.Sprintf(" %s", seq[s:e]))
		}
		ori.WriteString("\n")
	}
	ori.WriteString("//\n")

	return header + fsb.String() + ori.String()
}
