package design

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jjtimmons/gibfrag/config"
	"github.com/jjtimmons/gibfrag/internal/output"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Flags contains parsed cobra Flags like "in", "out", "format", etc.
type Flags struct {
	// the path of the FASTA file with the target sequence(s)
	in string

	// the name of the file to write the output to, none if empty
	out string

	// the format of the output file
	format output.Format

	// whether to partition each FASTA record separately
	perRecord bool

	// whether to style the console report
	color bool
}

// NewFlags makes a new flags object manually. for testing.
func NewFlags(in, out string, perRecord bool) *Flags {
	return &Flags{
		in:        in,
		out:       out,
		format:    output.FormatFromPath(out),
		perRecord: perRecord,
	}
}

// inputParser contains methods for parsing flags from the input &cobra.Command.
type inputParser struct{}

// parseCmdFlags gathers the in path, out path, etc from a cobra cmd object
// and loads the Config (settings file, env, and bound flags).
func parseCmdFlags(cmd *cobra.Command, args []string) (*Flags, *config.Config, error) {
	var err error
	fs := &Flags{} // parsed flags
	p := inputParser{}

	if fs.in, err = cmd.Flags().GetString("in"); fs.in == "" || err != nil {
		if len(args) > 0 {
			fs.in = args[0]
		} else if fs.in, err = p.guessInput("."); err != nil {
			return nil, nil, err
		}
	}

	fs.out, _ = cmd.Flags().GetString("out")

	format, _ := cmd.Flags().GetString("format")
	if format == "" {
		fs.format = output.FormatFromPath(fs.out)
	} else if fs.format, err = output.ParseFormat(format); err != nil {
		return nil, nil, err
	}

	fs.perRecord, _ = cmd.Flags().GetBool("per-record")
	fs.color, _ = cmd.Flags().GetBool("color")

	conf, err := config.New(viper.GetString("settings"))
	if err != nil {
		return nil, nil, err
	}

	return fs, conf, nil
}

// guessInput returns the first fasta file in dir. Is used
// if the user hasn't specified an input file.
func (p *inputParser) guessInput(dir string) (in string, err error) {
	dir, _ = filepath.Abs(dir)
	files, err := os.ReadDir(dir)
	if err != nil {
		return
	}

	for _, file := range files {
		if file.IsDir() {
			continue
		}

		ext := strings.ToLower(filepath.Ext(strings.TrimSuffix(file.Name(), ".gz")))
		if ext == ".fa" || ext == ".fasta" {
			return filepath.Join(dir, file.Name()), nil
		}
	}

	return "", fmt.Errorf("failed: no input argument set and no fasta file found in %s", dir)
}
