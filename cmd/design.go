package cmd

import (
	"github.com/jjtimmons/gibfrag/internal/design"
	"github.com/jjtimmons/gibfrag/internal/frag"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// designCmd is for splitting a target sequence into Gibson Assembly fragments
var designCmd = &cobra.Command{
	Use:                        "design [FASTA]",
	Short:                      "Split a target sequence into overlapping fragments",
	RunE:                       design.Cmd(func() *zap.Logger { return logger }),
	Args:                       cobra.MaximumNArgs(1),
	SuggestionsMinimumDistance: 3,
	Aliases:                    []string{"fragments"},
	Long: `
Split the target sequence into a fixed number of fragments for Gibson Assembly.

Every fragment but the last is the same length: the sequence length, net of
overlaps, divided evenly between the fragments and capped at --max. The last
fragment runs to the end of the sequence. Neighboring fragments share exactly
--overlap bp.

The records of a multi-FASTA input are joined into a single target unless
--per-record is set. The design is rejected if the fragments would be shorter
than --min.`,
}

// set flags
func init() {
	p := frag.DefaultParams()

	// Flags for specifying the paths to the input file and output file
	designCmd.Flags().StringP("in", "i", "", "input file with the target sequence <FASTA>")
	designCmd.Flags().StringP("out", "o", "", "output file with the fragments <JSON|YAML|GB>")
	designCmd.Flags().StringP("format", "f", "", "output format (json, yaml, genbank); guessed from --out by default")
	designCmd.Flags().BoolP("per-record", "r", false, "split each FASTA record separately")
	designCmd.Flags().Bool("color", false, "style the console report")

	// Flags for the shape of the fragments
	designCmd.Flags().IntP("fragments", "n", p.Fragments, "number of fragments")
	designCmd.Flags().Int("min", p.MinLength, "minimum fragment length (bp)")
	designCmd.Flags().Int("max", p.MaxLength, "maximum fragment length (bp), but for the last fragment")
	designCmd.Flags().IntP("overlap", "l", p.Overlap, "overlap between neighboring fragments (bp)")
	designCmd.Flags().IntP("preview", "p", 50, "bp shown from either end of each fragment")
	designCmd.Flags().IntP("workers", "w", 0, "records split at once with --per-record (default: CPU count)")

	viper.BindPFlag("fragments", designCmd.Flags().Lookup("fragments"))
	viper.BindPFlag("min-length", designCmd.Flags().Lookup("min"))
	viper.BindPFlag("max-length", designCmd.Flags().Lookup("max"))
	viper.BindPFlag("overlap", designCmd.Flags().Lookup("overlap"))
	viper.BindPFlag("preview", designCmd.Flags().Lookup("preview"))
	viper.BindPFlag("workers", designCmd.Flags().Lookup("workers"))

	RootCmd.AddCommand(designCmd)
}
