// Package design partitions target sequences read from FASTA files
// and writes the resulting fragments.
package design

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/jjtimmons/gibfrag/config"
	"github.com/jjtimmons/gibfrag/internal/fasta"
	"github.com/jjtimmons/gibfrag/internal/frag"
	"github.com/jjtimmons/gibfrag/internal/output"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Cmd returns the Run function of the design command.
func Cmd(logger func() *zap.Logger) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		flags, conf, err := parseCmdFlags(cmd, args)
		if err != nil {
			return err
		}

		_, err = Run(cmd.Context(), flags, conf, logger(), cmd.OutOrStdout())
		if errors.Is(err, frag.ErrInfeasible) {
			return fmt.Errorf("%w\nadjust --fragments, --min, --max or --overlap for this sequence", err)
		}
		return err
	}
}

// Run partitions the target sequence(s) in flags.in, writes the designs to
// flags.out (if set) and reports them to w.
func Run(ctx context.Context, flags *Flags, conf *config.Config, logger *zap.Logger, w io.Writer) ([]*output.Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	params := conf.Params()
	if err := params.Validate(); err != nil {
		return nil, err
	}

	var records []fasta.Record
	if flags.perRecord {
		all, err := fasta.Read(flags.in)
		if err != nil {
			return nil, err
		}
		records = all
	} else {
		target, err := fasta.ReadSeq(flags.in)
		if err != nil {
			return nil, err
		}
		records = []fasta.Record{target}
	}
	logger.Debug("read targets", zap.String("in", flags.in), zap.Int("records", len(records)))

	results, err := partitionAll(ctx, records, params, conf.Workers, logger)
	if err != nil {
		return nil, err
	}

	if err := emit(flags, conf, results, logger, w); err != nil {
		return nil, err
	}

	return results, nil
}

// emit checks every design's junctions, then writes the designs to
// flags.out (if set) and reports them to w. Nothing is written if any
// junction fails the check.
func emit(flags *Flags, conf *config.Config, results []*output.Result, logger *zap.Logger, w io.Writer) error {
	for _, r := range results {
		if !r.Verified() {
			return fmt.Errorf("failed to verify overlaps of %s", r.Target)
		}
	}

	if flags.out != "" {
		if _, err := output.Write(flags.out, flags.format, results); err != nil {
			return err
		}
		logger.Info("wrote designs", zap.String("out", flags.out), zap.String("format", string(flags.format)))
	}

	for _, r := range results {
		if err := output.Report(w, r, conf.Preview, flags.color); err != nil {
			return err
		}
	}

	return nil
}

// partitionAll partitions each record, at most workers at a time.
// Results are in the same order as records.
func partitionAll(ctx context.Context, records []fasta.Record, params frag.Params, workers int, logger *zap.Logger) ([]*output.Result, error) {
	results := make([]*output.Result, len(records))

	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}

	for i, rec := range records {
		i, rec := i, rec
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			r, err := partition(rec, params, logger)
			if err != nil {
				return err
			}
			results[i] = r
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// partition splits a single target and times it.
func partition(rec fasta.Record, params frag.Params, logger *zap.Logger) (*output.Result, error) {
	start := time.Now()

	frags, err := frag.Partition(rec.Seq, params)
	if err != nil {
		logger.Debug("partition rejected", zap.String("target", rec.ID), zap.Int("length", len(rec.Seq)), zap.Error(err))
		return nil, fmt.Errorf("failed to partition %s: %w", rec.ID, err)
	}

	elapsed := time.Since(start)
	logger.Debug("partitioned target",
		zap.String("target", rec.ID),
		zap.Int("length", len(rec.Seq)),
		zap.Int("fragments", len(frags)),
		zap.Duration("elapsed", elapsed),
	)

	return output.NewResult(rec.ID, rec.Seq, params, frags, elapsed), nil
}
