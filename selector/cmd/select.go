package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/alecthomas/kong"

	"go.ntppool.org/stratify/selector"
)

type SelectCmd struct {
	Common `embed:""`

	Random bool    `short:"r" help:"sample each category randomly instead of taking the first elements"`
	Seed   *uint64 `help:"seed for --random, for repeatable selections"`
}

func (cmd *SelectCmd) Run(ctx context.Context, kctx *kong.Context) error {
	ctx, log := cmd.logger(ctx, kctx)
	log = log.With("runID", runID())

	reg := cmd.registry()
	defer func() {
		if err := cmd.writeMetrics(kctx.Stderr, reg); err != nil {
			log.ErrorContext(ctx, "could not write metrics", "err", err)
		}
	}()

	var extra []selector.Option
	if cmd.Seed != nil {
		extra = append(extra, selector.WithRand(rand.New(rand.NewPCG(*cmd.Seed, *cmd.Seed))))
	}

	sl, err := cmd.load(ctx, log, reg, extra...)
	if err != nil {
		return err
	}

	var opts []selector.SelectOption
	if cmd.Random {
		opts = append(opts, selector.Randomly())
	}

	selected, err := sl.Select(opts...)
	if err != nil {
		var ue *selector.UnsatisfiedError
		if errors.As(err, &ue) {
			log.WarnContext(ctx, "distribution unsatisfied",
				"reason", ue.Reason,
				"elements", ue.Total,
				"neediest", sl.NeediestCategories())
		}
		return err
	}

	log.InfoContext(ctx, "selection complete",
		"elements", sl.Count(),
		"limiter", sl.Limiter(),
		"estimatedCount", sl.EstimatedFinalCount())

	enc := json.NewEncoder(kctx.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(selected); err != nil {
		return fmt.Errorf("failed to write selection: %w", err)
	}

	return nil
}
