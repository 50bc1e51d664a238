package cmd

import (
	"context"
	"fmt"

	"github.com/alecthomas/kong"
)

type NeedsCmd struct {
	Common `embed:""`
}

func (cmd *NeedsCmd) Run(ctx context.Context, kctx *kong.Context) error {
	ctx, log := cmd.logger(ctx, kctx)
	log = log.With("runID", runID())

	reg := cmd.registry()
	defer func() {
		if err := cmd.writeMetrics(kctx.Stderr, reg); err != nil {
			log.ErrorContext(ctx, "could not write metrics", "err", err)
		}
	}()

	sl, err := cmd.load(ctx, log, reg)
	if err != nil {
		return err
	}

	ok, err := sl.IsSatisfied()
	if err != nil {
		return err
	}
	log.InfoContext(ctx, "pool status",
		"elements", sl.Count(),
		"satisfied", ok)

	for _, cat := range sl.NeediestCategories() {
		fmt.Fprintf(kctx.Stdout, "%-20s %d\n", cat, sl.PoolSize(cat))
	}

	return nil
}
