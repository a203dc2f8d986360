package core

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Drive runs engine for every index in [0, count) on at most lines
// goroutines. The first engine error cancels the context handed to the
// engines that have not finished and is returned once all lines stop.
// Engines not yet started when the context is done are skipped. Once every
// index ran without error the run is complete, even if ctx is cancelled
// afterwards.
func Drive(ctx context.Context, count, lines int,
	engine func(ctx context.Context, i int) error) error {

	if lines <= 0 {
		lines = 1
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(lines)

	scheduled := 0
	for i := range count {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return engine(gctx, i)
		})
		scheduled++
	}

	if err := g.Wait(); err != nil {
		return err
	}
	if scheduled < count {
		return ctx.Err()
	}
	return nil
}
