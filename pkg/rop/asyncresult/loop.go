package asyncresult

import (
	"context"
	"iter"

	"go.uber.org/zap"

	"github.com/ib-77/ropflow/pkg/rop"
	"github.com/ib-77/ropflow/pkg/rop/async"
	"github.com/ib-77/ropflow/pkg/rop/core"
)

// While awaits body as long as cond holds. The first failing iteration ends
// the loop and is its result; the remaining iterations are abandoned.
func While[E any](cond func() bool, body Task[rop.Unit, E]) Task[rop.Unit, E] {
	return func(ctx context.Context) (rop.Result[rop.Unit, E], error) {
		for i := 0; cond(); i++ {
			r, err := body(ctx)
			if err != nil {
				return rop.Result[rop.Unit, E]{}, err
			}
			if r.IsFailure() {
				core.Logger(ctx).Debug("loop stopped on failure", zap.Int("iteration", i))
				return r, nil
			}
			if err := ctx.Err(); err != nil {
				return rop.Result[rop.Unit, E]{}, err
			}
		}
		return rop.Success[rop.Unit, E](rop.Unit{}), nil
	}
}

// For awaits body on each element of seq in order. A failure stops the walk
// and is the loop's result. The iterator is released on every exit path,
// including errors, panics and cancellation.
func For[T, E any](seq iter.Seq[T], body func(T) Task[rop.Unit, E]) Task[rop.Unit, E] {
	open := async.Lazy(func() *rop.Cursor[T] { return rop.NewCursor(seq) })
	return Using[*rop.Cursor[T], rop.Unit, E](open, func(c *rop.Cursor[T]) Task[rop.Unit, E] {
		return While[E](c.Next, async.Delay(func() Task[rop.Unit, E] {
			return body(c.Current())
		}))
	})
}
