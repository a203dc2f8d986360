package result

import (
	"iter"

	"github.com/ib-77/ropflow/pkg/rop"
)

// While evaluates body as long as cond holds. The first failure ends the
// loop and becomes its result.
func While[E any](cond func() bool, body Delayed[rop.Unit, E]) rop.Result[rop.Unit, E] {
	for cond() {
		if r := body(); r.IsFailure() {
			return r
		}
	}
	return Zero[E]()
}

// For runs body on each element of seq in order. A failure stops the walk,
// later elements are never pulled, and the iterator is released on every
// exit path.
func For[T, E any](seq iter.Seq[T], body func(T) rop.Result[rop.Unit, E]) rop.Result[rop.Unit, E] {
	return Using[*rop.Cursor[T], rop.Unit, E](rop.NewCursor(seq), func(c *rop.Cursor[T]) rop.Result[rop.Unit, E] {
		return While[E](c.Next, func() rop.Result[rop.Unit, E] {
			return body(c.Current())
		})
	})
}
