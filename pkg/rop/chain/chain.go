package chain

import (
	"context"

	"github.com/ib-77/ropflow/pkg/rop"
	"github.com/ib-77/ropflow/pkg/rop/result"
)

// Chain wraps a rop.Result with context to enable fluent chaining
type Chain[T, E any] struct {
	ctx    context.Context
	result rop.Result[T, E]
}

// Start creates a new chain from a rop.Result
func Start[T, E any](ctx context.Context, r rop.Result[T, E]) *Chain[T, E] {
	return &Chain[T, E]{
		ctx:    ctx,
		result: r,
	}
}

// FromValue creates a new chain from a successful value
func FromValue[T, E any](ctx context.Context, value T) *Chain[T, E] {
	return Start(ctx, rop.Success[T, E](value))
}

// Result returns the underlying rop.Result
func (c *Chain[T, E]) Result() rop.Result[T, E] {
	return c.result
}

// Then chains a function that returns rop.Result[U, E]
func Then[T, U, E any](c *Chain[T, E], onSuccess func(context.Context, T) rop.Result[U, E]) *Chain[U, E] {
	return Start(c.ctx, result.Bind(c.result, func(v T) rop.Result[U, E] {
		return onSuccess(c.ctx, v)
	}))
}

// ThenTry chains a function that returns (U, error)
func ThenTry[T, U any](c *Chain[T, error], tryOnSuccess func(context.Context, T) (U, error)) *Chain[U, error] {
	return Start(c.ctx, result.Try(c.result, func(v T) (U, error) {
		return tryOnSuccess(c.ctx, v)
	}))
}

// Map chains a pure transformation function
func Map[T, U, E any](c *Chain[T, E], onSuccess func(context.Context, T) U) *Chain[U, E] {
	return Start(c.ctx, result.Map(c.result, func(v T) U {
		return onSuccess(c.ctx, v)
	}))
}

// AndThen runs next only when the unit step before it succeeded
func AndThen[T, E any](c *Chain[rop.Unit, E], next func(context.Context) rop.Result[T, E]) *Chain[T, E] {
	return Start(c.ctx, result.Combine[T, E](c.result, func() rop.Result[T, E] {
		return next(c.ctx)
	}))
}

// Validate fails the chain with the reported payload on invalid values
func (c *Chain[T, E]) Validate(validate func(context.Context, T) (bool, E)) *Chain[T, E] {
	return Start(c.ctx, result.Validate(c.result, func(v T) (bool, E) {
		return validate(c.ctx, v)
	}))
}

// Ensure performs a side effect without changing the result
func (c *Chain[T, E]) Ensure(onSuccess func(context.Context, T)) *Chain[T, E] {
	return Start(c.ctx, result.Tee(c.result, func(v T) {
		onSuccess(c.ctx, v)
	}))
}

// Finally collapses the chain into a final value
func Finally[T, U, E any](c *Chain[T, E], onSuccess func(context.Context, T) U,
	onFailure func(context.Context, E) U) U {
	return result.Finally(c.result,
		func(v T) U { return onSuccess(c.ctx, v) },
		func(err E) U { return onFailure(c.ctx, err) })
}
