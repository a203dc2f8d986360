package chain

import (
	"context"

	"github.com/ib-77/ropflow/pkg/rop"
	"github.com/ib-77/ropflow/pkg/rop/option"
)

// Maybe is the fluent counterpart of Chain for optional values.
type Maybe[T any] struct {
	ctx context.Context
	opt rop.Option[T]
}

func StartMaybe[T any](ctx context.Context, o rop.Option[T]) *Maybe[T] {
	return &Maybe[T]{ctx: ctx, opt: o}
}

func Just[T any](ctx context.Context, v T) *Maybe[T] {
	return StartMaybe(ctx, rop.Some(v))
}

func (m *Maybe[T]) Option() rop.Option[T] {
	return m.opt
}

// MaybeThen continues with f while a value is present.
func MaybeThen[T, U any](m *Maybe[T], f func(context.Context, T) rop.Option[U]) *Maybe[U] {
	return StartMaybe(m.ctx, option.Bind(m.opt, func(v T) rop.Option[U] {
		return f(m.ctx, v)
	}))
}

// Or keeps a present value and only asks alternative when there is none.
func (m *Maybe[T]) Or(alternative func(context.Context) rop.Option[T]) *Maybe[T] {
	return StartMaybe(m.ctx, option.Combine[T](m.opt, func() rop.Option[T] {
		return alternative(m.ctx)
	}))
}

func (m *Maybe[T]) Filter(keep func(context.Context, T) bool) *Maybe[T] {
	return StartMaybe(m.ctx, option.Filter(m.opt, func(v T) bool {
		return keep(m.ctx, v)
	}))
}

func (m *Maybe[T]) ValueOr(def T) T {
	return m.opt.ValueOr(def)
}
