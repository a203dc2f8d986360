package asyncresult

import (
	"context"

	"github.com/ib-77/ropflow/pkg/rop"
	"github.com/ib-77/ropflow/pkg/rop/async"
	"github.com/ib-77/ropflow/pkg/rop/core"
)

// Task is an asynchronous step that succeeds with T or fails with E.
type Task[T, E any] = async.Task[rop.Result[T, E]]

// Bind awaits a plain task and continues with its value.
func Bind[A, B, E any](t async.Task[A], f func(A) Task[B, E]) Task[B, E] {
	return async.Bind(t, f)
}

// BindResult dispatches a success to f. A failure resolves to the same
// failure straight away, without suspending.
func BindResult[A, B, E any](r rop.Result[A, E], f func(A) Task[B, E]) Task[B, E] {
	if r.IsSuccess() {
		return f(r.Result())
	}
	return async.Return(rop.FailFrom[B](r))
}

// BindAsync awaits an asynchronous result and continues only on success.
func BindAsync[A, B, E any](t Task[A, E], f func(A) Task[B, E]) Task[B, E] {
	return async.Bind(t, func(r rop.Result[A, E]) Task[B, E] {
		return BindResult(r, f)
	})
}

func Return[T, E any](v T) Task[T, E] {
	return async.Return(rop.Success[T, E](v))
}

func ReturnFrom[T, E any](t Task[T, E]) Task[T, E] {
	return t
}

// OfResult lifts an already computed result.
func OfResult[T, E any](r rop.Result[T, E]) Task[T, E] {
	return async.Return(r)
}

// Zero resolves to the no-op success.
func Zero[E any]() Task[rop.Unit, E] {
	return async.Return(rop.Success[rop.Unit, E](rop.Unit{}))
}

func Delay[T, E any](f func() Task[T, E]) Task[T, E] {
	return async.Delay(f)
}

// Run executes the workflow on the calling goroutine.
func Run[T, E any](ctx context.Context, t Task[T, E]) (rop.Result[T, E], error) {
	return t.Run(ctx)
}

func Start[T, E any](ctx context.Context, t Task[T, E]) *async.Future[rop.Result[T, E]] {
	return t.Start(ctx)
}

// Combine awaits first. A failure is the result and second is never
// started; a success hands over to second.
func Combine[T, E any](first Task[rop.Unit, E], second Task[T, E]) Task[T, E] {
	return async.Bind(first, func(r rop.Result[rop.Unit, E]) Task[T, E] {
		if r.IsFailure() {
			return func(ctx context.Context) (rop.Result[T, E], error) {
				core.Logger(ctx).Debug("failure, rest of the workflow skipped")
				return rop.FailFrom[T](r), nil
			}
		}
		return second
	})
}

// FailWhen resolves to a failure with err when cond holds, to zero
// otherwise.
func FailWhen[E any](cond bool, err E) Task[rop.Unit, E] {
	if cond {
		return async.Return(rop.Fail[rop.Unit](err))
	}
	return Zero[E]()
}

func When[E any](cond bool, body Task[rop.Unit, E]) Task[rop.Unit, E] {
	if cond {
		return body
	}
	return Zero[E]()
}

func Using[R rop.Resource, T, E any](acquire async.Task[R], body func(R) Task[T, E]) Task[T, E] {
	return async.Using[R, rop.Result[T, E]](acquire, body)
}

func TryWith[T, E any](body Task[T, E], handler func(error) Task[T, E]) Task[T, E] {
	return async.TryWith(body, handler)
}

func TryFinally[T, E any](body Task[T, E], compensation func()) Task[T, E] {
	return async.TryFinally(body, compensation)
}
