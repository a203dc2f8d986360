package asyncoption

import (
	"context"

	"github.com/ib-77/ropflow/pkg/rop"
	"github.com/ib-77/ropflow/pkg/rop/async"
	"github.com/ib-77/ropflow/pkg/rop/core"
)

// Task is an asynchronous step that may produce nothing.
type Task[T any] = async.Task[rop.Option[T]]

// Bind awaits a plain task and continues with its value.
func Bind[A, B any](t async.Task[A], f func(A) Task[B]) Task[B] {
	return async.Bind(t, f)
}

// BindOption dispatches a present value to f. An absent value resolves to
// absent straight away, without suspending.
func BindOption[A, B any](o rop.Option[A], f func(A) Task[B]) Task[B] {
	if v, ok := o.Get(); ok {
		return f(v)
	}
	return Zero[B]()
}

// BindAsync awaits an asynchronous option and continues only when it is
// present.
func BindAsync[A, B any](t Task[A], f func(A) Task[B]) Task[B] {
	return async.Bind(t, func(o rop.Option[A]) Task[B] {
		return BindOption(o, f)
	})
}

// Return resolves to present v. For T == rop.Unit it is the same as Zero and
// resolves to absent; a unit boxed in an interface type stays present.
func Return[T any](v T) Task[T] {
	var zero T
	if _, ok := any(&zero).(*rop.Unit); ok {
		return Zero[T]()
	}
	return async.Return(rop.Some(v))
}

func ReturnFrom[T any](t Task[T]) Task[T] {
	return t
}

// OfOption lifts an already computed option.
func OfOption[T any](o rop.Option[T]) Task[T] {
	return async.Return(o)
}

func Zero[T any]() Task[T] {
	return async.Return(rop.None[T]())
}

func Delay[T any](f func() Task[T]) Task[T] {
	return async.Delay(f)
}

// Run executes the workflow on the calling goroutine.
func Run[T any](ctx context.Context, t Task[T]) (rop.Option[T], error) {
	return t.Run(ctx)
}

func Start[T any](ctx context.Context, t Task[T]) *async.Future[rop.Option[T]] {
	return t.Start(ctx)
}

// Combine awaits first. When it is present that is the result and second is
// never started; otherwise second is awaited.
func Combine[T any](first, second Task[T]) Task[T] {
	return async.Bind(first, func(o rop.Option[T]) Task[T] {
		if o.IsSome() {
			return func(ctx context.Context) (rop.Option[T], error) {
				core.Logger(ctx).Debug("option present, rest of the workflow skipped")
				return o, nil
			}
		}
		return second
	})
}

// Choose folds Combine over the tasks.
func Choose[T any](tasks ...Task[T]) Task[T] {
	res := Zero[T]()
	for _, t := range tasks {
		res = Combine(res, t)
	}
	return res
}

// WhenTrue resolves to present v when cond holds, to zero otherwise.
func WhenTrue[T any](cond bool, v T) Task[T] {
	if cond {
		return async.Return(rop.Some(v))
	}
	return Zero[T]()
}

func When[T any](cond bool, body Task[T]) Task[T] {
	if cond {
		return body
	}
	return Zero[T]()
}

// Using acquires on every run, so a skipped Using never holds a resource.
func Using[R rop.Resource, T any](acquire async.Task[R], body func(R) Task[T]) Task[T] {
	return async.Using[R, rop.Option[T]](acquire, body)
}

func TryWith[T any](body Task[T], handler func(error) Task[T]) Task[T] {
	return async.TryWith(body, handler)
}

func TryFinally[T any](body Task[T], compensation func()) Task[T] {
	return async.TryFinally(body, compensation)
}
