package async

import (
	"context"
	"time"

	"github.com/ib-77/ropflow/pkg/rop"
)

// Task is a deferred computation. Nothing happens until it is run, and it
// may be run again, each run repeating the work. The error is the exception
// channel: raised errors, recovered panics and context cancellation.
type Task[T any] func(ctx context.Context) (T, error)

// Run executes the task on the calling goroutine.
func (t Task[T]) Run(ctx context.Context) (T, error) {
	return t(ctx)
}

// Return is an already resolved task.
func Return[T any](v T) Task[T] {
	return func(context.Context) (T, error) {
		return v, nil
	}
}

// Raise is a task that fails with err when run.
func Raise[T any](err error) Task[T] {
	return func(context.Context) (T, error) {
		var zero T
		return zero, err
	}
}

// Delay postpones building the task until it is run.
func Delay[T any](f func() Task[T]) Task[T] {
	return func(ctx context.Context) (T, error) {
		return f()(ctx)
	}
}

// Bind awaits t and continues with f. A cancelled context stops the chain
// before f is called.
func Bind[A, B any](t Task[A], f func(A) Task[B]) Task[B] {
	return func(ctx context.Context) (B, error) {
		var zero B

		a, err := t(ctx)
		if err != nil {
			return zero, err
		}
		if err := ctx.Err(); err != nil {
			return zero, err
		}
		return f(a)(ctx)
	}
}

func Map[A, B any](t Task[A], f func(A) B) Task[B] {
	return func(ctx context.Context) (B, error) {
		a, err := t(ctx)
		if err != nil {
			var zero B
			return zero, err
		}
		return f(a), nil
	}
}

// Using acquires a resource with acquire each time the task runs, runs body
// on it and releases it when body's task finishes, whatever the outcome. A
// failed acquire runs neither body nor release. A nil resource is not
// released. A Using task that never runs never acquires.
func Using[R rop.Resource, T any](acquire Task[R], body func(R) Task[T]) Task[T] {
	return func(ctx context.Context) (T, error) {
		r, err := acquire(ctx)
		if err != nil {
			var zero T
			return zero, err
		}
		if !rop.IsNil(r) {
			defer r.Release()
		}
		return body(r)(ctx)
	}
}

// Lazy calls open on every run of the task.
func Lazy[T any](open func() T) Task[T] {
	return func(context.Context) (T, error) {
		return open(), nil
	}
}

// TryWith hands errors and panics raised by body to handler. Cancellation of
// ctx is not handled; it keeps propagating.
func TryWith[T any](body Task[T], handler func(error) Task[T]) Task[T] {
	return func(ctx context.Context) (T, error) {
		v, err := protect(ctx, body)
		if err == nil {
			return v, nil
		}
		if ctx.Err() != nil && rop.IsCancellationError(err) {
			return v, err
		}
		return handler(err)(ctx)
	}
}

// TryFinally runs compensation after body on every exit path.
func TryFinally[T any](body Task[T], compensation func()) Task[T] {
	return func(ctx context.Context) (T, error) {
		defer compensation()
		return body(ctx)
	}
}

// Sleep suspends for d or until ctx is done.
func Sleep(d time.Duration) Task[rop.Unit] {
	return func(ctx context.Context) (rop.Unit, error) {
		timer := time.NewTimer(d)
		defer timer.Stop()

		select {
		case <-timer.C:
			return rop.Unit{}, nil
		case <-ctx.Done():
			return rop.Unit{}, ctx.Err()
		}
	}
}

func protect[T any](ctx context.Context, t Task[T]) (v T, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = rop.Recovered(r)
		}
	}()
	return t(ctx)
}
