package async

import (
	"context"

	"go.uber.org/zap"

	"github.com/ib-77/ropflow/pkg/rop"
	"github.com/ib-77/ropflow/pkg/rop/core"
)

// Future is a started task.
type Future[T any] struct {
	done  chan struct{}
	value T
	err   error
}

// Start runs the task on its own goroutine. A panic there is recovered and
// reported by Await as a *rop.PanicError.
func (t Task[T]) Start(ctx context.Context) *Future[T] {
	f := &Future[T]{done: make(chan struct{})}

	go func() {
		defer close(f.done)
		defer func() {
			if r := recover(); r != nil {
				f.err = rop.Recovered(r)
				core.Logger(ctx).Error("task panicked", zap.Error(f.err))
			}
		}()

		f.value, f.err = t(ctx)
	}()

	return f
}

func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// Await blocks until the future resolves or ctx is done.
func (f *Future[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.value, f.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Await turns a future back into a task, so it can be bound.
func Await[T any](f *Future[T]) Task[T] {
	return f.Await
}

// Parallel runs independent tasks side by side, at most
// core.GetWorkerMaxCount of them at a time, and keeps their order in the
// result. The first error cancels the others.
func Parallel[T any](tasks ...Task[T]) Task[[]T] {
	return func(ctx context.Context) ([]T, error) {
		out := make([]T, len(tasks))
		lines := core.GetWorkerMaxCount(ctx, core.DefaultWorkers())

		err := core.Drive(ctx, len(tasks), lines, func(ctx context.Context, i int) error {
			v, err := protect(ctx, tasks[i])
			if err != nil {
				return err
			}
			out[i] = v
			return nil
		})
		if err != nil {
			return nil, err
		}
		return out, nil
	}
}
