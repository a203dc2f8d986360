package asyncresult

import (
	"context"
	"errors"
	"slices"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/ib-77/ropflow/pkg/rop"
	"github.com/ib-77/ropflow/pkg/rop/async"
	"github.com/ib-77/ropflow/pkg/rop/core"
)

type countingResource struct {
	released atomic.Int32
}

func (r *countingResource) Release() {
	r.released.Add(1)
}

func counted[T, E any](n *atomic.Int32, t Task[T, E]) Task[T, E] {
	return func(ctx context.Context) (rop.Result[T, E], error) {
		n.Add(1)
		return t(ctx)
	}
}

func fetchBalance(account string) Task[int, string] {
	return Delay(func() Task[int, string] {
		return Bind(async.Sleep(time.Millisecond), func(rop.Unit) Task[int, string] {
			if account == "" {
				return OfResult(rop.Fail[int]("unknown account"))
			}
			return Return[int, string](100)
		})
	})
}

func TestBindAsync_Chains(t *testing.T) {
	t.Parallel()

	task := BindAsync(fetchBalance("acc-1"), func(balance int) Task[int, string] {
		return Return[int, string](balance - 30)
	})

	got, err := Run(context.Background(), task)
	require.NoError(t, err)
	require.True(t, got.IsSuccess())
	assert.Equal(t, 70, got.Result())
}

func TestBindAsync_FailureSkipsContinuation(t *testing.T) {
	t.Parallel()

	called := false
	task := BindAsync(fetchBalance(""), func(balance int) Task[int, string] {
		called = true
		return Return[int, string](balance)
	})

	got, err := Run(context.Background(), task)
	require.NoError(t, err)
	assert.Equal(t, "unknown account", got.Err())
	assert.False(t, called)
}

func TestBindResult(t *testing.T) {
	t.Parallel()

	failed := rop.Fail[int]("bad")
	called := false
	got, err := Run(context.Background(), BindResult(failed, func(int) Task[int, string] {
		called = true
		return Return[int, string](1)
	}))
	require.NoError(t, err)
	assert.False(t, called)
	assert.Equal(t, failed.Id(), got.Id())

	ok, err := Run(context.Background(), BindResult(rop.Success[int, string](2), func(n int) Task[int, string] {
		return Return[int, string](n + 1)
	}))
	require.NoError(t, err)
	assert.Equal(t, 3, ok.Result())
}

func TestReturnFromAndZero(t *testing.T) {
	t.Parallel()

	z, err := Run(context.Background(), ReturnFrom(Zero[string]()))
	require.NoError(t, err)
	assert.True(t, z.IsSuccess())
	assert.Equal(t, rop.Unit{}, z.Result())
}

func TestCombine_FailureNeverStartsSecond(t *testing.T) {
	t.Parallel()

	obs, logs := observer.New(zapcore.DebugLevel)
	ctx := core.WithLogger(context.Background(), zap.New(obs))

	var starts atomic.Int32
	task := Combine(FailWhen(true, "stop"), counted(&starts, Return[int, string](1)))

	got, err := Run(ctx, task)
	require.NoError(t, err)
	assert.Equal(t, "stop", got.Err())
	assert.Equal(t, int32(0), starts.Load())
	assert.Equal(t, 1, logs.Len())
}

func TestCombine_SuccessAwaitsSecondOnce(t *testing.T) {
	t.Parallel()

	var starts atomic.Int32
	task := Combine(FailWhen(false, "stop"), counted(&starts, Return[int, string](1)))

	got, err := Run(context.Background(), task)
	require.NoError(t, err)
	assert.Equal(t, 1, got.Result())
	assert.Equal(t, int32(1), starts.Load())
}

func TestWhen(t *testing.T) {
	t.Parallel()

	var starts atomic.Int32
	got, err := Run(context.Background(), When(false, counted(&starts, FailWhen(true, "x"))))
	require.NoError(t, err)
	assert.True(t, got.IsSuccess())
	assert.Equal(t, int32(0), starts.Load())
}

func TestUsing_ReleasesOnEveryPath(t *testing.T) {
	t.Parallel()

	bodies := map[string]Task[int, string]{
		"success": Return[int, string](1),
		"failure": OfResult(rop.Fail[int]("bad")),
		"error":   async.Raise[rop.Result[int, string]](errors.New("boom")),
	}
	for name, body := range bodies {
		t.Run(name, func(t *testing.T) {
			r := &countingResource{}
			_, _ = Run(context.Background(), Using(async.Return(r), func(*countingResource) Task[int, string] { return body }))
			assert.Equal(t, int32(1), r.released.Load())
		})
	}
}

func TestUsing_SameWorkflowRunTwice(t *testing.T) {
	t.Parallel()

	var opened []*countingResource
	task := Using(async.Lazy(func() *countingResource {
		r := &countingResource{}
		opened = append(opened, r)
		return r
	}), func(*countingResource) Task[int, string] { return Return[int, string](1) })

	for range 2 {
		got, err := Run(context.Background(), task)
		require.NoError(t, err)
		assert.Equal(t, 1, got.Result())
	}

	require.Len(t, opened, 2)
	for _, r := range opened {
		assert.Equal(t, int32(1), r.released.Load())
	}
}

func TestUsing_SkippedAfterFailureNeverAcquires(t *testing.T) {
	t.Parallel()

	var opened atomic.Int32
	r := &countingResource{}
	rest := Using(async.Lazy(func() *countingResource {
		opened.Add(1)
		return r
	}), func(*countingResource) Task[int, string] { return Return[int, string](1) })

	got, err := Run(context.Background(), Combine(FailWhen(true, "stop"), rest))
	require.NoError(t, err)
	assert.True(t, got.IsFailure())
	assert.Equal(t, "stop", got.Err())
	assert.Equal(t, int32(0), opened.Load())
	assert.Equal(t, int32(0), r.released.Load())
}

func TestTryWithAndTryFinally(t *testing.T) {
	t.Parallel()

	compensated := 0
	panicking := Task[int, string](func(context.Context) (rop.Result[int, string], error) {
		panic("boom")
	})

	task := TryFinally(TryWith(panicking, func(err error) Task[int, string] {
		return OfResult(rop.Fail[int](err.Error()))
	}), func() { compensated++ })

	got, err := Run(context.Background(), task)
	require.NoError(t, err)
	assert.Equal(t, "panic: boom", got.Err())
	assert.Equal(t, 1, compensated)
}

func TestStart(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	got, err := Start(ctx, fetchBalance("acc-2")).Await(ctx)
	require.NoError(t, err)
	assert.Equal(t, 100, got.Result())
}

func TestWhile_StopsOnFailure(t *testing.T) {
	t.Parallel()

	i := 0
	body := Delay(func() Task[rop.Unit, string] {
		i++
		return FailWhen(i == 3, "third")
	})

	got, err := Run(context.Background(), While(func() bool { return i < 10 }, body))
	require.NoError(t, err)
	assert.Equal(t, 3, i)
	assert.Equal(t, "third", got.Err())
}

func TestWhile_FalseConditionIsZero(t *testing.T) {
	t.Parallel()

	var starts atomic.Int32
	got, err := Run(context.Background(), While(func() bool { return false }, counted(&starts, Zero[string]())))
	require.NoError(t, err)
	assert.True(t, got.IsSuccess())
	assert.Equal(t, int32(0), starts.Load())
}

func TestWhile_PropagatesError(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	_, err := Run(context.Background(), While(func() bool { return true }, async.Raise[rop.Result[rop.Unit, string]](boom)))
	assert.ErrorIs(t, err, boom)
}

func TestWhile_StopsOnCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	iterations := 0
	body := Delay(func() Task[rop.Unit, string] {
		iterations++
		if iterations == 2 {
			cancel()
		}
		return Zero[string]()
	})

	_, err := Run(ctx, While(func() bool { return true }, body))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 2, iterations)
}

func TestFor_StopsAtFirstFailure(t *testing.T) {
	t.Parallel()

	items := []rop.Result[int, string]{
		rop.Success[int, string](1),
		rop.Fail[int]("oops"),
		rop.Success[int, string](2),
	}

	var acc []int
	loop := For(slices.Values(items), func(item rop.Result[int, string]) Task[rop.Unit, string] {
		return BindResult(item, func(v int) Task[rop.Unit, string] {
			return Bind(async.Sleep(time.Millisecond), func(rop.Unit) Task[rop.Unit, string] {
				acc = append(acc, v)
				return Zero[string]()
			})
		})
	})

	got, err := Run(context.Background(), loop)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, acc)
	require.True(t, got.IsFailure())
	assert.Equal(t, "oops", got.Err())
}

func TestFor_ReleasesIteratorOnEveryExit(t *testing.T) {
	t.Parallel()

	var released atomic.Int32
	seq := func(yield func(int) bool) {
		defer released.Add(1)
		for i := 0; i < 5; i++ {
			if !yield(i) {
				return
			}
		}
	}

	failing := For(seq, func(v int) Task[rop.Unit, string] { return FailWhen(v == 1, "stop") })
	got, err := Run(context.Background(), failing)
	require.NoError(t, err)
	assert.True(t, got.IsFailure())
	assert.Equal(t, int32(1), released.Load())

	raising := For(seq, func(int) Task[rop.Unit, string] {
		return async.Raise[rop.Result[rop.Unit, string]](errors.New("boom"))
	})
	_, err = Run(context.Background(), raising)
	assert.Error(t, err)
	assert.Equal(t, int32(2), released.Load())

	complete := For(seq, func(int) Task[rop.Unit, string] { return Zero[string]() })
	got, err = Run(context.Background(), complete)
	require.NoError(t, err)
	assert.True(t, got.IsSuccess())
	assert.Equal(t, int32(3), released.Load())

	// the loop task can be run again, with a fresh iterator
	got, err = Run(context.Background(), complete)
	require.NoError(t, err)
	assert.True(t, got.IsSuccess())
	assert.Equal(t, int32(4), released.Load())
}

func TestFor_OverChannel(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	sum := 0
	loop := For(core.Values(ctx, core.ToChan(ctx, 1, 2, 3)), func(v int) Task[rop.Unit, string] {
		sum += v
		return Zero[string]()
	})

	got, err := Run(ctx, loop)
	require.NoError(t, err)
	assert.True(t, got.IsSuccess())
	assert.Equal(t, 6, sum)
}
