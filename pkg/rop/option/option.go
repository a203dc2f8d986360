package option

import (
	"github.com/ib-77/ropflow/pkg/rop"
)

// Delayed is a workflow step that has not been evaluated yet.
type Delayed[T any] func() rop.Option[T]

// Bind continues with f when step is present. An absent step is returned
// as absent and f is not called.
func Bind[A, B any](step rop.Option[A], f func(A) rop.Option[B]) rop.Option[B] {
	if v, ok := step.Get(); ok {
		return f(v)
	}
	return rop.None[B]()
}

func Return[T any](v T) rop.Option[T] {
	return rop.Some(v)
}

func ReturnFrom[T any](o rop.Option[T]) rop.Option[T] {
	return o
}

// Zero is the value of a branch that produced nothing.
func Zero[T any]() rop.Option[T] {
	return rop.None[T]()
}

func Delay[T any](f func() rop.Option[T]) Delayed[T] {
	return f
}

func Run[T any](d Delayed[T]) rop.Option[T] {
	return d()
}

// Combine returns first when it is present, without evaluating second.
// Otherwise second is evaluated once and returned.
func Combine[T any](first rop.Option[T], second Delayed[T]) rop.Option[T] {
	if first.IsSome() {
		return first
	}
	return second()
}

// Choose folds Combine over the steps: the first present value wins and the
// remaining steps are never evaluated.
func Choose[T any](steps ...Delayed[T]) rop.Option[T] {
	res := Zero[T]()
	for _, step := range steps {
		res = Combine(res, step)
		if res.IsSome() {
			return res
		}
	}
	return res
}

// WhenTrue is "if cond then return v": present when cond holds, zero
// otherwise.
func WhenTrue[T any](cond bool, v T) rop.Option[T] {
	if cond {
		return Return(v)
	}
	return Zero[T]()
}

// When evaluates body only when cond holds.
func When[T any](cond bool, body Delayed[T]) rop.Option[T] {
	if cond {
		return body()
	}
	return Zero[T]()
}

// Using evaluates body and then releases r, also when body panics.
func Using[R rop.Resource, T any](r R, body func(R) rop.Option[T]) rop.Option[T] {
	if !rop.IsNil(r) {
		defer r.Release()
	}
	return body(r)
}

// TryWith evaluates body and hands a panic raised by it to handler.
func TryWith[T any](body Delayed[T], handler func(error) rop.Option[T]) (res rop.Option[T]) {
	defer func() {
		if r := recover(); r != nil {
			res = handler(rop.Recovered(r))
		}
	}()
	return body()
}

// TryFinally runs compensation after body, also when body panics.
func TryFinally[T any](body Delayed[T], compensation func()) rop.Option[T] {
	defer compensation()
	return body()
}

func Map[A, B any](o rop.Option[A], f func(A) B) rop.Option[B] {
	return Bind(o, func(v A) rop.Option[B] {
		return Return(f(v))
	})
}

func Filter[T any](o rop.Option[T], keep func(T) bool) rop.Option[T] {
	return Bind(o, func(v T) rop.Option[T] {
		return WhenTrue(keep(v), v)
	})
}

// OrElse is Combine with an already evaluated alternative.
func OrElse[T any](o rop.Option[T], alternative rop.Option[T]) rop.Option[T] {
	return Combine[T](o, func() rop.Option[T] { return alternative })
}
