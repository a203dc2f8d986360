package result

import (
	"github.com/ib-77/ropflow/pkg/rop"
)

// Delayed is a workflow step that has not been evaluated yet.
type Delayed[T, E any] func() rop.Result[T, E]

// Bind continues with f on success. A failure is passed on untouched and f
// is not called.
func Bind[In, Out, E any](input rop.Result[In, E],
	onSuccess func(r In) rop.Result[Out, E]) rop.Result[Out, E] {

	if input.IsSuccess() {
		return onSuccess(input.Result())
	}
	return rop.FailFrom[Out](input)
}

func Return[T, E any](v T) rop.Result[T, E] {
	return rop.Success[T, E](v)
}

func ReturnFrom[T, E any](r rop.Result[T, E]) rop.Result[T, E] {
	return r
}

// Zero is the no-op success.
func Zero[E any]() rop.Result[rop.Unit, E] {
	return rop.Success[rop.Unit, E](rop.Unit{})
}

func Delay[T, E any](f func() rop.Result[T, E]) Delayed[T, E] {
	return f
}

func Run[T, E any](d Delayed[T, E]) rop.Result[T, E] {
	return d()
}

// Combine sequences a unit step with the rest of the workflow. A failed
// first step is the result and second is not evaluated; a successful one
// hands over to second.
func Combine[T, E any](first rop.Result[rop.Unit, E], second Delayed[T, E]) rop.Result[T, E] {
	if first.IsFailure() {
		return rop.FailFrom[T](first)
	}
	return second()
}

// FailWhen is "if cond then fail err": a failure when cond holds, zero
// otherwise, so a following Combine stops only on the failure.
func FailWhen[E any](cond bool, err E) rop.Result[rop.Unit, E] {
	if cond {
		return rop.Fail[rop.Unit](err)
	}
	return Zero[E]()
}

// When evaluates body only when cond holds.
func When[E any](cond bool, body Delayed[rop.Unit, E]) rop.Result[rop.Unit, E] {
	if cond {
		return body()
	}
	return Zero[E]()
}

// Using evaluates body and then releases r, also when body fails or panics.
func Using[R rop.Resource, T, E any](r R, body func(R) rop.Result[T, E]) rop.Result[T, E] {
	if !rop.IsNil(r) {
		defer r.Release()
	}
	return body(r)
}

// TryWith evaluates body and hands a panic raised by it to handler.
// Failures are values and do not reach handler.
func TryWith[T, E any](body Delayed[T, E], handler func(error) rop.Result[T, E]) (res rop.Result[T, E]) {
	defer func() {
		if r := recover(); r != nil {
			res = handler(rop.Recovered(r))
		}
	}()
	return body()
}

// TryFinally runs compensation after body on every exit path.
func TryFinally[T, E any](body Delayed[T, E], compensation func()) rop.Result[T, E] {
	defer compensation()
	return body()
}
