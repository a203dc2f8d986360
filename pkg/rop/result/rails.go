package result

import (
	"github.com/ib-77/ropflow/pkg/rop"
)

func Map[In, Out, E any](input rop.Result[In, E], onSuccess func(r In) Out) rop.Result[Out, E] {
	if input.IsSuccess() {
		return rop.Success[Out, E](onSuccess(input.Result()))
	}
	return rop.FailFrom[Out](input)
}

func MapError[T, In, Out any](input rop.Result[T, In], onFailure func(err In) Out) rop.Result[T, Out] {
	if input.IsSuccess() {
		return rop.Success[T, Out](input.Result())
	}
	return rop.Fail[T](onFailure(input.Err()))
}

// Try calls a Go "value, error" function on success and turns a returned
// error into a failure.
func Try[In, Out any](input rop.Result[In, error],
	onTryExecute func(r In) (Out, error)) rop.Result[Out, error] {

	if input.IsSuccess() {
		out, err := onTryExecute(input.Result())
		return rop.OfError(out, err)
	}
	return rop.FailFrom[Out](input)
}

// Validate fails with the reported payload when valid is false.
func Validate[T, E any](input rop.Result[T, E], validate func(in T) (valid bool, err E)) rop.Result[T, E] {
	if input.IsSuccess() {
		if valid, err := validate(input.Result()); !valid {
			return rop.Fail[T](err)
		}
	}
	return input
}

func Tee[T, E any](input rop.Result[T, E], onSuccess func(r T)) rop.Result[T, E] {
	if input.IsSuccess() {
		onSuccess(input.Result())
	}
	return input
}

func DoubleTee[T, E any](input rop.Result[T, E], onSuccess func(r T), onFailure func(err E)) rop.Result[T, E] {
	if input.IsSuccess() {
		if onSuccess != nil {
			onSuccess(input.Result())
		}
	} else if onFailure != nil {
		onFailure(input.Err())
	}
	return input
}

// Finally collapses the result into a plain value.
func Finally[In, Out, E any](input rop.Result[In, E],
	onSuccess func(r In) Out,
	onFailure func(err E) Out) Out {

	if input.IsSuccess() {
		return onSuccess(input.Result())
	}
	return onFailure(input.Err())
}
