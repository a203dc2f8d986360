package rop

// OfOption turns an absent value into a failure with err.
func OfOption[T, E any](err E, o Option[T]) Result[T, E] {
	if v, ok := o.Get(); ok {
		return Success[T, E](v)
	}
	return Fail[T](err)
}

// ToOption drops the failure payload.
func ToOption[T, E any](r Result[T, E]) Option[T] {
	if r.IsSuccess() {
		return Some(r.Result())
	}
	return None[T]()
}

// OfError builds a Result from a Go "value, error" pair.
func OfError[T any](v T, err error) Result[T, error] {
	if err != nil {
		return Fail[T](err)
	}
	return Success[T, error](v)
}

// ToError is the inverse of OfError.
func ToError[T any](r Result[T, error]) (T, error) {
	if r.IsSuccess() {
		return r.Result(), nil
	}
	var zero T
	return zero, r.Err()
}
