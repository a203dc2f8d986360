package rop

import (
	"time"

	"github.com/google/uuid"
)

// Result is either a success carrying T or a failure carrying a
// caller-defined payload E. The payload is never inspected here.
type Result[T, E any] struct {
	id        uuid.UUID
	createdAt time.Time
	result    T
	err       E
	isSuccess bool
}

func Success[T, E any](r T) Result[T, E] {
	return Result[T, E]{
		result:    r,
		isSuccess: true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Fail[T, E any](err E) Result[T, E] {
	return Result[T, E]{
		err:       err,
		isSuccess: false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// FailFrom re-types a failed result, keeping its id, time and payload.
// It must only be called on a failure.
func FailFrom[Out, In, E any](from Result[In, E]) Result[Out, E] {
	return Result[Out, E]{
		err:       from.err,
		isSuccess: false,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

func (r Result[T, E]) Result() T {
	return r.result
}

func (r Result[T, E]) Err() E {
	return r.err
}

func (r Result[T, E]) IsSuccess() bool {
	return r.isSuccess
}

func (r Result[T, E]) IsFailure() bool {
	return !r.isSuccess
}

func (r Result[T, E]) CreatedAt() time.Time {
	return r.createdAt
}

func (r Result[T, E]) Id() uuid.UUID {
	return r.id
}
