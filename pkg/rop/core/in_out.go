package core

import (
	"context"
	"iter"
)

// ToChan feeds values into a new channel until they run out or ctx is done.
func ToChan[T any](ctx context.Context, values ...T) <-chan T {
	in := make(chan T)

	go func() {
		defer close(in)

		for _, v := range values {
			if ctx.Err() != nil {
				return
			}

			select {
			case in <- v:
			case <-ctx.Done():
				return
			}
		}
	}()

	return in
}

// Values exposes a channel as a sequence. The sequence ends when the channel
// is closed or ctx is done.
func Values[T any](ctx context.Context, out <-chan T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			select {
			case v, ok := <-out:
				if !ok {
					return
				}
				if !yield(v) {
					return
				}
			case <-ctx.Done():
				return
			}
		}
	}
}

func FromChanMany[T any](ctx context.Context, out <-chan T) []T {
	res := make([]T, 0)
	for v := range Values(ctx, out) {
		res = append(res, v)
	}
	return res
}
