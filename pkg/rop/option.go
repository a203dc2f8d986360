package rop

// Unit is the value of computations that carry no payload.
type Unit struct{}

// Option is either present (Some) or absent (None).
type Option[T any] struct {
	value T
	some  bool
}

func Some[T any](v T) Option[T] {
	return Option[T]{value: v, some: true}
}

func None[T any]() Option[T] {
	return Option[T]{}
}

// OfPair builds an Option from the usual Go "value, ok" pair.
func OfPair[T any](v T, ok bool) Option[T] {
	if !ok {
		return None[T]()
	}
	return Some(v)
}

// OfPtr is present when p is not nil.
func OfPtr[T any](p *T) Option[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

func (o Option[T]) IsSome() bool {
	return o.some
}

func (o Option[T]) IsNone() bool {
	return !o.some
}

func (o Option[T]) Get() (T, bool) {
	return o.value, o.some
}

// Value returns the present value or the zero value of T.
func (o Option[T]) Value() T {
	return o.value
}

func (o Option[T]) ValueOr(def T) T {
	if o.some {
		return o.value
	}
	return def
}
