package rop

import "iter"

// Cursor walks an iter.Seq one element at a time. It is a Resource: Release
// stops the underlying iterator so its cleanup runs even when the walk is
// abandoned early.
type Cursor[T any] struct {
	next    func() (T, bool)
	stop    func()
	current T
	done    bool
}

func NewCursor[T any](seq iter.Seq[T]) *Cursor[T] {
	next, stop := iter.Pull(seq)
	return &Cursor[T]{next: next, stop: stop}
}

// Next advances the cursor and reports whether an element is available.
func (c *Cursor[T]) Next() bool {
	if c.done {
		return false
	}
	v, ok := c.next()
	if !ok {
		c.done = true
		var zero T
		c.current = zero
		return false
	}
	c.current = v
	return true
}

func (c *Cursor[T]) Current() T {
	return c.current
}

// Release is idempotent.
func (c *Cursor[T]) Release() {
	c.done = true
	c.stop()
}
