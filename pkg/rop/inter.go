package rop

import (
	"io"

	"go.uber.org/zap"
)

// Resource is anything Using can scope: it is released exactly once when
// the scope is left.
type Resource interface {
	// Release frees the resource
	Release()
}

// ReleaseFunc adapts a plain function to Resource.
type ReleaseFunc func()

func (f ReleaseFunc) Release() {
	if f != nil {
		f()
	}
}

// Closer adapts an io.Closer. Close errors cannot travel through a workflow
// so they are logged on the global zap logger.
func Closer(c io.Closer) Resource {
	return ReleaseFunc(func() {
		if err := c.Close(); err != nil {
			zap.L().Warn("resource release failed", zap.Error(err))
		}
	})
}
