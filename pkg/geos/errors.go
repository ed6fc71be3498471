package geos

import (
	"fmt"

	"github.com/cockroachdb/errors"

	"github.com/geoforge/go-geos/internal/backend"
)

var (
	// ErrNotBuilt reports that the native GEOS bindings are not linked into
	// this binary (cgo disabled or unsupported platform).
	ErrNotBuilt = backend.ErrNotBuilt

	// ErrClosed reports use of a wrapper whose native handle was already
	// released, or of a context that was closed.
	ErrClosed = errors.New("geos: native handle already released")

	// ErrConstruction marks failures of native factory calls: the constructor
	// returned a null pointer.
	ErrConstruction = errors.New("geos: construction failed")

	// ErrOperation marks failures of native method calls: the call returned a
	// null pointer or its exception sentinel.
	ErrOperation = errors.New("geos: operation failed")
)

// errContextMismatch reports a geometry passed to a container created on a
// different context.
var errContextMismatch = errors.Wrap(ErrOperation, "geometry belongs to a different context")

// Error wraps a failure with the operation that produced it.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("geos.%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// translateErr turns a backend failure into the public typed error, attaching
// the last message recorded by the context's native error handler.
func (c *Context) translateErr(op string, kind, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, backend.ErrException) {
		err = kind
		if msg := backend.ContextLastError(c.state); msg != "" {
			err = errors.Wrap(kind, msg)
		}
	}
	return &Error{Op: op, Err: err}
}

func (c *Context) constructionErr(op string, err error) error {
	return c.translateErr(op, ErrConstruction, err)
}

func (c *Context) operationErr(op string, err error) error {
	return c.translateErr(op, ErrOperation, err)
}
