package geos

import (
	"context"
	"runtime"
	"sync"
	"unsafe"

	"github.com/geoforge/go-geos/internal/backend"
	"github.com/geoforge/go-geos/pkg/geos/logging"
)

// Context wraps a reentrant GEOS context handle. It owns the registration of
// the native error and notice handlers; every wrapper created from it shares
// it and records native failure messages through it.
//
// A Context may be shared by any number of wrappers, but it and the wrappers
// built on it must not be used from multiple goroutines at the same time.
// The captured message state itself is mutex-guarded.
//
// The Context must outlive every wrapper created from it. Wrappers hold a
// reference, so the garbage collector enforces this for abandoned values;
// code calling Close explicitly must free dependent wrappers first.
type Context struct {
	mu     sync.Mutex
	ptr    unsafe.Pointer
	state  uintptr
	logger logging.Logger
	notice func(string)
	closed bool
}

// ContextOption configures a Context at construction time.
type ContextOption func(*Context)

// WithLogger routes native notice messages to l instead of the default
// slog-backed logger.
func WithLogger(l logging.Logger) ContextOption {
	return func(c *Context) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithNoticeHandler installs fn as the receiver for native notice messages.
// Setting a handler is a user-visible side effect shared by every wrapper on
// the context.
func WithNoticeHandler(fn func(string)) ContextOption {
	return func(c *Context) {
		c.notice = fn
	}
}

// NewContext initializes a native GEOS context with error and notice handlers
// attached. It fails with ErrNotBuilt when the bindings are not linked in.
func NewContext(opts ...ContextOption) (*Context, error) {
	ptr, state, err := backend.ContextCreate()
	if err != nil {
		return nil, &Error{Op: "NewContext", Err: err}
	}

	c := &Context{
		ptr:    ptr,
		state:  state,
		logger: logging.New(nil),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.notice == nil {
		logger := c.logger
		c.notice = func(msg string) {
			logger.Debug(context.Background(), "geos notice", "message", msg)
		}
	}
	backend.ContextSetNoticeFunc(state, c.notice)

	runtime.SetFinalizer(c, (*Context).finalize)
	return c, nil
}

// SetNoticeHandler replaces the notice receiver for all wrappers sharing this
// context. A nil fn silences notices.
func (c *Context) SetNoticeHandler(fn func(string)) {
	c.mu.Lock()
	c.notice = fn
	c.mu.Unlock()
	backend.ContextSetNoticeFunc(c.state, fn)
}

// Close releases the native context. It is idempotent; wrappers still holding
// the context report ErrClosed afterwards instead of touching freed memory.
func (c *Context) Close() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil
	}
	backend.ContextDestroy(c.ptr, c.state)
	c.ptr = nil
	c.closed = true
	runtime.SetFinalizer(c, nil)
	return nil
}

func (c *Context) finalize() {
	_ = c.Close()
}

// raw returns the native context handle, or ErrClosed after Close.
func (c *Context) raw() (unsafe.Pointer, error) {
	if c == nil {
		return nil, ErrClosed
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil, ErrClosed
	}
	return c.ptr, nil
}

// isClosed reports whether Close has run; wrapper destructors use it to avoid
// destroying handles on a finished context.
func (c *Context) isClosed() bool {
	if c == nil {
		return true
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}
