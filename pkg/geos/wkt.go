package geos

import (
	"runtime"
	"unsafe"

	"github.com/geoforge/go-geos/internal/backend"
)

// WKTReader parses Well-Known Text into geometries. One reader may parse any
// number of inputs; it owns a single native handle released by Close or the
// finalizer.
type WKTReader struct {
	ctx *Context
	ptr unsafe.Pointer
}

// NewWKTReader creates a WKT parser on the given context.
func NewWKTReader(ctx *Context) (*WKTReader, error) {
	const op = "NewWKTReader"
	h, err := ctx.raw()
	if err != nil {
		return nil, ctx.constructionErr(op, err)
	}
	ptr, err := backend.WKTReaderCreate(h)
	if err != nil {
		return nil, ctx.constructionErr(op, err)
	}
	r := &WKTReader{ctx: ctx, ptr: ptr}
	runtime.SetFinalizer(r, (*WKTReader).Close)
	return r, nil
}

// Read parses one WKT string into a new owned geometry.
func (r *WKTReader) Read(wkt string) (*Geometry, error) {
	const op = "WKTReader.Read"
	if r == nil || r.ptr == nil {
		return nil, &Error{Op: op, Err: ErrClosed}
	}
	h, err := r.ctx.raw()
	if err != nil {
		return nil, r.ctx.operationErr(op, err)
	}
	ptr, err := backend.WKTReaderRead(h, r.ptr, wkt)
	runtime.KeepAlive(r)
	if err != nil {
		return nil, r.ctx.operationErr(op, err)
	}
	return newGeometry(r.ctx, op, ptr, nil)
}

// Close releases the native reader. Idempotent.
func (r *WKTReader) Close() {
	if r == nil || r.ptr == nil {
		return
	}
	if !r.ctx.isClosed() {
		backend.WKTReaderDestroy(r.ctx.ptr, r.ptr)
	}
	r.ptr = nil
	runtime.SetFinalizer(r, nil)
}

// WKTWriter renders geometries as Well-Known Text. Output is trimmed by
// default; use SetTrim(false) for the legacy fixed-decimal form.
type WKTWriter struct {
	ctx *Context
	ptr unsafe.Pointer
}

// NewWKTWriter creates a WKT writer on the given context with trimming
// enabled.
func NewWKTWriter(ctx *Context) (*WKTWriter, error) {
	const op = "NewWKTWriter"
	h, err := ctx.raw()
	if err != nil {
		return nil, ctx.constructionErr(op, err)
	}
	ptr, err := backend.WKTWriterCreate(h)
	if err != nil {
		return nil, ctx.constructionErr(op, err)
	}
	backend.WKTWriterSetTrim(h, ptr, true)
	w := &WKTWriter{ctx: ctx, ptr: ptr}
	runtime.SetFinalizer(w, (*WKTWriter).Close)
	return w, nil
}

// Write renders the geometry as WKT, returning an owned string.
func (w *WKTWriter) Write(g *Geometry) (string, error) {
	const op = "WKTWriter.Write"
	if w == nil || w.ptr == nil {
		return "", &Error{Op: op, Err: ErrClosed}
	}
	h, p, err := g.raw()
	if err != nil {
		return "", w.ctx.operationErr(op, err)
	}
	s, err := backend.WKTWriterWrite(h, w.ptr, p)
	runtime.KeepAlive(w)
	runtime.KeepAlive(g)
	if err != nil {
		return "", w.ctx.operationErr(op, err)
	}
	return s, nil
}

// SetTrim toggles removal of trailing zeros from coordinate output.
func (w *WKTWriter) SetTrim(trim bool) error {
	const op = "WKTWriter.SetTrim"
	if w == nil || w.ptr == nil {
		return &Error{Op: op, Err: ErrClosed}
	}
	h, err := w.ctx.raw()
	if err != nil {
		return w.ctx.operationErr(op, err)
	}
	backend.WKTWriterSetTrim(h, w.ptr, trim)
	runtime.KeepAlive(w)
	return nil
}

// SetRoundingPrecision fixes the number of decimal places written, or -1 for
// the full double precision.
func (w *WKTWriter) SetRoundingPrecision(precision int) error {
	const op = "WKTWriter.SetRoundingPrecision"
	if w == nil || w.ptr == nil {
		return &Error{Op: op, Err: ErrClosed}
	}
	h, err := w.ctx.raw()
	if err != nil {
		return w.ctx.operationErr(op, err)
	}
	backend.WKTWriterSetRoundingPrecision(h, w.ptr, precision)
	runtime.KeepAlive(w)
	return nil
}

// SetOutputDimension caps the coordinate dimension written, 2 or 3.
func (w *WKTWriter) SetOutputDimension(dim int) error {
	const op = "WKTWriter.SetOutputDimension"
	if w == nil || w.ptr == nil {
		return &Error{Op: op, Err: ErrClosed}
	}
	h, err := w.ctx.raw()
	if err != nil {
		return w.ctx.operationErr(op, err)
	}
	backend.WKTWriterSetOutputDimension(h, w.ptr, dim)
	runtime.KeepAlive(w)
	return nil
}

// Close releases the native writer. Idempotent.
func (w *WKTWriter) Close() {
	if w == nil || w.ptr == nil {
		return
	}
	if !w.ctx.isClosed() {
		backend.WKTWriterDestroy(w.ctx.ptr, w.ptr)
	}
	w.ptr = nil
	runtime.SetFinalizer(w, nil)
}

// ToWKT renders the geometry with a throwaway trimming writer.
func (g *Geometry) ToWKT() (string, error) {
	if g == nil || g.ptr == nil {
		return "", &Error{Op: "ToWKT", Err: ErrClosed}
	}
	w, err := NewWKTWriter(g.ctx)
	if err != nil {
		return "", err
	}
	defer w.Close()
	return w.Write(g)
}
