package geos

import (
	"runtime"
	"unsafe"

	"github.com/geoforge/go-geos/internal/backend"
)

// ByteOrder selects the endianness of WKB output.
type ByteOrder int

const (
	BigEndian    ByteOrder = backend.ByteOrderBigEndian
	LittleEndian ByteOrder = backend.ByteOrderLittleEndian
)

// WKBReader parses Well-Known Binary (including the EWKB SRID extension) into
// geometries.
type WKBReader struct {
	ctx *Context
	ptr unsafe.Pointer
}

// NewWKBReader creates a WKB parser on the given context.
func NewWKBReader(ctx *Context) (*WKBReader, error) {
	const op = "NewWKBReader"
	h, err := ctx.raw()
	if err != nil {
		return nil, ctx.constructionErr(op, err)
	}
	ptr, err := backend.WKBReaderCreate(h)
	if err != nil {
		return nil, ctx.constructionErr(op, err)
	}
	r := &WKBReader{ctx: ctx, ptr: ptr}
	runtime.SetFinalizer(r, (*WKBReader).Close)
	return r, nil
}

// Read parses one WKB buffer into a new owned geometry.
func (r *WKBReader) Read(wkb []byte) (*Geometry, error) {
	const op = "WKBReader.Read"
	if r == nil || r.ptr == nil {
		return nil, &Error{Op: op, Err: ErrClosed}
	}
	h, err := r.ctx.raw()
	if err != nil {
		return nil, r.ctx.operationErr(op, err)
	}
	ptr, err := backend.WKBReaderRead(h, r.ptr, wkb)
	runtime.KeepAlive(r)
	if err != nil {
		return nil, r.ctx.operationErr(op, err)
	}
	return newGeometry(r.ctx, op, ptr, nil)
}

// ReadHex parses one hex-encoded WKB string into a new owned geometry.
func (r *WKBReader) ReadHex(hex string) (*Geometry, error) {
	const op = "WKBReader.ReadHex"
	if r == nil || r.ptr == nil {
		return nil, &Error{Op: op, Err: ErrClosed}
	}
	h, err := r.ctx.raw()
	if err != nil {
		return nil, r.ctx.operationErr(op, err)
	}
	ptr, err := backend.WKBReaderReadHex(h, r.ptr, hex)
	runtime.KeepAlive(r)
	if err != nil {
		return nil, r.ctx.operationErr(op, err)
	}
	return newGeometry(r.ctx, op, ptr, nil)
}

// Close releases the native reader. Idempotent.
func (r *WKBReader) Close() {
	if r == nil || r.ptr == nil {
		return
	}
	if !r.ctx.isClosed() {
		backend.WKBReaderDestroy(r.ctx.ptr, r.ptr)
	}
	r.ptr = nil
	runtime.SetFinalizer(r, nil)
}

// WKBWriter renders geometries as Well-Known Binary.
type WKBWriter struct {
	ctx *Context
	ptr unsafe.Pointer
}

// NewWKBWriter creates a WKB writer on the given context.
func NewWKBWriter(ctx *Context) (*WKBWriter, error) {
	const op = "NewWKBWriter"
	h, err := ctx.raw()
	if err != nil {
		return nil, ctx.constructionErr(op, err)
	}
	ptr, err := backend.WKBWriterCreate(h)
	if err != nil {
		return nil, ctx.constructionErr(op, err)
	}
	w := &WKBWriter{ctx: ctx, ptr: ptr}
	runtime.SetFinalizer(w, (*WKBWriter).Close)
	return w, nil
}

// Write renders the geometry as WKB, copying the native buffer into an owned
// slice.
func (w *WKBWriter) Write(g *Geometry) ([]byte, error) {
	const op = "WKBWriter.Write"
	if w == nil || w.ptr == nil {
		return nil, &Error{Op: op, Err: ErrClosed}
	}
	h, p, err := g.raw()
	if err != nil {
		return nil, w.ctx.operationErr(op, err)
	}
	buf, err := backend.WKBWriterWrite(h, w.ptr, p)
	runtime.KeepAlive(w)
	runtime.KeepAlive(g)
	if err != nil {
		return nil, w.ctx.operationErr(op, err)
	}
	return buf, nil
}

// WriteHex renders the geometry as hex-encoded WKB.
func (w *WKBWriter) WriteHex(g *Geometry) (string, error) {
	const op = "WKBWriter.WriteHex"
	if w == nil || w.ptr == nil {
		return "", &Error{Op: op, Err: ErrClosed}
	}
	h, p, err := g.raw()
	if err != nil {
		return "", w.ctx.operationErr(op, err)
	}
	s, err := backend.WKBWriterWriteHex(h, w.ptr, p)
	runtime.KeepAlive(w)
	runtime.KeepAlive(g)
	if err != nil {
		return "", w.ctx.operationErr(op, err)
	}
	return s, nil
}

// SetByteOrder selects big- or little-endian output.
func (w *WKBWriter) SetByteOrder(order ByteOrder) error {
	const op = "WKBWriter.SetByteOrder"
	if w == nil || w.ptr == nil {
		return &Error{Op: op, Err: ErrClosed}
	}
	h, err := w.ctx.raw()
	if err != nil {
		return w.ctx.operationErr(op, err)
	}
	backend.WKBWriterSetByteOrder(h, w.ptr, int(order))
	runtime.KeepAlive(w)
	return nil
}

// SetIncludeSRID toggles EWKB output carrying the geometry's SRID.
func (w *WKBWriter) SetIncludeSRID(include bool) error {
	const op = "WKBWriter.SetIncludeSRID"
	if w == nil || w.ptr == nil {
		return &Error{Op: op, Err: ErrClosed}
	}
	h, err := w.ctx.raw()
	if err != nil {
		return w.ctx.operationErr(op, err)
	}
	backend.WKBWriterSetIncludeSRID(h, w.ptr, include)
	runtime.KeepAlive(w)
	return nil
}

// Close releases the native writer. Idempotent.
func (w *WKBWriter) Close() {
	if w == nil || w.ptr == nil {
		return
	}
	if !w.ctx.isClosed() {
		backend.WKBWriterDestroy(w.ctx.ptr, w.ptr)
	}
	w.ptr = nil
	runtime.SetFinalizer(w, nil)
}

// ToWKB renders the geometry with a throwaway writer.
func (g *Geometry) ToWKB() ([]byte, error) {
	if g == nil || g.ptr == nil {
		return nil, &Error{Op: "ToWKB", Err: ErrClosed}
	}
	w, err := NewWKBWriter(g.ctx)
	if err != nil {
		return nil, err
	}
	defer w.Close()
	return w.Write(g)
}
