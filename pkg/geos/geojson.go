package geos

import (
	"runtime"
	"unsafe"

	"github.com/geoforge/go-geos/internal/backend"
)

// GeoJSONReader parses GeoJSON documents into geometries. A FeatureCollection
// input becomes a GeometryCollection; feature properties are not preserved.
type GeoJSONReader struct {
	ctx *Context
	ptr unsafe.Pointer
}

// NewGeoJSONReader creates a GeoJSON parser on the given context.
func NewGeoJSONReader(ctx *Context) (*GeoJSONReader, error) {
	const op = "NewGeoJSONReader"
	h, err := ctx.raw()
	if err != nil {
		return nil, ctx.constructionErr(op, err)
	}
	ptr, err := backend.GeoJSONReaderCreate(h)
	if err != nil {
		return nil, ctx.constructionErr(op, err)
	}
	r := &GeoJSONReader{ctx: ctx, ptr: ptr}
	runtime.SetFinalizer(r, (*GeoJSONReader).Close)
	return r, nil
}

// Read parses one GeoJSON document into a new owned geometry.
func (r *GeoJSONReader) Read(geojson string) (*Geometry, error) {
	const op = "GeoJSONReader.Read"
	if r == nil || r.ptr == nil {
		return nil, &Error{Op: op, Err: ErrClosed}
	}
	h, err := r.ctx.raw()
	if err != nil {
		return nil, r.ctx.operationErr(op, err)
	}
	ptr, err := backend.GeoJSONReaderRead(h, r.ptr, geojson)
	runtime.KeepAlive(r)
	if err != nil {
		return nil, r.ctx.operationErr(op, err)
	}
	return newGeometry(r.ctx, op, ptr, nil)
}

// Close releases the native reader. Idempotent.
func (r *GeoJSONReader) Close() {
	if r == nil || r.ptr == nil {
		return
	}
	if !r.ctx.isClosed() {
		backend.GeoJSONReaderDestroy(r.ctx.ptr, r.ptr)
	}
	r.ptr = nil
	runtime.SetFinalizer(r, nil)
}

// GeoJSONWriter renders geometries as GeoJSON.
type GeoJSONWriter struct {
	ctx *Context
	ptr unsafe.Pointer
}

// NewGeoJSONWriter creates a GeoJSON writer on the given context.
func NewGeoJSONWriter(ctx *Context) (*GeoJSONWriter, error) {
	const op = "NewGeoJSONWriter"
	h, err := ctx.raw()
	if err != nil {
		return nil, ctx.constructionErr(op, err)
	}
	ptr, err := backend.GeoJSONWriterCreate(h)
	if err != nil {
		return nil, ctx.constructionErr(op, err)
	}
	w := &GeoJSONWriter{ctx: ctx, ptr: ptr}
	runtime.SetFinalizer(w, (*GeoJSONWriter).Close)
	return w, nil
}

// Write renders the geometry as GeoJSON. An indent of zero or less produces
// compact single-line output; a positive indent pretty-prints with that many
// spaces per level.
func (w *GeoJSONWriter) Write(g *Geometry, indent int) (string, error) {
	const op = "GeoJSONWriter.Write"
	if w == nil || w.ptr == nil {
		return "", &Error{Op: op, Err: ErrClosed}
	}
	h, p, err := g.raw()
	if err != nil {
		return "", w.ctx.operationErr(op, err)
	}
	if indent < 0 {
		indent = -1
	}
	s, err := backend.GeoJSONWriterWrite(h, w.ptr, p, indent)
	runtime.KeepAlive(w)
	runtime.KeepAlive(g)
	if err != nil {
		return "", w.ctx.operationErr(op, err)
	}
	return s, nil
}

// Close releases the native writer. Idempotent.
func (w *GeoJSONWriter) Close() {
	if w == nil || w.ptr == nil {
		return
	}
	if !w.ctx.isClosed() {
		backend.GeoJSONWriterDestroy(w.ctx.ptr, w.ptr)
	}
	w.ptr = nil
	runtime.SetFinalizer(w, nil)
}

// ToGeoJSON renders the geometry compactly with a throwaway writer.
func (g *Geometry) ToGeoJSON() (string, error) {
	if g == nil || g.ptr == nil {
		return "", &Error{Op: "ToGeoJSON", Err: ErrClosed}
	}
	w, err := NewGeoJSONWriter(g.ctx)
	if err != nil {
		return "", err
	}
	defer w.Close()
	return w.Write(g, -1)
}
