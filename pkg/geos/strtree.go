package geos

import (
	"runtime"
	"sort"
	"unsafe"

	"github.com/geoforge/go-geos/internal/backend"
)

// STRtree is a query-only spatial index over geometry envelopes, built by the
// native library. Items are identified by the integer index passed to Insert.
// The tree keeps references to the inserted geometries; they must not be
// freed while the tree is alive.
type STRtree struct {
	ctx   *Context
	ptr   unsafe.Pointer
	geoms []*Geometry
}

// NewSTRtree creates an STRtree with the given node capacity (10 is a
// reasonable default).
func NewSTRtree(ctx *Context, nodeCapacity int) (*STRtree, error) {
	const op = "NewSTRtree"
	h, err := ctx.raw()
	if err != nil {
		return nil, ctx.constructionErr(op, err)
	}
	ptr, err := backend.STRtreeCreate(h, nodeCapacity)
	if err != nil {
		return nil, ctx.constructionErr(op, err)
	}
	t := &STRtree{ctx: ctx, ptr: ptr}
	runtime.SetFinalizer(t, (*STRtree).Free)
	return t, nil
}

// Insert adds g to the index and returns its item index. g must live on the
// tree's context. The tree holds a reference to g until Free.
func (t *STRtree) Insert(g *Geometry) (int, error) {
	const op = "STRtree.Insert"
	if t == nil || t.ptr == nil {
		return 0, &Error{Op: op, Err: ErrClosed}
	}
	if g == nil || g.ptr == nil {
		return 0, t.ctx.operationErr(op, ErrClosed)
	}
	if g.ctx != t.ctx {
		return 0, t.ctx.operationErr(op, errContextMismatch)
	}
	h, err := t.ctx.raw()
	if err != nil {
		return 0, t.ctx.operationErr(op, err)
	}
	idx := len(t.geoms)
	t.geoms = append(t.geoms, g)
	// Items are stored 1-based so a null item pointer never occurs.
	backend.STRtreeInsert(h, t.ptr, g.ptr, uintptr(idx+1))
	runtime.KeepAlive(g)
	return idx, nil
}

// Query returns the indexes of items whose envelopes intersect the envelope
// of g, in insertion order.
func (t *STRtree) Query(g *Geometry) ([]int, error) {
	const op = "STRtree.Query"
	if t == nil || t.ptr == nil {
		return nil, &Error{Op: op, Err: ErrClosed}
	}
	if g == nil || g.ptr == nil {
		return nil, t.ctx.operationErr(op, ErrClosed)
	}
	if g.ctx != t.ctx {
		return nil, t.ctx.operationErr(op, errContextMismatch)
	}
	h, err := t.ctx.raw()
	if err != nil {
		return nil, t.ctx.operationErr(op, err)
	}
	hits := backend.STRtreeQuery(h, t.ptr, g.ptr)
	runtime.KeepAlive(t)
	runtime.KeepAlive(g)
	out := make([]int, 0, len(hits))
	for _, item := range hits {
		out = append(out, int(item)-1)
	}
	// Native traversal order is unspecified.
	sort.Ints(out)
	return out, nil
}

// Free releases the native tree and drops the geometry references.
// Idempotent.
func (t *STRtree) Free() {
	if t == nil || t.ptr == nil {
		return
	}
	if !t.ctx.isClosed() {
		backend.STRtreeDestroy(t.ctx.ptr, t.ptr)
	}
	t.ptr = nil
	t.geoms = nil
	runtime.SetFinalizer(t, nil)
}
