package geos

import (
	"runtime"
	"unsafe"

	"github.com/geoforge/go-geos/internal/backend"
)

// PreparedGeometry is an indexed form of a Geometry optimized for repeated
// predicate evaluation against many other geometries. It keeps a reference to
// its source, which must not be freed before the prepared form.
type PreparedGeometry struct {
	ctx *Context
	src *Geometry
	ptr unsafe.Pointer
}

// Prepared builds the prepared form of g.
func (g *Geometry) Prepared() (*PreparedGeometry, error) {
	const op = "Prepared"
	h, p, err := g.raw()
	if err != nil {
		return nil, g.ctx.constructionErr(op, err)
	}
	ptr, err := backend.PreparedCreate(h, p)
	runtime.KeepAlive(g)
	if err != nil {
		return nil, g.ctx.constructionErr(op, err)
	}
	pg := &PreparedGeometry{ctx: g.ctx, src: g, ptr: ptr}
	runtime.SetFinalizer(pg, (*PreparedGeometry).Free)
	return pg, nil
}

// Free releases the prepared form. Idempotent; the source geometry is not
// affected.
func (pg *PreparedGeometry) Free() {
	if pg == nil || pg.ptr == nil {
		return
	}
	if !pg.ctx.isClosed() {
		backend.PreparedDestroy(pg.ctx.ptr, pg.ptr)
	}
	pg.ptr = nil
	pg.src = nil
	runtime.SetFinalizer(pg, nil)
}

func (pg *PreparedGeometry) pred(op string, other *Geometry, fn func(ctx, p, g unsafe.Pointer) (bool, error)) (bool, error) {
	if pg == nil || pg.ptr == nil {
		return false, &Error{Op: op, Err: ErrClosed}
	}
	h, err := pg.ctx.raw()
	if err != nil {
		return false, pg.ctx.operationErr(op, err)
	}
	if other == nil || other.ptr == nil {
		return false, pg.ctx.operationErr(op, ErrClosed)
	}
	v, err := fn(h, pg.ptr, other.ptr)
	runtime.KeepAlive(pg)
	runtime.KeepAlive(other)
	if err != nil {
		return false, pg.ctx.operationErr(op, err)
	}
	return v, nil
}

// Intersects reports whether the source geometry shares a point with other.
func (pg *PreparedGeometry) Intersects(other *Geometry) (bool, error) {
	return pg.pred("PreparedGeometry.Intersects", other, backend.PreparedIntersects)
}

// Contains reports whether other lies inside the source geometry.
func (pg *PreparedGeometry) Contains(other *Geometry) (bool, error) {
	return pg.pred("PreparedGeometry.Contains", other, backend.PreparedContains)
}

// ContainsProperly reports containment without boundary contact.
func (pg *PreparedGeometry) ContainsProperly(other *Geometry) (bool, error) {
	return pg.pred("PreparedGeometry.ContainsProperly", other, backend.PreparedContainsProperly)
}

// Covers reports whether every point of other lies in the source geometry.
func (pg *PreparedGeometry) Covers(other *Geometry) (bool, error) {
	return pg.pred("PreparedGeometry.Covers", other, backend.PreparedCovers)
}

// CoveredBy reports whether every point of the source geometry lies in other.
func (pg *PreparedGeometry) CoveredBy(other *Geometry) (bool, error) {
	return pg.pred("PreparedGeometry.CoveredBy", other, backend.PreparedCoveredBy)
}

// Disjoint reports whether the geometries share no point.
func (pg *PreparedGeometry) Disjoint(other *Geometry) (bool, error) {
	return pg.pred("PreparedGeometry.Disjoint", other, backend.PreparedDisjoint)
}

// Within reports whether the source geometry lies inside other.
func (pg *PreparedGeometry) Within(other *Geometry) (bool, error) {
	return pg.pred("PreparedGeometry.Within", other, backend.PreparedWithin)
}

// Touches reports boundary-only contact.
func (pg *PreparedGeometry) Touches(other *Geometry) (bool, error) {
	return pg.pred("PreparedGeometry.Touches", other, backend.PreparedTouches)
}

// Crosses reports whether the geometries cross.
func (pg *PreparedGeometry) Crosses(other *Geometry) (bool, error) {
	return pg.pred("PreparedGeometry.Crosses", other, backend.PreparedCrosses)
}

// Overlaps reports whether the geometries overlap.
func (pg *PreparedGeometry) Overlaps(other *Geometry) (bool, error) {
	return pg.pred("PreparedGeometry.Overlaps", other, backend.PreparedOverlaps)
}
