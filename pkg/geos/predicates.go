package geos

import (
	"runtime"
	"unsafe"

	"github.com/geoforge/go-geos/internal/backend"
)

// binaryPred evaluates a predicate against other on the shared context. Both
// geometries must live on the same context; GEOS cannot compare handles from
// different contexts.
func (g *Geometry) binaryPred(op string, other *Geometry, fn func(ctx, a, b unsafe.Pointer) (bool, error)) (bool, error) {
	h, p, err := g.raw()
	if err != nil {
		return false, g.ctx.operationErr(op, err)
	}
	if other == nil || other.ptr == nil {
		return false, g.ctx.operationErr(op, ErrClosed)
	}
	v, err := fn(h, p, other.ptr)
	runtime.KeepAlive(g)
	runtime.KeepAlive(other)
	if err != nil {
		return false, g.ctx.operationErr(op, err)
	}
	return v, nil
}

// Disjoint reports whether the two geometries have no point in common.
func (g *Geometry) Disjoint(other *Geometry) (bool, error) {
	return g.binaryPred("Disjoint", other, backend.GeomDisjoint)
}

// Touches reports whether the geometries have boundary points in common but
// no interior points.
func (g *Geometry) Touches(other *Geometry) (bool, error) {
	return g.binaryPred("Touches", other, backend.GeomTouches)
}

// Intersects reports whether the geometries share at least one point.
func (g *Geometry) Intersects(other *Geometry) (bool, error) {
	return g.binaryPred("Intersects", other, backend.GeomIntersects)
}

// Crosses reports whether the geometries cross.
func (g *Geometry) Crosses(other *Geometry) (bool, error) {
	return g.binaryPred("Crosses", other, backend.GeomCrosses)
}

// Within reports whether g lies completely inside other.
func (g *Geometry) Within(other *Geometry) (bool, error) {
	return g.binaryPred("Within", other, backend.GeomWithin)
}

// Contains reports whether other lies completely inside g.
func (g *Geometry) Contains(other *Geometry) (bool, error) {
	return g.binaryPred("Contains", other, backend.GeomContains)
}

// Overlaps reports whether the geometries overlap.
func (g *Geometry) Overlaps(other *Geometry) (bool, error) {
	return g.binaryPred("Overlaps", other, backend.GeomOverlaps)
}

// Covers reports whether every point of other lies in g.
func (g *Geometry) Covers(other *Geometry) (bool, error) {
	return g.binaryPred("Covers", other, backend.GeomCovers)
}

// CoveredBy reports whether every point of g lies in other.
func (g *Geometry) CoveredBy(other *Geometry) (bool, error) {
	return g.binaryPred("CoveredBy", other, backend.GeomCoveredBy)
}

// EqualsTopologically reports whether the geometries cover exactly the same
// point set.
func (g *Geometry) EqualsTopologically(other *Geometry) (bool, error) {
	return g.binaryPred("EqualsTopologically", other, backend.GeomEquals)
}

// EqualsExact reports structural equality within the given coordinate
// tolerance.
func (g *Geometry) EqualsExact(other *Geometry, tolerance float64) (bool, error) {
	return g.binaryPred("EqualsExact", other, func(ctx, a, b unsafe.Pointer) (bool, error) {
		return backend.GeomEqualsExact(ctx, a, b, tolerance)
	})
}

// Relate computes the DE-9IM intersection matrix between the geometries.
func (g *Geometry) Relate(other *Geometry) (string, error) {
	const op = "Relate"
	h, p, err := g.raw()
	if err != nil {
		return "", g.ctx.operationErr(op, err)
	}
	if other == nil || other.ptr == nil {
		return "", g.ctx.operationErr(op, ErrClosed)
	}
	m, err := backend.GeomRelate(h, p, other.ptr)
	runtime.KeepAlive(g)
	runtime.KeepAlive(other)
	if err != nil {
		return "", g.ctx.operationErr(op, err)
	}
	return m, nil
}

// RelatePattern reports whether the DE-9IM matrix between the geometries
// matches pattern, e.g. "T*F**F***".
func (g *Geometry) RelatePattern(other *Geometry, pattern string) (bool, error) {
	return g.binaryPred("RelatePattern", other, func(ctx, a, b unsafe.Pointer) (bool, error) {
		return backend.GeomRelatePattern(ctx, a, b, pattern)
	})
}
