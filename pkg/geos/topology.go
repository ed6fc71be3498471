package geos

import (
	"runtime"
	"unsafe"

	"github.com/geoforge/go-geos/internal/backend"
)

// DefaultQuadSegs is the number of segments per quarter circle used by Buffer
// when no explicit value is given, matching the GEOS default.
const DefaultQuadSegs = 8

// unaryTopo runs an operation producing a new owned geometry from g alone.
func (g *Geometry) unaryTopo(op string, fn func(ctx, p unsafe.Pointer) (unsafe.Pointer, error)) (*Geometry, error) {
	h, p, err := g.raw()
	if err != nil {
		return nil, g.ctx.operationErr(op, err)
	}
	ptr, err := fn(h, p)
	defer runtime.KeepAlive(g)
	if err != nil {
		return nil, g.ctx.operationErr(op, err)
	}
	return newGeometry(g.ctx, op, ptr, nil)
}

// binaryTopo runs an operation producing a new owned geometry from g and
// other.
func (g *Geometry) binaryTopo(op string, other *Geometry, fn func(ctx, a, b unsafe.Pointer) (unsafe.Pointer, error)) (*Geometry, error) {
	h, p, err := g.raw()
	if err != nil {
		return nil, g.ctx.operationErr(op, err)
	}
	if other == nil || other.ptr == nil {
		return nil, g.ctx.operationErr(op, ErrClosed)
	}
	ptr, err := fn(h, p, other.ptr)
	runtime.KeepAlive(g)
	runtime.KeepAlive(other)
	if err != nil {
		return nil, g.ctx.operationErr(op, err)
	}
	return newGeometry(g.ctx, op, ptr, nil)
}

// Intersection returns the point set common to both geometries.
func (g *Geometry) Intersection(other *Geometry) (*Geometry, error) {
	return g.binaryTopo("Intersection", other, backend.GeomIntersection)
}

// Union returns the point set of both geometries combined.
func (g *Geometry) Union(other *Geometry) (*Geometry, error) {
	return g.binaryTopo("Union", other, backend.GeomUnion)
}

// UnaryUnion unions all components of the geometry, dissolving internal
// boundaries.
func (g *Geometry) UnaryUnion() (*Geometry, error) {
	return g.unaryTopo("UnaryUnion", backend.GeomUnaryUnion)
}

// Difference returns the points of g not in other.
func (g *Geometry) Difference(other *Geometry) (*Geometry, error) {
	return g.binaryTopo("Difference", other, backend.GeomDifference)
}

// SymDifference returns the points in exactly one of the geometries.
func (g *Geometry) SymDifference(other *Geometry) (*Geometry, error) {
	return g.binaryTopo("SymDifference", other, backend.GeomSymDifference)
}

// Buffer returns the geometry expanded (or shrunk, for negative width) by the
// given distance, approximating curves with quadSegs segments per quarter
// circle.
func (g *Geometry) Buffer(width float64, quadSegs int) (*Geometry, error) {
	return g.unaryTopo("Buffer", func(ctx, p unsafe.Pointer) (unsafe.Pointer, error) {
		return backend.GeomBuffer(ctx, p, width, quadSegs)
	})
}

// ConvexHull returns the smallest convex geometry enclosing g.
func (g *Geometry) ConvexHull() (*Geometry, error) {
	return g.unaryTopo("ConvexHull", backend.GeomConvexHull)
}

// Envelope returns the bounding box of g as a geometry.
func (g *Geometry) Envelope() (*Geometry, error) {
	return g.unaryTopo("Envelope", backend.GeomEnvelope)
}

// Boundary returns the combinatorial boundary of g.
func (g *Geometry) Boundary() (*Geometry, error) {
	return g.unaryTopo("Boundary", backend.GeomBoundary)
}

// Centroid returns the geometric center of g.
func (g *Geometry) Centroid() (*Geometry, error) {
	return g.unaryTopo("Centroid", backend.GeomCentroid)
}

// PointOnSurface returns a point guaranteed to lie on the surface of g.
func (g *Geometry) PointOnSurface() (*Geometry, error) {
	return g.unaryTopo("PointOnSurface", backend.GeomPointOnSurface)
}

// Simplify returns a simplified copy using Douglas-Peucker; the result may be
// invalid or change topology.
func (g *Geometry) Simplify(tolerance float64) (*Geometry, error) {
	return g.unaryTopo("Simplify", func(ctx, p unsafe.Pointer) (unsafe.Pointer, error) {
		return backend.GeomSimplify(ctx, p, tolerance)
	})
}

// TopologyPreserveSimplify simplifies without collapsing or inverting
// components.
func (g *Geometry) TopologyPreserveSimplify(tolerance float64) (*Geometry, error) {
	return g.unaryTopo("TopologyPreserveSimplify", func(ctx, p unsafe.Pointer) (unsafe.Pointer, error) {
		return backend.GeomTopologyPreserveSimplify(ctx, p, tolerance)
	})
}

// MakeValid repairs an invalid geometry into a valid representation of the
// same point set.
func (g *Geometry) MakeValid() (*Geometry, error) {
	return g.unaryTopo("MakeValid", backend.GeomMakeValid)
}

// Reverse returns a copy with the coordinate order of each component
// reversed.
func (g *Geometry) Reverse() (*Geometry, error) {
	return g.unaryTopo("Reverse", backend.GeomReverse)
}

// scalarMeasure evaluates a unary measure through the backend.
func (g *Geometry) scalarMeasure(op string, fn func(ctx, p unsafe.Pointer) (float64, error)) (float64, error) {
	h, p, err := g.raw()
	if err != nil {
		return 0, g.ctx.operationErr(op, err)
	}
	v, err := fn(h, p)
	runtime.KeepAlive(g)
	if err != nil {
		return 0, g.ctx.operationErr(op, err)
	}
	return v, nil
}

// binaryMeasure evaluates a measure between g and other.
func (g *Geometry) binaryMeasure(op string, other *Geometry, fn func(ctx, a, b unsafe.Pointer) (float64, error)) (float64, error) {
	h, p, err := g.raw()
	if err != nil {
		return 0, g.ctx.operationErr(op, err)
	}
	if other == nil || other.ptr == nil {
		return 0, g.ctx.operationErr(op, ErrClosed)
	}
	v, err := fn(h, p, other.ptr)
	runtime.KeepAlive(g)
	runtime.KeepAlive(other)
	if err != nil {
		return 0, g.ctx.operationErr(op, err)
	}
	return v, nil
}

// Area returns the areal measure of g.
func (g *Geometry) Area() (float64, error) {
	return g.scalarMeasure("Area", backend.GeomArea)
}

// Length returns the linear measure of g.
func (g *Geometry) Length() (float64, error) {
	return g.scalarMeasure("Length", backend.GeomLength)
}

// Distance returns the minimum cartesian distance between the geometries.
func (g *Geometry) Distance(other *Geometry) (float64, error) {
	return g.binaryMeasure("Distance", other, backend.GeomDistance)
}

// HausdorffDistance returns the discrete Hausdorff distance between the
// geometries.
func (g *Geometry) HausdorffDistance(other *Geometry) (float64, error) {
	return g.binaryMeasure("HausdorffDistance", other, backend.GeomHausdorffDistance)
}
