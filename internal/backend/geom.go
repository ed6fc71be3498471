//go:build cgo && !windows

package backend

/*
#cgo LDFLAGS: -lgeos_c
#include <stdlib.h>
#include "geos_c.h"
*/
import "C"

import "unsafe"

// GeomDestroy releases a geometry. Safe to call with a nil pointer.
func GeomDestroy(ctx, g unsafe.Pointer) {
	if g != nil {
		C.GEOSGeom_destroy_r(ctxHandle(ctx), geomPtr(g))
	}
}

// GeomClone returns a deep copy of g.
func GeomClone(ctx, g unsafe.Pointer) (unsafe.Pointer, error) {
	p := C.GEOSGeom_clone_r(ctxHandle(ctx), geomPtr(g))
	if p == nil {
		return nil, ErrException
	}
	return unsafe.Pointer(p), nil
}

// newCoordSeq builds a GEOS coordinate sequence from XY pairs. Returns nil on
// native failure.
func newCoordSeq(h C.GEOSContextHandle_t, coords [][2]float64) *C.GEOSCoordSequence {
	seq := C.GEOSCoordSeq_create_r(h, C.uint(len(coords)), 2)
	if seq == nil {
		return nil
	}
	for i, c := range coords {
		if C.GEOSCoordSeq_setX_r(h, seq, C.uint(i), C.double(c[0])) == 0 ||
			C.GEOSCoordSeq_setY_r(h, seq, C.uint(i), C.double(c[1])) == 0 {
			C.GEOSCoordSeq_destroy_r(h, seq)
			return nil
		}
	}
	return seq
}

// GeomNewPoint creates a point geometry.
func GeomNewPoint(ctx unsafe.Pointer, x, y float64) (unsafe.Pointer, error) {
	h := ctxHandle(ctx)
	seq := newCoordSeq(h, [][2]float64{{x, y}})
	if seq == nil {
		return nil, ErrException
	}
	// Ownership of seq passes to the geometry.
	p := C.GEOSGeom_createPoint_r(h, seq)
	if p == nil {
		return nil, ErrException
	}
	return unsafe.Pointer(p), nil
}

// GeomNewLineString creates a linestring geometry from XY pairs.
func GeomNewLineString(ctx unsafe.Pointer, coords [][2]float64) (unsafe.Pointer, error) {
	h := ctxHandle(ctx)
	seq := newCoordSeq(h, coords)
	if seq == nil {
		return nil, ErrException
	}
	p := C.GEOSGeom_createLineString_r(h, seq)
	if p == nil {
		return nil, ErrException
	}
	return unsafe.Pointer(p), nil
}

// GeomNewLinearRing creates a linear ring from XY pairs. The ring must be
// closed; GEOS reports the failure through the error handler otherwise.
func GeomNewLinearRing(ctx unsafe.Pointer, coords [][2]float64) (unsafe.Pointer, error) {
	h := ctxHandle(ctx)
	seq := newCoordSeq(h, coords)
	if seq == nil {
		return nil, ErrException
	}
	p := C.GEOSGeom_createLinearRing_r(h, seq)
	if p == nil {
		return nil, ErrException
	}
	return unsafe.Pointer(p), nil
}

// GeomNewPolygon assembles a polygon from an exterior ring and optional holes.
// On success ownership of all ring pointers passes to the new polygon.
func GeomNewPolygon(ctx, shell unsafe.Pointer, holes []unsafe.Pointer) (unsafe.Pointer, error) {
	h := ctxHandle(ctx)
	var holesPtr **C.GEOSGeometry
	if len(holes) > 0 {
		cHoles := make([]*C.GEOSGeometry, len(holes))
		for i, hole := range holes {
			cHoles[i] = geomPtr(hole)
		}
		holesPtr = &cHoles[0]
	}
	p := C.GEOSGeom_createPolygon_r(h, geomPtr(shell), holesPtr, C.uint(len(holes)))
	if p == nil {
		return nil, ErrException
	}
	return unsafe.Pointer(p), nil
}

// GeomNewCollection assembles a collection of the given type id. On success
// ownership of all member pointers passes to the collection.
func GeomNewCollection(ctx unsafe.Pointer, typeID int, geoms []unsafe.Pointer) (unsafe.Pointer, error) {
	h := ctxHandle(ctx)
	var geomsPtr **C.GEOSGeometry
	if len(geoms) > 0 {
		cGeoms := make([]*C.GEOSGeometry, len(geoms))
		for i, g := range geoms {
			cGeoms[i] = geomPtr(g)
		}
		geomsPtr = &cGeoms[0]
	}
	p := C.GEOSGeom_createCollection_r(h, C.int(typeID), geomsPtr, C.uint(len(geoms)))
	if p == nil {
		return nil, ErrException
	}
	return unsafe.Pointer(p), nil
}

// GeomType returns the geometry type name, e.g. "Polygon".
func GeomType(ctx, g unsafe.Pointer) (string, error) {
	h := ctxHandle(ctx)
	return copyString(h, C.GEOSGeomType_r(h, geomPtr(g)))
}

// GeomTypeID returns the GEOSGeomTypes id of g.
func GeomTypeID(ctx, g unsafe.Pointer) (int, error) {
	id := C.GEOSGeomTypeId_r(ctxHandle(ctx), geomPtr(g))
	if id < 0 {
		return 0, ErrException
	}
	return int(id), nil
}

// GeomSRID returns the SRID of g; zero means unset.
func GeomSRID(ctx, g unsafe.Pointer) int {
	return int(C.GEOSGetSRID_r(ctxHandle(ctx), geomPtr(g)))
}

// GeomSetSRID stamps g with an SRID.
func GeomSetSRID(ctx, g unsafe.Pointer, srid int) {
	C.GEOSSetSRID_r(ctxHandle(ctx), geomPtr(g), C.int(srid))
}

// GeomNumGeometries returns the number of member geometries of g.
func GeomNumGeometries(ctx, g unsafe.Pointer) (int, error) {
	n := C.GEOSGetNumGeometries_r(ctxHandle(ctx), geomPtr(g))
	if n < 0 {
		return 0, ErrException
	}
	return int(n), nil
}

// GeomGeometryN returns a copy of the n-th member geometry. The native call
// hands back an internal pointer, so the copy keeps the one-owner rule intact.
func GeomGeometryN(ctx, g unsafe.Pointer, n int) (unsafe.Pointer, error) {
	h := ctxHandle(ctx)
	member := C.GEOSGetGeometryN_r(h, geomPtr(g), C.int(n))
	if member == nil {
		return nil, ErrException
	}
	p := C.GEOSGeom_clone_r(h, member)
	if p == nil {
		return nil, ErrException
	}
	return unsafe.Pointer(p), nil
}

// GeomNumCoordinates returns the total coordinate count of g.
func GeomNumCoordinates(ctx, g unsafe.Pointer) (int, error) {
	n := C.GEOSGetNumCoordinates_r(ctxHandle(ctx), geomPtr(g))
	if n < 0 {
		return 0, ErrException
	}
	return int(n), nil
}

// GeomDimension returns the inherent dimension of g (0 points, 1 lines, 2 areas).
func GeomDimension(ctx, g unsafe.Pointer) int {
	return int(C.GEOSGeom_getDimensions_r(ctxHandle(ctx), geomPtr(g)))
}

// GeomCoordinateDimension returns 2 or 3.
func GeomCoordinateDimension(ctx, g unsafe.Pointer) int {
	return int(C.GEOSGeom_getCoordinateDimension_r(ctxHandle(ctx), geomPtr(g)))
}

// GeomBounds returns the envelope of g as xmin, ymin, xmax, ymax.
func GeomBounds(ctx, g unsafe.Pointer) (xmin, ymin, xmax, ymax float64, err error) {
	h := ctxHandle(ctx)
	p := geomPtr(g)
	var cXmin, cYmin, cXmax, cYmax C.double
	if C.GEOSGeom_getXMin_r(h, p, &cXmin) == 0 ||
		C.GEOSGeom_getYMin_r(h, p, &cYmin) == 0 ||
		C.GEOSGeom_getXMax_r(h, p, &cXmax) == 0 ||
		C.GEOSGeom_getYMax_r(h, p, &cYmax) == 0 {
		return 0, 0, 0, 0, ErrException
	}
	return float64(cXmin), float64(cYmin), float64(cXmax), float64(cYmax), nil
}

// boolResult translates the GEOS char convention: 0 false, 1 true, 2 exception.
func boolResult(c C.char) (bool, error) {
	switch c {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, ErrException
	}
}

// GeomIsEmpty reports whether g has no points.
func GeomIsEmpty(ctx, g unsafe.Pointer) (bool, error) {
	return boolResult(C.GEOSisEmpty_r(ctxHandle(ctx), geomPtr(g)))
}

// GeomIsSimple reports whether g has no anomalous self-intersections.
func GeomIsSimple(ctx, g unsafe.Pointer) (bool, error) {
	return boolResult(C.GEOSisSimple_r(ctxHandle(ctx), geomPtr(g)))
}

// GeomIsRing reports whether g is a closed, simple linestring.
func GeomIsRing(ctx, g unsafe.Pointer) (bool, error) {
	return boolResult(C.GEOSisRing_r(ctxHandle(ctx), geomPtr(g)))
}

// GeomIsClosed reports whether g starts and ends on the same point.
func GeomIsClosed(ctx, g unsafe.Pointer) (bool, error) {
	return boolResult(C.GEOSisClosed_r(ctxHandle(ctx), geomPtr(g)))
}

// GeomIsValid reports whether g satisfies the OGC validity rules.
func GeomIsValid(ctx, g unsafe.Pointer) (bool, error) {
	return boolResult(C.GEOSisValid_r(ctxHandle(ctx), geomPtr(g)))
}

// GeomIsValidReason returns a human-readable validity report for g.
func GeomIsValidReason(ctx, g unsafe.Pointer) (string, error) {
	h := ctxHandle(ctx)
	return copyString(h, C.GEOSisValidReason_r(h, geomPtr(g)))
}

// GeomNormalize converts g to normal form in place.
func GeomNormalize(ctx, g unsafe.Pointer) error {
	if C.GEOSNormalize_r(ctxHandle(ctx), geomPtr(g)) != 0 {
		return ErrException
	}
	return nil
}
