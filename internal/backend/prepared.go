//go:build cgo && !windows

package backend

/*
#cgo LDFLAGS: -lgeos_c
#include <stdlib.h>
#include "geos_c.h"
*/
import "C"

import "unsafe"

func preparedPtr(p unsafe.Pointer) *C.GEOSPreparedGeometry {
	return (*C.GEOSPreparedGeometry)(p)
}

// PreparedCreate builds an indexed form of g for repeated predicate tests.
// The source geometry must stay alive for as long as the prepared form.
func PreparedCreate(ctx, g unsafe.Pointer) (unsafe.Pointer, error) {
	p := C.GEOSPrepare_r(ctxHandle(ctx), geomPtr(g))
	if p == nil {
		return nil, ErrException
	}
	return unsafe.Pointer(p), nil
}

func PreparedDestroy(ctx, p unsafe.Pointer) {
	if p != nil {
		C.GEOSPreparedGeom_destroy_r(ctxHandle(ctx), preparedPtr(p))
	}
}

func PreparedIntersects(ctx, p, g unsafe.Pointer) (bool, error) {
	return boolResult(C.GEOSPreparedIntersects_r(ctxHandle(ctx), preparedPtr(p), geomPtr(g)))
}

func PreparedContains(ctx, p, g unsafe.Pointer) (bool, error) {
	return boolResult(C.GEOSPreparedContains_r(ctxHandle(ctx), preparedPtr(p), geomPtr(g)))
}

func PreparedContainsProperly(ctx, p, g unsafe.Pointer) (bool, error) {
	return boolResult(C.GEOSPreparedContainsProperly_r(ctxHandle(ctx), preparedPtr(p), geomPtr(g)))
}

func PreparedCovers(ctx, p, g unsafe.Pointer) (bool, error) {
	return boolResult(C.GEOSPreparedCovers_r(ctxHandle(ctx), preparedPtr(p), geomPtr(g)))
}

func PreparedCoveredBy(ctx, p, g unsafe.Pointer) (bool, error) {
	return boolResult(C.GEOSPreparedCoveredBy_r(ctxHandle(ctx), preparedPtr(p), geomPtr(g)))
}

func PreparedDisjoint(ctx, p, g unsafe.Pointer) (bool, error) {
	return boolResult(C.GEOSPreparedDisjoint_r(ctxHandle(ctx), preparedPtr(p), geomPtr(g)))
}

func PreparedWithin(ctx, p, g unsafe.Pointer) (bool, error) {
	return boolResult(C.GEOSPreparedWithin_r(ctxHandle(ctx), preparedPtr(p), geomPtr(g)))
}

func PreparedTouches(ctx, p, g unsafe.Pointer) (bool, error) {
	return boolResult(C.GEOSPreparedTouches_r(ctxHandle(ctx), preparedPtr(p), geomPtr(g)))
}

func PreparedCrosses(ctx, p, g unsafe.Pointer) (bool, error) {
	return boolResult(C.GEOSPreparedCrosses_r(ctxHandle(ctx), preparedPtr(p), geomPtr(g)))
}

func PreparedOverlaps(ctx, p, g unsafe.Pointer) (bool, error) {
	return boolResult(C.GEOSPreparedOverlaps_r(ctxHandle(ctx), preparedPtr(p), geomPtr(g)))
}
