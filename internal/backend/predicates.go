//go:build cgo && !windows

package backend

/*
#cgo LDFLAGS: -lgeos_c
#include <stdlib.h>
#include "geos_c.h"
*/
import "C"

import "unsafe"

// Binary spatial predicates. Each translates the GEOS char convention through
// boolResult; 2 means the native call raised an exception.

func GeomDisjoint(ctx, a, b unsafe.Pointer) (bool, error) {
	return boolResult(C.GEOSDisjoint_r(ctxHandle(ctx), geomPtr(a), geomPtr(b)))
}

func GeomTouches(ctx, a, b unsafe.Pointer) (bool, error) {
	return boolResult(C.GEOSTouches_r(ctxHandle(ctx), geomPtr(a), geomPtr(b)))
}

func GeomIntersects(ctx, a, b unsafe.Pointer) (bool, error) {
	return boolResult(C.GEOSIntersects_r(ctxHandle(ctx), geomPtr(a), geomPtr(b)))
}

func GeomCrosses(ctx, a, b unsafe.Pointer) (bool, error) {
	return boolResult(C.GEOSCrosses_r(ctxHandle(ctx), geomPtr(a), geomPtr(b)))
}

func GeomWithin(ctx, a, b unsafe.Pointer) (bool, error) {
	return boolResult(C.GEOSWithin_r(ctxHandle(ctx), geomPtr(a), geomPtr(b)))
}

func GeomContains(ctx, a, b unsafe.Pointer) (bool, error) {
	return boolResult(C.GEOSContains_r(ctxHandle(ctx), geomPtr(a), geomPtr(b)))
}

func GeomOverlaps(ctx, a, b unsafe.Pointer) (bool, error) {
	return boolResult(C.GEOSOverlaps_r(ctxHandle(ctx), geomPtr(a), geomPtr(b)))
}

func GeomCovers(ctx, a, b unsafe.Pointer) (bool, error) {
	return boolResult(C.GEOSCovers_r(ctxHandle(ctx), geomPtr(a), geomPtr(b)))
}

func GeomCoveredBy(ctx, a, b unsafe.Pointer) (bool, error) {
	return boolResult(C.GEOSCoveredBy_r(ctxHandle(ctx), geomPtr(a), geomPtr(b)))
}

func GeomEquals(ctx, a, b unsafe.Pointer) (bool, error) {
	return boolResult(C.GEOSEquals_r(ctxHandle(ctx), geomPtr(a), geomPtr(b)))
}

func GeomEqualsExact(ctx, a, b unsafe.Pointer, tolerance float64) (bool, error) {
	return boolResult(C.GEOSEqualsExact_r(ctxHandle(ctx), geomPtr(a), geomPtr(b), C.double(tolerance)))
}

// GeomRelate computes the DE-9IM intersection matrix of a and b.
func GeomRelate(ctx, a, b unsafe.Pointer) (string, error) {
	h := ctxHandle(ctx)
	return copyString(h, C.GEOSRelate_r(h, geomPtr(a), geomPtr(b)))
}

// GeomRelatePattern reports whether the DE-9IM matrix of a and b matches the
// given pattern.
func GeomRelatePattern(ctx, a, b unsafe.Pointer, pattern string) (bool, error) {
	cPattern := C.CString(pattern)
	defer C.free(unsafe.Pointer(cPattern))
	return boolResult(C.GEOSRelatePattern_r(ctxHandle(ctx), geomPtr(a), geomPtr(b), cPattern))
}
