//go:build cgo && !windows

package backend

/*
#cgo LDFLAGS: -lgeos_c
#include <stdlib.h>
#include "geos_c.h"
*/
import "C"

import "unsafe"

// unaryOp converts the GEOS result convention for operations returning a new
// geometry: null means exception.
func unaryOp(p *C.GEOSGeometry) (unsafe.Pointer, error) {
	if p == nil {
		return nil, ErrException
	}
	return unsafe.Pointer(p), nil
}

func GeomIntersection(ctx, a, b unsafe.Pointer) (unsafe.Pointer, error) {
	return unaryOp(C.GEOSIntersection_r(ctxHandle(ctx), geomPtr(a), geomPtr(b)))
}

func GeomUnion(ctx, a, b unsafe.Pointer) (unsafe.Pointer, error) {
	return unaryOp(C.GEOSUnion_r(ctxHandle(ctx), geomPtr(a), geomPtr(b)))
}

func GeomUnaryUnion(ctx, g unsafe.Pointer) (unsafe.Pointer, error) {
	return unaryOp(C.GEOSUnaryUnion_r(ctxHandle(ctx), geomPtr(g)))
}

func GeomDifference(ctx, a, b unsafe.Pointer) (unsafe.Pointer, error) {
	return unaryOp(C.GEOSDifference_r(ctxHandle(ctx), geomPtr(a), geomPtr(b)))
}

func GeomSymDifference(ctx, a, b unsafe.Pointer) (unsafe.Pointer, error) {
	return unaryOp(C.GEOSSymDifference_r(ctxHandle(ctx), geomPtr(a), geomPtr(b)))
}

func GeomBuffer(ctx, g unsafe.Pointer, width float64, quadSegs int) (unsafe.Pointer, error) {
	return unaryOp(C.GEOSBuffer_r(ctxHandle(ctx), geomPtr(g), C.double(width), C.int(quadSegs)))
}

func GeomConvexHull(ctx, g unsafe.Pointer) (unsafe.Pointer, error) {
	return unaryOp(C.GEOSConvexHull_r(ctxHandle(ctx), geomPtr(g)))
}

func GeomEnvelope(ctx, g unsafe.Pointer) (unsafe.Pointer, error) {
	return unaryOp(C.GEOSEnvelope_r(ctxHandle(ctx), geomPtr(g)))
}

func GeomBoundary(ctx, g unsafe.Pointer) (unsafe.Pointer, error) {
	return unaryOp(C.GEOSBoundary_r(ctxHandle(ctx), geomPtr(g)))
}

func GeomCentroid(ctx, g unsafe.Pointer) (unsafe.Pointer, error) {
	return unaryOp(C.GEOSGetCentroid_r(ctxHandle(ctx), geomPtr(g)))
}

func GeomPointOnSurface(ctx, g unsafe.Pointer) (unsafe.Pointer, error) {
	return unaryOp(C.GEOSPointOnSurface_r(ctxHandle(ctx), geomPtr(g)))
}

func GeomSimplify(ctx, g unsafe.Pointer, tolerance float64) (unsafe.Pointer, error) {
	return unaryOp(C.GEOSSimplify_r(ctxHandle(ctx), geomPtr(g), C.double(tolerance)))
}

func GeomTopologyPreserveSimplify(ctx, g unsafe.Pointer, tolerance float64) (unsafe.Pointer, error) {
	return unaryOp(C.GEOSTopologyPreserveSimplify_r(ctxHandle(ctx), geomPtr(g), C.double(tolerance)))
}

func GeomMakeValid(ctx, g unsafe.Pointer) (unsafe.Pointer, error) {
	return unaryOp(C.GEOSMakeValid_r(ctxHandle(ctx), geomPtr(g)))
}

func GeomReverse(ctx, g unsafe.Pointer) (unsafe.Pointer, error) {
	return unaryOp(C.GEOSReverse_r(ctxHandle(ctx), geomPtr(g)))
}

// Scalar measures. GEOS returns 1 on success, 0 on exception, writing the
// value through an out parameter.

func GeomArea(ctx, g unsafe.Pointer) (float64, error) {
	var v C.double
	if C.GEOSArea_r(ctxHandle(ctx), geomPtr(g), &v) == 0 {
		return 0, ErrException
	}
	return float64(v), nil
}

func GeomLength(ctx, g unsafe.Pointer) (float64, error) {
	var v C.double
	if C.GEOSLength_r(ctxHandle(ctx), geomPtr(g), &v) == 0 {
		return 0, ErrException
	}
	return float64(v), nil
}

func GeomDistance(ctx, a, b unsafe.Pointer) (float64, error) {
	var v C.double
	if C.GEOSDistance_r(ctxHandle(ctx), geomPtr(a), geomPtr(b), &v) == 0 {
		return 0, ErrException
	}
	return float64(v), nil
}

func GeomHausdorffDistance(ctx, a, b unsafe.Pointer) (float64, error) {
	var v C.double
	if C.GEOSHausdorffDistance_r(ctxHandle(ctx), geomPtr(a), geomPtr(b), &v) == 0 {
		return 0, ErrException
	}
	return float64(v), nil
}
