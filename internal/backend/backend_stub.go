//go:build !cgo || windows

package backend

import "unsafe"

// Stub implementations for non-cgo builds and Windows. They allow the module
// to compile without libgeos_c; every call reports ErrNotBuilt.

func ContextCreate() (unsafe.Pointer, uintptr, error) { return nil, 0, ErrNotBuilt }

func ContextDestroy(unsafe.Pointer, uintptr) {}

func Version() string { return "" }

func GeomDestroy(_, _ unsafe.Pointer) {}

func GeomClone(_, _ unsafe.Pointer) (unsafe.Pointer, error) { return nil, ErrNotBuilt }

func GeomNewPoint(unsafe.Pointer, float64, float64) (unsafe.Pointer, error) {
	return nil, ErrNotBuilt
}

func GeomNewLineString(unsafe.Pointer, [][2]float64) (unsafe.Pointer, error) {
	return nil, ErrNotBuilt
}

func GeomNewLinearRing(unsafe.Pointer, [][2]float64) (unsafe.Pointer, error) {
	return nil, ErrNotBuilt
}

func GeomNewPolygon(_, _ unsafe.Pointer, _ []unsafe.Pointer) (unsafe.Pointer, error) {
	return nil, ErrNotBuilt
}

func GeomNewCollection(unsafe.Pointer, int, []unsafe.Pointer) (unsafe.Pointer, error) {
	return nil, ErrNotBuilt
}

func GeomType(_, _ unsafe.Pointer) (string, error) { return "", ErrNotBuilt }

func GeomTypeID(_, _ unsafe.Pointer) (int, error) { return 0, ErrNotBuilt }

func GeomSRID(_, _ unsafe.Pointer) int { return 0 }

func GeomSetSRID(_, _ unsafe.Pointer, _ int) {}

func GeomNumGeometries(_, _ unsafe.Pointer) (int, error) { return 0, ErrNotBuilt }

func GeomGeometryN(_, _ unsafe.Pointer, _ int) (unsafe.Pointer, error) { return nil, ErrNotBuilt }

func GeomNumCoordinates(_, _ unsafe.Pointer) (int, error) { return 0, ErrNotBuilt }

func GeomDimension(_, _ unsafe.Pointer) int { return 0 }

func GeomCoordinateDimension(_, _ unsafe.Pointer) int { return 0 }

func GeomBounds(_, _ unsafe.Pointer) (float64, float64, float64, float64, error) {
	return 0, 0, 0, 0, ErrNotBuilt
}

func GeomIsEmpty(_, _ unsafe.Pointer) (bool, error) { return false, ErrNotBuilt }

func GeomIsSimple(_, _ unsafe.Pointer) (bool, error) { return false, ErrNotBuilt }

func GeomIsRing(_, _ unsafe.Pointer) (bool, error) { return false, ErrNotBuilt }

func GeomIsClosed(_, _ unsafe.Pointer) (bool, error) { return false, ErrNotBuilt }

func GeomIsValid(_, _ unsafe.Pointer) (bool, error) { return false, ErrNotBuilt }

func GeomIsValidReason(_, _ unsafe.Pointer) (string, error) { return "", ErrNotBuilt }

func GeomNormalize(_, _ unsafe.Pointer) error { return ErrNotBuilt }

func GeomDisjoint(_, _, _ unsafe.Pointer) (bool, error) { return false, ErrNotBuilt }

func GeomTouches(_, _, _ unsafe.Pointer) (bool, error) { return false, ErrNotBuilt }

func GeomIntersects(_, _, _ unsafe.Pointer) (bool, error) { return false, ErrNotBuilt }

func GeomCrosses(_, _, _ unsafe.Pointer) (bool, error) { return false, ErrNotBuilt }

func GeomWithin(_, _, _ unsafe.Pointer) (bool, error) { return false, ErrNotBuilt }

func GeomContains(_, _, _ unsafe.Pointer) (bool, error) { return false, ErrNotBuilt }

func GeomOverlaps(_, _, _ unsafe.Pointer) (bool, error) { return false, ErrNotBuilt }

func GeomCovers(_, _, _ unsafe.Pointer) (bool, error) { return false, ErrNotBuilt }

func GeomCoveredBy(_, _, _ unsafe.Pointer) (bool, error) { return false, ErrNotBuilt }

func GeomEquals(_, _, _ unsafe.Pointer) (bool, error) { return false, ErrNotBuilt }

func GeomEqualsExact(_, _, _ unsafe.Pointer, _ float64) (bool, error) { return false, ErrNotBuilt }

func GeomRelate(_, _, _ unsafe.Pointer) (string, error) { return "", ErrNotBuilt }

func GeomRelatePattern(_, _, _ unsafe.Pointer, _ string) (bool, error) { return false, ErrNotBuilt }

func GeomIntersection(_, _, _ unsafe.Pointer) (unsafe.Pointer, error) { return nil, ErrNotBuilt }

func GeomUnion(_, _, _ unsafe.Pointer) (unsafe.Pointer, error) { return nil, ErrNotBuilt }

func GeomUnaryUnion(_, _ unsafe.Pointer) (unsafe.Pointer, error) { return nil, ErrNotBuilt }

func GeomDifference(_, _, _ unsafe.Pointer) (unsafe.Pointer, error) { return nil, ErrNotBuilt }

func GeomSymDifference(_, _, _ unsafe.Pointer) (unsafe.Pointer, error) { return nil, ErrNotBuilt }

func GeomBuffer(_, _ unsafe.Pointer, _ float64, _ int) (unsafe.Pointer, error) {
	return nil, ErrNotBuilt
}

func GeomConvexHull(_, _ unsafe.Pointer) (unsafe.Pointer, error) { return nil, ErrNotBuilt }

func GeomEnvelope(_, _ unsafe.Pointer) (unsafe.Pointer, error) { return nil, ErrNotBuilt }

func GeomBoundary(_, _ unsafe.Pointer) (unsafe.Pointer, error) { return nil, ErrNotBuilt }

func GeomCentroid(_, _ unsafe.Pointer) (unsafe.Pointer, error) { return nil, ErrNotBuilt }

func GeomPointOnSurface(_, _ unsafe.Pointer) (unsafe.Pointer, error) { return nil, ErrNotBuilt }

func GeomSimplify(_, _ unsafe.Pointer, _ float64) (unsafe.Pointer, error) {
	return nil, ErrNotBuilt
}

func GeomTopologyPreserveSimplify(_, _ unsafe.Pointer, _ float64) (unsafe.Pointer, error) {
	return nil, ErrNotBuilt
}

func GeomMakeValid(_, _ unsafe.Pointer) (unsafe.Pointer, error) { return nil, ErrNotBuilt }

func GeomReverse(_, _ unsafe.Pointer) (unsafe.Pointer, error) { return nil, ErrNotBuilt }

func GeomArea(_, _ unsafe.Pointer) (float64, error) { return 0, ErrNotBuilt }

func GeomLength(_, _ unsafe.Pointer) (float64, error) { return 0, ErrNotBuilt }

func GeomDistance(_, _, _ unsafe.Pointer) (float64, error) { return 0, ErrNotBuilt }

func GeomHausdorffDistance(_, _, _ unsafe.Pointer) (float64, error) { return 0, ErrNotBuilt }

func WKTReaderCreate(unsafe.Pointer) (unsafe.Pointer, error) { return nil, ErrNotBuilt }

func WKTReaderDestroy(_, _ unsafe.Pointer) {}

func WKTReaderRead(_, _ unsafe.Pointer, _ string) (unsafe.Pointer, error) {
	return nil, ErrNotBuilt
}

func WKTWriterCreate(unsafe.Pointer) (unsafe.Pointer, error) { return nil, ErrNotBuilt }

func WKTWriterDestroy(_, _ unsafe.Pointer) {}

func WKTWriterWrite(_, _, _ unsafe.Pointer) (string, error) { return "", ErrNotBuilt }

func WKTWriterSetTrim(_, _ unsafe.Pointer, _ bool) {}

func WKTWriterSetRoundingPrecision(_, _ unsafe.Pointer, _ int) {}

func WKTWriterSetOutputDimension(_, _ unsafe.Pointer, _ int) {}

func WKBReaderCreate(unsafe.Pointer) (unsafe.Pointer, error) { return nil, ErrNotBuilt }

func WKBReaderDestroy(_, _ unsafe.Pointer) {}

func WKBReaderRead(_, _ unsafe.Pointer, _ []byte) (unsafe.Pointer, error) {
	return nil, ErrNotBuilt
}

func WKBReaderReadHex(_, _ unsafe.Pointer, _ string) (unsafe.Pointer, error) {
	return nil, ErrNotBuilt
}

func WKBWriterCreate(unsafe.Pointer) (unsafe.Pointer, error) { return nil, ErrNotBuilt }

func WKBWriterDestroy(_, _ unsafe.Pointer) {}

func WKBWriterWrite(_, _, _ unsafe.Pointer) ([]byte, error) { return nil, ErrNotBuilt }

func WKBWriterWriteHex(_, _, _ unsafe.Pointer) (string, error) { return "", ErrNotBuilt }

func WKBWriterSetByteOrder(_, _ unsafe.Pointer, _ int) {}

func WKBWriterSetIncludeSRID(_, _ unsafe.Pointer, _ bool) {}

func GeoJSONReaderCreate(unsafe.Pointer) (unsafe.Pointer, error) { return nil, ErrNotBuilt }

func GeoJSONReaderDestroy(_, _ unsafe.Pointer) {}

func GeoJSONReaderRead(_, _ unsafe.Pointer, _ string) (unsafe.Pointer, error) {
	return nil, ErrNotBuilt
}

func GeoJSONWriterCreate(unsafe.Pointer) (unsafe.Pointer, error) { return nil, ErrNotBuilt }

func GeoJSONWriterDestroy(_, _ unsafe.Pointer) {}

func GeoJSONWriterWrite(_, _, _ unsafe.Pointer, _ int) (string, error) { return "", ErrNotBuilt }

func PreparedCreate(_, _ unsafe.Pointer) (unsafe.Pointer, error) { return nil, ErrNotBuilt }

func PreparedDestroy(_, _ unsafe.Pointer) {}

func PreparedIntersects(_, _, _ unsafe.Pointer) (bool, error) { return false, ErrNotBuilt }

func PreparedContains(_, _, _ unsafe.Pointer) (bool, error) { return false, ErrNotBuilt }

func PreparedContainsProperly(_, _, _ unsafe.Pointer) (bool, error) { return false, ErrNotBuilt }

func PreparedCovers(_, _, _ unsafe.Pointer) (bool, error) { return false, ErrNotBuilt }

func PreparedCoveredBy(_, _, _ unsafe.Pointer) (bool, error) { return false, ErrNotBuilt }

func PreparedDisjoint(_, _, _ unsafe.Pointer) (bool, error) { return false, ErrNotBuilt }

func PreparedWithin(_, _, _ unsafe.Pointer) (bool, error) { return false, ErrNotBuilt }

func PreparedTouches(_, _, _ unsafe.Pointer) (bool, error) { return false, ErrNotBuilt }

func PreparedCrosses(_, _, _ unsafe.Pointer) (bool, error) { return false, ErrNotBuilt }

func PreparedOverlaps(_, _, _ unsafe.Pointer) (bool, error) { return false, ErrNotBuilt }

func STRtreeCreate(unsafe.Pointer, int) (unsafe.Pointer, error) { return nil, ErrNotBuilt }

func STRtreeDestroy(_, _ unsafe.Pointer) {}

func STRtreeInsert(_, _, _ unsafe.Pointer, _ uintptr) {}

func STRtreeQuery(_, _, _ unsafe.Pointer) []uintptr { return nil }
