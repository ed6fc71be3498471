package backend

import "errors"

// ErrNotBuilt reports that the native GEOS bindings were not linked into the
// current binary, either because cgo is disabled or the platform is not
// supported.
var ErrNotBuilt = errors.New("geos/internal/backend: native bindings not built")

// ErrException is returned when a GEOS call signals failure through its
// null-pointer or sentinel-value convention. The human-readable message, if
// any, is captured separately through the context's error handler and can be
// fetched with ContextLastError.
var ErrException = errors.New("geos exception")

// Geometry type identifiers, matching the GEOSGeomTypes enum.
const (
	TypeIDPoint              = 0
	TypeIDLineString         = 1
	TypeIDLinearRing         = 2
	TypeIDPolygon            = 3
	TypeIDMultiPoint         = 4
	TypeIDMultiLineString    = 5
	TypeIDMultiPolygon       = 6
	TypeIDGeometryCollection = 7
)

// WKB byte order values, matching the GEOSWKBByteOrders enum.
const (
	ByteOrderBigEndian    = 0
	ByteOrderLittleEndian = 1
)
