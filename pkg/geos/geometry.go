package geos

import (
	"runtime"
	"unsafe"

	"github.com/geoforge/go-geos/internal/backend"
)

// Coord is an XY coordinate pair.
type Coord struct {
	X, Y float64
}

// GeometryType identifies the OGC geometry type of a Geometry, matching the
// native type ids.
type GeometryType int

const (
	Point              GeometryType = backend.TypeIDPoint
	LineString         GeometryType = backend.TypeIDLineString
	LinearRing         GeometryType = backend.TypeIDLinearRing
	Polygon            GeometryType = backend.TypeIDPolygon
	MultiPoint         GeometryType = backend.TypeIDMultiPoint
	MultiLineString    GeometryType = backend.TypeIDMultiLineString
	MultiPolygon       GeometryType = backend.TypeIDMultiPolygon
	GeometryCollection GeometryType = backend.TypeIDGeometryCollection
)

func (t GeometryType) String() string {
	switch t {
	case Point:
		return "Point"
	case LineString:
		return "LineString"
	case LinearRing:
		return "LinearRing"
	case Polygon:
		return "Polygon"
	case MultiPoint:
		return "MultiPoint"
	case MultiLineString:
		return "MultiLineString"
	case MultiPolygon:
		return "MultiPolygon"
	case GeometryCollection:
		return "GeometryCollection"
	default:
		return "Unknown"
	}
}

// Geometry owns exactly one native GEOS geometry and shares the context it
// was created on. The native handle is released exactly once, by Free or by
// the finalizer.
type Geometry struct {
	ctx *Context
	ptr unsafe.Pointer
}

// newGeometry adopts a native pointer returned by a factory call, translating
// a null result into a construction error.
func newGeometry(ctx *Context, op string, ptr unsafe.Pointer, err error) (*Geometry, error) {
	if err != nil {
		return nil, ctx.constructionErr(op, err)
	}
	g := &Geometry{ctx: ctx, ptr: ptr}
	runtime.SetFinalizer(g, (*Geometry).Free)
	return g, nil
}

// Free releases the native geometry. It is idempotent and also runs as a
// finalizer for abandoned values. If the context was closed first the handle
// is abandoned to the native library's teardown instead of destroyed.
func (g *Geometry) Free() {
	if g == nil || g.ptr == nil {
		return
	}
	if !g.ctx.isClosed() {
		backend.GeomDestroy(g.ctx.ptr, g.ptr)
	}
	g.ptr = nil
	runtime.SetFinalizer(g, nil)
}

// Context returns the shared context this geometry was created on.
func (g *Geometry) Context() *Context {
	return g.ctx
}

// raw returns the context handle and geometry pointer, or ErrClosed when
// either was released.
func (g *Geometry) raw() (unsafe.Pointer, unsafe.Pointer, error) {
	if g == nil || g.ptr == nil {
		return nil, nil, ErrClosed
	}
	h, err := g.ctx.raw()
	if err != nil {
		return nil, nil, err
	}
	return h, g.ptr, nil
}

// detach hands ownership of the native pointer to a consuming native call.
func (g *Geometry) detach() unsafe.Pointer {
	p := g.ptr
	g.ptr = nil
	runtime.SetFinalizer(g, nil)
	return p
}

// NewPoint creates a point geometry.
func NewPoint(ctx *Context, c Coord) (*Geometry, error) {
	const op = "NewPoint"
	h, err := ctx.raw()
	if err != nil {
		return nil, ctx.constructionErr(op, err)
	}
	ptr, err := backend.GeomNewPoint(h, c.X, c.Y)
	return newGeometry(ctx, op, ptr, err)
}

// NewLineString creates a linestring through the given coordinates.
func NewLineString(ctx *Context, coords []Coord) (*Geometry, error) {
	const op = "NewLineString"
	h, err := ctx.raw()
	if err != nil {
		return nil, ctx.constructionErr(op, err)
	}
	ptr, err := backend.GeomNewLineString(h, flatten(coords))
	return newGeometry(ctx, op, ptr, err)
}

// NewLinearRing creates a closed linear ring through the given coordinates.
// The first and last coordinate must coincide.
func NewLinearRing(ctx *Context, coords []Coord) (*Geometry, error) {
	const op = "NewLinearRing"
	h, err := ctx.raw()
	if err != nil {
		return nil, ctx.constructionErr(op, err)
	}
	ptr, err := backend.GeomNewLinearRing(h, flatten(coords))
	return newGeometry(ctx, op, ptr, err)
}

// NewPolygon assembles a polygon from an exterior ring and optional interior
// rings. Ownership of the rings passes to the polygon; the inputs must not be
// used afterwards.
func NewPolygon(ctx *Context, shell *Geometry, holes ...*Geometry) (*Geometry, error) {
	const op = "NewPolygon"
	h, err := ctx.raw()
	if err != nil {
		return nil, ctx.constructionErr(op, err)
	}
	if shell == nil || shell.ptr == nil {
		return nil, ctx.constructionErr(op, ErrClosed)
	}
	holePtrs := make([]unsafe.Pointer, 0, len(holes))
	for _, hole := range holes {
		if hole == nil || hole.ptr == nil {
			return nil, ctx.constructionErr(op, ErrClosed)
		}
	}
	shellPtr := shell.detach()
	for _, hole := range holes {
		holePtrs = append(holePtrs, hole.detach())
	}
	ptr, err := backend.GeomNewPolygon(h, shellPtr, holePtrs)
	return newGeometry(ctx, op, ptr, err)
}

// NewCollection assembles a multi-geometry or collection of the given type.
// Ownership of the members passes to the collection.
func NewCollection(ctx *Context, typ GeometryType, geoms ...*Geometry) (*Geometry, error) {
	const op = "NewCollection"
	h, err := ctx.raw()
	if err != nil {
		return nil, ctx.constructionErr(op, err)
	}
	for _, g := range geoms {
		if g == nil || g.ptr == nil {
			return nil, ctx.constructionErr(op, ErrClosed)
		}
	}
	ptrs := make([]unsafe.Pointer, len(geoms))
	for i, g := range geoms {
		ptrs[i] = g.detach()
	}
	ptr, err := backend.GeomNewCollection(h, int(typ), ptrs)
	return newGeometry(ctx, op, ptr, err)
}

// GeomFromWKT parses a Well-Known Text string with a throwaway reader.
func GeomFromWKT(ctx *Context, wkt string) (*Geometry, error) {
	r, err := NewWKTReader(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return r.Read(wkt)
}

// GeomFromWKB parses a Well-Known Binary buffer with a throwaway reader.
func GeomFromWKB(ctx *Context, wkb []byte) (*Geometry, error) {
	r, err := NewWKBReader(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return r.Read(wkb)
}

// GeomFromGeoJSON parses a GeoJSON document with a throwaway reader.
func GeomFromGeoJSON(ctx *Context, geojson string) (*Geometry, error) {
	r, err := NewGeoJSONReader(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return r.Read(geojson)
}

// Clone returns a deep, independently owned copy.
func (g *Geometry) Clone() (*Geometry, error) {
	const op = "Clone"
	h, p, err := g.raw()
	if err != nil {
		return nil, g.ctx.constructionErr(op, err)
	}
	ptr, err := backend.GeomClone(h, p)
	defer runtime.KeepAlive(g)
	return newGeometry(g.ctx, op, ptr, err)
}

// Type returns the geometry type name reported by GEOS, e.g. "Polygon".
func (g *Geometry) Type() (string, error) {
	const op = "Type"
	h, p, err := g.raw()
	if err != nil {
		return "", g.ctx.operationErr(op, err)
	}
	s, err := backend.GeomType(h, p)
	runtime.KeepAlive(g)
	if err != nil {
		return "", g.ctx.operationErr(op, err)
	}
	return s, nil
}

// TypeID returns the geometry type identifier.
func (g *Geometry) TypeID() (GeometryType, error) {
	const op = "TypeID"
	h, p, err := g.raw()
	if err != nil {
		return 0, g.ctx.operationErr(op, err)
	}
	id, err := backend.GeomTypeID(h, p)
	runtime.KeepAlive(g)
	if err != nil {
		return 0, g.ctx.operationErr(op, err)
	}
	return GeometryType(id), nil
}

// SRID returns the spatial reference identifier, zero when unset.
func (g *Geometry) SRID() int {
	h, p, err := g.raw()
	if err != nil {
		return 0
	}
	srid := backend.GeomSRID(h, p)
	runtime.KeepAlive(g)
	return srid
}

// SetSRID stamps the geometry with a spatial reference identifier.
func (g *Geometry) SetSRID(srid int) error {
	h, p, err := g.raw()
	if err != nil {
		return g.ctx.operationErr("SetSRID", err)
	}
	backend.GeomSetSRID(h, p, srid)
	runtime.KeepAlive(g)
	return nil
}

// NumGeometries returns the number of member geometries; one for atomic
// geometries.
func (g *Geometry) NumGeometries() (int, error) {
	const op = "NumGeometries"
	h, p, err := g.raw()
	if err != nil {
		return 0, g.ctx.operationErr(op, err)
	}
	n, err := backend.GeomNumGeometries(h, p)
	runtime.KeepAlive(g)
	if err != nil {
		return 0, g.ctx.operationErr(op, err)
	}
	return n, nil
}

// GeometryN returns an owned copy of the n-th member geometry.
func (g *Geometry) GeometryN(n int) (*Geometry, error) {
	const op = "GeometryN"
	h, p, err := g.raw()
	if err != nil {
		return nil, g.ctx.operationErr(op, err)
	}
	ptr, err := backend.GeomGeometryN(h, p, n)
	defer runtime.KeepAlive(g)
	return newGeometry(g.ctx, op, ptr, err)
}

// NumCoordinates returns the total number of coordinates.
func (g *Geometry) NumCoordinates() (int, error) {
	const op = "NumCoordinates"
	h, p, err := g.raw()
	if err != nil {
		return 0, g.ctx.operationErr(op, err)
	}
	n, err := backend.GeomNumCoordinates(h, p)
	runtime.KeepAlive(g)
	if err != nil {
		return 0, g.ctx.operationErr(op, err)
	}
	return n, nil
}

// Dimension returns the inherent dimension: 0 for points, 1 for lines, 2 for
// areas.
func (g *Geometry) Dimension() int {
	h, p, err := g.raw()
	if err != nil {
		return 0
	}
	d := backend.GeomDimension(h, p)
	runtime.KeepAlive(g)
	return d
}

// CoordinateDimension returns 2 or 3.
func (g *Geometry) CoordinateDimension() int {
	h, p, err := g.raw()
	if err != nil {
		return 0
	}
	d := backend.GeomCoordinateDimension(h, p)
	runtime.KeepAlive(g)
	return d
}

// Bounds returns the envelope as xmin, ymin, xmax, ymax.
func (g *Geometry) Bounds() (xmin, ymin, xmax, ymax float64, err error) {
	const op = "Bounds"
	h, p, err := g.raw()
	if err != nil {
		return 0, 0, 0, 0, g.ctx.operationErr(op, err)
	}
	xmin, ymin, xmax, ymax, err = backend.GeomBounds(h, p)
	runtime.KeepAlive(g)
	if err != nil {
		return 0, 0, 0, 0, g.ctx.operationErr(op, err)
	}
	return xmin, ymin, xmax, ymax, nil
}

// boolProp evaluates a unary predicate through the backend.
func (g *Geometry) boolProp(op string, fn func(ctx, p unsafe.Pointer) (bool, error)) (bool, error) {
	h, p, err := g.raw()
	if err != nil {
		return false, g.ctx.operationErr(op, err)
	}
	v, err := fn(h, p)
	runtime.KeepAlive(g)
	if err != nil {
		return false, g.ctx.operationErr(op, err)
	}
	return v, nil
}

// IsEmpty reports whether the geometry contains no points.
func (g *Geometry) IsEmpty() (bool, error) {
	return g.boolProp("IsEmpty", backend.GeomIsEmpty)
}

// IsSimple reports whether the geometry has no anomalous self-intersections.
func (g *Geometry) IsSimple() (bool, error) {
	return g.boolProp("IsSimple", backend.GeomIsSimple)
}

// IsRing reports whether the geometry is a closed simple linestring.
func (g *Geometry) IsRing() (bool, error) {
	return g.boolProp("IsRing", backend.GeomIsRing)
}

// IsClosed reports whether the geometry starts and ends on the same point.
func (g *Geometry) IsClosed() (bool, error) {
	return g.boolProp("IsClosed", backend.GeomIsClosed)
}

// IsValid reports whether the geometry satisfies the OGC validity rules.
func (g *Geometry) IsValid() (bool, error) {
	return g.boolProp("IsValid", backend.GeomIsValid)
}

// IsValidReason returns a human-readable validity report, "Valid Geometry"
// for valid input.
func (g *Geometry) IsValidReason() (string, error) {
	const op = "IsValidReason"
	h, p, err := g.raw()
	if err != nil {
		return "", g.ctx.operationErr(op, err)
	}
	s, err := backend.GeomIsValidReason(h, p)
	runtime.KeepAlive(g)
	if err != nil {
		return "", g.ctx.operationErr(op, err)
	}
	return s, nil
}

// Normalize converts the geometry to OGC normal form in place.
func (g *Geometry) Normalize() error {
	const op = "Normalize"
	h, p, err := g.raw()
	if err != nil {
		return g.ctx.operationErr(op, err)
	}
	err = backend.GeomNormalize(h, p)
	runtime.KeepAlive(g)
	if err != nil {
		return g.ctx.operationErr(op, err)
	}
	return nil
}

// String implements fmt.Stringer with the WKT form, or a placeholder when the
// geometry cannot be written.
func (g *Geometry) String() string {
	wkt, err := g.ToWKT()
	if err != nil {
		return "<geometry unavailable>"
	}
	return wkt
}

func flatten(coords []Coord) [][2]float64 {
	out := make([][2]float64, len(coords))
	for i, c := range coords {
		out[i] = [2]float64{c.X, c.Y}
	}
	return out
}
