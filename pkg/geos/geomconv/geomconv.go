// Package geomconv bridges native-backed geometries and the pure-Go
// github.com/twpayne/go-geom types. The conversion goes through WKB, the one
// representation both sides parse and emit losslessly.
package geomconv

import (
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/wkb"

	"github.com/geoforge/go-geos/pkg/geos"
)

// ToGeom converts g into a pure-Go geometry value. The result is independent
// of the native handle and needs no freeing.
func ToGeom(g *geos.Geometry) (geom.T, error) {
	buf, err := g.ToWKB()
	if err != nil {
		return nil, err
	}
	return wkb.Unmarshal(buf)
}

// FromGeom converts a pure-Go geometry value into a native-backed Geometry on
// the given context. The caller owns the result.
func FromGeom(ctx *geos.Context, t geom.T) (*geos.Geometry, error) {
	buf, err := wkb.Marshal(t, wkb.NDR)
	if err != nil {
		return nil, err
	}
	return geos.GeomFromWKB(ctx, buf)
}
