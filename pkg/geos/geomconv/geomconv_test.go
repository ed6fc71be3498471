package geomconv_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/twpayne/go-geom"

	"github.com/geoforge/go-geos/pkg/geos"
	"github.com/geoforge/go-geos/pkg/geos/geomconv"
)

func newTestContext(t *testing.T) *geos.Context {
	t.Helper()
	ctx, err := geos.NewContext()
	if errors.Is(err, geos.ErrNotBuilt) {
		t.Skip("native library not linked")
	}
	require.NoError(t, err)
	t.Cleanup(func() { _ = ctx.Close() })
	return ctx
}

func TestToGeom(t *testing.T) {
	ctx := newTestContext(t)

	g, err := geos.GeomFromWKT(ctx, "POINT (1 2)")
	require.NoError(t, err)
	defer g.Free()

	got, err := geomconv.ToGeom(g)
	require.NoError(t, err)

	pt, ok := got.(*geom.Point)
	require.True(t, ok)
	require.Equal(t, []float64{1, 2}, pt.FlatCoords())
}

func TestFromGeom(t *testing.T) {
	ctx := newTestContext(t)

	poly, err := geom.NewPolygon(geom.XY).SetCoords([][]geom.Coord{
		{{0, 0}, {4, 0}, {4, 4}, {0, 4}, {0, 0}},
	})
	require.NoError(t, err)

	g, err := geomconv.FromGeom(ctx, poly)
	require.NoError(t, err)
	defer g.Free()

	area, err := g.Area()
	require.NoError(t, err)
	require.InDelta(t, 16.0, area, 1e-9)
}

func TestRoundTrip(t *testing.T) {
	ctx := newTestContext(t)

	orig, err := geos.GeomFromWKT(ctx, "LINESTRING (0 0, 1 1, 2 0)")
	require.NoError(t, err)
	defer orig.Free()

	mid, err := geomconv.ToGeom(orig)
	require.NoError(t, err)

	back, err := geomconv.FromGeom(ctx, mid)
	require.NoError(t, err)
	defer back.Free()

	same, err := orig.EqualsExact(back, 0)
	require.NoError(t, err)
	require.True(t, same)
}
