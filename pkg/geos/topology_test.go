package geos_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/geoforge/go-geos/pkg/geos"
)

func TestIntersectionAndUnion(t *testing.T) {
	ctx := newTestContext(t)

	a := mustGeom(t, ctx, "POLYGON ((0 0, 10 0, 10 10, 0 10, 0 0))")
	b := mustGeom(t, ctx, "POLYGON ((5 5, 15 5, 15 15, 5 15, 5 5))")

	inter, err := a.Intersection(b)
	require.NoError(t, err)
	defer inter.Free()

	area, err := inter.Area()
	require.NoError(t, err)
	require.InDelta(t, 25.0, area, 1e-9)

	union, err := a.Union(b)
	require.NoError(t, err)
	defer union.Free()

	area, err = union.Area()
	require.NoError(t, err)
	require.InDelta(t, 175.0, area, 1e-9)
}

func TestDifferenceAndSymDifference(t *testing.T) {
	ctx := newTestContext(t)

	a := mustGeom(t, ctx, "POLYGON ((0 0, 10 0, 10 10, 0 10, 0 0))")
	b := mustGeom(t, ctx, "POLYGON ((5 5, 15 5, 15 15, 5 15, 5 5))")

	diff, err := a.Difference(b)
	require.NoError(t, err)
	defer diff.Free()

	area, err := diff.Area()
	require.NoError(t, err)
	require.InDelta(t, 75.0, area, 1e-9)

	sym, err := a.SymDifference(b)
	require.NoError(t, err)
	defer sym.Free()

	area, err = sym.Area()
	require.NoError(t, err)
	require.InDelta(t, 150.0, area, 1e-9)
}

func TestUnaryUnion(t *testing.T) {
	ctx := newTestContext(t)

	mp := mustGeom(t, ctx, "MULTIPOLYGON (((0 0, 10 0, 10 10, 0 10, 0 0)), ((5 5, 15 5, 15 15, 5 15, 5 5)))")
	dissolved, err := mp.UnaryUnion()
	require.NoError(t, err)
	defer dissolved.Free()

	area, err := dissolved.Area()
	require.NoError(t, err)
	require.InDelta(t, 175.0, area, 1e-9)

	typ, err := dissolved.Type()
	require.NoError(t, err)
	require.Equal(t, "Polygon", typ)
}

func TestBuffer(t *testing.T) {
	ctx := newTestContext(t)

	pt := mustGeom(t, ctx, "POINT (0 0)")
	buf, err := pt.Buffer(2, geos.DefaultQuadSegs)
	require.NoError(t, err)
	defer buf.Free()

	contains, err := buf.Contains(pt)
	require.NoError(t, err)
	require.True(t, contains)

	area, err := buf.Area()
	require.NoError(t, err)
	// Segment approximation stays a little under pi*r^2.
	require.Greater(t, area, 12.0)
	require.Less(t, area, 12.6)
}

func TestConvexHullEnvelopeBoundary(t *testing.T) {
	ctx := newTestContext(t)

	mp := mustGeom(t, ctx, "MULTIPOINT ((0 0), (4 0), (4 4), (0 4), (2 2))")

	hull, err := mp.ConvexHull()
	require.NoError(t, err)
	defer hull.Free()
	area, err := hull.Area()
	require.NoError(t, err)
	require.InDelta(t, 16.0, area, 1e-9)

	env, err := mp.Envelope()
	require.NoError(t, err)
	defer env.Free()
	area, err = env.Area()
	require.NoError(t, err)
	require.InDelta(t, 16.0, area, 1e-9)

	poly := mustGeom(t, ctx, "POLYGON ((0 0, 1 0, 1 1, 0 1, 0 0))")
	boundary, err := poly.Boundary()
	require.NoError(t, err)
	defer boundary.Free()
	length, err := boundary.Length()
	require.NoError(t, err)
	require.InDelta(t, 4.0, length, 1e-9)
}

func TestCentroidAndPointOnSurface(t *testing.T) {
	ctx := newTestContext(t)

	poly := mustGeom(t, ctx, "POLYGON ((0 0, 10 0, 10 10, 0 10, 0 0))")

	centroid, err := poly.Centroid()
	require.NoError(t, err)
	defer centroid.Free()
	wkt, err := centroid.ToWKT()
	require.NoError(t, err)
	require.Equal(t, "POINT (5 5)", wkt)

	pos, err := poly.PointOnSurface()
	require.NoError(t, err)
	defer pos.Free()
	within, err := pos.Within(poly)
	require.NoError(t, err)
	require.True(t, within)
}

func TestSimplify(t *testing.T) {
	ctx := newTestContext(t)

	line := mustGeom(t, ctx, "LINESTRING (0 0, 1 0.01, 2 -0.01, 3 0, 4 0)")

	simple, err := line.Simplify(0.5)
	require.NoError(t, err)
	defer simple.Free()
	n, err := simple.NumCoordinates()
	require.NoError(t, err)
	require.Equal(t, 2, n)

	preserved, err := line.TopologyPreserveSimplify(0.5)
	require.NoError(t, err)
	defer preserved.Free()
	n, err = preserved.NumCoordinates()
	require.NoError(t, err)
	require.LessOrEqual(t, n, 5)
}

func TestMakeValid(t *testing.T) {
	ctx := newTestContext(t)

	bowtie := mustGeom(t, ctx, "POLYGON ((0 0, 2 2, 2 0, 0 2, 0 0))")
	repaired, err := bowtie.MakeValid()
	require.NoError(t, err)
	defer repaired.Free()

	ok, err := repaired.IsValid()
	require.NoError(t, err)
	require.True(t, ok)
}

func TestReverse(t *testing.T) {
	ctx := newTestContext(t)

	line := mustGeom(t, ctx, "LINESTRING (0 0, 1 1, 2 2)")
	rev, err := line.Reverse()
	require.NoError(t, err)
	defer rev.Free()

	wkt, err := rev.ToWKT()
	require.NoError(t, err)
	require.Equal(t, "LINESTRING (2 2, 1 1, 0 0)", wkt)
}

func TestDistances(t *testing.T) {
	ctx := newTestContext(t)

	a := mustGeom(t, ctx, "POINT (0 0)")
	b := mustGeom(t, ctx, "POINT (3 4)")

	d, err := a.Distance(b)
	require.NoError(t, err)
	require.InDelta(t, 5.0, d, 1e-9)

	la := mustGeom(t, ctx, "LINESTRING (0 0, 10 0)")
	lb := mustGeom(t, ctx, "LINESTRING (0 1, 10 1)")
	hd, err := la.HausdorffDistance(lb)
	require.NoError(t, err)
	require.InDelta(t, 1.0, hd, 1e-9)
}
