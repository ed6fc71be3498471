package geos_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/geoforge/go-geos/pkg/geos"
)

func TestPreparedPredicates(t *testing.T) {
	ctx := newTestContext(t)

	poly := mustGeom(t, ctx, "POLYGON ((0 0, 10 0, 10 10, 0 10, 0 0))")
	prep, err := poly.Prepared()
	require.NoError(t, err)
	defer prep.Free()

	inside := mustGeom(t, ctx, "POINT (5 5)")
	edge := mustGeom(t, ctx, "POINT (0 5)")
	outside := mustGeom(t, ctx, "POINT (20 20)")

	contains, err := prep.Contains(inside)
	require.NoError(t, err)
	require.True(t, contains)

	contains, err = prep.Contains(edge)
	require.NoError(t, err)
	require.False(t, contains)

	properly, err := prep.ContainsProperly(edge)
	require.NoError(t, err)
	require.False(t, properly)

	covers, err := prep.Covers(edge)
	require.NoError(t, err)
	require.True(t, covers)

	intersects, err := prep.Intersects(outside)
	require.NoError(t, err)
	require.False(t, intersects)

	disjoint, err := prep.Disjoint(outside)
	require.NoError(t, err)
	require.True(t, disjoint)
}

func TestPreparedRepeatedUse(t *testing.T) {
	ctx := newTestContext(t)

	poly := mustGeom(t, ctx, "POLYGON ((0 0, 100 0, 100 100, 0 100, 0 0))")
	prep, err := poly.Prepared()
	require.NoError(t, err)
	defer prep.Free()

	hits := 0
	for x := -10; x <= 110; x += 10 {
		pt, err := geos.NewPoint(ctx, geos.Coord{X: float64(x), Y: 50})
		require.NoError(t, err)
		inside, err := prep.ContainsProperly(pt)
		require.NoError(t, err)
		if inside {
			hits++
		}
		pt.Free()
	}
	require.Equal(t, 9, hits)
}

func TestPreparedFreeIdempotent(t *testing.T) {
	ctx := newTestContext(t)

	poly := mustGeom(t, ctx, "POLYGON ((0 0, 1 0, 1 1, 0 1, 0 0))")
	prep, err := poly.Prepared()
	require.NoError(t, err)

	prep.Free()
	prep.Free()

	pt := mustGeom(t, ctx, "POINT (0.5 0.5)")
	_, err = prep.Contains(pt)
	require.ErrorIs(t, err, geos.ErrClosed)

	// The source geometry remains usable.
	area, err := poly.Area()
	require.NoError(t, err)
	require.InDelta(t, 1.0, area, 1e-9)
}
