package geos_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/geoforge/go-geos/pkg/geos"
)

func TestBinaryPredicates(t *testing.T) {
	ctx := newTestContext(t)

	poly := mustGeom(t, ctx, "POLYGON ((0 0, 10 0, 10 10, 0 10, 0 0))")
	inside := mustGeom(t, ctx, "POINT (5 5)")
	outside := mustGeom(t, ctx, "POINT (20 20)")
	edge := mustGeom(t, ctx, "POINT (0 5)")

	tests := []struct {
		name string
		fn   func() (bool, error)
		want bool
	}{
		{"contains inside", func() (bool, error) { return poly.Contains(inside) }, true},
		{"contains outside", func() (bool, error) { return poly.Contains(outside) }, false},
		{"within", func() (bool, error) { return inside.Within(poly) }, true},
		{"intersects", func() (bool, error) { return poly.Intersects(inside) }, true},
		{"disjoint", func() (bool, error) { return poly.Disjoint(outside) }, true},
		{"touches edge", func() (bool, error) { return edge.Touches(poly) }, true},
		{"covers edge", func() (bool, error) { return poly.Covers(edge) }, true},
		{"contains edge", func() (bool, error) { return poly.Contains(edge) }, false},
		{"covered by", func() (bool, error) { return inside.CoveredBy(poly) }, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.fn()
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestOverlapsAndCrosses(t *testing.T) {
	ctx := newTestContext(t)

	a := mustGeom(t, ctx, "POLYGON ((0 0, 10 0, 10 10, 0 10, 0 0))")
	b := mustGeom(t, ctx, "POLYGON ((5 5, 15 5, 15 15, 5 15, 5 5))")
	line := mustGeom(t, ctx, "LINESTRING (-5 5, 15 5)")

	overlaps, err := a.Overlaps(b)
	require.NoError(t, err)
	require.True(t, overlaps)

	crosses, err := line.Crosses(a)
	require.NoError(t, err)
	require.True(t, crosses)
}

func TestEqualsTopologically(t *testing.T) {
	ctx := newTestContext(t)

	a := mustGeom(t, ctx, "POLYGON ((0 0, 10 0, 10 10, 0 10, 0 0))")
	b := mustGeom(t, ctx, "POLYGON ((10 10, 0 10, 0 0, 10 0, 10 10))")

	eq, err := a.EqualsTopologically(b)
	require.NoError(t, err)
	require.True(t, eq)

	// Structural equality is sensitive to coordinate order.
	exact, err := a.EqualsExact(b, 0)
	require.NoError(t, err)
	require.False(t, exact)
}

func TestRelate(t *testing.T) {
	ctx := newTestContext(t)

	poly := mustGeom(t, ctx, "POLYGON ((0 0, 10 0, 10 10, 0 10, 0 0))")
	inside := mustGeom(t, ctx, "POINT (5 5)")

	matrix, err := inside.Relate(poly)
	require.NoError(t, err)
	require.Len(t, matrix, 9)
	require.Equal(t, byte('0'), matrix[0])

	within, err := inside.RelatePattern(poly, "T*F**F***")
	require.NoError(t, err)
	require.True(t, within)
}

func TestPredicateAgainstFreedGeometry(t *testing.T) {
	ctx := newTestContext(t)

	a := mustGeom(t, ctx, "POINT (0 0)")
	b, err := geos.GeomFromWKT(ctx, "POINT (1 1)")
	require.NoError(t, err)
	b.Free()

	_, err = a.Intersects(b)
	require.ErrorIs(t, err, geos.ErrClosed)
}
