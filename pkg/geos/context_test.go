package geos_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/geoforge/go-geos/pkg/geos"
)

// newTestContext skips the test when the native bindings are not linked in.
func newTestContext(t *testing.T, opts ...geos.ContextOption) *geos.Context {
	t.Helper()
	ctx, err := geos.NewContext(opts...)
	if errors.Is(err, geos.ErrNotBuilt) {
		t.Skip("native GEOS bindings not built")
	}
	require.NoError(t, err)
	t.Cleanup(func() { _ = ctx.Close() })
	return ctx
}

func TestNewContext(t *testing.T) {
	ctx := newTestContext(t)
	require.NotNil(t, ctx)
	require.NotEmpty(t, geos.NativeVersion())
}

func TestContextCloseIdempotent(t *testing.T) {
	ctx := newTestContext(t)
	require.NoError(t, ctx.Close())
	require.NoError(t, ctx.Close())
}

func TestClosedContextConstruction(t *testing.T) {
	ctx := newTestContext(t)
	require.NoError(t, ctx.Close())

	_, err := geos.GeomFromWKT(ctx, "POINT (0 0)")
	require.Error(t, err)
	require.ErrorIs(t, err, geos.ErrClosed)

	_, err = geos.NewPoint(ctx, geos.Coord{X: 1, Y: 2})
	require.ErrorIs(t, err, geos.ErrClosed)

	_, err = geos.NewGeoJSONWriter(ctx)
	require.ErrorIs(t, err, geos.ErrClosed)
}

func TestParseErrorCarriesNativeMessage(t *testing.T) {
	ctx := newTestContext(t)

	_, err := geos.GeomFromWKT(ctx, "NOT A GEOMETRY")
	require.Error(t, err)
	require.ErrorIs(t, err, geos.ErrOperation)

	var opErr *geos.Error
	require.ErrorAs(t, err, &opErr)
	require.Equal(t, "WKTReader.Read", opErr.Op)
}

func TestSetNoticeHandler(t *testing.T) {
	var notices []string
	ctx := newTestContext(t, geos.WithNoticeHandler(func(msg string) {
		notices = append(notices, msg)
	}))

	// Notices are emitted at the native library's discretion; the handler
	// swap itself must not disturb normal operation.
	ctx.SetNoticeHandler(nil)

	g, err := geos.GeomFromWKT(ctx, "POINT (1 1)")
	require.NoError(t, err)
	defer g.Free()
}

func TestGeometryUseAfterFree(t *testing.T) {
	ctx := newTestContext(t)

	g, err := geos.GeomFromWKT(ctx, "POINT (1 1)")
	require.NoError(t, err)
	g.Free()
	g.Free() // second release is a no-op

	_, err = g.Area()
	require.ErrorIs(t, err, geos.ErrClosed)

	_, err = g.ToWKT()
	require.ErrorIs(t, err, geos.ErrClosed)
}
