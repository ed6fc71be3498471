package geos_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/geoforge/go-geos/pkg/geos"
)

func TestWKTWriterSettings(t *testing.T) {
	ctx := newTestContext(t)

	g := mustGeom(t, ctx, "POINT (2.5 2.5)")

	w, err := geos.NewWKTWriter(ctx)
	require.NoError(t, err)
	defer w.Close()

	out, err := w.Write(g)
	require.NoError(t, err)
	require.Equal(t, "POINT (2.5 2.5)", out)

	require.NoError(t, w.SetRoundingPrecision(1))
	out, err = w.Write(g)
	require.NoError(t, err)
	require.Equal(t, "POINT (2.5 2.5)", out)

	require.NoError(t, w.SetRoundingPrecision(0))
	out, err = w.Write(g)
	require.NoError(t, err)
	require.Equal(t, "POINT (2 2)", out)
}

func TestWKBRoundTrip(t *testing.T) {
	ctx := newTestContext(t)

	g := mustGeom(t, ctx, "POLYGON ((0 0, 10 0, 10 10, 0 10, 0 0))")

	buf, err := g.ToWKB()
	require.NoError(t, err)
	require.NotEmpty(t, buf)

	back, err := geos.GeomFromWKB(ctx, buf)
	require.NoError(t, err)
	defer back.Free()

	eq, err := g.EqualsExact(back, 0)
	require.NoError(t, err)
	require.True(t, eq)
}

func TestWKBWriterHexAndByteOrder(t *testing.T) {
	ctx := newTestContext(t)

	g := mustGeom(t, ctx, "POINT (1 2)")

	w, err := geos.NewWKBWriter(ctx)
	require.NoError(t, err)
	defer w.Close()
	require.NoError(t, w.SetByteOrder(geos.LittleEndian))

	hex, err := w.WriteHex(g)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(hex, "01"))

	r, err := geos.NewWKBReader(ctx)
	require.NoError(t, err)
	defer r.Close()

	back, err := r.ReadHex(hex)
	require.NoError(t, err)
	defer back.Free()

	eq, err := g.EqualsExact(back, 0)
	require.NoError(t, err)
	require.True(t, eq)
}

func TestWKBWriterIncludeSRID(t *testing.T) {
	ctx := newTestContext(t)

	g := mustGeom(t, ctx, "POINT (1 2)")
	require.NoError(t, g.SetSRID(4326))

	w, err := geos.NewWKBWriter(ctx)
	require.NoError(t, err)
	defer w.Close()
	require.NoError(t, w.SetIncludeSRID(true))

	buf, err := w.Write(g)
	require.NoError(t, err)

	back, err := geos.GeomFromWKB(ctx, buf)
	require.NoError(t, err)
	defer back.Free()
	require.Equal(t, 4326, back.SRID())
}

func TestGeoJSONWriter(t *testing.T) {
	ctx := newTestContext(t)

	g := mustGeom(t, ctx, "POINT (2.5 2.5)")

	w, err := geos.NewGeoJSONWriter(ctx)
	require.NoError(t, err)
	defer w.Close()

	out, err := w.Write(g, -1)
	require.NoError(t, err)
	require.JSONEq(t, `{"type":"Point","coordinates":[2.5,2.5]}`, out)

	pretty, err := w.Write(g, 2)
	require.NoError(t, err)
	require.JSONEq(t, `{"type":"Point","coordinates":[2.5,2.5]}`, pretty)
	require.Contains(t, pretty, "\n")
}

func TestGeoJSONRoundTrip(t *testing.T) {
	ctx := newTestContext(t)

	g := mustGeom(t, ctx, "POLYGON ((0 0, 10 0, 10 10, 0 10, 0 0))")

	doc, err := g.ToGeoJSON()
	require.NoError(t, err)

	back, err := geos.GeomFromGeoJSON(ctx, doc)
	require.NoError(t, err)
	defer back.Free()

	eq, err := g.EqualsTopologically(back)
	require.NoError(t, err)
	require.True(t, eq)
}

func TestReaderErrors(t *testing.T) {
	ctx := newTestContext(t)

	_, err := geos.GeomFromWKT(ctx, "POINT (a b)")
	require.ErrorIs(t, err, geos.ErrOperation)

	_, err = geos.GeomFromWKB(ctx, []byte{0xde, 0xad, 0xbe, 0xef})
	require.ErrorIs(t, err, geos.ErrOperation)

	_, err = geos.GeomFromGeoJSON(ctx, `{"type":"Nope"}`)
	require.ErrorIs(t, err, geos.ErrOperation)
}

func TestReaderCloseIdempotent(t *testing.T) {
	ctx := newTestContext(t)

	r, err := geos.NewWKTReader(ctx)
	require.NoError(t, err)
	r.Close()
	r.Close()

	_, err = r.Read("POINT (0 0)")
	require.ErrorIs(t, err, geos.ErrClosed)
}

func TestWriterSettersAfterClose(t *testing.T) {
	ctx := newTestContext(t)

	wkt, err := geos.NewWKTWriter(ctx)
	require.NoError(t, err)
	wkt.Close()

	require.ErrorIs(t, wkt.SetTrim(false), geos.ErrClosed)
	require.ErrorIs(t, wkt.SetRoundingPrecision(2), geos.ErrClosed)
	require.ErrorIs(t, wkt.SetOutputDimension(3), geos.ErrClosed)

	wkb, err := geos.NewWKBWriter(ctx)
	require.NoError(t, err)
	wkb.Close()

	require.ErrorIs(t, wkb.SetByteOrder(geos.BigEndian), geos.ErrClosed)
	require.ErrorIs(t, wkb.SetIncludeSRID(true), geos.ErrClosed)
}
