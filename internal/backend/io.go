//go:build cgo && !windows

package backend

/*
#cgo LDFLAGS: -lgeos_c
#include <stdlib.h>
#include "geos_c.h"
*/
import "C"

import "unsafe"

// WKT

func WKTReaderCreate(ctx unsafe.Pointer) (unsafe.Pointer, error) {
	p := C.GEOSWKTReader_create_r(ctxHandle(ctx))
	if p == nil {
		return nil, ErrException
	}
	return unsafe.Pointer(p), nil
}

func WKTReaderDestroy(ctx, r unsafe.Pointer) {
	C.GEOSWKTReader_destroy_r(ctxHandle(ctx), (*C.GEOSWKTReader)(r))
}

func WKTReaderRead(ctx, r unsafe.Pointer, wkt string) (unsafe.Pointer, error) {
	cWKT := C.CString(wkt)
	defer C.free(unsafe.Pointer(cWKT))
	p := C.GEOSWKTReader_read_r(ctxHandle(ctx), (*C.GEOSWKTReader)(r), cWKT)
	if p == nil {
		return nil, ErrException
	}
	return unsafe.Pointer(p), nil
}

func WKTWriterCreate(ctx unsafe.Pointer) (unsafe.Pointer, error) {
	p := C.GEOSWKTWriter_create_r(ctxHandle(ctx))
	if p == nil {
		return nil, ErrException
	}
	return unsafe.Pointer(p), nil
}

func WKTWriterDestroy(ctx, w unsafe.Pointer) {
	C.GEOSWKTWriter_destroy_r(ctxHandle(ctx), (*C.GEOSWKTWriter)(w))
}

func WKTWriterWrite(ctx, w, g unsafe.Pointer) (string, error) {
	h := ctxHandle(ctx)
	return copyString(h, C.GEOSWKTWriter_write_r(h, (*C.GEOSWKTWriter)(w), geomPtr(g)))
}

func WKTWriterSetTrim(ctx, w unsafe.Pointer, trim bool) {
	var c C.char
	if trim {
		c = 1
	}
	C.GEOSWKTWriter_setTrim_r(ctxHandle(ctx), (*C.GEOSWKTWriter)(w), c)
}

func WKTWriterSetRoundingPrecision(ctx, w unsafe.Pointer, precision int) {
	C.GEOSWKTWriter_setRoundingPrecision_r(ctxHandle(ctx), (*C.GEOSWKTWriter)(w), C.int(precision))
}

func WKTWriterSetOutputDimension(ctx, w unsafe.Pointer, dim int) {
	C.GEOSWKTWriter_setOutputDimension_r(ctxHandle(ctx), (*C.GEOSWKTWriter)(w), C.int(dim))
}

// WKB

func WKBReaderCreate(ctx unsafe.Pointer) (unsafe.Pointer, error) {
	p := C.GEOSWKBReader_create_r(ctxHandle(ctx))
	if p == nil {
		return nil, ErrException
	}
	return unsafe.Pointer(p), nil
}

func WKBReaderDestroy(ctx, r unsafe.Pointer) {
	C.GEOSWKBReader_destroy_r(ctxHandle(ctx), (*C.GEOSWKBReader)(r))
}

func WKBReaderRead(ctx, r unsafe.Pointer, wkb []byte) (unsafe.Pointer, error) {
	if len(wkb) == 0 {
		return nil, ErrException
	}
	p := C.GEOSWKBReader_read_r(ctxHandle(ctx), (*C.GEOSWKBReader)(r),
		(*C.uchar)(unsafe.Pointer(&wkb[0])), C.size_t(len(wkb)))
	if p == nil {
		return nil, ErrException
	}
	return unsafe.Pointer(p), nil
}

func WKBReaderReadHex(ctx, r unsafe.Pointer, hex string) (unsafe.Pointer, error) {
	if len(hex) == 0 {
		return nil, ErrException
	}
	cHex := C.CString(hex)
	defer C.free(unsafe.Pointer(cHex))
	p := C.GEOSWKBReader_readHEX_r(ctxHandle(ctx), (*C.GEOSWKBReader)(r),
		(*C.uchar)(unsafe.Pointer(cHex)), C.size_t(len(hex)))
	if p == nil {
		return nil, ErrException
	}
	return unsafe.Pointer(p), nil
}

func WKBWriterCreate(ctx unsafe.Pointer) (unsafe.Pointer, error) {
	p := C.GEOSWKBWriter_create_r(ctxHandle(ctx))
	if p == nil {
		return nil, ErrException
	}
	return unsafe.Pointer(p), nil
}

func WKBWriterDestroy(ctx, w unsafe.Pointer) {
	C.GEOSWKBWriter_destroy_r(ctxHandle(ctx), (*C.GEOSWKBWriter)(w))
}

func WKBWriterWrite(ctx, w, g unsafe.Pointer) ([]byte, error) {
	h := ctxHandle(ctx)
	var size C.size_t
	buf := C.GEOSWKBWriter_write_r(h, (*C.GEOSWKBWriter)(w), geomPtr(g), &size)
	if buf == nil {
		return nil, ErrException
	}
	out := C.GoBytes(unsafe.Pointer(buf), C.int(size))
	geosFree(h, unsafe.Pointer(buf))
	return out, nil
}

func WKBWriterWriteHex(ctx, w, g unsafe.Pointer) (string, error) {
	h := ctxHandle(ctx)
	var size C.size_t
	buf := C.GEOSWKBWriter_writeHEX_r(h, (*C.GEOSWKBWriter)(w), geomPtr(g), &size)
	if buf == nil {
		return "", ErrException
	}
	out := C.GoStringN((*C.char)(unsafe.Pointer(buf)), C.int(size))
	geosFree(h, unsafe.Pointer(buf))
	return out, nil
}

func WKBWriterSetByteOrder(ctx, w unsafe.Pointer, order int) {
	C.GEOSWKBWriter_setByteOrder_r(ctxHandle(ctx), (*C.GEOSWKBWriter)(w), C.int(order))
}

func WKBWriterSetIncludeSRID(ctx, w unsafe.Pointer, include bool) {
	var c C.char
	if include {
		c = 1
	}
	C.GEOSWKBWriter_setIncludeSRID_r(ctxHandle(ctx), (*C.GEOSWKBWriter)(w), c)
}

// GeoJSON (GEOS >= 3.10)

func GeoJSONReaderCreate(ctx unsafe.Pointer) (unsafe.Pointer, error) {
	p := C.GEOSGeoJSONReader_create_r(ctxHandle(ctx))
	if p == nil {
		return nil, ErrException
	}
	return unsafe.Pointer(p), nil
}

func GeoJSONReaderDestroy(ctx, r unsafe.Pointer) {
	C.GEOSGeoJSONReader_destroy_r(ctxHandle(ctx), (*C.GEOSGeoJSONReader)(r))
}

func GeoJSONReaderRead(ctx, r unsafe.Pointer, geojson string) (unsafe.Pointer, error) {
	cJSON := C.CString(geojson)
	defer C.free(unsafe.Pointer(cJSON))
	p := C.GEOSGeoJSONReader_readGeometry_r(ctxHandle(ctx), (*C.GEOSGeoJSONReader)(r), cJSON)
	if p == nil {
		return nil, ErrException
	}
	return unsafe.Pointer(p), nil
}

func GeoJSONWriterCreate(ctx unsafe.Pointer) (unsafe.Pointer, error) {
	p := C.GEOSGeoJSONWriter_create_r(ctxHandle(ctx))
	if p == nil {
		return nil, ErrException
	}
	return unsafe.Pointer(p), nil
}

func GeoJSONWriterDestroy(ctx, w unsafe.Pointer) {
	C.GEOSGeoJSONWriter_destroy_r(ctxHandle(ctx), (*C.GEOSGeoJSONWriter)(w))
}

func GeoJSONWriterWrite(ctx, w, g unsafe.Pointer, indent int) (string, error) {
	h := ctxHandle(ctx)
	return copyString(h, C.GEOSGeoJSONWriter_writeGeometry_r(h, (*C.GEOSGeoJSONWriter)(w), geomPtr(g), C.int(indent)))
}
