//go:build cgo && !windows

package backend

/*
#cgo LDFLAGS: -lgeos_c
#include <stdlib.h>
#include "geos_c.h"

extern void geosbindQueryHandler(void *item, void *userdata);

static void geosbind_strtree_query(GEOSContextHandle_t handle, GEOSSTRtree *tree,
	const GEOSGeometry *g, void *userdata) {
	GEOSSTRtree_query_r(handle, tree, g, (GEOSQueryCallback)geosbindQueryHandler, userdata);
}
*/
import "C"

import "unsafe"

func treePtr(t unsafe.Pointer) *C.GEOSSTRtree {
	return (*C.GEOSSTRtree)(t)
}

// STRtreeCreate builds an STRtree with the given node capacity.
func STRtreeCreate(ctx unsafe.Pointer, nodeCapacity int) (unsafe.Pointer, error) {
	t := C.GEOSSTRtree_create_r(ctxHandle(ctx), C.size_t(nodeCapacity))
	if t == nil {
		return nil, ErrException
	}
	return unsafe.Pointer(t), nil
}

func STRtreeDestroy(ctx, t unsafe.Pointer) {
	if t != nil {
		C.GEOSSTRtree_destroy_r(ctxHandle(ctx), treePtr(t))
	}
}

// STRtreeInsert stores item (an opaque caller-side index) under the envelope
// of g. The tree does not take ownership of g.
func STRtreeInsert(ctx, t, g unsafe.Pointer, item uintptr) {
	C.GEOSSTRtree_insert_r(ctxHandle(ctx), treePtr(t), geomPtr(g), unsafe.Pointer(item))
}

// STRtreeQuery returns the items whose envelopes intersect the envelope of g.
// Hits are collected through the exported query callback via the registry.
func STRtreeQuery(ctx, t, g unsafe.Pointer) []uintptr {
	q := &queryState{}
	key, userdata := regPut(q)
	defer regDel(key)
	C.geosbind_strtree_query(ctxHandle(ctx), treePtr(t), geomPtr(g), userdata)
	return q.hits
}
