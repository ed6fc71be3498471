//go:build cgo && !windows

package backend

/*
#cgo LDFLAGS: -lgeos_c
#include <stdlib.h>
#include "geos_c.h"

extern void geosbindErrorHandler(char *message, void *userdata);
extern void geosbindNoticeHandler(char *message, void *userdata);

// geosbind_init creates a reentrant GEOS context and points both message
// handlers at the Go callbacks, with the registry key as userdata. GEOS
// formats the message before invoking handlers registered with userdata, so
// the callbacks receive the final text.
static GEOSContextHandle_t geosbind_init(void *userdata) {
	GEOSContextHandle_t handle = GEOS_init_r();
	if (handle == NULL) {
		return NULL;
	}
	GEOSContext_setErrorMessageHandler_r(handle, (GEOSMessageHandler_r)geosbindErrorHandler, userdata);
	GEOSContext_setNoticeMessageHandler_r(handle, (GEOSMessageHandler_r)geosbindNoticeHandler, userdata);
	return handle;
}
*/
import "C"

import (
	"errors"
	"unsafe"
)

// ContextCreate initializes a reentrant GEOS context with error and notice
// handlers wired to the registry. It returns the raw context handle and the
// registry key for the captured message state.
func ContextCreate() (unsafe.Pointer, uintptr, error) {
	key, userdata := regPut(&ctxState{})
	handle := C.geosbind_init(userdata)
	if handle == nil {
		regDel(key)
		return nil, 0, errors.New("GEOS_init_r returned null")
	}
	return unsafe.Pointer(handle), key, nil
}

// ContextDestroy finishes the GEOS context and drops its registry entry.
func ContextDestroy(ctx unsafe.Pointer, state uintptr) {
	if ctx != nil {
		C.GEOS_finish_r(C.GEOSContextHandle_t(ctx))
	}
	regDel(state)
}

// Version reports the version string of the linked GEOS library.
func Version() string {
	return C.GoString(C.GEOSversion())
}

// geosFree releases a buffer allocated by GEOS on the given context.
func geosFree(h C.GEOSContextHandle_t, p unsafe.Pointer) {
	C.GEOSFree_r(h, p)
}

// copyString copies a GEOS-owned C string into a Go string and frees the
// native buffer. A null pointer becomes ("", ErrException).
func copyString(h C.GEOSContextHandle_t, s *C.char) (string, error) {
	if s == nil {
		return "", ErrException
	}
	out := C.GoString(s)
	geosFree(h, unsafe.Pointer(s))
	return out, nil
}

func ctxHandle(ctx unsafe.Pointer) C.GEOSContextHandle_t {
	return C.GEOSContextHandle_t(ctx)
}

func geomPtr(g unsafe.Pointer) *C.GEOSGeometry {
	return (*C.GEOSGeometry)(g)
}
