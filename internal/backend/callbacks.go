//go:build cgo && !windows

package backend

// #include <stdlib.h>
import "C"

import "unsafe"

//export geosbindErrorHandler
func geosbindErrorHandler(message *C.char, userdata unsafe.Pointer) {
	v, ok := regGet(userdata)
	if !ok {
		return
	}
	if s, ok := v.(*ctxState); ok {
		s.setError(C.GoString(message))
	}
}

//export geosbindNoticeHandler
func geosbindNoticeHandler(message *C.char, userdata unsafe.Pointer) {
	v, ok := regGet(userdata)
	if !ok {
		return
	}
	if s, ok := v.(*ctxState); ok {
		s.notify(C.GoString(message))
	}
}

//export geosbindQueryHandler
func geosbindQueryHandler(item unsafe.Pointer, userdata unsafe.Pointer) {
	v, ok := regGet(userdata)
	if !ok {
		return
	}
	if q, ok := v.(*queryState); ok {
		q.hits = append(q.hits, uintptr(item))
	}
}
