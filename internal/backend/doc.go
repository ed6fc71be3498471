// Package backend hosts the thin cgo layer that links the Go API to the
// native GEOS library (libgeos_c). The real implementation lives behind build
// tags so that the rest of the repository can compile without cgo.
//
// Every function takes the raw GEOS context handle as an unsafe.Pointer and
// returns raw native pointers. Ownership and lifetime tracking live one layer
// up, in pkg/geos; this package only translates calls and copies output
// buffers into Go-owned values.
package backend
