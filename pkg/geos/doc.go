// Package geos exposes a memory-safe Go API over the GEOS geometry engine
// (libgeos_c). Geometry construction, spatial predicates, topology operations
// and WKT/WKB/GeoJSON serialization are all performed by the native library;
// this package tracks ownership of the native handles, threads a shared
// context through every call for error and notice capture, and translates the
// library's null-pointer and sentinel conventions into typed errors.
//
// Every wrapper owns exactly one native pointer and releases it exactly once,
// either through an explicit Free/Close call or through a finalizer. All
// wrappers created from one Context share it and must be confined to a single
// goroutine at a time; independent goroutines should use independent
// contexts.
//
// The package compiles without cgo; in that configuration every operation
// reports ErrNotBuilt.
package geos
