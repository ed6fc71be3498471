package geos

import "github.com/geoforge/go-geos/internal/backend"

// Version is the semantic version of this wrapper, populated at build time
// via ldflags. In development it defaults to v0.0.0-dev.
var Version = "v0.0.0-dev"

// NativeVersion returns the version string reported by the linked GEOS
// library ("3.12.1-CAPI-1.18.1" style), or an empty string when the bindings
// are not built.
func NativeVersion() string {
	return backend.Version()
}
