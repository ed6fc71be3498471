// Package logging provides the slog-backed logger used by the GEOS wrapper,
// primarily to surface native notice messages.
package logging
