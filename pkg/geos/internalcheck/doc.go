// Package internalcheck contains repository policy tests that inspect the
// source tree itself rather than runtime behavior.
package internalcheck
