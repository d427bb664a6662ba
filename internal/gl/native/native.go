// Package native finds GL entry points in the platform's GL library and
// makes them callable without cgo.
package native

import (
	"errors"

	"github.com/tinyrange/glbind/internal/gl/dispatch"
)

// ErrNoLibrary is returned by Open when none of the candidate libraries
// could be loaded.
var ErrNoLibrary = errors.New("no GL library could be opened")

// Chain returns a resolver that asks each resolver in turn and returns the
// first non-zero address. Nil resolvers are skipped.
func Chain(resolvers ...dispatch.Resolver) dispatch.Resolver {
	var rs []dispatch.Resolver
	for _, r := range resolvers {
		if r != nil {
			rs = append(rs, r)
		}
	}
	return func(symbol string) uintptr {
		for _, r := range rs {
			if addr := r(symbol); addr != 0 {
				return addr
			}
		}
		return 0
	}
}

// Map returns a resolver backed by a fixed symbol table.
func Map(m map[string]uintptr) dispatch.Resolver {
	return func(symbol string) uintptr { return m[symbol] }
}

// validProcAddr filters the sentinel values some Windows drivers return
// from wglGetProcAddress instead of NULL.
func validProcAddr(addr uintptr) bool {
	switch addr {
	case 0, 1, 2, 3, ^uintptr(0):
		return false
	}
	return true
}
