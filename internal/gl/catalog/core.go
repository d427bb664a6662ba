package catalog

import (
	"sync"

	"github.com/tinyrange/glbind/internal/gl/abi"
	"github.com/tinyrange/glbind/internal/gl/version"
)

// Kinds named after the GL typedefs they stand for.
const (
	tVoid     = abi.Void
	tBool     = abi.Bool
	tUbyte    = abi.Uint8
	tUshort   = abi.Uint16
	tEnum     = abi.Uint32
	tBitfield = abi.Uint32
	tUint     = abi.Uint32
	tInt      = abi.Int32
	tSizei    = abi.Int32
	tInt64    = abi.Int64
	tUint64   = abi.Uint64
	tIntptr   = abi.Intptr
	tSizeiptr = abi.Intptr
	tFloat    = abi.Float32
	tDouble   = abi.Float64
	tPtr      = abi.Pointer
	tSync     = abi.Pointer
	tStr      = abi.String
)

func fn(name string, ret abi.Kind, args ...abi.Kind) EntrySpec {
	return EntrySpec{Name: name, Shape: abi.Sig(ret, args...)}
}

func tier(level string, entries ...EntrySpec) TierSpec {
	return TierSpec{Level: version.MustParse(level), Entries: entries}
}

var core = sync.OnceValue(func() *Catalog {
	var specs []TierSpec
	specs = append(specs, gl1x()...)
	specs = append(specs, gl2x()...)
	specs = append(specs, gl3x()...)
	specs = append(specs, gl4x()...)
	c, err := New("gl", specs...)
	if err != nil {
		panic(err)
	}
	return c
})

// Core returns the built-in desktop OpenGL catalog, covering core and
// compatibility entry points from 1.0 through 4.6.
func Core() *Catalog {
	return core()
}
