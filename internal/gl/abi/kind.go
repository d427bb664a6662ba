// Package abi describes the C call shapes of GL entry points: the kinds of
// their arguments and result, and the values that cross the boundary.
package abi

import (
	"fmt"
	"reflect"
	"strings"
	"unsafe"
)

// Kind is the C-level type class of one argument or result.
type Kind uint8

const (
	Void Kind = iota
	Bool      // GLboolean
	Int8      // GLbyte
	Uint8     // GLubyte
	Int16     // GLshort
	Uint16    // GLushort
	Int32     // GLint, GLsizei
	Uint32    // GLenum, GLuint, GLbitfield
	Int64     // GLint64
	Uint64    // GLuint64
	Intptr    // GLintptr, GLsizeiptr
	Float32   // GLfloat, GLclampf
	Float64   // GLdouble, GLclampd
	Pointer   // any pointer, GLsync, callbacks
	String    // const GLchar* input
	numKinds
)

var kindNames = [numKinds]string{
	Void:    "void",
	Bool:    "bool",
	Int8:    "int8",
	Uint8:   "uint8",
	Int16:   "int16",
	Uint16:  "uint16",
	Int32:   "int32",
	Uint32:  "uint32",
	Int64:   "int64",
	Uint64:  "uint64",
	Intptr:  "intptr",
	Float32: "float32",
	Float64: "float64",
	Pointer: "pointer",
	String:  "string",
}

var kindTypes = [numKinds]reflect.Type{
	Bool:    reflect.TypeFor[bool](),
	Int8:    reflect.TypeFor[int8](),
	Uint8:   reflect.TypeFor[uint8](),
	Int16:   reflect.TypeFor[int16](),
	Uint16:  reflect.TypeFor[uint16](),
	Int32:   reflect.TypeFor[int32](),
	Uint32:  reflect.TypeFor[uint32](),
	Int64:   reflect.TypeFor[int64](),
	Uint64:  reflect.TypeFor[uint64](),
	Intptr:  reflect.TypeFor[int](),
	Float32: reflect.TypeFor[float32](),
	Float64: reflect.TypeFor[float64](),
	Pointer: reflect.TypeFor[unsafe.Pointer](),
	String:  reflect.TypeFor[string](),
}

func (k Kind) Valid() bool { return k < numKinds }

func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
	return kindNames[k]
}

// GoType is the Go type a value of kind k is passed as. Void has no type.
func (k Kind) GoType() reflect.Type {
	if !k.Valid() {
		return nil
	}
	return kindTypes[k]
}

// ParseKind is the inverse of Kind.String.
func ParseKind(s string) (Kind, error) {
	s = strings.TrimSpace(s)
	for k, name := range kindNames {
		if name == s {
			return Kind(k), nil
		}
	}
	return Void, fmt.Errorf("unknown kind %q", s)
}

func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("invalid kind %d", uint8(k))
	}
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(b []byte) error {
	v, err := ParseKind(string(b))
	if err != nil {
		return err
	}
	*k = v
	return nil
}
