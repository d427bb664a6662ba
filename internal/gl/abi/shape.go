package abi

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"unsafe"
)

// ErrArgument is matched by every *ArgumentError.
var ErrArgument = errors.New("bad argument")

// ArgumentError reports arguments that do not fit a call shape.
type ArgumentError struct {
	Index int // -1 for an arity mismatch
	Want  Kind
	Got   string

	WantCount int
	GotCount  int
}

func (e *ArgumentError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("want %d arguments, got %d", e.WantCount, e.GotCount)
	}
	return fmt.Sprintf("argument %d: cannot pass %s as %s", e.Index, e.Got, e.Want)
}

func (e *ArgumentError) Is(target error) bool {
	return target == ErrArgument
}

// Func is a linked callable. Arguments have already been converted to the
// Go types of the shape it was linked with.
type Func func(args []any) Value

// Shape is the calling signature of one entry point.
type Shape struct {
	Ret  Kind   `yaml:"ret"`
	Args []Kind `yaml:"args,flow"`
}

// Sig builds a Shape.
func Sig(ret Kind, args ...Kind) Shape {
	return Shape{Ret: ret, Args: args}
}

func (s Shape) String() string {
	var b strings.Builder
	b.WriteString(s.Ret.String())
	b.WriteByte('(')
	for i, k := range s.Args {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(k.String())
	}
	b.WriteByte(')')
	return b.String()
}

// Equal reports whether s and o describe the same signature.
func (s Shape) Equal(o Shape) bool {
	if s.Ret != o.Ret || len(s.Args) != len(o.Args) {
		return false
	}
	for i := range s.Args {
		if s.Args[i] != o.Args[i] {
			return false
		}
	}
	return true
}

// Validate checks that every kind is known and no argument is void.
func (s Shape) Validate() error {
	if !s.Ret.Valid() {
		return fmt.Errorf("result: invalid kind %d", uint8(s.Ret))
	}
	for i, k := range s.Args {
		if !k.Valid() || k == Void {
			return fmt.Errorf("argument %d: invalid kind %s", i, k)
		}
	}
	return nil
}

// FuncType returns the Go func type matching s, suitable for foreign
// function registration.
func (s Shape) FuncType() reflect.Type {
	in := make([]reflect.Type, len(s.Args))
	for i, k := range s.Args {
		in[i] = k.GoType()
	}
	var out []reflect.Type
	if s.Ret != Void {
		out = []reflect.Type{s.Ret.GoType()}
	}
	return reflect.FuncOf(in, out, false)
}

// Convert checks args against s and returns them converted to the Go types
// of each argument kind.
func (s Shape) Convert(args []any) ([]any, error) {
	if len(args) != len(s.Args) {
		return nil, &ArgumentError{Index: -1, WantCount: len(s.Args), GotCount: len(args)}
	}
	out := make([]any, len(args))
	for i, k := range s.Args {
		v, ok := convert(k, args[i])
		if !ok {
			return nil, &ArgumentError{Index: i, Want: k, Got: describe(args[i])}
		}
		out[i] = v
	}
	return out, nil
}

func describe(v any) string {
	if v == nil {
		return "nil"
	}
	return reflect.TypeOf(v).String()
}

func convert(k Kind, v any) (any, bool) {
	switch k {
	case Pointer:
		return toPointer(v)
	case String:
		s, ok := v.(string)
		return s, ok
	case Bool:
		b, ok := v.(bool)
		return b, ok
	}

	if v == nil {
		return nil, false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
	case reflect.Float32, reflect.Float64:
		if k != Float32 && k != Float64 {
			return nil, false
		}
	default:
		return nil, false
	}
	return rv.Convert(k.GoType()).Interface(), true
}

func toPointer(v any) (any, bool) {
	switch p := v.(type) {
	case nil:
		return unsafe.Pointer(nil), true
	case unsafe.Pointer:
		return p, true
	case uintptr:
		// Buffer offsets (glVertexAttribPointer, glDrawElements with a bound
		// buffer) are byte offsets the driver never dereferences as Go
		// memory, so the vet warning on this conversion does not apply.
		return unsafe.Pointer(p), true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer:
		return rv.UnsafePointer(), true
	case reflect.Slice:
		if rv.Len() == 0 {
			return unsafe.Pointer(nil), true
		}
		return rv.UnsafePointer(), true
	}
	return nil, false
}
