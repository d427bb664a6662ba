package abi

import (
	"fmt"
	"math"
	"unsafe"
)

// Value is the result of a call, tagged with its kind. The zero Value of a
// kind is what unsupported entry points return.
type Value struct {
	kind Kind
	bits uint64
	ptr  unsafe.Pointer
	str  string
}

// Zero returns the zero value of kind k.
func Zero(k Kind) Value {
	return Value{kind: k}
}

// ValueOf wraps v, which must hold the Go type of kind k (see Kind.GoType).
func ValueOf(k Kind, v any) Value {
	val := Value{kind: k}
	switch x := v.(type) {
	case nil:
	case bool:
		if x {
			val.bits = 1
		}
	case int8:
		val.bits = uint64(x)
	case uint8:
		val.bits = uint64(x)
	case int16:
		val.bits = uint64(x)
	case uint16:
		val.bits = uint64(x)
	case int32:
		val.bits = uint64(x)
	case uint32:
		val.bits = uint64(x)
	case int64:
		val.bits = uint64(x)
	case uint64:
		val.bits = x
	case int:
		val.bits = uint64(x)
	case uintptr:
		val.bits = uint64(x)
	case float32:
		val.bits = uint64(math.Float32bits(x))
	case float64:
		val.bits = math.Float64bits(x)
	case unsafe.Pointer:
		val.ptr = x
	case string:
		val.str = x
	default:
		panic(fmt.Sprintf("abi: cannot wrap %T as %s", v, k))
	}
	return val
}

func (v Value) Kind() Kind { return v.kind }

// IsZero reports whether v holds the zero value of its kind.
func (v Value) IsZero() bool { return v.bits == 0 && v.ptr == nil && v.str == "" }

func (v Value) Bool() bool { return v.bits != 0 }
func (v Value) Int32() int32 { return int32(v.bits) }
func (v Value) Uint32() uint32 { return uint32(v.bits) }
func (v Value) Int64() int64 { return int64(v.bits) }
func (v Value) Uint64() uint64 { return v.bits }
func (v Value) Int() int { return int(v.bits) }
func (v Value) Float32() float32 { return math.Float32frombits(uint32(v.bits)) }
func (v Value) Float64() float64 { return math.Float64frombits(v.bits) }
func (v Value) Ptr() unsafe.Pointer { return v.ptr }

// Str returns the Go string held by a String value.
func (v Value) Str() string { return v.str }

// CString reads the NUL terminated string a Pointer value refers to, as
// returned by glGetString. A nil pointer yields "".
func (v Value) CString() string {
	if v.ptr == nil {
		return ""
	}
	n := 0
	for *(*byte)(unsafe.Add(v.ptr, n)) != 0 {
		n++
	}
	return string(unsafe.Slice((*byte)(v.ptr), n))
}

func (v Value) String() string {
	switch v.kind {
	case Void:
		return "void"
	case Bool:
		return fmt.Sprint(v.Bool())
	case Float32:
		return fmt.Sprint(v.Float32())
	case Float64:
		return fmt.Sprint(v.Float64())
	case String:
		return v.str
	case Pointer:
		return fmt.Sprintf("%p", v.ptr)
	case Int8, Int16, Int32, Int64, Intptr:
		return fmt.Sprint(v.Int64())
	}
	return fmt.Sprint(v.bits)
}
