package native

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/ebitengine/purego"
	"github.com/tinyrange/glbind/internal/gl/abi"
)

var errNullAddr = errors.New("null address")

// Linker makes native functions callable through purego. It implements
// dispatch.Linker.
type Linker struct{}

// Link builds a Go function of shape's type around addr.
func (Linker) Link(symbol string, shape abi.Shape, addr uintptr) (fn abi.Func, err error) {
	if addr == 0 {
		return nil, errNullAddr
	}
	if err := shape.Validate(); err != nil {
		return nil, err
	}

	fv := reflect.New(shape.FuncType())
	defer func() {
		// RegisterFunc panics on signatures the platform cannot call.
		if r := recover(); r != nil {
			fn, err = nil, fmt.Errorf("register %s %s: %v", symbol, shape, r)
		}
	}()
	purego.RegisterFunc(fv.Interface(), addr)

	call := fv.Elem()
	ret := shape.Ret
	return func(args []any) abi.Value {
		in := make([]reflect.Value, len(args))
		for i, a := range args {
			in[i] = reflect.ValueOf(a)
		}
		out := call.Call(in)
		if ret == abi.Void {
			return abi.Zero(abi.Void)
		}
		return abi.ValueOf(ret, out[0].Interface())
	}, nil
}
