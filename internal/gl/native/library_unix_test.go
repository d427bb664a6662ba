//go:build darwin || linux

package native

import (
	"errors"
	"runtime"
	"testing"

	"github.com/tinyrange/glbind/internal/gl/abi"
)

func openLibc(t *testing.T) *Library {
	t.Helper()
	path := "libc.so.6"
	if runtime.GOOS == "darwin" {
		path = "/usr/lib/libSystem.B.dylib"
	}
	lib, err := Open(path)
	if err != nil {
		t.Skipf("libc not loadable: %v", err)
	}
	t.Cleanup(func() { lib.Close() })
	return lib
}

func TestLinkerCallsNative(t *testing.T) {
	lib := openLibc(t)

	abs := lib.Resolve("abs")
	if abs == 0 {
		t.Fatal("abs not found in libc")
	}
	shape := abi.Sig(abi.Int32, abi.Int32)
	fn, err := (Linker{}).Link("abs", shape, abs)
	if err != nil {
		t.Fatal(err)
	}
	args, err := shape.Convert([]any{-42})
	if err != nil {
		t.Fatal(err)
	}
	if got := fn(args).Int32(); got != 42 {
		t.Errorf("abs(-42) = %d", got)
	}

	strlen := lib.Resolve("strlen")
	if strlen == 0 {
		t.Fatal("strlen not found in libc")
	}
	shape = abi.Sig(abi.Uint64, abi.String)
	fn, err = (Linker{}).Link("strlen", shape, strlen)
	if err != nil {
		t.Fatal(err)
	}
	if got := fn([]any{"glClearColor"}).Uint64(); got != 12 {
		t.Errorf("strlen = %d", got)
	}
}

func TestResolveMissing(t *testing.T) {
	lib := openLibc(t)
	if addr := lib.Resolve("glNotARealFunction"); addr != 0 {
		t.Errorf("Resolve = %#x", addr)
	}
	if lib.Path() == "" {
		t.Error("empty Path")
	}
}

func TestOpenNoLibrary(t *testing.T) {
	_, err := Open("/nonexistent/libGL.so.1", "libDefinitelyMissingGL.so.9")
	if !errors.Is(err, ErrNoLibrary) {
		t.Fatalf("Open = %v, want ErrNoLibrary", err)
	}
}
