//go:build windows

package native

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/tinyrange/glbind/internal/gl/dispatch"
	"golang.org/x/sys/windows"
)

// DefaultLibraries are tried in order when Open is called without paths.
var DefaultLibraries = []string{"opengl32.dll"}

// Library is an opened GL library.
type Library struct {
	path    string
	dll     *windows.LazyDLL
	getProc *windows.LazyProc
}

// Open loads the first library in paths. opengl32.dll is only ever loaded
// from the system directory.
func Open(paths ...string) (*Library, error) {
	if len(paths) == 0 {
		paths = DefaultLibraries
	}
	var errs []error
	for _, path := range paths {
		dll := windows.NewLazyDLL(path)
		if path == "opengl32.dll" {
			dll = windows.NewLazySystemDLL(path)
		}
		if err := dll.Load(); err != nil {
			errs = append(errs, err)
			continue
		}
		lib := &Library{path: path, dll: dll}
		if p := dll.NewProc("wglGetProcAddress"); p.Find() == nil {
			lib.getProc = p
		}
		return lib, nil
	}
	return nil, fmt.Errorf("%w: %w", ErrNoLibrary, errors.Join(errs...))
}

func (l *Library) Path() string { return l.path }

// Resolve returns the address opengl32.dll exports for symbol, or 0. Only
// GL 1.1 entry points are exported; the rest come from ProcAddress.
func (l *Library) Resolve(symbol string) uintptr {
	p := l.dll.NewProc(symbol)
	if p.Find() != nil {
		return 0
	}
	return p.Addr()
}

// ProcAddress returns a resolver backed by wglGetProcAddress, or nil if the
// library has none. It needs a current context on the calling thread.
func (l *Library) ProcAddress() dispatch.Resolver {
	if l.getProc == nil {
		return nil
	}
	return func(symbol string) uintptr {
		name, err := windows.BytePtrFromString(symbol)
		if err != nil {
			return 0
		}
		addr, _, _ := l.getProc.Call(uintptr(unsafe.Pointer(name)))
		if !validProcAddr(addr) {
			return 0
		}
		return addr
	}
}

// Resolver asks wglGetProcAddress first and falls back to the library's
// exports.
func (l *Library) Resolver() dispatch.Resolver {
	return Chain(l.ProcAddress(), l.Resolve)
}

func (l *Library) Close() error {
	if l.dll == nil {
		return nil
	}
	err := windows.FreeLibrary(windows.Handle(l.dll.Handle()))
	l.dll = nil
	return err
}
