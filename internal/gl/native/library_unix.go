//go:build darwin || freebsd || linux || netbsd

package native

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/ebitengine/purego"
	"github.com/tinyrange/glbind/internal/gl/dispatch"
)

// DefaultLibraries are tried in order when Open is called without paths.
var DefaultLibraries = defaultLibraries()

func defaultLibraries() []string {
	if runtime.GOOS == "darwin" {
		return []string{"/System/Library/Frameworks/OpenGL.framework/OpenGL"}
	}
	return []string{"libGL.so.1", "libOpenGL.so.0", "libGL.so"}
}

// Library is an opened GL library.
type Library struct {
	path    string
	handle  uintptr
	getProc func(*byte) uintptr
}

// Open loads the first library in paths that dlopen accepts.
func Open(paths ...string) (*Library, error) {
	if len(paths) == 0 {
		paths = DefaultLibraries
	}
	var errs []error
	for _, path := range paths {
		h, err := purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_GLOBAL)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		lib := &Library{path: path, handle: h}
		lib.loadGetProc()
		return lib, nil
	}
	return nil, fmt.Errorf("%w: %w", ErrNoLibrary, errors.Join(errs...))
}

func (l *Library) loadGetProc() {
	if runtime.GOOS == "darwin" {
		return
	}
	for _, name := range []string{"glXGetProcAddressARB", "glXGetProcAddress"} {
		addr, err := purego.Dlsym(l.handle, name)
		if err == nil && addr != 0 {
			purego.RegisterFunc(&l.getProc, addr)
			return
		}
	}
}

func (l *Library) Path() string { return l.path }

// Resolve returns the address the library exports for symbol, or 0.
func (l *Library) Resolve(symbol string) uintptr {
	addr, err := purego.Dlsym(l.handle, symbol)
	if err != nil {
		return 0
	}
	return addr
}

// ProcAddress returns a resolver backed by glXGetProcAddressARB, or nil if
// the library has none. GLX returns addresses for names the driver does not
// implement, so use it only after Resolve.
func (l *Library) ProcAddress() dispatch.Resolver {
	if l.getProc == nil {
		return nil
	}
	return func(symbol string) uintptr {
		name := append([]byte(symbol), 0)
		return l.getProc(&name[0])
	}
}

// Resolver chains Resolve and ProcAddress.
func (l *Library) Resolver() dispatch.Resolver {
	return Chain(l.Resolve, l.ProcAddress())
}

func (l *Library) Close() error {
	if l.handle == 0 {
		return nil
	}
	err := purego.Dlclose(l.handle)
	l.handle = 0
	return err
}
