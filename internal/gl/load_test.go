package gl

import (
	"errors"
	"testing"
	"unsafe"

	"github.com/tinyrange/glbind/internal/gl/abi"
	"github.com/tinyrange/glbind/internal/gl/catalog"
	"github.com/tinyrange/glbind/internal/gl/dispatch"
	"github.com/tinyrange/glbind/internal/gl/version"
)

// fakeDriver exports every core symbol except those in missing and answers
// glGetString(GL_VERSION) with version.
type fakeDriver struct {
	version []byte
	missing map[string]bool
	queries map[string]int
}

func newFakeDriver(v string, missing ...string) *fakeDriver {
	f := &fakeDriver{missing: map[string]bool{}, queries: map[string]int{}}
	if v != "" {
		f.version = append([]byte(v), 0)
	}
	for _, m := range missing {
		f.missing[m] = true
	}
	return f
}

func (f *fakeDriver) resolve(sym string) uintptr {
	f.queries[sym]++
	if f.missing[sym] {
		return 0
	}
	return uintptr(0x1000 + len(sym))
}

func (f *fakeDriver) Link(symbol string, shape abi.Shape, addr uintptr) (abi.Func, error) {
	if symbol != "glGetString" {
		return func([]any) abi.Value { return abi.Zero(shape.Ret) }, nil
	}
	return func(args []any) abi.Value {
		if args[0].(uint32) != Version || f.version == nil {
			return abi.Zero(abi.Pointer)
		}
		return abi.ValueOf(abi.Pointer, unsafe.Pointer(&f.version[0]))
	}, nil
}

func load(t *testing.T, drv *fakeDriver, opts ...Option) (*Context, error) {
	t.Helper()
	return Load(drv.resolve, append([]Option{WithLinker(drv)}, opts...)...)
}

func TestLoadNegotiates(t *testing.T) {
	tests := []struct {
		report string
		want   version.Level
		vendor string
	}{
		{"4.6.0 NVIDIA 535.54.03", version.New(4, 6), "NVIDIA 535.54.03"},
		{"3.3 (Core Profile) Mesa 23.2.1", version.New(3, 3), "(Core Profile) Mesa 23.2.1"},
		{"2.1", version.New(2, 1), ""},
	}
	for _, tc := range tests {
		t.Run(tc.report, func(t *testing.T) {
			drv := newFakeDriver(tc.report)
			ctx, err := load(t, drv)
			if err != nil {
				t.Fatal(err)
			}
			if ctx.Level() != tc.want || ctx.Driver.Level != tc.want {
				t.Errorf("Level = %s, Driver = %+v", ctx.Level(), ctx.Driver)
			}
			if ctx.Driver.Vendor != tc.vendor {
				t.Errorf("Vendor = %q", ctx.Driver.Vendor)
			}
			if drv.queries["glGetString"] != 1 {
				t.Errorf("glGetString resolved %d times", drv.queries["glGetString"])
			}
			s, err := ctx.GetString(Version)
			if err != nil || s != tc.report {
				t.Errorf("GetString = %q, %v", s, err)
			}
		})
	}
}

func TestLoadGatesByReportedVersion(t *testing.T) {
	drv := newFakeDriver("3.3 Mesa")
	ctx, err := load(t, drv)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := ctx.Table().Call("BindVertexArray", 1); err != nil {
		t.Errorf("BindVertexArray: %v", err)
	}
	_, err = ctx.Table().Call("DispatchCompute", 1, 1, 1)
	var ue *dispatch.UnsupportedError
	if !errors.As(err, &ue) || ue.Required != version.New(4, 3) || ue.Negotiated != version.New(3, 3) {
		t.Errorf("DispatchCompute = %v", err)
	}
	if drv.queries["glDispatchCompute"] != 0 {
		t.Error("resolved an entry above the reported version")
	}
}

func TestLoadWithLevelSkipsQuery(t *testing.T) {
	drv := newFakeDriver("")
	ctx, err := load(t, drv, WithLevel(version.New(2, 0)))
	if err != nil {
		t.Fatal(err)
	}
	if ctx.Level() != version.New(2, 0) {
		t.Errorf("Level = %s", ctx.Level())
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := load(t, newFakeDriver("")); !errors.Is(err, ErrNoVersion) {
		t.Errorf("NULL version: %v", err)
	}
	if _, err := load(t, newFakeDriver("OpenGL ES 3.2 Mesa")); !errors.Is(err, ErrProfile) {
		t.Errorf("ES driver: %v", err)
	}
	if _, err := load(t, newFakeDriver("banana")); !errors.Is(err, version.ErrInvalid) {
		t.Errorf("bad version: %v", err)
	}
	if _, err := load(t, newFakeDriver("4.6", "glClear")); !errors.Is(err, dispatch.ErrInconsistent) {
		t.Errorf("missing floor symbol: %v", err)
	}
	if _, err := load(t, newFakeDriver("4.6", "glDispatchCompute")); !errors.Is(err, dispatch.ErrInconsistent) {
		t.Errorf("missing 4.3 symbol: %v", err)
	}
	if _, err := Load(nil); !errors.Is(err, dispatch.ErrConfiguration) {
		t.Errorf("nil resolver: %v", err)
	}
}

func TestNegotiateNeverLowers(t *testing.T) {
	drv := newFakeDriver("4.5 NVIDIA")
	ctx, err := load(t, drv)
	if err != nil {
		t.Fatal(err)
	}

	drv.version = append([]byte("3.0 llvmpipe"), 0)
	if err := ctx.Negotiate(drv.resolve); err != nil {
		t.Fatal(err)
	}
	if ctx.Level() != version.New(4, 5) || ctx.Driver.Vendor != "NVIDIA" {
		t.Errorf("Level = %s, Driver = %+v", ctx.Level(), ctx.Driver)
	}
	if ctx.Observed() != version.New(4, 5) {
		t.Errorf("Observed = %s", ctx.Observed())
	}
}

func TestLoadWithExtendedCatalog(t *testing.T) {
	cat, err := catalog.Extend(catalog.Core(), catalog.TierSpec{
		Level:   version.New(4, 6),
		Entries: []catalog.EntrySpec{{Name: "MaxShaderCompilerThreadsKHR", Shape: abi.Sig(abi.Void, abi.Uint32)}},
	})
	if err != nil {
		t.Fatal(err)
	}
	drv := newFakeDriver("4.6")
	ctx, err := load(t, drv, WithCatalog(cat))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := ctx.Table().Call("MaxShaderCompilerThreadsKHR", 4); err != nil {
		t.Error(err)
	}
	if ctx.Close() != nil {
		t.Error("Close without a library failed")
	}
}
