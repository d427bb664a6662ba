package native

import (
	"errors"
	"testing"

	"github.com/tinyrange/glbind/internal/gl/abi"
	"github.com/tinyrange/glbind/internal/gl/catalog"
	"github.com/tinyrange/glbind/internal/gl/dispatch"
	"github.com/tinyrange/glbind/internal/gl/version"
)

func TestChain(t *testing.T) {
	var asked []string
	first := func(sym string) uintptr {
		asked = append(asked, "first:"+sym)
		if sym == "glClear" {
			return 0x10
		}
		return 0
	}
	second := Map(map[string]uintptr{"glClear": 0x20, "glFlush": 0x30})

	r := Chain(nil, first, nil, second)
	if got := r("glClear"); got != 0x10 {
		t.Errorf("glClear = %#x, want first resolver's address", got)
	}
	if got := r("glFlush"); got != 0x30 {
		t.Errorf("glFlush = %#x", got)
	}
	if got := r("glMissing"); got != 0 {
		t.Errorf("glMissing = %#x", got)
	}
	if len(asked) != 3 {
		t.Errorf("first resolver asked %v", asked)
	}
	if Chain()("glClear") != 0 {
		t.Error("empty chain resolved a symbol")
	}
}

func TestValidProcAddr(t *testing.T) {
	for _, addr := range []uintptr{0, 1, 2, 3, ^uintptr(0)} {
		if validProcAddr(addr) {
			t.Errorf("validProcAddr(%#x) = true", addr)
		}
	}
	for _, addr := range []uintptr{4, 0x7ff0_1000} {
		if !validProcAddr(addr) {
			t.Errorf("validProcAddr(%#x) = false", addr)
		}
	}
}

func TestLinkerRejects(t *testing.T) {
	if _, err := (Linker{}).Link("glClear", abi.Sig(abi.Void, abi.Uint32), 0); err == nil {
		t.Error("linked a null address")
	}
	if _, err := (Linker{}).Link("glBad", abi.Sig(abi.Void, abi.Void), 0x1000); err == nil {
		t.Error("linked an invalid shape")
	}
}

func TestBindEmptyMapIsInconsistent(t *testing.T) {
	cat, err := catalog.New("gl", catalog.TierSpec{
		Level:   version.New(1, 0),
		Entries: []catalog.EntrySpec{{Name: "Flush", Shape: abi.Sig(abi.Void)}},
	})
	if err != nil {
		t.Fatal(err)
	}
	d, err := dispatch.New(cat, dispatch.WithLinker(Linker{}))
	if err != nil {
		t.Fatal(err)
	}
	_, err = d.Bind(version.New(1, 0), Map(map[string]uintptr{}))
	if !errors.Is(err, dispatch.ErrInconsistent) {
		t.Fatalf("Bind = %v, want ErrInconsistent", err)
	}
}
