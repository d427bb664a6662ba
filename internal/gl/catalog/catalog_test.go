package catalog

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tinyrange/glbind/internal/gl/abi"
	"github.com/tinyrange/glbind/internal/gl/version"
)

func TestCoreBounds(t *testing.T) {
	c := Core()
	if got := c.Floor(); got != version.New(1, 0) {
		t.Errorf("Floor = %s, want 1.0", got)
	}
	if got := c.Ceiling(); got != version.New(4, 6) {
		t.Errorf("Ceiling = %s, want 4.6", got)
	}
	if c.Prefix() != "gl" {
		t.Errorf("Prefix = %q, want gl", c.Prefix())
	}
	if Core() != c {
		t.Error("Core is not shared")
	}
}

func TestCoreTiersAscending(t *testing.T) {
	tiers := Core().Tiers()
	for i := 1; i < len(tiers); i++ {
		if !tiers[i-1].Level.Less(tiers[i].Level) {
			t.Errorf("tier %s not below %s", tiers[i-1].Level, tiers[i].Level)
		}
	}
	n := 0
	for _, tier := range tiers {
		if len(tier.Entries) == 0 {
			t.Errorf("tier %s is empty", tier.Level)
		}
		for _, e := range tier.Entries {
			if e.Min != tier.Level {
				t.Errorf("%s: Min %s in tier %s", e.Name, e.Min, tier.Level)
			}
			n++
		}
	}
	if n != Core().Len() {
		t.Errorf("tiers hold %d entries, Len = %d", n, Core().Len())
	}
}

func TestCoreEntries(t *testing.T) {
	tests := []struct {
		name  string
		min   string
		shape abi.Shape
	}{
		{"Clear", "1.0", abi.Sig(abi.Void, abi.Uint32)},
		{"GetString", "1.0", abi.Sig(abi.Pointer, abi.Uint32)},
		{"GenTextures", "1.1", abi.Sig(abi.Void, abi.Int32, abi.Pointer)},
		{"GenBuffers", "1.5", abi.Sig(abi.Void, abi.Int32, abi.Pointer)},
		{"CreateShader", "2.0", abi.Sig(abi.Uint32, abi.Uint32)},
		{"BindVertexArray", "3.0", abi.Sig(abi.Void, abi.Uint32)},
		{"DispatchCompute", "4.3", abi.Sig(abi.Void, abi.Uint32, abi.Uint32, abi.Uint32)},
		{"CreateBuffers", "4.5", abi.Sig(abi.Void, abi.Int32, abi.Pointer)},
		{"SpecializeShader", "4.6", abi.Sig(abi.Void, abi.Uint32, abi.String, abi.Uint32, abi.Pointer, abi.Pointer)},
	}
	c := Core()
	for _, tc := range tests {
		e, ok := c.Lookup(tc.name)
		if !ok {
			t.Errorf("%s missing from core catalog", tc.name)
			continue
		}
		if e.Min != version.MustParse(tc.min) {
			t.Errorf("%s: Min = %s, want %s", tc.name, e.Min, tc.min)
		}
		if !e.Shape.Equal(tc.shape) {
			t.Errorf("%s: Shape = %s, want %s", tc.name, e.Shape, tc.shape)
		}
		if got, _ := c.Entry(e.ID); got.Name != tc.name {
			t.Errorf("Entry(%d) = %s, want %s", e.ID, got.Name, tc.name)
		}
		if sym := c.Symbol(e); sym != "gl"+tc.name {
			t.Errorf("Symbol = %q", sym)
		}
	}
	if _, ok := c.Lookup("glClear"); ok {
		t.Error("Lookup accepted a prefixed name")
	}
	if _, ok := c.Entry(ID(c.Len())); ok {
		t.Error("Entry accepted an out of range ID")
	}
}

func TestIDsAreDenseInTierOrder(t *testing.T) {
	want := ID(0)
	for e := range Core().Entries() {
		if e.ID != want {
			t.Fatalf("%s: ID %d, want %d", e.Name, e.ID, want)
		}
		want++
	}
}

func TestEntriesStopsEarly(t *testing.T) {
	n := 0
	for range Core().Entries() {
		n++
		if n == 3 {
			break
		}
	}
	if n != 3 {
		t.Fatalf("visited %d entries", n)
	}
}

func sampleTiers() []TierSpec {
	return []TierSpec{
		tier("3.0", fn("B", tVoid)),
		tier("1.0", fn("A", tVoid, tUint)),
	}
}

func TestNewSortsTiers(t *testing.T) {
	c, err := New("x", sampleTiers()...)
	if err != nil {
		t.Fatal(err)
	}
	if c.Floor() != version.New(1, 0) || c.Ceiling() != version.New(3, 0) {
		t.Fatalf("bounds = %s..%s", c.Floor(), c.Ceiling())
	}
	a, _ := c.Lookup("A")
	b, _ := c.Lookup("B")
	if a.ID != 0 || b.ID != 1 {
		t.Errorf("IDs = %d, %d; want 0, 1", a.ID, b.ID)
	}
}

func TestNewRejects(t *testing.T) {
	tests := []struct {
		name  string
		specs []TierSpec
	}{
		{"no tiers", nil},
		{"zero level", []TierSpec{{Entries: []EntrySpec{fn("A", tVoid)}}}},
		{"empty tier", []TierSpec{tier("1.0")}},
		{"empty name", []TierSpec{tier("1.0", fn("", tVoid))}},
		{"duplicate", []TierSpec{tier("1.0", fn("A", tVoid)), tier("2.0", fn("A", tVoid))}},
		{"void argument", []TierSpec{tier("1.0", fn("A", tVoid, tVoid))}},
		{"bad kind", []TierSpec{tier("1.0", fn("A", abi.Kind(200)))}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New("x", tc.specs...)
			if !errors.Is(err, ErrInvalid) {
				t.Fatalf("New error = %v, want ErrInvalid", err)
			}
		})
	}
}

func TestExtend(t *testing.T) {
	base, err := New("x", sampleTiers()...)
	if err != nil {
		t.Fatal(err)
	}
	ext, err := Extend(base,
		tier("2.0", fn("C", tInt)),
		tier("3.0", fn("D", tVoid)),
		tier("5.0", fn("E", tVoid)),
	)
	if err != nil {
		t.Fatal(err)
	}

	for _, name := range []string{"A", "B"} {
		old, _ := base.Lookup(name)
		got, _ := ext.Lookup(name)
		if old.ID != got.ID {
			t.Errorf("%s: ID changed from %d to %d", name, old.ID, got.ID)
		}
	}
	if base.Len() != 2 {
		t.Errorf("base modified: Len = %d", base.Len())
	}
	if ext.Ceiling() != version.New(5, 0) {
		t.Errorf("Ceiling = %s", ext.Ceiling())
	}

	var levels []string
	for _, tier := range ext.Tiers() {
		levels = append(levels, tier.Level.String())
	}
	if got := strings.Join(levels, " "); got != "1.0 2.0 3.0 5.0" {
		t.Errorf("levels = %s", got)
	}
	d, _ := ext.Lookup("D")
	if d.Min != version.New(3, 0) || d.ID != 3 {
		t.Errorf("D = %+v", d)
	}

	// Tier order, not ID order: C was appended after B but sorts below it.
	var walk []string
	for e := range ext.Entries() {
		walk = append(walk, fmt.Sprintf("%s:%d", e.Name, e.ID))
	}
	if got := strings.Join(walk, " "); got != "A:0 C:2 B:1 D:3 E:4" {
		t.Errorf("Entries = %s", got)
	}
	for id := range ext.Len() {
		e, ok := ext.Entry(ID(id))
		if !ok || e.ID != ID(id) {
			t.Errorf("Entry(%d) = %+v, %v", id, e, ok)
		}
	}

	if _, err := Extend(base, tier("2.0", fn("A", tVoid))); !errors.Is(err, ErrInvalid) {
		t.Errorf("duplicate extension error = %v", err)
	}
}

func TestExtendNilBase(t *testing.T) {
	if c, err := Extend(nil, tier("1.0", fn("A", tVoid))); !errors.Is(err, ErrInvalid) || c != nil {
		t.Errorf("Extend(nil) = %v, %v", c, err)
	}
	if c, err := ExtendFiles(nil); !errors.Is(err, ErrInvalid) || c != nil {
		t.Errorf("ExtendFiles(nil) = %v, %v", c, err)
	}
}

const extension = `
prefix: x
tiers:
  - level: "2.0"
    entries:
      - name: Fence
        ret: pointer
        args: [uint32, uint32]
      - name: Flush
        ret: void
`

func TestLoadYAML(t *testing.T) {
	f, err := LoadYAML(strings.NewReader(extension))
	if err != nil {
		t.Fatal(err)
	}
	if f.Prefix != "x" || len(f.Tiers) != 1 || len(f.Tiers[0].Entries) != 2 {
		t.Fatalf("decoded %+v", f)
	}
	fence := f.Tiers[0].Entries[0]
	if !fence.Shape.Equal(abi.Sig(abi.Pointer, abi.Uint32, abi.Uint32)) {
		t.Errorf("Fence shape = %s", fence.Shape)
	}

	for _, bad := range []string{
		"",
		"tiers: [{level: \"x\", entries: []}]",
		"tiers: [{level: \"1.0\", entries: [{name: A, ret: word}]}]",
		"tiers: []\nextra: 1\n",
	} {
		if _, err := LoadYAML(strings.NewReader(bad)); !errors.Is(err, ErrInvalid) {
			t.Errorf("LoadYAML(%q) error = %v", bad, err)
		}
	}
}

func TestExtendFiles(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.yaml")
	if err := os.WriteFile(good, []byte(extension), 0o644); err != nil {
		t.Fatal(err)
	}
	other := filepath.Join(dir, "other.yaml")
	if err := os.WriteFile(other, []byte(strings.Replace(extension, "prefix: x", "prefix: egl", 1)), 0o644); err != nil {
		t.Fatal(err)
	}

	base, err := New("x", sampleTiers()...)
	if err != nil {
		t.Fatal(err)
	}
	c, err := ExtendFiles(base, good)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := c.Lookup("Fence"); !ok {
		t.Error("Fence not merged")
	}
	if _, err := ExtendFiles(base, other); !errors.Is(err, ErrInvalid) {
		t.Errorf("prefix mismatch error = %v", err)
	}
	if _, err := ExtendFiles(base, filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing file accepted")
	}
}

func TestWriteYAMLRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	if err := Core().WriteYAML(&buf); err != nil {
		t.Fatal(err)
	}
	f, err := LoadYAML(&buf)
	if err != nil {
		t.Fatal(err)
	}
	c, err := New(f.Prefix, f.Tiers...)
	if err != nil {
		t.Fatal(err)
	}
	if c.Len() != Core().Len() || c.Ceiling() != Core().Ceiling() {
		t.Fatalf("round trip: %d entries up to %s", c.Len(), c.Ceiling())
	}
	for e := range Core().Entries() {
		got, ok := c.Entry(e.ID)
		if !ok || got.Name != e.Name || !got.Shape.Equal(e.Shape) {
			t.Fatalf("entry %d: got %+v, want %+v", e.ID, got, e)
		}
	}
}
