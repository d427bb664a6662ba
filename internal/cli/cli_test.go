package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tinyrange/glbind/internal/gl"
	"github.com/tinyrange/glbind/internal/gl/abi"
	"github.com/tinyrange/glbind/internal/gl/catalog"
	"github.com/tinyrange/glbind/internal/gl/config"
	"github.com/tinyrange/glbind/internal/gl/dispatch"
	"github.com/tinyrange/glbind/internal/gl/version"
	"gopkg.in/yaml.v3"
)

// fakeLibrary exports every symbol except those in missing and answers
// glGetString from strings.
type fakeLibrary struct {
	paths   []string
	missing map[string]bool
	strings map[uint32][]byte
	closed  bool
}

func newFakeLibrary(glVersion string, missing ...string) *fakeLibrary {
	l := &fakeLibrary{missing: map[string]bool{}, strings: map[uint32][]byte{}}
	for _, m := range missing {
		l.missing[m] = true
	}
	if glVersion != "" {
		l.strings[gl.Version] = append([]byte(glVersion), 0)
		l.strings[gl.Vendor] = []byte("Acme\x00")
		l.strings[gl.Renderer] = []byte("Acme Rasterizer\x00")
	}
	return l
}

func (l *fakeLibrary) Path() string { return "libfake.so" }

func (l *fakeLibrary) Resolve(symbol string) uintptr {
	if l.missing[symbol] {
		return 0
	}
	return uintptr(0x1000 + len(symbol))
}

func (l *fakeLibrary) Resolver() dispatch.Resolver { return l.Resolve }

func (l *fakeLibrary) Close() error {
	l.closed = true
	return nil
}

func (l *fakeLibrary) Link(symbol string, shape abi.Shape, addr uintptr) (abi.Func, error) {
	if symbol != "glGetString" {
		return func([]any) abi.Value { return abi.Zero(shape.Ret) }, nil
	}
	return func(args []any) abi.Value {
		s, ok := l.strings[args[0].(uint32)]
		if !ok {
			return abi.Zero(abi.Pointer)
		}
		return abi.ValueOf(abi.Pointer, unsafe.Pointer(&s[0]))
	}, nil
}

func execute(t *testing.T, lib *fakeLibrary, args ...string) (string, string, error) {
	t.Helper()
	oldOpen, oldLinker := openLibrary, newLinker
	t.Cleanup(func() {
		openLibrary, newLinker = oldOpen, oldLinker
		dispatch.SetLogger(nil)
	})
	openLibrary = func(paths ...string) (Library, error) {
		if lib == nil {
			t.Fatal("command opened a library")
		}
		lib.paths = paths
		return lib, nil
	}
	newLinker = func() dispatch.Linker { return lib }

	var stdout, stderr bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestInvalidFormat(t *testing.T) {
	_, _, err := execute(t, nil, "catalog", "--format", "json")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), "invalid format")
}

func TestGetExitCode(t *testing.T) {
	assert.Equal(t, ExitSuccess, GetExitCode(nil))
	assert.Equal(t, ExitFailure, GetExitCode(assert.AnError))
	assert.Equal(t, ExitCommandError, GetExitCode(WrapExitError(ExitCommandError, "x", nil)))
}

func TestCatalogText(t *testing.T) {
	out, _, err := execute(t, nil, "catalog", "--tier", "4.3", "--search", "dispatch")
	require.NoError(t, err)
	assert.Contains(t, out, "TIER")
	assert.Contains(t, out, "glDispatchCompute ")
	assert.Contains(t, out, "glDispatchComputeIndirect")
	assert.NotContains(t, out, "glDrawArrays")
	assert.Contains(t, out, "2 entries in 1 tiers")
}

func TestCatalogYAML(t *testing.T) {
	out, _, err := execute(t, nil, "catalog", "--format", "yaml", "--level", "1.1")
	require.NoError(t, err)

	f, err := catalog.LoadYAML(strings.NewReader(out))
	require.NoError(t, err)
	require.Len(t, f.Tiers, 2)
	assert.Equal(t, version.New(1, 0), f.Tiers[0].Level)
	assert.Equal(t, version.New(1, 1), f.Tiers[1].Level)

	cat, err := catalog.New(f.Prefix, f.Tiers...)
	require.NoError(t, err)
	e, ok := cat.Lookup("BindTexture")
	require.True(t, ok)
	assert.Equal(t, version.New(1, 1), e.Min)
}

func TestCatalogBadLevel(t *testing.T) {
	_, _, err := execute(t, nil, "catalog", "--level", "four")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestCatalogExtension(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "ext.yaml", `
tiers:
  - level: "4.6"
    entries:
      - name: MaxShaderCompilerThreadsKHR
        ret: void
        args: [uint32]
`)
	cfg := writeFile(t, dir, "glbind.yaml", "catalogs: [ext.yaml]\n")

	out, _, err := execute(t, nil, "-c", cfg, "catalog", "--search", "compilerthreads")
	require.NoError(t, err)
	assert.Contains(t, out, "glMaxShaderCompilerThreadsKHR")
}

func TestPlan(t *testing.T) {
	out, _, err := execute(t, nil, "plan", "2.0")
	require.NoError(t, err)
	assert.Contains(t, out, "resolved")
	assert.Contains(t, out, "stubbed")
	assert.NotContains(t, out, "beyond")
}

func TestPlanYAML(t *testing.T) {
	out, _, err := execute(t, nil, "--format", "yaml", "plan", "3.3", "--from", "2.1")
	require.NoError(t, err)

	var res planResult
	require.NoError(t, yaml.Unmarshal([]byte(out), &res))
	assert.Equal(t, version.New(3, 3), res.Level)
	assert.Equal(t, version.New(2, 1), res.From)
	require.NotEmpty(t, res.Tiers)
	for _, tier := range res.Tiers {
		switch {
		case tier.Level.Compare(version.New(2, 1)) <= 0:
			assert.Equal(t, "kept", tier.Action, tier.Level.String())
		case tier.Level.Compare(version.New(3, 3)) <= 0:
			assert.Equal(t, "resolved", tier.Action, tier.Level.String())
		default:
			assert.Equal(t, "stubbed", tier.Action, tier.Level.String())
		}
	}
	assert.Positive(t, res.Resolved)
}

func TestPlanNothingChanges(t *testing.T) {
	out, _, err := execute(t, nil, "plan", "2.0", "--from", "3.0")
	require.NoError(t, err)
	assert.Contains(t, out, "nothing changes")
}

func TestPlanBeyondCatalog(t *testing.T) {
	out, stderr, err := execute(t, nil, "plan", "5.0")
	require.NoError(t, err)
	assert.Contains(t, out, "beyond the catalog ceiling 4.6")
	assert.Contains(t, stderr, "level=WARN")
}

func TestPlanBelowFloor(t *testing.T) {
	_, _, err := execute(t, nil, "plan", "0.9")
	require.Error(t, err)
	assert.ErrorIs(t, err, dispatch.ErrFloorNotMet)
}

func TestAuditMissing(t *testing.T) {
	lib := newFakeLibrary("", "glDispatchCompute", "glTexStorage2D")
	out, _, err := execute(t, lib, "audit")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, err.Error(), "2 symbols missing at 4.6")

	assert.Contains(t, out, "glDispatchCompute")
	assert.Contains(t, out, "glTexStorage2D")
	assert.Contains(t, out, "complete 4.1")
	assert.True(t, lib.closed)
}

func TestAuditBelowMissing(t *testing.T) {
	lib := newFakeLibrary("", "glDispatchCompute")
	out, _, err := execute(t, lib, "audit", "--level", "4.2")
	require.NoError(t, err)
	assert.Contains(t, out, "all symbols present")
	assert.Contains(t, out, "complete 4.2")
}

func TestAuditYAMLWithPrefix(t *testing.T) {
	dir := t.TempDir()
	cfg := writeFile(t, dir, "glbind.yaml", "prefix: egl\nlibrary: [libOther.so]\n")
	lib := newFakeLibrary("", "eglClear")

	out, _, err := execute(t, lib, "-c", cfg, "--format", "yaml", "audit", "--level", "1.0")
	require.Error(t, err)
	assert.Equal(t, []string{"libOther.so"}, lib.paths)

	var res auditResult
	require.NoError(t, yaml.Unmarshal([]byte(out), &res))
	require.Len(t, res.Missing, 1)
	assert.Equal(t, "eglClear", res.Missing[0].Symbol)
	assert.True(t, res.Complete.Zero())
}

func TestProbeNegotiates(t *testing.T) {
	lib := newFakeLibrary("3.3 (Core Profile) Mesa 23.2.1")
	out, _, err := execute(t, lib, "--format", "yaml", "probe")
	require.NoError(t, err)

	var res probeResult
	require.NoError(t, yaml.Unmarshal([]byte(out), &res))
	assert.Equal(t, version.New(3, 3), res.Level)
	assert.Equal(t, "3.3 (Core Profile) Mesa 23.2.1", res.Version)
	assert.Equal(t, "Acme", res.Vendor)
	assert.Equal(t, "Acme Rasterizer", res.Renderer)
	assert.Equal(t, catalog.Core().Len(), res.Real+res.Stubs)
	assert.Positive(t, res.Stubs)
	assert.False(t, res.Beyond)
}

func TestProbeWithLevel(t *testing.T) {
	lib := newFakeLibrary("")
	out, _, err := execute(t, lib, "probe", "--level", "4.6")
	require.NoError(t, err)
	assert.Contains(t, out, "4.6")
	assert.NotContains(t, out, "vendor")
}

func TestProbeNoContext(t *testing.T) {
	lib := newFakeLibrary("")
	_, _, err := execute(t, lib, "probe")
	require.Error(t, err)
	assert.ErrorIs(t, err, gl.ErrNoVersion)
	assert.Contains(t, err.Error(), "try --level")
	assert.True(t, lib.closed)
}

func TestFormatterTable(t *testing.T) {
	var buf bytes.Buffer
	f := &Formatter{Format: "text", Writer: &buf}
	f.Table([]string{"A", "LONGER"}, [][]string{{"wide cell", "x"}, {"b", "y"}})
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "A          LONGER", lines[0])
	assert.Equal(t, "wide cell  x", lines[1])
	assert.Equal(t, "b          y", lines[2])
}

func TestInit(t *testing.T) {
	dir := t.TempDir()
	catPath := filepath.Join(dir, "core.yaml")
	out, _, err := execute(t, nil, "init", dir, "--catalog", catPath)
	require.NoError(t, err)
	assert.Contains(t, out, config.Filename)

	cfg, err := config.Load(filepath.Join(dir, config.Filename))
	require.NoError(t, err)
	assert.Equal(t, config.DefaultLogLevel, cfg.LogLevel)

	f, err := catalog.ReadFile(catPath)
	require.NoError(t, err)
	cat, err := catalog.New(f.Prefix, f.Tiers...)
	require.NoError(t, err)
	assert.Equal(t, catalog.Core().Len(), cat.Len())
	assert.Equal(t, "gl", cat.Prefix())

	_, _, err = execute(t, nil, "init", dir)
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))

	_, _, err = execute(t, nil, "init", dir, "--force")
	require.NoError(t, err)
}

func TestInitKeepsRelativeCatalogPaths(t *testing.T) {
	src := t.TempDir()
	writeFile(t, src, "ext.yaml", `
tiers:
  - level: "4.6"
    entries:
      - name: MaxShaderCompilerThreadsKHR
        ret: void
        args: [uint32]
`)
	cfg := writeFile(t, src, config.Filename, "catalogs: [ext.yaml]\n")

	dst := t.TempDir()
	_, _, err := execute(t, nil, "-c", cfg, "init", dst)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dst, config.Filename))
	require.NoError(t, err)
	assert.Contains(t, string(data), "ext.yaml")
	assert.NotContains(t, string(data), src)
}

func TestFormatterTableExtraCells(t *testing.T) {
	var buf bytes.Buffer
	f := &Formatter{Format: "text", Writer: &buf}
	require.NotPanics(t, func() {
		f.Table([]string{"A"}, [][]string{{"x", "extra", "more"}})
	})
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "x  extra  more", lines[1])
}
