// Package gl loads the OpenGL entry points of the current context.
//
// Load binds the mandatory 1.0 tier, asks the driver for GL_VERSION through
// it and then binds everything the reported version allows:
//
//	lib, err := native.Open()
//	...
//	ctx, err := gl.Load(lib.Resolver())
//	...
//	ctx.Table().Call("ClearColor", 0.1, 0.1, 0.1, 1.0)
package gl

import (
	"errors"
	"fmt"

	"github.com/tinyrange/glbind/internal/gl/catalog"
	"github.com/tinyrange/glbind/internal/gl/config"
	"github.com/tinyrange/glbind/internal/gl/dispatch"
	"github.com/tinyrange/glbind/internal/gl/native"
	"github.com/tinyrange/glbind/internal/gl/version"
)

// GetString parameters.
const (
	Vendor                 = 0x1F00
	Renderer               = 0x1F01
	Version                = 0x1F02
	ShadingLanguageVersion = 0x8B8C
)

var (
	// ErrNoVersion is returned when glGetString(GL_VERSION) yields NULL,
	// usually because no context is current on the calling thread.
	ErrNoVersion = errors.New("GL_VERSION unavailable; is a context current?")
	// ErrProfile is returned for GL ES drivers, whose versions do not map
	// onto the desktop catalog.
	ErrProfile = errors.New("unsupported GL profile")
)

type options struct {
	catalog  *catalog.Catalog
	level    version.Level
	dispatch []dispatch.Option
	linker   dispatch.Linker
}

type Option func(*options)

// WithCatalog replaces the core catalog.
func WithCatalog(c *catalog.Catalog) Option {
	return func(o *options) { o.catalog = c }
}

// WithLevel binds at level without asking the driver.
func WithLevel(level version.Level) Option {
	return func(o *options) { o.level = level }
}

// WithLinker replaces the purego linker.
func WithLinker(l dispatch.Linker) Option {
	return func(o *options) { o.linker = l }
}

// WithDispatch passes options through to dispatch.New.
func WithDispatch(opts ...dispatch.Option) Option {
	return func(o *options) { o.dispatch = append(o.dispatch, opts...) }
}

// Context is a bound dispatcher together with the driver it was negotiated
// against.
type Context struct {
	*dispatch.Dispatcher
	Driver version.Driver

	lib *native.Library
}

// Load creates a dispatcher and negotiates its level with the driver.
func Load(resolve dispatch.Resolver, opts ...Option) (*Context, error) {
	o := options{catalog: catalog.Core(), linker: native.Linker{}}
	for _, opt := range opts {
		opt(&o)
	}

	d, err := dispatch.New(o.catalog, append([]dispatch.Option{dispatch.WithLinker(o.linker)}, o.dispatch...)...)
	if err != nil {
		return nil, err
	}
	ctx := &Context{Dispatcher: d}

	if !o.level.Zero() {
		if _, err := d.Bind(o.level, resolve); err != nil {
			return nil, fmt.Errorf("bind %s: %w", o.level, err)
		}
		ctx.Driver = version.Driver{Level: o.level}
		return ctx, nil
	}

	if _, err := d.Bind(o.catalog.Floor(), resolve); err != nil {
		return nil, fmt.Errorf("bind floor: %w", err)
	}
	if err := ctx.Negotiate(resolve); err != nil {
		return nil, err
	}
	return ctx, nil
}

// Negotiate queries GL_VERSION through the table and raises the bound level
// to what the driver reports. Call it again after making another context
// current; it never lowers the level.
func (c *Context) Negotiate(resolve dispatch.Resolver) error {
	s, err := c.GetString(Version)
	if err != nil {
		return err
	}
	if s == "" {
		return ErrNoVersion
	}
	drv, err := version.ParseDriver(s)
	if err != nil {
		return err
	}
	if drv.Profile != version.Desktop {
		return fmt.Errorf("%w: %s %s", ErrProfile, drv.Profile, drv.Level)
	}

	if _, err := c.Bind(drv.Level, resolve); err != nil {
		return fmt.Errorf("bind %s: %w", drv.Level, err)
	}
	if drv.Level.AtLeast(c.Driver.Level) {
		c.Driver = drv
	}
	dispatch.Logger().Debug("negotiated", "version", s, "level", c.Level())
	return nil
}

// GetString calls glGetString and copies the result.
func (c *Context) GetString(name uint32) (string, error) {
	v, err := c.Table().Call("GetString", name)
	if err != nil {
		return "", err
	}
	return v.CString(), nil
}

// Open opens the GL library named by cfg and loads it.
func Open(cfg config.Config, opts ...Option) (*Context, error) {
	lib, err := native.Open(cfg.Library...)
	if err != nil {
		return nil, err
	}
	cat, err := cfg.Catalog()
	if err != nil {
		lib.Close()
		return nil, err
	}

	base := []Option{WithCatalog(cat), WithLevel(cfg.Level)}
	if cfg.Prefix != "" {
		base = append(base, WithDispatch(dispatch.WithPrefix(cfg.Prefix)))
	}
	ctx, err := Load(lib.Resolver(), append(base, opts...)...)
	if err != nil {
		lib.Close()
		return nil, err
	}
	ctx.lib = lib
	dispatch.Logger().Debug("opened GL library", "path", lib.Path(), "level", ctx.Level())
	return ctx, nil
}

// Library returns the library opened by Open, or nil.
func (c *Context) Library() *native.Library { return c.lib }

// Close releases the library opened by Open.
func (c *Context) Close() error {
	if c.lib == nil {
		return nil
	}
	return c.lib.Close()
}
