// Package dispatch binds catalog entry points to native functions according
// to a negotiated capability level.
//
// A Dispatcher owns one Table and one negotiated level, typically one per
// native rendering context. Bind resolves every entry whose tier the level
// satisfies and leaves the rest as stubs that fail with *UnsupportedError.
// Later binds may only raise the level: entries move from stub to real,
// never back.
package dispatch

import (
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/tinyrange/glbind/internal/gl/abi"
	"github.com/tinyrange/glbind/internal/gl/catalog"
	"github.com/tinyrange/glbind/internal/gl/version"
)

// Resolver maps a decorated symbol name to its native address, or 0 if the
// driver does not export it.
type Resolver func(symbol string) uintptr

// Linker turns a resolved address into a callable of the given shape.
type Linker interface {
	Link(symbol string, shape abi.Shape, addr uintptr) (abi.Func, error)
}

// LinkerFunc adapts a function to the Linker interface.
type LinkerFunc func(symbol string, shape abi.Shape, addr uintptr) (abi.Func, error)

func (f LinkerFunc) Link(symbol string, shape abi.Shape, addr uintptr) (abi.Func, error) {
	return f(symbol, shape, addr)
}

// Action describes what a bind did with one tier.
type Action uint8

const (
	// Resolved tiers had every entry resolved and linked.
	Resolved Action = iota
	// Stubbed tiers are above the requested level.
	Stubbed
	// Kept tiers were already bound by an earlier call.
	Kept
)

func (a Action) String() string {
	switch a {
	case Resolved:
		return "resolved"
	case Stubbed:
		return "stubbed"
	case Kept:
		return "kept"
	default:
		return "unknown"
	}
}

// Event is delivered to an Observer once per tier during Bind, before
// anything is published.
type Event struct {
	Tier    version.Level
	Entries int
	Action  Action
	Done    int // tiers processed so far, including this one
	Total   int
}

// Observer receives bind progress. It is called with the dispatcher's bind
// lock held and must not call Bind.
type Observer func(Event)

type Option func(*Dispatcher)

// WithLinker sets the linker used to make resolved addresses callable.
func WithLinker(l Linker) Option {
	return func(d *Dispatcher) { d.linker = l }
}

// WithLogger overrides the package logger for one dispatcher.
func WithLogger(l *slog.Logger) Option {
	return func(d *Dispatcher) { d.log = l }
}

// WithObserver registers a progress callback.
func WithObserver(o Observer) Option {
	return func(d *Dispatcher) { d.observer = o }
}

// WithPrefix overrides the catalog's symbol prefix.
func WithPrefix(prefix string) Option {
	return func(d *Dispatcher) {
		d.prefix = prefix
		d.prefixSet = true
	}
}

// Dispatcher binds one catalog for one native context.
type Dispatcher struct {
	cat       *catalog.Catalog
	prefix    string
	prefixSet bool
	linker    Linker
	log       *slog.Logger
	observer  Observer
	id        uuid.UUID

	mu       sync.Mutex // serializes Bind
	bound    atomic.Bool
	level    atomic.Uint32
	observed atomic.Uint32
	beyond   atomic.Bool
	binds    atomic.Uint64

	table *Table
}

// New creates an unbound dispatcher for cat.
func New(cat *catalog.Catalog, opts ...Option) (*Dispatcher, error) {
	if cat == nil {
		return nil, ErrNoCatalog
	}
	d := &Dispatcher{
		cat: cat,
		id:  uuid.New(),
	}
	for _, opt := range opts {
		opt(d)
	}
	if !d.prefixSet {
		d.prefix = cat.Prefix()
	}
	d.table = newTable(d)
	return d, nil
}

// ID identifies the dispatcher in log output.
func (d *Dispatcher) ID() uuid.UUID { return d.id }

func (d *Dispatcher) Catalog() *catalog.Catalog { return d.cat }

// Table returns the dispatcher's table. It fails lookups with ErrNotBound
// until the first successful Bind.
func (d *Dispatcher) Table() *Table { return d.table }

// Level is the highest level successfully bound so far.
func (d *Dispatcher) Level() version.Level {
	return version.Unpack(d.level.Load())
}

// Observed is the highest level ever passed to Bind, including calls that
// changed nothing or failed after the floor check.
func (d *Dispatcher) Observed() version.Level {
	return version.Unpack(d.observed.Load())
}

// Symbol returns the native symbol Bind resolves for e.
func (d *Dispatcher) Symbol(e catalog.Entry) string {
	return d.prefix + e.Name
}

func (d *Dispatcher) logger() *slog.Logger {
	l := d.log
	if l == nil {
		l = Logger()
	}
	return l.With(slog.String("dispatcher", d.id.String()), slog.String("prefix", d.prefix))
}

func (d *Dispatcher) observe(level version.Level) {
	for {
		old := d.observed.Load()
		if version.Unpack(old).AtLeast(level) {
			return
		}
		if d.observed.CompareAndSwap(old, level.Pack()) {
			return
		}
	}
}

var errNilFunc = errors.New("linker returned no function")

type staged struct {
	id   catalog.ID
	proc *Proc
}

// Bind raises the negotiated level to level and returns the table.
//
// Tiers above the current level and at or below level are resolved through
// resolve and linked; tiers above level get stubs on the first bind and
// stay stubs afterwards. Entries bound by an earlier call are not resolved
// again. A level at or below the current one leaves the table untouched.
//
// Errors are fatal and leave the table as it was: a nil resolver or a level
// below the catalog floor match ErrConfiguration; a symbol missing from a
// satisfied tier, or one the linker rejects, matches ErrInconsistent.
func (d *Dispatcher) Bind(level version.Level, resolve Resolver) (*Table, error) {
	if resolve == nil {
		return nil, ErrNoResolver
	}
	if floor := d.cat.Floor(); level.Less(floor) {
		return nil, &FloorError{Level: level, Floor: floor}
	}
	if d.linker == nil {
		return nil, ErrNoLinker
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	log := d.logger()
	d.observe(level)

	first := !d.bound.Load()
	cur := d.Level()
	if !first && level.Compare(cur) <= 0 {
		log.Debug("bind: level already satisfied", "requested", level, "negotiated", cur)
		return d.table, nil
	}

	tiers := d.cat.Tiers()
	var (
		pending  []staged
		resolved int
	)
	for i, tier := range tiers {
		ev := Event{Tier: tier.Level, Entries: len(tier.Entries), Done: i + 1, Total: len(tiers)}
		switch {
		case !first && tier.Level.Compare(cur) <= 0:
			ev.Action = Kept
		case tier.Level.Compare(level) <= 0:
			ev.Action = Resolved
			for _, e := range tier.Entries {
				p, err := d.link(e, level, resolve)
				if err != nil {
					log.Debug("bind failed", "tier", tier.Level, "entry", e.Name, "error", err)
					return nil, err
				}
				pending = append(pending, staged{id: e.ID, proc: p})
			}
			resolved += len(tier.Entries)
		default:
			ev.Action = Stubbed
			if first {
				for _, e := range tier.Entries {
					pending = append(pending, staged{id: e.ID, proc: d.stub(e)})
				}
			}
		}
		log.Debug("bind tier", "tier", tier.Level, "entries", len(tier.Entries), "action", ev.Action)
		if d.observer != nil {
			d.observer(ev)
		}
	}

	for _, s := range pending {
		d.table.slots[s.id].Store(s.proc)
	}
	d.level.Store(level.Pack())
	d.bound.Store(true)
	d.binds.Add(1)

	if ceiling := d.cat.Ceiling(); level.Compare(ceiling) > 0 {
		d.beyond.Store(true)
		log.Warn("driver reports a level beyond the catalog; newer entry points are not available",
			"level", level, "ceiling", ceiling)
	}
	log.Info("bound", "level", level, "previous", cur, "resolved", resolved, "entries", d.cat.Len())
	return d.table, nil
}

func (d *Dispatcher) link(e catalog.Entry, level version.Level, resolve Resolver) (*Proc, error) {
	sym := d.Symbol(e)
	addr := resolve(sym)
	if addr == 0 {
		return nil, &InconsistencyError{Name: e.Name, Symbol: sym, Tier: e.Min, Negotiated: level}
	}
	fn, err := d.linker.Link(sym, e.Shape, addr)
	if err != nil {
		return nil, &LinkError{Symbol: sym, Addr: addr, Err: err}
	}
	if fn == nil {
		return nil, &LinkError{Symbol: sym, Addr: addr, Err: errNilFunc}
	}
	return &Proc{d: d, entry: e, symbol: sym, addr: addr, fn: fn}, nil
}

// stub builds the placeholder for e. Every stub is the same generic Proc
// without a function; its shape only decides the zero value it returns.
func (d *Dispatcher) stub(e catalog.Entry) *Proc {
	return &Proc{d: d, entry: e, symbol: d.Symbol(e)}
}
