package dispatch

import (
	"fmt"
	"sync/atomic"

	"github.com/tinyrange/glbind/internal/gl/abi"
	"github.com/tinyrange/glbind/internal/gl/catalog"
	"github.com/tinyrange/glbind/internal/gl/version"
)

// Table is the lookup surface of a Dispatcher: one slot per catalog entry,
// indexed by catalog.ID. Lookups and calls never block and may run
// concurrently with Bind.
type Table struct {
	d     *Dispatcher
	slots []atomic.Pointer[Proc]
}

func newTable(d *Dispatcher) *Table {
	return &Table{d: d, slots: make([]atomic.Pointer[Proc], d.cat.Len())}
}

func (t *Table) Catalog() *catalog.Catalog { return t.d.cat }

// Level is the negotiated level.
func (t *Table) Level() version.Level { return t.d.Level() }

// Generation counts the binds that changed the table.
func (t *Table) Generation() uint64 { return t.d.binds.Load() }

// BeyondCatalog reports whether the driver reported a level above the
// highest catalogued tier.
func (t *Table) BeyondCatalog() bool { return t.d.beyond.Load() }

// Proc returns the callable in slot id.
func (t *Table) Proc(id catalog.ID) (*Proc, error) {
	if int(id) >= len(t.slots) {
		return nil, &NotFoundError{Name: fmt.Sprintf("#%d", id)}
	}
	p := t.slots[id].Load()
	if p == nil {
		return nil, ErrNotBound
	}
	return p, nil
}

// Lookup returns the callable for an unprefixed entry name. Names outside
// the catalog fail with *NotFoundError; entries above the negotiated level
// return a stub, not an error.
func (t *Table) Lookup(name string) (*Proc, error) {
	e, ok := t.d.cat.Lookup(name)
	if !ok {
		return nil, &NotFoundError{Name: name}
	}
	return t.Proc(e.ID)
}

// Call looks up name and calls it.
func (t *Table) Call(name string, args ...any) (abi.Value, error) {
	p, err := t.Lookup(name)
	if err != nil {
		return abi.Value{}, err
	}
	return p.Call(args...)
}

// EntryStatus is the binding state of one entry.
type EntryStatus struct {
	catalog.Entry
	Symbol string
	Bound  bool // false before the first bind
	Real   bool
	Addr   uintptr
}

// Status lists every entry in catalog order.
func (t *Table) Status() []EntryStatus {
	out := make([]EntryStatus, 0, len(t.slots))
	for e := range t.d.cat.Entries() {
		st := EntryStatus{Entry: e, Symbol: t.d.Symbol(e)}
		if p := t.slots[e.ID].Load(); p != nil {
			st.Bound = true
			st.Real = p.Supported()
			st.Addr = p.addr
		}
		out = append(out, st)
	}
	return out
}

// Proc is a bound entry point: either a native function or a stub.
// A Proc never changes once published; upgrades publish a new Proc.
type Proc struct {
	d      *Dispatcher
	entry  catalog.Entry
	symbol string
	addr   uintptr
	fn     abi.Func
}

func (p *Proc) Entry() catalog.Entry { return p.entry }
func (p *Proc) Name() string         { return p.entry.Name }
func (p *Proc) Symbol() string       { return p.symbol }

// Addr is the resolved native address, or 0 for a stub.
func (p *Proc) Addr() uintptr { return p.addr }

// Supported reports whether p calls a native function.
func (p *Proc) Supported() bool { return p.fn != nil }

// Call converts args to the entry's shape and invokes it.
//
// A stub returns the zero value of the result kind and *UnsupportedError
// carrying the level negotiated at the time of the call. A stub held across
// an upgrade forwards to the entry's new native binding.
func (p *Proc) Call(args ...any) (abi.Value, error) {
	if p.fn == nil {
		if cur := p.d.table.slots[p.entry.ID].Load(); cur != nil && cur.fn != nil {
			return cur.Call(args...)
		}
		return abi.Zero(p.entry.Shape.Ret), &UnsupportedError{
			Name:       p.entry.Name,
			Required:   p.entry.Min,
			Negotiated: p.d.Level(),
		}
	}
	conv, err := p.entry.Shape.Convert(args)
	if err != nil {
		return abi.Zero(p.entry.Shape.Ret), fmt.Errorf("%s: %w", p.symbol, err)
	}
	return p.fn(conv), nil
}

func (p *Proc) String() string {
	state := "stub"
	if p.fn != nil {
		state = fmt.Sprintf("%#x", p.addr)
	}
	return fmt.Sprintf("%s %s [%s, %s]", p.symbol, p.entry.Shape, p.entry.Min, state)
}
