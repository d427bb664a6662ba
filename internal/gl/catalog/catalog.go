// Package catalog holds the static list of GL entry points, grouped into
// tiers by the capability level that introduced them.
//
// A Catalog is immutable once built and safe to share between goroutines.
package catalog

import (
	"errors"
	"fmt"
	"iter"
	"sort"

	"github.com/tinyrange/glbind/internal/gl/abi"
	"github.com/tinyrange/glbind/internal/gl/version"
)

// ErrInvalid is matched by every catalog construction error.
var ErrInvalid = errors.New("invalid catalog")

// ID is a stable dense index of an entry within its catalog.
type ID uint32

// Entry describes one entry point.
type Entry struct {
	ID    ID
	Name  string // without the library prefix
	Min   version.Level
	Shape abi.Shape
}

// Tier is the set of entries introduced at one level.
type Tier struct {
	Level   version.Level
	Entries []Entry
}

// EntrySpec and TierSpec are the unresolved inputs to New.
type EntrySpec struct {
	Name      string `yaml:"name"`
	abi.Shape `yaml:",inline"`
}

type TierSpec struct {
	Level   version.Level `yaml:"level"`
	Entries []EntrySpec   `yaml:"entries"`
}

// Catalog is an ordered, validated set of tiers.
type Catalog struct {
	prefix  string
	tiers   []Tier
	entries []Entry
	byName  map[string]ID
}

// New validates specs and builds a catalog. Tiers are sorted by level and
// entry IDs are assigned in that order. Extend appends IDs, so in an
// extended catalog IDs follow insertion order rather than tier order.
func New(prefix string, specs ...TierSpec) (*Catalog, error) {
	c := &Catalog{prefix: prefix, byName: make(map[string]ID)}
	if err := c.add(specs); err != nil {
		return nil, err
	}
	if len(c.tiers) == 0 {
		return nil, fmt.Errorf("%w: no tiers", ErrInvalid)
	}
	return c, nil
}

// Extend returns a new catalog holding base's entries followed by specs.
// Entries of base keep their IDs. A TierSpec whose level matches an existing
// tier is merged into it.
func Extend(base *Catalog, specs ...TierSpec) (*Catalog, error) {
	if base == nil {
		return nil, fmt.Errorf("%w: no base catalog", ErrInvalid)
	}
	c := &Catalog{
		prefix:  base.prefix,
		entries: append([]Entry(nil), base.entries...),
		byName:  make(map[string]ID, len(base.byName)),
	}
	for name, id := range base.byName {
		c.byName[name] = id
	}
	for _, t := range base.tiers {
		c.tiers = append(c.tiers, Tier{Level: t.Level, Entries: append([]Entry(nil), t.Entries...)})
	}
	if err := c.add(specs); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Catalog) add(specs []TierSpec) error {
	specs = append([]TierSpec(nil), specs...)
	sort.SliceStable(specs, func(i, j int) bool {
		return specs[i].Level.Less(specs[j].Level)
	})

	for _, spec := range specs {
		if spec.Level.Zero() {
			return fmt.Errorf("%w: tier with zero level", ErrInvalid)
		}
		if len(spec.Entries) == 0 {
			return fmt.Errorf("%w: tier %s has no entries", ErrInvalid, spec.Level)
		}

		tier := c.tier(spec.Level)
		for _, es := range spec.Entries {
			if es.Name == "" {
				return fmt.Errorf("%w: tier %s: entry with empty name", ErrInvalid, spec.Level)
			}
			if _, dup := c.byName[es.Name]; dup {
				return fmt.Errorf("%w: duplicate entry %q", ErrInvalid, es.Name)
			}
			if err := es.Shape.Validate(); err != nil {
				return fmt.Errorf("%w: entry %q: %v", ErrInvalid, es.Name, err)
			}
			e := Entry{
				ID:    ID(len(c.entries)),
				Name:  es.Name,
				Min:   spec.Level,
				Shape: es.Shape,
			}
			c.entries = append(c.entries, e)
			c.byName[e.Name] = e.ID
			tier.Entries = append(tier.Entries, e)
		}
	}
	return nil
}

// tier returns the tier at lvl, inserting an empty one in order if needed.
func (c *Catalog) tier(lvl version.Level) *Tier {
	i := sort.Search(len(c.tiers), func(i int) bool {
		return c.tiers[i].Level.AtLeast(lvl)
	})
	if i < len(c.tiers) && c.tiers[i].Level == lvl {
		return &c.tiers[i]
	}
	c.tiers = append(c.tiers, Tier{})
	copy(c.tiers[i+1:], c.tiers[i:])
	c.tiers[i] = Tier{Level: lvl}
	return &c.tiers[i]
}

// Prefix is the symbol prefix of the target API ("gl").
func (c *Catalog) Prefix() string { return c.prefix }

// Tiers returns the tiers in ascending level order. Callers must not modify
// the returned entries.
func (c *Catalog) Tiers() []Tier {
	return append([]Tier(nil), c.tiers...)
}

// Entries yields every entry in tier order, which after Extend need not be
// ID order.
func (c *Catalog) Entries() iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		for _, t := range c.tiers {
			for _, e := range t.Entries {
				if !yield(e) {
					return
				}
			}
		}
	}
}

// Len is the number of entries; valid IDs are [0, Len).
func (c *Catalog) Len() int { return len(c.entries) }

// Entry returns the entry with the given ID.
func (c *Catalog) Entry(id ID) (Entry, bool) {
	if int(id) >= len(c.entries) {
		return Entry{}, false
	}
	return c.entries[id], true
}

// Lookup finds an entry by unprefixed name.
func (c *Catalog) Lookup(name string) (Entry, bool) {
	id, ok := c.byName[name]
	if !ok {
		return Entry{}, false
	}
	return c.entries[id], true
}

// Symbol returns the decorated native symbol name of e.
func (c *Catalog) Symbol(e Entry) string { return c.prefix + e.Name }

// Floor is the level of the lowest, mandatory tier.
func (c *Catalog) Floor() version.Level { return c.tiers[0].Level }

// Ceiling is the level of the highest tier.
func (c *Catalog) Ceiling() version.Level { return c.tiers[len(c.tiers)-1].Level }
