package dispatch

import (
	"errors"

	"github.com/tinyrange/glbind/internal/gl/catalog"
	"github.com/tinyrange/glbind/internal/gl/version"
)

// Report is the result of an audit: how many entries of the satisfied tiers
// resolved, and every one that did not.
type Report struct {
	Level    version.Level
	Resolved int
	Missing  []*InconsistencyError
	Beyond   bool
}

// OK reports whether a Bind at the same level would succeed.
func (r *Report) OK() bool { return len(r.Missing) == 0 }

// Err joins the missing entries into one error, or returns nil.
func (r *Report) Err() error {
	errs := make([]error, len(r.Missing))
	for i, m := range r.Missing {
		errs[i] = m
	}
	return errors.Join(errs...)
}

// Audit resolves every entry a Bind at level would need, without linking
// or publishing anything, and reports all misses instead of stopping at the
// first. Symbols use the catalog's prefix.
func Audit(cat *catalog.Catalog, level version.Level, resolve Resolver) (*Report, error) {
	if cat == nil {
		return nil, ErrNoCatalog
	}
	return audit(cat, cat.Prefix(), level, resolve)
}

// Audit is like the package-level Audit but uses the dispatcher's prefix.
// It does not change the dispatcher.
func (d *Dispatcher) Audit(level version.Level, resolve Resolver) (*Report, error) {
	return audit(d.cat, d.prefix, level, resolve)
}

func audit(cat *catalog.Catalog, prefix string, level version.Level, resolve Resolver) (*Report, error) {
	if resolve == nil {
		return nil, ErrNoResolver
	}
	if floor := cat.Floor(); level.Less(floor) {
		return nil, &FloorError{Level: level, Floor: floor}
	}

	r := &Report{Level: level, Beyond: level.Compare(cat.Ceiling()) > 0}
	for _, tier := range cat.Tiers() {
		if tier.Level.Compare(level) > 0 {
			break
		}
		for _, e := range tier.Entries {
			sym := prefix + e.Name
			if resolve(sym) == 0 {
				r.Missing = append(r.Missing, &InconsistencyError{
					Name:       e.Name,
					Symbol:     sym,
					Tier:       e.Min,
					Negotiated: level,
				})
				continue
			}
			r.Resolved++
		}
	}
	Logger().Debug("audit", "prefix", prefix, "level", level, "resolved", r.Resolved, "missing", len(r.Missing))
	return r, nil
}
