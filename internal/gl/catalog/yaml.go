package catalog

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// File is the on-disk form of a catalog or catalog extension.
//
//	prefix: gl
//	tiers:
//	  - level: "4.6"
//	    entries:
//	      - name: PolygonOffsetClamp
//	        ret: void
//	        args: [float32, float32, float32]
type File struct {
	Prefix string     `yaml:"prefix,omitempty"`
	Tiers  []TierSpec `yaml:"tiers"`
}

// LoadYAML decodes a catalog file. Unknown fields are rejected.
func LoadYAML(r io.Reader) (File, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return File{}, fmt.Errorf("%w: empty catalog file", ErrInvalid)
		}
		return File{}, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return f, nil
}

// ReadFile loads a catalog file from disk.
func ReadFile(path string) (File, error) {
	fh, err := os.Open(path)
	if err != nil {
		return File{}, fmt.Errorf("open catalog: %w", err)
	}
	defer fh.Close()

	f, err := LoadYAML(fh)
	if err != nil {
		return File{}, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// ExtendFiles loads each path and merges its tiers into base. A file whose
// prefix differs from base's is rejected.
func ExtendFiles(base *Catalog, paths ...string) (*Catalog, error) {
	if base == nil {
		return nil, fmt.Errorf("%w: no base catalog", ErrInvalid)
	}
	c := base
	for _, path := range paths {
		f, err := ReadFile(path)
		if err != nil {
			return nil, err
		}
		if f.Prefix != "" && f.Prefix != c.prefix {
			return nil, fmt.Errorf("%w: %s: prefix %q does not match %q", ErrInvalid, path, f.Prefix, c.prefix)
		}
		c, err = Extend(c, f.Tiers...)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}
	return c, nil
}

// File returns c in its on-disk form.
func (c *Catalog) File() File {
	f := File{Prefix: c.prefix}
	for _, t := range c.tiers {
		spec := TierSpec{Level: t.Level}
		for _, e := range t.Entries {
			spec.Entries = append(spec.Entries, EntrySpec{Name: e.Name, Shape: e.Shape})
		}
		f.Tiers = append(f.Tiers, spec)
	}
	return f
}

// WriteYAML encodes c as a catalog file.
func (c *Catalog) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	f := c.File()
	if err := enc.Encode(&f); err != nil {
		return fmt.Errorf("encode catalog: %w", err)
	}
	return enc.Close()
}
