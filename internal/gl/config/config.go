// Package config loads loader settings from YAML.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/tinyrange/glbind/internal/gl/catalog"
	"github.com/tinyrange/glbind/internal/gl/version"
	"gopkg.in/yaml.v3"
)

const (
	Filename        = "glbind.yaml"
	DefaultLogLevel = "warn"
)

// Config controls how the GL library is found and bound.
type Config struct {
	// Library lists candidate GL libraries, tried in order. Empty means the
	// platform defaults.
	Library []string `yaml:"library,omitempty"`
	// Prefix overrides the catalog's symbol prefix.
	Prefix string `yaml:"prefix,omitempty"`
	// Level skips the GL_VERSION query and binds at this level.
	Level version.Level `yaml:"level,omitempty"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"logLevel,omitempty"`
	// Catalogs are extension catalog files merged into the core catalog.
	// Relative paths are resolved against the config file's directory.
	Catalogs []string `yaml:"catalogs,omitempty"`

	dir string
}

// Default returns the configuration used when no file is given.
func Default() Config {
	var c Config
	c.normalize()
	return c
}

func (c *Config) normalize() {
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
}

// Parse decodes YAML configuration. Unknown fields are rejected.
func Parse(data []byte) (Config, error) {
	var c Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, err
	}
	c.normalize()
	if _, err := c.SlogLevel(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Load reads a configuration file.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read %s: %w", filepath.Base(path), err)
	}
	c, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}
	c.dir = filepath.Dir(path)
	return c, nil
}

// CatalogPaths returns Catalogs with relative paths resolved against the
// directory of the file c was loaded from. Catalogs itself keeps the paths
// as written.
func (c Config) CatalogPaths() []string {
	out := make([]string, len(c.Catalogs))
	for i, p := range c.Catalogs {
		if c.dir != "" && !filepath.IsAbs(p) {
			p = filepath.Join(c.dir, p)
		}
		out[i] = p
	}
	return out
}

// SlogLevel parses LogLevel.
func (c Config) SlogLevel() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("logLevel: %w", err)
	}
	return l, nil
}

// Catalog returns the core catalog extended with CatalogPaths.
func (c Config) Catalog() (*catalog.Catalog, error) {
	return catalog.ExtendFiles(catalog.Core(), c.CatalogPaths()...)
}

// Write encodes c as YAML to path.
func Write(path string, c Config) error {
	c.normalize()

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", filepath.Base(path), err)
	}
	defer f.Close()

	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	if err := enc.Encode(&c); err != nil {
		return fmt.Errorf("encode %s: %w", filepath.Base(path), err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("close %s: %w", filepath.Base(path), err)
	}
	return nil
}
