// Package cli implements the glprobe command.
package cli

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/spf13/cobra"
	"github.com/tinyrange/glbind/internal/gl/catalog"
	"github.com/tinyrange/glbind/internal/gl/config"
	"github.com/tinyrange/glbind/internal/gl/dispatch"
	"github.com/tinyrange/glbind/internal/gl/native"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose    bool
	Format     string // "text" | "yaml"
	ConfigPath string

	cfg config.Config
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "yaml"}

// Library is the part of *native.Library the commands use.
type Library interface {
	Path() string
	Resolve(symbol string) uintptr
	Resolver() dispatch.Resolver
	Close() error
}

// Hooks for tests.
var (
	openLibrary = func(paths ...string) (Library, error) {
		return native.Open(paths...)
	}
	newLinker = func() dispatch.Linker { return native.Linker{} }
)

// NewRootCommand creates the glprobe root command.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "glprobe",
		Short: "Inspect and bind versioned OpenGL entry points",
		Long: `glprobe lists the OpenGL entry point catalog, shows which tiers a
capability level would bind, audits a GL library's exports and probes the
current driver.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return WrapExitError(ExitCommandError,
					fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats), nil)
			}
			return opts.load(cmd)
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "log binding decisions to stderr")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (text|yaml)")
	cmd.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", "", "path to "+config.Filename)

	cmd.AddCommand(NewCatalogCommand(opts))
	cmd.AddCommand(NewPlanCommand(opts))
	cmd.AddCommand(NewAuditCommand(opts))
	cmd.AddCommand(NewProbeCommand(opts))
	cmd.AddCommand(NewInitCommand(opts))

	return cmd
}

func (o *RootOptions) load(cmd *cobra.Command) error {
	cfg := config.Default()
	if o.ConfigPath != "" {
		var err error
		cfg, err = config.Load(o.ConfigPath)
		if err != nil {
			return WrapExitError(ExitCommandError, "load config", err)
		}
	}
	o.cfg = cfg

	level, err := cfg.SlogLevel()
	if err != nil {
		return WrapExitError(ExitCommandError, "load config", err)
	}
	if o.Verbose {
		level = slog.LevelDebug
	}
	dispatch.SetLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))
	return nil
}

// Config returns the loaded configuration.
func (o *RootOptions) Config() config.Config { return o.cfg }

func (o *RootOptions) catalog() (*catalog.Catalog, error) {
	cat, err := o.cfg.Catalog()
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "load catalog", err)
	}
	return cat, nil
}

func (o *RootOptions) dispatchOptions() []dispatch.Option {
	if o.cfg.Prefix == "" {
		return nil
	}
	return []dispatch.Option{dispatch.WithPrefix(o.cfg.Prefix)}
}
