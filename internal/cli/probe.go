package cli

import (
	"errors"
	"strconv"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/tinyrange/glbind/internal/gl"
	"github.com/tinyrange/glbind/internal/gl/dispatch"
	"github.com/tinyrange/glbind/internal/gl/version"
)

type probeOptions struct {
	level string
}

type probeResult struct {
	Library  string        `yaml:"library"`
	Version  string        `yaml:"version,omitempty"`
	Vendor   string        `yaml:"vendor,omitempty"`
	Renderer string        `yaml:"renderer,omitempty"`
	Level    version.Level `yaml:"level"`
	Real     int           `yaml:"real"`
	Stubs    int           `yaml:"stubs"`
	Beyond   bool          `yaml:"beyondCatalog,omitempty"`
}

// NewProbeCommand creates the probe command.
func NewProbeCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &probeOptions{}
	cmd := &cobra.Command{
		Use:   "probe",
		Short: "Bind the GL library and report the negotiated level",
		Long: `Open the GL library, bind the 1.0 tier and ask the driver for its
version, then bind everything that version allows. Negotiation needs a GL
context current on this thread; without one, pass --level to bind a fixed
level instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProbe(rootOpts, opts, cmd)
		},
	}
	cmd.Flags().StringVar(&opts.level, "level", "", "bind this level instead of asking the driver")
	return cmd
}

func runProbe(rootOpts *RootOptions, opts *probeOptions, cmd *cobra.Command) error {
	f := newFormatter(rootOpts, cmd.OutOrStdout(), cmd.ErrOrStderr())
	cfg := rootOpts.cfg
	cat, err := rootOpts.catalog()
	if err != nil {
		return err
	}
	level, err := parseLevelFlag("level", opts.level)
	if err != nil {
		return err
	}
	if level.Zero() {
		level = cfg.Level
	}

	lib, err := openLibrary(cfg.Library...)
	if err != nil {
		return WrapExitError(ExitFailure, "open GL library", err)
	}
	defer lib.Close()

	dopts := rootOpts.dispatchOptions()
	if isTerminal(f.ErrWriter) {
		var bar *progressbar.ProgressBar
		dopts = append(dopts, dispatch.WithObserver(func(ev dispatch.Event) {
			if bar == nil {
				bar = progressbar.NewOptions(ev.Total,
					progressbar.OptionSetWriter(f.ErrWriter),
					progressbar.OptionSetDescription("binding "+ev.Tier.String()),
					progressbar.OptionShowCount(),
					progressbar.OptionClearOnFinish())
			}
			bar.Describe("binding " + ev.Tier.String())
			_ = bar.Set(ev.Done)
			if ev.Done == ev.Total {
				_ = bar.Finish()
				bar = nil
			}
		}))
	}

	ctx, err := gl.Load(lib.Resolver(),
		gl.WithCatalog(cat),
		gl.WithLevel(level),
		gl.WithLinker(newLinker()),
		gl.WithDispatch(dopts...))
	if err != nil {
		if errors.Is(err, gl.ErrNoVersion) {
			return WrapExitError(ExitFailure, "probe (no current context; try --level)", err)
		}
		return WrapExitError(ExitFailure, "probe", err)
	}

	tbl := ctx.Table()
	res := probeResult{
		Library: lib.Path(),
		Level:   ctx.Level(),
		Beyond:  tbl.BeyondCatalog(),
	}
	if level.Zero() {
		res.Version, _ = ctx.GetString(gl.Version)
		res.Vendor, _ = ctx.GetString(gl.Vendor)
		res.Renderer, _ = ctx.GetString(gl.Renderer)
	}
	for _, s := range tbl.Status() {
		if s.Real {
			res.Real++
		} else {
			res.Stubs++
		}
	}

	if f.Format == "yaml" {
		return f.YAML(res)
	}
	rows := [][]string{{"library", res.Library}}
	if res.Version != "" {
		rows = append(rows,
			[]string{"version", res.Version},
			[]string{"vendor", res.Vendor},
			[]string{"renderer", res.Renderer})
	}
	rows = append(rows,
		[]string{"level", f.Good(res.Level.String())},
		[]string{"real", f.Good(strconv.Itoa(res.Real))},
		[]string{"stubs", f.Warn(strconv.Itoa(res.Stubs))})
	f.Table([]string{"FIELD", "VALUE"}, rows)
	if res.Beyond {
		f.Printf("%s\n", f.Warn("driver level "+res.Level.String()+" is beyond the catalog ceiling "+cat.Ceiling().String()))
	}
	return nil
}
