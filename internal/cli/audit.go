package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tinyrange/glbind/internal/gl/dispatch"
	"github.com/tinyrange/glbind/internal/gl/version"
)

type auditOptions struct {
	level  string
	loader bool
}

type auditMissing struct {
	Tier   version.Level `yaml:"tier"`
	Symbol string        `yaml:"symbol"`
}

type auditResult struct {
	Library  string         `yaml:"library"`
	Level    version.Level  `yaml:"level"`
	Complete version.Level  `yaml:"complete,omitempty"`
	Resolved int            `yaml:"resolved"`
	Missing  []auditMissing `yaml:"missing,omitempty"`
}

// NewAuditCommand creates the audit command.
func NewAuditCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &auditOptions{}
	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Check a GL library's exports against the catalog",
		Long: `Resolve every entry a bind at --level would need from the GL library
and list all missing symbols instead of stopping at the first. By default
only the library's exports are consulted, which needs no current context;
--loader also asks glXGetProcAddress or wglGetProcAddress.

Exits with status 1 if any symbol is missing.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAudit(rootOpts, opts, cmd)
		},
	}
	cmd.Flags().StringVar(&opts.level, "level", "", "level to audit (default: catalog ceiling)")
	cmd.Flags().BoolVar(&opts.loader, "loader", false, "also use the platform's GetProcAddress")
	return cmd
}

func runAudit(rootOpts *RootOptions, opts *auditOptions, cmd *cobra.Command) error {
	f := newFormatter(rootOpts, cmd.OutOrStdout(), cmd.ErrOrStderr())
	cat, err := rootOpts.catalog()
	if err != nil {
		return err
	}
	level, err := parseLevelFlag("level", opts.level)
	if err != nil {
		return err
	}
	if level.Zero() {
		level = cat.Ceiling()
	}

	lib, err := openLibrary(rootOpts.cfg.Library...)
	if err != nil {
		return WrapExitError(ExitFailure, "open GL library", err)
	}
	defer lib.Close()

	resolve := dispatch.Resolver(lib.Resolve)
	if opts.loader {
		resolve = lib.Resolver()
	}

	d, err := dispatch.New(cat, rootOpts.dispatchOptions()...)
	if err != nil {
		return err
	}
	report, err := d.Audit(level, resolve)
	if err != nil {
		return WrapExitError(ExitCommandError, "audit", err)
	}

	res := auditResult{Library: lib.Path(), Level: level, Resolved: report.Resolved}
	broken := map[version.Level]bool{}
	for _, m := range report.Missing {
		res.Missing = append(res.Missing, auditMissing{Tier: m.Tier, Symbol: m.Symbol})
		broken[m.Tier] = true
	}
	for _, t := range cat.Tiers() {
		if t.Level.Compare(level) > 0 || broken[t.Level] {
			break
		}
		res.Complete = t.Level
	}

	if f.Format == "yaml" {
		if err := f.YAML(res); err != nil {
			return err
		}
	} else {
		f.Printf("library  %s\n", res.Library)
		f.Printf("level    %s\n", res.Level)
		complete := "none"
		if !res.Complete.Zero() {
			complete = res.Complete.String()
		}
		f.Printf("complete %s\n", complete)
		f.Printf("resolved %d\n", res.Resolved)
		if len(res.Missing) > 0 {
			f.Printf("\n")
			rows := make([][]string, len(res.Missing))
			for i, m := range res.Missing {
				rows[i] = []string{m.Tier.String(), f.Bad(m.Symbol)}
			}
			f.Table([]string{"TIER", "MISSING"}, rows)
		} else {
			f.Printf("%s\n", f.Good("all symbols present"))
		}
	}

	if !report.OK() {
		return WrapExitError(ExitFailure, fmt.Sprintf("%d symbols missing at %s", len(report.Missing), level), nil)
	}
	return nil
}
