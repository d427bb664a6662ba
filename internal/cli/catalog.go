package cli

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/tinyrange/glbind/internal/gl/catalog"
	"github.com/tinyrange/glbind/internal/gl/version"
)

type catalogOptions struct {
	level  string
	tier   string
	search string
}

// NewCatalogCommand creates the catalog command.
func NewCatalogCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &catalogOptions{}
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List catalogued entry points by tier",
		Long: `List the entry points of the core catalog and any extension catalogs
named in the config, grouped by the level that introduced them.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCatalog(rootOpts, opts, cmd)
		},
	}
	cmd.Flags().StringVar(&opts.level, "level", "", "only tiers at or below this level")
	cmd.Flags().StringVar(&opts.tier, "tier", "", "only the tier introduced at this level")
	cmd.Flags().StringVar(&opts.search, "search", "", "only entries whose name contains this text (case-insensitive)")
	return cmd
}

func parseLevelFlag(name, value string) (version.Level, error) {
	if value == "" {
		return version.Level{}, nil
	}
	l, err := version.Parse(value)
	if err != nil {
		return version.Level{}, WrapExitError(ExitCommandError, "--"+name, err)
	}
	return l, nil
}

func runCatalog(rootOpts *RootOptions, opts *catalogOptions, cmd *cobra.Command) error {
	f := newFormatter(rootOpts, cmd.OutOrStdout(), cmd.ErrOrStderr())
	cat, err := rootOpts.catalog()
	if err != nil {
		return err
	}
	upTo, err := parseLevelFlag("level", opts.level)
	if err != nil {
		return err
	}
	only, err := parseLevelFlag("tier", opts.tier)
	if err != nil {
		return err
	}
	search := strings.ToLower(opts.search)

	out := catalog.File{Prefix: cat.Prefix()}
	var rows [][]string
	for _, t := range cat.Tiers() {
		if !upTo.Zero() && t.Level.Compare(upTo) > 0 {
			continue
		}
		if !only.Zero() && t.Level != only {
			continue
		}
		spec := catalog.TierSpec{Level: t.Level}
		for _, e := range t.Entries {
			if search != "" && !strings.Contains(strings.ToLower(e.Name), search) {
				continue
			}
			spec.Entries = append(spec.Entries, catalog.EntrySpec{Name: e.Name, Shape: e.Shape})
			rows = append(rows, []string{t.Level.String(), cat.Symbol(e), e.Shape.String()})
		}
		if len(spec.Entries) > 0 {
			out.Tiers = append(out.Tiers, spec)
		}
	}

	if f.Format == "yaml" {
		return f.YAML(out)
	}
	f.Table([]string{"TIER", "SYMBOL", "SIGNATURE"}, rows)
	f.Printf("\n%d entries in %d tiers\n", len(rows), len(out.Tiers))
	return nil
}
