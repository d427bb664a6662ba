package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tinyrange/glbind/internal/gl/abi"
	"github.com/tinyrange/glbind/internal/gl/dispatch"
	"github.com/tinyrange/glbind/internal/gl/version"
)

type planOptions struct {
	from string
}

type planTier struct {
	Level   version.Level `yaml:"level"`
	Entries int           `yaml:"entries"`
	Action  string        `yaml:"action"`
}

type planResult struct {
	Level    version.Level `yaml:"level"`
	From     version.Level `yaml:"from,omitempty"`
	Resolved int           `yaml:"resolved"`
	Stubbed  int           `yaml:"stubbed"`
	Kept     int           `yaml:"kept"`
	Beyond   bool          `yaml:"beyondCatalog,omitempty"`
	Tiers    []planTier    `yaml:"tiers"`
}

// NewPlanCommand creates the plan command.
func NewPlanCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &planOptions{}
	cmd := &cobra.Command{
		Use:   "plan <level>",
		Short: "Show which tiers a bind at a level resolves or stubs",
		Long: `Run a bind against a resolver that knows every symbol, without loading
a GL library, and report what happens to each tier. With --from, the plan
shows the upgrade from an earlier bind.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlan(rootOpts, opts, args[0], cmd)
		},
	}
	cmd.Flags().StringVar(&opts.from, "from", "", "level of an earlier bind")
	return cmd
}

// planLinker links every address to a function returning zero.
var planLinker = dispatch.LinkerFunc(func(symbol string, shape abi.Shape, addr uintptr) (abi.Func, error) {
	return func([]any) abi.Value { return abi.Zero(shape.Ret) }, nil
})

func planResolver(string) uintptr { return 1 }

func runPlan(rootOpts *RootOptions, opts *planOptions, levelArg string, cmd *cobra.Command) error {
	f := newFormatter(rootOpts, cmd.OutOrStdout(), cmd.ErrOrStderr())
	cat, err := rootOpts.catalog()
	if err != nil {
		return err
	}
	level, err := version.Parse(levelArg)
	if err != nil {
		return WrapExitError(ExitCommandError, "level", err)
	}
	from, err := parseLevelFlag("from", opts.from)
	if err != nil {
		return err
	}

	res := planResult{Level: level, From: from}
	collect := false
	observer := func(ev dispatch.Event) {
		if !collect {
			return
		}
		res.Tiers = append(res.Tiers, planTier{Level: ev.Tier, Entries: ev.Entries, Action: ev.Action.String()})
		switch ev.Action {
		case dispatch.Resolved:
			res.Resolved += ev.Entries
		case dispatch.Stubbed:
			res.Stubbed += ev.Entries
		case dispatch.Kept:
			res.Kept += ev.Entries
		}
	}
	d, err := dispatch.New(cat, append(rootOpts.dispatchOptions(),
		dispatch.WithLinker(planLinker),
		dispatch.WithObserver(observer))...)
	if err != nil {
		return err
	}

	if !from.Zero() {
		if _, err := d.Bind(from, planResolver); err != nil {
			return WrapExitError(ExitFailure, "bind "+from.String(), err)
		}
	}
	collect = true
	tbl, err := d.Bind(level, planResolver)
	if err != nil {
		return WrapExitError(ExitFailure, "bind "+level.String(), err)
	}
	res.Beyond = tbl.BeyondCatalog()

	if f.Format == "yaml" {
		return f.YAML(res)
	}

	var rows [][]string
	for _, t := range res.Tiers {
		action := t.Action
		switch t.Action {
		case dispatch.Resolved.String():
			action = f.Good(action)
		case dispatch.Stubbed.String():
			action = f.Warn(action)
		}
		rows = append(rows, []string{t.Level.String(), fmt.Sprint(t.Entries), action})
	}
	if len(rows) == 0 {
		f.Printf("%s is already satisfied by a bind at %s; nothing changes\n", level, from)
		return nil
	}
	f.Table([]string{"TIER", "ENTRIES", "ACTION"}, rows)
	f.Printf("\n%d resolved, %d stubbed, %d kept\n", res.Resolved, res.Stubbed, res.Kept)
	if res.Beyond {
		f.Printf("%s\n", f.Warn(fmt.Sprintf("%s is beyond the catalog ceiling %s; newer entry points are not available", level, cat.Ceiling())))
	}
	return nil
}
