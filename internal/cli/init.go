package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/tinyrange/glbind/internal/gl/config"
)

type initOptions struct {
	force   bool
	catalog string
}

// NewInitCommand creates the init command.
func NewInitCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &initOptions{}
	cmd := &cobra.Command{
		Use:   "init [dir]",
		Short: "Write a default " + config.Filename,
		Long: `Write a configuration file with the defaults to dir (default: the
current directory). With --catalog, also write the loaded catalog to a file
that can serve as a starting point for an extension catalog.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			return runInit(rootOpts, opts, dir, cmd)
		},
	}
	cmd.Flags().BoolVar(&opts.force, "force", false, "overwrite an existing file")
	cmd.Flags().StringVar(&opts.catalog, "catalog", "", "also write the catalog to this file")
	return cmd
}

func runInit(rootOpts *RootOptions, opts *initOptions, dir string, cmd *cobra.Command) error {
	f := newFormatter(rootOpts, cmd.OutOrStdout(), cmd.ErrOrStderr())

	path := filepath.Join(dir, config.Filename)
	if _, err := os.Stat(path); err == nil && !opts.force {
		return WrapExitError(ExitCommandError, fmt.Sprintf("%s exists; use --force to overwrite", path), nil)
	}
	if err := config.Write(path, rootOpts.cfg); err != nil {
		return WrapExitError(ExitFailure, "write config", err)
	}
	f.Printf("wrote %s\n", path)

	if opts.catalog == "" {
		return nil
	}
	cat, err := rootOpts.catalog()
	if err != nil {
		return err
	}
	out, err := os.Create(opts.catalog)
	if err != nil {
		return WrapExitError(ExitFailure, "write catalog", err)
	}
	defer out.Close()
	if err := cat.WriteYAML(out); err != nil {
		return WrapExitError(ExitFailure, "write catalog", err)
	}
	f.Printf("wrote %s (%d entries)\n", opts.catalog, cat.Len())
	return nil
}
