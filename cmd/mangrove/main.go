// SPDX-License-Identifier: Apache-2.0
package main

import (
	"context"
	"os"
	"runtime/debug"

	"github.com/fatih/color"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
	"gitlab.com/tozd/go/errors"
)

type rootOptions struct {
	noColor bool
	verbose bool
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		println(err.Error())
		os.Exit(1)
	}
}

func run(args []string) error {
	rootCmd := newRootCommand(afero.NewOsFs())
	rootCmd.SetArgs(args)

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		return errors.Errorf("failed to execute command: %w", err)
	}

	return nil
}

func newRootCommand(fs afero.Fs) *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:           "mangrove",
		Short:         "Inspect and check mangrove source files",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if opts.noColor {
				color.NoColor = true
			}
			verbosity := -1
			if opts.verbose {
				verbosity = 2
			}
			commonlog.Configure(verbosity, nil)
		},
	}

	info, ok := debug.ReadBuildInfo()
	if !ok {
		rootCmd.Version = "unknown"
	} else {
		rootCmd.Version = info.Main.Version
	}

	rootCmd.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().BoolVar(&opts.verbose, "verbose", false, "enable debug logging")

	rootCmd.AddCommand(newTokensCommand(fs))
	rootCmd.AddCommand(newCheckCommand(fs))
	rootCmd.AddCommand(newHighlightCommand(fs))
	rootCmd.AddCommand(newReplCommand())

	return rootCmd
}
