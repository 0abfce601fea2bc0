package main

import (
	"fmt"
	"os/user"

	"github.com/spf13/cobra"

	"mangrove/repl"
)

func newReplCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "declare and reference symbols interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			name := "there"
			if currentUser, err := user.Current(); err == nil {
				name = currentUser.Username
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Welcome to the Mangrove REPL, %s!\n", name)
			return repl.Start(cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}
