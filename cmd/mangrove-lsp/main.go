// SPDX-License-Identifier: Apache-2.0
package main

import (
	"context"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"
	"gitlab.com/tozd/go/errors"

	"mangrove/internal/lsp"
)

const lsName = "mangrove" // Name identifier for the language server

var version = "0.0.1" // Server version

type serveOptions struct {
	verbosity int
	logPath   string
	debug     bool
}

func main() {
	if err := newServeCommand().ExecuteContext(context.Background()); err != nil {
		println(err.Error())
		os.Exit(1)
	}
}

func newServeCommand() *cobra.Command {
	me := &serveOptions{}

	cmd := &cobra.Command{
		Use:           "mangrove-lsp",
		Short:         "start the mangrove language server on stdio",
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.Flags().CountVarP(&me.verbosity, "verbose", "v", "increase log verbosity (repeatable)")
	cmd.Flags().StringVar(&me.logPath, "log", "", "write logs to this file instead of stderr")
	cmd.Flags().BoolVar(&me.debug, "debug", false, "enable glsp protocol debug logging")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return me.Run()
	}

	return cmd
}

func (me *serveOptions) Run() error {
	var logPath *string
	if me.logPath != "" {
		logPath = &me.logPath
	}
	commonlog.Configure(me.verbosity, logPath)

	mangroveHandler := lsp.NewMangroveHandler(afero.NewOsFs(), version)

	handler := protocol.Handler{
		Initialize:                     mangroveHandler.Initialize,
		Initialized:                    mangroveHandler.Initialized,
		Shutdown:                       mangroveHandler.Shutdown,
		SetTrace:                       mangroveHandler.SetTrace,
		TextDocumentDidOpen:            mangroveHandler.TextDocumentDidOpen,
		TextDocumentDidClose:           mangroveHandler.TextDocumentDidClose,
		TextDocumentDidChange:          mangroveHandler.TextDocumentDidChange,
		TextDocumentSemanticTokensFull: mangroveHandler.TextDocumentSemanticTokensFull,
	}

	s := server.NewServer(&handler, lsName, me.debug)

	commonlog.GetLogger("mangrove").Notice("starting language server")

	if err := s.RunStdio(); err != nil {
		return errors.Errorf("error running language server: %w", err)
	}
	return nil
}
