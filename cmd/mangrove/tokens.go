package main

import (
	"fmt"
	"io"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"mangrove/internal/document"
	"mangrove/internal/lexer"
	"mangrove/internal/parser"
)

type tokensHandler struct {
	fs afero.Fs
}

func newTokensCommand(fs afero.Fs) *cobra.Command {
	me := &tokensHandler{fs: fs}

	cmd := &cobra.Command{
		Use:   "tokens <file>",
		Short: "print the token stream of a file",
		Args:  cobra.ExactArgs(1),
	}

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return me.Run(cmd.OutOrStdout(), args[0])
	}

	return cmd
}

// Run prints every token, trivia included, followed by any scan errors.
func (me *tokensHandler) Run(out io.Writer, path string) error {
	doc, err := readDocument(me.fs, path)
	if err != nil {
		return err
	}

	scanner := lexer.NewScanner(doc.Text(), doc)
	for _, tok := range scanner.ScanTokens() {
		fmt.Fprintln(out, tok.String())
	}
	for _, scanErr := range scanner.Errors() {
		fmt.Fprintf(out, "%d:%d: %s\n", scanErr.Range.Start.Line+1, scanErr.Range.Start.Character+1, scanErr.Message)
	}

	return nil
}

func readDocument(fs afero.Fs, path string) (*document.TextDocument, error) {
	content, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, errors.Errorf("failed to read file %s: %w", path, err)
	}
	return document.New("file://"+path, parser.LanguageID, 0, string(content)), nil
}
