package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"mangrove/internal/ast"
	"mangrove/internal/parser"
)

type highlightHandler struct {
	fs afero.Fs
}

func newHighlightCommand(fs afero.Fs) *cobra.Command {
	me := &highlightHandler{fs: fs}

	cmd := &cobra.Command{
		Use:   "highlight <file>",
		Short: "print the semantic tokens exported for a file",
		Args:  cobra.ExactArgs(1),
	}

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return me.Run(cmd.OutOrStdout(), args[0])
	}

	return cmd
}

func (me *highlightHandler) Run(out io.Writer, path string) error {
	doc, err := readDocument(me.fs, path)
	if err != nil {
		return err
	}

	result := parser.Parse(doc)
	for _, tok := range result.SemanticTokens() {
		fmt.Fprintln(out, formatSemanticToken(tok))
	}

	return nil
}

// formatSemanticToken renders one-based positions, e.g. "2:7+1 variable [declaration]".
func formatSemanticToken(tok ast.SemanticToken) string {
	var modifiers []string
	for i, name := range ast.SemanticTokenModifiers {
		if tok.Modifiers&(1<<i) != 0 {
			modifiers = append(modifiers, name)
		}
	}

	line := fmt.Sprintf("%d:%d+%d %s", tok.Line+1, tok.Character+1, tok.Length, tok.Type)
	if len(modifiers) > 0 {
		line += " [" + strings.Join(modifiers, ",") + "]"
	}
	return line
}
