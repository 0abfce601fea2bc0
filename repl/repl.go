// Package repl SPDX-License-Identifier: Apache-2.0
package repl

import (
	"bufio"
	"fmt"
	"io"
	"math"

	"gitlab.com/tozd/go/errors"

	"mangrove/internal/document"
	"mangrove/internal/lexer"
	"mangrove/internal/parser"
)

const PROMPT = ">> "

const sessionURI = "repl://session"

// Start reads lines into one growing document, so earlier declarations stay
// in scope. After each line the document is reparsed and the nodes and
// diagnostics that start on that line are printed.
func Start(in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	doc := document.New(sessionURI, parser.LanguageID, 0, "")

	for version := int32(1); ; version++ {
		fmt.Fprint(out, PROMPT)
		if !scanner.Scan() {
			fmt.Fprintln(out)
			if err := scanner.Err(); err != nil {
				return errors.Errorf("failed to read input: %w", err)
			}
			return nil
		}

		line := doc.LineCount() - 1
		end := doc.PositionAt(math.MaxInt)
		if err := doc.ApplyChange(lexer.Range{Start: end, End: end}, scanner.Text()+"\n", version); err != nil {
			return errors.Errorf("failed to extend session: %w", err)
		}

		result := parser.Parse(doc)
		for _, node := range result.Nodes {
			if node.Token().Location().Start.Line == line {
				fmt.Fprintln(out, node.String())
			}
		}
		for _, d := range result.Diagnostics {
			if d.Range.Start.Line == line {
				fmt.Fprintln(out, d.String())
			}
		}
	}
}
