package lsp

import (
	"mangrove/internal/ast"
)

// encodeSemanticTokens delta-encodes tokens that are already sorted by
// position, five integers per token: line delta, start delta (relative to the
// previous token on the same line), length, type index and modifier bits.
func encodeSemanticTokens(tokens []ast.SemanticToken) []uint32 {
	data := make([]uint32, 0, len(tokens)*5)

	var prevLine, prevChar int
	for _, tok := range tokens {
		if tok.Line < 0 || tok.Character < 0 || tok.Length <= 0 {
			continue
		}

		deltaLine := tok.Line - prevLine
		deltaStart := tok.Character
		if deltaLine == 0 {
			deltaStart = tok.Character - prevChar
		}

		data = append(data,
			uint32(deltaLine),
			uint32(deltaStart),
			uint32(tok.Length),
			uint32(tok.Type),
			uint32(tok.Modifiers),
		)

		prevLine = tok.Line
		prevChar = tok.Character
	}

	return data
}
