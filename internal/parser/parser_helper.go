package parser

import (
	"mangrove/internal/ast"
	"mangrove/internal/diagnostics"
	"mangrove/internal/lexer"
)

func (p *Parser) advance() *lexer.Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) check(tt lexer.TokenType) bool {
	if p.isAtEnd() {
		return false
	}
	return p.peek().Type() == tt
}

func (p *Parser) checkNext(tt lexer.TokenType) bool {
	if p.current+1 >= len(p.tokens) {
		return false
	}
	return p.tokens[p.current+1].Type() == tt
}

func (p *Parser) match(types ...lexer.TokenType) bool {
	for _, tt := range types {
		if p.check(tt) {
			p.advance()
			return true
		}
	}
	return false
}

// consume returns the expected token, or nil after reporting what was found
// instead. Nothing is consumed on failure.
func (p *Parser) consume(tt lexer.TokenType, expected string) *lexer.Token {
	if p.check(tt) {
		return p.advance()
	}
	p.errorAtCurrent(expected)
	return nil
}

func (p *Parser) peek() *lexer.Token {
	return p.tokens[p.current]
}

func (p *Parser) previous() *lexer.Token {
	return p.tokens[p.current-1]
}

func (p *Parser) isAtEnd() bool {
	return p.peek().Type() == lexer.EOF
}

func (p *Parser) errorAtCurrent(expected string) {
	p.report(diagnostics.UnexpectedToken(p.peek(), expected))
}

func (p *Parser) report(d diagnostics.Diagnostic) {
	p.diagnostics = append(p.diagnostics, d)
}

func (p *Parser) emit(nodes ...ast.Node) {
	p.nodes = append(p.nodes, nodes...)
}

// synchronize skips to the end of the current statement: just past a ';', or
// up to a brace or the start of a declaration. Braces are never skipped so
// block nesting stays balanced.
func (p *Parser) synchronize() {
	for !p.isAtEnd() {
		switch p.peek().Type() {
		case lexer.SEMI:
			p.advance()
			return
		case lexer.LEFT_BRACE, lexer.RIGHT_BRACE, lexer.CLASS_DEF,
			lexer.TYPE, lexer.STORAGE_SPEC, lexer.LOCATION_SPEC, lexer.VISIBILITY:
			return
		}
		p.advance()
	}
}

func (p *Parser) expectSemi() {
	if p.match(lexer.SEMI) {
		return
	}
	p.errorAtCurrent("';'")
	p.synchronize()
}

// span returns a copy of first widened to the end of last, measured against
// the parser's document.
func (p *Parser) span(first, last *lexer.Token, value string) *lexer.Token {
	tok := first.Clone()
	tok.SetValue(value)
	tok.EndsAt(last.Location().End)
	tok.CalcLength(p.doc)
	return tok
}
