package parser

import (
	"strings"

	"mangrove/internal/ast"
	"mangrove/internal/diagnostics"
	"mangrove/internal/lexer"
	"mangrove/internal/symbols"
)

var literalTypes = []lexer.TokenType{
	lexer.BIN_LIT, lexer.OCT_LIT, lexer.HEX_LIT, lexer.INT_LIT,
	lexer.STRING_LIT, lexer.CHAR_LIT, lexer.BOOL_LIT, lexer.NULLPTR_LIT,
	lexer.FLOAT32_LIT, lexer.FLOAT64_LIT,
}

var binaryOperators = []lexer.TokenType{
	lexer.MUL_OP, lexer.ADD_OP, lexer.SHIFT_OP, lexer.BIT_OP,
	lexer.REL_OP, lexer.EQU_OP, lexer.LOGIC_OP,
}

func (p *Parser) isValueStart() bool {
	tok := p.peek()
	return tok.TypeIsOneOf(literalTypes...) ||
		tok.TypeIsOneOf(lexer.IDENT, lexer.LEFT_PAREN, lexer.INVERT, lexer.ADD_OP, lexer.INC_OP)
}

// valueStatement parses `expr [assignOp expr] ;`.
func (p *Parser) valueStatement() {
	p.emit(p.expression()...)
	if p.match(lexer.ASSIGN_OP) {
		p.emit(p.expression()...)
	}
	p.expectSemi()
}

// expression parses a flat operator chain. There is no operator node, so the
// operands come back in source order.
func (p *Parser) expression() []ast.Node {
	nodes := []ast.Node{p.unary()}
	for p.match(binaryOperators...) {
		nodes = append(nodes, p.unary())
	}
	return nodes
}

func (p *Parser) unary() ast.Node {
	for p.match(lexer.INVERT, lexer.ADD_OP, lexer.INC_OP) {
	}
	node := p.value()
	p.match(lexer.INC_OP)
	return node
}

// value parses one operand. Literals carry no symbol and are wrapped in
// Invalid placeholders.
func (p *Parser) value() ast.Node {
	tok := p.peek()
	switch {
	case tok.TypeIsOneOf(literalTypes...):
		return ast.NewInvalid(p.advance())
	case tok.Type() == lexer.IDENT:
		return p.reference()
	case tok.Type() == lexer.LEFT_PAREN:
		open := p.advance()
		group := ast.NewInvalid(open)
		group.Add(p.expression()...)
		p.consume(lexer.RIGHT_PAREN, "')'")
		return group
	}

	p.errorAtCurrent("value")
	if !tok.TypeIsOneOf(lexer.SEMI, lexer.RIGHT_BRACE, lexer.LEFT_BRACE, lexer.EOF) {
		p.advance()
	}
	return ast.NewInvalid(tok)
}

// reference parses an identifier or dotted path, then at most one index or
// call suffix.
func (p *Parser) reference() ast.Node {
	first := p.advance()

	var ident ast.Identifier
	if p.check(lexer.DOT) {
		ident = p.dottedIdent(first)
	} else {
		ident = p.ident(first)
	}

	switch {
	case p.check(lexer.LEFT_SQUARE):
		p.advance()
		index := ast.NewIndex(ident)
		if !p.check(lexer.RIGHT_SQUARE) {
			index.SetIndex(p.indexExpression())
		}
		p.consume(lexer.RIGHT_SQUARE, "']'")
		return index
	case p.check(lexer.LEFT_PAREN):
		ident.Add(p.callArguments())
	}
	return ident
}

func (p *Parser) indexExpression() ast.Node {
	nodes := p.expression()
	if len(nodes) == 1 {
		return nodes[0]
	}
	// several operands share a placeholder so the index stays one node
	holder := ast.NewInvalid(lexer.NewToken())
	holder.Add(nodes...)
	return holder
}

func (p *Parser) callArguments() *ast.CallArguments {
	open := p.advance()
	args := ast.NewCallArguments(open.Clone())

	if !p.check(lexer.RIGHT_PAREN) {
		for {
			for _, arg := range p.expression() {
				args.AddArgument(arg)
			}
			if !p.match(lexer.COMMA) {
				break
			}
		}
	}

	if closing := p.consume(lexer.RIGHT_PAREN, "')'"); closing != nil {
		args.AdjustEnd(closing, p.doc)
	}
	return args
}

func (p *Parser) ident(tok *lexer.Token) *ast.Ident {
	sym := p.table.Find(tok.Value())
	ident := ast.NewIdent(tok, sym)
	switch {
	case sym == nil:
		p.unresolved[ident] = reference{
			name:       tok.Value(),
			rng:        tok.Location(),
			candidates: p.table.VisibleNames(),
		}
	case sym.Type().IsInvalid():
		p.report(diagnostics.UninitializedType(tok.Value(), tok.Location()))
	}
	return ident
}

// dottedIdent resolves a.b.c through the member tables of struct symbols. A
// path that breaks anywhere resolves to nothing.
func (p *Parser) dottedIdent(first *lexer.Token) *ast.DottedIdent {
	segments := []*lexer.Token{first}
	for p.match(lexer.DOT) {
		seg := p.consume(lexer.IDENT, "member name")
		if seg == nil {
			break
		}
		segments = append(segments, seg)
	}

	names := make([]string, len(segments))
	for i, seg := range segments {
		names[i] = seg.Value()
	}
	tok := p.span(first, segments[len(segments)-1], strings.Join(names, "."))

	var seq []*symbols.MangroveSymbol
	var failed *reference

	sym := p.table.Find(first.Value())
	if sym == nil {
		failed = &reference{name: first.Value(), rng: first.Location(), candidates: p.table.VisibleNames()}
	} else {
		seq = append(seq, sym)
		for _, seg := range segments[1:] {
			structure := p.structOf(sym)
			if structure == nil {
				failed = &reference{name: seg.Value(), rng: seg.Location()}
				break
			}
			member := structure.SymbolTable().FindLocal(seg.Value())
			if member == nil {
				failed = &reference{name: seg.Value(), rng: seg.Location(), candidates: structure.SymbolTable().Names()}
				break
			}
			seq = append(seq, member)
			sym = member
		}
	}

	if failed != nil {
		dotted := ast.NewDottedIdent(tok, nil)
		p.unresolved[dotted] = *failed
		return dotted
	}
	return ast.NewDottedIdent(tok, seq)
}

// structOf returns the member scope reachable from sym: its own for a class,
// its class's for a struct-typed variable.
func (p *Parser) structOf(sym *symbols.MangroveSymbol) *symbols.SymbolStruct {
	if structure := sym.Structure(); structure != nil {
		return structure
	}
	if typeSym, ok := p.typeOf[sym]; ok {
		return typeSym.Structure()
	}
	return nil
}

// resolveReferences reports every unresolved identifier in source order.
func (p *Parser) resolveReferences() {
	for _, node := range p.nodes {
		ast.Inspect(node, func(n ast.Node) bool {
			ref, ok := p.unresolved[n]
			if !ok || n.Valid() {
				return true
			}
			p.report(diagnostics.UnresolvedReference(ref.name, ref.rng, diagnostics.SimilarNames(ref.name, ref.candidates)))
			return true
		})
	}
}
