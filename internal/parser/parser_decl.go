package parser

import (
	"mangrove/internal/ast"
	"mangrove/internal/diagnostics"
	"mangrove/internal/lexer"
	"mangrove/internal/symbols"
)

func (p *Parser) statement() {
	switch {
	case p.check(lexer.LEFT_BRACE):
		p.block()
	case p.check(lexer.CLASS_DEF):
		p.classDecl()
	case p.isDeclarationStart():
		p.declaration(nil)
	case p.check(lexer.SEMI):
		p.advance()
	case p.isValueStart():
		p.valueStatement()
	default:
		p.errorAtCurrent("")
		p.advance()
		p.synchronize()
	}
}

// block parses `{ statement* }` in a scope of its own. The scope is popped
// even when the closing brace is missing.
func (p *Parser) block() {
	p.advance()
	scope := symbols.NewSymbolTable(p)
	for !p.check(lexer.RIGHT_BRACE) && !p.isAtEnd() {
		p.statement()
	}
	scope.Pop(p)
	p.consume(lexer.RIGHT_BRACE, "'}'")
}

func (p *Parser) isDeclarationStart() bool {
	if p.check(lexer.STORAGE_SPEC) || p.check(lexer.LOCATION_SPEC) || p.check(lexer.VISIBILITY) || p.check(lexer.TYPE) {
		return true
	}
	return p.check(lexer.IDENT) && p.checkNext(lexer.IDENT)
}

// declaration parses `[storage...] type name [= expr] ;`. Inside a class body
// structure is the class's member list.
func (p *Parser) declaration(structure *symbols.SymbolStruct) {
	for p.match(lexer.STORAGE_SPEC, lexer.LOCATION_SPEC, lexer.VISIBILITY) {
	}

	mask, typeSym, ok := p.declarationType()
	if !ok {
		p.synchronize()
		return
	}

	nameTok := p.consume(lexer.IDENT, "identifier")
	if nameTok == nil {
		p.synchronize()
		return
	}

	ident := p.declare(nameTok, structure == nil)
	if sym := ident.Symbol(); sym != nil {
		if mask != symbols.Invalid {
			sym.Type().Assign(mask)
		}
		if typeSym != nil {
			p.typeOf[sym] = typeSym
		}
		if structure != nil {
			structure.AddMember(sym)
		}
	}
	p.emit(ident)

	if p.match(lexer.ASSIGN_OP) {
		p.emit(p.expression()...)
	}
	p.expectSemi()
}

// declarationType consumes the type of a declaration. Builtin names map to
// their masks; any other name must resolve to a class.
func (p *Parser) declarationType() (symbols.SymbolTypes, *symbols.MangroveSymbol, bool) {
	if p.check(lexer.TYPE) {
		tok := p.advance()
		mask, _ := symbols.BuiltinType(tok.Value())
		return mask, nil, true
	}

	tok := p.consume(lexer.IDENT, "type")
	if tok == nil {
		return symbols.Invalid, nil, false
	}

	sym := p.table.Find(tok.Value())
	ident := ast.NewIdent(tok, sym)
	p.emit(ident)

	switch {
	case sym == nil:
		p.unresolved[ident] = reference{
			name:       tok.Value(),
			rng:        tok.Location(),
			candidates: p.typeNames(),
		}
		return symbols.Invalid, nil, true
	case sym.Type().IsInvalid() || sym.Type().Mask(symbols.Type) == 0:
		p.errorAt(tok, "type")
		return symbols.Invalid, nil, true
	}

	// a variable of a class type is a struct value, not a type
	return sym.Type().Value() &^ symbols.Type, sym, true
}

// declare adds name to the current table. A duplicate keeps the first
// binding and yields an unbound identifier. Shadowing is only reported for
// ordinary scopes.
func (p *Parser) declare(nameTok *lexer.Token, warnShadow bool) *ast.Ident {
	name := nameTok.Value()
	sym, err := p.table.Add(name)
	if err != nil {
		var previous *lexer.Range
		if rng, ok := p.declared[p.table.FindLocal(name)]; ok {
			previous = &rng
		}
		p.report(diagnostics.DuplicateSymbol(name, nameTok.Location(), previous))
		ident := ast.NewIdent(nameTok, nil)
		ident.MarkDeclaration()
		return ident
	}

	p.declared[sym] = nameTok.Location()
	if warnShadow && p.table.Shadows(name) != nil {
		p.report(diagnostics.ShadowedSymbol(name, nameTok.Location()))
	}

	ident := ast.NewIdent(nameTok, sym)
	ident.MarkDeclaration()
	return ident
}

// classDecl parses `class Name { declaration* }`. The class symbol owns the
// member scope; members go into both its table and its member list.
func (p *Parser) classDecl() {
	p.advance()

	nameTok := p.consume(lexer.IDENT, "class name")
	if nameTok == nil {
		p.synchronize()
		return
	}

	ident := p.declare(nameTok, true)
	p.emit(ident)

	sym := ident.Symbol()
	if sym == nil {
		// keep parsing the body against a detached symbol
		sym = symbols.NewSymbol(nameTok.Value())
	}

	if p.consume(lexer.LEFT_BRACE, "'{'") == nil {
		sym.Type().Assign(symbols.Struct | symbols.Type)
		p.synchronize()
		return
	}

	structure := sym.AllocStruct(p)
	sym.Type().Append(symbols.Type)

	for !p.check(lexer.RIGHT_BRACE) && !p.isAtEnd() {
		switch {
		case p.check(lexer.CLASS_DEF):
			p.classDecl()
		case p.isDeclarationStart():
			p.declaration(structure)
		case p.check(lexer.SEMI):
			p.advance()
		default:
			p.errorAtCurrent("member declaration")
			p.advance()
			p.synchronize()
		}
	}

	structure.SymbolTable().Pop(p)
	p.consume(lexer.RIGHT_BRACE, "'}'")
	p.match(lexer.SEMI)
}

func (p *Parser) errorAt(tok *lexer.Token, expected string) {
	p.report(diagnostics.UnexpectedToken(tok, expected))
}

// typeNames lists the visible names that denote types.
func (p *Parser) typeNames() []string {
	var names []string
	for _, name := range p.table.VisibleNames() {
		if sym := p.table.Find(name); sym != nil && !sym.Type().IsInvalid() && sym.Type().Mask(symbols.Type) != 0 {
			names = append(names, name)
		}
	}
	return names
}
