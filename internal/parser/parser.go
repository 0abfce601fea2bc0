package parser

import (
	"sort"

	"github.com/tliron/commonlog"

	"mangrove/internal/ast"
	"mangrove/internal/diagnostics"
	"mangrove/internal/document"
	"mangrove/internal/lexer"
	"mangrove/internal/symbols"
)

var log = commonlog.GetLogger("mangrove.parser")

// LanguageID is the language identifier documents are opened with.
const LanguageID = "mangrove"

// Parser drives scope construction over a token stream. It owns the current
// symbol table; blocks and class bodies push a table on entry and pop it on
// exit. A Parser is single use.
type Parser struct {
	doc     lexer.Document
	tokens  []*lexer.Token
	current int

	table *symbols.SymbolTable
	root  *symbols.SymbolTable

	nodes       []ast.Node
	diagnostics []diagnostics.Diagnostic

	// declaration sites, for duplicate-symbol notes
	declared map[*symbols.MangroveSymbol]lexer.Range
	// struct type of each struct-typed variable
	typeOf map[*symbols.MangroveSymbol]*symbols.MangroveSymbol
	// why an identifier failed to resolve
	unresolved map[ast.Node]reference
}

type reference struct {
	name       string
	rng        lexer.Range
	candidates []string
}

// NewParser prepares tokens for parsing. Whitespace, newlines, comments and
// tokens the scanner already rejected are dropped.
func NewParser(tokens []*lexer.Token, doc lexer.Document) *Parser {
	p := &Parser{
		doc:        doc,
		declared:   make(map[*symbols.MangroveSymbol]lexer.Range),
		typeOf:     make(map[*symbols.MangroveSymbol]*symbols.MangroveSymbol),
		unresolved: make(map[ast.Node]reference),
	}
	for _, tok := range tokens {
		if tok.TypeIsOneOf(lexer.WHITESPACE, lexer.NEWLINE, lexer.COMMENT, lexer.INVALID) {
			continue
		}
		p.tokens = append(p.tokens, tok)
	}
	if len(p.tokens) == 0 || p.tokens[len(p.tokens)-1].Type() != lexer.EOF {
		eof := lexer.NewToken()
		eof.Set(lexer.EOF, "")
		p.tokens = append(p.tokens, eof)
	}
	return p
}

func (p *Parser) SymbolTable() *symbols.SymbolTable         { return p.table }
func (p *Parser) SetSymbolTable(table *symbols.SymbolTable) { p.table = table }

// Parse consumes the whole stream and returns the top-level value nodes.
func (p *Parser) Parse() []ast.Node {
	p.root = symbols.NewSymbolTable(p)
	for !p.isAtEnd() {
		p.statement()
	}
	p.resolveReferences()
	return p.nodes
}

func (p *Parser) Root() *symbols.SymbolTable            { return p.root }
func (p *Parser) Diagnostics() []diagnostics.Diagnostic { return p.diagnostics }

// ParseResult is everything a single parse of one document produced.
type ParseResult struct {
	Nodes       []ast.Node
	Root        *symbols.SymbolTable
	Tokens      []*lexer.Token
	ScanErrors  []lexer.ScanError
	Diagnostics []diagnostics.Diagnostic
}

// HasErrors reports whether any diagnostic is error level.
func (r *ParseResult) HasErrors() bool {
	for _, d := range r.Diagnostics {
		if d.IsError() {
			return true
		}
	}
	return false
}

// SemanticTokens exports every node's semantic tokens in source order.
func (r *ParseResult) SemanticTokens() []ast.SemanticToken {
	tokens := ast.Collect(r.Nodes...)
	sort.SliceStable(tokens, func(i, j int) bool {
		if tokens[i].Line != tokens[j].Line {
			return tokens[i].Line < tokens[j].Line
		}
		return tokens[i].Character < tokens[j].Character
	})
	return tokens
}

// Parse scans and parses doc with a fresh parser context. Diagnostics from
// both passes are returned in source order.
func Parse(doc *document.TextDocument) *ParseResult {
	scanner := lexer.NewScanner(doc.Text(), doc)
	tokens := scanner.ScanTokens()

	p := NewParser(tokens, doc)
	nodes := p.Parse()

	var diags []diagnostics.Diagnostic
	for _, err := range scanner.Errors() {
		diags = append(diags, diagnostics.FromScanError(err))
	}
	diags = append(diags, p.diagnostics...)
	sort.SliceStable(diags, func(i, j int) bool {
		return diags[i].Range.Start.Before(diags[j].Range.Start)
	})

	log.Debugf("parsed %s: %d nodes, %d diagnostics", doc.URI(), len(nodes), len(diags))

	return &ParseResult{
		Nodes:       nodes,
		Root:        p.root,
		Tokens:      tokens,
		ScanErrors:  scanner.Errors(),
		Diagnostics: diags,
	}
}

// ParseSource parses source as version 0 of a document at uri.
func ParseSource(uri, source string) *ParseResult {
	return Parse(document.New(uri, LanguageID, 0, source))
}
