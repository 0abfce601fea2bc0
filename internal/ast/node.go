package ast

import (
	"fmt"
	"iter"

	"mangrove/internal/lexer"
	"mangrove/internal/symbols"
)

// Node is the closed set of value nodes: *Invalid, *Ident, *DottedIdent,
// *Index and *CallArguments.
type Node interface {
	NodeType() NodeType
	Token() *lexer.Token
	Children() []Node
	Add(children ...Node)

	// Valid is computed on every call from the node and its current children.
	Valid() bool

	// SemanticType is the node's own classification, if it has one.
	SemanticType() (SemanticTokenType, bool)

	// SemanticTokens yields the node's own classification and then each
	// child's export, depth first. The sequence can be ranged over again.
	SemanticTokens() iter.Seq[SemanticToken]

	String() string

	node()
}

// Identifier is implemented by *Ident and *DottedIdent.
type Identifier interface {
	Node
	Symbol() *symbols.MangroveSymbol
	Value() string
}

type nodeData struct {
	token    *lexer.Token
	children []Node
}

func (n *nodeData) Token() *lexer.Token  { return n.token }
func (n *nodeData) Children() []Node     { return n.children }
func (n *nodeData) Add(children ...Node) { n.children = append(n.children, children...) }
func (*nodeData) node()                  {}

func (n *nodeData) buildSemanticToken(typ SemanticTokenType, modifiers SemanticTokenModifier) SemanticToken {
	start := n.token.Location().Start
	return SemanticToken{
		Line:      start.Line,
		Character: start.Character,
		Length:    n.token.Length(),
		Type:      typ,
		Modifiers: modifiers,
	}
}

// Invalid is a placeholder or error marker. It reports itself valid so that
// a placeholder never poisons its parent before real content replaces it.
type Invalid struct {
	nodeData
}

func NewInvalid(token *lexer.Token) *Invalid {
	return &Invalid{nodeData{token: token}}
}

func (*Invalid) NodeType() NodeType                      { return INVALID }
func (*Invalid) Valid() bool                             { return true }
func (*Invalid) SemanticType() (SemanticTokenType, bool) { return 0, false }

func (n *Invalid) SemanticTokens() iter.Seq[SemanticToken] {
	return func(yield func(SemanticToken) bool) {
		exportChildren(n.children, yield)
	}
}

func (n *Invalid) String() string {
	return fmt.Sprintf("<Invalid '%s'>", n.token.Value())
}

type Ident struct {
	nodeData
	symbol      *symbols.MangroveSymbol
	declaration bool
}

// NewIdent binds token to sym. A nil sym records an unresolved reference.
func NewIdent(token *lexer.Token, sym *symbols.MangroveSymbol) *Ident {
	return &Ident{nodeData: nodeData{token: token}, symbol: sym}
}

func (*Ident) NodeType() NodeType { return IDENT }

func (i *Ident) Valid() bool {
	return i.symbol != nil && i.symbol.Value() != ""
}

func (*Ident) SemanticType() (SemanticTokenType, bool) { return SemanticVariable, true }

func (i *Ident) Symbol() *symbols.MangroveSymbol { return i.symbol }

func (i *Ident) Value() string {
	if i.symbol == nil {
		return ""
	}
	return i.symbol.Value()
}

// MarkDeclaration flags the identifier as the declaring occurrence of its
// symbol.
func (i *Ident) MarkDeclaration()    { i.declaration = true }
func (i *Ident) IsDeclaration() bool { return i.declaration }

func (i *Ident) SemanticTokens() iter.Seq[SemanticToken] {
	return func(yield func(SemanticToken) bool) {
		var modifiers SemanticTokenModifier
		if i.declaration {
			modifiers |= ModifierDeclaration
		}
		typ, _ := i.SemanticType()
		if !yield(i.buildSemanticToken(typ, modifiers)) {
			return
		}
		exportChildren(i.children, yield)
	}
}

func (i *Ident) String() string {
	return fmt.Sprintf("<Ident '%s'>", i.Value())
}

// DottedIdent is a qualified name such as a.b.c. The whole resolution path is
// kept; only its last symbol binds the identifier.
type DottedIdent struct {
	Ident
	symbolSeq []*symbols.MangroveSymbol
}

func NewDottedIdent(token *lexer.Token, symbolSeq []*symbols.MangroveSymbol) *DottedIdent {
	var sym *symbols.MangroveSymbol
	if len(symbolSeq) > 0 {
		sym = symbolSeq[len(symbolSeq)-1]
	}
	d := &DottedIdent{Ident: Ident{nodeData: nodeData{token: token}, symbol: sym}}
	d.symbolSeq = append(d.symbolSeq, symbolSeq...)
	return d
}

func (*DottedIdent) NodeType() NodeType { return DOTTED_IDENT }

func (d *DottedIdent) SymbolSeq() []*symbols.MangroveSymbol { return d.symbolSeq }

func (d *DottedIdent) String() string {
	return fmt.Sprintf("<DottedIdent '%s'>", d.Value())
}

// Index is target[index]. Until the index expression is parsed it holds a
// synthetic Invalid placeholder.
type Index struct {
	nodeData
	target Identifier
	index  Node
}

func NewIndex(target Identifier) *Index {
	return &Index{
		nodeData: nodeData{token: target.Token()},
		target:   target,
		index:    NewInvalid(lexer.NewToken()),
	}
}

func (*Index) NodeType() NodeType                      { return INDEX }
func (*Index) SemanticType() (SemanticTokenType, bool) { return 0, false }

func (x *Index) Valid() bool { return x.target.Valid() && x.index.Valid() }

func (x *Index) Target() Identifier  { return x.target }
func (x *Index) Index() Node         { return x.index }
func (x *Index) SetIndex(index Node) { x.index = index }

func (x *Index) SemanticTokens() iter.Seq[SemanticToken] {
	return func(yield func(SemanticToken) bool) {
		if !exportNode(x.target, yield) || !exportNode(x.index, yield) {
			return
		}
		exportChildren(x.children, yield)
	}
}

func (x *Index) String() string {
	return fmt.Sprintf("<Index into: '%s'>", x.target.Value())
}

// CallArguments is the argument list of a call. Every argument is also a
// child, so traversal and validity see the same nodes as Arguments.
type CallArguments struct {
	nodeData
	arguments []Node
}

// NewCallArguments starts an argument list at token, normally the opening
// parenthesis. The node takes ownership of token and widens it in AdjustEnd.
func NewCallArguments(token *lexer.Token) *CallArguments {
	return &CallArguments{nodeData: nodeData{token: token}}
}

func (*CallArguments) NodeType() NodeType                      { return CALL_ARGUMENTS }
func (*CallArguments) SemanticType() (SemanticTokenType, bool) { return 0, false }

func (c *CallArguments) Valid() bool {
	for _, arg := range c.arguments {
		if !arg.Valid() {
			return false
		}
	}
	return true
}

func (c *CallArguments) Empty() bool       { return len(c.arguments) == 0 }
func (c *CallArguments) Arguments() []Node { return c.arguments }

func (c *CallArguments) AddArgument(argument Node) {
	c.Add(argument)
	c.arguments = append(c.arguments, argument)
}

// AdjustEnd extends the node's span to the end of token and recomputes its
// length against doc straight away.
func (c *CallArguments) AdjustEnd(token *lexer.Token, doc lexer.Document) {
	c.token.EndsAt(token.Location().End)
	c.token.CalcLength(doc)
}

func (c *CallArguments) SemanticTokens() iter.Seq[SemanticToken] {
	return func(yield func(SemanticToken) bool) {
		exportChildren(c.children, yield)
	}
}

func (c *CallArguments) String() string {
	return fmt.Sprintf("<CallArguments: %d parameters>", len(c.arguments))
}
