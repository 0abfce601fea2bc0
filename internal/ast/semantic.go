package ast

// SemanticTokenType indexes into SemanticTokenTypes, the legend advertised to
// editors.
type SemanticTokenType int

const (
	SemanticNamespace SemanticTokenType = iota
	SemanticType
	SemanticClass
	SemanticEnum
	SemanticFunction
	SemanticParameter
	SemanticVariable
	SemanticProperty
	SemanticKeyword
	SemanticNumber
	SemanticString
	SemanticComment
	SemanticOperator
	SemanticModifier
)

var SemanticTokenTypes = []string{
	"namespace",
	"type",
	"class",
	"enum",
	"function",
	"parameter",
	"variable",
	"property",
	"keyword",
	"number",
	"string",
	"comment",
	"operator",
	"modifier",
}

func (t SemanticTokenType) String() string {
	if t < 0 || int(t) >= len(SemanticTokenTypes) {
		return "unknown"
	}
	return SemanticTokenTypes[t]
}

// SemanticTokenModifier is a bit set over SemanticTokenModifiers.
type SemanticTokenModifier uint32

const (
	ModifierDeclaration SemanticTokenModifier = 1 << iota
	ModifierDefinition
	ModifierReadonly
	ModifierStatic
)

var SemanticTokenModifiers = []string{
	"declaration",
	"definition",
	"readonly",
	"static",
}

// SemanticToken classifies one source range for highlighting. Line and
// Character are zero-based; Length is in the document's offset units.
type SemanticToken struct {
	Line      int
	Character int
	Length    int
	Type      SemanticTokenType
	Modifiers SemanticTokenModifier
}

// Collect materializes a node's export. Useful where a slice is needed, such
// as sorting before delta encoding.
func Collect(nodes ...Node) []SemanticToken {
	var tokens []SemanticToken
	for _, node := range nodes {
		for tok := range node.SemanticTokens() {
			tokens = append(tokens, tok)
		}
	}
	return tokens
}

func exportNode(node Node, yield func(SemanticToken) bool) bool {
	for tok := range node.SemanticTokens() {
		if !yield(tok) {
			return false
		}
	}
	return true
}

func exportChildren(children []Node, yield func(SemanticToken) bool) bool {
	for _, child := range children {
		if !exportNode(child, yield) {
			return false
		}
	}
	return true
}
