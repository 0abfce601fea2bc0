package lexer

// regenerate tokentype_string.go with `go generate ./internal/lexer`
//
//go:generate stringer -type=TokenType
type TokenType int

const (
	// Special tokens
	INVALID TokenType = iota
	EOF
	WHITESPACE
	COMMENT
	NEWLINE

	// Punctuation
	DOT
	ELLIPSIS
	SEMI
	IDENT
	LEFT_PAREN
	RIGHT_PAREN
	LEFT_BRACE
	RIGHT_BRACE
	LEFT_SQUARE
	RIGHT_SQUARE
	COMMA
	COLON

	// Literals
	BIN_LIT
	OCT_LIT
	HEX_LIT
	INT_LIT
	STRING_LIT
	CHAR_LIT
	BOOL_LIT
	NULLPTR_LIT

	// Operators by precedence class
	INVERT
	INC_OP
	MUL_OP
	ADD_OP
	SHIFT_OP
	BIT_OP
	REL_OP
	EQU_OP
	LOGIC_OP

	// Type and storage markers
	LOCATION_SPEC
	STORAGE_SPEC
	TYPE
	ASSIGN_OP

	// Statements
	FROM_STMT
	IMPORT_STMT
	AS_STMT
	NEW_STMT
	DELETE_STMT
	RETURN_STMT
	IF_STMT
	ELIF_STMT
	ELSE_STMT
	FOR_STMT
	WHILE_STMT
	DO_STMT

	// Declarations
	NONE_TYPE
	ARROW
	CLASS_DEF
	ENUM_DEF
	FUNCTION_DEF
	OPERATOR_DEF
	DECORATOR
	VISIBILITY
	UNSAFE

	// Synthetic literal categories, only produced while disambiguating
	// numeric literals.
	FLOAT32_LIT
	FLOAT64_LIT
)

// Position is a zero-based line/character pair. Characters count UTF-16
// code units, matching the language server protocol.
type Position struct {
	Line      int
	Character int
}

// NoPosition is the sentinel used by tokens that have not been placed.
var NoPosition = Position{Line: -1, Character: -1}

func (p Position) Before(other Position) bool {
	if p.Line != other.Line {
		return p.Line < other.Line
	}
	return p.Character < other.Character
}

type Range struct {
	Start Position
	End   Position
}

// Document is the text-document capability the token model needs: mapping a
// position to an absolute offset in the same units as Position.Character.
type Document interface {
	OffsetAt(pos Position) int
}
