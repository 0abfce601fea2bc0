package diagnostics

// Diagnostic codes reported by the front end.
//
// Code ranges:
// E0001-E0099: Scope and symbol errors
// E0100-E0199: Lexical and parse errors
// W0001-W0099: Warnings
const (
	// E0001: Identifier does not resolve in any enclosing scope
	ErrorUnresolvedReference = "E0001"

	// E0002: Name already bound in the current scope
	ErrorDuplicateSymbol = "E0002"

	// E0003: Symbol used before its type was assigned
	ErrorUninitializedType = "E0003"

	// E0100: Token not allowed here
	ErrorUnexpectedToken = "E0100"

	// E0101: Malformed literal
	ErrorInvalidLiteral = "E0101"

	// E0102: Character not valid in source
	ErrorUnexpectedCharacter = "E0102"

	// E0103: String, character literal or block comment not closed
	ErrorUnterminatedLiteral = "E0103"

	// W0001: Declaration hides a binding from an enclosing scope
	WarningShadowedSymbol = "W0001"
)

// GetErrorDescription returns a human-readable description of the code.
func GetErrorDescription(code string) string {
	switch code {
	case ErrorUnresolvedReference:
		return "Identifier is not declared in this scope or any enclosing scope"
	case ErrorDuplicateSymbol:
		return "Name is already declared in the current scope"
	case ErrorUninitializedType:
		return "Symbol has no type assigned"
	case ErrorUnexpectedToken:
		return "Token is not valid at this position"
	case ErrorInvalidLiteral:
		return "Literal is malformed"
	case ErrorUnexpectedCharacter:
		return "Character cannot start a token"
	case ErrorUnterminatedLiteral:
		return "Literal or comment is not terminated"
	case WarningShadowedSymbol:
		return "Declaration shadows a name from an enclosing scope"
	default:
		return "Unknown error code"
	}
}

// IsWarning returns true if the code is a warning rather than an error.
func IsWarning(code string) bool {
	return code != "" && code[0] == 'W'
}

// GetErrorCategory returns the category of the code based on its range.
func GetErrorCategory(code string) string {
	switch {
	case code >= "E0001" && code < "E0100":
		return "Scope"
	case code >= "E0100" && code < "E0200":
		return "Parser"
	case IsWarning(code):
		return "Warning"
	default:
		return "Unknown"
	}
}
