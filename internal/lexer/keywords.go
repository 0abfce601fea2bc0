package lexer

// keywordKind describes how an identifier-shaped word is re-classified.
type keywordKind struct {
	Type  TokenType
	Value string // replacement payload, empty keeps the word itself
}

var KEYWORDS = map[string]keywordKind{
	"true":    {Type: BOOL_LIT},
	"false":   {Type: BOOL_LIT},
	"nullptr": {Type: NULLPTR_LIT},

	"and": {Type: LOGIC_OP, Value: "&"},
	"or":  {Type: LOGIC_OP, Value: "|"},
	"not": {Type: INVERT, Value: "!"},

	"eeprom": {Type: LOCATION_SPEC},
	"flash":  {Type: LOCATION_SPEC},
	"rom":    {Type: LOCATION_SPEC},

	"const":    {Type: STORAGE_SPEC},
	"static":   {Type: STORAGE_SPEC},
	"volatile": {Type: STORAGE_SPEC},

	"new":    {Type: NEW_STMT},
	"delete": {Type: DELETE_STMT},
	"from":   {Type: FROM_STMT},
	"import": {Type: IMPORT_STMT},
	"as":     {Type: AS_STMT},
	"return": {Type: RETURN_STMT},
	"if":     {Type: IF_STMT},
	"elif":   {Type: ELIF_STMT},
	"else":   {Type: ELSE_STMT},
	"for":    {Type: FOR_STMT},
	"while":  {Type: WHILE_STMT},
	"do":     {Type: DO_STMT},

	"none":     {Type: NONE_TYPE},
	"class":    {Type: CLASS_DEF},
	"enum":     {Type: ENUM_DEF},
	"function": {Type: FUNCTION_DEF},
	"operator": {Type: OPERATOR_DEF},

	"public":    {Type: VISIBILITY},
	"private":   {Type: VISIBILITY},
	"protected": {Type: VISIBILITY},

	"unsafe": {Type: UNSAFE},

	"int8":   {Type: TYPE},
	"int16":  {Type: TYPE},
	"int32":  {Type: TYPE},
	"int64":  {Type: TYPE},
	"uint8":  {Type: TYPE},
	"uint16": {Type: TYPE},
	"uint32": {Type: TYPE},
	"uint64": {Type: TYPE},
	"char":   {Type: TYPE},
	"string": {Type: TYPE},
	"bool":   {Type: TYPE},
}

// LookupIdent classifies a scanned word, returning the token type and the
// payload the token should carry.
func LookupIdent(word string) (TokenType, string) {
	if kw, ok := KEYWORDS[word]; ok {
		if kw.Value != "" {
			return kw.Type, kw.Value
		}
		return kw.Type, word
	}
	return IDENT, word
}

func IsLocationSpec(word string) bool { return lookupKind(word) == LOCATION_SPEC }
func IsStorageSpec(word string) bool  { return lookupKind(word) == STORAGE_SPEC }
func IsVisibility(word string) bool   { return lookupKind(word) == VISIBILITY }
func IsBuiltinType(word string) bool  { return lookupKind(word) == TYPE }

func lookupKind(word string) TokenType {
	t, _ := LookupIdent(word)
	return t
}
