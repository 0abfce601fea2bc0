package lexer

// Character classification used by the scanner. Every predicate is total
// over runes; composites are defined only in terms of the primitives.

func IsNewLine(c rune) bool    { return c == '\n' || c == '\r' }
func IsWhiteSpace(c rune) bool { return c == ' ' || c == '\t' || IsNewLine(c) }

// IsAlpha reports whether c may start an identifier. Beyond ASCII letters it
// admits the Latin-1 supplement upward, skipping the general punctuation and
// format block (U+2001-U+206F), the surrogate gap, the combining half marks
// (U+FE50-U+FE6F) and everything past the CJK compatibility supplement.
func IsAlpha(c rune) bool {
	return (c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		(c >= 0x00C0 && c <= 0x2000) ||
		(c >= 0x2070 && c <= 0xD7FF) ||
		(c >= 0xE000 && c <= 0xFE4F) ||
		(c >= 0xFE70 && c <= 0xFEFF) ||
		(c >= 0x10000 && c <= 0x2FA1F)
}

func IsDigit(c rune) bool      { return c >= '0' && c <= '9' }
func IsAlphaNum(c rune) bool   { return IsAlpha(c) || IsDigit(c) }
func IsUnderscore(c rune) bool { return c == '_' }

func IsBeginBin(c rune) bool { return c == 'b' || c == 'B' }
func IsBeginOct(c rune) bool { return c == 'c' || c == 'C' }
func IsBeginHex(c rune) bool { return c == 'x' || c == 'X' }

func IsBin(c rune) bool { return c == '0' || c == '1' }
func IsOct(c rune) bool { return c >= '0' && c <= '7' }

func IsHex(c rune) bool {
	return (c >= '0' && c <= '9') ||
		(c >= 'A' && c <= 'F') ||
		(c >= 'a' && c <= 'f')
}

func IsDot(c rune) bool { return c == '.' }

// IsNormalAlpha reports whether c can appear unescaped inside a string or
// character literal: printable, not a quote, not a backslash, not a control
// character and not a lone surrogate.
func IsNormalAlpha(c rune) bool {
	return c == ' ' || c == '!' ||
		(c >= '#' && c <= '&') ||
		(c >= '(' && c <= '[') ||
		(c >= ']' && c <= '~') ||
		(c >= 0x0080 && c <= 0xD7FF) ||
		(c >= 0xE000 && c <= 0x10FFFF)
}

func IsSingleQuote(c rune) bool { return c == '\'' }
func IsDoubleQuote(c rune) bool { return c == '"' }
func IsEquals(c rune) bool      { return c == '=' }
