package lexer

import (
	"fmt"
	"strconv"
	"strings"
)

type ScanErrorKind int

const (
	UnexpectedCharacter ScanErrorKind = iota
	InvalidLiteral
	Unterminated
)

type ScanError struct {
	Kind    ScanErrorKind
	Message string
	Range   Range
}

// Scanner is the reference tokenizer. It walks the source rune by rune,
// tracking zero-based line/UTF-16 character positions, and measures every
// finished token against doc.
type Scanner struct {
	source   []rune
	doc      Document
	tokens   []*Token
	start    int
	current  int
	startPos Position
	pos      Position
	errors   []ScanError
}

func NewScanner(source string, doc Document) *Scanner {
	return &Scanner{
		source: []rune(source),
		doc:    doc,
	}
}

// ScanTokens scans the whole source. The returned slice always ends with an
// EOF token; malformed input produces INVALID tokens and scan errors.
func (s *Scanner) ScanTokens() []*Token {
	for !s.isAtEnd() {
		s.start = s.current
		s.startPos = s.pos
		s.scanToken()
	}
	s.start = s.current
	s.startPos = s.pos
	s.addToken(EOF, "")
	return s.tokens
}

func (s *Scanner) Errors() []ScanError { return s.errors }

func (s *Scanner) scanToken() {
	c := s.advance()
	switch c {
	case ' ', '\t':
		for s.peek() == ' ' || s.peek() == '\t' {
			s.advance()
		}
		s.addToken(WHITESPACE, s.lexeme())
	case '\r', '\n':
		if c == '\r' {
			s.matchNext('\n')
		}
		s.addToken(NEWLINE, "")
	case '#':
		s.scanLineComment()
	case '.':
		s.scanDot()
	case ';':
		s.addToken(SEMI, ";")
	case '{':
		s.addToken(LEFT_BRACE, "{")
	case '}':
		s.addToken(RIGHT_BRACE, "}")
	case '(':
		s.addToken(LEFT_PAREN, "(")
	case ')':
		s.addToken(RIGHT_PAREN, ")")
	case '[':
		s.addToken(LEFT_SQUARE, "[")
	case ']':
		s.addToken(RIGHT_SQUARE, "]")
	case ',':
		s.addToken(COMMA, ",")
	case ':':
		s.addToken(COLON, ":")
	case '"':
		s.scanString()
	case '\'':
		s.scanChar()
	case '~':
		s.addToken(INVERT, "~")
	case '@':
		s.scanDecorator()

	// Operators with potential multi-character variants
	case '/':
		s.scanSlashOperator()
	case '*', '%':
		s.scanMulOperator()
	case '+', '-':
		s.scanAddOperator(c)
	case '&', '|':
		s.scanBooleanOperator(c)
	case '^':
		s.scanBitwiseOperator()
	case '<', '>':
		s.scanRelationOperator(c)
	case '!', '=':
		s.scanEqualityOperator(c)

	default:
		s.scanExtended(c)
	}
}

func (s *Scanner) scanDot() {
	if IsDot(s.peek()) && IsDot(s.peekNext()) {
		s.advance()
		s.advance()
		s.addToken(ELLIPSIS, "...")
		return
	}
	s.addToken(DOT, ".")
}

func (s *Scanner) scanSlashOperator() {
	if s.matchNext('*') {
		s.scanBlockComment()
	} else if s.matchNext('/') {
		s.scanLineComment()
	} else if s.matchNext('=') {
		s.addToken(ASSIGN_OP, s.lexeme())
	} else {
		s.addToken(MUL_OP, s.lexeme())
	}
}

func (s *Scanner) scanMulOperator() {
	if s.matchNext('=') {
		s.addToken(ASSIGN_OP, s.lexeme())
	} else {
		s.addToken(MUL_OP, s.lexeme())
	}
}

func (s *Scanner) scanAddOperator(c rune) {
	if s.matchNext('=') {
		s.addToken(ASSIGN_OP, s.lexeme())
	} else if c == '-' && s.matchNext('>') {
		s.addToken(ARROW, s.lexeme())
	} else if s.matchNext(c) {
		s.addToken(INC_OP, s.lexeme())
	} else {
		s.addToken(ADD_OP, s.lexeme())
	}
}

func (s *Scanner) scanBooleanOperator(c rune) {
	if s.matchNext('=') {
		s.addToken(ASSIGN_OP, s.lexeme())
	} else if s.matchNext(c) {
		// "&&" and "and" both lex to LOGIC_OP "&"
		s.addToken(LOGIC_OP, string(c))
	} else {
		s.addToken(BIT_OP, s.lexeme())
	}
}

func (s *Scanner) scanBitwiseOperator() {
	if s.matchNext('=') {
		s.addToken(ASSIGN_OP, s.lexeme())
	} else {
		s.addToken(BIT_OP, s.lexeme())
	}
}

func (s *Scanner) scanRelationOperator(c rune) {
	if s.matchNext('=') {
		s.addToken(REL_OP, s.lexeme())
	} else if s.matchNext(c) {
		if s.matchNext('=') {
			s.addToken(ASSIGN_OP, s.lexeme())
		} else {
			s.addToken(SHIFT_OP, s.lexeme())
		}
	} else {
		s.addToken(REL_OP, s.lexeme())
	}
}

func (s *Scanner) scanEqualityOperator(c rune) {
	if s.matchNext('=') {
		s.addToken(EQU_OP, s.lexeme())
	} else if IsEquals(c) {
		s.addToken(ASSIGN_OP, s.lexeme())
	} else {
		s.addToken(INVERT, s.lexeme())
	}
}

func (s *Scanner) scanLineComment() {
	bodyStart := s.current
	for !s.isAtEnd() && !IsNewLine(s.peek()) {
		s.advance()
	}
	s.addToken(COMMENT, string(s.source[bodyStart:s.current]))
}

func (s *Scanner) scanBlockComment() {
	bodyStart := s.current
	for !s.isAtEnd() {
		if s.peek() == '*' && s.peekNext() == '/' {
			body := string(s.source[bodyStart:s.current])
			s.advance()
			s.advance()
			s.addToken(COMMENT, body)
			return
		}
		s.advance()
	}
	s.reportError(Unterminated, "unterminated block comment")
	s.addToken(INVALID, "")
}

func (s *Scanner) scanString() {
	var lit strings.Builder
	invalid := false

	for {
		if s.isAtEnd() || IsNewLine(s.peek()) {
			s.reportError(Unterminated, "unterminated string literal")
			s.addToken(INVALID, "")
			return
		}

		c := s.advance()
		if IsDoubleQuote(c) {
			break
		}

		if c == '\\' {
			r, ok := s.scanEscape()
			if !ok || IsSingleQuote(r) {
				invalid = true
			}
			lit.WriteRune(r)
			continue
		}

		if !IsNormalAlpha(c) && !IsSingleQuote(c) {
			invalid = true
		}
		lit.WriteRune(c)
	}

	if invalid {
		s.reportError(InvalidLiteral, "invalid character or escape sequence in string literal")
		s.addToken(INVALID, "")
		return
	}
	s.addToken(STRING_LIT, lit.String())
}

func (s *Scanner) scanChar() {
	var lit []rune
	invalid := false

	for {
		if s.isAtEnd() || IsNewLine(s.peek()) {
			s.reportError(Unterminated, "unterminated character literal")
			s.addToken(INVALID, "")
			return
		}

		c := s.advance()
		if IsSingleQuote(c) {
			break
		}

		if c == '\\' {
			r, ok := s.scanEscape()
			if !ok || IsDoubleQuote(r) || r == '/' {
				invalid = true
			}
			lit = append(lit, r)
			continue
		}

		if !IsNormalAlpha(c) && !IsDoubleQuote(c) {
			invalid = true
		}
		lit = append(lit, c)
	}

	if invalid || len(lit) != 1 {
		s.reportError(InvalidLiteral, "character literal must hold exactly one valid character")
		s.addToken(INVALID, "")
		return
	}
	s.addToken(CHAR_LIT, string(lit))
}

// scanEscape consumes the character(s) after a backslash.
func (s *Scanner) scanEscape() (rune, bool) {
	if s.isAtEnd() {
		return 0, false
	}

	c := s.advance()
	switch c {
	case '\\':
		return '\\', true
	case 'b':
		return '\b', true
	case 'r':
		return '\r', true
	case 'n':
		return '\n', true
	case 't':
		return '\t', true
	case 'v':
		return '\v', true
	case 'f':
		return '\f', true
	case 'a':
		return '\a', true
	case 'u', 'U':
		digitsStart := s.current
		for IsHex(s.peek()) && s.current-digitsStart < 6 {
			s.advance()
		}
		if s.current == digitsStart {
			return 0, false
		}
		code, err := strconv.ParseUint(string(s.source[digitsStart:s.current]), 16, 32)
		if err != nil || code > 0x10FFFF || (code >= 0xD800 && code <= 0xDFFF) {
			return 0, false
		}
		return rune(code), true
	}
	return c, true
}

func (s *Scanner) scanDecorator() {
	if !IsAlpha(s.peek()) && !IsUnderscore(s.peek()) {
		s.reportError(UnexpectedCharacter, "expected decorator name after '@'")
		s.addToken(INVALID, "")
		return
	}

	nameStart := s.current
	for IsAlphaNum(s.peek()) || IsUnderscore(s.peek()) {
		s.advance()
	}
	s.addToken(DECORATOR, string(s.source[nameStart:s.current]))
}

func (s *Scanner) scanExtended(c rune) {
	if IsAlpha(c) || IsUnderscore(c) {
		s.scanIdentifier()
	} else if IsDigit(c) {
		s.scanNumber(c)
	} else {
		s.reportError(UnexpectedCharacter, fmt.Sprintf("unexpected character: %q", c))
		s.addToken(INVALID, s.lexeme())
	}
}

func (s *Scanner) scanIdentifier() {
	for IsAlphaNum(s.peek()) || IsUnderscore(s.peek()) {
		s.advance()
	}
	typ, value := LookupIdent(s.lexeme())
	s.addToken(typ, value)
}

func (s *Scanner) scanNumber(first rune) {
	if first == '0' {
		switch {
		case IsBeginBin(s.peek()):
			s.scanPrefixedNumber(BIN_LIT, IsBin)
			return
		case IsBeginOct(s.peek()):
			s.scanPrefixedNumber(OCT_LIT, IsOct)
			return
		case IsBeginHex(s.peek()):
			s.scanPrefixedNumber(HEX_LIT, IsHex)
			return
		}
	}

	for IsDigit(s.peek()) {
		s.advance()
	}

	if IsDot(s.peek()) && IsDigit(s.peekNext()) {
		s.advance()
		for IsDigit(s.peek()) {
			s.advance()
		}
		value := s.lexeme()
		if s.matchNext('f') {
			s.addToken(FLOAT32_LIT, value)
		} else {
			s.addToken(FLOAT64_LIT, value)
		}
		return
	}

	s.addToken(INT_LIT, s.lexeme())
}

func (s *Scanner) scanPrefixedNumber(typ TokenType, isDigit func(rune) bool) {
	s.advance() // radix marker
	digitsStart := s.current
	for isDigit(s.peek()) {
		s.advance()
	}

	if s.current == digitsStart {
		s.reportError(InvalidLiteral, fmt.Sprintf("invalid %s: expected digits after %q", typ, s.lexeme()))
		s.addToken(INVALID, "")
		return
	}
	s.addToken(typ, string(s.source[digitsStart:s.current]))
}

func (s *Scanner) advance() rune {
	c := s.source[s.current]
	s.current++
	switch {
	case c == '\n', c == '\r' && s.peek() != '\n':
		s.pos.Line++
		s.pos.Character = 0
	case c >= 0x10000:
		s.pos.Character += 2
	default:
		s.pos.Character++
	}
	return c
}

func (s *Scanner) matchNext(expected rune) bool {
	if s.isAtEnd() || s.source[s.current] != expected {
		return false
	}
	s.advance()
	return true
}

func (s *Scanner) peek() rune {
	if s.isAtEnd() {
		return 0
	}
	return s.source[s.current]
}

func (s *Scanner) peekNext() rune {
	if s.current+1 >= len(s.source) {
		return 0
	}
	return s.source[s.current+1]
}

func (s *Scanner) isAtEnd() bool {
	return s.current >= len(s.source)
}

func (s *Scanner) lexeme() string {
	return string(s.source[s.start:s.current])
}

func (s *Scanner) addToken(typ TokenType, value string) *Token {
	tok := NewToken()
	tok.Set(typ, value)
	tok.BeginsAt(s.startPos)
	tok.EndsAt(s.pos)
	tok.CalcLength(s.doc)
	s.tokens = append(s.tokens, tok)
	return tok
}

func (s *Scanner) reportError(kind ScanErrorKind, message string) {
	s.errors = append(s.errors, ScanError{
		Kind:    kind,
		Message: message,
		Range:   Range{Start: s.startPos, End: s.pos},
	})
}
