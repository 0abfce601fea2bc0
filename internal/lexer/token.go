package lexer

import "fmt"

// Token is a mutable lexical token. The scanner reuses tokens in place, so
// the zero value is usable but NewToken gives the unplaced sentinel range.
type Token struct {
	typ      TokenType
	value    string
	location Range
	length   int
}

func NewToken() *Token {
	return &Token{location: Range{Start: NoPosition, End: NoPosition}}
}

func (t *Token) Type() TokenType   { return t.typ }
func (t *Token) Value() string     { return t.value }
func (t *Token) SetValue(v string) { t.value = v }
func (t *Token) Location() Range   { return t.location }
func (t *Token) Length() int       { return t.length }
func (t *Token) Valid() bool       { return t.typ != INVALID }

// Set overwrites the kind and payload. The range is left alone.
func (t *Token) Set(typ TokenType, value string) {
	t.typ = typ
	t.value = value
}

// Reset returns the token to the invalid state and collapses its range onto
// its current end.
func (t *Token) Reset() {
	t.typ = INVALID
	t.value = ""
	t.location.Start = t.location.End
	t.length = 0
}

func (t *Token) BeginsAt(pos Position) { t.location.Start = pos }
func (t *Token) EndsAt(pos Position)   { t.location.End = pos }

// CalcLength derives the token length from its range. Both ends must be set
// and valid for doc's current version.
func (t *Token) CalcLength(doc Document) {
	t.length = doc.OffsetAt(t.location.End) - doc.OffsetAt(t.location.Start)
}

func (t *Token) TypeIsOneOf(types ...TokenType) bool {
	for _, typ := range types {
		if t.typ == typ {
			return true
		}
	}
	return false
}

func (t *Token) Clone() *Token {
	clone := *t
	return &clone
}

func (t *Token) Equal(other *Token) bool {
	if other == nil {
		return false
	}
	return t.typ == other.typ &&
		t.value == other.value &&
		t.location == other.location &&
		t.length == other.length
}

func (t *Token) String() string {
	return fmt.Sprintf("<Token %s@%d:%d -> %s>", t.typ, t.location.Start.Line, t.location.Start.Character, t.value)
}
