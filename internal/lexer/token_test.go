package lexer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"mangrove/internal/document"
	"mangrove/internal/lexer"
)

func TestRecognisers(t *testing.T) {
	assert.True(t, lexer.IsAlpha('q'))
	assert.True(t, lexer.IsAlpha('É'))
	assert.False(t, lexer.IsAlpha('_'))
	assert.False(t, lexer.IsAlpha(0x2010), "general punctuation is excluded")
	assert.False(t, lexer.IsAlpha(0xD800), "surrogates are excluded")

	assert.True(t, lexer.IsAlphaNum('7'))
	assert.True(t, lexer.IsWhiteSpace('\r'))
	assert.False(t, lexer.IsWhiteSpace('\v'))

	assert.True(t, lexer.IsHex('f'))
	assert.False(t, lexer.IsHex('g'))
	assert.True(t, lexer.IsOct('7'))
	assert.False(t, lexer.IsOct('8'))
	assert.False(t, lexer.IsBin('2'))
	assert.True(t, lexer.IsBeginOct('C'))

	assert.True(t, lexer.IsNormalAlpha('a'))
	assert.False(t, lexer.IsNormalAlpha('"'))
	assert.False(t, lexer.IsNormalAlpha('\''))
	assert.False(t, lexer.IsNormalAlpha('\\'))
	assert.False(t, lexer.IsNormalAlpha('\n'))
	assert.True(t, lexer.IsNormalAlpha('€'))
}

func TestRecogniserComposites(t *testing.T) {
	check := func(c rune) {
		alpha, digit := lexer.IsAlpha(c), lexer.IsDigit(c)
		if alpha && digit {
			t.Errorf("%U is both alpha and digit", c)
		}
		if (alpha || digit) && !lexer.IsAlphaNum(c) {
			t.Errorf("%U is alpha or digit but not alphanumeric", c)
		}
		if lexer.IsWhiteSpace(c) != (c == ' ' || c == '\t' || lexer.IsNewLine(c)) {
			t.Errorf("%U whitespace classification disagrees with its primitives", c)
		}
	}

	for c := rune(0); c < 0x80; c++ {
		check(c)
	}
	for c := rune(0x00C0); c <= 0x10FFFF; c++ {
		check(c)
	}
}

func TestKeywordRecognisers(t *testing.T) {
	assert.True(t, lexer.IsBuiltinType("uint16"))
	assert.False(t, lexer.IsBuiltinType("int128"))
	assert.True(t, lexer.IsStorageSpec("const"))
	assert.True(t, lexer.IsLocationSpec("eeprom"))
	assert.True(t, lexer.IsVisibility("protected"))
	assert.False(t, lexer.IsVisibility("public_api"))

	typ, value := lexer.LookupIdent("or")
	assert.Equal(t, lexer.LOGIC_OP, typ)
	assert.Equal(t, "|", value)

	typ, value = lexer.LookupIdent("counter")
	assert.Equal(t, lexer.IDENT, typ)
	assert.Equal(t, "counter", value)
}

func TestTokenLifecycle(t *testing.T) {
	tok := lexer.NewToken()
	assert.Equal(t, lexer.INVALID, tok.Type())
	assert.False(t, tok.Valid())
	assert.Equal(t, lexer.NoPosition, tok.Location().Start)

	doc := document.New("file:///t.mgv", "mangrove", 0, "int32 total;\n")
	tok.Set(lexer.IDENT, "total")
	tok.BeginsAt(lexer.Position{Line: 0, Character: 6})
	tok.EndsAt(lexer.Position{Line: 0, Character: 11})
	tok.CalcLength(doc)
	assert.Equal(t, 5, tok.Length())
	assert.True(t, tok.TypeIsOneOf(lexer.TYPE, lexer.IDENT))
	assert.Equal(t, "<Token IDENT@0:6 -> total>", tok.String())

	clone := tok.Clone()
	assert.True(t, clone.Equal(tok))
	clone.SetValue("other")
	assert.False(t, clone.Equal(tok))
	assert.Equal(t, "total", tok.Value(), "clones do not alias")
	assert.False(t, tok.Equal(nil))

	tok.Reset()
	assert.False(t, tok.Valid())
	assert.Empty(t, tok.Value())
	assert.Equal(t, 0, tok.Length())
	assert.Equal(t, tok.Location().End, tok.Location().Start)
}

func TestPositionBefore(t *testing.T) {
	a := lexer.Position{Line: 1, Character: 9}
	b := lexer.Position{Line: 2, Character: 0}
	assert.True(t, a.Before(b))
	assert.False(t, b.Before(a))
	assert.False(t, a.Before(a))
	assert.True(t, lexer.NoPosition.Before(lexer.Position{}))
}
